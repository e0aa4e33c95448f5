// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/relief-board/board"
	"github.com/danielhkuo/relief-board/cliparse"
	"github.com/danielhkuo/relief-board/db"
	"github.com/danielhkuo/relief-board/models"
	"github.com/danielhkuo/relief-board/store"
)

// TestNow is the clock every test board uses
var TestNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		StoreKey:     store.DefaultKey,
		Lifecycle:    models.LifecycleBasic,
	}
}

// OpenTestBoard opens a board over the database with the configured key and lifecycle
func OpenTestBoard(t *testing.T, conn *sql.DB, cfg cliparse.Config) *board.Board {
	t.Helper()

	b, err := board.Open(context.Background(), store.New(conn, cfg.StoreKey), board.Options{
		Lifecycle: cfg.Lifecycle,
		Now:       func() time.Time { return TestNow },
	})
	if err != nil {
		t.Fatalf("Failed to open board: %v", err)
	}
	return b
}

// AddTestResource adds an Available resource and returns it
func AddTestResource(t *testing.T, b *board.Board, resourceType string) models.Resource {
	t.Helper()

	_, res, err := b.AddResource(context.Background(), models.ResourceInput{
		Type:     resourceType,
		Qty:      "10",
		Location: "Sector 4",
		Contact:  "9876543210",
	})
	if err != nil {
		t.Fatalf("Failed to add test resource: %v", err)
	}
	return res
}

// RequestTestResource claims a resource on behalf of a test victim
func RequestTestResource(t *testing.T, b *board.Board, id string) models.Resource {
	t.Helper()

	res, err := b.RequestResource(context.Background(), id, models.RequestInput{
		Name:           "Test Victim",
		Urgency:        models.UrgencyHigh,
		Contact:        "9123456789",
		VictimLocation: "Sector 5",
	})
	if err != nil {
		t.Fatalf("Failed to request test resource: %v", err)
	}
	return res
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
