// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/relief-board/models"
	"github.com/danielhkuo/relief-board/testutil"
)

// TestConcurrentRequestsSingleWinner verifies that simultaneous claims on the
// same resource leave exactly one request recorded
func TestConcurrentRequestsSingleWinner(t *testing.T) {
	handler, b := setupResourceHandler(t, testutil.GetTestConfig())
	res := testutil.AddTestResource(t, b, "Water")

	numVictims := 10

	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVictims; i++ {
		wg.Add(1)
		go func(victimIdx int) {
			defer wg.Done()

			w := requestResource(handler, res.ID, models.CreateRequestRequest{
				Name:           fmt.Sprintf("Victim %d", victimIdx),
				Urgency:        models.UrgencyMedium,
				Contact:        "9123456789",
				VictimLocation: "Sector 5",
			})

			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful request, got %d", successCount.Load())
	}
	if int(conflictCount.Load()) != numVictims-1 {
		t.Errorf("Expected %d conflicts, got %d", numVictims-1, conflictCount.Load())
	}

	got, _ := b.Lookup(res.ID)
	if len(got.Requests) != 1 {
		t.Errorf("Expected 1 stored request, got %d", len(got.Requests))
	}
}

// TestConcurrentAdds verifies that simultaneous volunteer submissions are all
// persisted with distinct ids
func TestConcurrentAdds(t *testing.T) {
	handler, b := setupResourceHandler(t, testutil.GetTestConfig())

	numVolunteers := 10
	var wg sync.WaitGroup

	for i := 0; i < numVolunteers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/resources", models.AddResourceRequest{
				Type:     "Food",
				Qty:      fmt.Sprintf("%d", idx+1),
				Location: "Sector 4",
				Contact:  "9876543210",
			}, nil)
			w := httptest.NewRecorder()
			handler.AddResource(w, req)

			if w.Code != http.StatusCreated {
				t.Errorf("Volunteer %d: expected 201, got %d", idx, w.Code)
			}
		}(i)
	}

	wg.Wait()

	if _, err := b.Reload(t.Context()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	resources := b.Resources()
	if len(resources) != numVolunteers {
		t.Fatalf("Expected %d resources, got %d", numVolunteers, len(resources))
	}

	seen := make(map[string]bool)
	for _, r := range resources {
		if seen[r.ID] {
			t.Errorf("Duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

// TestConcurrentBoardsSharingStore verifies that two boards over one key never
// both accept a claim on the same resource
func TestConcurrentBoardsSharingStore(t *testing.T) {
	cfg := testutil.GetTestConfig()
	conn := testutil.SetupTestDB(t)

	first := NewResourceHandler(testutil.OpenTestBoard(t, conn, cfg), cfg)
	otherBoard := testutil.OpenTestBoard(t, conn, cfg)
	second := NewResourceHandler(otherBoard, cfg)

	res := testutil.AddTestResource(t, otherBoard, "Shelter")

	victim := models.CreateRequestRequest{
		Name: "A", Urgency: models.UrgencyHigh, Contact: "9123456789", VictimLocation: "Sector 5",
	}

	w := requestResource(first, res.ID, victim)
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = requestResource(second, res.ID, victim)
	testutil.AssertStatus(t, w, http.StatusConflict)
}
