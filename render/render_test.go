// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/relief-board/models"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixtures() ([]models.Resource, []models.Listing) {
	resources := []models.Resource{
		{ID: "r1", Type: "Water", Qty: "50", Location: "Sector 4", Contact: "9876543210", Status: models.StatusAvailable, Requests: []models.Request{}},
		{ID: "r2", Type: "Food", Qty: "10", Location: "Camp <b>", Contact: "9123456789", Status: models.StatusInProgress, Requests: []models.Request{
			{Name: "A", Urgency: "High", Contact: "9000000000", VictimLocation: "Sector 5", RequestedAt: now.Add(-3 * time.Minute)},
		}},
		{ID: "r3", Type: "Tents", Qty: "2", Location: "Hill", Contact: "9123456789", Status: models.StatusFulfilled, Requests: []models.Request{}},
	}
	listings := []models.Listing{{Index: 0, Resource: resources[0]}}
	return resources, listings
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return r
}

func TestResourceRows(t *testing.T) {
	resources, _ := fixtures()
	rows := ResourceRows(resources, now, false)

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	wantBadges := []string{"bg-success", "bg-warning text-dark", "bg-secondary"}
	for i, want := range wantBadges {
		if rows[i].Badge != want {
			t.Errorf("Row %d: expected badge %q, got %q", i, want, rows[i].Badge)
		}
	}

	if rows[0].LastRequested != "" {
		t.Errorf("Expected no request time for an Available resource, got %q", rows[0].LastRequested)
	}
	if rows[1].LastRequested != "3 minutes ago" {
		t.Errorf("Expected '3 minutes ago', got %q", rows[1].LastRequested)
	}
}

func TestFulfillActionOnlyWhenExtended(t *testing.T) {
	r := newRenderer(t)
	resources, _ := fixtures()

	for _, extended := range []bool{false, true} {
		var buf bytes.Buffer
		if err := r.ResourcesTable(&buf, ResourceRows(resources, now, extended)); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		out := buf.String()

		hasAction := strings.Contains(out, `action="/volunteer/resources/r2/fulfill"`)
		if hasAction != extended {
			t.Errorf("extended=%v: fulfill action rendered=%v", extended, hasAction)
		}
		if strings.Contains(out, "/volunteer/resources/r1/fulfill") {
			t.Error("Available resource must not offer fulfill")
		}
	}
}

func TestResourcesTable(t *testing.T) {
	r := newRenderer(t)
	resources, _ := fixtures()

	var buf bytes.Buffer
	if err := r.ResourcesTable(&buf, ResourceRows(resources, now, false)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Water", "In Progress", "Fulfilled", "badge bg-warning text-dark", "Camp &lt;b&gt;"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "Camp <b>") {
		t.Error("Location was not escaped")
	}
}

func TestAvailableTable(t *testing.T) {
	r := newRenderer(t)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.AvailableTable(&buf, AvailableRows(nil)); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.Contains(buf.String(), "No resources available") {
			t.Errorf("Expected empty-state row, got %s", buf.String())
		}
	})

	t.Run("rows link by id", func(t *testing.T) {
		_, listings := fixtures()
		var buf bytes.Buffer
		if err := r.AvailableTable(&buf, AvailableRows(listings)); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, `href="/victim/select/r1#victimRequestForm"`) {
			t.Errorf("Expected select link for r1, got %s", out)
		}
		if !strings.Contains(out, `data-index="0"`) {
			t.Errorf("Expected original index on row, got %s", out)
		}
		if strings.Contains(out, "No resources available") {
			t.Error("Empty-state row rendered alongside rows")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		_, listings := fixtures()
		var a, b bytes.Buffer
		r.AvailableTable(&a, AvailableRows(listings))
		r.AvailableTable(&b, AvailableRows(listings))
		if a.String() != b.String() {
			t.Error("Rendering the same rows twice produced different output")
		}
	})
}

func TestBoard(t *testing.T) {
	r := newRenderer(t)
	resources, listings := fixtures()

	t.Run("plain page", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Board(&buf, NewPage(resources, listings, now, false)); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		out := buf.String()

		if !strings.Contains(out, `id="resourceTable"`) || !strings.Contains(out, `id="availableTable"`) {
			t.Error("Expected both tables")
		}
		if strings.Contains(out, `id="victimRequestForm"`) {
			t.Error("Follow-up form should be hidden without a selection")
		}
		if strings.Contains(out, `id="confirmationModal"`) {
			t.Error("Confirmation should only render on request")
		}
		if strings.Contains(out, `id="flash"`) {
			t.Error("Flash should only render when set")
		}
	})

	t.Run("selection, flash and confirmation", func(t *testing.T) {
		page := NewPage(resources, listings, now, false)
		page.Flash = &Flash{Message: "Resource successfully added!", Kind: "success"}
		page.Selection = &Selection{ID: "r1", Type: "Water", Location: "Sector 4", Form: models.CreateRequestRequest{Urgency: "Medium"}}
		page.Confirm = true

		var buf bytes.Buffer
		if err := r.Board(&buf, page); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		out := buf.String()

		for _, want := range []string{
			`class="alert alert-success"`,
			"Resource successfully added!",
			`id="victimRequestForm"`,
			`name="resource_id" value="r1"`,
			`<option value="Medium" selected>`,
			`id="confirmationModal"`,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected page to contain %q", want)
			}
		}
	})

	t.Run("others keeps custom field visible", func(t *testing.T) {
		page := NewPage(resources, listings, now, false)
		page.Volunteer = models.AddResourceRequest{Type: models.OtherType}

		var buf bytes.Buffer
		if err := r.Board(&buf, page); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(buf.String(), `visually-hidden" id="customResTypeDiv"`) {
			t.Error("Custom type field should be visible when Others is chosen")
		}
	})
}
