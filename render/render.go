// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/relief-board/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// ResourceTypes are the choices offered on the volunteer form.
var ResourceTypes = []string{"Food", "Water", "Medical Supplies", "Shelter", "Clothing", "Transport", models.OtherType}

var Urgencies = []string{models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh}

type Flash struct {
	Message string
	Kind    string // success, warning or danger
}

// Selection is the resource a victim picked, shown in the follow-up form.
type Selection struct {
	ID       string
	Type     string
	Location string
	Form     models.CreateRequestRequest
}

type ResourceRow struct {
	models.Resource
	Badge         string
	LastRequested string
	CanFulfill    bool
}

type AvailableRow struct {
	Index int
	models.Resource
}

// Page is everything the board template needs.
type Page struct {
	Resources []ResourceRow
	Available []AvailableRow
	Flash     *Flash
	Selection *Selection
	Volunteer models.AddResourceRequest
	Confirm   bool
	Extended  bool
	Types     []string
	Urgencies []string
}

// NewPage builds the table rows from board state. extended enables the
// fulfill action on In Progress rows.
func NewPage(resources []models.Resource, available []models.Listing, now time.Time, extended bool) Page {
	return Page{
		Resources: ResourceRows(resources, now, extended),
		Available: AvailableRows(available),
		Extended:  extended,
		Types:     ResourceTypes,
		Urgencies: Urgencies,
	}
}

func ResourceRows(resources []models.Resource, now time.Time, extended bool) []ResourceRow {
	rows := make([]ResourceRow, 0, len(resources))
	for _, res := range resources {
		row := ResourceRow{
			Resource:   res,
			Badge:      badge(res.Status),
			CanFulfill: extended && res.Status == models.StatusInProgress,
		}
		if n := len(res.Requests); n > 0 {
			row.LastRequested = humanize.RelTime(res.Requests[n-1].RequestedAt, now, "ago", "from now")
		}
		rows = append(rows, row)
	}
	return rows
}

func AvailableRows(listings []models.Listing) []AvailableRow {
	rows := make([]AvailableRow, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, AvailableRow{Index: l.Index, Resource: l.Resource})
	}
	return rows
}

func badge(status string) string {
	switch status {
	case models.StatusAvailable:
		return "bg-success"
	case models.StatusInProgress:
		return "bg-warning text-dark"
	default:
		return "bg-secondary"
	}
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Board renders the full page.
func (r *Renderer) Board(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "board", p)
}

// ResourcesTable renders the body of the all-resources table.
func (r *Renderer) ResourcesTable(w io.Writer, rows []ResourceRow) error {
	return r.tmpl.ExecuteTemplate(w, "resources_table", rows)
}

// AvailableTable renders the body of the available-resources table.
func (r *Renderer) AvailableTable(w io.Writer, rows []AvailableRow) error {
	return r.tmpl.ExecuteTemplate(w, "available_table", rows)
}
