// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/relief-board/models"
)

var (
	ErrInvalidSelection  = errors.New("selected resource is not available")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// Registry is the ordered list of resources for one board.
// It is not safe for concurrent use.
type Registry struct {
	resources []models.Resource
	extended  bool
	newID     func() string
}

type Option func(*Registry)

// WithExtendedLifecycle enables the In Progress → Fulfilled transition.
func WithExtendedLifecycle() Option {
	return func(r *Registry) { r.extended = true }
}

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) { r.newID = gen }
}

func New(opts ...Option) *Registry {
	r := &Registry{
		resources: []models.Resource{},
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Replace swaps in a freshly loaded list. Entries without an id get one and
// nil request lists become empty. It reports whether anything was back-filled.
func (r *Registry) Replace(list []models.Resource) bool {
	changed := false
	resources := make([]models.Resource, len(list))
	for i, res := range list {
		res = res.Clone()
		if res.ID == "" {
			res.ID = r.newID()
			changed = true
		}
		resources[i] = res
	}
	r.resources = resources
	return changed
}

func (r *Registry) Len() int {
	return len(r.resources)
}

func (r *Registry) Extended() bool {
	return r.extended
}

// All returns a copy of every resource in insertion order.
func (r *Registry) All() []models.Resource {
	out := make([]models.Resource, len(r.resources))
	for i, res := range r.resources {
		out[i] = res.Clone()
	}
	return out
}

// Add appends a new Available resource and returns its position.
func (r *Registry) Add(in models.ResourceInput) (int, models.Resource) {
	res := models.Resource{
		ID:        r.newID(),
		Type:      in.Type,
		Qty:       in.Qty,
		Location:  in.Location,
		Timeframe: in.Timeframe,
		Details:   in.Details,
		Contact:   in.Contact,
		Status:    models.StatusAvailable,
		Requests:  []models.Request{},
	}
	r.resources = append(r.resources, res)
	return len(r.resources) - 1, res.Clone()
}

// ListAvailable returns Available resources with their index in the full list.
func (r *Registry) ListAvailable() []models.Listing {
	out := []models.Listing{}
	for i, res := range r.resources {
		if res.Status == models.StatusAvailable {
			out = append(out, models.Listing{Index: i, Resource: res.Clone()})
		}
	}
	return out
}

// Find looks up a resource by id.
func (r *Registry) Find(id string) (int, models.Resource, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return -1, models.Resource{}, false
	}
	return i, r.resources[i].Clone(), true
}

// Request claims the resource with the given id.
func (r *Registry) Request(id string, in models.RequestInput, at time.Time) (models.Resource, error) {
	return r.RequestAt(r.indexOf(id), in, at)
}

// RequestAt claims the resource at a position. It fails with
// ErrInvalidSelection when the index is out of range or the resource
// is no longer Available, leaving state unchanged.
func (r *Registry) RequestAt(index int, in models.RequestInput, at time.Time) (models.Resource, error) {
	if index < 0 || index >= len(r.resources) {
		return models.Resource{}, ErrInvalidSelection
	}
	res := &r.resources[index]
	if res.Status != models.StatusAvailable {
		return models.Resource{}, ErrInvalidSelection
	}

	res.Requests = append(res.Requests, models.Request{
		Name:           in.Name,
		Urgency:        in.Urgency,
		Contact:        in.Contact,
		VictimLocation: in.VictimLocation,
		Details:        in.Details,
		RequestedAt:    at.UTC(),
	})
	res.Status = models.StatusInProgress

	return res.Clone(), nil
}

// Fulfill closes out an In Progress resource. Only the extended lifecycle
// allows it.
func (r *Registry) Fulfill(id string) (models.Resource, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Resource{}, ErrInvalidSelection
	}
	res := &r.resources[i]
	if !r.extended || res.Status != models.StatusInProgress {
		return models.Resource{}, ErrInvalidTransition
	}
	res.Status = models.StatusFulfilled
	return res.Clone(), nil
}

func (r *Registry) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range r.resources {
		if r.resources[i].ID == id {
			return i
		}
	}
	return -1
}
