// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/relief-board/models"
	"github.com/danielhkuo/relief-board/registry"
)

// Persister loads and saves the full resource list.
type Persister interface {
	Load(ctx context.Context) ([]models.Resource, error)
	Save(ctx context.Context, list []models.Resource) error
}

type Options struct {
	// Lifecycle is models.LifecycleBasic (default) or models.LifecycleExtended.
	Lifecycle string
	// Now stamps new requests; defaults to time.Now.
	Now func() time.Time
	// NewID generates resource ids; defaults to UUIDs.
	NewID func() string
}

// Board is the application state: one registry mirrored into one store.
// All methods are safe for concurrent use.
type Board struct {
	mu    sync.Mutex
	reg   *registry.Registry
	store Persister
	now   func() time.Time
}

// Open loads the stored list. Legacy entries without ids are given one and
// written back immediately.
func Open(ctx context.Context, p Persister, opts Options) (*Board, error) {
	var regOpts []registry.Option
	if opts.Lifecycle == models.LifecycleExtended {
		regOpts = append(regOpts, registry.WithExtendedLifecycle())
	}
	if opts.NewID != nil {
		regOpts = append(regOpts, registry.WithIDGenerator(opts.NewID))
	}

	b := &Board{
		reg:   registry.New(regOpts...),
		store: p,
		now:   opts.Now,
	}
	if b.now == nil {
		b.now = time.Now
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(ctx); err != nil {
		return nil, err
	}

	slog.Info("board loaded", "resources", b.reg.Len(), "extended", b.reg.Extended())
	return b, nil
}

// refresh replaces in-memory state with the stored list. Caller holds mu.
func (b *Board) refresh(ctx context.Context) error {
	list, err := b.store.Load(ctx)
	if err != nil {
		return err
	}
	if b.reg.Replace(list) {
		slog.Info("assigned ids to stored resources")
		return b.store.Save(ctx, b.reg.All())
	}
	return nil
}

// Reload picks up writes made by another process sharing the same store.
func (b *Board) Reload(ctx context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(ctx); err != nil {
		return 0, err
	}
	return b.reg.Len(), nil
}

func (b *Board) Extended() bool {
	return b.reg.Extended()
}

// Resources returns every resource in insertion order.
func (b *Board) Resources() []models.Resource {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.All()
}

// ListAvailable returns Available resources with their index in Resources.
func (b *Board) ListAvailable() []models.Listing {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reg.ListAvailable()
}

func (b *Board) Lookup(id string) (models.Resource, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, res, ok := b.reg.Find(id)
	return res, ok
}

// AddResource appends a new Available resource and persists the list.
func (b *Board) AddResource(ctx context.Context, in models.ResourceInput) (int, models.Resource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(ctx); err != nil {
		return 0, models.Resource{}, err
	}

	idx, res := b.reg.Add(in)
	if err := b.save(ctx); err != nil {
		return 0, models.Resource{}, err
	}

	slog.Info("resource added", "resource_id", res.ID, "type", res.Type, "index", idx)
	return idx, res, nil
}

// RequestResource claims the resource with the given id. State is re-read
// first so a claim made elsewhere since the caller's selection is seen as
// registry.ErrInvalidSelection.
func (b *Board) RequestResource(ctx context.Context, id string, in models.RequestInput) (models.Resource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(ctx); err != nil {
		return models.Resource{}, err
	}

	res, err := b.reg.Request(id, in, b.now())
	if err != nil {
		return models.Resource{}, err
	}
	if err := b.save(ctx); err != nil {
		return models.Resource{}, err
	}

	slog.Info("resource requested", "resource_id", res.ID, "urgency", in.Urgency)
	return res, nil
}

// RequestResourceAt claims the resource at a position in Resources.
func (b *Board) RequestResourceAt(ctx context.Context, index int, in models.RequestInput) (models.Resource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(ctx); err != nil {
		return models.Resource{}, err
	}

	res, err := b.reg.RequestAt(index, in, b.now())
	if err != nil {
		return models.Resource{}, err
	}
	if err := b.save(ctx); err != nil {
		return models.Resource{}, err
	}

	slog.Info("resource requested", "resource_id", res.ID, "index", index, "urgency", in.Urgency)
	return res, nil
}

// FulfillResource marks an In Progress resource Fulfilled (extended lifecycle).
func (b *Board) FulfillResource(ctx context.Context, id string) (models.Resource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(ctx); err != nil {
		return models.Resource{}, err
	}

	res, err := b.reg.Fulfill(id)
	if err != nil {
		return models.Resource{}, err
	}
	if err := b.save(ctx); err != nil {
		return models.Resource{}, err
	}

	slog.Info("resource fulfilled", "resource_id", res.ID)
	return res, nil
}

// save writes the whole list. A failure leaves the in-memory mutation in
// place and is returned as is. Caller holds mu.
func (b *Board) save(ctx context.Context) error {
	if err := b.store.Save(ctx, b.reg.All()); err != nil {
		slog.Error("failed to persist resources", "error", err)
		return err
	}
	return nil
}
