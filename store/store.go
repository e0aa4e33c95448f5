// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/relief-board/models"
)

// DefaultKey is the key the resource list has always been stored under.
const DefaultKey = "drrms_resources"

var ErrStorage = errors.New("storage failure")

// Store mirrors the resource list into a single key of the kv_store table.
type Store struct {
	db  *sql.DB
	key string
}

func New(db *sql.DB, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{db: db, key: key}
}

func (s *Store) Key() string {
	return s.key
}

// Load returns the stored list. A missing or unparseable value yields an
// empty list; only database errors are returned.
func (s *Store) Load(ctx context.Context) ([]models.Resource, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM kv_store WHERE key = $1
	`, s.key).Scan(&raw)

	if err == sql.ErrNoRows {
		return []models.Resource{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrStorage, s.key, err)
	}

	var list []models.Resource
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		slog.Warn("discarding unparseable stored value", "key", s.key, "error", err)
		return []models.Resource{}, nil
	}
	if list == nil {
		list = []models.Resource{}
	}

	return list, nil
}

// Save overwrites the stored value with the full list.
func (s *Store) Save(ctx context.Context, list []models.Resource) error {
	if list == nil {
		list = []models.Resource{}
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, s.key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, string(payload), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrStorage, s.key, err)
	}

	return nil
}
