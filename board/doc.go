// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package board owns the application state: a registry of resources mirrored
into a persistent store.

# Opening

	s := store.New(conn, cfg.StoreKey)
	b, err := board.Open(ctx, s, board.Options{Lifecycle: cfg.Lifecycle})

Open loads the stored list once. Entries saved without an id receive one
and the list is written back.

# Mutations

AddResource, RequestResource, RequestResourceAt and FulfillResource each:

 1. re-read the store (another process may share the key)
 2. mutate the registry
 3. save the full list

Steps run under one mutex, so requests inside this process are serialized.
Across processes the read-validate-write sequence is not atomic.

Storage errors wrap store.ErrStorage and are returned unchanged. A failed
save is not rolled back in memory; the next mutation or Reload replaces it
with whatever the store holds.
*/
package board
