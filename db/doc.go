// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing database and creates its schema.

# Connecting

Open selects the driver from the database type:

	conn, err := db.Open("sqlite", "file:relief-board.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go); PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes the key/value table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_store: one row per key; value holds a serialized document

The board keeps its entire resource list in a single row. There are no
indexes beyond the primary key.
*/
package db
