// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws the board page from board state.

Templates are embedded and parsed once:

	r, err := render.New()
	page := render.NewPage(b.Resources(), b.ListAvailable(), time.Now())
	err = r.Board(w, page)

The two tables are independent, idempotent fragments:

  - ResourcesTable: every resource with a status badge
  - AvailableTable: Available resources with a Select link keyed by id

Request times are shown relative to now ("3 minutes ago").
*/
package render
