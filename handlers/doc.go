// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Relief Board.

# Handler Types

Each handler is a struct holding the shared board and config:

  - PageHandler: server-rendered board page, volunteer and victim forms
  - ResourceHandler: JSON API over the same board

Handlers are created via constructor functions:

	pageHandler := handlers.NewPageHandler(b, renderer, cfg)
	resourceHandler := handlers.NewResourceHandler(b, cfg)

# Volunteer Flow

	POST /volunteer/resources → AddResource (redirects to /?flash=added)

Validation failures re-render the board with a flash and the form values
kept. Nothing is stored.

# Victim Flow

	GET  /victim/select/{id} → SelectResource (reveals the follow-up form)
	POST /victim/requests    → SubmitRequest (redirects to /?confirm=1)

The selected id is checked again at submission. A resource claimed in the
meantime redirects to /?flash=stale.

# JSON API

	GET  /api/resources                → ListResources
	GET  /api/resources/available      → ListAvailable
	POST /api/resources                → AddResource
	POST /api/resources/{id}/requests  → RequestResource
	POST /api/resources/{id}/fulfill   → FulfillResource (extended lifecycle)
	POST /api/reload                   → Reload

Stale or unknown selections return 409. Storage failures return 500.
*/
package handlers
