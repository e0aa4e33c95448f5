// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the relief board.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(board, renderer, cfg)

# Endpoints

Health:

	GET /health

Board page (HTML):

	GET  /                               - Both tables and both forms
	GET  /fragments/resources            - All-resources table body
	GET  /fragments/available            - Available-resources table body
	POST /volunteer/resources            - Volunteer form submit
	POST /volunteer/resources/{id}/fulfill - Mark fulfilled (extended lifecycle)
	GET  /victim/select/{id}             - Reveal the request form
	POST /victim/requests                - Victim form submit

JSON API:

	GET  /api/resources                  - All resources
	GET  /api/resources/available        - Available resources with indices
	POST /api/resources                  - Add resource
	POST /api/resources/{id}/requests    - Request resource
	POST /api/resources/{id}/fulfill     - Mark fulfilled (extended lifecycle)
	POST /api/reload                     - Re-read the store

# Handler Initialization

	pageHandler := handlers.NewPageHandler(board, renderer, cfg)
	resourceHandler := handlers.NewResourceHandler(board, cfg)

Both handlers share one board, so the HTML and JSON surfaces see the same
state.
*/
package router
