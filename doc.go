// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Relief Board server.

Relief Board matches offered resources with people who need them:
volunteers register supplies or services, victims browse what is available
and request it. The whole resource list is stored as one JSON document.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Connection string (default: file:relief-board.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STORE_KEY (-key): Key of the stored document (default: drrms_resources)
  - LIFECYCLE (-lifecycle): basic or extended (default: basic)

A .env file in the working directory is read first.

# Architecture

  - board: Application state (registry + store, one mutex)
  - registry: Ordered resources and the status lifecycle
  - store: Whole-list JSON persistence under one key
  - validate: Volunteer and victim form rules
  - render: HTML page and table fragments
  - handlers: HTML form controllers and JSON API
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, CORS, JSON helpers
  - models: Domain and request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
