// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/relief-board/board"
	"github.com/danielhkuo/relief-board/cliparse"
	"github.com/danielhkuo/relief-board/handlers"
	"github.com/danielhkuo/relief-board/middleware"
	"github.com/danielhkuo/relief-board/render"
)

func NewRouter(b *board.Board, renderer *render.Renderer, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(b, renderer, cfg)
	resourceHandler := handlers.NewResourceHandler(b, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Board page and table fragments
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Board))
	mux.HandleFunc("GET /fragments/resources", middleware.WithLogging(pageHandler.ResourcesFragment))
	mux.HandleFunc("GET /fragments/available", middleware.WithLogging(pageHandler.AvailableFragment))

	// Volunteer form
	mux.HandleFunc("POST /volunteer/resources", middleware.WithLogging(pageHandler.AddResource))
	mux.HandleFunc("POST /volunteer/resources/{id}/fulfill", middleware.WithLogging(pageHandler.FulfillResource))

	// Victim selection and request
	mux.HandleFunc("GET /victim/select/{id}", middleware.WithLogging(pageHandler.SelectResource))
	mux.HandleFunc("POST /victim/requests", middleware.WithLogging(pageHandler.SubmitRequest))

	// JSON API
	mux.HandleFunc("GET /api/resources", middleware.WithLogging(resourceHandler.ListResources))
	mux.HandleFunc("GET /api/resources/available", middleware.WithLogging(resourceHandler.ListAvailable))
	mux.HandleFunc("POST /api/resources", middleware.WithLogging(resourceHandler.AddResource))
	mux.HandleFunc("POST /api/resources/{id}/requests", middleware.WithLogging(resourceHandler.RequestResource))
	mux.HandleFunc("POST /api/resources/{id}/fulfill", middleware.WithLogging(resourceHandler.FulfillResource))
	mux.HandleFunc("POST /api/reload", middleware.WithLogging(resourceHandler.Reload))

	return mux
}
