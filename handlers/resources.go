// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/relief-board/board"
	"github.com/danielhkuo/relief-board/cliparse"
	"github.com/danielhkuo/relief-board/middleware"
	"github.com/danielhkuo/relief-board/models"
	"github.com/danielhkuo/relief-board/registry"
	"github.com/danielhkuo/relief-board/validate"
)

type ResourceHandler struct {
	board *board.Board
	cfg   cliparse.Config
}

func NewResourceHandler(b *board.Board, cfg cliparse.Config) *ResourceHandler {
	return &ResourceHandler{board: b, cfg: cfg}
}

// ListResources handles GET /api/resources
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.board.Resources())
}

// ListAvailable handles GET /api/resources/available
// Indices refer to the unfiltered list returned by ListResources
func (h *ResourceHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.board.ListAvailable())
}

// AddResource handles POST /api/resources
func (h *ResourceHandler) AddResource(w http.ResponseWriter, r *http.Request) {
	var req models.AddResourceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	in, err := validate.Resource(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	idx, res, err := h.board.AddResource(r.Context(), in)
	if err != nil {
		writeBoardError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddResourceResponse{
		Index:    idx,
		Resource: res,
	})
}

// RequestResource handles POST /api/resources/{id}/requests
func (h *ResourceHandler) RequestResource(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "resource id is required")
		return
	}

	var req models.CreateRequestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	in, err := validate.Request(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	res, err := h.board.RequestResource(r.Context(), id, in)
	if err != nil {
		writeBoardError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, res)
}

// FulfillResource handles POST /api/resources/{id}/fulfill
// Only the extended lifecycle allows it
func (h *ResourceHandler) FulfillResource(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "resource id is required")
		return
	}

	res, err := h.board.FulfillResource(r.Context(), id)
	if err != nil {
		writeBoardError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, res)
}

// Reload handles POST /api/reload
func (h *ResourceHandler) Reload(w http.ResponseWriter, r *http.Request) {
	n, err := h.board.Reload(r.Context())
	if err != nil {
		writeBoardError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{Count: n})
}

// writeBoardError maps board errors to HTTP status codes
func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrInvalidSelection):
		middleware.ErrorResponse(w, http.StatusConflict, "Selected resource is no longer available")
	case errors.Is(err, registry.ErrInvalidTransition):
		middleware.ErrorResponse(w, http.StatusConflict, "Status transition not allowed")
	default:
		slog.Error("board operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage failure")
	}
}

func validationMessage(err error) string {
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
