// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/relief-board/board"
	"github.com/danielhkuo/relief-board/cliparse"
	"github.com/danielhkuo/relief-board/models"
	"github.com/danielhkuo/relief-board/registry"
	"github.com/danielhkuo/relief-board/render"
	"github.com/danielhkuo/relief-board/validate"
)

// Flash codes carried across redirects
const (
	FlashAdded       = "added"
	FlashUnavailable = "unavailable"
	FlashStale       = "stale"

	FlashFulfilled      = "fulfilled"
	FlashNotFulfillable = "not-fulfillable"
)

var flashes = map[string]render.Flash{
	FlashAdded:       {Message: "Resource successfully added!", Kind: validate.KindSuccess},
	FlashUnavailable: {Message: "Selected resource is not available.", Kind: validate.KindDanger},
	FlashStale:       {Message: "Selected resource is no longer available. Please select another.", Kind: validate.KindDanger},

	FlashFulfilled:      {Message: "Resource marked as fulfilled.", Kind: validate.KindSuccess},
	FlashNotFulfillable: {Message: "Only resources in progress can be marked fulfilled.", Kind: validate.KindWarning},
}

type PageHandler struct {
	board    *board.Board
	renderer *render.Renderer
	cfg      cliparse.Config
	now      func() time.Time
}

func NewPageHandler(b *board.Board, renderer *render.Renderer, cfg cliparse.Config) *PageHandler {
	return &PageHandler{board: b, renderer: renderer, cfg: cfg, now: time.Now}
}

// Board handles GET /
// Re-reads the store so each page view shows the latest state
func (h *PageHandler) Board(w http.ResponseWriter, r *http.Request) {
	if _, err := h.board.Reload(r.Context()); err != nil {
		slog.Error("failed to reload board", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	h.renderBoard(w, http.StatusOK, func(p *render.Page) {
		if f, ok := flashes[r.URL.Query().Get("flash")]; ok {
			p.Flash = &f
		}
		p.Confirm = r.URL.Query().Get("confirm") == "1"
	})
}

// AddResource handles POST /volunteer/resources
func (h *PageHandler) AddResource(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := models.AddResourceRequest{
		Type:       r.PostFormValue("type"),
		CustomType: r.PostFormValue("custom_type"),
		Qty:        r.PostFormValue("qty"),
		Location:   r.PostFormValue("location"),
		Timeframe:  r.PostFormValue("timeframe"),
		Details:    r.PostFormValue("details"),
		Contact:    r.PostFormValue("contact"),
	}

	in, err := validate.Resource(req)
	if err != nil {
		// Keep what the volunteer typed
		h.renderBoard(w, http.StatusBadRequest, func(p *render.Page) {
			p.Flash = validationFlash(err)
			p.Volunteer = req
		})
		return
	}

	if _, _, err := h.board.AddResource(r.Context(), in); err != nil {
		slog.Error("failed to add resource", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	redirect(w, r, url.Values{"flash": {FlashAdded}})
}

// FulfillResource handles POST /volunteer/resources/{id}/fulfill
func (h *PageHandler) FulfillResource(w http.ResponseWriter, r *http.Request) {
	_, err := h.board.FulfillResource(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		redirect(w, r, url.Values{"flash": {FlashFulfilled}})
	case errors.Is(err, registry.ErrInvalidSelection), errors.Is(err, registry.ErrInvalidTransition):
		redirect(w, r, url.Values{"flash": {FlashNotFulfillable}})
	default:
		slog.Error("failed to fulfill resource", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
	}
}

// SelectResource handles GET /victim/select/{id}
// Reveals the follow-up form for the chosen resource
func (h *PageHandler) SelectResource(w http.ResponseWriter, r *http.Request) {
	res, ok := h.board.Lookup(r.PathValue("id"))
	if !ok || res.Status != models.StatusAvailable {
		redirect(w, r, url.Values{"flash": {FlashUnavailable}})
		return
	}

	h.renderBoard(w, http.StatusOK, func(p *render.Page) {
		p.Selection = &render.Selection{ID: res.ID, Type: res.Type, Location: res.Location}
	})
}

// SubmitRequest handles POST /victim/requests
func (h *PageHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	id := r.PostFormValue("resource_id")
	req := models.CreateRequestRequest{
		Name:           r.PostFormValue("name"),
		Urgency:        r.PostFormValue("urgency"),
		Contact:        r.PostFormValue("contact"),
		VictimLocation: r.PostFormValue("victimLocation"),
		Details:        r.PostFormValue("details"),
	}

	in, err := validate.Request(req)
	if err != nil {
		res, ok := h.board.Lookup(id)
		if !ok || res.Status != models.StatusAvailable {
			redirect(w, r, url.Values{"flash": {FlashStale}})
			return
		}
		h.renderBoard(w, http.StatusBadRequest, func(p *render.Page) {
			p.Flash = validationFlash(err)
			p.Selection = &render.Selection{ID: res.ID, Type: res.Type, Location: res.Location, Form: req}
		})
		return
	}

	_, err = h.board.RequestResource(r.Context(), id, in)
	if errors.Is(err, registry.ErrInvalidSelection) {
		redirect(w, r, url.Values{"flash": {FlashStale}})
		return
	}
	if err != nil {
		slog.Error("failed to record request", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	redirect(w, r, url.Values{"confirm": {"1"}})
}

// ResourcesFragment handles GET /fragments/resources
func (h *PageHandler) ResourcesFragment(w http.ResponseWriter, r *http.Request) {
	rows := render.ResourceRows(h.board.Resources(), h.now(), h.board.Extended())
	h.writeHTML(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.ResourcesTable(buf, rows)
	})
}

// AvailableFragment handles GET /fragments/available
func (h *PageHandler) AvailableFragment(w http.ResponseWriter, r *http.Request) {
	rows := render.AvailableRows(h.board.ListAvailable())
	h.writeHTML(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.AvailableTable(buf, rows)
	})
}

func (h *PageHandler) renderBoard(w http.ResponseWriter, status int, customize func(p *render.Page)) {
	page := render.NewPage(h.board.Resources(), h.board.ListAvailable(), h.now(), h.board.Extended())
	if customize != nil {
		customize(&page)
	}

	h.writeHTML(w, status, func(buf *bytes.Buffer) error {
		return h.renderer.Board(buf, page)
	})
}

// writeHTML buffers the output so a template error never sends a partial page
func (h *PageHandler) writeHTML(w http.ResponseWriter, status int, fn func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Render failure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}

func validationFlash(err error) *render.Flash {
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		return &render.Flash{Message: ve.Message, Kind: ve.Kind}
	}
	return &render.Flash{Message: err.Error(), Kind: validate.KindDanger}
}

// redirect sends the browser back to the board (post/redirect/get)
func redirect(w http.ResponseWriter, r *http.Request, q url.Values) {
	target := "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
