package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/enum"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// ItemService defines the catalog calls the item screens need.
// Satisfied by *gastro.ItemService; narrow interface for testability.
type ItemService interface {
	List(ctx context.Context) ([]gastro.MenuItem, error)
	Get(ctx context.Context, id int) (gastro.MenuItem, error)
	Create(ctx context.Context, item gastro.MenuItem) (gastro.MenuItem, error)
	Update(ctx context.Context, id int, item gastro.MenuItem) (gastro.MenuItem, error)
	Delete(ctx context.Context, id int) error
}

// ItemHandler serves the menu item list/detail screens.
type ItemHandler struct {
	svc ItemService
	log *zap.Logger
}

func NewItemHandler(svc ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: log}
}

func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/categories", h.Categories)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// List returns the whole catalog.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if items == nil {
		items = []gastro.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Categories returns the category values the item form's picker offers.
func (h *ItemHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, enum.Categories)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}
	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item gastro.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg, ok := validateItem(item); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	created, err := h.svc.Create(r.Context(), item)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}
	var item gastro.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg, ok := validateItem(item); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	updated, err := h.svc.Update(r.Context(), id, item)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateItem covers what the item form enforces before calling out; the
// backend remains the real validator.
func validateItem(item gastro.MenuItem) (string, bool) {
	if item.Name == "" {
		return "name is required", false
	}
	if !enum.IsValidCategory(item.Category) {
		return "unknown category", false
	}
	if item.Price < 0 {
		return "price must not be negative", false
	}
	return "", true
}
