package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// TableService is satisfied by *gastro.TableService.
type TableService interface {
	List(ctx context.Context) ([]gastro.Table, error)
	Get(ctx context.Context, id int) (gastro.Table, error)
	Create(ctx context.Context, t gastro.Table) (gastro.Table, error)
	Update(ctx context.Context, id int, t gastro.Table) (gastro.Table, error)
	Delete(ctx context.Context, id int) error
}

type TableHandler struct {
	svc TableService
	log *zap.Logger
}

func NewTableHandler(svc TableService, log *zap.Logger) *TableHandler {
	return &TableHandler{svc: svc, log: log}
}

func (h *TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if tables == nil {
		tables = []gastro.Table{}
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid table ID"})
		return
	}
	table, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var table gastro.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if table.Capacity < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "capacity must be at least 1"})
		return
	}

	created, err := h.svc.Create(r.Context(), table)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid table ID"})
		return
	}
	var table gastro.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(r.Context(), id, table)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid table ID"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
