package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// EmployeeService defines the staff calls the employee screens need.
// Satisfied by *gastro.EmployeeService.
type EmployeeService interface {
	List(ctx context.Context) ([]gastro.Employee, error)
	Get(ctx context.Context, id int) (gastro.Employee, error)
	Create(ctx context.Context, e gastro.Employee) (gastro.Employee, error)
	Update(ctx context.Context, id int, e gastro.Employee) (gastro.Employee, error)
	Delete(ctx context.Context, id int) error
}

// EmployeeHandler serves the staff list/detail screens. The backend has no
// role query, so the ?role= filter is applied here after the fetch.
type EmployeeHandler struct {
	svc EmployeeService
	log *zap.Logger
}

func NewEmployeeHandler(svc EmployeeService, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: log}
}

func (h *EmployeeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	if role := r.URL.Query().Get("role"); role != "" {
		employees = gastro.FilterByRole(employees, role)
	}
	if employees == nil {
		employees = []gastro.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid employee ID"})
		return
	}
	employee, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var employee gastro.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if employee.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if employee.Role == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "role is required"})
		return
	}

	created, err := h.svc.Create(r.Context(), employee)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid employee ID"})
		return
	}
	var employee gastro.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(r.Context(), id, employee)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid employee ID"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
