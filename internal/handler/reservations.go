package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// ReservationService is satisfied by *gastro.ReservationService.
type ReservationService interface {
	List(ctx context.Context) ([]gastro.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]gastro.Reservation, error)
	Get(ctx context.Context, id int) (gastro.Reservation, error)
	Create(ctx context.Context, res gastro.Reservation) (gastro.Reservation, error)
	Update(ctx context.Context, id int, res gastro.Reservation) (gastro.Reservation, error)
	Delete(ctx context.Context, id int) error
}

type ReservationHandler struct {
	svc ReservationService
	log *zap.Logger
}

func NewReservationHandler(svc ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, log: log}
}

func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// List returns all reservations, or one day's when ?date=YYYY-MM-DD is set.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		reservations []gastro.Reservation
		err          error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		reservations, err = h.svc.ListByDate(r.Context(), date)
	} else {
		reservations, err = h.svc.List(r.Context())
	}
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if reservations == nil {
		reservations = []gastro.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reservation ID"})
		return
	}
	reservation, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reservation gastro.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if reservation.HolderName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "holder name is required"})
		return
	}
	if reservation.PartySize < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "party size must be at least 1"})
		return
	}

	created, err := h.svc.Create(r.Context(), reservation)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reservation ID"})
		return
	}
	var reservation gastro.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(r.Context(), id, reservation)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reservation ID"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
