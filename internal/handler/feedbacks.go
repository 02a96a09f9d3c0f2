package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// FeedbackService is satisfied by *gastro.FeedbackService.
type FeedbackService interface {
	List(ctx context.Context) ([]gastro.Feedback, error)
	Get(ctx context.Context, id int) (gastro.Feedback, error)
	Create(ctx context.Context, f gastro.Feedback) (gastro.Feedback, error)
	Update(ctx context.Context, id int, f gastro.Feedback) (gastro.Feedback, error)
	Delete(ctx context.Context, id int) error
}

type FeedbackHandler struct {
	svc FeedbackService
	log *zap.Logger
}

func NewFeedbackHandler(svc FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: log}
}

func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if feedbacks == nil {
		feedbacks = []gastro.Feedback{}
	}
	writeJSON(w, http.StatusOK, feedbacks)
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}
	feedback, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var feedback gastro.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if feedback.OrderID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "order is required"})
		return
	}

	created, err := h.svc.Create(r.Context(), feedback)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}
	var feedback gastro.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(r.Context(), id, feedback)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
