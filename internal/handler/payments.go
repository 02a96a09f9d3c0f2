package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// PaymentService is satisfied by *gastro.PaymentService. The backend
// exposes no payment delete, so neither does this screen.
type PaymentService interface {
	List(ctx context.Context) ([]gastro.Payment, error)
	Get(ctx context.Context, id int) (gastro.Payment, error)
	GetByOrder(ctx context.Context, orderID int) (gastro.Payment, error)
	Create(ctx context.Context, p gastro.Payment) (gastro.Payment, error)
	Update(ctx context.Context, id int, p gastro.Payment) (gastro.Payment, error)
}

type PaymentHandler struct {
	svc PaymentService
	log *zap.Logger
}

func NewPaymentHandler(svc PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: log}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
	})
}

// List returns all payments, or the one settling ?order={id}.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("order"); raw != "" {
		orderID, err := strconv.Atoi(raw)
		if err != nil || orderID <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
			return
		}
		payment, err := h.svc.GetByOrder(r.Context(), orderID)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, []gastro.Payment{payment})
		return
	}

	payments, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if payments == nil {
		payments = []gastro.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payment ID"})
		return
	}
	payment, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payment gastro.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if payment.OrderID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "order is required"})
		return
	}
	if payment.Method == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "payment method is required"})
		return
	}

	created, err := h.svc.Create(r.Context(), payment)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payment ID"})
		return
	}
	var payment gastro.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.Update(r.Context(), id, payment)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
