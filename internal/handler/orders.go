package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/draft"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/session"
)

// OrderReader is the read/delete slice of *gastro.OrderService. Order
// creation and editing go through the draft workflow, never through this
// handler.
type OrderReader interface {
	List(ctx context.Context) ([]gastro.Order, error)
	ListUnpaid(ctx context.Context) ([]gastro.Order, error)
	Get(ctx context.Context, id int) (gastro.Order, error)
	Delete(ctx context.Context, id int) error
}

// OrderHandler serves the order list/detail screens.
type OrderHandler struct {
	svc    OrderReader
	notify session.Notifier
	log    *zap.Logger
}

func NewOrderHandler(svc OrderReader, notify session.Notifier, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, notify: notify, log: log}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Delete)
	})
}

// orderResponse decorates the backend order with the derived money columns
// the list screen shows. Amounts are formatted to two decimals here, at the
// presentation boundary.
type orderResponse struct {
	gastro.Order
	Subtotal string `json:"subtotal"`
	Total    string `json:"total"`
}

func toOrderResponse(o gastro.Order) orderResponse {
	return orderResponse{
		Order:    o,
		Subtotal: draft.FromOrder(o).Subtotal().StringFixed(2),
		Total:    draft.OrderTotal(o).StringFixed(2),
	}
}

// List returns all orders, or only open ones when ?unpaid=true is set.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		orders []gastro.Order
		err    error
	)
	if r.URL.Query().Get("unpaid") == "true" {
		orders, err = h.svc.ListUnpaid(r.Context())
	} else {
		orders, err = h.svc.List(r.Context())
	}
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}
	order, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// Delete removes an order and tells open screens the collection changed.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.notify != nil {
		h.notify.OrdersChanged()
	}
	w.WriteHeader(http.StatusNoContent)
}
