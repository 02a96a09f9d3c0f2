package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/session"
)

// DraftManager is the handler's view of *session.Manager.
type DraftManager interface {
	Open() session.Snapshot
	OpenForOrder(ctx context.Context, orderID int) (session.Snapshot, error)
	Get(id uuid.UUID) (session.Snapshot, error)
	AddItem(ctx context.Context, id uuid.UUID, itemID int) (session.Snapshot, error)
	SetQuantity(id uuid.UUID, itemID, quantity int) (session.Snapshot, error)
	RemoveItem(id uuid.UUID, itemID int) (session.Snapshot, error)
	SetDetails(id uuid.UUID, details session.Details) (session.Snapshot, error)
	Submit(ctx context.Context, id uuid.UUID) (gastro.Order, error)
	Discard(id uuid.UUID)
	References(ctx context.Context) (session.References, error)
}

// DraftHandler exposes the order composition workflow: open a draft, edit it
// field by field, then submit or discard.
type DraftHandler struct {
	mgr DraftManager
	log *zap.Logger
}

func NewDraftHandler(mgr DraftManager, log *zap.Logger) *DraftHandler {
	return &DraftHandler{mgr: mgr, log: log}
}

func (h *DraftHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Open)
	r.Get("/references", h.References)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.SetDetails)
		r.Delete("/", h.Discard)
		r.Post("/submit", h.Submit)
		r.Post("/items", h.AddItem)
		r.Route("/items/{itemID}", func(r chi.Router) {
			r.Patch("/", h.SetQuantity)
			r.Delete("/", h.RemoveItem)
		})
	})
}

// draftLine mirrors one draft line for the screen, with money already
// formatted to two decimals.
type draftLine struct {
	ItemID    int    `json:"idItem"`
	Name      string `json:"nomeItem"`
	Category  string `json:"tipoItem"`
	UnitPrice string `json:"precoUnitario"`
	Quantity  int    `json:"quantidade"`
	LineTotal string `json:"totalLinha"`
}

// draftResponse is the full draft view. Form fields come back exactly as
// typed (raw strings, empty when unset); only the money columns are derived.
type draftResponse struct {
	ID         uuid.UUID   `json:"id"`
	OrderID    *int        `json:"idPedido"`
	TableID    string      `json:"idMesa"`
	WaiterID   string      `json:"idGarcom"`
	ManagerID  string      `json:"idGerente"`
	Discount   string      `json:"desconto"`
	Delivered  bool        `json:"entregue"`
	Paid       bool        `json:"pago"`
	Lines      []draftLine `json:"itensDoPedido"`
	Subtotal   string      `json:"subtotal"`
	Total      string      `json:"total"`
	Submitting bool        `json:"submitting"`
}

func toDraftResponse(snap session.Snapshot) draftResponse {
	lines := make([]draftLine, len(snap.Draft.Lines))
	for i, l := range snap.Draft.Lines {
		lines[i] = draftLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Category:  l.Category,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			LineTotal: l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).StringFixed(2),
		}
	}
	return draftResponse{
		ID:         snap.ID,
		OrderID:    snap.OrderID,
		TableID:    snap.Draft.TableID,
		WaiterID:   snap.Draft.WaiterID,
		ManagerID:  snap.Draft.ManagerID,
		Discount:   snap.Draft.Discount,
		Delivered:  snap.Draft.Delivered,
		Paid:       snap.Draft.Paid,
		Lines:      lines,
		Subtotal:   snap.Subtotal.StringFixed(2),
		Total:      snap.Total.StringFixed(2),
		Submitting: snap.Submitting,
	}
}

func draftID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// Open starts a draft session. With an idPedido in the body the draft is
// seeded from that order for editing; without one it starts empty.
func (h *DraftHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID *int `json:"idPedido"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}

	if req.OrderID == nil {
		writeJSON(w, http.StatusCreated, toDraftResponse(h.mgr.Open()))
		return
	}

	snap, err := h.mgr.OpenForOrder(r.Context(), *req.OrderID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDraftResponse(snap))
}

// References returns the picker data for the order screen. One backend list
// failing still yields the others, so the screen degrades instead of dying.
func (h *DraftHandler) References(w http.ResponseWriter, r *http.Request) {
	refs, err := h.mgr.References(r.Context())
	if err != nil {
		h.log.Warn("reference fetch partially failed", zap.Error(err))
	}
	if refs.Items == nil {
		refs.Items = []gastro.MenuItem{}
	}
	if refs.Tables == nil {
		refs.Tables = []gastro.Table{}
	}
	if refs.Waiters == nil {
		refs.Waiters = []gastro.Employee{}
	}
	if refs.Managers == nil {
		refs.Managers = []gastro.Employee{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"itens":    refs.Items,
		"mesas":    refs.Tables,
		"garcons":  refs.Waiters,
		"gerentes": refs.Managers,
	})
}

func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	snap, err := h.mgr.Get(id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(snap))
}

// SetDetails applies form-field edits. Absent fields stay as they are;
// values are raw strings and only checked at submission.
func (h *DraftHandler) SetDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	var req struct {
		TableID   *string `json:"idMesa"`
		WaiterID  *string `json:"idGarcom"`
		ManagerID *string `json:"idGerente"`
		Discount  *string `json:"desconto"`
		Delivered *bool   `json:"entregue"`
		Paid      *bool   `json:"pago"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	snap, err := h.mgr.SetDetails(id, session.Details{
		TableID:   req.TableID,
		WaiterID:  req.WaiterID,
		ManagerID: req.ManagerID,
		Discount:  req.Discount,
		Delivered: req.Delivered,
		Paid:      req.Paid,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(snap))
}

func (h *DraftHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	var req struct {
		ItemID int `json:"idItem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ItemID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item is required"})
		return
	}

	snap, err := h.mgr.AddItem(r.Context(), id, req.ItemID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(snap))
}

func (h *DraftHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	itemID, ok := intParam(r, "itemID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}
	var req struct {
		Quantity int `json:"quantidade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	snap, err := h.mgr.SetQuantity(id, itemID, req.Quantity)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(snap))
}

func (h *DraftHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	itemID, ok := intParam(r, "itemID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	snap, err := h.mgr.RemoveItem(id, itemID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(snap))
}

// Submit sends the draft to the backend. On success the session is gone and
// the saved order comes back; on failure the draft stays open for correction.
func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	order, err := h.mgr.Submit(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid draft ID"})
		return
	}
	h.mgr.Discard(id)
	w.WriteHeader(http.StatusNoContent)
}
