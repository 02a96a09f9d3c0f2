package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/handler"
)

type mockOrderReader struct {
	orders  map[int]gastro.Order
	deleted []int
}

func (m *mockOrderReader) List(_ context.Context) ([]gastro.Order, error) {
	var out []gastro.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockOrderReader) ListUnpaid(_ context.Context) ([]gastro.Order, error) {
	var out []gastro.Order
	for _, o := range m.orders {
		if !o.Paid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderReader) Get(_ context.Context, id int) (gastro.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return gastro.Order{}, &gastro.HTTPError{Status: http.StatusNotFound}
	}
	return o, nil
}

func (m *mockOrderReader) Delete(_ context.Context, id int) error {
	if _, ok := m.orders[id]; !ok {
		return &gastro.HTTPError{Status: http.StatusNotFound}
	}
	delete(m.orders, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func setupOrderRouter(store *mockOrderReader, notify *stubNotify) *chi.Mux {
	h := handler.NewOrderHandler(store, notify, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/orders", h.RegisterRoutes)
	return r
}

func testOrder(id int, paid bool) gastro.Order {
	price := 10.00
	return gastro.Order{
		ID:       &id,
		TableID:  1,
		Paid:     paid,
		Discount: 10,
		Lines: []gastro.OrderLine{
			{ItemID: 7, Quantity: 2, Name: "Cola", Category: "Bebida", UnitPrice: &price},
		},
	}
}

func TestOrderGet_DerivedTotals(t *testing.T) {
	store := &mockOrderReader{orders: map[int]gastro.Order{5: testOrder(5, false)}}
	router := setupOrderRouter(store, &stubNotify{})

	rr := doRequest(t, router, "GET", "/orders/5", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["subtotal"] != "20.00" {
		t.Errorf("subtotal: got %v, want 20.00", resp["subtotal"])
	}
	if resp["total"] != "18.00" {
		t.Errorf("total: got %v, want 18.00", resp["total"])
	}
}

func TestOrderList_UnpaidFilter(t *testing.T) {
	store := &mockOrderReader{orders: map[int]gastro.Order{
		1: testOrder(1, true),
		2: testOrder(2, false),
	}}
	router := setupOrderRouter(store, &stubNotify{})

	rr := doRequest(t, router, "GET", "/orders?unpaid=true", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	got := decodeList(t, rr)
	if len(got) != 1 {
		t.Fatalf("expected 1 unpaid order, got %d", len(got))
	}
	if got[0]["idPedido"].(float64) != 2 {
		t.Errorf("unexpected order: %v", got[0]["idPedido"])
	}
}

func TestOrderDelete_Notifies(t *testing.T) {
	store := &mockOrderReader{orders: map[int]gastro.Order{5: testOrder(5, false)}}
	notify := &stubNotify{}
	router := setupOrderRouter(store, notify)

	rr := doRequest(t, router, "DELETE", "/orders/5", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d", rr.Code)
	}
	if notify.calls != 1 {
		t.Errorf("notify calls: got %d, want 1", notify.calls)
	}

	// A failed delete must not notify.
	rr = doRequest(t, router, "DELETE", "/orders/99", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rr.Code)
	}
	if notify.calls != 1 {
		t.Errorf("notify calls after failure: got %d, want 1", notify.calls)
	}
}
