package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/handler"
)

// --- Mock catalog ---

type mockItemService struct {
	items  map[int]gastro.MenuItem
	nextID int
	err    error // returned by every call when set
}

func newMockItemService() *mockItemService {
	return &mockItemService{items: make(map[int]gastro.MenuItem), nextID: 1}
}

func (m *mockItemService) List(_ context.Context) ([]gastro.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []gastro.MenuItem
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *mockItemService) Get(_ context.Context, id int) (gastro.MenuItem, error) {
	if m.err != nil {
		return gastro.MenuItem{}, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return gastro.MenuItem{}, &gastro.HTTPError{Status: http.StatusNotFound}
	}
	return item, nil
}

func (m *mockItemService) Create(_ context.Context, item gastro.MenuItem) (gastro.MenuItem, error) {
	if m.err != nil {
		return gastro.MenuItem{}, m.err
	}
	id := m.nextID
	m.nextID++
	item.ID = &id
	m.items[id] = item
	return item, nil
}

func (m *mockItemService) Update(_ context.Context, id int, item gastro.MenuItem) (gastro.MenuItem, error) {
	if m.err != nil {
		return gastro.MenuItem{}, m.err
	}
	if _, ok := m.items[id]; !ok {
		return gastro.MenuItem{}, &gastro.HTTPError{Status: http.StatusNotFound}
	}
	item.ID = &id
	m.items[id] = item
	return item, nil
}

func (m *mockItemService) Delete(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return &gastro.HTTPError{Status: http.StatusNotFound}
	}
	delete(m.items, id)
	return nil
}

// --- Helpers ---

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func setupItemRouter(svc *mockItemService) *chi.Mux {
	h := handler.NewItemHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/items", h.RegisterRoutes)
	return r
}

// --- Tests ---

func TestItemList_Empty(t *testing.T) {
	router := setupItemRouter(newMockItemService())

	rr := doRequest(t, router, "GET", "/items", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := decodeList(t, rr); len(got) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(got))
	}
}

func TestItemCreateAndGet(t *testing.T) {
	svc := newMockItemService()
	router := setupItemRouter(svc)

	rr := doRequest(t, router, "POST", "/items", map[string]interface{}{
		"nome":  "Caipirinha",
		"tipo":  "Bebida",
		"preco": 18.50,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	created := decodeObject(t, rr)
	if created["nome"] != "Caipirinha" {
		t.Errorf("nome: got %v", created["nome"])
	}
	if created["idItem"] == nil {
		t.Fatalf("expected assigned ID, got nil")
	}

	rr = doRequest(t, router, "GET", "/items/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	got := decodeObject(t, rr)
	if got["preco"] != 18.50 {
		t.Errorf("preco: got %v, want 18.50", got["preco"])
	}
}

func TestItemCreate_UnknownCategory(t *testing.T) {
	router := setupItemRouter(newMockItemService())

	rr := doRequest(t, router, "POST", "/items", map[string]interface{}{
		"nome":  "Mystery",
		"tipo":  "Lanche",
		"preco": 5.0,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestItemCreate_NegativePrice(t *testing.T) {
	router := setupItemRouter(newMockItemService())

	rr := doRequest(t, router, "POST", "/items", map[string]interface{}{
		"nome":  "Cola",
		"tipo":  "Bebida",
		"preco": -1.0,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestItemCategories(t *testing.T) {
	router := setupItemRouter(newMockItemService())

	rr := doRequest(t, router, "GET", "/items/categories", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	var categories []string
	if err := json.NewDecoder(rr.Body).Decode(&categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("expected category values")
	}
	found := false
	for _, c := range categories {
		if c == "Bebida" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Bebida among %v", categories)
	}
}

func TestItemGet_BackendStatusPassthrough(t *testing.T) {
	router := setupItemRouter(newMockItemService())

	rr := doRequest(t, router, "GET", "/items/42", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestItemList_BackendUnreachable(t *testing.T) {
	svc := newMockItemService()
	svc.err = &gastro.NetworkError{Err: context.DeadlineExceeded}
	router := setupItemRouter(svc)

	rr := doRequest(t, router, "GET", "/items", nil)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadGateway)
	}
}

func TestItemDelete(t *testing.T) {
	svc := newMockItemService()
	router := setupItemRouter(svc)

	doRequest(t, router, "POST", "/items", map[string]interface{}{
		"nome": "Cola", "tipo": "Bebida", "preco": 6.0,
	})

	rr := doRequest(t, router, "DELETE", "/items/1", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNoContent)
	}
	if len(svc.items) != 0 {
		t.Errorf("expected item removed, %d left", len(svc.items))
	}
}

func TestItemInvalidID(t *testing.T) {
	router := setupItemRouter(newMockItemService())

	rr := doRequest(t, router, "GET", "/items/abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
