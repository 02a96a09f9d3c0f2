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

type mockMetrics struct {
	financialErr error
	qualityErr   error

	topLimitSeen int
}

func (m *mockMetrics) Financial(_ context.Context, start, end string) (gastro.FinancialMetrics, error) {
	if m.financialErr != nil {
		return gastro.FinancialMetrics{}, m.financialErr
	}
	return gastro.FinancialMetrics{GrossRevenue: 1234.56, AvgOrderTicket: 61.72}, nil
}

func (m *mockMetrics) TopSellingItems(_ context.Context, start, end string, limit int) ([]gastro.TopItem, error) {
	m.topLimitSeen = limit
	return []gastro.TopItem{{Name: "Cola", Value: 42}}, nil
}

func (m *mockMetrics) TopProfitableItems(_ context.Context, start, end string, limit int) ([]gastro.TopItem, error) {
	return []gastro.TopItem{{Name: "Picanha", Value: 958.80}}, nil
}

func (m *mockMetrics) UnitsSold(_ context.Context, start, end string) (int, error) {
	return 87, nil
}

func (m *mockMetrics) OrdersCreated(_ context.Context, start, end string) (int, error) {
	return 20, nil
}

func (m *mockMetrics) OrderStatusCounts(_ context.Context, start, end string) (gastro.OrderStatusCounts, error) {
	return gastro.OrderStatusCounts{Pending: 3, DeliveredNotPaid: 2, Paid: 15}, nil
}

func (m *mockMetrics) ReservationsToday(_ context.Context) (gastro.ReservationSummary, error) {
	return gastro.ReservationSummary{ReservationsToday: 4, GuestsToday: 12}, nil
}

func (m *mockMetrics) ReservationsTomorrow(_ context.Context) (gastro.ReservationSummary, error) {
	return gastro.ReservationSummary{ReservationsTomorrow: 2, GuestsTomorrow: 6}, nil
}

func (m *mockMetrics) Quality(_ context.Context, start, end string) (gastro.QualityMetrics, error) {
	if m.qualityErr != nil {
		return gastro.QualityMetrics{}, m.qualityErr
	}
	score := 8.5
	return gastro.QualityMetrics{AvgFoodScore: &score, FeedbackCount: 11}, nil
}

func setupDashboardRouter(svc *mockMetrics, topLimit int) *chi.Mux {
	h := handler.NewDashboardHandler(svc, topLimit, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/dashboard", h.RegisterRoutes)
	return r
}

func TestDashboardOverview_AllPanels(t *testing.T) {
	svc := &mockMetrics{}
	router := setupDashboardRouter(svc, 5)

	rr := doRequest(t, router, "GET", "/dashboard/overview?start=2026-08-01&end=2026-08-29", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["dataInicial"] != "2026-08-01" || resp["dataFinal"] != "2026-08-29" {
		t.Errorf("range echoed wrong: %v .. %v", resp["dataInicial"], resp["dataFinal"])
	}

	financial := resp["financeiro"].(map[string]interface{})
	if financial["faturamentoBrutoTotal"] != 1234.56 {
		t.Errorf("gross revenue: got %v", financial["faturamentoBrutoTotal"])
	}
	if resp["unidadesVendidas"].(float64) != 87 {
		t.Errorf("units sold: got %v", resp["unidadesVendidas"])
	}
	status := resp["pedidosPorStatus"].(map[string]interface{})
	if status["PAGO"].(float64) != 15 {
		t.Errorf("paid count: got %v", status["PAGO"])
	}
	if svc.topLimitSeen != 5 {
		t.Errorf("top limit: got %d, want 5", svc.topLimitSeen)
	}
}

func TestDashboardOverview_PanelFailureIsNull(t *testing.T) {
	svc := &mockMetrics{financialErr: &gastro.NetworkError{Err: context.DeadlineExceeded}}
	router := setupDashboardRouter(svc, 5)

	rr := doRequest(t, router, "GET", "/dashboard/overview", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; one panel failing must not fail the screen", rr.Code)
	}

	resp := decodeObject(t, rr)
	if resp["financeiro"] != nil {
		t.Errorf("failed panel should be null, got %v", resp["financeiro"])
	}
	if resp["pedidosCriados"].(float64) != 20 {
		t.Errorf("healthy panel lost: %v", resp["pedidosCriados"])
	}
}

func TestDashboardOverview_BadDates(t *testing.T) {
	router := setupDashboardRouter(&mockMetrics{}, 5)

	for _, query := range []string{
		"?start=29-08-2026",
		"?end=not-a-date",
		"?start=2026-08-29&end=2026-08-01",
	} {
		rr := doRequest(t, router, "GET", "/dashboard/overview"+query, nil)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want %d", query, rr.Code, http.StatusBadRequest)
		}
	}
}
