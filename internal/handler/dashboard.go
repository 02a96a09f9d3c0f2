package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

// MetricsSource is satisfied by *gastro.DashboardService.
type MetricsSource interface {
	Financial(ctx context.Context, start, end string) (gastro.FinancialMetrics, error)
	TopSellingItems(ctx context.Context, start, end string, limit int) ([]gastro.TopItem, error)
	TopProfitableItems(ctx context.Context, start, end string, limit int) ([]gastro.TopItem, error)
	UnitsSold(ctx context.Context, start, end string) (int, error)
	OrdersCreated(ctx context.Context, start, end string) (int, error)
	OrderStatusCounts(ctx context.Context, start, end string) (gastro.OrderStatusCounts, error)
	ReservationsToday(ctx context.Context) (gastro.ReservationSummary, error)
	ReservationsTomorrow(ctx context.Context) (gastro.ReservationSummary, error)
	Quality(ctx context.Context, start, end string) (gastro.QualityMetrics, error)
}

// DashboardHandler assembles the overview screen from the backend's metric
// endpoints in one round trip.
type DashboardHandler struct {
	svc      MetricsSource
	topLimit int
	log      *zap.Logger
}

func NewDashboardHandler(svc MetricsSource, topLimit int, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, topLimit: topLimit, log: log}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/overview", h.Overview)
}

// overviewResponse carries every dashboard panel. A panel whose fetch failed
// is null; the screen renders the rest and marks the hole.
type overviewResponse struct {
	Start                string                     `json:"dataInicial"`
	End                  string                     `json:"dataFinal"`
	Financial            *gastro.FinancialMetrics   `json:"financeiro"`
	TopSellingItems      []gastro.TopItem           `json:"topItensMaisVendidos"`
	TopProfitableItems   []gastro.TopItem           `json:"topItensMaisRentaveis"`
	UnitsSold            *int                       `json:"unidadesVendidas"`
	OrdersCreated        *int                       `json:"pedidosCriados"`
	StatusCounts         *gastro.OrderStatusCounts  `json:"pedidosPorStatus"`
	ReservationsToday    *gastro.ReservationSummary `json:"reservasHoje"`
	ReservationsTomorrow *gastro.ReservationSummary `json:"reservasAmanha"`
	Quality              *gastro.QualityMetrics     `json:"qualidade"`
}

const dateLayout = "2006-01-02"

// Overview fans out to all metric endpoints concurrently. The range defaults
// to today; ?start and ?end (YYYY-MM-DD, inclusive) narrow or widen it.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format(dateLayout)
	start, end := today, today
	if s := r.URL.Query().Get("start"); s != "" {
		if _, err := time.Parse(dateLayout, s); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = s
	}
	if e := r.URL.Query().Get("end"); e != "" {
		if _, err := time.Parse(dateLayout, e); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end must be YYYY-MM-DD"})
			return
		}
		end = e
	}
	if start > end {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start must not be after end"})
		return
	}

	ctx := r.Context()
	resp := overviewResponse{Start: start, End: end}

	var wg sync.WaitGroup
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				h.log.Warn("dashboard panel fetch failed", zap.String("panel", name), zap.Error(err))
			}
		}()
	}

	fetch("financial", func() error {
		m, err := h.svc.Financial(ctx, start, end)
		if err == nil {
			resp.Financial = &m
		}
		return err
	})
	fetch("top_selling", func() error {
		items, err := h.svc.TopSellingItems(ctx, start, end, h.topLimit)
		if err == nil {
			if items == nil {
				items = []gastro.TopItem{}
			}
			resp.TopSellingItems = items
		}
		return err
	})
	fetch("top_profitable", func() error {
		items, err := h.svc.TopProfitableItems(ctx, start, end, h.topLimit)
		if err == nil {
			if items == nil {
				items = []gastro.TopItem{}
			}
			resp.TopProfitableItems = items
		}
		return err
	})
	fetch("units_sold", func() error {
		n, err := h.svc.UnitsSold(ctx, start, end)
		if err == nil {
			resp.UnitsSold = &n
		}
		return err
	})
	fetch("orders_created", func() error {
		n, err := h.svc.OrdersCreated(ctx, start, end)
		if err == nil {
			resp.OrdersCreated = &n
		}
		return err
	})
	fetch("status_counts", func() error {
		c, err := h.svc.OrderStatusCounts(ctx, start, end)
		if err == nil {
			resp.StatusCounts = &c
		}
		return err
	})
	fetch("reservations_today", func() error {
		s, err := h.svc.ReservationsToday(ctx)
		if err == nil {
			resp.ReservationsToday = &s
		}
		return err
	})
	fetch("reservations_tomorrow", func() error {
		s, err := h.svc.ReservationsTomorrow(ctx)
		if err == nil {
			resp.ReservationsTomorrow = &s
		}
		return err
	})
	fetch("quality", func() error {
		q, err := h.svc.Quality(ctx, start, end)
		if err == nil {
			resp.Quality = &q
		}
		return err
	})
	wg.Wait()

	writeJSON(w, http.StatusOK, resp)
}
