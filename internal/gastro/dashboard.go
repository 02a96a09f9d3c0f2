package gastro

import (
	"context"
	"fmt"
	"net/url"
)

// Dashboard metric shapes. The backend precomputes everything; this side
// only fetches and renders.

type FinancialMetrics struct {
	GrossRevenue   float64 `json:"faturamentoBrutoTotal"`
	AvgOrderTicket float64 `json:"ticketMedioPorPedido"`
}

type TopItem struct {
	Name  string  `json:"nomeItem"`
	Value float64 `json:"valorAgregado"`
}

// OrderStatusCounts keys follow the backend status labels (see enum).
type OrderStatusCounts struct {
	Pending          int `json:"PENDENTE"`
	DeliveredNotPaid int `json:"ENTREGUE_NAO_PAGO"`
	Paid             int `json:"PAGO"`
}

type ReservationSummary struct {
	ReservationsToday    int `json:"totalReservasHoje"`
	GuestsToday          int `json:"totalPessoasEsperadasHoje"`
	ReservationsTomorrow int `json:"totalReservasAmanha"`
	GuestsTomorrow       int `json:"totalPessoasEsperadasAmanha"`
}

type QualityMetrics struct {
	AvgFoodScore    *float64 `json:"notaMediaComida"`
	AvgServiceScore *float64 `json:"notaMediaAtendimento"`
	FeedbackCount   int      `json:"totalFeedbacksRecebidos"`
}

// DashboardService wraps the precomputed metric endpoints under /dashboard.
// All ranged calls take inclusive YYYY-MM-DD dates.
type DashboardService struct {
	c *Client
}

func NewDashboardService(c *Client) *DashboardService {
	return &DashboardService{c: c}
}

func rangeQuery(start, end string) string {
	return fmt.Sprintf("dataInicial=%s&dataFinal=%s", url.QueryEscape(start), url.QueryEscape(end))
}

func (s *DashboardService) Financial(ctx context.Context, start, end string) (FinancialMetrics, error) {
	var out FinancialMetrics
	err := s.c.get(ctx, "/dashboard/financeiro?"+rangeQuery(start, end), &out)
	return out, err
}

func (s *DashboardService) TopSellingItems(ctx context.Context, start, end string, limit int) ([]TopItem, error) {
	var out []TopItem
	path := fmt.Sprintf("/dashboard/vendas/top-itens-mais-vendidos?%s&limite=%d", rangeQuery(start, end), limit)
	err := s.c.get(ctx, path, &out)
	return out, err
}

func (s *DashboardService) TopProfitableItems(ctx context.Context, start, end string, limit int) ([]TopItem, error) {
	var out []TopItem
	path := fmt.Sprintf("/dashboard/vendas/top-itens-mais-rentaveis?%s&limite=%d", rangeQuery(start, end), limit)
	err := s.c.get(ctx, path, &out)
	return out, err
}

func (s *DashboardService) UnitsSold(ctx context.Context, start, end string) (int, error) {
	var out int
	err := s.c.get(ctx, "/dashboard/vendas/total-unidades-vendidas?"+rangeQuery(start, end), &out)
	return out, err
}

func (s *DashboardService) OrdersCreated(ctx context.Context, start, end string) (int, error) {
	var out int
	err := s.c.get(ctx, "/dashboard/pedidos/contagem-criados?"+rangeQuery(start, end), &out)
	return out, err
}

func (s *DashboardService) OrderStatusCounts(ctx context.Context, start, end string) (OrderStatusCounts, error) {
	var out OrderStatusCounts
	err := s.c.get(ctx, "/dashboard/pedidos/contagem-por-status?"+rangeQuery(start, end), &out)
	return out, err
}

func (s *DashboardService) ReservationsToday(ctx context.Context) (ReservationSummary, error) {
	var out ReservationSummary
	err := s.c.get(ctx, "/dashboard/reservas/hoje", &out)
	return out, err
}

func (s *DashboardService) ReservationsTomorrow(ctx context.Context) (ReservationSummary, error) {
	var out ReservationSummary
	err := s.c.get(ctx, "/dashboard/reservas/amanha", &out)
	return out, err
}

func (s *DashboardService) Quality(ctx context.Context, start, end string) (QualityMetrics, error) {
	var out QualityMetrics
	err := s.c.get(ctx, "/dashboard/qualidade/metricas-feedback?"+rangeQuery(start, end), &out)
	return out, err
}
