package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/config"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/handler"
	"github.com/johny-gastrobar/backoffice/internal/session"
	"github.com/johny-gastrobar/backoffice/internal/ws"
)

// Services bundles the backend API wrappers the handlers sit on.
type Services struct {
	Items        *gastro.ItemService
	Employees    *gastro.EmployeeService
	Tables       *gastro.TableService
	Reservations *gastro.ReservationService
	Orders       *gastro.OrderService
	Payments     *gastro.PaymentService
	Feedbacks    *gastro.FeedbackService
	Dashboard    *gastro.DashboardService
}

// New wires every screen endpoint onto one chi router.
func New(cfg *config.Config, svcs Services, sessions *session.Manager, hub *ws.Hub, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			handler.NewItemHandler(svcs.Items, log).RegisterRoutes(r)
		})
		r.Route("/employees", func(r chi.Router) {
			handler.NewEmployeeHandler(svcs.Employees, log).RegisterRoutes(r)
		})
		r.Route("/tables", func(r chi.Router) {
			handler.NewTableHandler(svcs.Tables, log).RegisterRoutes(r)
		})
		r.Route("/reservations", func(r chi.Router) {
			handler.NewReservationHandler(svcs.Reservations, log).RegisterRoutes(r)
		})
		r.Route("/orders", func(r chi.Router) {
			handler.NewOrderHandler(svcs.Orders, hub, log).RegisterRoutes(r)
		})
		r.Route("/payments", func(r chi.Router) {
			handler.NewPaymentHandler(svcs.Payments, log).RegisterRoutes(r)
		})
		r.Route("/feedbacks", func(r chi.Router) {
			handler.NewFeedbackHandler(svcs.Feedbacks, log).RegisterRoutes(r)
		})
		r.Route("/drafts", func(r chi.Router) {
			handler.NewDraftHandler(sessions, log).RegisterRoutes(r)
		})
		r.Route("/dashboard", func(r chi.Router) {
			handler.NewDashboardHandler(svcs.Dashboard, cfg.Dashboard.TopItemsLimit, log).RegisterRoutes(r)
		})
	})

	r.Get("/ws/orders", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWS(hub, log, w, req)
	})

	return r
}
