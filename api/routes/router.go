package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/perfectbooks/stock-api/api/controllers"
	"github.com/perfectbooks/stock-api/api/middleware"
	"github.com/perfectbooks/stock-api/pkg/config"
	"github.com/perfectbooks/stock-api/pkg/logger"
	"github.com/perfectbooks/stock-api/pkg/metrics"
)

// Deps carries everything the router mounts.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Books       *controllers.BooksController
	Orders      *controllers.OrdersController
	Dashboard   *controllers.DashboardController
	Health      *controllers.HealthController
	HTTPMetrics *metrics.HTTPMetrics
}

// New builds the HTTP routing table.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", deps.Health.Live)
		r.Get("/ready", deps.Health.Ready)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Get("/", deps.Books.List)
			r.Post("/", deps.Books.Create)
			r.Put("/{bookId}", deps.Books.Update)
			r.Delete("/{bookId}", deps.Books.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", deps.Orders.List)
			r.Post("/", deps.Orders.Create)
			r.Put("/{orderId}", deps.Orders.Update)
			r.Delete("/{orderId}", deps.Orders.Delete)
		})

		r.Get("/activities", deps.Dashboard.Activities)
		r.Get("/chart-data", deps.Dashboard.ChartData)
		r.Get("/dashboard-summary", deps.Dashboard.Summary)
	})

	return r
}
