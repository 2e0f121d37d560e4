package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/inventory-insights/api/controllers"
	chartcontrollers "github.com/angelmondragon/inventory-insights/api/controllers/charts"
	"github.com/angelmondragon/inventory-insights/api/controllers/frontend"
	"github.com/angelmondragon/inventory-insights/api/middleware"
	"github.com/angelmondragon/inventory-insights/api/responses"
	"github.com/angelmondragon/inventory-insights/internal/analytics"
	"github.com/angelmondragon/inventory-insights/pkg/config"
	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
	"github.com/angelmondragon/inventory-insights/pkg/metrics"
)

// Dependencies is everything the router needs. Cache is nil when the render cache is disabled.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	Charts      analytics.Service
	Cache       controllers.Pinger
	Static      *frontend.Static
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

// renderRoutes maps every render path, legacy product_* aliases included, to its chart.
var renderRoutes = []struct {
	path string
	kind analytics.ChartKind
}{
	{"/category", analytics.ChartCategory},
	{"/product_category", analytics.ChartCategory},
	{"/stock", analytics.ChartStock},
	{"/product_stock", analytics.ChartStock},
	{"/quote_status", analytics.ChartQuoteStatus},
	{"/revenue_trend", analytics.ChartRevenueTrend},
	{"/top_products", analytics.ChartTopProducts},
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.Cache, logg))
	})

	r.Route("/render", func(r chi.Router) {
		r.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))
		for _, route := range renderRoutes {
			r.Post(route.path, chartcontrollers.Render(route.kind, deps.Charts, logg))
		}
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/firebase-config.js", frontend.ConfigScript(logg))

	if deps.Static != nil {
		r.Get("/", deps.Static.Index())
		r.Get("/*", deps.Static.File())
	}

	return r
}
