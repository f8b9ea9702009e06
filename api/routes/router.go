package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ruachlabs/telafome-backend/api/controllers"
	"github.com/ruachlabs/telafome-backend/api/middleware"
	"github.com/ruachlabs/telafome-backend/internal/catalog"
	ordersvc "github.com/ruachlabs/telafome-backend/internal/orders"
	"github.com/ruachlabs/telafome-backend/internal/seo"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	"github.com/ruachlabs/telafome-backend/pkg/config"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
	"github.com/ruachlabs/telafome-backend/pkg/metrics"
	"github.com/ruachlabs/telafome-backend/pkg/redis"
	"github.com/ruachlabs/telafome-backend/pkg/sheets"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sheetsClient *sheets.Instrumented,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	tenantSvc tenants.Service,
	catalogSvc catalog.Service,
	orderSvc ordersvc.Service,
	rewriter *seo.Rewriter,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	healthReady := healthReadyHandler(cfg, logg, sheetsClient, redisClient)
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", healthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	orderPolicy := middleware.NewOrderRateLimitPolicy(cfg.RateLimit.OrderWindow, cfg.RateLimit.OrderIPLimit)
	orderLimiter := middleware.OrderRateLimit(orderPolicy, nil, logg)
	if redisClient != nil {
		orderLimiter = middleware.OrderRateLimit(orderPolicy, redisClient, logg)
	}

	r.Route("/api/v1/storefront/{slug}", func(r chi.Router) {
		r.Get("/", controllers.Storefront(tenantSvc, catalogSvc, logg))
		r.Get("/status", controllers.StorefrontStatus(tenantSvc, catalogSvc, logg, nil))
		r.Get("/slots", controllers.StorefrontSlots(tenantSvc, catalogSvc, cfg.Booking, logg, nil))
		r.With(orderLimiter).Post("/orders", controllers.SubmitOrder(tenantSvc, orderSvc, logg))
	})

	if rewriter != nil {
		serveIndex := controllers.ServeIndex(tenantSvc, catalogSvc, rewriter, cfg.App.DefaultSlug, logg)
		staticFS := http.FileServer(http.Dir(filepath.Dir(cfg.SEO.IndexPath)))

		r.Handle("/assets/*", staticFS)
		r.Get("/", serveIndex)
		r.Get("/{slug}", func(w http.ResponseWriter, req *http.Request) {
			// Asset requests carry an extension; everything else is a slug.
			if strings.Contains(chi.URLParam(req, "slug"), ".") {
				staticFS.ServeHTTP(w, req)
				return
			}
			serveIndex(w, req)
		})
	}

	return r
}

// healthReadyHandler avoids handing typed nil pointers to the readiness
// controller's interfaces.
func healthReadyHandler(cfg *config.Config, logg *logger.Logger, sheetsClient *sheets.Instrumented, redisClient *redis.Client) http.HandlerFunc {
	switch {
	case sheetsClient != nil && redisClient != nil:
		return controllers.HealthReady(cfg, sheetsClient, redisClient, logg)
	case sheetsClient != nil:
		return controllers.HealthReady(cfg, sheetsClient, nil, logg)
	case redisClient != nil:
		return controllers.HealthReady(cfg, nil, redisClient, logg)
	default:
		return controllers.HealthReady(cfg, nil, nil, logg)
	}
}
