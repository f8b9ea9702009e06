package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ruachlabs/telafome-backend/api/routes"
	"github.com/ruachlabs/telafome-backend/internal/catalog"
	"github.com/ruachlabs/telafome-backend/internal/orders"
	"github.com/ruachlabs/telafome-backend/internal/seo"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	"github.com/ruachlabs/telafome-backend/pkg/config"
	"github.com/ruachlabs/telafome-backend/pkg/env"
	"github.com/ruachlabs/telafome-backend/pkg/instance"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
	"github.com/ruachlabs/telafome-backend/pkg/metrics"
	"github.com/ruachlabs/telafome-backend/pkg/redis"
	"github.com/ruachlabs/telafome-backend/pkg/sheets"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	sheetsClient, err := sheets.NewClient(context.Background(), cfg.Sheets, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap sheets client", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)
	sheetsMetrics := metrics.NewSheetsMetrics(prometheus.DefaultRegisterer)
	sheetsAPI := sheets.Instrument(sheetsClient, sheetsMetrics)

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, order rate limiting disabled")
	}

	tenantSvc, err := tenants.NewService(sheetsAPI, cfg.Sheets.MasterSheetID, cfg.Sheets.MasterTab)
	if err != nil {
		logg.Error(context.Background(), "failed to create tenant service", err)
		os.Exit(1)
	}

	catalogSvc, err := catalog.NewService(sheetsAPI, catalog.Options{})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	orderSvc, err := orders.NewService(catalogSvc, sheetsAPI, logg, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	var rewriter *seo.Rewriter
	if indexHTML, err := os.ReadFile(cfg.SEO.IndexPath); err != nil {
		ctx := logg.WithField(context.Background(), "path", cfg.SEO.IndexPath)
		logg.Warn(ctx, "index.html not found, tenant pages disabled")
	} else {
		rewriter, err = seo.NewRewriter(string(indexHTML))
		if err != nil {
			logg.Error(context.Background(), "failed to load index template", err)
			os.Exit(1)
		}
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, sheetsAPI, redisClient, httpMetrics, tenantSvc, catalogSvc, orderSvc, rewriter),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
