package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/inventory-insights/api/controllers"
	"github.com/angelmondragon/inventory-insights/api/controllers/frontend"
	"github.com/angelmondragon/inventory-insights/api/routes"
	"github.com/angelmondragon/inventory-insights/internal/analytics"
	"github.com/angelmondragon/inventory-insights/internal/charts"
	"github.com/angelmondragon/inventory-insights/pkg/config"
	"github.com/angelmondragon/inventory-insights/pkg/instance"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
	"github.com/angelmondragon/inventory-insights/pkg/metrics"
	"github.com/angelmondragon/inventory-insights/pkg/redis"
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

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var (
		cache       analytics.Cache
		cachePinger controllers.Pinger
		redisClient *redis.Client
	)
	if cfg.Render.CacheEnabled && cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Warn(logg.WithField(context.Background(), "error", err.Error()), "render cache unavailable, rendering without cache")
		} else {
			cache = analytics.NewRedisCache(redisClient, cfg.Render.CacheTTL)
			cachePinger = redisClient
		}
	}

	service, err := analytics.NewService(charts.NewRenderer(cfg.Render), cache, metrics.NewRenderMetrics(reg), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create render service", err)
		os.Exit(1)
	}

	static, err := frontend.NewStatic(cfg.Static, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to resolve static root", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"instance":      instance.GetID(),
		"render_cache":  cache != nil,
		"static_root":   cfg.Static.Root,
		"max_body_size": cfg.HTTP.MaxBodyBytes,
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:      cfg,
			Logger:      logg,
			Charts:      service,
			Cache:       cachePinger,
			Static:      static,
			Gatherer:    reg,
			HTTPMetrics: metrics.NewHTTPMetrics(reg),
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeCache(ctx, logg, redisClient)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	shutdownErr = multierr.Append(shutdownErr, server.Shutdown(shutdownCtx))
	if redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, redisClient.Close())
	}
	if shutdownErr != nil {
		logg.Error(ctx, "api server shutdown incomplete", shutdownErr)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}

func closeCache(ctx context.Context, logg *logger.Logger, client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logg.Error(ctx, "error closing redis", err)
	}
}
