package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/inventory-insights/api/responses"
	"github.com/angelmondragon/inventory-insights/pkg/config"
	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
	"github.com/angelmondragon/inventory-insights/pkg/types"
)

const (
	envHeader    = "X-Insights-Env"
	readyTimeout = 2 * time.Second
)

// Pinger is satisfied by optional dependencies checked for readiness.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, types.HealthStatus{Status: "live"})
	}
}

// HealthReady pings every configured dependency. A nil cache means caching is disabled.
func HealthReady(cfg *config.Config, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		checks := map[string]string{"cache": "disabled"}
		if cache != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "render cache unreachable").
					WithDetails(map[string]string{"cache": "down"}))
				return
			}
			checks["cache"] = "ok"
		}
		responses.WriteSuccess(w, types.HealthStatus{Status: "ready", Checks: checks})
	}
}
