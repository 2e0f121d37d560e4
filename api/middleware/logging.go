package middleware

import (
	"net/http"
	"time"

	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

// Logging emits request.start and request.complete. The completion entry carries the matched
// route pattern so aliases of the same chart are easy to tell apart.
func Logging(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"method":        r.Method,
					"path":          r.URL.Path,
					"request_bytes": r.ContentLength,
				})
			}

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			if logg != nil {
				logg.Info(ctx, "request.start")
			}

			next.ServeHTTP(rec, r.WithContext(ctx))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"status":      rec.statusCode(),
					"bytes":       rec.bytes,
					"duration_ms": time.Since(start).Milliseconds(),
					"route":       routePattern(r),
				})
				logg.Info(ctx, "request.complete")
			}
		})
	}
}
