package middleware

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/inventory-insights/api/responses"
	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

// Recoverer turns handler panics into 500 envelopes. When a response was already started
// (a partially streamed PNG, for example) the panic is only logged.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}
				err := fmt.Errorf("panic: %v", p)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic":           p,
						"response_status": rec.status,
					})
					logg.Error(ctx, "panic.recovered", err)
				}
				if rec.status != 0 {
					return
				}
				responses.WriteError(ctx, logg, rec, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
