package charts

import (
	"net/http"

	"github.com/angelmondragon/inventory-insights/api/responses"
	"github.com/angelmondragon/inventory-insights/api/validators"
	"github.com/angelmondragon/inventory-insights/internal/analytics"
	"github.com/angelmondragon/inventory-insights/internal/records"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

// Render decodes a products/quotes payload and responds with the chart PNG.
func Render(kind analytics.ChartKind, service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload records.Payload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		img, err := service.Render(ctx, kind, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WritePNG(w, img.Bytes)
	}
}
