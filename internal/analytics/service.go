package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/inventory-insights/internal/charts"
	"github.com/angelmondragon/inventory-insights/internal/records"
	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
	"github.com/angelmondragon/inventory-insights/pkg/metrics"
)

// ChartRenderer rasterizes an aggregated dataset.
type ChartRenderer interface {
	Render(ctx context.Context, ds charts.Dataset) (*charts.Image, error)
}

// Service turns a decoded payload into a rendered chart.
type Service interface {
	Render(ctx context.Context, kind ChartKind, payload records.Payload) (*charts.Image, error)
}

type service struct {
	renderer ChartRenderer
	cache    Cache
	metrics  *metrics.RenderMetrics
	logg     *logger.Logger
}

// NewService wires the render pipeline. A nil cache disables caching.
func NewService(renderer ChartRenderer, cache Cache, m *metrics.RenderMetrics, logg *logger.Logger) (Service, error) {
	if renderer == nil {
		return nil, fmt.Errorf("chart renderer required")
	}
	if cache == nil {
		cache = NoopCache{}
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{renderer: renderer, cache: cache, metrics: m, logg: logg}, nil
}

func (s *service) Render(ctx context.Context, kind ChartKind, payload records.Payload) (*charts.Image, error) {
	if !kind.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown chart %q", kind))
	}
	start := time.Now()
	chart := string(kind)
	ctx = s.logg.WithChart(ctx, chart)

	ds, err := s.aggregate(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePoints(chart, len(ds.Points))

	key, err := cacheKey(kind, ds)
	if err != nil {
		s.logg.Warn(ctx, "render cache key unavailable: "+err.Error())
	} else if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logg.Error(ctx, "render cache read failed", err)
	} else if ok {
		s.metrics.IncOutcome(chart, metrics.OutcomeCached)
		s.metrics.ObserveDuration(chart, time.Since(start))
		return &charts.Image{Bytes: cached, ContentType: charts.ContentTypePNG}, nil
	}

	img, err := s.renderer.Render(ctx, ds)
	s.metrics.ObserveDuration(chart, time.Since(start))
	if err != nil {
		s.metrics.IncOutcome(chart, metrics.OutcomeError)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to render chart")
	}
	s.metrics.IncOutcome(chart, metrics.OutcomeOK)

	if key != "" {
		if err := s.cache.Set(ctx, key, img.Bytes); err != nil {
			s.logg.Error(ctx, "render cache write failed", err)
		}
	}
	return img, nil
}

func (s *service) aggregate(ctx context.Context, kind ChartKind, payload records.Payload) (charts.Dataset, error) {
	switch kind {
	case ChartCategory:
		return CategoryDistribution(payload.Products), nil
	case ChartStock:
		return LowStock(payload.Products), nil
	case ChartQuoteStatus:
		ds, dropped := QuoteStatus(payload.Quotes)
		if dropped > 0 {
			s.logg.Debug(s.logg.WithField(ctx, "dropped", dropped), "quotes with unknown status ignored")
		}
		return ds, nil
	case ChartRevenueTrend:
		return RevenueTrend(payload.Quotes), nil
	case ChartTopProducts:
		return TopProducts(payload.Quotes), nil
	}
	return charts.Dataset{}, fmt.Errorf("no aggregation for chart %q", kind)
}

func cacheKey(kind ChartKind, ds charts.Dataset) (string, error) {
	canonical, err := json.Marshal(ds)
	if err != nil {
		return "", err
	}
	sum := sha256.New()
	sum.Write([]byte(kind))
	sum.Write([]byte{0})
	sum.Write(canonical)
	return hex.EncodeToString(sum.Sum(nil)), nil
}
