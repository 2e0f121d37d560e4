package charts

import (
	"context"
	"fmt"

	"github.com/angelmondragon/inventory-insights/pkg/config"
)

// ContentTypePNG is the only encoding produced by the renderer.
const ContentTypePNG = "image/png"

// Kind selects the visual used for a dataset.
type Kind string

const (
	KindPie  Kind = "pie"
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindHBar Kind = "hbar"
)

// Point is one labelled value. Color is an optional hex override ("#10b981").
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Dataset is the aggregated, render-ready input for one chart.
type Dataset struct {
	Kind        Kind    `json:"kind"`
	Title       string  `json:"title,omitempty"`
	XLabel      string  `json:"x_label,omitempty"`
	YLabel      string  `json:"y_label,omitempty"`
	Points      []Point `json:"points"`
	Placeholder bool    `json:"placeholder"`
}

// Image is an encoded chart.
type Image struct {
	Bytes       []byte
	ContentType string
}

// Renderer rasterizes datasets to PNG. It holds only immutable sizing and is safe for concurrent use.
type Renderer struct {
	cfg config.RenderConfig
}

func NewRenderer(cfg config.RenderConfig) *Renderer {
	return &Renderer{cfg: withDefaults(cfg)}
}

// Render draws ds on a fresh surface owned by this call.
func (r *Renderer) Render(ctx context.Context, ds Dataset) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(ds.Points) == 0 {
		return nil, fmt.Errorf("render %s: dataset has no points", ds.Kind)
	}

	surface := newSurface()
	defer surface.Close()

	var err error
	switch ds.Kind {
	case KindPie:
		err = drawPie(surface, ds, r.cfg.PieSize, r.cfg.PieSize)
	case KindBar:
		err = drawBar(surface, ds, r.cfg.BarWidth, r.cfg.BarHeight)
	case KindLine:
		err = drawLine(surface, ds, r.cfg.LineWidth, r.cfg.LineHeight)
	case KindHBar:
		err = drawHBar(surface, ds, r.cfg.BarWidth, r.cfg.BarHeight)
	default:
		err = fmt.Errorf("unsupported chart kind %q", ds.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", ds.Kind, err)
	}
	return &Image{Bytes: surface.Bytes(), ContentType: ContentTypePNG}, nil
}

func withDefaults(cfg config.RenderConfig) config.RenderConfig {
	if cfg.PieSize <= 0 {
		cfg.PieSize = 600
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 800
	}
	if cfg.BarHeight <= 0 {
		cfg.BarHeight = 500
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = 1000
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = 500
	}
	return cfg
}
