package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

// drawLine plots points over their index so that a single point still has a non-empty x range.
func drawLine(s *surface, ds Dataset, width, height int) error {
	n := len(ds.Points)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, n)
	for i, p := range ds.Points {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}
	ys := values(ds.Points)
	lo, hi := valueRange(ys)

	stroke := hex(lineColor)
	if n > 0 && ds.Points[0].Color != "" {
		stroke = hex(ds.Points[0].Color)
	}

	ch := chart.Chart{
		Title:      ds.Title,
		TitleStyle: chart.Style{FontColor: hex(titleColor), FontSize: 14},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 30, Bottom: 30}},
		XAxis: chart.XAxis{
			Name:  ds.XLabel,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Style: chart.Style{FontColor: hex(labelColor), FontSize: 9, TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:  ds.YLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: niceTicks(lo, hi, 6),
			Style: chart.Style{FontColor: hex(axisColor), FontSize: 9},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    ds.Title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: stroke,
					StrokeWidth: 2,
					FillColor:   stroke.WithAlpha(26),
					DotColor:    stroke,
					DotWidth:    4,
				},
			},
		},
	}
	return ch.Render(chart.PNG, s.Writer())
}
