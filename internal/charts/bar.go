package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

func drawBar(s *surface, ds Dataset, width, height int) error {
	bars := make([]chart.Value, len(ds.Points))
	for i, p := range ds.Points {
		bars[i] = chart.Value{
			Value: p.Value,
			Label: p.Label,
			Style: chart.Style{
				FillColor:   colorAt(p, 0, []string{barColor}),
				StrokeColor: colorAt(p, 0, []string{barColor}),
				StrokeWidth: 1,
			},
		}
	}

	lo, hi := valueRange(values(ds.Points))
	bc := chart.BarChart{
		Title:      ds.Title,
		TitleStyle: chart.Style{FontColor: hex(titleColor), FontSize: 14},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(width, len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60}},
		XAxis: chart.Style{
			FontColor:           hex(labelColor),
			FontSize:            9,
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Name:  ds.YLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: niceTicks(lo, hi, 6),
			Style: chart.Style{FontColor: hex(axisColor), FontSize: 9},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, s.Writer())
}

// barWidth keeps bars at roughly 60% of their slot, capped for short lists.
func barWidth(width, n int) int {
	if n <= 0 {
		return 40
	}
	slot := (width - 120) / n
	w := slot * 6 / 10
	switch {
	case w > 60:
		return 60
	case w < 4:
		return 4
	}
	return w
}
