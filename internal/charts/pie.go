package charts

import (
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

func drawPie(s *surface, ds Dataset, width, height int) error {
	total := 0.0
	for _, p := range ds.Points {
		if p.Value > 0 {
			total += p.Value
		}
	}
	if total <= 0 {
		return errors.New("pie needs a positive total")
	}

	fontColor := chart.ColorWhite
	if ds.Placeholder {
		fontColor = hex(mutedText)
	}

	slices := make([]chart.Value, 0, len(ds.Points))
	for i, p := range ds.Points {
		if p.Value <= 0 {
			continue
		}
		slices = append(slices, chart.Value{
			Value: p.Value,
			Label: fmt.Sprintf("%s %.1f%%", p.Label, p.Value/total*100),
			Style: chart.Style{
				FillColor:   colorAt(p, i, categoryPalette),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 2,
				FontColor:   fontColor,
				FontSize:    10,
			},
		})
	}

	pie := chart.PieChart{
		Title:      ds.Title,
		TitleStyle: chart.Style{FontColor: hex(titleColor), FontSize: 14},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		Values:     slices,
	}
	return pie.Render(chart.PNG, s.Writer())
}
