package charts

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	hbarPadding   = 20
	hbarLabelGap  = 8
	hbarTitleSize = 14.0
	hbarTextSize  = 10.0
)

// drawHBar draws horizontal bars directly on a raster renderer; the first point is the top row.
func drawHBar(s *surface, ds Dataset, width, height int) error {
	r, err := s.Raster(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)

	chart.Draw.Box(r, chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, chart.Style{
		FillColor:   chart.ColorWhite,
		StrokeColor: chart.ColorWhite,
		StrokeWidth: 1,
	})

	top := hbarPadding
	if ds.Title != "" {
		r.SetFontSize(hbarTitleSize)
		r.SetFontColor(hex(titleColor))
		tb := r.MeasureText(ds.Title)
		r.Text(ds.Title, (width-tb.Width())/2, top+tb.Height())
		top += tb.Height() + 2*hbarPadding
	}

	r.SetFontSize(hbarTextSize)
	labelWidth, textHeight := 0, 0
	valueWidth := 0
	for _, p := range ds.Points {
		lb := r.MeasureText(p.Label)
		labelWidth = max(labelWidth, lb.Width())
		textHeight = max(textHeight, lb.Height())
		valueWidth = max(valueWidth, r.MeasureText(formatTick(p.Value)).Width())
	}
	// Long names would squeeze the bars away entirely.
	labelWidth = min(labelWidth, width/3)

	left := hbarPadding + labelWidth + hbarLabelGap
	right := width - hbarPadding - valueWidth - hbarLabelGap
	bottom := height - hbarPadding
	if ds.XLabel != "" {
		bottom -= textHeight + hbarLabelGap
	}
	if right <= left || bottom <= top {
		right, bottom = max(right, left+1), max(bottom, top+1)
	}

	peak := 0.0
	for _, p := range ds.Points {
		peak = math.Max(peak, p.Value)
	}
	if peak <= 0 {
		peak = 1
	}

	rowHeight := float64(bottom-top) / float64(len(ds.Points))
	barHeight := int(rowHeight * 0.7)
	plotWidth := float64(right - left)

	for i, p := range ds.Points {
		rowTop := top + int(float64(i)*rowHeight)
		barTop := rowTop + (int(rowHeight)-barHeight)/2
		barRight := left + int(plotWidth*math.Max(p.Value, 0)/peak)
		if barRight > left {
			fill := colorAt(p, 0, []string{hbarColor})
			chart.Draw.Box(r, chart.Box{Top: barTop, Left: left, Right: barRight, Bottom: barTop + barHeight}, chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 1,
			})
		}

		baseline := barTop + barHeight/2 + textHeight/2
		r.SetFontColor(hex(labelColor))
		label := p.Label
		lb := r.MeasureText(label)
		r.Text(label, max(hbarPadding, left-hbarLabelGap-lb.Width()), baseline)

		r.SetFontColor(hex(axisColor))
		r.Text(formatTick(p.Value), barRight+hbarLabelGap/2, baseline)
	}

	r.SetStrokeColor(hex(axisColor))
	r.SetStrokeWidth(1)
	r.MoveTo(left, top)
	r.LineTo(left, bottom)
	r.LineTo(right, bottom)
	r.Stroke()

	if ds.XLabel != "" {
		r.SetFontColor(hex(axisColor))
		xb := r.MeasureText(ds.XLabel)
		r.Text(ds.XLabel, left+(right-left-xb.Width())/2, height-hbarPadding)
	}

	return r.Save(s.Writer())
}
