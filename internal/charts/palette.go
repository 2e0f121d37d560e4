package charts

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	categoryPalette = []string{"#6366f1", "#ec4899", "#8b5cf6", "#3b82f6", "#10b981"}

	barColor   = "#6366f1"
	lineColor  = "#10b981"
	hbarColor  = "#f59e0b"
	titleColor = "#333333"
	axisColor  = "#64748b"
	labelColor = "#1e293b"
	mutedText  = "#475569"
)

// StatusColors are the fixed quote status colors.
var StatusColors = map[string]string{
	"Pending":  "#f59e0b",
	"Accepted": "#10b981",
	"Rejected": "#ef4444",
}

// PlaceholderColor fills the "No Data" slice.
const PlaceholderColor = "#e2e8f0"

func hex(value string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(value, "#"))
}

// colorAt returns the point color override or the palette entry for index i.
func colorAt(p Point, i int, palette []string) drawing.Color {
	if p.Color != "" {
		return hex(p.Color)
	}
	return hex(palette[i%len(palette)])
}
