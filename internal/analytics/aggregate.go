package analytics

import (
	"math"
	"sort"

	"github.com/angelmondragon/inventory-insights/internal/charts"
	"github.com/angelmondragon/inventory-insights/internal/records"
	"github.com/shopspring/decimal"
)

// counter accumulates values per key and remembers first-seen order.
type counter struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newCounter() *counter {
	return &counter{totals: make(map[string]decimal.Decimal)}
}

func (c *counter) add(key string, v decimal.Decimal) {
	current, ok := c.totals[key]
	if !ok {
		c.order = append(c.order, key)
	}
	c.totals[key] = current.Add(v)
}

func (c *counter) points() []charts.Point {
	out := make([]charts.Point, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, charts.Point{Label: key, Value: plotValue(c.totals[key])})
	}
	return out
}

// maxPlotValue keeps overflowing sums finite and leaves the axis room for a nice ceiling.
const maxPlotValue = 1e300

func plotValue(d decimal.Decimal) float64 {
	v := d.InexactFloat64()
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxPlotValue:
		return maxPlotValue
	case v < -maxPlotValue:
		return -maxPlotValue
	}
	return v
}

// CategoryDistribution counts products per category in first-seen order.
func CategoryDistribution(products []records.Product) charts.Dataset {
	counts := newCounter()
	for _, p := range products {
		counts.add(p.Category, decimal.NewFromInt(1))
	}
	ds := charts.Dataset{Kind: charts.KindPie, Points: counts.points()}
	if len(ds.Points) == 0 {
		ds.Points = []charts.Point{{Label: noData, Value: 1}}
		ds.Placeholder = true
	}
	return ds
}

// LowStock returns the ten products with the lowest stock, ties kept in input order.
func LowStock(products []records.Product) charts.Dataset {
	sorted := make([]records.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stock < sorted[j].Stock
	})
	if len(sorted) > lowStockLimit {
		sorted = sorted[:lowStockLimit]
	}

	ds := charts.Dataset{
		Kind:   charts.KindBar,
		Title:  "Lowest Stock Products",
		YLabel: "Stock Level",
	}
	for _, p := range sorted {
		ds.Points = append(ds.Points, charts.Point{Label: p.Name, Value: float64(p.Stock)})
	}
	if len(ds.Points) == 0 {
		ds.Points = []charts.Point{{Label: noProducts, Value: 0}}
		ds.Placeholder = true
	}
	return ds
}

// QuoteStatus counts quotes per canonical status and drops empty slices.
// The second result is the number of quotes whose status is outside the canonical set.
func QuoteStatus(quotes []records.Quote) (charts.Dataset, int) {
	counts := make(map[string]int, len(canonicalStatuses))
	for _, status := range canonicalStatuses {
		counts[status] = 0
	}
	dropped := 0
	for _, q := range quotes {
		if _, ok := counts[q.Status]; !ok {
			dropped++
			continue
		}
		counts[q.Status]++
	}

	ds := charts.Dataset{Kind: charts.KindPie}
	for _, status := range canonicalStatuses {
		if counts[status] == 0 {
			continue
		}
		ds.Points = append(ds.Points, charts.Point{
			Label: status,
			Value: float64(counts[status]),
			Color: charts.StatusColors[status],
		})
	}
	if len(ds.Points) == 0 {
		ds.Points = []charts.Point{{Label: noData, Value: 1, Color: charts.PlaceholderColor}}
		ds.Placeholder = true
	}
	return ds, dropped
}

// RevenueTrend sums quote revenue per day in ascending date order. Quotes without a date are skipped.
func RevenueTrend(quotes []records.Quote) charts.Dataset {
	byDay := newCounter()
	for _, q := range quotes {
		if !q.HasDate {
			continue
		}
		byDay.add(DayKey(q.Date), q.Revenue())
	}
	sort.Strings(byDay.order)

	ds := charts.Dataset{
		Kind:   charts.KindLine,
		Title:  "Revenue Trend (Daily)",
		YLabel: "Revenue (₹)",
		Points: byDay.points(),
	}
	if len(ds.Points) == 0 {
		ds.Points = []charts.Point{{Label: noData, Value: 0}}
		ds.Placeholder = true
	}
	return ds
}

// TopProducts sums line item quantities per name and keeps the five best sellers, highest first.
func TopProducts(quotes []records.Quote) charts.Dataset {
	sold := newCounter()
	for _, q := range quotes {
		for _, item := range q.Products {
			sold.add(item.Name, decimal.NewFromInt(item.Quantity))
		}
	}
	points := sold.points()
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	if len(points) > topProductsLimit {
		points = points[:topProductsLimit]
	}

	ds := charts.Dataset{
		Kind:   charts.KindHBar,
		Title:  "Top Selling Products",
		XLabel: "Quantity Sold",
		Points: points,
	}
	if len(ds.Points) == 0 {
		ds.Points = []charts.Point{{Label: noData, Value: 0}}
		ds.Placeholder = true
	}
	return ds
}
