package analytics

// ChartKind names one render endpoint.
type ChartKind string

const (
	ChartCategory     ChartKind = "category"
	ChartStock        ChartKind = "stock"
	ChartQuoteStatus  ChartKind = "quote_status"
	ChartRevenueTrend ChartKind = "revenue_trend"
	ChartTopProducts  ChartKind = "top_products"
)

// Kinds lists every chart in route order.
var Kinds = []ChartKind{ChartCategory, ChartStock, ChartQuoteStatus, ChartRevenueTrend, ChartTopProducts}

func (k ChartKind) Valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

const (
	lowStockLimit    = 10
	topProductsLimit = 5

	noData     = "No Data"
	noProducts = "No Products"

	statusPending  = "Pending"
	statusAccepted = "Accepted"
	statusRejected = "Rejected"
)

var canonicalStatuses = []string{statusPending, statusAccepted, statusRejected}
