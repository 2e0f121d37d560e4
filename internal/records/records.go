package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultName     = "Unknown"
	DefaultCategory = "Uncategorized"
	DefaultStatus   = "Pending"
	DefaultQuantity = 1
)

// Product is one inventory entry posted by the dashboard.
type Product struct {
	Name     string
	Category string
	Stock    int64
	Price    decimal.Decimal
}

// LineItem is a product line inside a quote.
type LineItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// Quote is a customer quote. Total is only meaningful when HasTotal is set.
type Quote struct {
	Status   string
	Date     string
	HasDate  bool
	Total    decimal.Decimal
	HasTotal bool
	Products []LineItem
}

// Revenue returns the explicit total, or the sum of price*quantity over the line items.
func (q Quote) Revenue() decimal.Decimal {
	if q.HasTotal {
		return q.Total
	}
	sum := decimal.Zero
	for _, item := range q.Products {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return sum
}

// Payload is the decoded body of a render request. Either list may be empty.
type Payload struct {
	Products []Product
	Quotes   []Quote
}

var (
	ErrNotObject = errors.New("request body must be a JSON object")
	ErrBadShape  = errors.New("invalid payload shape")
)

// UnmarshalJSON decodes the request body. A missing or null list is empty and every field
// falls back to its default, but a list of the wrong shape is rejected.
func (p *Payload) UnmarshalJSON(data []byte) error {
	*p = Payload{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return ErrNotObject
	}
	products, err := objects("products", fields["products"])
	if err != nil {
		return err
	}
	for _, raw := range products {
		p.Products = append(p.Products, decodeProduct(raw))
	}
	quotes, err := objects("quotes", fields["quotes"])
	if err != nil {
		return err
	}
	for i, raw := range quotes {
		quote, err := decodeQuote(raw)
		if err != nil {
			return fmt.Errorf("quotes[%d]: %w", i, err)
		}
		p.Quotes = append(p.Quotes, quote)
	}
	return nil
}

func decodeProduct(fields map[string]json.RawMessage) Product {
	product := Product{
		Name:     DefaultName,
		Category: DefaultCategory,
	}
	if name, ok := stringFrom(fields["name"]); ok {
		product.Name = name
	}
	if category, ok := stringFrom(fields["category"]); ok && category != "" {
		product.Category = category
	}
	if stock, ok := intFrom(fields["stock"]); ok {
		product.Stock = stock
	}
	if price, ok := decimalFrom(fields["price"]); ok {
		product.Price = price
	}
	return product
}

func decodeLineItem(fields map[string]json.RawMessage) LineItem {
	item := LineItem{
		Name:     DefaultName,
		Quantity: DefaultQuantity,
	}
	if name, ok := stringFrom(fields["name"]); ok {
		item.Name = name
	}
	if price, ok := decimalFrom(fields["price"]); ok {
		item.Price = price
	}
	if qty, ok := intFrom(fields["quantity"]); ok {
		item.Quantity = qty
	}
	return item
}

func decodeQuote(fields map[string]json.RawMessage) (Quote, error) {
	quote := Quote{Status: DefaultStatus}
	if status, ok := stringFrom(fields["status"]); ok && status != "" {
		quote.Status = status
	}

	// createdAt wins over date; an empty createdAt does not count.
	for _, key := range []string{"createdAt", "date"} {
		if date, ok := stringFrom(fields[key]); ok && date != "" {
			quote.Date = date
			quote.HasDate = true
			break
		}
	}

	// A zero total is treated like a missing one.
	for _, key := range []string{"totalAmount", "grandTotal"} {
		if total, ok := decimalFrom(fields[key]); ok && !total.IsZero() {
			quote.Total = total
			quote.HasTotal = true
			break
		}
	}

	items, err := objects("products", fields["products"])
	if err != nil {
		return Quote{}, err
	}
	for _, raw := range items {
		quote.Products = append(quote.Products, decodeLineItem(raw))
	}
	return quote, nil
}

// objects decodes the list stored under key. Absent and null lists are empty; anything other
// than an array of objects is ErrBadShape.
func objects(key string, raw json.RawMessage) ([]map[string]json.RawMessage, error) {
	if len(raw) == 0 || isNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s must be an array", ErrBadShape, key)
	}
	out := make([]map[string]json.RawMessage, 0, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("%w: %s[%d] must be an object", ErrBadShape, key, i)
		}
		out = append(out, fields)
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
