package records

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxLiteralLen bounds numeric literals before they reach big-number parsing.
	maxLiteralLen = 64
	// maxMagnitude is the largest money amount accepted; larger values fall back to the field default.
	maxMagnitude = 1e15
	// maxScale is the finest decimal precision accepted.
	maxScale = 12
)

// stringFrom accepts JSON strings and numbers (kept as their literal text).
func stringFrom(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// numericLiteral extracts the text of a JSON number or numeric string.
func numericLiteral(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || isNull(raw) {
		return "", false
	}
	var literal string
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		literal = n.String()
	} else if err := json.Unmarshal(raw, &literal); err != nil {
		return "", false
	}
	literal = strings.TrimSpace(literal)
	if literal == "" || len(literal) > maxLiteralLen || strings.Trim(literal, "0123456789+-.eE") != "" {
		return "", false
	}
	return literal, true
}

// decimalFrom accepts JSON numbers and numeric strings within ±maxMagnitude and maxScale digits.
func decimalFrom(raw json.RawMessage) (decimal.Decimal, bool) {
	literal, ok := numericLiteral(raw)
	if !ok {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxMagnitude {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(literal)
	if err != nil || d.Exponent() < -maxScale {
		return decimal.Zero, false
	}
	return d, true
}

// intFrom parses a number, truncates toward zero and clamps to the int64 range.
// Only decimal literals reach ParseFloat, so an infinite result always comes with ErrRange.
func intFrom(raw json.RawMessage) (int64, bool) {
	literal, ok := numericLiteral(raw)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}
