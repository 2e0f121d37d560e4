package docstore

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a Firestore typed value such as {"stringValue": "x"}.
type Value map[string]json.RawMessage

// Flatten converts a document's typed fields into plain values.
func Flatten(doc Document) map[string]any {
	return flattenFields(doc.Fields)
}

func flattenFields(fields map[string]Value) map[string]any {
	out := make(map[string]any, len(fields))
	for name, v := range fields {
		out[name] = flattenValue(v)
	}
	return out
}

func flattenValue(v Value) any {
	var result any
	for tag, raw := range v {
		result = decodeTagged(tag, raw)
	}
	return result
}

func decodeTagged(tag string, raw json.RawMessage) any {
	switch tag {
	case "nullValue":
		return nil
	case "integerValue":
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
			return s
		}
		var n int64
		if err := json.Unmarshal(raw, &n); err == nil {
			return n
		}
	case "doubleValue":
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return f
		}
		// NaN and Infinity arrive as strings and stay strings; JSON has no encoding for them.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
				return f
			}
			return s
		}
	case "booleanValue":
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	case "mapValue":
		var m struct {
			Fields map[string]Value `json:"fields"`
		}
		if err := json.Unmarshal(raw, &m); err == nil {
			return flattenFields(m.Fields)
		}
	case "arrayValue":
		var a struct {
			Values []Value `json:"values"`
		}
		if err := json.Unmarshal(raw, &a); err == nil {
			out := make([]any, len(a.Values))
			for i, item := range a.Values {
				out[i] = flattenValue(item)
			}
			return out
		}
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return string(raw)
	}
	return generic
}
