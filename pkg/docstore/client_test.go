package docstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
)

func TestNewClientRequiresProject(t *testing.T) {
	if _, err := NewClient("  ", "key"); err == nil {
		t.Fatalf("expected project id error")
	}
}

func TestListDocumentsFollowsPageTokens(t *testing.T) {
	var seenTokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/projects/demo/databases/(default)/documents/products" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("pageSize") != "2" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		token := q.Get("pageToken")
		seenTokens = append(seenTokens, token)

		w.Header().Set("Content-Type", "application/json")
		switch token {
		case "":
			_, _ = io.WriteString(w, `{"documents":[
				{"name":"projects/demo/databases/(default)/documents/products/p1","fields":{"name":{"stringValue":"Widget"}}},
				{"name":"projects/demo/databases/(default)/documents/products/p2","fields":{"name":{"stringValue":"Gadget"}}}
			],"nextPageToken":"page-2"}`)
		case "page-2":
			_, _ = io.WriteString(w, `{"documents":[
				{"name":"projects/demo/databases/(default)/documents/products/p3","fields":{"stock":{"integerValue":"7"}}}
			]}`)
		default:
			t.Errorf("unexpected token %q", token)
		}
	}))
	defer srv.Close()

	client, err := NewClient("demo", "test-key", WithBaseURL(srv.URL+"/v1"), WithPageSize(2), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	docs, err := client.ListDocuments(context.Background(), "products")
	if err != nil {
		t.Fatalf("list documents: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[2].ID() != "p3" {
		t.Fatalf("unexpected document id %q", docs[2].ID())
	}
	if got := Flatten(docs[2])["stock"]; got != int64(7) {
		t.Fatalf("unexpected stock %v (%T)", got, got)
	}
	if strings.Join(seenTokens, ",") != ",page-2" {
		t.Fatalf("unexpected token sequence %v", seenTokens)
	}
}

func TestListDocumentsEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client, _ := NewClient("demo", "", WithBaseURL(srv.URL))
	docs, err := client.ListDocuments(context.Background(), "quotes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

func TestListDocumentsSurfacesGoogleAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"Missing or insufficient permissions.","status":"PERMISSION_DENIED"}}`)
	}))
	defer srv.Close()

	client, _ := NewClient("demo", "bad-key", WithBaseURL(srv.URL))
	_, err := client.ListDocuments(context.Background(), "products")
	if err == nil {
		t.Fatalf("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	apiErr, ok := APIError(err)
	if !ok {
		t.Fatalf("expected googleapi error in chain, got %v", err)
	}
	if apiErr.Code != http.StatusForbidden || !strings.Contains(apiErr.Message, "insufficient permissions") {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestListDocumentsValidatesCollection(t *testing.T) {
	client, _ := NewClient("demo", "")
	_, err := client.ListDocuments(context.Background(), " / ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	var nilClient *Client
	if _, err := nilClient.ListDocuments(context.Background(), "products"); err == nil {
		t.Fatalf("expected error from nil client")
	}
}

func TestCollectionURLOmitsEmptyKey(t *testing.T) {
	client, _ := NewClient("demo", "", WithBaseURL("http://firestore.test/v1/"))
	got := client.collectionURL("products", "")
	want := "http://firestore.test/v1/projects/demo/databases/(default)/documents/products?pageSize=100"
	if got != want {
		t.Fatalf("unexpected url\n got %s\nwant %s", got, want)
	}
}

func TestFlattenTypedValues(t *testing.T) {
	var doc Document
	raw := `{"fields":{
		"name":{"stringValue":"Quote 1"},
		"total":{"doubleValue":150.5},
		"count":{"integerValue":"3"},
		"big":{"integerValue":"not-a-number"},
		"paid":{"booleanValue":true},
		"note":{"nullValue":null},
		"createdAt":{"timestampValue":"2024-03-01T10:00:00Z"},
		"customer":{"mapValue":{"fields":{"name":{"stringValue":"ACME"}}}},
		"products":{"arrayValue":{"values":[
			{"mapValue":{"fields":{"name":{"stringValue":"Widget"},"quantity":{"integerValue":"2"}}}},
			{"stringValue":"loose"}
		]}},
		"empty":{"arrayValue":{}}
	}}`
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := Flatten(doc)
	if got["name"] != "Quote 1" || got["total"] != 150.5 || got["count"] != int64(3) || got["paid"] != true {
		t.Fatalf("unexpected scalars %#v", got)
	}
	if got["big"] != "not-a-number" {
		t.Fatalf("unparseable integers keep their raw text, got %#v", got["big"])
	}
	if v, ok := got["note"]; !ok || v != nil {
		t.Fatalf("expected nil note, got %#v", v)
	}
	if got["createdAt"] != "2024-03-01T10:00:00Z" {
		t.Fatalf("unknown tags keep their raw value, got %#v", got["createdAt"])
	}
	customer, ok := got["customer"].(map[string]any)
	if !ok || customer["name"] != "ACME" {
		t.Fatalf("unexpected customer %#v", got["customer"])
	}
	products, ok := got["products"].([]any)
	if !ok || len(products) != 2 {
		t.Fatalf("unexpected products %#v", got["products"])
	}
	first, ok := products[0].(map[string]any)
	if !ok || first["name"] != "Widget" || first["quantity"] != int64(2) {
		t.Fatalf("unexpected first product %#v", products[0])
	}
	if products[1] != "loose" {
		t.Fatalf("unexpected second product %#v", products[1])
	}
	if empty, ok := got["empty"].([]any); !ok || len(empty) != 0 {
		t.Fatalf("unexpected empty array %#v", got["empty"])
	}
}

func TestFlattenKeepsNonFiniteDoublesAsText(t *testing.T) {
	var doc Document
	raw := `{"fields":{
		"price":{"doubleValue":"NaN"},
		"ceiling":{"doubleValue":"Infinity"},
		"floor":{"doubleValue":"-Infinity"},
		"ratio":{"doubleValue":"0.25"}
	}}`
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := Flatten(doc)
	if got["price"] != "NaN" || got["ceiling"] != "Infinity" || got["floor"] != "-Infinity" {
		t.Fatalf("expected non-finite doubles as text, got %#v", got)
	}
	if got["ratio"] != 0.25 {
		t.Fatalf("expected numeric string to parse, got %#v", got["ratio"])
	}
	if _, err := json.Marshal(got); err != nil {
		t.Fatalf("flattened record must encode: %v", err)
	}
}
