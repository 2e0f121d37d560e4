package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/inventory-insights/pkg/config"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func decodeStatus(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Data
}

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	resp := httptest.NewRecorder()
	HealthLive(cfg).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get(envHeader) != "dev" {
		t.Fatalf("expected env header")
	}
	if data := decodeStatus(t, resp); data["status"] != "live" {
		t.Fatalf("unexpected body %v", data)
	}
}

func TestHealthReadyWithoutCache(t *testing.T) {
	cfg := &config.Config{}
	resp := httptest.NewRecorder()
	HealthReady(cfg, nil, logger.Nop()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	data := decodeStatus(t, resp)
	if data["status"] != "ready" {
		t.Fatalf("unexpected status %v", data)
	}
	if checks, _ := data["checks"].(map[string]any); checks["cache"] != "disabled" {
		t.Fatalf("unexpected checks %v", data["checks"])
	}
}

func TestHealthReadyCacheDown(t *testing.T) {
	cfg := &config.Config{}
	cache := pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") })
	resp := httptest.NewRecorder()
	HealthReady(cfg, cache, logger.Nop()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
