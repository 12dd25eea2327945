// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

// newTestRouter builds the full routing stack over the static catalog.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h := newTestHandler(t)
	return NewRouter(h, NewChiMiddleware(nil), h.perf).Setup()
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"restaurants", http.MethodGet, "/api/restaurants", "", http.StatusOK},
		{"rules", http.MethodGet, "/api/rules", "", http.StatusOK},
		{"performance", http.MethodGet, "/api/performance", "", http.StatusOK},
		{"cache stats", http.MethodGet, "/api/cache/stats", "", http.StatusOK},
		{"cache clear", http.MethodPost, "/api/cache/clear", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{
			"recommendations",
			http.MethodPost,
			"/api/recommendations",
			`{"text":"comida italiana","latitude":-9.655,"longitude":-35.708}`,
			http.StatusOK,
		},
		{
			"cache invalidate",
			http.MethodPost,
			"/api/cache/invalidate",
			`{"latitude":-9.655,"longitude":-35.708,"radius_km":5}`,
			http.StatusOK,
		},
		{"location via static source", http.MethodPost, "/api/location", `{"address":"Rua do Sol, 45"}`, http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/api/restaurants", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouterSetsRequestIDHeader(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID response header")
	}
}

func TestRouterPreservesUpstreamRequestID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "upstream-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "upstream-42" {
		t.Errorf("Expected upstream request ID to be preserved, got %q", got)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Meta == nil || resp.Meta.RequestID != "upstream-42" {
		t.Errorf("Expected upstream request ID in meta, got %+v", resp.Meta)
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("Expected nosniff, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("Expected DENY, got %q", got)
	}
}

func TestRouterCompressesResponses(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("Expected gzip encoding, got %q", got)
	}
}

func TestRouterRateLimitEnforced(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute

	h := newTestHandler(t)
	router := NewRouter(h, NewChiMiddleware(cfg), nil).Setup()

	var lastCode int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/rules", nil)
		req.RemoteAddr = "10.1.2.3:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after exceeding limit, got %d", lastCode)
	}
}

func TestRouterRateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true

	h := newTestHandler(t)
	router := NewRouter(h, NewChiMiddleware(cfg), nil).Setup()

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/rules", nil)
		req.RemoteAddr = "10.1.2.3:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 with rate limiting disabled, got %d on request %d", rec.Code, i+1)
		}
	}
}

func TestRouterNilMiddlewareDefaults(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	router := NewRouter(h, nil, nil).Setup()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 with default middleware, got %d", rec.Code)
	}
}
