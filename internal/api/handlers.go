// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package api

import (
	"net/http"
	"time"

	"github.com/sabora-app/sabora/internal/cache"
	"github.com/sabora-app/sabora/internal/middleware"
	"github.com/sabora-app/sabora/internal/models"
	"github.com/sabora-app/sabora/internal/places"
	"github.com/sabora-app/sabora/internal/recommend"
	"github.com/sabora-app/sabora/internal/validation"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, rules and performance endpoints
//   - handlers_recommend.go: Recommendation endpoint
//   - handlers_places.go: Restaurant catalog and geocoding endpoints
//   - handlers_cache.go: Cache statistics and invalidation endpoints
//   - handlers_health.go: Health endpoint
type Handler struct {
	engine      *recommend.Engine
	source      places.Source
	resultCache *cache.ResultCache
	catalog     []models.Restaurant
	perf        *middleware.PerformanceMonitor
	version     string
	startTime   time.Time
}

// NewHandler creates a handler with all dependencies wired. resultCache and
// perf may be nil; the corresponding endpoints then report that the feature
// is unavailable.
func NewHandler(engine *recommend.Engine, source places.Source, resultCache *cache.ResultCache, perf *middleware.PerformanceMonitor, version string) *Handler {
	return &Handler{
		engine:      engine,
		source:      source,
		resultCache: resultCache,
		catalog:     models.FallbackCatalog(),
		perf:        perf,
		version:     version,
		startTime:   time.Now(),
	}
}

// Rules handles GET /api/rules. It exposes the validation limits and the
// accepted cuisine and price vocabularies so clients can validate input
// before submitting.
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, validation.Rules())
}

// Performance handles GET /api/performance with per-endpoint latency stats.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.perf == nil {
		rw.ServiceUnavailable("performance monitoring is not enabled")
		return
	}
	rw.Success(map[string]interface{}{
		"endpoints": h.perf.GetStats(),
	})
}
