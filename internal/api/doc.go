// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

/*
Package api provides the HTTP REST API layer for Sabora.

This package implements the HTTP endpoints for natural-language restaurant
recommendations, the static restaurant catalog, address geocoding, cache
administration, and operational introspection. It is the interface between
clients and the recommendation engine.

Key Components:

  - Router: HTTP route configuration and middleware stack integration (Chi)
  - Handler: Request handlers for all API endpoints
  - Response formatting: Standardized JSON responses with request metadata
  - Error handling: Consistent error responses with appropriate HTTP status codes
  - Rate limiting: Per-IP rate limiter to prevent abuse
  - CORS: Cross-Origin Resource Sharing for frontend compatibility

API Surface:

1. Recommendations (/api/recommendations):
  - POST free-form Portuguese query plus coordinates
  - Returns ranked recommendations, extracted filters, dynamic title and copy

2. Catalog and Location (/api/restaurants, /api/location):
  - GET the full restaurant catalog, optionally annotated with distances
  - POST an address for geocoding through the configured places source

3. Cache Administration (/api/cache/):
  - GET stats, POST clear, POST invalidate by location

4. Introspection (/api/rules, /api/performance, /api/health, /metrics):
  - Validation rule summary for client-side hints
  - Per-endpoint latency percentiles
  - Health status and Prometheus metrics

Usage Example:

	import (
	    "github.com/sabora-app/sabora/internal/api"
	    "github.com/sabora-app/sabora/internal/middleware"
	)

	perf := middleware.NewPerformanceMonitor(1000)
	handler := api.NewHandler(engine, source, resultCache, perf, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(nil), perf)
	http.ListenAndServe(":8080", router.Setup())

Thread Safety:

All handlers are thread-safe and designed for concurrent request handling.
Shared resources (result cache, performance monitor, places source) are
protected by their respective synchronization primitives.

See Also:

  - internal/recommend: Recommendation pipeline
  - internal/places: Restaurant data sources
  - internal/cache: Result caching
  - internal/middleware: HTTP middleware components
*/
package api
