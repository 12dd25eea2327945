// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, performance
monitoring, request ID tracking, and Prometheus metrics integration. All
middleware use the standard func(http.Handler) http.Handler shape and plug
into the chi router with Use().

Key Components:

  - Compression: Gzip compression for clients that accept it
  - Performance Monitor: Request latency tracking with percentile calculations
  - Request ID: UUID-based request tracking for log correlation
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The router applies middleware in this order:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)          // Request tracking
	r.Use(middleware.PrometheusMetrics)  // Metrics
	r.Use(perfMon.Middleware)            // Latency stats
	r.Use(middleware.Compression)        // Gzip

Usage Example - Request ID:

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("processing request")
	}

Performance Monitor:

The performance monitor tracks per-endpoint request counts and latency
percentiles (p50, p95, p99) over a rolling window of recent requests, and
logs any request slower than one second. Access is guarded by sync.RWMutex.

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Performance monitor uses sync.RWMutex
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
