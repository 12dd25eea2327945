// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of GET /api/health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	PlacesSource  string  `json:"places_source"`
	CacheBackend  string  `json:"cache_backend,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Health handles GET /api/health. The service has no hard dependencies: the
// places provider degrades to the static catalog and caching degrades to
// pass-through, so the process being up means the API is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		PlacesSource:  h.source.Name(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.resultCache != nil {
		health.CacheBackend = h.resultCache.Snapshot().Backend
	}

	WriteSuccess(w, r, health)
}
