// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package api

import (
	"net/http"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/logging"
	"github.com/sabora-app/sabora/internal/validation"
)

// CacheStats handles GET /api/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.resultCache == nil {
		rw.ServiceUnavailable("result caching is not enabled")
		return
	}
	rw.Success(h.resultCache.Snapshot())
}

// CacheClear handles POST /api/cache/clear. All cached recommendation
// results are dropped.
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.resultCache == nil {
		rw.ServiceUnavailable("result caching is not enabled")
		return
	}

	if err := h.resultCache.ClearAll(); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("cache clear failed")
		rw.InternalError("failed to clear cache")
		return
	}
	rw.Success(map[string]interface{}{"cleared": true})
}

// CacheInvalidate handles POST /api/cache/invalidate, used for example
// after a restaurant near the given point changes. The coordinate is
// validated and logged; the invalidation itself is a full clear, since
// cached entries are keyed by one-way fingerprints.
func (h *Handler) CacheInvalidate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.resultCache == nil {
		rw.ServiceUnavailable("result caching is not enabled")
		return
	}

	var req CacheInvalidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid request body: " + err.Error())
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = validation.MaxRadiusKm
	}

	center := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := h.resultCache.InvalidateByLocation(center, radius); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("cache invalidation failed")
		rw.InternalError("failed to invalidate cache")
		return
	}

	rw.Success(map[string]interface{}{
		"invalidated": true,
		"latitude":    req.Latitude,
		"longitude":   req.Longitude,
		"radius_km":   radius,
	})
}
