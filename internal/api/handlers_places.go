// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/models"
	"github.com/sabora-app/sabora/internal/places"
	"github.com/sabora-app/sabora/internal/recommend"
	"github.com/sabora-app/sabora/internal/validation"
)

// Restaurants handles GET /api/restaurants. It returns the built-in catalog;
// when lat and lon query parameters are present each entry is annotated with
// its distance from that point.
func (h *Handler) Restaurants(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	catalog := models.CloneAll(h.catalog)

	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr != "" && lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			rw.BadRequest("lat and lon must be decimal degrees")
			return
		}
		center := geo.Coordinate{Latitude: lat, Longitude: lon}
		if err := center.Validate(); err != nil {
			rw.BadRequest(err.Error())
			return
		}
		catalog = recommend.AnnotateDistances(center, catalog)
	}

	rw.Success(map[string]interface{}{
		"restaurants": catalog,
		"count":       len(catalog),
	})
}

// Location handles POST /api/location. The address is geocoded through the
// configured places provider.
func (h *Handler) Location(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LocationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid request body: " + err.Error())
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	coord, err := h.source.Geocode(r.Context(), req.Address)
	switch {
	case err == nil:
		rw.Success(map[string]interface{}{
			"address":   req.Address,
			"latitude":  coord.Latitude,
			"longitude": coord.Longitude,
		})
	case errors.Is(err, places.ErrNotFound):
		rw.NotFound("address could not be resolved")
	case errors.Is(err, places.ErrUnavailable):
		rw.ServiceUnavailable("places provider is unavailable")
	default:
		rw.ExternalServiceError(h.source.Name(), err)
	}
}
