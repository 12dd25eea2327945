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

// Recommendations handles POST /api/recommendations.
//
// The request carries a natural-language query in Portuguese plus the user's
// coordinates. The query passes three validation layers before it reaches the
// engine: struct validation (presence, length, coordinate ranges), search
// intent validation (is this about food at all), and filter validation on the
// translated result. Rejections carry Portuguese messages the frontend shows
// verbatim.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid request body: " + err.Error())
		return
	}

	req.Text = validation.SanitizeQueryText(req.Text)

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	intent := validation.ValidateSearchQuery(req.Text)
	if !intent.Valid {
		rw.ValidationError("query rejected", map[string]interface{}{
			"errors":          intent.Errors,
			"sanitized_query": intent.SanitizedQuery,
		})
		return
	}

	center := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}

	filters := h.engine.Translator().Translate(intent.SanitizedQuery)
	if errs := validation.ValidateFilters(filters); len(errs) > 0 {
		rw.ValidationError("invalid filters", errs)
		return
	}

	result, err := h.engine.Recommend(r.Context(), center, intent.SanitizedQuery)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		rw.BadRequest(err.Error())
		return
	}

	rw.Success(result)
}
