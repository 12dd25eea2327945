// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxRequestBodyBytes caps JSON request bodies. Queries are short text, so
// anything past this is garbage or abuse.
const maxRequestBodyBytes = 64 << 10

// RecommendationRequest is the body of POST /api/recommendations.
//
// Fields:
//   - Text: The natural-language query in Portuguese (1-500 characters)
//   - Latitude, Longitude: The user's location
type RecommendationRequest struct {
	Text      string  `json:"text" validate:"required,min=1,max=500"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// LocationRequest is the body of POST /api/location. The address is
// geocoded through the configured places provider.
type LocationRequest struct {
	Address string `json:"address" validate:"required,min=3,max=200"`
}

// CacheInvalidateRequest is the body of POST /api/cache/invalidate. The
// coordinate and radius are validated and logged, but invalidation clears
// every cached entry: fingerprint keys do not record their origin point.
type CacheInvalidateRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	RadiusKm  float64 `json:"radius_km" validate:"omitempty,min=0.1,max=50"`
}

// decodeJSON reads and decodes a JSON request body into dst. Unknown fields
// are rejected so typos in client payloads surface as errors instead of
// silently-defaulted values.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}

	// A second decode finding anything means multiple JSON documents.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
