// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package cache

import (
	"crypto/sha256"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/models"
)

// keyPrefix namespaces recommendation entries in the shared store.
const keyPrefix = "rec:"

// fingerprintParams is the canonical request identity. Coordinates are
// rounded to 6 decimals (~0.1 m) and the query is lowercased and trimmed so
// trivially different requests share an entry. Filters must already be
// canonicalized by the caller.
type fingerprintParams struct {
	Latitude  float64          `json:"lat"`
	Longitude float64          `json:"lng"`
	Query     string           `json:"query"`
	Filters   models.FilterSet `json:"filters"`
}

// Fingerprint derives the stable cache key for a recommendation request.
// Equal inputs always produce the same key; any change to coordinates
// (beyond 6 decimals), normalized query text or filters changes it.
func Fingerprint(coord geo.Coordinate, queryText string, filters models.FilterSet) string {
	params := fingerprintParams{
		Latitude:  round6(coord.Latitude),
		Longitude: round6(coord.Longitude),
		Query:     strings.ToLower(strings.TrimSpace(queryText)),
		Filters:   filters.Canonical(),
	}

	data, err := json.Marshal(params)
	if err != nil {
		// Marshal of a plain struct cannot realistically fail; fall back
		// to a verbose but still deterministic key.
		return fmt.Sprintf("%s%v:%v:%s:%v", keyPrefix,
			params.Latitude, params.Longitude, params.Query, params.Filters)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
