// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package models defines the core data types shared across Sabora: the
// restaurant record that flows through the ranking pipeline, the structured
// filter set produced by the query translator, and the static fallback
// catalog served when no places provider is configured.
package models

import (
	"sort"
	"strings"

	"github.com/sabora-app/sabora/internal/geo"
)

// Price tiers, ordered cheapest to most expensive. Tier strings follow the
// Portuguese vocabulary used across the catalog and the places conversion.
const (
	PriceLow     = "baixo"
	PriceMid     = "medio"
	PriceMidHigh = "medio-alto"
	PriceHigh    = "alto"
)

// PriceOrdinal maps a price tier to its ordinal position for sorting.
// Unknown or empty tiers sort as mid-range.
func PriceOrdinal(tier string) int {
	switch strings.ToLower(tier) {
	case PriceLow:
		return 1
	case PriceMid:
		return 2
	case PriceMidHigh:
		return 3
	case PriceHigh:
		return 4
	default:
		return 2
	}
}

// SortPreference selects the ordering applied after the radius cut.
type SortPreference string

const (
	SortDistance  SortPreference = "distance"
	SortRating    SortPreference = "rating"
	SortPriceLow  SortPreference = "price_low"
	SortPriceHigh SortPreference = "price_high"
)

// FilterSet is the structured output of the query translator and the input
// to the ranking pipeline. Zero values mean "not requested".
type FilterSet struct {
	CuisineTypes   []string       `json:"cuisine_types,omitempty"`
	PriceTier      string         `json:"price_range,omitempty"`
	RadiusKm       float64        `json:"radius_km,omitempty"`
	MinRating      float64        `json:"min_rating,omitempty"`
	OpenNow        bool           `json:"open_now,omitempty"`
	SortPreference SortPreference `json:"sort_preference"`
}

// Canonical returns a copy with the cuisine set sorted and de-duplicated so
// that equivalent filter sets serialize identically (cache fingerprints
// depend on this).
func (f FilterSet) Canonical() FilterSet {
	out := f
	if out.SortPreference == "" {
		out.SortPreference = SortDistance
	}
	if len(f.CuisineTypes) > 0 {
		seen := make(map[string]struct{}, len(f.CuisineTypes))
		cuisines := make([]string, 0, len(f.CuisineTypes))
		for _, c := range f.CuisineTypes {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" {
				continue
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			cuisines = append(cuisines, c)
		}
		sort.Strings(cuisines)
		out.CuisineTypes = cuisines
	}
	return out
}

// Restaurant is a candidate venue. Latitude/longitude come from the data
// source; DistanceKm, DistanceLabel, Rank and Score are derived per request
// by the pipeline and are nil/zero until computed.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Rating       float64  `json:"rating"`
	CuisineType  string   `json:"cuisine_type"`
	PriceTier    string   `json:"price_range,omitempty"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Features     []string `json:"features,omitempty"`

	DistanceKm    *float64 `json:"distance,omitempty"`
	DistanceLabel string   `json:"distance_formatted,omitempty"`
	Rank          int      `json:"rank,omitempty"`
	Score         float64  `json:"recommendation_score,omitempty"`
}

// Coordinate returns the restaurant's position as a geo coordinate.
func (r Restaurant) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// Clone returns a deep copy. The pipeline annotates copies so that cached or
// shared candidate slices are never mutated.
func (r Restaurant) Clone() Restaurant {
	out := r
	if r.DistanceKm != nil {
		d := *r.DistanceKm
		out.DistanceKm = &d
	}
	if r.Features != nil {
		out.Features = append([]string(nil), r.Features...)
	}
	return out
}

// MatchesCuisine reports whether any of the given terms occurs in the
// restaurant's cuisine description, case-insensitively. An empty term list
// matches everything.
func (r Restaurant) MatchesCuisine(terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	cuisine := strings.ToLower(r.CuisineType)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(cuisine, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// MatchesPrice reports whether the restaurant's tier equals the requested
// tier. An empty request matches everything.
func (r Restaurant) MatchesPrice(tier string) bool {
	if tier == "" {
		return true
	}
	return strings.EqualFold(r.PriceTier, tier)
}

// MatchesRating reports whether the restaurant's rating is at least min.
func (r Restaurant) MatchesRating(min float64) bool {
	return r.Rating >= min
}

// CloneAll deep-copies a candidate slice.
func CloneAll(restaurants []Restaurant) []Restaurant {
	out := make([]Restaurant, len(restaurants))
	for i, r := range restaurants {
		out[i] = r.Clone()
	}
	return out
}
