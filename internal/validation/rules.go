// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sabora-app/sabora/internal/models"
)

// Business-rule limits, loaded once at process start and exposed verbatim
// through the rules endpoint.
const (
	MaxQueryLength          = 500
	MinQueryLength          = 1
	MaxRestaurantNameLength = 100
	MinRestaurantNameLength = 3
	MaxRadiusKm             = 50.0
	MinRadiusKm             = 0.1
	MaxResults              = 20
	MinRating               = 0.0
	MaxRating               = 5.0
	MinCacheTTLSeconds      = 60
	MaxCacheTTLSeconds      = 86400
)

// ValidCuisineTypes enumerates the cuisine keys accepted in filters.
var ValidCuisineTypes = []string{
	"nordestina", "italiana", "japonesa", "brasileira", "chinesa",
	"arabe", "portuguesa", "peruana", "mediterranea", "mexicana",
	"indiana", "francesa", "frutos do mar", "vegana", "saudavel",
	"fast food", "padaria", "cafe", "bar",
}

// ValidPriceRanges enumerates the accepted price tiers.
var ValidPriceRanges = []string{
	models.PriceLow, models.PriceMid, models.PriceMidHigh, models.PriceHigh,
}

var (
	sanitizePattern   = regexp.MustCompile(`[<>"']`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeQueryText strips markup-dangerous characters and collapses
// whitespace.
func SanitizeQueryText(text string) string {
	text = sanitizePattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ValidateFilters checks an extracted or caller-supplied filter set against
// the business rules. Zero values mean "not requested" and always pass.
func ValidateFilters(filters models.FilterSet) []ValidationError {
	var errs []ValidationError

	if filters.RadiusKm != 0 && (filters.RadiusKm < MinRadiusKm || filters.RadiusKm > MaxRadiusKm) {
		errs = append(errs, NewFieldError("radius_km",
			fmt.Sprintf("raio deve estar entre %.1f e %.1f km", MinRadiusKm, MaxRadiusKm),
			CodeOutOfRange))
	}

	if filters.MinRating < MinRating || filters.MinRating > MaxRating {
		errs = append(errs, NewFieldError("min_rating",
			fmt.Sprintf("nota mínima deve estar entre %.1f e %.1f", MinRating, MaxRating),
			CodeOutOfRange))
	}

	for _, cuisine := range filters.CuisineTypes {
		if !containsFold(ValidCuisineTypes, cuisine) {
			errs = append(errs, NewFieldError("cuisine_types",
				fmt.Sprintf("tipo de culinária inválido: %s", cuisine),
				CodeInvalidValue))
		}
	}

	if filters.PriceTier != "" && !containsFold(ValidPriceRanges, filters.PriceTier) {
		errs = append(errs, NewFieldError("price_range",
			fmt.Sprintf("faixa de preço inválida: %s", filters.PriceTier),
			CodeInvalidValue))
	}

	return errs
}

// ValidateCacheTTL checks a caller-supplied TTL in seconds.
func ValidateCacheTTL(ttlSeconds int) []ValidationError {
	if ttlSeconds < MinCacheTTLSeconds || ttlSeconds > MaxCacheTTLSeconds {
		return []ValidationError{NewFieldError("ttl_seconds",
			fmt.Sprintf("ttl deve estar entre %d e %d segundos (1 min a 24h)",
				MinCacheTTLSeconds, MaxCacheTTLSeconds),
			CodeOutOfRange)}
	}
	return nil
}

// RulesSummary is the payload of the business-rules endpoint, consumed by
// the frontend to mirror server-side limits.
type RulesSummary struct {
	Limits           map[string]float64 `json:"limits"`
	ValidCuisines    []string           `json:"valid_cuisine_types"`
	ValidPriceRanges []string           `json:"valid_price_ranges"`
}

// Rules returns the business-rule summary.
func Rules() RulesSummary {
	cuisines := append([]string(nil), ValidCuisineTypes...)
	sort.Strings(cuisines)
	prices := append([]string(nil), ValidPriceRanges...)
	sort.Strings(prices)

	return RulesSummary{
		Limits: map[string]float64{
			"max_query_length":           MaxQueryLength,
			"min_query_length":           MinQueryLength,
			"max_restaurant_name_length": MaxRestaurantNameLength,
			"min_restaurant_name_length": MinRestaurantNameLength,
			"max_radius_km":              MaxRadiusKm,
			"min_radius_km":              MinRadiusKm,
			"max_results":                MaxResults,
			"min_rating":                 MinRating,
			"max_rating":                 MaxRating,
		},
		ValidCuisines:    cuisines,
		ValidPriceRanges: prices,
	}
}

func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}
