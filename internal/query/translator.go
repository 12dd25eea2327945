// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package query translates free-form Portuguese queries into structured
// filter sets. Extraction is rule-based: substring lookup against the shared
// synonym lexicon plus a handful of numeric regex patterns. No network, no
// model inference; the same input always yields the same filter set.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sabora-app/sabora/internal/models"
	"github.com/sabora-app/sabora/internal/synonyms"
)

// Proximity band default radii in kilometers.
const (
	radiusNear = 2.0
	radiusMid  = 5.0
	radiusFar  = 10.0
)

var (
	radiusPattern  = regexp.MustCompile(`(?i)(\d+)\s*(km|quilometros?)`)
	ratingPattern  = regexp.MustCompile(`(?i)(nota|estrela).*?(\d+)`)
	openNowPattern = regexp.MustCompile(`(?i)(aberto|funcionando)`)
)

// Sort-preference vocabularies, checked in priority order: rating beats
// price, price beats proximity. A term like "melhores baratos" therefore
// sorts by rating, with price applied as a filter if one was extracted.
var (
	sortRatingTerms = []string{
		"melhor", "melhores", "bom", "bons", "ótimo", "ótimos", "otimo",
		"excelente", "top", "recomendado",
	}
	sortPriceLowTerms = []string{
		"barato", "baratos", "barata", "baratas", "econômico", "econômicos", "economico",
		"acessível", "acessíveis", "acessivel", "preço baixo", "preços baixos",
	}
	sortPriceHighTerms = []string{
		"caro", "caros", "luxuoso", "luxuosos", "premium", "sofisticado", "gourmet",
	}
	sortDistanceTerms = []string{
		"perto", "proximo", "próximo", "perto de mim", "na minha area",
		"na minha região", "mais perto",
	}
)

// Translator converts query text into filter sets using the injected
// lexicon. The zero value is not usable; construct with NewTranslator.
type Translator struct {
	cuisine     map[string][]string
	cuisineKeys []string
	price       map[string][]string
	proximity   map[string][]string
	ratingBands []synonyms.RatingBand
}

// NewTranslator builds a translator over the canonical synonym tables.
func NewTranslator() *Translator {
	return &Translator{
		cuisine:     synonyms.Cuisine,
		cuisineKeys: synonyms.CuisineOrder,
		price:       synonyms.Price,
		proximity:   synonyms.Proximity,
		ratingBands: synonyms.RatingBands,
	}
}

// Translate extracts a structured filter set from the query text. Empty or
// whitespace-only input yields an empty filter set sorted by distance.
func (t *Translator) Translate(text string) models.FilterSet {
	fs := models.FilterSet{SortPreference: models.SortDistance}

	text = strings.TrimSpace(text)
	if text == "" {
		return fs
	}
	lower := strings.ToLower(text)

	fs.CuisineTypes = t.findCuisines(lower)
	fs.PriceTier = t.findPriceTier(lower)
	fs.RadiusKm = t.findRadius(lower)
	fs.MinRating = t.findMinRating(lower)
	fs.OpenNow = openNowPattern.MatchString(lower)
	if pref, explicit := findSortPreference(lower); explicit {
		fs.SortPreference = pref
	}

	return fs.Canonical()
}

// findCuisines returns every canonical cuisine whose synonyms occur in the
// text, scanning keys in lexicon order; Canonical() sorts the result.
func (t *Translator) findCuisines(lower string) []string {
	var found []string
	for _, key := range t.cuisineKeys {
		for _, syn := range t.cuisine[key] {
			if strings.Contains(lower, strings.ToLower(syn)) {
				found = append(found, key)
				break
			}
		}
	}
	return found
}

// findPriceTier returns the first matching price tier, checking the cheap
// vocabulary before the expensive one.
func (t *Translator) findPriceTier(lower string) string {
	for _, tier := range []string{models.PriceLow, models.PriceHigh} {
		for _, syn := range t.price[tier] {
			if strings.Contains(lower, strings.ToLower(syn)) {
				return tier
			}
		}
	}
	return ""
}

// findRadius prefers an explicit "<n> km" over proximity vocabulary.
func (t *Translator) findRadius(lower string) float64 {
	if m := radiusPattern.FindStringSubmatch(lower); m != nil {
		if km, err := strconv.Atoi(m[1]); err == nil {
			return float64(km)
		}
	}
	for _, band := range []struct {
		name   string
		radius float64
	}{
		{"perto", radiusNear},
		{"medio", radiusMid},
		{"longe", radiusFar},
	} {
		for _, syn := range t.proximity[band.name] {
			if strings.Contains(lower, strings.ToLower(syn)) {
				return band.radius
			}
		}
	}
	return 0
}

// findMinRating prefers an explicit "nota N" / "estrela N" over the quality
// vocabulary. Explicit values are clamped to the 0-5 rating scale.
func (t *Translator) findMinRating(lower string) float64 {
	if m := ratingPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil {
			rating := float64(n)
			if rating > 5 {
				rating = 5
			}
			return rating
		}
	}
	// bands are ordered strongest first, so "excelente" wins over "bom"
	for _, band := range t.ratingBands {
		for _, term := range band.Terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				return band.MinRating
			}
		}
	}
	return 0
}

// findSortPreference reports the extracted preference and whether the query
// named one explicitly. Priority: rating, then cheap, then expensive, then
// proximity.
func findSortPreference(lower string) (models.SortPreference, bool) {
	for _, term := range sortRatingTerms {
		if strings.Contains(lower, term) {
			return models.SortRating, true
		}
	}
	for _, term := range sortPriceLowTerms {
		if strings.Contains(lower, term) {
			return models.SortPriceLow, true
		}
	}
	for _, term := range sortPriceHighTerms {
		if strings.Contains(lower, term) {
			return models.SortPriceHigh, true
		}
	}
	for _, term := range sortDistanceTerms {
		if strings.Contains(lower, term) {
			return models.SortDistance, true
		}
	}
	return models.SortDistance, false
}

// ProviderKeyword picks the search keyword sent to the places provider:
// the first extracted cuisine when one exists, otherwise the first lexicon
// term found in the query, otherwise the raw query itself.
func (t *Translator) ProviderKeyword(text string, filters models.FilterSet) string {
	if len(filters.CuisineTypes) > 0 {
		return filters.CuisineTypes[0]
	}
	lower := strings.ToLower(text)
	for _, pk := range synonyms.ProviderKeywords {
		if strings.Contains(lower, pk.Term) {
			return pk.Keyword
		}
	}
	return text
}
