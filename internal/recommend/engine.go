// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

/*
engine.go - Recommendation Pipeline

This file implements the staged recommendation pipeline: fetch candidates
from the places source, annotate distances, cut by radius, re-sort by the
extracted preference, apply filters and score the final selection. Results
are memoized in the result cache keyed by request fingerprint.

Stages run on value copies; shared candidate slices are never mutated.
*/

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sabora-app/sabora/internal/cache"
	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/logging"
	"github.com/sabora-app/sabora/internal/metrics"
	"github.com/sabora-app/sabora/internal/models"
	"github.com/sabora-app/sabora/internal/places"
	"github.com/sabora-app/sabora/internal/query"
	"github.com/sabora-app/sabora/internal/synonyms"
)

// Scoring policy. Changing these changes observable ranking and must be a
// deliberate, versioned decision.
const (
	distanceWeight  = 0.7
	ratingWeight    = 0.3
	distancePenalty = 4.0
	ratingScale     = 20.0
)

// Config holds the pipeline policy knobs.
type Config struct {
	// SearchRadiusMeters is the provider search radius for the fetch stage.
	SearchRadiusMeters int
	// DefaultRadiusKm applies when the query requested no radius.
	DefaultRadiusKm float64
	// RadiusLadder is the escalation sequence tried when the requested
	// radius yields nothing. Steps at or below the requested radius are
	// skipped.
	RadiusLadder []float64
	// MaxResults bounds the final selection.
	MaxResults int
}

// DefaultConfig returns the production pipeline policy.
func DefaultConfig() Config {
	return Config{
		SearchRadiusMeters: 25000,
		DefaultRadiusKm:    25.0,
		RadiusLadder:       []float64{5, 10, 15, 20, 25},
		MaxResults:         5,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SearchRadiusMeters <= 0 {
		c.SearchRadiusMeters = def.SearchRadiusMeters
	}
	if c.DefaultRadiusKm <= 0 {
		c.DefaultRadiusKm = def.DefaultRadiusKm
	}
	if len(c.RadiusLadder) == 0 {
		c.RadiusLadder = def.RadiusLadder
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	return c
}

// Result is the outcome of one recommendation request.
type Result struct {
	Recommendations []models.Restaurant `json:"recommendations"`
	Filters         models.FilterSet    `json:"filters_extracted"`
	OriginalQuery   string              `json:"original_query"`
	Title           string              `json:"dynamic_title"`
	Copy            query.ResponseCopy  `json:"response_copy"`
	Cached          bool                `json:"cached"`
}

// Engine runs the recommendation pipeline. Construct once at startup and
// share across requests; all methods are safe for concurrent use.
type Engine struct {
	source     places.Source
	cache      *cache.ResultCache
	translator *query.Translator
	cfg        Config
}

// NewEngine creates a pipeline over the given source and cache. cache may be
// nil to disable memoization.
func NewEngine(source places.Source, resultCache *cache.ResultCache, translator *query.Translator, cfg Config) *Engine {
	return &Engine{
		source:     source,
		cache:      resultCache,
		translator: translator,
		cfg:        cfg.withDefaults(),
	}
}

// Translator exposes the engine's query translator for handlers that need
// filter extraction without running the pipeline.
func (e *Engine) Translator() *query.Translator {
	return e.translator
}

// Source exposes the underlying places source, used for geocoding.
func (e *Engine) Source() places.Source {
	return e.source
}

// Recommend turns a free-form query at a coordinate into a ranked, scored
// restaurant selection.
func (e *Engine) Recommend(ctx context.Context, center geo.Coordinate, text string) (*Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	filters := e.translator.Translate(text)

	result := &Result{
		Filters:       filters,
		OriginalQuery: text,
		Title:         e.translator.TitleFor(text),
		Copy:          e.translator.ResponseCopyFor(text),
	}

	if e.cache != nil {
		if cached, ok := e.cache.Get(center, text, filters); ok {
			metrics.RecommendationRequests.WithLabelValues("cached").Inc()
			result.Recommendations = cached
			result.Cached = true
			return result, nil
		}
	}

	selected := e.run(ctx, center, text, filters)
	result.Recommendations = selected

	if len(selected) > 0 {
		metrics.RecommendationRequests.WithLabelValues("results").Inc()
		if e.cache != nil {
			e.cache.Put(center, text, filters, selected)
		}
	} else {
		metrics.RecommendationRequests.WithLabelValues("empty").Inc()
	}

	return result, nil
}

// run executes the pipeline stages. Every stage is terminal on empty input.
func (e *Engine) run(ctx context.Context, center geo.Coordinate, text string, filters models.FilterSet) []models.Restaurant {
	log := logging.Ctx(ctx)

	keyword := e.translator.ProviderKeyword(text, filters)

	candidates, err := e.source.Search(ctx, center, e.cfg.SearchRadiusMeters, keyword)
	if err != nil {
		// Upstream failure degrades to "no results", never a fatal response
		log.Warn().Err(err).Str("source", e.source.Name()).Msg("Candidate fetch failed, degrading to empty result")
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	annotated := AnnotateDistances(center, candidates)
	if len(annotated) == 0 {
		return nil
	}

	sortByDistance(annotated)

	requested := filters.RadiusKm
	if requested <= 0 {
		requested = e.cfg.DefaultRadiusKm
	}

	cut, effective := e.radiusCut(annotated, requested)
	recordRadius(requested, effective)
	if len(cut) == 0 {
		return nil
	}

	sortByPreference(cut, filters.SortPreference)

	selected := applyFilters(cut, filters)
	if len(selected) == 0 {
		return nil
	}

	if len(selected) > e.cfg.MaxResults {
		selected = selected[:e.cfg.MaxResults]
	}

	for i := range selected {
		selected[i].Rank = i + 1
		selected[i].Score = Score(derefDistance(selected[i].DistanceKm), selected[i].Rating)
	}

	return selected
}

// AnnotateDistances returns distance-annotated copies of candidates relative
// to center. Candidates whose position cannot be measured are dropped.
func AnnotateDistances(center geo.Coordinate, candidates []models.Restaurant) []models.Restaurant {
	annotated := make([]models.Restaurant, 0, len(candidates))
	for i := range candidates {
		c := candidates[i].Clone()

		dist, err := geo.Distance(center, c.Coordinate())
		if err != nil {
			logging.Warn().Err(err).Str("restaurant_id", c.ID).Str("name", c.Name).Msg("Dropping candidate with unmeasurable position")
			continue
		}
		label, err := geo.FormatDistance(dist)
		if err != nil {
			logging.Warn().Err(err).Str("restaurant_id", c.ID).Msg("Dropping candidate with unformattable distance")
			continue
		}

		c.DistanceKm = &dist
		c.DistanceLabel = label
		annotated = append(annotated, c)
	}
	return annotated
}

// radiusCut retains the prefix of the distance-sorted list within radiusKm.
// When the requested radius yields nothing it escalates through the ladder,
// never below the requested radius, and accepts the first nonempty prefix.
// Returns the cut and the radius that produced it.
func (e *Engine) radiusCut(sorted []models.Restaurant, radiusKm float64) ([]models.Restaurant, float64) {
	cut := cutWithin(sorted, radiusKm)
	if len(cut) > 0 {
		return cut, radiusKm
	}

	for _, step := range e.cfg.RadiusLadder {
		if step <= radiusKm {
			continue
		}
		if cut = cutWithin(sorted, step); len(cut) > 0 {
			return cut, step
		}
	}

	return nil, radiusKm
}

// cutWithin finds the prefix with distance <= radiusKm by binary upper
// bound over the distance-sorted slice.
func cutWithin(sorted []models.Restaurant, radiusKm float64) []models.Restaurant {
	n := sort.Search(len(sorted), func(i int) bool {
		return derefDistance(sorted[i].DistanceKm) > radiusKm
	})
	return sorted[:n]
}

// sortByDistance stably sorts candidates by ascending distance; ties keep
// their fetch order.
func sortByDistance(candidates []models.Restaurant) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return derefDistance(candidates[i].DistanceKm) < derefDistance(candidates[j].DistanceKm)
	})
}

// sortByPreference re-orders an already distance-sorted list. "distance" is
// a no-op; unknown preferences fall back to descending rating.
func sortByPreference(candidates []models.Restaurant, pref models.SortPreference) {
	switch pref {
	case models.SortDistance:
		// already sorted
	case models.SortPriceLow:
		sort.SliceStable(candidates, func(i, j int) bool {
			return models.PriceOrdinal(candidates[i].PriceTier) < models.PriceOrdinal(candidates[j].PriceTier)
		})
	case models.SortPriceHigh:
		sort.SliceStable(candidates, func(i, j int) bool {
			return models.PriceOrdinal(candidates[i].PriceTier) > models.PriceOrdinal(candidates[j].PriceTier)
		})
	default: // rating, or anything unrecognized
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Rating > candidates[j].Rating
		})
	}
}

// applyFilters keeps candidates passing every requested filter. The cuisine
// match expands each requested cuisine through the synonym lexicon so that
// near-miss terms still match.
func applyFilters(candidates []models.Restaurant, filters models.FilterSet) []models.Restaurant {
	cuisineTerms := expandCuisines(filters.CuisineTypes)

	selected := make([]models.Restaurant, 0, len(candidates))
	for i := range candidates {
		c := candidates[i]
		if !c.MatchesRating(filters.MinRating) {
			continue
		}
		if !c.MatchesCuisine(cuisineTerms) {
			continue
		}
		if !c.MatchesPrice(filters.PriceTier) {
			continue
		}
		selected = append(selected, c)
	}
	return selected
}

// expandCuisines widens each requested cuisine with its lexicon synonyms.
func expandCuisines(requested []string) []string {
	if len(requested) == 0 {
		return nil
	}
	terms := make([]string, 0, len(requested)*4)
	for _, cuisine := range requested {
		terms = append(terms, cuisine)
		terms = append(terms, synonyms.ExpandCuisine(cuisine)...)
	}
	return terms
}

// Score computes the recommendation score for a candidate: proximity and
// rating blended 70/30, rounded to one decimal.
func Score(distanceKm, rating float64) float64 {
	proximity := math.Max(0, 100-distancePenalty*distanceKm)
	raw := distanceWeight*proximity + ratingWeight*(rating*ratingScale)
	return math.Round(raw*10) / 10
}

func derefDistance(d *float64) float64 {
	if d == nil {
		return 0
	}
	return *d
}

func recordRadius(requested, effective float64) {
	escalated := "no"
	if effective > requested {
		escalated = "yes"
	}
	metrics.RecommendationRadius.WithLabelValues(escalated).Observe(effective)
}
