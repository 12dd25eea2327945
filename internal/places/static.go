// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/models"
)

// Ensure StaticSource implements Source
var _ Source = (*StaticSource)(nil)

// StaticSource serves the built-in restaurant catalog. It backs the service
// when no provider API key is configured and doubles as the fallback when
// the live provider is down.
type StaticSource struct {
	catalog []models.Restaurant
}

// NewStaticSource creates a source over the built-in catalog.
func NewStaticSource() *StaticSource {
	return &StaticSource{catalog: models.FallbackCatalog()}
}

// NewStaticSourceWithCatalog creates a source over an explicit catalog.
// Used by tests that need controlled data.
func NewStaticSourceWithCatalog(catalog []models.Restaurant) *StaticSource {
	return &StaticSource{catalog: models.CloneAll(catalog)}
}

// Name identifies the source in logs and health output.
func (s *StaticSource) Name() string {
	return "static"
}

// Search returns catalog entries near center. Distance filtering is left to
// the recommendation pipeline; only the keyword hint is applied here, as a
// case-insensitive match against name and cuisine. An empty keyword returns
// the whole catalog.
func (s *StaticSource) Search(ctx context.Context, center geo.Coordinate, radiusMeters int, keyword string) ([]models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := center.Validate(); err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return models.CloneAll(s.catalog), nil
	}

	matched := make([]models.Restaurant, 0, len(s.catalog))
	for i := range s.catalog {
		r := &s.catalog[i]
		if strings.Contains(strings.ToLower(r.Name), keyword) ||
			strings.Contains(strings.ToLower(r.CuisineType), keyword) {
			matched = append(matched, r.Clone())
		}
	}

	// A keyword that matches nothing still means "restaurants near me";
	// fall back to the whole catalog rather than returning nothing.
	if len(matched) == 0 {
		return models.CloneAll(s.catalog), nil
	}

	return matched, nil
}

// Geocode is not supported by the static catalog.
func (s *StaticSource) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	return geo.Coordinate{}, fmt.Errorf("static source cannot geocode %q: %w", address, ErrNotFound)
}
