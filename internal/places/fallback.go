// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package places

import (
	"context"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/logging"
	"github.com/sabora-app/sabora/internal/models"
)

// Ensure FallbackSource implements Source
var _ Source = (*FallbackSource)(nil)

// FallbackSource tries a primary source and falls back to a secondary one
// when the primary fails. The usual composition is a circuit-broken live
// provider backed by the static catalog, so an outage degrades to stale but
// useful results instead of an empty page.
type FallbackSource struct {
	primary   Source
	secondary Source
}

// NewFallbackSource composes primary and secondary.
func NewFallbackSource(primary, secondary Source) *FallbackSource {
	return &FallbackSource{primary: primary, secondary: secondary}
}

// Name identifies the composed source in logs and health output.
func (s *FallbackSource) Name() string {
	return s.primary.Name() + "+" + s.secondary.Name()
}

// Search queries the primary source, falling back to the secondary on error.
// A canceled context is not retried against the secondary.
func (s *FallbackSource) Search(ctx context.Context, center geo.Coordinate, radiusMeters int, keyword string) ([]models.Restaurant, error) {
	results, err := s.primary.Search(ctx, center, radiusMeters, keyword)
	if err == nil {
		return results, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logging.Ctx(ctx).Warn().
		Err(err).
		Str("primary", s.primary.Name()).
		Str("secondary", s.secondary.Name()).
		Msg("Primary source failed, falling back")

	return s.secondary.Search(ctx, center, radiusMeters, keyword)
}

// Geocode only uses the primary source. The static catalog cannot resolve
// arbitrary addresses, so a secondary lookup would always fail anyway.
func (s *FallbackSource) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	return s.primary.Geocode(ctx, address)
}
