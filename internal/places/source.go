// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package places provides restaurant candidate sources: a Google Places
// client with client-side rate limiting, a circuit breaker wrapper, and a
// static catalog source used when no provider is configured.
package places

import (
	"context"
	"errors"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/models"
)

// ErrUnavailable indicates the provider cannot serve requests right now
// (circuit open, quota exhausted, transport failure).
var ErrUnavailable = errors.New("places provider unavailable")

// ErrNotFound indicates a geocode lookup produced no result.
var ErrNotFound = errors.New("address not found")

// Source supplies restaurant candidates and address resolution. All calls
// honor context cancellation; implementations must be safe for concurrent
// use.
type Source interface {
	// Search returns restaurants near center. radiusMeters bounds the
	// provider-side search; keyword biases results and may be empty.
	Search(ctx context.Context, center geo.Coordinate, radiusMeters int, keyword string) ([]models.Restaurant, error)

	// Geocode resolves a free-form address to a coordinate.
	Geocode(ctx context.Context, address string) (geo.Coordinate, error)

	// Name identifies the source in logs and health output.
	Name() string
}
