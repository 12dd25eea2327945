// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package places

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/logging"
	"github.com/sabora-app/sabora/internal/metrics"
	"github.com/sabora-app/sabora/internal/models"
)

// Ensure BreakerSource implements Source
var _ Source = (*BreakerSource)(nil)

// BreakerSource wraps a Source with the circuit breaker pattern to prevent
// cascading failures when the places provider is unavailable or slow.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. This is intentional for
// production resilience.
type BreakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewBreakerSource wraps source with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewBreakerSource(source Source) *BreakerSource {
	cbName := source.Name() + "-places"

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening places circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] Places state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		// A geocode miss is a valid provider answer, not a provider failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &BreakerSource{
		source: source,
		cb:     cb,
		name:   cbName,
	}
}

// execute wraps a provider call with circuit breaker protection. Rejections
// from an open circuit are mapped to ErrUnavailable so callers can degrade.
func (b *BreakerSource) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Places request rejected")
			return nil, fmt.Errorf("places provider %s: %w", b.name, ErrUnavailable)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()

	return result, nil
}

// Search performs a nearby search with circuit breaker protection.
func (b *BreakerSource) Search(ctx context.Context, center geo.Coordinate, radiusMeters int, keyword string) ([]models.Restaurant, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.source.Search(ctx, center, radiusMeters, keyword)
	})
	if err != nil {
		return nil, err
	}
	restaurants, ok := result.([]models.Restaurant)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for Search")
	}
	return restaurants, nil
}

// Geocode resolves an address with circuit breaker protection.
func (b *BreakerSource) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.source.Geocode(ctx, address)
	})
	if err != nil {
		return geo.Coordinate{}, err
	}
	coord, ok := result.(geo.Coordinate)
	if !ok {
		return geo.Coordinate{}, errors.New("circuit breaker: unexpected result type for Geocode")
	}
	return coord, nil
}

// Name reports the wrapped source's name.
func (b *BreakerSource) Name() string {
	return b.source.Name()
}

// State returns the current circuit breaker state.
func (b *BreakerSource) State() gobreaker.State {
	return b.cb.State()
}

// Counts returns the current circuit breaker counts.
func (b *BreakerSource) Counts() gobreaker.Counts {
	return b.cb.Counts()
}

// stateToString converts a gobreaker state to a readable label.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts a gobreaker state to the metric gauge value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
