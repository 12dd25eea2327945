// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package cache

import (
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/logging"
	"github.com/sabora-app/sabora/internal/metrics"
	"github.com/sabora-app/sabora/internal/models"
)

// Store is a pluggable cache backend. Implementations must be safe for
// concurrent use; last-writer-wins on key collisions is acceptable because
// payloads for the same fingerprint are deterministic.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
	Count() (int64, error)
	Kind() string
	Close() error
}

// ResultCache caches finished recommendation lists keyed by request
// fingerprint. Backend failures degrade to misses or dropped writes; a
// broken store never fails a request.
type ResultCache struct {
	store  Store
	ttl    time.Duration
	logger zerolog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time snapshot of cache behavior.
type Stats struct {
	Backend string  `json:"backend"`
	Entries int64   `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// NewResultCache wraps a store with the recommendation TTL policy.
func NewResultCache(store Store, ttl time.Duration) *ResultCache {
	return &ResultCache{
		store:  store,
		ttl:    ttl,
		logger: logging.WithComponent("cache"),
	}
}

// Get returns the cached recommendation list for the request, or false on
// miss. Store errors and undecodable payloads count as misses.
func (c *ResultCache) Get(coord geo.Coordinate, queryText string, filters models.FilterSet) ([]models.Restaurant, bool) {
	key := Fingerprint(coord, queryText, filters)

	data, found, err := c.store.Get(key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, treating as miss")
	}
	if err != nil || !found {
		c.misses.Add(1)
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var results []models.Restaurant
	if err := json.Unmarshal(data, &results); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache entry undecodable, evicting")
		_ = c.store.Delete(key)
		c.misses.Add(1)
		metrics.CacheMisses.Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.CacheHits.Inc()
	return results, true
}

// Put stores a finished recommendation list under the request fingerprint.
// Write failures are logged and dropped.
func (c *ResultCache) Put(coord geo.Coordinate, queryText string, filters models.FilterSet, results []models.Restaurant) {
	key := Fingerprint(coord, queryText, filters)

	data, err := json.Marshal(results)
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("cache entry marshal failed")
		return
	}
	if err := c.store.Set(key, data, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// InvalidateByLocation clears the whole cache. Entries do not record their
// origin coordinate, so a location-scoped invalidation degrades to a full
// clear; the coordinate is validated and logged for the audit trail.
func (c *ResultCache) InvalidateByLocation(coord geo.Coordinate, radiusKm float64) error {
	if err := coord.Validate(); err != nil {
		return err
	}
	c.logger.Info().
		Float64("latitude", coord.Latitude).
		Float64("longitude", coord.Longitude).
		Float64("radius_km", radiusKm).
		Msg("invalidating cache by location (full clear)")
	return c.store.Clear()
}

// ClearAll removes every cached entry.
func (c *ResultCache) ClearAll() error {
	return c.store.Clear()
}

// Snapshot reports the current cache stats. A failing backend count is
// reported as zero entries.
func (c *ResultCache) Snapshot() Stats {
	entries, err := c.store.Count()
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache count failed")
	}

	hits := c.hits.Load()
	misses := c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total) * 100.0
	}
	return Stats{
		Backend: c.store.Kind(),
		Entries: entries,
		Hits:    hits,
		Misses:  misses,
		HitRate: rate,
	}
}

// Close releases the underlying store.
func (c *ResultCache) Close() error {
	return c.store.Close()
}
