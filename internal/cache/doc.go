// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

/*
Package cache provides TTL-based caching of recommendation results.

A cached entry is keyed by a fingerprint of the request: the rounded
coordinates, the normalized query text and the canonical filter set. Two
requests that mean the same thing hit the same entry even when the raw
query strings differ in case or spacing.

# Backends

Two Store implementations are provided behind a common interface:

  - MemoryStore: in-process map with a background sweeper. Zero setup,
    contents lost on restart. Used in tests and when no cache directory
    is configured.
  - BadgerStore: persistent BadgerDB-backed store. TTL handling is
    delegated to Badger's native entry expiry.

The server opens BadgerStore when CACHE_DIR points at a writable
directory and silently falls back to MemoryStore otherwise.

# ResultCache

ResultCache layers recommendation-specific behavior on a Store:
serialization of result lists (goccy/go-json), hit/miss accounting
exported both via Snapshot and Prometheus, and geographic invalidation.
InvalidateByLocation keeps stale results from surviving a catalog change
near a point; it validates and logs the coordinate but clears the whole
store, because fingerprint keys do not record their origin coordinate.

# Usage

	store, err := cache.OpenBadgerStore("/data/cache")
	if err != nil {
	    store = cache.NewMemoryStore()
	}
	rc := cache.NewResultCache(store, time.Hour)
	defer rc.Close()

	if results, ok := rc.Get(center, query, filters); ok {
	    return results
	}

All operations are safe for concurrent use.
*/
package cache
