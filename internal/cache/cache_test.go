// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package cache

import (
	"testing"
	"time"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/models"
)

func TestMemoryStoreBasicOperations(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	if err := s.Set("key1", []byte("value1"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, found, err := s.Get("key1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected key1 to be found")
	}
	if string(data) != "value1" {
		t.Errorf("Get = %q, want value1", data)
	}

	if _, found, _ := s.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	if err := s.Set("ephemeral", []byte("x"), 100*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found, _ := s.Get("ephemeral"); !found {
		t.Fatal("entry should exist before TTL elapses")
	}

	time.Sleep(150 * time.Millisecond)

	if _, found, _ := s.Get("ephemeral"); found {
		t.Error("entry should have expired")
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("Count = %d after lazy eviction, want 0", n)
	}
}

func TestMemoryStoreExpiredSweepSparesFreshOverwrite(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	// A write that lands between Get observing an expired entry and the
	// delete taking the write lock must not be dropped.
	if err := s.Set("key", []byte("fresh"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.deleteIfExpired("key")

	data, found, err := s.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || string(data) != "fresh" {
		t.Fatalf("Get = (%q, %v), want fresh entry to survive the sweep", data, found)
	}

	if err := s.Set("stale", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.deleteIfExpired("stale")
	if n, _ := s.Count(); n != 1 {
		t.Errorf("Count = %d, want 1 after removing only the expired entry", n)
	}
}

func TestMemoryStoreDeleteAndClear(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	_ = s.Set("a", []byte("1"), time.Minute)
	_ = s.Set("b", []byte("2"), time.Minute)

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := s.Get("a"); found {
		t.Error("deleted key still present")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("Count after Clear = %d, want 0", n)
	}
}

var testCoord = geo.Coordinate{Latitude: -9.6498, Longitude: -35.7089}

func TestFingerprintStable(t *testing.T) {
	filters := models.FilterSet{
		CuisineTypes:   []string{"japonesa"},
		RadiusKm:       2,
		SortPreference: models.SortDistance,
	}

	k1 := Fingerprint(testCoord, "sushi perto", filters)
	k2 := Fingerprint(testCoord, "sushi perto", filters)
	if k1 != k2 {
		t.Errorf("fingerprint not stable: %q vs %q", k1, k2)
	}

	// query normalization: case and surrounding whitespace are ignored
	if k := Fingerprint(testCoord, "  SUSHI Perto  ", filters); k != k1 {
		t.Errorf("normalized query changed fingerprint: %q vs %q", k, k1)
	}

	// coordinate rounding: differences beyond 6 decimals are ignored
	nudged := geo.Coordinate{Latitude: testCoord.Latitude + 1e-9, Longitude: testCoord.Longitude}
	if k := Fingerprint(nudged, "sushi perto", filters); k != k1 {
		t.Errorf("sub-precision coordinate changed fingerprint")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	filters := models.FilterSet{SortPreference: models.SortDistance}
	base := Fingerprint(testCoord, "pizza", filters)

	moved := geo.Coordinate{Latitude: testCoord.Latitude + 0.001, Longitude: testCoord.Longitude}
	if Fingerprint(moved, "pizza", filters) == base {
		t.Error("moved coordinate should change fingerprint")
	}
	if Fingerprint(testCoord, "pizza barata", filters) == base {
		t.Error("different query should change fingerprint")
	}
	if Fingerprint(testCoord, "pizza", models.FilterSet{MinRating: 4, SortPreference: models.SortDistance}) == base {
		t.Error("different filters should change fingerprint")
	}
}

func TestFingerprintCuisineOrderIrrelevant(t *testing.T) {
	a := models.FilterSet{CuisineTypes: []string{"italiana", "bar"}}
	b := models.FilterSet{CuisineTypes: []string{"bar", "italiana"}}
	if Fingerprint(testCoord, "q", a) != Fingerprint(testCoord, "q", b) {
		t.Error("cuisine order should not affect the fingerprint")
	}
}

func sampleResults() []models.Restaurant {
	d := 1.2345
	return []models.Restaurant{
		{
			ID: "1", Name: "Bodega do Sertão", Latitude: -9.65333, Longitude: -35.70920,
			Rating: 4.6, CuisineType: "Nordestina", PriceTier: models.PriceMid,
			DistanceKm: &d, DistanceLabel: "1.2 km", Rank: 1, Score: 98.4,
		},
		{
			ID: "2", Name: "Janga Praia", Latitude: -9.66328, Longitude: -35.70562,
			Rating: 4.8, CuisineType: "Frutos do mar", Rank: 2, Score: 95.1,
		},
	}
}

func TestResultCacheRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	c := NewResultCache(store, time.Minute)
	defer c.Close()

	filters := models.FilterSet{SortPreference: models.SortDistance}

	if _, found := c.Get(testCoord, "sushi", filters); found {
		t.Fatal("expected miss on empty cache")
	}

	want := sampleResults()
	c.Put(testCoord, "sushi", filters, want)

	got, found := c.Get(testCoord, "sushi", filters)
	if !found {
		t.Fatal("expected hit after Put")
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	if got[0].Name != want[0].Name || got[0].Rank != 1 || got[0].Score != want[0].Score {
		t.Errorf("first result mismatch: %+v", got[0])
	}
	if got[0].DistanceKm == nil || *got[0].DistanceKm != *want[0].DistanceKm {
		t.Errorf("distance not round-tripped: %+v", got[0].DistanceKm)
	}
}

func TestResultCacheExpiration(t *testing.T) {
	store := NewMemoryStore()
	c := NewResultCache(store, 100*time.Millisecond)
	defer c.Close()

	filters := models.FilterSet{SortPreference: models.SortDistance}
	c.Put(testCoord, "pizza", filters, sampleResults())

	if _, found := c.Get(testCoord, "pizza", filters); !found {
		t.Fatal("expected hit before TTL elapses")
	}

	time.Sleep(150 * time.Millisecond)

	if _, found := c.Get(testCoord, "pizza", filters); found {
		t.Error("expected miss after TTL")
	}
}

func TestResultCacheInvalidateByLocation(t *testing.T) {
	store := NewMemoryStore()
	c := NewResultCache(store, time.Minute)
	defer c.Close()

	filters := models.FilterSet{SortPreference: models.SortDistance}
	c.Put(testCoord, "pizza", filters, sampleResults())
	c.Put(testCoord, "sushi", filters, sampleResults())

	if err := c.InvalidateByLocation(testCoord, 5); err != nil {
		t.Fatalf("InvalidateByLocation failed: %v", err)
	}
	if _, found := c.Get(testCoord, "pizza", filters); found {
		t.Error("expected miss after invalidation")
	}
	if _, found := c.Get(testCoord, "sushi", filters); found {
		t.Error("expected miss after invalidation")
	}
}

func TestResultCacheInvalidateBadCoordinate(t *testing.T) {
	c := NewResultCache(NewMemoryStore(), time.Minute)
	defer c.Close()

	if err := c.InvalidateByLocation(geo.Coordinate{Latitude: 99, Longitude: 0}, 5); err == nil {
		t.Error("expected error for invalid coordinate")
	}
}

func TestResultCacheSnapshot(t *testing.T) {
	c := NewResultCache(NewMemoryStore(), time.Minute)
	defer c.Close()

	filters := models.FilterSet{SortPreference: models.SortDistance}
	c.Put(testCoord, "pizza", filters, sampleResults())

	c.Get(testCoord, "pizza", filters)  // hit
	c.Get(testCoord, "burger", filters) // miss

	stats := c.Snapshot()
	if stats.Backend != "memory" {
		t.Errorf("backend = %q, want memory", stats.Backend)
	}
	if stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 50 {
		t.Errorf("hit rate = %v, want 50", stats.HitRate)
	}
}
