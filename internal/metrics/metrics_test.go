// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/rules", "200"))

	RecordAPIRequest("GET", "/api/rules", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/rules", "200"))
	if after != before+1 {
		t.Errorf("expected counter to increment by 1, got %f -> %f", before, after)
	}
}

func TestRecordAPIRequestSeparatesStatusCodes(t *testing.T) {
	RecordAPIRequest("POST", "/api/recommendations", 200, time.Millisecond)
	RecordAPIRequest("POST", "/api/recommendations", 400, time.Millisecond)

	ok := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/recommendations", "200"))
	bad := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/recommendations", "400"))

	if ok < 1 || bad < 1 {
		t.Errorf("expected both status series populated, got 200=%f 400=%f", ok, bad)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("expected gauge %f after start, got %f", base+1, got)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("expected gauge back to %f, got %f", base, got)
	}
}

func TestTrackActiveRequestLifecycle(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	for i := 0; i < 5; i++ {
		TrackActiveRequest(true)
	}
	if got := testutil.ToFloat64(APIActiveRequests); got != base+5 {
		t.Errorf("expected %f active, got %f", base+5, got)
	}
	for i := 0; i < 5; i++ {
		TrackActiveRequest(false)
	}
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("expected %f after drain, got %f", base, got)
	}
}

func TestRecordPlacesRequest(t *testing.T) {
	before := testutil.ToFloat64(PlacesRequests.WithLabelValues("search", "success"))

	RecordPlacesRequest("search", "success", 120*time.Millisecond)

	after := testutil.ToFloat64(PlacesRequests.WithLabelValues("search", "success"))
	if after != before+1 {
		t.Errorf("expected places counter to increment, got %f -> %f", before, after)
	}
}

func TestRecommendationRequestOutcomes(t *testing.T) {
	before := testutil.ToFloat64(RecommendationRequests.WithLabelValues("cached"))

	RecommendationRequests.WithLabelValues("cached").Inc()

	after := testutil.ToFloat64(RecommendationRequests.WithLabelValues("cached"))
	if after != before+1 {
		t.Errorf("expected outcome counter to increment, got %f -> %f", before, after)
	}
}

func TestCircuitBreakerStateGauge(t *testing.T) {
	CircuitBreakerState.WithLabelValues("test-breaker").Set(2)

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != 2 {
		t.Errorf("expected state 2, got %f", got)
	}

	CircuitBreakerState.WithLabelValues("test-breaker").Set(0)
}

func TestConcurrentMetricRecording(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/health", "200"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordAPIRequest("GET", "/api/health", 200, time.Millisecond)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/health", "200"))
	if after != before+50 {
		t.Errorf("expected 50 increments, got %f -> %f", before, after)
	}
}
