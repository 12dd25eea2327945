// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

/*
google.go - Google Places REST API Client

This file implements a REST API client for the Google Places and Geocoding
web services. It provides nearby restaurant search and forward geocoding,
with client-side rate limiting.

API Reference: https://developers.google.com/maps/documentation/places/web-service
*/

package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/sabora-app/sabora/internal/geo"
	"github.com/sabora-app/sabora/internal/metrics"
	"github.com/sabora-app/sabora/internal/models"
)

// DefaultBaseURL is the Google Maps web service root.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api"

// GoogleConfig holds the settings for the Google Places client.
type GoogleConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outbound requests per second. Zero disables limiting.
	RateLimit float64
}

// GoogleClient provides access to the Google Places and Geocoding APIs.
type GoogleClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Ensure GoogleClient implements Source
var _ Source = (*GoogleClient)(nil)

// googlePlace is the subset of a Places result the service consumes.
type googlePlace struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name"`
	Vicinity     string   `json:"vicinity"`
	Rating       float64  `json:"rating"`
	PriceLevel   *int     `json:"price_level"`
	Types        []string `json:"types"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type searchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []googlePlace `json:"results"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleClient creates a Google Places client from cfg. The base URL
// defaults to the public Google Maps endpoint and a 10 second timeout is
// applied when none is configured.
func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &GoogleClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
	}
}

// Name identifies the source in logs and health output.
func (c *GoogleClient) Name() string {
	return "google"
}

// Search queries the Places nearby search endpoint for restaurants around
// center. keyword narrows the search when non-empty.
func (c *GoogleClient) Search(ctx context.Context, center geo.Coordinate, radiusMeters int, keyword string) ([]models.Restaurant, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Latitude, center.Longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)
	if keyword != "" {
		params.Set("keyword", keyword)
	}

	endpoint := c.baseURL + "/place/nearbysearch/json?" + params.Encode()

	var decoded searchResponse
	if err := c.doRequest(ctx, endpoint, &decoded); err != nil {
		metrics.RecordPlacesRequest("search", "error", time.Since(start))
		return nil, fmt.Errorf("places search request failed: %w", err)
	}

	switch decoded.Status {
	case "OK", "ZERO_RESULTS":
	default:
		metrics.RecordPlacesRequest("search", "error", time.Since(start))
		return nil, fmt.Errorf("places search returned status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	restaurants := make([]models.Restaurant, 0, len(decoded.Results))
	for i := range decoded.Results {
		restaurants = append(restaurants, convertPlace(&decoded.Results[i]))
	}

	metrics.RecordPlacesRequest("search", "success", time.Since(start))
	return restaurants, nil
}

// Geocode resolves a free-form address to a coordinate. Returns ErrNotFound
// when the address does not resolve.
func (c *GoogleClient) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	endpoint := c.baseURL + "/geocode/json?" + params.Encode()

	var decoded geocodeResponse
	if err := c.doRequest(ctx, endpoint, &decoded); err != nil {
		metrics.RecordPlacesRequest("geocode", "error", time.Since(start))
		return geo.Coordinate{}, fmt.Errorf("geocode request failed: %w", err)
	}

	if decoded.Status == "ZERO_RESULTS" || len(decoded.Results) == 0 {
		metrics.RecordPlacesRequest("geocode", "not_found", time.Since(start))
		return geo.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ErrNotFound)
	}
	if decoded.Status != "OK" {
		metrics.RecordPlacesRequest("geocode", "error", time.Since(start))
		return geo.Coordinate{}, fmt.Errorf("geocode returned status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	loc := decoded.Results[0].Geometry.Location
	coord := geo.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
	if err := coord.Validate(); err != nil {
		metrics.RecordPlacesRequest("geocode", "error", time.Since(start))
		return geo.Coordinate{}, fmt.Errorf("geocode returned invalid coordinate: %w", err)
	}

	metrics.RecordPlacesRequest("geocode", "success", time.Since(start))
	return coord, nil
}

// doRequest executes a GET against endpoint and decodes the JSON body into
// out. The rate limiter is consulted before the request is sent.
func (c *GoogleClient) doRequest(ctx context.Context, endpoint string, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("returned status %d (failed to read body)", resp.StatusCode)
		}
		return fmt.Errorf("returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// convertPlace maps a Places API result onto the internal restaurant model.
func convertPlace(p *googlePlace) models.Restaurant {
	level := -1
	if p.PriceLevel != nil {
		level = *p.PriceLevel
	}

	r := models.Restaurant{
		ID:          p.PlaceID,
		Name:        p.Name,
		Latitude:    p.Geometry.Location.Lat,
		Longitude:   p.Geometry.Location.Lng,
		Rating:      p.Rating,
		CuisineType: cuisineFor(p.Name, p.Types),
		PriceTier:   priceTierFor(level),
		Address:     p.Vicinity,
	}
	if p.OpeningHours != nil && p.OpeningHours.OpenNow {
		r.Features = append(r.Features, "aberto agora")
	}
	return r
}
