// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and config files.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from
// multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Places    PlacesConfig    `koanf:"places"`
	Cache     CacheConfig     `koanf:"cache"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// PlacesConfig holds the restaurant data provider configuration. An empty
// APIKey selects the built-in static catalog instead of the live provider.
type PlacesConfig struct {
	APIKey             string        `koanf:"api_key"`
	BaseURL            string        `koanf:"base_url"`
	Timeout            time.Duration `koanf:"timeout"`
	RateLimit          float64       `koanf:"rate_limit"`
	SearchRadiusMeters int           `koanf:"search_radius_meters"`
}

// CacheConfig holds the result cache configuration. When Dir is empty or the
// durable store fails to open, the process-local in-memory store is used;
// that mode never shares state across processes.
type CacheConfig struct {
	Dir string        `koanf:"dir"`
	TTL time.Duration `koanf:"ttl"`
}

// RecommendConfig holds the ranking pipeline policy.
type RecommendConfig struct {
	DefaultRadiusKm float64   `koanf:"default_radius_km"`
	RadiusLadder    []float64 `koanf:"radius_ladder"`
	MaxResults      int       `koanf:"max_results"`
}

// SecurityConfig holds rate limiting and CORS configuration.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks the configuration for invalid values. Called by
// LoadWithKoanf after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	if c.Places.Timeout <= 0 {
		return fmt.Errorf("places.timeout must be positive, got %s", c.Places.Timeout)
	}
	if c.Places.RateLimit < 0 {
		return fmt.Errorf("places.rate_limit must not be negative, got %f", c.Places.RateLimit)
	}
	if c.Places.SearchRadiusMeters <= 0 {
		return fmt.Errorf("places.search_radius_meters must be positive, got %d", c.Places.SearchRadiusMeters)
	}

	if c.Cache.TTL < time.Minute || c.Cache.TTL > 24*time.Hour {
		return fmt.Errorf("cache.ttl must be between 1m and 24h, got %s", c.Cache.TTL)
	}

	if c.Recommend.DefaultRadiusKm <= 0 {
		return fmt.Errorf("recommend.default_radius_km must be positive, got %f", c.Recommend.DefaultRadiusKm)
	}
	if c.Recommend.MaxResults < 1 || c.Recommend.MaxResults > 20 {
		return fmt.Errorf("recommend.max_results must be between 1 and 20, got %d", c.Recommend.MaxResults)
	}
	for i := 1; i < len(c.Recommend.RadiusLadder); i++ {
		if c.Recommend.RadiusLadder[i] <= c.Recommend.RadiusLadder[i-1] {
			return fmt.Errorf("recommend.radius_ladder must be strictly increasing")
		}
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console", "":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
