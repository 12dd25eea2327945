// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

/*
Package config provides centralized configuration management for Sabora.

Configuration is loaded via Koanf v2 with layered sources, highest
priority last:

 1. Built-in defaults
 2. YAML config file (./config.yaml, ./config/config.yaml, /config/config.yaml,
    or the file named by CONFIG_PATH)
 3. Environment variables

# Configuration Structure

Settings are grouped by component:

  - ServerConfig: HTTP server bind address, port and timeouts
  - PlacesConfig: places provider API key, endpoint, timeout and rate limit
  - CacheConfig: result cache directory and TTL
  - RecommendConfig: default radius, radius ladder and result count
  - SecurityConfig: rate limiting and CORS origins
  - LoggingConfig: zerolog level, format and caller annotation

# Environment Variables

Common variables:

  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT
  - PLACES_API_KEY (or GOOGLE_MAPS_API_KEY), PLACES_BASE_URL,
    PLACES_TIMEOUT, PLACES_RATE_LIMIT, PLACES_SEARCH_RADIUS_METERS
  - CACHE_DIR, CACHE_TTL
  - RECOMMEND_DEFAULT_RADIUS_KM, RECOMMEND_RADIUS_LADDER, RECOMMEND_MAX_RESULTS
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Validation

Config.Validate runs both go-playground/validator struct tags and
cross-field checks (radius ladder ordering, TTL bounds). Loading fails
fast on an invalid configuration rather than starting a misconfigured
server.

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	server := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
