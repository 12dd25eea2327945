// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package main is the entry point for the Sabora server application.
//
// Sabora answers free-form Portuguese restaurant queries ("comida japonesa
// barata perto de mim") with ranked recommendations. Queries are translated
// into structured filters, candidates are fetched from a places provider,
// and results are scored by distance and rating.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Cache: BadgerDB-backed result cache, with in-memory fallback
//  3. Places source: Google Places behind a circuit breaker, or static catalog
//  4. Recommendation engine: Query translation and the ranking pipeline
//  5. HTTP Server: REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Standalone Mode
//
// Without a provider API key Sabora serves the built-in restaurant catalog,
// so it runs with zero external dependencies:
//
//	./sabora
//
// With Google Places:
//
//	export PLACES_API_KEY=your-api-key
//	./sabora
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the result cache
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sabora-app/sabora/internal/api"
	"github.com/sabora-app/sabora/internal/cache"
	"github.com/sabora-app/sabora/internal/config"
	"github.com/sabora-app/sabora/internal/logging"
	"github.com/sabora-app/sabora/internal/middleware"
	"github.com/sabora-app/sabora/internal/places"
	"github.com/sabora-app/sabora/internal/query"
	"github.com/sabora-app/sabora/internal/recommend"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Sabora")

	resultCache := initCache(cfg)
	defer func() {
		if err := resultCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing result cache")
		}
	}()

	source := initSource(cfg)

	engine := recommend.NewEngine(source, resultCache, query.NewTranslator(), recommend.Config{
		SearchRadiusMeters: cfg.Places.SearchRadiusMeters,
		DefaultRadiusKm:    cfg.Recommend.DefaultRadiusKm,
		RadiusLadder:       cfg.Recommend.RadiusLadder,
		MaxResults:         cfg.Recommend.MaxResults,
	})

	perf := middleware.NewPerformanceMonitor(1000)
	handler := api.NewHandler(engine, source, resultCache, perf, version)

	chiMW := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,

		RateLimitRequests: cfg.Security.RateLimitReqs,
		RateLimitWindow:   cfg.Security.RateLimitWindow,
		RateLimitDisabled: cfg.Security.RateLimitDisabled,
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(handler, chiMW, perf)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down HTTP server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("HTTP server shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// initCache opens the BadgerDB-backed result cache. A missing directory or
// open failure degrades to an in-memory cache rather than refusing to start.
func initCache(cfg *config.Config) *cache.ResultCache {
	if cfg.Cache.Dir == "" {
		logging.Info().Msg("Cache directory not configured, using in-memory cache")
		return cache.NewResultCache(cache.NewMemoryStore(), cfg.Cache.TTL)
	}

	store, err := cache.OpenBadgerStore(cfg.Cache.Dir)
	if err != nil {
		logging.Warn().Err(err).Str("dir", cfg.Cache.Dir).
			Msg("Failed to open persistent cache, falling back to in-memory")
		return cache.NewResultCache(cache.NewMemoryStore(), cfg.Cache.TTL)
	}

	logging.Info().Str("dir", cfg.Cache.Dir).Dur("ttl", cfg.Cache.TTL).
		Msg("Persistent result cache opened")
	return cache.NewResultCache(store, cfg.Cache.TTL)
}

// initSource selects the places source. Without an API key the built-in
// catalog serves everything; with one, Google Places runs behind a circuit
// breaker with the catalog as fallback.
func initSource(cfg *config.Config) places.Source {
	if cfg.Places.APIKey == "" {
		logging.Info().Msg("No places API key configured, serving the built-in catalog")
		return places.NewStaticSource()
	}

	google := places.NewGoogleClient(places.GoogleConfig{
		APIKey:    cfg.Places.APIKey,
		BaseURL:   cfg.Places.BaseURL,
		Timeout:   cfg.Places.Timeout,
		RateLimit: cfg.Places.RateLimit,
	})

	source := places.NewFallbackSource(places.NewBreakerSource(google), places.NewStaticSource())
	logging.Info().Str("source", source.Name()).Msg("Live places provider configured")
	return source
}
