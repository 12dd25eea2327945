// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package geo implements great-circle distance math over WGS-84 style
// decimal-degree coordinates: haversine distance, radius membership with a
// cheap rectangular pre-filter, human-readable distance labels, and initial
// bearing. All functions are pure and safe for concurrent use.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by coordinate and argument validation.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidArgument   = errors.New("invalid argument")
)

const (
	earthRadiusKm = 6371.0

	// kmPerDegreeLat is a lower bound on the length of one degree of
	// latitude. Used by the rectangular pre-filter; the bound must err on
	// the small side so the pre-filter never rejects a point that the
	// exact calculation would accept.
	kmPerDegreeLat = 110.0
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Validate reports whether the coordinate is inside the valid decimal-degree
// ranges.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90 degrees, got %v", ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180 degrees, got %v", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// Distance returns the great-circle distance in kilometers between a and b,
// rounded to 4 decimal places. Identical coordinates return exactly 0.
func Distance(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	return round(haversine(a, b), 4), nil
}

// haversine computes the raw great-circle distance in kilometers.
func haversine(a, b Coordinate) float64 {
	lat1Rad := a.Latitude * math.Pi / 180
	lat2Rad := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// WithinRadius reports whether point lies within radiusKm of center.
// A rectangular latitude pre-filter rejects distant points before the
// trigonometry runs. Longitude is deliberately not pre-filtered: a degree of
// longitude shrinks toward the poles, so a longitude box could reject points
// that are actually in range.
func WithinRadius(center, point Coordinate, radiusKm float64) (bool, error) {
	if radiusKm < 0 {
		return false, fmt.Errorf("%w: radius must be non-negative, got %v", ErrInvalidArgument, radiusKm)
	}
	if err := center.Validate(); err != nil {
		return false, err
	}
	if err := point.Validate(); err != nil {
		return false, err
	}

	if math.Abs(point.Latitude-center.Latitude)*kmPerDegreeLat > radiusKm {
		return false, nil
	}

	d, err := Distance(center, point)
	if err != nil {
		return false, err
	}
	return d <= radiusKm, nil
}

// FormatDistance renders a distance for display: meters below one kilometer
// ("850 metros"), kilometers with one decimal at or above ("2.3 km").
func FormatDistance(km float64) (string, error) {
	if km < 0 {
		return "", fmt.Errorf("%w: distance must be non-negative, got %v", ErrInvalidArgument, km)
	}
	if km < 1 {
		return fmt.Sprintf("%d metros", int(math.Round(km*1000))), nil
	}
	return fmt.Sprintf("%.1f km", km), nil
}

// Bearing returns the initial great-circle bearing from a to b in degrees,
// normalized to [0, 360).
func Bearing(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1Rad := a.Latitude * math.Pi / 180
	lat2Rad := b.Latitude * math.Pi / 180
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180

	y := math.Sin(deltaLon) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLon)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360), nil
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
