// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package places

import (
	"testing"

	"github.com/sabora-app/sabora/internal/models"
)

func TestCuisineForNameKeywords(t *testing.T) {
	tests := []struct {
		name     string
		place    string
		types    []string
		expected string
	}{
		{"sushi name", "Sushi Yama", nil, "Japonesa"},
		{"temaki name", "Temakeria do Centro", nil, "Japonesa"},
		{"pizza name", "Pizzaria Bella Napoli", nil, "Pizzaria"},
		{"churrascaria name", "Churrascaria Gaúcha", nil, "Brasileira"},
		{"nordestina name", "Comida Nordestina da Vovó", nil, "Brasileira"},
		{"seafood name", "Ceviche House", nil, "Frutos do Mar"},
		{"bakery name", "Padaria Pão Quente", nil, "Padaria"},
		{"case insensitive", "SUSHI BAR IKEDA", nil, "Japonesa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cuisineFor(tt.place, tt.types)
			if got != tt.expected {
				t.Errorf("cuisineFor(%q) = %q, want %q", tt.place, got, tt.expected)
			}
		})
	}
}

func TestCuisineForNameBeatsType(t *testing.T) {
	// The name carries more signal than Google's type tags.
	got := cuisineFor("Cantina Italiana", []string{"japanese_restaurant"})
	if got != "Italiana" {
		t.Errorf("expected name keyword to win, got %q", got)
	}
}

func TestCuisineForTypes(t *testing.T) {
	tests := []struct {
		placeType string
		expected  string
	}{
		{"italian_restaurant", "Italiana"},
		{"japanese_restaurant", "Japonesa"},
		{"thai_restaurant", "Tailandesa"},
		{"seafood_restaurant", "Frutos do Mar"},
		{"steakhouse", "Churrascaria"},
		{"pizza_restaurant", "Pizzaria"},
		{"bakery", "Padaria"},
		{"cafe", "Café"},
		{"fast_food", "Fast Food"},
	}

	for _, tt := range tests {
		t.Run(tt.placeType, func(t *testing.T) {
			got := cuisineFor("Estabelecimento Sem Pistas", []string{tt.placeType})
			if got != tt.expected {
				t.Errorf("cuisineFor(type=%q) = %q, want %q", tt.placeType, got, tt.expected)
			}
		})
	}
}

func TestCuisineForDefault(t *testing.T) {
	got := cuisineFor("Estabelecimento Sem Pistas", []string{"point_of_interest", "establishment"})
	if got != "Restaurante" {
		t.Errorf("expected default cuisine, got %q", got)
	}
}

func TestPriceTierFor(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{0, models.PriceLow},
		{1, models.PriceLow},
		{2, models.PriceMid},
		{3, models.PriceMidHigh},
		{4, models.PriceHigh},
		{-1, models.PriceMid},
		{7, models.PriceMid},
	}

	for _, tt := range tests {
		got := priceTierFor(tt.level)
		if got != tt.expected {
			t.Errorf("priceTierFor(%d) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestConvertPlace(t *testing.T) {
	level := 3
	p := googlePlace{
		PlaceID:    "ChIJabc123",
		Name:       "Sushi Kada",
		Vicinity:   "Av. Álvaro Otacílio, 3452 - Ponta Verde",
		Rating:     4.6,
		PriceLevel: &level,
		Types:      []string{"restaurant", "food"},
	}
	p.Geometry.Location.Lat = -9.6658
	p.Geometry.Location.Lng = -35.7089
	p.OpeningHours = &struct {
		OpenNow bool `json:"open_now"`
	}{OpenNow: true}

	r := convertPlace(&p)

	if r.ID != "ChIJabc123" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.CuisineType != "Japonesa" {
		t.Errorf("CuisineType = %q, want Japonesa", r.CuisineType)
	}
	if r.PriceTier != models.PriceMidHigh {
		t.Errorf("PriceTier = %q, want %q", r.PriceTier, models.PriceMidHigh)
	}
	if r.Latitude != -9.6658 || r.Longitude != -35.7089 {
		t.Errorf("coordinates = (%f, %f)", r.Latitude, r.Longitude)
	}
	if r.Address != p.Vicinity {
		t.Errorf("Address = %q", r.Address)
	}
	if len(r.Features) != 1 || r.Features[0] != "aberto agora" {
		t.Errorf("Features = %v, want [aberto agora]", r.Features)
	}
}

func TestConvertPlaceMissingPriceLevel(t *testing.T) {
	p := googlePlace{PlaceID: "x", Name: "Restaurante do Porto"}
	r := convertPlace(&p)
	if r.PriceTier != models.PriceMid {
		t.Errorf("missing price_level should default to %q, got %q", models.PriceMid, r.PriceTier)
	}
	if len(r.Features) != 0 {
		t.Errorf("expected no features, got %v", r.Features)
	}
}
