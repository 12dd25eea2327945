// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package places

import (
	"strings"

	"github.com/sabora-app/sabora/internal/models"
)

// nameCuisine pairs a name keyword with the cuisine label it implies.
// Checked in order; the restaurant name is more reliable than Google's
// generic type tags, so it is consulted first.
type nameCuisine struct {
	keyword string
	cuisine string
}

var nameCuisines = []nameCuisine{
	{"japonesa", "Japonesa"},
	{"japonês", "Japonesa"},
	{"japanese", "Japonesa"},
	{"sushi", "Japonesa"},
	{"temaki", "Japonesa"},
	{"sashimi", "Japonesa"},
	{"yaki", "Japonesa"},
	{"izakaya", "Japonesa"},
	{"oriental", "Japonesa"},
	{"italiana", "Italiana"},
	{"italian", "Italiana"},
	{"pizza", "Pizzaria"},
	{"chinesa", "Chinesa"},
	{"chinese", "Chinesa"},
	{"brasileira", "Brasileira"},
	{"brazilian", "Brasileira"},
	{"brasileiro", "Brasileira"},
	{"pastel", "Brasileira"},
	{"churrasco", "Brasileira"},
	{"churrascaria", "Brasileira"},
	{"feijoada", "Brasileira"},
	{"nordestina", "Brasileira"},
	{"nordestino", "Brasileira"},
	{"regional", "Brasileira"},
	{"mexicana", "Mexicana"},
	{"mexican", "Mexicana"},
	{"indiana", "Indiana"},
	{"indian", "Indiana"},
	{"árabe", "Árabe"},
	{"arabic", "Árabe"},
	{"mediterrânea", "Mediterrânea"},
	{"mediterranean", "Mediterrânea"},
	{"frutos do mar", "Frutos do Mar"},
	{"seafood", "Frutos do Mar"},
	{"ceviche", "Frutos do Mar"},
	{"vegana", "Vegana"},
	{"vegan", "Vegana"},
	{"vegetariana", "Vegetariana"},
	{"vegetarian", "Vegetariana"},
	{"fast food", "Fast Food"},
	{"padaria", "Padaria"},
	{"bakery", "Padaria"},
	{"café", "Café"},
	{"cafe", "Café"},
	{"bar", "Bar"},
}

// typeCuisines maps Google place types to cuisine labels, used when the
// name yields nothing.
var typeCuisines = map[string]string{
	"italian_restaurant":  "Italiana",
	"japanese_restaurant": "Japonesa",
	"chinese_restaurant":  "Chinesa",
	"indian_restaurant":   "Indiana",
	"mexican_restaurant":  "Mexicana",
	"thai_restaurant":     "Tailandesa",
	"brazilian_restaurant": "Brasileira",
	"seafood_restaurant":  "Frutos do Mar",
	"steakhouse":          "Churrascaria",
	"pizza_restaurant":    "Pizzaria",
	"bakery":              "Padaria",
	"cafe":                "Café",
	"bar":                 "Bar",
	"fast_food":           "Fast Food",
}

// cuisineFor derives a cuisine label from the place name and type tags.
func cuisineFor(name string, types []string) string {
	lower := strings.ToLower(name)
	for _, nc := range nameCuisines {
		if strings.Contains(lower, nc.keyword) {
			return nc.cuisine
		}
	}
	for _, t := range types {
		if cuisine, ok := typeCuisines[t]; ok {
			return cuisine
		}
	}
	return "Restaurante"
}

// priceTierFor converts Google's 0-4 price_level to a tier. Unknown levels
// default to mid-range.
func priceTierFor(level int) string {
	switch level {
	case 0, 1:
		return models.PriceLow
	case 2:
		return models.PriceMid
	case 3:
		return models.PriceMidHigh
	case 4:
		return models.PriceHigh
	default:
		return models.PriceMid
	}
}
