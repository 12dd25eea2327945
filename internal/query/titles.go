// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package query

import (
	"fmt"
	"strings"
)

// cuisineTitles maps canonical cuisine keys to their plural display form.
var cuisineTitles = map[string]string{
	"japonesa":      "Japoneses",
	"brasileira":    "Brasileiros",
	"italiana":      "Italianos",
	"chinesa":       "Chineses",
	"mexicana":      "Mexicanos",
	"indiana":       "Indianos",
	"arabe":         "Árabes",
	"portuguesa":    "Portugueses",
	"peruana":       "Peruanos",
	"mediterranea":  "Mediterrâneos",
	"francesa":      "Franceses",
	"frutos do mar": "Frutos do Mar",
	"vegana":        "Veganos",
	"saudavel":      "Saudáveis",
	"fast food":     "Fast Food",
	"padaria":       "Padarias",
	"cafe":          "Cafés",
	"bar":           "Bares",
	"nordestina":    "Nordestinos",
}

// sortTitles maps sort preferences to their title fragment.
var sortTitles = map[string]string{
	"distance":   "mais próximos",
	"rating":     "melhores",
	"price_low":  "mais baratos",
	"price_high": "mais caros",
}

// sortSubtitles maps sort preferences to result-list subtitles.
var sortSubtitles = map[string]string{
	"distance":   "Ordenados pela menor distância até você",
	"rating":     "Ordenados pelas melhores avaliações",
	"price_low":  "Ordenados do mais barato ao mais caro",
	"price_high": "Ordenados do mais caro ao mais barato",
}

// ResponseCopy is the presentation text returned with a recommendation list.
type ResponseCopy struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// TitleFor generates the result-list title for a query. Empty input yields
// the generic title; otherwise the title reflects the detected cuisine and
// explicit sort preference, falling back to "Restaurantes Encontrados".
func (t *Translator) TitleFor(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "Restaurantes Recomendados"
	}
	lower := strings.ToLower(text)

	cuisineTitle := t.cuisineTitle(lower)

	var sortTitle string
	if pref, explicit := findSortPreference(lower); explicit {
		sortTitle = sortTitles[string(pref)]
	}

	switch {
	case cuisineTitle != "" && sortTitle != "":
		return fmt.Sprintf("Restaurantes %s %s", cuisineTitle, sortTitle)
	case cuisineTitle != "":
		return fmt.Sprintf("Restaurantes %s", cuisineTitle)
	case sortTitle != "":
		return fmt.Sprintf("Restaurantes %s", sortTitle)
	default:
		return "Restaurantes Encontrados"
	}
}

// ResponseCopyFor generates the title, subtitle and description bundle for
// a query. Deterministic: same query text, same copy.
func (t *Translator) ResponseCopyFor(text string) ResponseCopy {
	copyText := ResponseCopy{
		Title:       t.TitleFor(text),
		Subtitle:    sortSubtitles["distance"],
		Description: "Seleção de restaurantes na sua região",
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return copyText
	}

	pref, explicit := findSortPreference(lower)
	if explicit {
		copyText.Subtitle = sortSubtitles[string(pref)]
	}

	if title := t.cuisineTitle(lower); title != "" {
		copyText.Description = fmt.Sprintf("Restaurantes %s selecionados para você", title)
	}
	return copyText
}

// cuisineTitle returns the display form of the first cuisine (in key order)
// whose synonyms occur in the text, or empty when none match.
func (t *Translator) cuisineTitle(lower string) string {
	for _, key := range t.cuisineKeys {
		for _, syn := range t.cuisine[key] {
			if strings.Contains(lower, strings.ToLower(syn)) {
				if title, ok := cuisineTitles[key]; ok {
					return title
				}
				return strings.Title(key) //nolint:staticcheck // keys are lowercase ASCII words
			}
		}
	}
	return ""
}
