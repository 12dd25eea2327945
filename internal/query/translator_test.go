// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package query

import (
	"reflect"
	"testing"

	"github.com/sabora-app/sabora/internal/models"
)

func TestTranslateEmptyQuery(t *testing.T) {
	tr := NewTranslator()
	for _, text := range []string{"", "   ", "\t\n"} {
		fs := tr.Translate(text)
		if len(fs.CuisineTypes) != 0 || fs.PriceTier != "" || fs.RadiusKm != 0 ||
			fs.MinRating != 0 || fs.OpenNow {
			t.Errorf("Translate(%q) = %+v, want empty filter set", text, fs)
		}
		if fs.SortPreference != models.SortDistance {
			t.Errorf("Translate(%q) sort = %q, want distance", text, fs.SortPreference)
		}
	}
}

func TestTranslateCuisine(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want []string
	}{
		{"quero comida japonesa", []string{"japonesa"}},
		{"sushi perto de mim", []string{"japonesa"}},
		{"pizza para o jantar", []string{"italiana"}},
		{"carne de sol com macaxeira", []string{"nordestina"}},
		{"um lugar qualquer", nil},
	}
	for _, tt := range tests {
		fs := tr.Translate(tt.text)
		if !reflect.DeepEqual(fs.CuisineTypes, tt.want) {
			t.Errorf("Translate(%q) cuisines = %v, want %v", tt.text, fs.CuisineTypes, tt.want)
		}
	}
}

func TestTranslateCombined(t *testing.T) {
	tr := NewTranslator()
	fs := tr.Translate("restaurante italiano barato perto de mim")

	// "barato" also matches the bare "bar" venue synonym; substring
	// extraction keeps both, sorted.
	if !reflect.DeepEqual(fs.CuisineTypes, []string{"bar", "italiana"}) {
		t.Errorf("cuisines = %v, want [bar italiana]", fs.CuisineTypes)
	}
	if fs.PriceTier != models.PriceLow {
		t.Errorf("price = %q, want baixo", fs.PriceTier)
	}
	if fs.RadiusKm != 2.0 {
		t.Errorf("radius = %v, want 2.0", fs.RadiusKm)
	}
	// "barato" outranks "perto" in the preference priority
	if fs.SortPreference != models.SortPriceLow {
		t.Errorf("sort = %q, want price_low", fs.SortPreference)
	}
}

func TestTranslatePriceTier(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want string
	}{
		{"quero pizza barata", models.PriceLow},
		{"restaurante italiano barato", models.PriceLow},
		// gendered and plural adjective forms count too
		{"quero uma italiana barata perto de mim", models.PriceLow},
		{"opções baratas de almoço", models.PriceLow},
		{"jantar caro", models.PriceHigh},
		{"comida cara", models.PriceHigh},
		{"um lugar qualquer", ""},
	}
	for _, tt := range tests {
		if fs := tr.Translate(tt.text); fs.PriceTier != tt.want {
			t.Errorf("Translate(%q) price = %q, want %q", tt.text, fs.PriceTier, tt.want)
		}
	}
}

func TestTranslateFemininePriceFormDrivesSort(t *testing.T) {
	tr := NewTranslator()
	fs := tr.Translate("quero pizza barata")
	if fs.SortPreference != models.SortPriceLow {
		t.Errorf("sort = %q, want price_low", fs.SortPreference)
	}
}

func TestTranslateRadius(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want float64
	}{
		{"restaurantes a 3 km", 3},
		{"até 10 quilometros daqui", 10},
		{"aqui perto", 2},
		{"pode ser longe", 10},
		{"tanto faz", 0},
		// explicit distance wins over proximity words
		{"perto, uns 7 km", 7},
	}
	for _, tt := range tests {
		if fs := tr.Translate(tt.text); fs.RadiusKm != tt.want {
			t.Errorf("Translate(%q) radius = %v, want %v", tt.text, fs.RadiusKm, tt.want)
		}
	}
}

func TestTranslateMinRating(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want float64
	}{
		{"nota 4 pra cima", 4},
		{"no minimo 3 estrelas", 0}, // digit precedes the keyword, pattern requires keyword first
		{"estrela 5", 5},
		{"um restaurante bom", 4.0},
		{"um restaurante ótimo", 4.5},
		{"restaurante excelente", 5.0},
		{"nota 10", 5}, // clamped to the rating scale
		{"qualquer um", 0},
	}
	for _, tt := range tests {
		if fs := tr.Translate(tt.text); fs.MinRating != tt.want {
			t.Errorf("Translate(%q) minRating = %v, want %v", tt.text, fs.MinRating, tt.want)
		}
	}
}

func TestTranslateOpenNow(t *testing.T) {
	tr := NewTranslator()
	if fs := tr.Translate("restaurante aberto agora"); !fs.OpenNow {
		t.Error("expected open_now for 'aberto agora'")
	}
	if fs := tr.Translate("restaurante funcionando"); !fs.OpenNow {
		t.Error("expected open_now for 'funcionando'")
	}
	if fs := tr.Translate("pizzaria"); fs.OpenNow {
		t.Error("did not expect open_now")
	}
}

func TestSortPreferencePriority(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want models.SortPreference
	}{
		{"melhores restaurantes", models.SortRating},
		{"restaurantes baratos", models.SortPriceLow},
		{"restaurante premium", models.SortPriceHigh},
		{"perto de mim", models.SortDistance},
		{"qualquer coisa", models.SortDistance},
		// rating outranks everything else
		{"melhores baratos perto de mim", models.SortRating},
		// cheap outranks expensive and proximity
		{"barato gourmet aqui perto", models.SortPriceLow},
	}
	for _, tt := range tests {
		if fs := tr.Translate(tt.text); fs.SortPreference != tt.want {
			t.Errorf("Translate(%q) sort = %q, want %q", tt.text, fs.SortPreference, tt.want)
		}
	}
}

func TestTranslateDeterministic(t *testing.T) {
	tr := NewTranslator()
	const text = "melhor japonês barato a 5 km aberto agora"
	first := tr.Translate(text)
	for i := 0; i < 10; i++ {
		if got := tr.Translate(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Translate not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestTitleFor(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want string
	}{
		{"", "Restaurantes Recomendados"},
		{"   ", "Restaurantes Recomendados"},
		{"sushi barato", "Restaurantes Japoneses mais baratos"},
		{"comida japonesa", "Restaurantes Japoneses"},
		{"melhores restaurantes", "Restaurantes melhores"},
		{"algo sem sentido xyz", "Restaurantes Encontrados"},
	}
	for _, tt := range tests {
		if got := tr.TitleFor(tt.text); got != tt.want {
			t.Errorf("TitleFor(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestResponseCopyFor(t *testing.T) {
	tr := NewTranslator()

	rc := tr.ResponseCopyFor("restaurantes baratos")
	if rc.Title != "Restaurantes mais baratos" {
		t.Errorf("title = %q", rc.Title)
	}
	if rc.Subtitle != "Ordenados do mais barato ao mais caro" {
		t.Errorf("subtitle = %q", rc.Subtitle)
	}

	rc = tr.ResponseCopyFor("")
	if rc.Title != "Restaurantes Recomendados" || rc.Subtitle == "" || rc.Description == "" {
		t.Errorf("empty query copy incomplete: %+v", rc)
	}
}

func TestProviderKeyword(t *testing.T) {
	tr := NewTranslator()
	tests := []struct {
		text string
		want string
	}{
		{"quero sushi", "japonesa"},           // cuisine filter wins
		{"nota 4 sushi ali", "japonesa"},      // still via cuisine filter
		{"melhor lugar da cidade", "melhor lugar da cidade"}, // raw query fallback
	}
	for _, tt := range tests {
		fs := tr.Translate(tt.text)
		if got := tr.ProviderKeyword(tt.text, fs); got != tt.want {
			t.Errorf("ProviderKeyword(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}

	// lexicon mapping applies when no cuisine filter was extracted
	if got := tr.ProviderKeyword("padaria boa", models.FilterSet{}); got != "bakery" {
		t.Errorf("ProviderKeyword lexicon = %q, want bakery", got)
	}
}
