// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Search-intent validation. Before the pipeline runs, the free-form query is
// checked for restaurant intent: it must carry food vocabulary or a
// restaurant-shaped phrase, and must not be dominated by off-topic terms.
// Greetings and test strings ("oi", "teste") are rejected here with a
// client-correctable error instead of producing a meaningless search.

// SearchValidationResult reports whether a query is worth searching for.
type SearchValidationResult struct {
	Valid          bool     `json:"is_valid"`
	Errors         []string `json:"errors,omitempty"`
	SanitizedQuery string   `json:"sanitized_query"`
}

// foodKeywords marks terms that signal restaurant intent.
var foodKeywords = buildSet(
	// cuisines
	"japonesa", "japonês", "italiana", "italiano", "chinesa", "chinês",
	"brasileira", "brasileiro", "mexicana", "mexicano", "indiana", "indiano",
	"árabe", "mediterrânea", "mediterrâneo", "francesa", "francês",
	"portuguesa", "português", "peruana", "peruano", "nordestina", "nordestino",
	// dishes
	"pizza", "sushi", "hambúrguer", "hamburger", "lasanha", "macarrão",
	"macarronada", "feijoada", "churrasco", "churrascaria", "temaki",
	"sashimi", "yakisoba", "curry", "kebab", "shawarma", "paella", "risoto",
	"strogonoff", "moqueca", "acaraje", "vatapa",
	// venue types
	"restaurante", "lanchonete", "pizzaria", "sushi bar", "café", "cafe",
	"bar", "pub", "padaria", "confeitaria", "doceria", "sorveteria",
	"fast food", "delivery", "self service", "buffet",
	// traits
	"vegetariano", "vegano", "vegetariana", "vegana", "saudável", "orgânico",
	"organico", "natural", "gourmet", "tradicional", "caseiro", "artesanal",
	// meal vocabulary
	"comida", "almoço", "almoco", "jantar", "café da manhã", "cafe da manha",
	"lanche", "sobremesa", "doce", "salgado", "bebida", "refeição", "refeicao",
	"prato", "menu", "cardápio", "cardapio", "especialidade", "chef",
	// location phrases
	"próximo", "proximo", "perto", "perto de", "ao lado", "na rua",
	"no bairro", "no centro", "na praça", "na praca", "no shopping",
	"na avenida",
	// qualifiers
	"bom", "boa", "melhor", "ótimo", "otimo", "excelente", "delicioso",
	"saboroso", "famoso", "popular", "recomendado", "indicado",
	"barato", "econômico", "economico", "caro", "luxuoso", "elegante",
)

// offTopicKeywords is checked in order so rejection messages are stable.
var offTopicKeywords = []string{
	// tech vocabulary
	"javascript", "python", "html", "css", "react", "node", "api",
	"database", "server", "client", "frontend", "backend", "code",
	"programming", "software", "hardware", "computer", "laptop",
	"mysql", "postgresql", "mongodb", "redis", "docker", "kubernetes",
	// unrelated venues and objects
	"carro", "moto", "bicicleta", "avião", "aviao", "trem", "ônibus",
	"onibus", "hotel", "pousada", "cinema", "teatro", "museu",
	"escola", "universidade", "hospital", "farmácia", "farmacia",
	"loja", "supermercado", "banco", "correio",
	"posto de gasolina", "oficina", "consultório", "consultorio",
	// abstractions
	"amor", "felicidade", "tristeza", "alegria", "esperança", "esperanca",
	"liberdade", "justiça", "justica", "paz", "guerra", "política",
	"politica", "economia", "cultura", "arte", "música", "musica",
	// generic filler
	"coisa", "objeto", "item", "produto", "serviço", "servico",
	"informação", "informacao", "dado", "arquivo", "documento",
	// greetings and test strings
	"oi", "olá", "ola", "teste", "test", "hello", "hi", "hey",
	"ok", "yes", "talvez",
	"qualquer coisa", "algo", "nada", "tudo",
}

// validSearchPatterns catch restaurant-shaped phrases that carry no single
// food keyword on their own.
var validSearchPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(restaurante|comida|lanche|jantar|almoço|almoco)\s+(japonês|japonesa|italiano|italiana|chinesa|chines|brasileira|brasileiro)`),
	regexp.MustCompile(`(?i)(próximo|proximo|perto)\s+(de|do|da|dos|das)`),
	regexp.MustCompile(`(?i)(no|na|em)\s+(centro|bairro|shopping|praça|praca)`),
	regexp.MustCompile(`(?i)(bom|boa|melhor|ótimo|otimo|excelente)\s+(restaurante|comida|lanche)`),
	regexp.MustCompile(`(?i)(recomendado|indicado|famoso|popular)`),
	regexp.MustCompile(`(?i)(barato|econômico|economico|caro|luxuoso)`),
}

var (
	searchSanitizePattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	wordPattern           = regexp.MustCompile(`[\p{L}\p{N}]+`)
	specialCharPattern    = regexp.MustCompile(`[^a-z0-9\sàáâãäåçèéêëìíîïñòóôõöùúûüýÿ]`)
)

const maxSanitizedSearchLength = 100

// ValidateSearchQuery checks that a query plausibly asks about restaurants.
func ValidateSearchQuery(query string) SearchValidationResult {
	if strings.TrimSpace(query) == "" {
		return SearchValidationResult{
			Valid:  false,
			Errors: []string{"Digite algo para buscar"},
		}
	}

	sanitized := sanitizeSearch(query)
	result := SearchValidationResult{SanitizedQuery: sanitized}

	if len([]rune(sanitized)) < 2 {
		result.Errors = append(result.Errors, "Busca muito curta")
	}

	special := len(specialCharPattern.FindAllString(strings.ToLower(sanitized), -1))
	if float64(special) > float64(len([]rune(sanitized)))*0.3 {
		result.Errors = append(result.Errors, "Muitos caracteres especiais")
	}

	lower := strings.ToLower(sanitized)
	words := wordSet(lower)

	for _, off := range offTopicKeywords {
		if matchesKeyword(lower, words, off) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%q não é relacionado a restaurantes", off))
			return result
		}
	}

	if !hasFoodIntent(lower, words) {
		result.Errors = append(result.Errors,
			"Sua busca não parece ser sobre restaurantes ou comida")
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// hasFoodIntent reports whether the query carries food vocabulary or a
// restaurant-shaped phrase.
func hasFoodIntent(lower string, words map[string]struct{}) bool {
	for keyword := range foodKeywords {
		if matchesKeyword(lower, words, keyword) {
			return true
		}
	}
	for _, pattern := range validSearchPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// matchesKeyword matches multi-word keywords as substrings and single words
// as whole words, so that "oi" never fires inside "yakissoba de goiaba".
func matchesKeyword(lower string, words map[string]struct{}, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(lower, keyword)
	}
	_, ok := words[keyword]
	return ok
}

func wordSet(lower string) map[string]struct{} {
	tokens := wordPattern.FindAllString(lower, -1)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// sanitizeSearch keeps letters (accents included), digits and spaces, then
// collapses whitespace and bounds the length.
func sanitizeSearch(query string) string {
	sanitized := searchSanitizePattern.ReplaceAllString(query, " ")
	sanitized = whitespacePattern.ReplaceAllString(sanitized, " ")
	sanitized = strings.TrimSpace(sanitized)

	runes := []rune(sanitized)
	if len(runes) > maxSanitizedSearchLength {
		sanitized = strings.TrimSpace(string(runes[:maxSanitizedSearchLength]))
	}
	return sanitized
}

func buildSet(terms ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}
