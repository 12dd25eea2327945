// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package synonyms holds the static Portuguese lexicon shared by the query
// translator and the ranking filters. There is a single canonical table per
// concept (cuisine, price, proximity, rating); both query-side extraction and
// candidate-side matching read from it, so a term recognized in a query is
// guaranteed to expand the same way when candidates are filtered.
package synonyms

import "sort"

// Cuisine maps canonical cuisine keys to the query terms that imply them.
// Famous fast-food chains are folded into the "fast food" key.
var Cuisine = map[string][]string{
	"nordestina": {
		"nordestina", "nordestino", "regional", "carne de sol", "cuscuz", "acaraje",
		"baiao de dois", "sarapatel", "tapioca", "buchada", "dobradinha", "peixada",
		"comida nordestina", "culinaria nordestina", "tempero nordestino",
		"queijo coalho", "macaxeira", "pirão", "bobó", "vatapá", "caruru", "mocotó",
		"panelada", "galinha de cabidela",
	},
	"italiana": {
		"italiana", "italiano", "pizza", "pizzaria", "massa", "macarrao", "macarronada",
		"lasanha", "risoto", "gnocchi", "nhoque", "espaguete", "fettuccine", "carbonara",
		"bolonhesa", "parmegiana", "margherita", "calzone", "bruschetta", "antipasto",
		"pasta", "ravioli", "tortellini", "linguine", "penne", "fusilli", "tiramisù",
	},
	"japonesa": {
		"japonesa", "japonês", "japones", "japa", "sushi", "suchi", "temaki", "sashimi",
		"uramaki", "yakimeshi", "gyoza", "missoshiro", "ramen", "lamen", "yakissoba",
		"niguiri", "hot roll", "california roll", "philadelphia roll", "sunomono",
		"edamame", "teriyaki", "tempura", "yakitori", "donburi", "chirashi", "miso",
		"wasabi", "rodizio japa",
	},
	"brasileira": {
		"brasileira", "brasileiro", "feijao", "feijoada", "quentinha", "prato feito",
		"churrasco", "churrascaria", "farofa", "arroz com feijao", "moqueca baiana",
		"picanha", "costela", "fraldinha", "maminha", "alcatra", "cupim",
		"brigadeiro", "coxinha", "pastel", "tropeiro", "tutu de feijão", "mandioca",
		"pamonha",
	},
	"chinesa": {
		"chinesa", "china", "chines", "chop suey", "yakisoba", "rolinho primavera",
		"dumpling", "frango xadrez", "porco agridoce", "kung pao", "mapo tofu",
		"hot pot", "dim sum", "wonton", "chow mein", "pato laqueado", "agridoce",
	},
	"arabe": {
		"arabe", "árabe", "kibe", "quibe", "esfiha", "esfirra", "shawarma", "tabule",
		"homus", "hummus", "coalhada", "pita", "kafta", "baklava", "falafel",
		"labneh", "tahine", "kebab", "churrasco árabe",
	},
	"portuguesa": {
		"portuguesa", "portugues", "bacalhau", "pastel de nata", "sardinha",
		"caldo verde", "arroz de pato", "francesinha", "bifana", "alheira",
		"chouriço", "pastéis de bacalhau", "arroz de marisco", "cataplana", "açorda",
	},
	"peruana": {
		"peruana", "peruano", "ceviche", "pisco", "lomo saltado", "chicharron",
		"chaufa", "aji de gallina", "papa rellena", "anticuchos", "causa limeña",
		"tiradito",
	},
	"mediterranea": {
		"mediterranea", "mediterrâneo", "mediterrânea", "azeitona", "azeite",
		"cuscuz marroquino", "moussaka", "tzatziki", "dolmas", "spanakopita",
		"souvlaki", "gyros", "halva",
	},
	"mexicana": {
		"mexicana", "mexicano", "taco", "burrito", "guacamole", "quesadilla", "nachos",
		"enchilada", "fajita", "tortilla", "pico de gallo", "mole", "tamale",
		"pozole", "margarita", "tequila",
	},
	"indiana": {
		"indiana", "indiano", "curry", "tandoori", "masala", "naan", "chutney",
		"samosa", "biryani", "tikka masala", "vindaloo", "korma", "roti", "chapati",
		"lassi", "paneer", "garam masala",
	},
	"francesa": {
		"francesa", "francês", "frances", "croissant", "crepe", "ratatouille",
		"quiche", "souffle", "baguete", "baguette", "bouillabaisse", "coq au vin",
		"escargot", "foie gras", "cassoulet", "croque monsieur", "macaron",
		"crème brûlée",
	},
	"frutos do mar": {
		"frutos do mar", "peixe", "camarao", "camarão", "mariscos", "polvo",
		"lagosta", "siri", "ostra", "mexilhao", "mexilhão", "lula", "pescado",
		"caranguejo", "salmão", "robalo", "linguado", "moqueca de peixe",
		"casquinha de siri", "bobo de camarão", "paella",
	},
	"vegana": {
		"vegana", "vegano", "vegetariana", "vegetariano", "plant based", "sem carne",
		"sem derivados animais", "à base de plantas", "hambúrguer vegano",
		"leite vegetal", "queijo vegano", "carne vegetal",
	},
	"saudavel": {
		"saudavel", "saudável", "fit", "fitness", "light", "low carb", "dieta",
		"salada", "integral", "organico", "orgânico", "detox", "smoothie", "granola",
		"quinoa", "chia", "sem glúten", "sem açúcar", "diet",
	},
	"fast food": {
		"fast food", "lanche", "hamburguer", "hambúrguer", "hamburgueria",
		"batata frita", "hot dog", "cachorro quente", "sanduiche", "sanduba",
		"x-burger", "milkshake", "drive thru", "combo", "big mac", "whopper",
		// famous chains
		"mcdonalds", "mcdonald's", "mc donalds", "mequi", "burger king",
		"burguer king", "bk", "subway", "kfc", "kentucky fried chicken", "pizza hut",
		"dominos", "domino's", "bob's", "bobs", "giraffas", "habib's", "habibs",
		"spoleto", "china in box", "outback", "madero", "the fifties", "z deli",
	},
	"padaria": {
		"padaria", "pao", "pão", "bolo", "doces", "salgados", "bolacha", "biscoito",
		"cafe da manha", "café da manhã", "empada", "torta", "sonho", "pão francês",
		"pão integral", "folhado", "quindim", "confeitaria", "doceria",
	},
	"cafe": {
		"café", "cafe", "cafeteria", "coffee shop", "espresso", "cappuccino",
		"latte", "macchiato", "mocha", "café gelado", "affogato", "starbucks",
		"barista", "brunch", "chá",
	},
	"bar": {
		"bar", "boteco", "botequim", "pub", "cervejaria", "choperia", "drinks",
		"petiscos", "happy hour", "caipirinha", "cerveja", "chopp", "whisky",
		"gin", "cachaça", "vinho", "aperitivo", "tira-gosto", "porção",
	},
}

// Price maps the recognized price tiers to their query terms. Only the
// extremes carry vocabulary; mid tiers exist on the candidate side but no
// query term selects them directly.
var Price = map[string][]string{
	"baixo": {
		"barato", "baratos", "barata", "baratas", "economico", "economicos",
		"econômico", "acessivel",
		"acessível", "em conta", "popular", "baratinho", "custo beneficio",
		"custo benefício", "promoção", "preço baixo", "preços baixos", "pechincha",
		"bom preço", "preço camarada", "sem gastar muito", "orçamento apertado",
		"universitário",
	},
	"alto": {
		"caro", "caros", "cara", "caras", "luxo", "luxuoso", "premium",
		"sofisticado", "exclusivo",
		"gourmet", "fino", "caríssimo", "chique", "elegante", "requintado",
		"alto padrão", "top de linha", "gastronômico", "chef renomado",
		"cinco estrelas",
	},
}

// Proximity bands and the terms that select them. The translator maps bands
// to default radii: perto 2 km, medio 5 km, longe 10 km.
var Proximity = map[string][]string{
	"perto": {
		"perto", "proximo", "próximo", "perto de mim", "aqui perto", "vizinho",
		"nas redondezas", "ao lado", "região próxima", "mais perto", "na esquina",
		"vizinhança", "no bairro", "na área", "na região", "a pé", "ali perto",
		"bem perto",
	},
	"medio": {
		"nem tão perto", "distância média", "distancia media", "meio longe",
		"região central", "alguns quilômetros",
	},
	"longe": {
		"longe", "distante", "afastado", "mais afastado", "outra cidade",
		"periferia", "muito longe", "interior", "subúrbio", "afastado do centro",
	},
}

// RatingBand couples a rating vocabulary with the minimum rating it implies.
type RatingBand struct {
	Name      string
	MinRating float64
	Terms     []string
}

// RatingBands is ordered strongest first so the highest matching band wins.
var RatingBands = []RatingBand{
	{
		Name:      "excelente",
		MinRating: 5.0,
		Terms: []string{
			"excelente", "excelentes", "excepcional", "perfeito", "perfeita",
			"nota 10", "extraordinário", "impecável",
		},
	},
	{
		Name:      "otimo",
		MinRating: 4.5,
		Terms: []string{
			"otimo", "ótimo", "ótimos", "otimos", "maravilhoso", "maravilhosa",
			"incrivel", "incrível", "sensacional", "fantástico", "espetacular",
			"fenomenal", "topzera",
		},
	},
	{
		Name:      "bom",
		MinRating: 4.0,
		Terms: []string{
			"bom", "boa", "bons", "boas", "top", "show", "da hora", "massa",
			"brabo", "bem avaliado", "recomendado", "indicado", "aprovado",
			"confiável", "de qualidade", "referência",
		},
	},
}

// ProviderKeyword pairs a query term with the search keyword sent to the
// places provider. Ordered so earlier entries take precedence.
type ProviderKeyword struct {
	Term    string
	Keyword string
}

// ProviderKeywords maps common Portuguese terms to provider search keywords.
var ProviderKeywords = []ProviderKeyword{
	{"comida japonesa", "japanese restaurant"},
	{"japonesa", "japanese restaurant"},
	{"japones", "japanese restaurant"},
	{"sushi", "sushi restaurant"},
	{"temaki", "japanese restaurant"},
	{"sashimi", "japanese restaurant"},
	{"italiana", "italian restaurant"},
	{"pizza", "pizza restaurant"},
	{"chinesa", "chinese restaurant"},
	{"brasileira", "brazilian restaurant"},
	{"mexicana", "mexican restaurant"},
	{"indiana", "indian restaurant"},
	{"arabe", "arabic restaurant"},
	{"árabe", "arabic restaurant"},
	{"mediterranea", "mediterranean restaurant"},
	{"frutos do mar", "seafood restaurant"},
	{"vegana", "vegan restaurant"},
	{"vegetariana", "vegetarian restaurant"},
	{"fast food", "fast food"},
	{"padaria", "bakery"},
	{"café", "cafe"},
	{"cafe", "cafe"},
	{"bar", "bar"},
}

// CuisineOrder fixes the scan order for cuisine extraction. Specific
// cuisines come before the generic venue types (cafe, bar) so that, e.g.,
// "barato" matching the "bar" synonym never shadows a real cuisine term.
var CuisineOrder = []string{
	"nordestina", "italiana", "japonesa", "brasileira", "chinesa", "arabe",
	"portuguesa", "peruana", "mediterranea", "mexicana", "indiana", "francesa",
	"frutos do mar", "vegana", "saudavel", "fast food", "padaria", "cafe", "bar",
}

// CuisineKeys returns the canonical cuisine keys in sorted order.
func CuisineKeys() []string {
	keys := make([]string, 0, len(Cuisine))
	for k := range Cuisine {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExpandCuisine returns the canonical key plus all of its synonyms, or just
// the input when the key is unknown. Matching candidates against the expanded
// set keeps filter behavior aligned with query extraction.
func ExpandCuisine(key string) []string {
	terms, ok := Cuisine[key]
	if !ok {
		return []string{key}
	}
	out := make([]string, 0, len(terms)+1)
	out = append(out, key)
	out = append(out, terms...)
	return out
}
