// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

package models

// FallbackCatalog returns the built-in Maceió restaurant dataset used when
// no places provider is configured. Callers receive a fresh copy and may
// annotate it freely.
func FallbackCatalog() []Restaurant {
	return CloneAll(fallbackCatalog)
}

var fallbackCatalog = []Restaurant{
	{
		ID: "1", Name: "Bodega do Sertão",
		Latitude: -9.65333, Longitude: -35.70920,
		Rating: 4.6, CuisineType: "Nordestina / self-service", PriceTier: PriceMid,
		Address: "Av. Dr. Júlio Marques Luz, 62 — Jatiúca, Maceió-AL",
		Phone:   "(82) 3327-4446",
		OpeningHours: "Seg-Dom: 11h30-16h, 17h30-22h",
		Features:     []string{"decoração temática", "buffet self-service", "culinária regional"},
	},
	{
		ID: "2", Name: "Janga Praia",
		Latitude: -9.66328, Longitude: -35.70562,
		Rating: 4.8, CuisineType: "Brasileira, Frutos do mar", PriceTier: PriceMidHigh,
		Address: "Av. Silvio Carlos Viana, 1731 — Ponta Verde, Maceió-AL",
		Phone:   "+55 82 98233-1030",
		Website: "https://linktr.ee/PedidosJanga",
		OpeningHours: "Dom-Qua: 12h-16h e 18h30-23h; Qui-Sáb: até 00h",
		Features:     []string{"beira-mar", "frutos do mar", "opções vegetarianas/sem glúten", "entrega"},
	},
	{
		ID: "3", Name: "Maria Antonieta",
		Latitude: -9.65090, Longitude: -35.70102,
		Rating: 4.7, CuisineType: "Italiana sofisticada", PriceTier: PriceHigh,
		Address: "Av. Dr. Antônio Gomes de Barros, 150 — Jatiúca, Maceió-AL",
		Phone:   "(82) 3202-8828",
		Website: "https://mariaantonieta-al.com.br/",
		Features: []string{"ambiente elegante", "pratos elaborados (raviolone)", "ideal para jantar especial"},
	},
	{
		ID: "4", Name: "Divina Gula",
		Latitude: -9.64632, Longitude: -35.70491,
		Rating: 4.6, CuisineType: "Mineira / Regional", PriceTier: PriceHigh,
		Address: "Av. Paulo Brandão Nogueira, 85 - Jatiúca, Maceió-AL",
		Phone:   "(82) 3235-1016",
		Features: []string{"ambiente acolhedor", "ingredientes frescos", "sofisticado"},
	},
	{
		ID: "5", Name: "Cheiro da Terra",
		Latitude: -9.671456, Longitude: -35.716030,
		Rating: 4.6, CuisineType: "Nordestina / Buffet", PriceTier: PriceMid,
		Address:  "Av. Dr. Antônio Gouveia, 487 - Pajuçara, Maceió-AL",
		Features: []string{"buffet", "ambiente rústico", "música ao vivo", "lojinha"},
	},
	{
		ID: "6", Name: "Micale Restaurante",
		Latitude: -9.6620031, Longitude: -35.7079004,
		Rating: 4.9, CuisineType: "Mediterrânea / Frutos do mar", PriceTier: PriceHigh,
		Address:  "R. Durval Guimarães, 1298 - Ponta Verde, Maceió - AL",
		Features: []string{"vista", "frutos do mar", "vinhos", "coquetéis"},
	},
	{
		ID: "7", Name: "Lopana",
		Latitude: -9.6638247, Longitude: -35.703948,
		Rating: 4.5, CuisineType: "Frutos do mar / Praia", PriceTier: PriceMid,
		Address:  "Av. Silvio Carlos Viana, 27 - Ponta Verde, Maceió-AL",
		Features: []string{"beira-mar", "peixes fritos", "bebidas refrescantes"},
	},
	{
		ID: "8", Name: "Wanchako",
		Latitude: -9.6559706, Longitude: -35.6999379,
		Rating: 4.5, CuisineType: "Peruana / Fusão", PriceTier: PriceHigh,
		Address:  "Rua Prefeito Abdon Arroxelas, 147 - Ponta Verde, Maceió - AL",
		Features: []string{"ceviche", "lomo saltado", "sofisticado"},
	},
	{
		ID: "9", Name: "759 Parrilla",
		Latitude: -9.6674273, Longitude: -35.7134763,
		Rating: 4.7, CuisineType: "Steakhouse / Carnes", PriceTier: PriceHigh,
		Address:      "Av. Dr. Antônio Gouveia, 759 - Pajuçara, Maceió-AL",
		OpeningHours: "Qua-Seg: 11h30-23h30",
		Features:     []string{"cortes nobres", "vinhos", "ambiente aconchegante"},
	},
	{
		ID: "10", Name: "Casa de Mãinha",
		Latitude: -9.6721042, Longitude: -35.7233606,
		Rating: 4.5, CuisineType: "Nordestina / Caseira", PriceTier: PriceLow,
		Address:  "R. Sá e Albuquerque, 417 - Jaraguá, Maceió - AL",
		Features: []string{"caseira", "custo-benefício", "ambiente variado"},
	},
	{
		ID: "11", Name: "Armazém Guimarães",
		Latitude: -9.6509629, Longitude: -35.7012432,
		Rating: 4.6, CuisineType: "Italiana",
		Address:  "Av. Dr. Antônio Gomes de Barros, 188 - Jatiúca, Maceió-AL, Parque Shopping Maceió",
		Phone:    "(82) 3325-4545",
		Features: []string{"pizza", "massas", "pratos tradicionais italianos"},
	},
	{
		ID: "12", Name: "SantOrégano Pizzas e Massas",
		Latitude: -9.5578740, Longitude: -35.6405682,
		Rating: 4.6, CuisineType: "Pizzaria",
		Address:  "Rodovia AL-101 - Riacho Doce, Maceió-AL",
		Features: []string{"pizza premiada (7ª do Brasil)", "saborosas opções veganas"},
	},
	{
		ID: "13", Name: "Kanoa Beach Bar",
		Latitude: -9.66390, Longitude: -35.70578,
		Rating: 4.3, CuisineType: "Praia / Petiscos / Bar",
		Address:  "Orla de Ponta Verde - Av. Silvio Carlos Viana, 25 - Ponta Verde, Maceió - AL",
		Features: []string{"à beira-mar", "petiscos", "música ao vivo", "aluguel de cadeiras"},
	},
	{
		ID: "14", Name: "Imperador dos Camarões",
		Latitude: -9.665197, Longitude: -35.7099857,
		Rating: 4.7, CuisineType: "Frutos do mar",
		Address:  "Av. Dr. Antônio Gouveia, 21 - Pajuçara, Maceió - AL, 57030-170",
		Features: []string{"chiclete de camarão", "variedade de frutos do mar", "custo-benefício"},
	},
	{
		ID: "15", Name: "Picuí",
		Latitude: -9.6699992, Longitude: -35.7298696,
		Rating: 4.6, CuisineType: "Carne de sol / Frutos do mar",
		Address:  "Av. da Paz, 1140 - Jaraguá, Maceió-AL",
		Features: []string{"carne de sol", "frutos do mar", "chef renomado", "risoto"},
	},
}
