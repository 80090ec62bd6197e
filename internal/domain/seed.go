package domain

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedCatalog is the built-in storefront catalog, served whenever the
// catalog store is empty or unreachable. An empty storefront is a valid
// degraded state, but these defaults keep the shop sellable.
func SeedCatalog() Catalog {
	return Catalog{
		Products: []Product{
			{
				ID:          "1",
				Name:        "Açaí Tradicional",
				Description: "O clássico açaí batido na hora",
				Sizes: []SizeVariant{
					{Label: "P", Price: price("8.00"), Volume: "300ml"},
					{Label: "M", Price: price("12.00"), Volume: "500ml"},
					{Label: "G", Price: price("16.00"), Volume: "700ml"},
					{Label: "GG", Price: price("22.00"), Volume: "1L"},
				},
				Category: CategoryAcai,
			},
			{
				ID:          "2",
				Name:        "Açaí Premium",
				Description: "Açaí especial com polpa selecionada",
				Sizes: []SizeVariant{
					{Label: "P", Price: price("10.00"), Volume: "300ml"},
					{Label: "M", Price: price("14.50"), Volume: "500ml"},
					{Label: "G", Price: price("19.00"), Volume: "700ml"},
					{Label: "GG", Price: price("25.00"), Volume: "1L"},
				},
				Category: CategoryAcai,
			},
			{
				ID:          "3",
				Name:        "Açaí Gourmet",
				Description: "Nossa receita especial com ingredientes premium",
				Sizes: []SizeVariant{
					{Label: "P", Price: price("12.00"), Volume: "300ml"},
					{Label: "M", Price: price("16.50"), Volume: "500ml"},
					{Label: "G", Price: price("21.00"), Volume: "700ml"},
					{Label: "GG", Price: price("28.00"), Volume: "1L"},
				},
				Category: CategoryAcai,
			},
		},
		AddOns: []AddOn{
			{ID: "granola", Name: "Granola Crocante", Price: price("2.00")},
			{ID: "banana", Name: "Banana Fresca", Price: price("1.50")},
			{ID: "morango", Name: "Morango", Price: price("2.50")},
			{ID: "leite-condensado", Name: "Leite Condensado", Price: price("1.00")},
			{ID: "leite-po", Name: "Leite em Pó", Price: price("1.00")},
			{ID: "amendoim", Name: "Amendoim", Price: price("2.00")},
			{ID: "castanha", Name: "Castanha do Pará", Price: price("3.00")},
			{ID: "coco", Name: "Coco Ralado", Price: price("1.50")},
			{ID: "nutella", Name: "Nutella", Price: price("4.00")},
			{ID: "pacoca", Name: "Paçoca", Price: price("2.50")},
			{ID: "kiwi", Name: "Kiwi", Price: price("2.00")},
			{ID: "manga", Name: "Manga", Price: price("2.00")},
		},
	}
}
