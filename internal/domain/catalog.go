package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryAcai       Category = "acai"
	CategoryComplement Category = "complemento"
	CategoryBeverage   Category = "bebida"
)

// SizeVariant is one purchasable portion of a product with its own price.
type SizeVariant struct {
	Label  string          `json:"size"`
	Price  decimal.Decimal `json:"price"`
	Volume string          `json:"ml"`
}

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Sizes       []SizeVariant `json:"sizes"`
	Image       string        `json:"image"`
	Category    Category      `json:"category"`
}

// Size resolves a size label against the product's variants.
func (p Product) Size(label string) (SizeVariant, bool) {
	for _, s := range p.Sizes {
		if s.Label == label {
			return s, true
		}
	}
	return SizeVariant{}, false
}

// AddOn is an optional extra charged on top of the base size price.
// The storefront calls these "complementos".
type AddOn struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is the read-only product set a session prices against. It is
// loaded once per request path and never mutated by pricing or cart code.
type Catalog struct {
	Products []Product `json:"products"`
	AddOns   []AddOn   `json:"addons"`
}

func (c Catalog) Product(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c Catalog) AddOn(id string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// AddOnNames resolves add-on IDs to display names. IDs that are no longer
// in the catalog are skipped, matching the permissive pricing policy.
func (c Catalog) AddOnNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if addOn, ok := c.AddOn(id); ok {
			names = append(names, addOn.Name)
		}
	}
	return names
}

func (c Catalog) Empty() bool {
	return len(c.Products) == 0 && len(c.AddOns) == 0
}
