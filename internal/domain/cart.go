package domain

import "github.com/shopspring/decimal"

// LineItem is one cart entry: a product+size configuration with a chosen
// add-on set at a given quantity. Unit price and add-on subtotal are
// snapshotted when the item is added; later catalog changes never touch them.
type LineItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Size        string          `json:"size"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	AddOnIDs    []string        `json:"complements"`
	AddOnsPrice decimal.Decimal `json:"complements_price"`
}
