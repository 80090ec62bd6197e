// Package pricing derives line-item charges and cart totals. Everything
// here is a pure function over decimal money values; callers snapshot the
// results into cart entries so later catalog changes never reprice them.
package pricing

import (
	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
)

// AddOnSubtotal sums the catalog prices of the chosen add-ons. IDs that are
// missing from the catalog contribute zero: the shop may deactivate an
// add-on after it was referenced, and that must not break pricing.
func AddOnSubtotal(addOnIDs []string, catalog domain.Catalog) decimal.Decimal {
	subtotal := decimal.Zero
	for _, id := range addOnIDs {
		if addOn, ok := catalog.AddOn(id); ok {
			subtotal = subtotal.Add(addOn.Price)
		}
	}
	return subtotal
}

// UnitCharge is the per-unit price of one size plus its chosen add-ons.
func UnitCharge(size domain.SizeVariant, addOnIDs []string, catalog domain.Catalog) decimal.Decimal {
	return size.Price.Add(AddOnSubtotal(addOnIDs, catalog))
}

// LineTotal is (unit price + add-on subtotal) * quantity. The cart enforces
// quantity >= 1 before the item ever reaches here.
func LineTotal(item domain.LineItem) decimal.Decimal {
	return item.UnitPrice.Add(item.AddOnsPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// CartTotal folds LineTotal over all items; an empty cart totals zero.
func CartTotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}
