// Package cart holds the mutable per-session item collection. A cart is
// owned by exactly one session and mutated synchronously; it carries no
// locking of its own.
package cart

import (
	"fmt"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/AndersonViniciusReis/acai-app/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	items []domain.LineItem
}

func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from a snapshot, keeping insertion order.
func Restore(items []domain.LineItem) *Cart {
	return &Cart{items: append([]domain.LineItem(nil), items...)}
}

// Add resolves the size label, snapshots the unit price and add-on subtotal
// at this moment, and appends a new entry with quantity 1. Identical
// configurations never merge; every add is its own line.
func (c *Cart) Add(product domain.Product, sizeLabel string, addOnIDs []string, catalog domain.Catalog) (domain.LineItem, error) {
	size, ok := product.Size(sizeLabel)
	if !ok {
		return domain.LineItem{}, fmt.Errorf("%w: product %q has no size %q", domain.ErrInvalidSize, product.ID, sizeLabel)
	}

	// the add-on selection is a set; repeated IDs must not double-charge
	chosen := dedupe(addOnIDs)

	item := domain.LineItem{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		Name:        fmt.Sprintf("%s (%s)", product.Name, size.Label),
		Size:        size.Label,
		UnitPrice:   size.Price,
		Quantity:    1,
		AddOnIDs:    chosen,
		AddOnsPrice: pricing.AddOnSubtotal(chosen, catalog),
	}

	c.items = append(c.items, item)

	return item, nil
}

// SetQuantity replaces an item's quantity. Zero removes the item, negative
// values are rejected, and an unknown ID is a no-op so that removing twice
// never fails.
func (c *Cart) SetQuantity(itemID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	if quantity == 0 {
		filtered := c.items[:0]
		for _, item := range c.items {
			if item.ID != itemID {
				filtered = append(filtered, item)
			}
		}
		c.items = filtered
		return nil
	}

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return nil
		}
	}

	return nil
}

// Items returns the entries in insertion order.
func (c *Cart) Items() []domain.LineItem {
	return append([]domain.LineItem(nil), c.items...)
}

func (c *Cart) Total() decimal.Decimal {
	return pricing.CartTotal(c.items)
}

// ItemCount is the sum of quantities, not the number of entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear empties the cart; called only after an order was persisted.
func (c *Cart) Clear() {
	c.items = nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
