package pricing

import (
	"testing"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Products: []domain.Product{
			{
				ID:   "classic",
				Name: "Classic",
				Sizes: []domain.SizeVariant{
					{Label: "P", Price: dec("8.00"), Volume: "300ml"},
					{Label: "M", Price: dec("12.00"), Volume: "500ml"},
				},
				Category: domain.CategoryAcai,
			},
		},
		AddOns: []domain.AddOn{
			{ID: "granola", Name: "Granola", Price: dec("2.00")},
			{ID: "banana", Name: "Banana", Price: dec("1.50")},
		},
	}
}

func TestUnitCharge(t *testing.T) {
	catalog := testCatalog()
	size, ok := catalog.Products[0].Size("M")
	require.True(t, ok)

	charge := UnitCharge(size, []string{"granola", "banana"}, catalog)
	assert.True(t, charge.Equal(dec("15.50")), "got %s", charge)
}

func TestUnitChargeIgnoresUnknownAddOns(t *testing.T) {
	catalog := testCatalog()
	size, _ := catalog.Products[0].Size("M")

	charge := UnitCharge(size, []string{"granola", "deactivated-topping"}, catalog)
	assert.True(t, charge.Equal(dec("14.00")), "got %s", charge)
}

func TestUnitChargeNoAddOns(t *testing.T) {
	catalog := testCatalog()
	size, _ := catalog.Products[0].Size("P")

	charge := UnitCharge(size, nil, catalog)
	assert.True(t, charge.Equal(dec("8.00")), "got %s", charge)
}

func TestLineTotal(t *testing.T) {
	item := domain.LineItem{
		UnitPrice:   dec("12.00"),
		AddOnsPrice: dec("3.50"),
		Quantity:    2,
	}

	assert.True(t, LineTotal(item).Equal(dec("31.00")), "got %s", LineTotal(item))
}

func TestCartTotal(t *testing.T) {
	items := []domain.LineItem{
		{UnitPrice: dec("12.00"), AddOnsPrice: dec("3.50"), Quantity: 2},
		{UnitPrice: dec("8.00"), AddOnsPrice: dec("0"), Quantity: 1},
	}

	assert.True(t, CartTotal(items).Equal(dec("39.00")), "got %s", CartTotal(items))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.True(t, CartTotal(nil).IsZero())
}

func TestCartTotalNoPennyDrift(t *testing.T) {
	// 0.10 added 100 times must be exactly 10.00
	items := make([]domain.LineItem, 100)
	for i := range items {
		items[i] = domain.LineItem{UnitPrice: dec("0.10"), AddOnsPrice: decimal.Zero, Quantity: 1}
	}

	assert.True(t, CartTotal(items).Equal(dec("10.00")), "got %s", CartTotal(items))
}
