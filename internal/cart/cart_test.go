package cart

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

func TestAddSnapshotsPrices(t *testing.T) {
	catalog := testCatalog()
	c := New()

	item, err := c.Add(catalog.Products[0], "M", []string{"granola", "banana"}, catalog)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Classic (M)", item.Name)
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(dec("12.00")))
	assert.True(t, item.AddOnsPrice.Equal(dec("3.50")))
}

func TestAddInvalidSize(t *testing.T) {
	catalog := testCatalog()
	c := New()

	_, err := c.Add(catalog.Products[0], "XL", nil, catalog)
	require.ErrorIs(t, err, domain.ErrInvalidSize)
	assert.True(t, c.Empty())
}

func TestAddNeverMerges(t *testing.T) {
	catalog := testCatalog()
	c := New()

	first, err := c.Add(catalog.Products[0], "M", []string{"granola"}, catalog)
	require.NoError(t, err)
	second, err := c.Add(catalog.Products[0], "M", []string{"granola"}, catalog)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.ItemCount())
}

func TestAddDeduplicatesAddOns(t *testing.T) {
	catalog := testCatalog()
	c := New()

	item, err := c.Add(catalog.Products[0], "M", []string{"granola", "granola"}, catalog)
	require.NoError(t, err)

	assert.Equal(t, []string{"granola"}, item.AddOnIDs)
	assert.True(t, item.AddOnsPrice.Equal(dec("2.00")))
}

func TestPriceSnapshotImmuneToCatalogChanges(t *testing.T) {
	catalog := testCatalog()
	c := New()

	item, err := c.Add(catalog.Products[0], "M", nil, catalog)
	require.NoError(t, err)

	// reprice the catalog after the fact
	catalog.Products[0].Sizes[1].Price = dec("20.00")

	assert.True(t, item.UnitPrice.Equal(dec("12.00")))
	assert.True(t, c.Total().Equal(dec("12.00")))
}

func TestSetQuantity(t *testing.T) {
	catalog := testCatalog()
	c := New()

	item, err := c.Add(catalog.Products[0], "M", []string{"granola", "banana"}, catalog)
	require.NoError(t, err)

	require.NoError(t, c.SetQuantity(item.ID, 2))

	assert.Equal(t, 2, c.ItemCount())
	assert.True(t, c.Total().Equal(dec("31.00")), "got %s", c.Total())
	// price snapshots stay untouched
	assert.True(t, c.Items()[0].UnitPrice.Equal(dec("12.00")))
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	catalog := testCatalog()
	c := New()

	item, err := c.Add(catalog.Products[0], "P", nil, catalog)
	require.NoError(t, err)

	require.NoError(t, c.SetQuantity(item.ID, 0))
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.ItemCount())

	// removing twice is a no-op, not an error
	require.NoError(t, c.SetQuantity(item.ID, 0))
	require.NoError(t, c.SetQuantity(item.ID, 3))
	assert.True(t, c.Empty())
}

func TestSetQuantityNegative(t *testing.T) {
	catalog := testCatalog()
	c := New()

	item, err := c.Add(catalog.Products[0], "P", nil, catalog)
	require.NoError(t, err)

	err = c.SetQuantity(item.ID, -1)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 1, c.ItemCount())
}

func TestAddIncreasesCountAndTotal(t *testing.T) {
	catalog := testCatalog()
	c := New()

	before := c.Total()
	item, err := c.Add(catalog.Products[0], "M", []string{"banana"}, catalog)
	require.NoError(t, err)

	assert.Equal(t, 1, c.ItemCount())
	assert.True(t, c.Total().Sub(before).Equal(item.UnitPrice.Add(item.AddOnsPrice)))
}

func TestRestoreKeepsOrder(t *testing.T) {
	catalog := testCatalog()
	c := New()

	first, _ := c.Add(catalog.Products[0], "P", nil, catalog)
	second, _ := c.Add(catalog.Products[0], "M", nil, catalog)

	restored := Restore(c.Items())
	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestClear(t *testing.T) {
	catalog := testCatalog()
	c := New()

	_, err := c.Add(catalog.Products[0], "P", nil, catalog)
	require.NoError(t, err)

	c.Clear()
	assert.True(t, c.Empty())
	assert.True(t, c.Total().IsZero())
}
