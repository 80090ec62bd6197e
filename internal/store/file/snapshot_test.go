package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSnapshotRoundTrip(t *testing.T) {
	store, err := NewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	items := []domain.LineItem{
		{
			ID:          "item-1",
			ProductID:   "1",
			Name:        "Açaí Tradicional (M)",
			Size:        "M",
			UnitPrice:   decimal.RequireFromString("12.00"),
			Quantity:    2,
			AddOnIDs:    []string{"granola"},
			AddOnsPrice: decimal.RequireFromString("2.00"),
		},
	}

	require.NoError(t, store.SaveCart("session-a", items))

	loaded, err := store.LoadCart("session-a")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "item-1", loaded[0].ID)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.True(t, loaded[0].UnitPrice.Equal(decimal.RequireFromString("12.00")))
}

func TestLoadCartMissing(t *testing.T) {
	store, err := NewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	items, err := store.LoadCart("never-saved")
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestLoadCartCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSnapshotStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart-bad.json"), []byte("{not json"), 0o644))

	_, err = store.LoadCart("bad")
	assert.Error(t, err)
}

func TestDeleteCartIdempotent(t *testing.T) {
	store, err := NewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveCart("s", []domain.LineItem{{ID: "x", Quantity: 1}}))
	require.NoError(t, store.DeleteCart("s"))
	require.NoError(t, store.DeleteCart("s"))

	items, err := store.LoadCart("s")
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCustomerSnapshotRoundTrip(t *testing.T) {
	store, err := NewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	profile := domain.CustomerProfile{
		Name:         "Maria Silva",
		Phone:        "11987654321",
		Address:      "Rua das Flores, 123",
		Neighborhood: "Centro",
	}

	require.NoError(t, store.SaveCustomer("session-a", profile))

	loaded, err := store.LoadCustomer("session-a")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Maria Silva", loaded.Name)
	assert.Equal(t, "11987654321", loaded.Phone)

	missing, err := store.LoadCustomer("other")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
