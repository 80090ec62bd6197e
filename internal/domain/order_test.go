package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "delivering", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "shipped", "PENDING", "done"} {
		_, err := ParseOrderStatus(s)
		assert.ErrorIs(t, err, ErrUnknownStatus, "input %q", s)
	}
}

func TestLegalTransitions(t *testing.T) {
	legal := []struct{ from, to OrderStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusPreparing},
		{StatusPreparing, StatusDelivering},
		{StatusDelivering, StatusDelivered},
	}

	for _, edge := range legal {
		assert.True(t, edge.from.CanTransitionTo(edge.to), "%s -> %s", edge.from, edge.to)
	}
}

func TestIllegalTransitions(t *testing.T) {
	illegal := []struct{ from, to OrderStatus }{
		{StatusPending, StatusDelivering}, // skipping stages
		{StatusPending, StatusDelivered},
		{StatusConfirmed, StatusCancelled}, // cancel only from pending
		{StatusPreparing, StatusConfirmed}, // no going back
		{StatusDelivered, StatusPending},   // terminal
		{StatusDelivered, StatusDelivering},
		{StatusCancelled, StatusConfirmed}, // terminal
		{StatusPending, StatusPending},
	}

	for _, edge := range illegal {
		assert.False(t, edge.from.CanTransitionTo(edge.to), "%s -> %s", edge.from, edge.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusDelivering.Terminal())
}

func TestStatusLabels(t *testing.T) {
	labels := map[OrderStatus]string{
		StatusPending:    "Pendente",
		StatusConfirmed:  "Confirmado",
		StatusPreparing:  "Preparando",
		StatusDelivering: "Entregando",
		StatusDelivered:  "Entregue",
		StatusCancelled:  "Cancelado",
	}

	for status, want := range labels {
		assert.Equal(t, want, status.Label())
	}
}

func TestNewOrderLinesFreezesItems(t *testing.T) {
	items := []LineItem{
		{
			ID:          "abc",
			ProductID:   "1",
			Name:        "Açaí Tradicional (M)",
			Size:        "M",
			UnitPrice:   price("12.00"),
			Quantity:    2,
			AddOnIDs:    []string{"granola"},
			AddOnsPrice: price("2.00"),
		},
	}

	lines := NewOrderLines(items)
	require.Len(t, lines, 1)
	assert.Equal(t, "Açaí Tradicional (M)", lines[0].ProductName)
	assert.True(t, lines[0].Total().Equal(price("28.00")), "got %s", lines[0].Total())

	// mutating the source slice must not reach the frozen line
	items[0].AddOnIDs[0] = "banana"
	assert.Equal(t, "granola", lines[0].AddOnIDs[0])
}
