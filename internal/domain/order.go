package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions holds the only legal edges of the fulfillment lifecycle.
// delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusPreparing},
	StatusPreparing:  {StatusDelivering},
	StatusDelivering: {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// ParseOrderStatus rejects anything outside the closed status set. A stored
// status that does not parse is corrupt data, never a cosmetic default.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Label returns the dashboard display label. The map is total over the
// status set; Parse guards against anything else reaching here.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusConfirmed:
		return "Confirmado"
	case StatusPreparing:
		return "Preparando"
	case StatusDelivering:
		return "Entregando"
	case StatusDelivered:
		return "Entregue"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// OrderLine is the immutable post-submission record of a cart line item.
type OrderLine struct {
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	AddOnIDs    []string        `json:"complements"`
	AddOnsPrice decimal.Decimal `json:"complements_price"`
}

func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Add(l.AddOnsPrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewOrderLines freezes cart items into order lines at submission time.
func NewOrderLines(items []LineItem) []OrderLine {
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{
			ProductName: item.Name,
			Size:        item.Size,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			AddOnIDs:    append([]string(nil), item.AddOnIDs...),
			AddOnsPrice: item.AddOnsPrice,
		})
	}
	return lines
}

type Order struct {
	ID            primitive.ObjectID `json:"id"`
	CustomerID    primitive.ObjectID `json:"customer_id"`
	Customer      *CustomerProfile   `json:"customer,omitempty"`
	Lines         []OrderLine        `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	Status        OrderStatus        `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ShortID is the 8-char order reference shown to customers and staff.
func (o Order) ShortID() string {
	hex := o.ID.Hex()
	if len(hex) < 8 {
		return hex
	}
	return hex[:8]
}
