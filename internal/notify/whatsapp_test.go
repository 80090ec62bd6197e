package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleOrder() (domain.Order, domain.CustomerProfile, domain.Catalog) {
	catalog := domain.Catalog{
		AddOns: []domain.AddOn{
			{ID: "granola", Name: "Granola Crocante", Price: dec("2.00")},
			{ID: "banana", Name: "Banana Fresca", Price: dec("1.50")},
		},
	}

	customer := domain.CustomerProfile{
		Name:         "Maria Silva",
		Phone:        "11987654321",
		Address:      "Rua das Flores, 123",
		Neighborhood: "Centro",
		Reference:    "Portão azul",
	}

	order := domain.Order{
		Lines: []domain.OrderLine{
			{
				ProductName: "Açaí Tradicional (M)",
				Size:        "M",
				UnitPrice:   dec("12.00"),
				Quantity:    2,
				AddOnIDs:    []string{"granola", "banana"},
				AddOnsPrice: dec("3.50"),
			},
		},
		Total:         dec("31.00"),
		PaymentMethod: "Pix",
		Notes:         "Sem açúcar",
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2024, 6, 15, 19, 30, 0, 0, time.UTC),
	}

	return order, customer, catalog
}

func TestFormatOrderMessage(t *testing.T) {
	order, customer, catalog := sampleOrder()

	msg := FormatOrderMessage(order, customer, catalog)

	assert.Contains(t, msg, "🍇 *PEDIDO DE AÇAÍ* 🍇")
	assert.Contains(t, msg, "*Cliente:* Maria Silva")
	assert.Contains(t, msg, "*Telefone:* 11987654321")
	assert.Contains(t, msg, "*Bairro:* Centro")
	assert.Contains(t, msg, "*Referência:* Portão azul")
	assert.Contains(t, msg, "*Pagamento:* Pix")
	assert.Contains(t, msg, "1. Açaí Tradicional (M) - 2x")
	assert.Contains(t, msg, "Complementos: Granola Crocante, Banana Fresca")
	assert.Contains(t, msg, "Valor: R$ 31.00")
	assert.Contains(t, msg, "*TOTAL: R$ 31.00*")
	assert.Contains(t, msg, "*Observações:* Sem açúcar")
	assert.Contains(t, msg, "Pedido realizado em: 15/06/2024 19:30:00")
}

func TestFormatOrderMessageOptionalLines(t *testing.T) {
	order, customer, catalog := sampleOrder()
	customer.Reference = ""
	order.Notes = ""
	order.Lines[0].AddOnIDs = nil

	msg := FormatOrderMessage(order, customer, catalog)

	assert.NotContains(t, msg, "Referência")
	assert.NotContains(t, msg, "Observações")
	assert.NotContains(t, msg, "Complementos")
}

func TestFormatOrderMessageSkipsUnknownAddOns(t *testing.T) {
	order, customer, catalog := sampleOrder()
	order.Lines[0].AddOnIDs = []string{"granola", "descontinuado"}

	msg := FormatOrderMessage(order, customer, catalog)

	assert.Contains(t, msg, "Complementos: Granola Crocante\n")
	assert.NotContains(t, msg, "descontinuado")
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("5511999999999", "pedido número 1")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "pedido")
}
