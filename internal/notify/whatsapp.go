// Package notify builds the human-readable order summary that gets handed
// to the WhatsApp deep link. Formatting is pure; delivery happens outside.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatOrderMessage renders the itemized WhatsApp summary for a finalized
// order. Add-on names are resolved against the catalog; IDs that no longer
// resolve are dropped from the text.
func FormatOrderMessage(order domain.Order, customer domain.CustomerProfile, catalog domain.Catalog) string {
	var b strings.Builder

	b.WriteString("🍇 *PEDIDO DE AÇAÍ* 🍇\n\n")
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", customer.Name)
	fmt.Fprintf(&b, "📱 *Telefone:* %s\n", customer.Phone)
	fmt.Fprintf(&b, "📍 *Endereço:* %s\n", customer.Address)
	fmt.Fprintf(&b, "🏘️ *Bairro:* %s\n", customer.Neighborhood)
	if customer.Reference != "" {
		fmt.Fprintf(&b, "📌 *Referência:* %s\n", customer.Reference)
	}
	fmt.Fprintf(&b, "💳 *Pagamento:* %s\n\n", order.PaymentMethod)

	b.WriteString("🛒 *ITENS DO PEDIDO:*\n")
	for i, line := range order.Lines {
		fmt.Fprintf(&b, "%d. %s - %dx\n", i+1, line.ProductName, line.Quantity)
		if names := catalog.AddOnNames(line.AddOnIDs); len(names) > 0 {
			fmt.Fprintf(&b, "   Complementos: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintf(&b, "   Valor: %s\n\n", formatCurrency(line.Total()))
	}

	fmt.Fprintf(&b, "💰 *TOTAL: %s*\n\n", formatCurrency(order.Total))

	if order.Notes != "" {
		fmt.Fprintf(&b, "📝 *Observações:* %s\n\n", order.Notes)
	}

	fmt.Fprintf(&b, "⏰ Pedido realizado em: %s", order.CreatedAt.Format("02/01/2006 15:04:05"))

	return b.String()
}

// DeepLink builds the wa.me URL that opens the chat with the message
// prefilled.
func DeepLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

func formatCurrency(value decimal.Decimal) string {
	return "R$ " + value.StringFixed(2)
}
