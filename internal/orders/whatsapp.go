package orders

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ruachlabs/telafome-backend/internal/catalog"
	"github.com/ruachlabs/telafome-backend/internal/pricing"
	"github.com/ruachlabs/telafome-backend/pkg/money"
)

// BuildMessage renders the order the way the merchant receives it on
// WhatsApp, matching the storefront's message layout.
func BuildMessage(sub Submission, cart *pricing.Cart, deliveryFee, total money.Amount, cust catalog.Customizations) string {
	var lines []string
	push := func(s string) { lines = append(lines, s) }

	push("📱 *PEDIDO NA TELA DA FOME!* 😋")
	push("")
	push(fmt.Sprintf("*👤 Cliente:* %s", sub.CustomerName))
	push("")

	push("*🛒 Pedido:*")
	for _, item := range cart.Items() {
		push(fmt.Sprintf("• %dx *%s*", item.MainQuantity, item.Product.Name))
		for _, opt := range item.Options {
			push(fmt.Sprintf("   └ %dx %s", opt.Quantity, opt.AddOn.Name))
		}
	}

	if sub.ScheduledSlot != "" {
		push("")
		push(fmt.Sprintf("*🗓️ Agendado para:* %s", sub.ScheduledSlot))
	}

	if sub.Observations != "" {
		push("")
		push("*✏️ Observações:*")
		push(fmt.Sprintf("_%s_", sub.Observations))
	}

	push("")
	push("*💰 Resumo do Pagamento:*")
	push(fmt.Sprintf("Subtotal: %s", money.Format(cart.Subtotal())))
	if cart.Discount().IsPositive() {
		code := ""
		if c := cart.Coupon(); c != nil {
			code = c.Code
		}
		push(fmt.Sprintf("Desconto (%s): -%s", code, money.Format(cart.Discount())))
	}
	if sub.DeliveryType == DeliveryTypeDelivery {
		push(fmt.Sprintf("Taxa de entrega: %s", money.Format(deliveryFee)))
	}
	push(fmt.Sprintf("➡️ *Total: %s*", money.Format(total)))
	push("")

	push("*💳 Forma de Pagamento:*")
	push(PaymentLabel(sub.PaymentMethod))
	if sub.PaymentMethod == PaymentPix {
		if pixCode := cust.Get(catalog.KeyPixCode); pixCode != "" {
			push(fmt.Sprintf("*Chave PIX:* %s", pixCode))
			push("_(Por favor, envie o comprovante após o pagamento)_")
		}
	}

	push("")
	if sub.DeliveryType == DeliveryTypeDelivery {
		push("*📍 Endereço de Entrega:*")
		push(sub.Address)
	} else {
		push("*🛍️ Retirada:*")
		push("No local")
	}

	push("")
	push("✅ Pedido enviado com sucesso!")
	push("Aguarde nossa confirmação. Obrigado pela preferência! 🙏😊")

	return strings.Join(lines, "\n")
}

// WhatsAppURL builds the wa.me link that opens the chat with the
// message prefilled. Numbers are reduced to digits and get the Brazilian
// country code when missing.
func WhatsAppURL(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}
	// Local numbers are 10-11 digits (DDD + line); anything longer
	// already carries a country code.
	if len(digits) <= 11 {
		digits = "55" + digits
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
