// Package orders turns a submitted cart into a spreadsheet row and a
// WhatsApp handoff link. Totals are always recomputed server-side from
// the tenant's catalog; client-sent prices are ignored.
package orders

import (
	"github.com/ruachlabs/telafome-backend/pkg/money"
)

// Delivery types accepted from the storefront.
const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
)

// Payment methods accepted from the storefront.
const (
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
	PaymentPix    = "pix"
	PaymentCash   = "cash"
)

// paymentLabels translates the wire value to the label merchants see in
// the spreadsheet and the WhatsApp message.
var paymentLabels = map[string]string{
	PaymentCredit: "Cartão de Crédito",
	PaymentDebit:  "Cartão de Débito",
	PaymentPix:    "PIX",
	PaymentCash:   "Dinheiro",
}

// PaymentLabel translates a payment method, falling back to the raw
// value for anything unrecognized.
func PaymentLabel(method string) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return method
}

// ItemOption selects an add-on by id within a submitted item.
type ItemOption struct {
	AddOnID  string `json:"addOnId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// Item is one cart line as submitted by the storefront.
type Item struct {
	ProductID    string       `json:"productId" validate:"required"`
	MainQuantity int          `json:"mainQuantity" validate:"required,min=1"`
	Options      []ItemOption `json:"options" validate:"dive"`
}

// Submission is an incoming order.
type Submission struct {
	CustomerName  string `json:"customerName" validate:"required,min=2,max=120"`
	DeliveryType  string `json:"deliveryType" validate:"required,oneof=pickup delivery"`
	Address       string `json:"address" validate:"required_if=DeliveryType delivery,max=300"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit debit pix cash"`
	Observations  string `json:"observations" validate:"max=500"`
	ScheduledSlot string `json:"scheduledSlot" validate:"max=40"`
	CouponCode    string `json:"couponCode" validate:"max=40"`
	Items         []Item `json:"items" validate:"required,min=1,dive"`
}

// Receipt is what the storefront gets back after a successful submit.
type Receipt struct {
	OrderID     string       `json:"orderId"`
	Subtotal    money.Amount `json:"subtotal"`
	Discount    money.Amount `json:"discount"`
	DeliveryFee money.Amount `json:"deliveryFee"`
	Total       money.Amount `json:"total"`
	WhatsAppURL string       `json:"whatsappUrl,omitempty"`
}
