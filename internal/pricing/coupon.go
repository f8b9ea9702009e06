package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ruachlabs/telafome-backend/pkg/money"
)

// CouponKind tells how a coupon's value is applied.
type CouponKind string

const (
	// CouponKindAuto infers the kind from the value's magnitude: a value
	// strictly between 0 and 1 is a fractional rate, anything else a flat
	// amount. This mirrors how the spreadsheet encodes coupons when no
	// explicit type column is present, ambiguity included: a flat R$0.50
	// coupon cannot be told apart from a 50% one.
	CouponKindAuto       CouponKind = ""
	CouponKindPercentage CouponKind = "percentage"
	CouponKindFlat       CouponKind = "flat"
)

// Coupon is a discount code. Code matching is exact and case-sensitive.
type Coupon struct {
	Code  string
	Value money.Amount
	Kind  CouponKind
}

var one = decimal.NewFromInt(1)

func (c Coupon) effectiveKind() CouponKind {
	if c.Kind != CouponKindAuto {
		return c.Kind
	}
	if c.Value.GreaterThan(decimal.Zero) && c.Value.LessThan(one) {
		return CouponKindPercentage
	}
	return CouponKindFlat
}

// DiscountOn computes the discount this coupon grants on a subtotal. The
// result is clamped to [0, subtotal] so the cart total never goes negative.
func (c Coupon) DiscountOn(subtotal money.Amount) money.Amount {
	if subtotal.LessThanOrEqual(decimal.Zero) || !c.Value.IsPositive() {
		return money.Zero
	}

	var discount money.Amount
	switch c.effectiveKind() {
	case CouponKindPercentage:
		discount = subtotal.Mul(c.Value)
	default:
		discount = c.Value
	}

	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

// ApplyCoupon looks the code up by exact match. A hit sets the coupon and
// reports true; a miss clears any active coupon and reports false. Either
// way the cart's derived totals pick the change up on the next read.
func (c *Cart) ApplyCoupon(code string, available []Coupon) bool {
	for _, candidate := range available {
		if candidate.Code == code {
			coupon := candidate
			c.coupon = &coupon
			return true
		}
	}
	c.coupon = nil
	return false
}

// Coupon returns the active coupon, or nil.
func (c *Cart) Coupon() *Coupon {
	return c.coupon
}
