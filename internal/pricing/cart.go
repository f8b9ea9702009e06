// Package pricing implements the cart and coupon arithmetic for a storefront
// session. Everything in here is pure: no clock, no I/O, no shared state.
package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ruachlabs/telafome-backend/pkg/money"
)

// Product carries the unit economics a line item is priced from.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       money.Amount `json:"price"`
	Discount    money.Amount `json:"discount"`
	PreOrder    bool         `json:"preOrder"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
}

// AddOn is one selectable option inside a product's add-on group.
type AddOn struct {
	ID    string       `json:"id"`
	Group string       `json:"group"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

// OptionSelection pairs an add-on with how many of it the customer picked.
type OptionSelection struct {
	AddOn    AddOn `json:"addOn"`
	Quantity int   `json:"quantity"`
}

// LineItem is one distinct product+options configuration in the cart.
type LineItem struct {
	Key          string            `json:"key"`
	Product      Product           `json:"product"`
	Options      []OptionSelection `json:"options,omitempty"`
	MainQuantity int               `json:"mainQuantity"`
	Total        money.Amount      `json:"total"`
}

// Cart holds the line items in insertion order plus at most one coupon.
type Cart struct {
	items  []LineItem
	coupon *Coupon
}

func NewCart() *Cart {
	return &Cart{}
}

// UnitPrice is the per-unit price of a configuration: base price minus the
// product discount plus every selected option at its own price and quantity.
func UnitPrice(p Product, options []OptionSelection) money.Amount {
	unit := p.Price.Sub(p.Discount)
	for _, opt := range options {
		unit = unit.Add(opt.AddOn.Price.Mul(decimal.NewFromInt(int64(opt.Quantity))))
	}
	return unit
}

// LineKey builds the de-duplication key for a configuration. Option order is
// irrelevant: the same options picked in a different order yield the same key.
func LineKey(productID string, options []OptionSelection) string {
	if len(options) == 0 {
		return productID
	}
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, fmt.Sprintf("%s:%d", opt.AddOn.ID, opt.Quantity))
	}
	sort.Strings(parts)
	return productID + "|" + strings.Join(parts, ";")
}

// AddItem merges the configuration into an existing line item when one with
// the same key exists, otherwise appends a new one. Quantities are taken as
// given; validating them is the caller's concern.
func (c *Cart) AddItem(p Product, options []OptionSelection, mainQuantity int) LineItem {
	key := LineKey(p.ID, options)
	for i := range c.items {
		if c.items[i].Key == key {
			c.items[i].MainQuantity += mainQuantity
			c.items[i].Total = lineTotal(c.items[i].Product, c.items[i].Options, c.items[i].MainQuantity)
			return c.items[i]
		}
	}

	item := LineItem{
		Key:          key,
		Product:      p,
		Options:      append([]OptionSelection(nil), options...),
		MainQuantity: mainQuantity,
		Total:        lineTotal(p, options, mainQuantity),
	}
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity sets a line item's main quantity, removing it when the new
// quantity is zero or below. The total is always rederived from the unit
// economics, never from the previous total.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	for i := range c.items {
		if c.items[i].Key != key {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
		c.items[i].MainQuantity = quantity
		c.items[i].Total = lineTotal(c.items[i].Product, c.items[i].Options, quantity)
		return
	}
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	return c.items
}

// Subtotal sums every line item's total.
func (c *Cart) Subtotal() money.Amount {
	sum := money.Zero
	for _, item := range c.items {
		sum = sum.Add(item.Total)
	}
	return sum
}

// TotalItemCount sums the main quantities across line items.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.MainQuantity
	}
	return count
}

// Discount computes the active coupon's effect on the current subtotal. It is
// zero without a coupon or with an empty cart, and never exceeds the subtotal.
func (c *Cart) Discount() money.Amount {
	if c.coupon == nil {
		return money.Zero
	}
	return c.coupon.DiscountOn(c.Subtotal())
}

// Total is subtotal minus discount; by construction it is never negative.
func (c *Cart) Total() money.Amount {
	return c.Subtotal().Sub(c.Discount())
}

func lineTotal(p Product, options []OptionSelection, mainQuantity int) money.Amount {
	return UnitPrice(p, options).Mul(decimal.NewFromInt(int64(mainQuantity)))
}
