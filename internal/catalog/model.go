// Package catalog loads a tenant's menu from its spreadsheet: products,
// add-ons, coupons and the storefront customizations tab.
package catalog

import (
	"strconv"
	"strings"

	"github.com/ruachlabs/telafome-backend/internal/pricing"
	"github.com/ruachlabs/telafome-backend/pkg/money"
	"github.com/ruachlabs/telafome-backend/pkg/sheets"
)

// Spreadsheet tab names, fixed by the sheet template merchants copy.
const (
	TabProducts       = "Produtos"
	TabAddOns         = "Acompanhamentos"
	TabCoupons        = "Cupons"
	TabCustomizations = "Customizações"
)

const activeStatus = "Ativo"

// GroupSpec describes one add-on group attached to a product and how
// many choices it allows.
type GroupSpec struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// Product is a menu entry. The pricing fields feed the cart engine
// unchanged; the rest is presentation and option-group wiring.
type Product struct {
	pricing.Product
	Active      bool        `json:"active"`
	ImageURL    string      `json:"imageUrl"`
	AddOnGroups []GroupSpec `json:"addOnGroups,omitempty"`
}

// AddOn is a selectable extra belonging to a named group.
type AddOn struct {
	pricing.AddOn
	Active   bool   `json:"active"`
	ImageURL string `json:"imageUrl"`
}

// Customizations holds the free-form settings tab: store name, colors,
// banner URLs, operating days and hours, delivery fee, PIX key and the
// WhatsApp number orders are forwarded to.
type Customizations map[string]string

// Well-known customization keys the backend itself consumes. Everything
// else is passed through to the storefront untouched.
const (
	KeyStoreName   = "Nome"
	KeyDays        = "Dias da Semana"
	KeyHours       = "Horário Funcionamento"
	KeyDeliveryFee = "Taxa Entrega"
	KeyPixCode     = "Código PIX"
	KeyWhatsApp    = "Whatsapp"
	KeyLogoURL     = "URL Logo"
	KeyInstagram   = "Instagram"
	KeyLocation    = "Localização"
)

// Get returns the value for key, or "" when unset.
func (c Customizations) Get(key string) string {
	return c[key]
}

// DeliveryFee parses the configured fee, zero when absent or invalid.
func (c Customizations) DeliveryFee() money.Amount {
	return money.Parse(c[KeyDeliveryFee])
}

func productFromRecord(rec sheets.Record) Product {
	return Product{
		Product: pricing.Product{
			ID:          rec.Get("ID"),
			Name:        rec.Get("Nome"),
			Description: rec.Get("Descrição"),
			Category:    rec.Get("Categoria"),
			Price:       money.Parse(rec.Get("Preço")),
			Discount:    money.Parse(rec.Get("Desconto")),
			PreOrder:    rec.Get("Encomenda") == "Sim",
		},
		Active:      rec.Get("Situação") == activeStatus,
		ImageURL:    rec.Get("URL Imagem"),
		AddOnGroups: parseGroupSpecs(rec.Get(TabAddOns), rec.Get("min"), rec.Get("max")),
	}
}

// parseGroupSpecs reads the parallel comma-separated columns describing
// add-on groups. A missing min reads as 0 and a missing max as 1.
func parseGroupSpecs(names, mins, maxes string) []GroupSpec {
	if strings.TrimSpace(names) == "" {
		return nil
	}

	nameList := splitTrim(names)
	minList := splitTrim(mins)
	maxList := splitTrim(maxes)

	specs := make([]GroupSpec, 0, len(nameList))
	for i, name := range nameList {
		if name == "" {
			continue
		}
		spec := GroupSpec{Name: name, Min: 0, Max: 1}
		if i < len(minList) {
			if n, err := strconv.Atoi(minList[i]); err == nil {
				spec.Min = n
			}
		}
		if i < len(maxList) {
			if n, err := strconv.Atoi(maxList[i]); err == nil && n > 0 {
				spec.Max = n
			}
		}
		specs = append(specs, spec)
	}
	return specs
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func addOnFromRecord(rec sheets.Record) AddOn {
	return AddOn{
		AddOn: pricing.AddOn{
			ID:    rec.Get("ID"),
			Group: rec.Get("Grupo"),
			Name:  rec.Get("Nome"),
			Price: money.Parse(rec.Get("Preço")),
		},
		Active:   rec.Get("Situação") == activeStatus,
		ImageURL: rec.Get("URL Imagem"),
	}
}

func couponFromRecord(rec sheets.Record) pricing.Coupon {
	return pricing.Coupon{
		Code:  rec.Get("Código"),
		Value: money.Parse(rec.Get("Valor")),
		Kind:  couponKind(rec.Get("Tipo")),
	}
}

// couponKind maps the optional "Tipo" column. Without it the engine
// falls back to inferring the kind from the value's magnitude.
func couponKind(raw string) pricing.CouponKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "percentual", "porcentagem", "percentage":
		return pricing.CouponKindPercentage
	case "fixo", "valor", "flat":
		return pricing.CouponKindFlat
	default:
		return pricing.CouponKindAuto
	}
}
