// Package money parses and formats pt-BR currency text coming out of the
// tenant spreadsheets. Parsing is total: any input either yields a finite
// amount or zero, it never fails.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal monetary value in BRL.
type Amount = decimal.Decimal

var Zero = decimal.Zero

// Parse converts spreadsheet text such as "R$ 1.234,56" into an Amount.
// The currency marker, surrounding whitespace and thousands separators are
// stripped; the decimal comma becomes a point. Unparseable input yields zero.
func Parse(value string) Amount {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "R$", ""))
	if cleaned == "" {
		return Zero
	}

	// "1.234,56" carries dots as thousands separators only when a decimal
	// comma follows; "12.50" is already machine-formatted and kept as is.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Zero
	}
	return amount
}

// Format renders the amount as display text, e.g. "R$ 12,50".
func Format(a Amount) string {
	fixed := a.StringFixed(2)
	fixed = strings.Replace(fixed, ".", ",", 1)
	return "R$ " + fixed
}
