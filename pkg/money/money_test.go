package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R$ 12,50", "12.5"},
		{"R$12,50", "12.5"},
		{"12,50", "12.5"},
		{"12.50", "12.5"},
		{"R$ 1.234,56", "1234.56"},
		{"0,5", "0.5"},
		{"10", "10"},
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"R$", "0"},
		{"R$ -3,00", "-3"},
	}

	for _, tt := range tests {
		got := Parse(tt.in)
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Fatalf("Parse(%q) = %s, want %s", tt.in, got, want)
		}
	}
}

func TestParseNeverFails(t *testing.T) {
	for _, in := range []string{"R$ ,,", "1,2,3", "--", "R$ 1.2.3,4"} {
		_ = Parse(in) // must not panic; value is zero or finite
	}
}

func TestFormat(t *testing.T) {
	if got := Format(decimal.NewFromFloat(12.5)); got != "R$ 12,50" {
		t.Fatalf("unexpected format %q", got)
	}
	if got := Format(decimal.Zero); got != "R$ 0,00" {
		t.Fatalf("unexpected format %q", got)
	}
}
