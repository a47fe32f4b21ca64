package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero", amount: "0", expected: "R$ 0,00"},
		{name: "cents only", amount: "0.5", expected: "R$ 0,50"},
		{name: "no grouping under a thousand", amount: "999.99", expected: "R$ 999,99"},
		{name: "thousands grouping", amount: "1234.56", expected: "R$ 1.234,56"},
		{name: "millions grouping", amount: "1234567.89", expected: "R$ 1.234.567,89"},
		{name: "negative amount", amount: "-1234.56", expected: "-R$ 1.234,56"},
		{name: "rounds to two decimals", amount: "10.005", expected: "R$ 10,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
