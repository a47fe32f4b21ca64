// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a decimal amount in the pt-BR currency display format
// used by the dashboard: "R$ 1.234,56". Negative amounts get a leading sign.
func FormatBRL(amount decimal.Decimal) string {
	value := amount.Round(2)

	negative := value.IsNegative()
	if negative {
		value = value.Neg()
	}

	fixed := value.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)

	return b.String()
}
