// Package valueobject defines immutable domain values shared across use cases.
package valueobject

import "github.com/shopspring/decimal"

// InstallmentsMax is the highest installment count a purchase may be split into.
const InstallmentsMax = 48

// SplitInstallments divides a purchase total into count monthly shares.
// Each share is the total divided by count rounded to 2 decimal places;
// the rounding remainder is assigned to the last installment so the shares
// always sum exactly to the total. Returns nil for count < 1.
func SplitInstallments(total decimal.Decimal, count int) []decimal.Decimal {
	if count < 1 {
		return nil
	}

	n := decimal.NewFromInt(int64(count))
	per := total.DivRound(n, 2)

	shares := make([]decimal.Decimal, count)
	for i := range shares {
		shares[i] = per
	}

	remainder := total.Sub(per.Mul(n))
	shares[count-1] = per.Add(remainder)

	return shares
}
