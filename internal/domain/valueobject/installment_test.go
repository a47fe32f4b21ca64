package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitInstallments(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		count    int
		expected []string
	}{
		{
			name:     "even split",
			total:    "300.00",
			count:    3,
			expected: []string{"100", "100", "100"},
		},
		{
			name:     "single installment keeps the full amount",
			total:    "59.90",
			count:    1,
			expected: []string{"59.9"},
		},
		{
			name:     "remainder goes to the last installment",
			total:    "100.00",
			count:    3,
			expected: []string{"33.33", "33.33", "33.34"},
		},
		{
			name:     "rounded-up share compensated on the last installment",
			total:    "100.01",
			count:    6,
			expected: []string{"16.67", "16.67", "16.67", "16.67", "16.67", "16.66"},
		},
		{
			name:     "twelve installments",
			total:    "10.00",
			count:    12,
			expected: []string{"0.83", "0.83", "0.83", "0.83", "0.83", "0.83", "0.83", "0.83", "0.83", "0.83", "0.83", "0.87"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			shares := SplitInstallments(total, tt.count)

			if len(shares) != tt.count {
				t.Fatalf("expected %d shares, got %d", tt.count, len(shares))
			}

			sum := decimal.Zero
			for i, share := range shares {
				if share.String() != tt.expected[i] {
					t.Errorf("share %d: expected %s, got %s", i+1, tt.expected[i], share.String())
				}
				sum = sum.Add(share)
			}

			if !sum.Equal(total) {
				t.Errorf("shares sum to %s, expected %s", sum.String(), total.String())
			}
		})
	}
}

func TestSplitInstallmentsSumIsExact(t *testing.T) {
	// Awkward totals over every allowed count must reproduce the total exactly.
	totals := []string{"0.01", "1.00", "99.99", "123.45", "1000.01", "3333.33"}

	for _, raw := range totals {
		total := decimal.RequireFromString(raw)
		for count := 1; count <= InstallmentsMax; count++ {
			shares := SplitInstallments(total, count)

			sum := decimal.Zero
			for _, share := range shares {
				sum = sum.Add(share)
			}
			if !sum.Equal(total) {
				t.Fatalf("total %s in %d shares sums to %s", raw, count, sum.String())
			}

			// All shares except the last are identical.
			for i := 1; i < count-1; i++ {
				if !shares[i].Equal(shares[0]) {
					t.Fatalf("total %s in %d shares: share %d differs from share 1", raw, count, i+1)
				}
			}
		}
	}
}

func TestSplitInstallmentsInvalidCount(t *testing.T) {
	if shares := SplitInstallments(decimal.NewFromInt(100), 0); shares != nil {
		t.Errorf("expected nil for count 0, got %v", shares)
	}
	if shares := SplitInstallments(decimal.NewFromInt(100), -3); shares != nil {
		t.Errorf("expected nil for negative count, got %v", shares)
	}
}
