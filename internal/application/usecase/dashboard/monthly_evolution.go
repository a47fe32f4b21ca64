// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// MaxEvolutionMonths caps the evolution window.
const MaxEvolutionMonths = 24

// MonthlyEvolutionInput represents the input for the monthly evolution.
// Months counts how many buckets to include, ending at ReferenceMonth.
type MonthlyEvolutionInput struct {
	UserID         uuid.UUID
	ReferenceMonth string
	Months         int
}

// MonthPoint is one point of the evolution series.
type MonthPoint struct {
	ReferenceMonth string
	IncomeTotal    decimal.Decimal
	ExpenseTotal   decimal.Decimal
	Balance        decimal.Decimal
}

// MonthlyEvolutionOutput represents the output of the monthly evolution,
// oldest month first.
type MonthlyEvolutionOutput struct {
	Points []MonthPoint
}

// MonthlyEvolutionUseCase computes income and expense totals for a trailing
// window of months, for the dashboard's evolution chart. Months with no
// entries appear as zero points so the series has no gaps.
type MonthlyEvolutionUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewMonthlyEvolutionUseCase creates a new MonthlyEvolutionUseCase instance.
func NewMonthlyEvolutionUseCase(ledgerRepo adapter.LedgerRepository) *MonthlyEvolutionUseCase {
	return &MonthlyEvolutionUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the monthly evolution aggregation.
func (uc *MonthlyEvolutionUseCase) Execute(ctx context.Context, input MonthlyEvolutionInput) (*MonthlyEvolutionOutput, error) {
	if !valueobject.ValidBucket(input.ReferenceMonth) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must be in YYYY-MM format",
			nil,
		)
	}

	months := input.Months
	if months < 1 {
		months = 6
	}
	if months > MaxEvolutionMonths {
		months = MaxEvolutionMonths
	}

	points := make([]MonthPoint, months)
	for i := 0; i < months; i++ {
		// i=0 is the oldest month of the window, i=months-1 is ReferenceMonth.
		bucket, err := valueobject.ShiftBucket(input.ReferenceMonth, i-(months-1))
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidReferenceMonth,
				"failed to derive evolution window",
				err,
			)
		}

		entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerFilter{
			UserID:         input.UserID,
			ReferenceMonth: bucket,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load entries for %s: %w", bucket, err)
		}

		point := MonthPoint{
			ReferenceMonth: bucket,
			IncomeTotal:    decimal.Zero,
			ExpenseTotal:   decimal.Zero,
		}
		for _, entry := range entries {
			if entry.Kind == entity.EntryKindIncome {
				point.IncomeTotal = point.IncomeTotal.Add(entry.Amount)
			} else {
				point.ExpenseTotal = point.ExpenseTotal.Add(entry.Amount)
			}
		}
		point.Balance = point.IncomeTotal.Sub(point.ExpenseTotal)
		points[i] = point
	}

	return &MonthlyEvolutionOutput{Points: points}, nil
}
