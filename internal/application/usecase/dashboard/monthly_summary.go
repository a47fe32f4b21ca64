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

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	UserID         uuid.UUID
	ReferenceMonth string
}

// MonthlySummaryOutput holds a month's income, expense and balance totals.
type MonthlySummaryOutput struct {
	ReferenceMonth string
	IncomeTotal    decimal.Decimal
	ExpenseTotal   decimal.Decimal
	Balance        decimal.Decimal
	EntryCount     int
}

// MonthlySummaryUseCase computes a user's totals for one reference month.
type MonthlySummaryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(ledgerRepo adapter.LedgerRepository) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the monthly summary aggregation.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	if !valueobject.ValidBucket(input.ReferenceMonth) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must be in YYYY-MM format",
			nil,
		)
	}

	entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerFilter{
		UserID:         input.UserID,
		ReferenceMonth: input.ReferenceMonth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly entries: %w", err)
	}

	output := &MonthlySummaryOutput{
		ReferenceMonth: input.ReferenceMonth,
		IncomeTotal:    decimal.Zero,
		ExpenseTotal:   decimal.Zero,
		EntryCount:     len(entries),
	}

	for _, entry := range entries {
		if entry.Kind == entity.EntryKindIncome {
			output.IncomeTotal = output.IncomeTotal.Add(entry.Amount)
		} else {
			output.ExpenseTotal = output.ExpenseTotal.Add(entry.Amount)
		}
	}

	output.Balance = output.IncomeTotal.Sub(output.ExpenseTotal)

	return output, nil
}
