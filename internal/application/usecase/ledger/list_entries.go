// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// ListEntriesInput represents the input for listing ledger entries.
type ListEntriesInput struct {
	UserID         uuid.UUID
	ReferenceMonth string
	Kind           *entity.EntryKind
	Category       string
	PaymentMethod  *entity.PaymentMethod
	CardID         *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
}

// EntryTotals represents aggregated totals for the listed entries.
type EntryTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}

// ListEntriesOutput represents the output of listing ledger entries.
type ListEntriesOutput struct {
	Entries []*entity.LedgerEntry
	Totals  EntryTotals
}

// ListEntriesUseCase handles ledger listing logic.
type ListEntriesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(ledgerRepo adapter.LedgerRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves the entries matching the filter and their totals.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if input.ReferenceMonth != "" && !valueobject.ValidBucket(input.ReferenceMonth) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must be in YYYY-MM format",
			domainerror.ErrInvalidReferenceMonth,
		)
	}

	filter := adapter.LedgerFilter{
		UserID:         input.UserID,
		ReferenceMonth: input.ReferenceMonth,
		Kind:           input.Kind,
		Category:       input.Category,
		PaymentMethod:  input.PaymentMethod,
		CardID:         input.CardID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
	}

	entries, err := uc.ledgerRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := EntryTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, entry := range entries {
		switch entry.Kind {
		case entity.EntryKindIncome:
			totals.IncomeTotal = totals.IncomeTotal.Add(entry.Amount)
		case entity.EntryKindExpense:
			totals.ExpenseTotal = totals.ExpenseTotal.Add(entry.Amount)
		}
	}
	totals.Balance = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	return &ListEntriesOutput{
		Entries: entries,
		Totals:  totals,
	}, nil
}
