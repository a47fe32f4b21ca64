// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// CategoryBreakdownInput represents the input for the category breakdown.
type CategoryBreakdownInput struct {
	UserID         uuid.UUID
	ReferenceMonth string
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// CategoryBreakdownOutput represents the output of the category breakdown.
type CategoryBreakdownOutput struct {
	ReferenceMonth string
	Categories     []CategoryTotal
	ExpenseTotal   decimal.Decimal
}

// CategoryBreakdownUseCase groups a month's expenses by category, largest
// total first, for the dashboard's spending chart.
type CategoryBreakdownUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(ledgerRepo adapter.LedgerRepository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the category breakdown aggregation.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context, input CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	if !valueobject.ValidBucket(input.ReferenceMonth) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must be in YYYY-MM format",
			nil,
		)
	}

	kind := entity.EntryKindExpense
	entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerFilter{
		UserID:         input.UserID,
		ReferenceMonth: input.ReferenceMonth,
		Kind:           &kind,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load expense entries: %w", err)
	}

	totals := make(map[string]*CategoryTotal)
	expenseTotal := decimal.Zero
	for _, entry := range entries {
		bucket, ok := totals[entry.Category]
		if !ok {
			bucket = &CategoryTotal{Category: entry.Category, Total: decimal.Zero}
			totals[entry.Category] = bucket
		}
		bucket.Total = bucket.Total.Add(entry.Amount)
		bucket.Count++
		expenseTotal = expenseTotal.Add(entry.Amount)
	}

	categories := make([]CategoryTotal, 0, len(totals))
	for _, bucket := range totals {
		categories = append(categories, *bucket)
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})

	return &CategoryBreakdownOutput{
		ReferenceMonth: input.ReferenceMonth,
		Categories:     categories,
		ExpenseTotal:   expenseTotal,
	}, nil
}
