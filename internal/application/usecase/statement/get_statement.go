// Package statement contains card statement use cases.
package statement

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

// GetStatementInput represents the input for statement retrieval.
type GetStatementInput struct {
	UserID         uuid.UUID
	CardID         uuid.UUID
	ReferenceMonth string
}

// GetStatementOutput represents the output of statement retrieval.
type GetStatementOutput struct {
	Statement *entity.Statement
}

// GetStatementUseCase aggregates a card's expense entries for one reference
// month into a statement. Statements are derived on demand, never stored.
type GetStatementUseCase struct {
	ledgerRepo adapter.LedgerRepository
	cardRepo   adapter.CardRepository
}

// NewGetStatementUseCase creates a new GetStatementUseCase instance.
func NewGetStatementUseCase(ledgerRepo adapter.LedgerRepository, cardRepo adapter.CardRepository) *GetStatementUseCase {
	return &GetStatementUseCase{
		ledgerRepo: ledgerRepo,
		cardRepo:   cardRepo,
	}
}

// Execute performs the statement aggregation. A month with no entries yields
// an empty statement with a zero total, not an error.
func (uc *GetStatementUseCase) Execute(ctx context.Context, input GetStatementInput) (*GetStatementOutput, error) {
	if !valueobject.ValidBucket(input.ReferenceMonth) {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementMonth,
			"reference month must be in YYYY-MM format",
			nil,
		)
	}

	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeStatementCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	entries, err := uc.ledgerRepo.FindStatement(ctx, input.UserID, input.CardID, input.ReferenceMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to load statement entries: %w", err)
	}

	statement := &entity.Statement{
		CardID:         input.CardID,
		ReferenceMonth: input.ReferenceMonth,
		Total:          decimal.Zero,
		Count:          len(entries),
		Lines:          make([]entity.StatementLine, 0, len(entries)),
	}

	for _, entry := range entries {
		statement.Total = statement.Total.Add(entry.Amount)
		statement.Lines = append(statement.Lines, entity.StatementLine{
			Entry: entry,
			Label: entry.InstallmentLabel(),
		})
	}

	return &GetStatementOutput{Statement: statement}, nil
}
