// Package statement contains card statement use cases.
package statement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// StatementHistoryInput represents the input for statement history retrieval.
type StatementHistoryInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
}

// StatementHistoryOutput represents the output of statement history retrieval.
type StatementHistoryOutput struct {
	Months []*entity.StatementSummary
}

// StatementHistoryUseCase lists a card's billed totals per reference month,
// newest first.
type StatementHistoryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	cardRepo   adapter.CardRepository
}

// NewStatementHistoryUseCase creates a new StatementHistoryUseCase instance.
func NewStatementHistoryUseCase(ledgerRepo adapter.LedgerRepository, cardRepo adapter.CardRepository) *StatementHistoryUseCase {
	return &StatementHistoryUseCase{
		ledgerRepo: ledgerRepo,
		cardRepo:   cardRepo,
	}
}

// Execute performs the statement history retrieval.
func (uc *StatementHistoryUseCase) Execute(ctx context.Context, input StatementHistoryInput) (*StatementHistoryOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeStatementCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	months, err := uc.ledgerRepo.StatementHistory(ctx, input.UserID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statement history: %w", err)
	}

	return &StatementHistoryOutput{Months: months}, nil
}
