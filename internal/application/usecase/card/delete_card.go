// Package card contains credit card use cases.
package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeleteCardInput represents the input for card deletion.
type DeleteCardInput struct {
	CardID uuid.UUID
	UserID uuid.UUID
}

// DeleteCardOutput represents the output of card deletion.
type DeleteCardOutput struct {
	Success bool
}

// DeleteCardUseCase handles credit card deletion. A card that ledger entries
// still reference cannot be deleted; its purchases must be removed first.
type DeleteCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) (*DeleteCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCardNotFound) {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeCardNotFound,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}

	if card.UserID != input.UserID {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeNotAuthorizedCard,
			"not authorized to delete this card",
			domainerror.ErrNotAuthorizedToModifyCard,
		)
	}

	hasEntries, err := uc.cardRepo.HasLedgerEntries(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check card entries: %w", err)
	}
	if hasEntries {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardHasEntries,
			"card still has ledger entries; delete them before removing the card",
			domainerror.ErrCardHasEntries,
		)
	}

	if err := uc.cardRepo.Delete(ctx, card.ID); err != nil {
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}

	return &DeleteCardOutput{Success: true}, nil
}
