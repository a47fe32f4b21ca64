// Package card contains credit card use cases.
package card

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// UpdateCardInput represents the input for card update. Nil fields are left
// unchanged. The used limit is never set directly; only ledger operations
// move it.
type UpdateCardInput struct {
	CardID     uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Brand      *entity.CardBrand
	TotalLimit *decimal.Decimal
	ClosingDay *int
	DueDay     *int
}

// UpdateCardOutput represents the output of card update.
type UpdateCardOutput struct {
	Card *entity.Card
}

// UpdateCardUseCase handles credit card update logic.
type UpdateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CardRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
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
			"not authorized to modify this card",
			domainerror.ErrNotAuthorizedToModifyCard,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeMissingCardFields,
				"card name is required",
				nil,
			)
		}
		card.Name = *input.Name
	}

	if input.Brand != nil {
		if !entity.ValidCardBrand(*input.Brand) {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCardBrand,
				"invalid card brand",
				domainerror.ErrInvalidCardBrand,
			)
		}
		card.Brand = *input.Brand
	}

	if input.TotalLimit != nil {
		if !input.TotalLimit.IsPositive() {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCardLimit,
				"total limit must be greater than zero",
				domainerror.ErrInvalidCardLimit,
			)
		}
		card.TotalLimit = *input.TotalLimit
	}

	if input.ClosingDay != nil {
		if *input.ClosingDay < 1 || *input.ClosingDay > 31 {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCycleDay,
				"closing day must be between 1 and 31",
				domainerror.ErrInvalidCycleDay,
			)
		}
		card.ClosingDay = *input.ClosingDay
	}

	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCycleDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidCycleDay,
			)
		}
		card.DueDay = *input.DueDay
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return &UpdateCardOutput{Card: card}, nil
}
