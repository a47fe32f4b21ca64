// Package card contains credit card use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateCardInput represents the input for card creation.
type CreateCardInput struct {
	UserID     uuid.UUID
	Name       string
	Brand      entity.CardBrand
	TotalLimit decimal.Decimal
	ClosingDay int
	DueDay     int
}

// CreateCardOutput represents the output of card creation.
type CreateCardOutput struct {
	Card *entity.Card
}

// CreateCardUseCase handles credit card registration.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card creation. New cards always start with a zero
// used limit.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if err := validateCardFields(input.Name, input.Brand, input.TotalLimit, input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

	card := entity.NewCard(input.UserID, input.Name, input.Brand, input.TotalLimit, input.ClosingDay, input.DueDay)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardOutput{Card: card}, nil
}

func validateCardFields(name string, brand entity.CardBrand, totalLimit decimal.Decimal, closingDay, dueDay int) error {
	if name == "" {
		return domainerror.NewCardError(
			domainerror.ErrCodeMissingCardFields,
			"card name is required",
			nil,
		)
	}

	if !entity.ValidCardBrand(brand) {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardBrand,
			"invalid card brand",
			domainerror.ErrInvalidCardBrand,
		)
	}

	if !totalLimit.IsPositive() {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardLimit,
			"total limit must be greater than zero",
			domainerror.ErrInvalidCardLimit,
		)
	}

	if closingDay < 1 || closingDay > 31 || dueDay < 1 || dueDay > 31 {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCycleDay,
			"closing and due days must be between 1 and 31",
			domainerror.ErrInvalidCycleDay,
		)
	}

	return nil
}
