// Package card contains credit card use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListCardsInput represents the input for card listing.
type ListCardsInput struct {
	UserID uuid.UUID
}

// ListCardsOutput represents the output of card listing.
type ListCardsOutput struct {
	Cards []*entity.Card
}

// ListCardsUseCase lists a user's credit cards.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card listing.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return &ListCardsOutput{Cards: cards}, nil
}
