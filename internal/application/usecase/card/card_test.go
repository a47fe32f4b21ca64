package card

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

type fakeCardRepo struct {
	adapter.CardRepository

	cards      map[uuid.UUID]*entity.Card
	hasEntries bool
	deleted    []uuid.UUID
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[uuid.UUID]*entity.Card)}
}

func (f *fakeCardRepo) Create(_ context.Context, card *entity.Card) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Card, error) {
	card, ok := f.cards[id]
	if !ok {
		return nil, domainerror.ErrCardNotFound
	}
	return card, nil
}

func (f *fakeCardRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	var result []*entity.Card
	for _, card := range f.cards {
		if card.UserID == userID {
			result = append(result, card)
		}
	}
	return result, nil
}

func (f *fakeCardRepo) Update(_ context.Context, card *entity.Card) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.cards, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCardRepo) HasLedgerEntries(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.hasEntries, nil
}

func TestCreateCardStartsWithZeroUsedLimit(t *testing.T) {
	repo := newFakeCardRepo()
	uc := NewCreateCardUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateCardInput{
		UserID:     uuid.New(),
		Name:       "Nubank",
		Brand:      entity.CardBrandMastercard,
		TotalLimit: decimal.NewFromInt(3000),
		ClosingDay: 5,
		DueDay:     12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Card.UsedLimit.IsZero() {
		t.Errorf("expected zero used limit, got %s", output.Card.UsedLimit.String())
	}
	if !output.Card.AvailableLimit().Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected available limit 3000, got %s", output.Card.AvailableLimit().String())
	}
}

func TestCreateCardValidation(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateCardInput
		expectedCode domainerror.CardErrorCode
	}{
		{
			name: "missing name",
			input: CreateCardInput{
				Brand:      entity.CardBrandVisa,
				TotalLimit: decimal.NewFromInt(1000),
				ClosingDay: 1,
				DueDay:     10,
			},
			expectedCode: domainerror.ErrCodeMissingCardFields,
		},
		{
			name: "unknown brand",
			input: CreateCardInput{
				Name:       "Cartão",
				Brand:      "Diners",
				TotalLimit: decimal.NewFromInt(1000),
				ClosingDay: 1,
				DueDay:     10,
			},
			expectedCode: domainerror.ErrCodeInvalidCardBrand,
		},
		{
			name: "non-positive limit",
			input: CreateCardInput{
				Name:       "Cartão",
				Brand:      entity.CardBrandVisa,
				TotalLimit: decimal.Zero,
				ClosingDay: 1,
				DueDay:     10,
			},
			expectedCode: domainerror.ErrCodeInvalidCardLimit,
		},
		{
			name: "closing day out of range",
			input: CreateCardInput{
				Name:       "Cartão",
				Brand:      entity.CardBrandVisa,
				TotalLimit: decimal.NewFromInt(1000),
				ClosingDay: 32,
				DueDay:     10,
			},
			expectedCode: domainerror.ErrCodeInvalidCycleDay,
		},
		{
			name: "due day out of range",
			input: CreateCardInput{
				Name:       "Cartão",
				Brand:      entity.CardBrandVisa,
				TotalLimit: decimal.NewFromInt(1000),
				ClosingDay: 5,
				DueDay:     0,
			},
			expectedCode: domainerror.ErrCodeInvalidCycleDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCardUseCase(newFakeCardRepo())
			tt.input.UserID = uuid.New()

			_, err := uc.Execute(context.Background(), tt.input)

			var cardErr *domainerror.CardError
			if !errors.As(err, &cardErr) {
				t.Fatalf("expected CardError, got %v", err)
			}
			if cardErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, cardErr.Code)
			}
		})
	}
}

func TestUpdateCardKeepsUsedLimit(t *testing.T) {
	repo := newFakeCardRepo()
	userID := uuid.New()
	card := entity.NewCard(userID, "Nubank", entity.CardBrandMastercard, decimal.NewFromInt(3000), 5, 12)
	card.UsedLimit = decimal.RequireFromString("750.00")
	repo.cards[card.ID] = card

	newLimit := decimal.NewFromInt(5000)
	uc := NewUpdateCardUseCase(repo)

	output, err := uc.Execute(context.Background(), UpdateCardInput{
		CardID:     card.ID,
		UserID:     userID,
		TotalLimit: &newLimit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Card.TotalLimit.Equal(newLimit) {
		t.Errorf("expected total limit 5000, got %s", output.Card.TotalLimit.String())
	}
	if !output.Card.UsedLimit.Equal(decimal.RequireFromString("750.00")) {
		t.Errorf("used limit must not change on update, got %s", output.Card.UsedLimit.String())
	}
}

func TestUpdateCardRejectsOtherUser(t *testing.T) {
	repo := newFakeCardRepo()
	card := entity.NewCard(uuid.New(), "Nubank", entity.CardBrandMastercard, decimal.NewFromInt(3000), 5, 12)
	repo.cards[card.ID] = card

	name := "Outro nome"
	uc := NewUpdateCardUseCase(repo)

	_, err := uc.Execute(context.Background(), UpdateCardInput{
		CardID: card.ID,
		UserID: uuid.New(),
		Name:   &name,
	})

	var cardErr *domainerror.CardError
	if !errors.As(err, &cardErr) || cardErr.Code != domainerror.ErrCodeNotAuthorizedCard {
		t.Fatalf("expected not authorized error, got %v", err)
	}
}

func TestDeleteCardBlockedWhileEntriesExist(t *testing.T) {
	repo := newFakeCardRepo()
	userID := uuid.New()
	card := entity.NewCard(userID, "Nubank", entity.CardBrandMastercard, decimal.NewFromInt(3000), 5, 12)
	repo.cards[card.ID] = card
	repo.hasEntries = true

	uc := NewDeleteCardUseCase(repo)

	_, err := uc.Execute(context.Background(), DeleteCardInput{CardID: card.ID, UserID: userID})

	var cardErr *domainerror.CardError
	if !errors.As(err, &cardErr) || cardErr.Code != domainerror.ErrCodeCardHasEntries {
		t.Fatalf("expected card-has-entries error, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("card must not be deleted while entries reference it")
	}
}

func TestDeleteCardSucceedsWhenUnreferenced(t *testing.T) {
	repo := newFakeCardRepo()
	userID := uuid.New()
	card := entity.NewCard(userID, "Nubank", entity.CardBrandMastercard, decimal.NewFromInt(3000), 5, 12)
	repo.cards[card.ID] = card

	uc := NewDeleteCardUseCase(repo)

	output, err := uc.Execute(context.Background(), DeleteCardInput{CardID: card.ID, UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Success {
		t.Error("expected success")
	}
	if len(repo.deleted) != 1 {
		t.Errorf("expected 1 deletion, got %d", len(repo.deleted))
	}
}
