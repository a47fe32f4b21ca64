package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// fakeLedgerRepo records writes so tests can assert what was persisted.
type fakeLedgerRepo struct {
	adapter.LedgerRepository

	entry          *entity.LedgerEntry // served by FindByID
	created        []*entity.LedgerEntry
	updated        []*entity.LedgerEntry
	purchaseTotals []decimal.Decimal
	purchaseCards  []uuid.UUID
	adjustCards    []uuid.UUID
	adjustDeltas   []decimal.Decimal
	adjustErr      error
}

func (f *fakeLedgerRepo) Create(_ context.Context, entry *entity.LedgerEntry) error {
	f.created = append(f.created, entry)
	return nil
}

func (f *fakeLedgerRepo) CreatePurchase(_ context.Context, entries []*entity.LedgerEntry, cardID uuid.UUID, total decimal.Decimal) error {
	f.created = append(f.created, entries...)
	f.purchaseCards = append(f.purchaseCards, cardID)
	f.purchaseTotals = append(f.purchaseTotals, total)
	return nil
}

// fakeCardRepo serves a single card.
type fakeCardRepo struct {
	adapter.CardRepository

	card *entity.Card
}

func (f *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Card, error) {
	if f.card != nil && f.card.ID == id {
		return f.card, nil
	}
	return nil, domainerror.ErrCardNotFound
}

func newTestCard(userID uuid.UUID) *entity.Card {
	return entity.NewCard(userID, "Nubank", entity.CardBrandMastercard, decimal.NewFromInt(1000), 5, 12)
}

func baseInput(userID uuid.UUID) CreateEntryInput {
	return CreateEntryInput{
		UserID:        userID,
		Kind:          entity.EntryKindExpense,
		Category:      "Compras",
		Description:   "Fones de ouvido",
		Amount:        decimal.RequireFromString("300.00"),
		Date:          time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodPix,
		Installments:  1,
	}
}

func TestCreateEntrySinglePayment(t *testing.T) {
	userID := uuid.New()
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewCreateEntryUseCase(ledgerRepo, &fakeCardRepo{})

	output, err := uc.Execute(context.Background(), baseInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(output.Entries))
	}

	entry := output.Entries[0]
	if entry.ReferenceMonth != "2025-01" {
		t.Errorf("expected reference month 2025-01, got %s", entry.ReferenceMonth)
	}
	if entry.IsInstallment() {
		t.Error("expected a non-installment entry")
	}
	if entry.InstallmentLabel() != entity.SinglePaymentLabel {
		t.Errorf("expected label %q, got %q", entity.SinglePaymentLabel, entry.InstallmentLabel())
	}
	if len(ledgerRepo.purchaseTotals) != 0 {
		t.Error("non-credit entry must not reserve card limit")
	}
}

func TestCreateEntryExpandsInstallments(t *testing.T) {
	userID := uuid.New()
	card := newTestCard(userID)
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewCreateEntryUseCase(ledgerRepo, &fakeCardRepo{card: card})

	input := baseInput(userID)
	input.PaymentMethod = entity.PaymentMethodCredit
	input.CardID = &card.ID
	input.Installments = 3

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(output.Entries))
	}

	expectedBuckets := []string{"2025-01", "2025-02", "2025-03"}
	expectedLabels := []string{"1/3", "2/3", "3/3"}
	sum := decimal.Zero
	for i, entry := range output.Entries {
		if entry.ReferenceMonth != expectedBuckets[i] {
			t.Errorf("entry %d: expected bucket %s, got %s", i+1, expectedBuckets[i], entry.ReferenceMonth)
		}
		if entry.InstallmentLabel() != expectedLabels[i] {
			t.Errorf("entry %d: expected label %s, got %s", i+1, expectedLabels[i], entry.InstallmentLabel())
		}
		if entry.PurchaseID == nil || *entry.PurchaseID != *output.Entries[0].PurchaseID {
			t.Errorf("entry %d: expected shared purchase id", i+1)
		}
		if entry.InstallmentCount == nil || *entry.InstallmentCount != 3 {
			t.Errorf("entry %d: expected installment count 3", i+1)
		}
		sum = sum.Add(entry.Amount)
	}

	if !sum.Equal(input.Amount) {
		t.Errorf("installments sum to %s, expected %s", sum.String(), input.Amount.String())
	}

	// The card limit is reserved once, by the full purchase total.
	if len(ledgerRepo.purchaseTotals) != 1 {
		t.Fatalf("expected 1 limit reservation, got %d", len(ledgerRepo.purchaseTotals))
	}
	if !ledgerRepo.purchaseTotals[0].Equal(input.Amount) {
		t.Errorf("expected limit reservation of %s, got %s", input.Amount.String(), ledgerRepo.purchaseTotals[0].String())
	}
	if ledgerRepo.purchaseCards[0] != card.ID {
		t.Error("limit reserved against the wrong card")
	}
}

func TestCreateEntryInstallmentsAcrossYearBoundary(t *testing.T) {
	userID := uuid.New()
	card := newTestCard(userID)
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewCreateEntryUseCase(ledgerRepo, &fakeCardRepo{card: card})

	input := baseInput(userID)
	input.PaymentMethod = entity.PaymentMethodCredit
	input.CardID = &card.ID
	input.Installments = 3
	input.Date = time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedBuckets := []string{"2025-11", "2025-12", "2026-01"}
	for i, entry := range output.Entries {
		if entry.ReferenceMonth != expectedBuckets[i] {
			t.Errorf("entry %d: expected bucket %s, got %s", i+1, expectedBuckets[i], entry.ReferenceMonth)
		}
	}
}

func TestCreateEntryValidation(t *testing.T) {
	userID := uuid.New()
	card := newTestCard(userID)

	tests := []struct {
		name         string
		mutate       func(*CreateEntryInput)
		expectedCode domainerror.LedgerErrorCode
	}{
		{
			name:         "zero installments",
			mutate:       func(in *CreateEntryInput) { in.Installments = 0 },
			expectedCode: domainerror.ErrCodeInvalidInstallmentCount,
		},
		{
			name: "installments above maximum",
			mutate: func(in *CreateEntryInput) {
				in.PaymentMethod = entity.PaymentMethodCredit
				in.CardID = &card.ID
				in.Installments = 49
			},
			expectedCode: domainerror.ErrCodeInvalidInstallmentCount,
		},
		{
			name:         "zero amount",
			mutate:       func(in *CreateEntryInput) { in.Amount = decimal.Zero },
			expectedCode: domainerror.ErrCodeInvalidEntryAmount,
		},
		{
			name:         "negative amount",
			mutate:       func(in *CreateEntryInput) { in.Amount = decimal.NewFromInt(-10) },
			expectedCode: domainerror.ErrCodeInvalidEntryAmount,
		},
		{
			name:         "invalid kind",
			mutate:       func(in *CreateEntryInput) { in.Kind = "transferencia" },
			expectedCode: domainerror.ErrCodeInvalidEntryKind,
		},
		{
			name:         "invalid payment method",
			mutate:       func(in *CreateEntryInput) { in.PaymentMethod = "cheque" },
			expectedCode: domainerror.ErrCodeInvalidPaymentMethod,
		},
		{
			name: "credit without card",
			mutate: func(in *CreateEntryInput) {
				in.PaymentMethod = entity.PaymentMethodCredit
				in.CardID = nil
			},
			expectedCode: domainerror.ErrCodeCardRequiredForCredit,
		},
		{
			name: "installments on a non-credit method",
			mutate: func(in *CreateEntryInput) {
				in.PaymentMethod = entity.PaymentMethodDebit
				in.Installments = 3
			},
			expectedCode: domainerror.ErrCodeInvalidInstallmentCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgerRepo := &fakeLedgerRepo{}
			uc := NewCreateEntryUseCase(ledgerRepo, &fakeCardRepo{card: card})

			input := baseInput(userID)
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected an error")
			}

			var ledgerErr *domainerror.LedgerError
			if !errors.As(err, &ledgerErr) {
				t.Fatalf("expected LedgerError, got %T", err)
			}
			if ledgerErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, ledgerErr.Code)
			}

			// Validation failures must not write anything.
			if len(ledgerRepo.created) != 0 {
				t.Errorf("expected no writes, got %d entries", len(ledgerRepo.created))
			}
		})
	}
}

func TestCreateEntryCardNotFound(t *testing.T) {
	userID := uuid.New()
	missing := uuid.New()
	uc := NewCreateEntryUseCase(&fakeLedgerRepo{}, &fakeCardRepo{})

	input := baseInput(userID)
	input.PaymentMethod = entity.PaymentMethodCredit
	input.CardID = &missing
	input.Installments = 2

	_, err := uc.Execute(context.Background(), input)

	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeLedgerCardNotFound {
		t.Fatalf("expected card not found error, got %v", err)
	}
}

func TestCreateEntryOtherUsersCardRejected(t *testing.T) {
	userID := uuid.New()
	card := newTestCard(uuid.New()) // owned by someone else
	uc := NewCreateEntryUseCase(&fakeLedgerRepo{}, &fakeCardRepo{card: card})

	input := baseInput(userID)
	input.PaymentMethod = entity.PaymentMethodCredit
	input.CardID = &card.ID

	_, err := uc.Execute(context.Background(), input)

	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeLedgerCardNotFound {
		t.Fatalf("expected card not found error, got %v", err)
	}
}
