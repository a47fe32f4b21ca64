package statement

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

type fakeLedgerRepo struct {
	adapter.LedgerRepository

	statementEntries []*entity.LedgerEntry
	history          []*entity.StatementSummary
	paymentCards     []uuid.UUID
	paymentAmounts   []decimal.Decimal
	paymentEntries   []*entity.LedgerEntry
}

func (f *fakeLedgerRepo) FindStatement(_ context.Context, _, _ uuid.UUID, _ string) ([]*entity.LedgerEntry, error) {
	return f.statementEntries, nil
}

func (f *fakeLedgerRepo) StatementHistory(_ context.Context, _, _ uuid.UUID) ([]*entity.StatementSummary, error) {
	return f.history, nil
}

func (f *fakeLedgerRepo) RecordStatementPayment(_ context.Context, cardID uuid.UUID, amount decimal.Decimal, paymentEntry *entity.LedgerEntry) error {
	f.paymentCards = append(f.paymentCards, cardID)
	f.paymentAmounts = append(f.paymentAmounts, amount)
	f.paymentEntries = append(f.paymentEntries, paymentEntry)
	return nil
}

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

func creditEntry(userID uuid.UUID, cardID uuid.UUID, amount string, index, count int) *entity.LedgerEntry {
	entry := entity.NewLedgerEntry(
		userID,
		entity.EntryKindExpense,
		"Mercado",
		"Compra do mês",
		decimal.RequireFromString(amount),
		time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		"2025-03",
		entity.PaymentMethodCredit,
		"",
		&cardID,
		"",
	)
	if count > 1 {
		purchaseID := uuid.New()
		entry.PurchaseID = &purchaseID
		entry.InstallmentIndex = &index
		entry.InstallmentCount = &count
	}
	return entry
}

func TestGetStatementAggregates(t *testing.T) {
	userID := uuid.New()
	card := entity.NewCard(userID, "Itaú", entity.CardBrandVisa, decimal.NewFromInt(5000), 10, 17)

	entries := []*entity.LedgerEntry{
		creditEntry(userID, card.ID, "120.50", 0, 1),
		creditEntry(userID, card.ID, "100.00", 2, 3),
	}

	uc := NewGetStatementUseCase(&fakeLedgerRepo{statementEntries: entries}, &fakeCardRepo{card: card})

	output, err := uc.Execute(context.Background(), GetStatementInput{
		UserID:         userID,
		CardID:         card.ID,
		ReferenceMonth: "2025-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := output.Statement
	if !st.Total.Equal(decimal.RequireFromString("220.50")) {
		t.Errorf("expected total 220.50, got %s", st.Total.String())
	}
	if st.Count != 2 {
		t.Errorf("expected count 2, got %d", st.Count)
	}
	if st.Lines[0].Label != entity.SinglePaymentLabel {
		t.Errorf("expected label %q, got %q", entity.SinglePaymentLabel, st.Lines[0].Label)
	}
	if st.Lines[1].Label != "2/3" {
		t.Errorf("expected label 2/3, got %q", st.Lines[1].Label)
	}
}

func TestGetStatementEmptyMonth(t *testing.T) {
	userID := uuid.New()
	card := entity.NewCard(userID, "Itaú", entity.CardBrandVisa, decimal.NewFromInt(5000), 10, 17)

	uc := NewGetStatementUseCase(&fakeLedgerRepo{}, &fakeCardRepo{card: card})

	output, err := uc.Execute(context.Background(), GetStatementInput{
		UserID:         userID,
		CardID:         card.ID,
		ReferenceMonth: "2030-07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := output.Statement
	if !st.Total.IsZero() || st.Count != 0 || len(st.Lines) != 0 {
		t.Errorf("expected an empty zero-total statement, got total=%s count=%d lines=%d",
			st.Total.String(), st.Count, len(st.Lines))
	}
}

func TestGetStatementInvalidMonth(t *testing.T) {
	uc := NewGetStatementUseCase(&fakeLedgerRepo{}, &fakeCardRepo{})

	_, err := uc.Execute(context.Background(), GetStatementInput{
		UserID:         uuid.New(),
		CardID:         uuid.New(),
		ReferenceMonth: "2025-13",
	})

	var stErr *domainerror.StatementError
	if !errors.As(err, &stErr) || stErr.Code != domainerror.ErrCodeInvalidStatementMonth {
		t.Fatalf("expected invalid month error, got %v", err)
	}
}

func TestGetStatementOtherUsersCard(t *testing.T) {
	card := entity.NewCard(uuid.New(), "Itaú", entity.CardBrandVisa, decimal.NewFromInt(5000), 10, 17)
	uc := NewGetStatementUseCase(&fakeLedgerRepo{}, &fakeCardRepo{card: card})

	_, err := uc.Execute(context.Background(), GetStatementInput{
		UserID:         uuid.New(),
		CardID:         card.ID,
		ReferenceMonth: "2025-03",
	})

	var stErr *domainerror.StatementError
	if !errors.As(err, &stErr) || stErr.Code != domainerror.ErrCodeStatementCardNotFound {
		t.Fatalf("expected card not found error, got %v", err)
	}
}

func TestPayStatementReleasesLimit(t *testing.T) {
	userID := uuid.New()
	card := entity.NewCard(userID, "Itaú", entity.CardBrandVisa, decimal.NewFromInt(5000), 10, 17)
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewPayStatementUseCase(ledgerRepo, &fakeCardRepo{card: card})

	output, err := uc.Execute(context.Background(), PayStatementInput{
		UserID:      userID,
		CardID:      card.ID,
		Amount:      decimal.RequireFromString("450.00"),
		PaymentDate: time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ledgerRepo.paymentAmounts) != 1 {
		t.Fatalf("expected 1 payment call, got %d", len(ledgerRepo.paymentAmounts))
	}
	if !ledgerRepo.paymentAmounts[0].Equal(decimal.RequireFromString("450.00")) {
		t.Errorf("expected released amount 450.00, got %s", ledgerRepo.paymentAmounts[0].String())
	}
	if ledgerRepo.paymentCards[0] != card.ID {
		t.Error("limit released against the wrong card")
	}
	if output.PaymentEntry != nil {
		t.Error("expected no payment entry when RecordAsEntry is unset")
	}
	if ledgerRepo.paymentEntries[0] != nil {
		t.Error("expected no ledger entry in the payment call")
	}
}

func TestPayStatementRecordsEntryWithoutCardReference(t *testing.T) {
	userID := uuid.New()
	card := entity.NewCard(userID, "Itaú", entity.CardBrandVisa, decimal.NewFromInt(5000), 10, 17)
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewPayStatementUseCase(ledgerRepo, &fakeCardRepo{card: card})

	output, err := uc.Execute(context.Background(), PayStatementInput{
		UserID:         userID,
		CardID:         card.ID,
		Amount:         decimal.RequireFromString("450.00"),
		PaymentDate:    time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC),
		BankAccount:    "Conta corrente",
		RecordAsEntry:  true,
		ReferenceMonth: "2025-04",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := output.PaymentEntry
	if entry == nil {
		t.Fatal("expected a payment entry")
	}
	// The payment entry must not point at the card, or it would show up on a
	// future statement as a new charge.
	if entry.CardID != nil {
		t.Error("payment entry must not reference the card")
	}
	if entry.Kind != entity.EntryKindExpense {
		t.Errorf("expected expense entry, got %s", entry.Kind)
	}
	if entry.ReferenceMonth != "2025-04" {
		t.Errorf("expected reference month 2025-04, got %s", entry.ReferenceMonth)
	}

	// Entry and limit release travel in the same repository call, so a
	// failed write cannot leave the limit moved with no payment record.
	if len(ledgerRepo.paymentEntries) != 1 || ledgerRepo.paymentEntries[0] != entry {
		t.Error("expected the entry inside the payment call")
	}
}

func TestPayStatementRejectsNonPositiveAmount(t *testing.T) {
	uc := NewPayStatementUseCase(&fakeLedgerRepo{}, &fakeCardRepo{})

	_, err := uc.Execute(context.Background(), PayStatementInput{
		UserID: uuid.New(),
		CardID: uuid.New(),
		Amount: decimal.Zero,
	})

	var stErr *domainerror.StatementError
	if !errors.As(err, &stErr) || stErr.Code != domainerror.ErrCodeInvalidPaymentAmount {
		t.Fatalf("expected invalid payment amount error, got %v", err)
	}
}

func TestStatementHistory(t *testing.T) {
	userID := uuid.New()
	card := entity.NewCard(userID, "Itaú", entity.CardBrandVisa, decimal.NewFromInt(5000), 10, 17)
	history := []*entity.StatementSummary{
		{ReferenceMonth: "2025-04", Total: decimal.RequireFromString("900.00"), Count: 4},
		{ReferenceMonth: "2025-03", Total: decimal.RequireFromString("220.50"), Count: 2},
	}

	uc := NewStatementHistoryUseCase(&fakeLedgerRepo{history: history}, &fakeCardRepo{card: card})

	output, err := uc.Execute(context.Background(), StatementHistoryInput{UserID: userID, CardID: card.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(output.Months))
	}
	if output.Months[0].ReferenceMonth != "2025-04" {
		t.Errorf("expected newest month first, got %s", output.Months[0].ReferenceMonth)
	}
}
