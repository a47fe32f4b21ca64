package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CardModel{},
		&model.LedgerEntryModel{},
		&model.SavingsGoalModel{},
		&model.FixedBillModel{},
		&model.LoanModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedCard(t *testing.T, db *gorm.DB, userID uuid.UUID, totalLimit string) *entity.Card {
	t.Helper()

	card := entity.NewCard(userID, "Nubank", entity.CardBrandMastercard, decimal.RequireFromString(totalLimit), 5, 12)
	if err := NewCardRepository(db).Create(context.Background(), card); err != nil {
		t.Fatalf("failed to seed card: %v", err)
	}
	return card
}

func buildInstallments(userID uuid.UUID, cardID uuid.UUID, amounts []string, buckets []string) []*entity.LedgerEntry {
	purchaseID := uuid.New()
	count := len(amounts)
	entries := make([]*entity.LedgerEntry, count)
	for i := range amounts {
		entry := entity.NewLedgerEntry(
			userID,
			entity.EntryKindExpense,
			"Eletrônicos",
			"Notebook",
			decimal.RequireFromString(amounts[i]),
			time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			buckets[i],
			entity.PaymentMethodCredit,
			"",
			&cardID,
			"",
		)
		index := i + 1
		entry.PurchaseID = &purchaseID
		entry.InstallmentIndex = &index
		entry.InstallmentCount = &count
		entries[i] = entry
	}
	return entries
}

func TestCreatePurchaseIsAtomic(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "5000.00")
	repo := NewLedgerRepository(db)

	entries := buildInstallments(userID, card.ID, []string{"100.00", "100.00", "100.00"}, []string{"2025-01", "2025-02", "2025-03"})
	total := decimal.RequireFromString("300.00")

	if err := repo.CreatePurchase(context.Background(), entries, card.ID, total); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByPurchase(context.Background(), *entries[0].PurchaseID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(stored))
	}

	// The limit moved once, by the full purchase total.
	reloaded, err := NewCardRepository(db).FindByID(context.Background(), card.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.UsedLimit.Equal(total) {
		t.Errorf("expected used limit 300.00, got %s", reloaded.UsedLimit.String())
	}
}

func TestCreatePurchaseRollsBackOnMissingCard(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	missingCard := uuid.New()
	repo := NewLedgerRepository(db)

	entries := buildInstallments(userID, missingCard, []string{"50.00", "50.00"}, []string{"2025-01", "2025-02"})

	err := repo.CreatePurchase(context.Background(), entries, missingCard, decimal.RequireFromString("100.00"))
	if err == nil {
		t.Fatal("expected an error for a missing card")
	}

	// No orphaned installments survive the rollback.
	var count int64
	db.Model(&model.LedgerEntryModel{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 entries after rollback, got %d", count)
	}
}

func TestDeletePurchaseGroupReleasesLimitOnce(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "5000.00")
	repo := NewLedgerRepository(db)

	entries := buildInstallments(userID, card.ID, []string{"33.33", "33.33", "33.34"}, []string{"2025-01", "2025-02", "2025-03"})
	total := decimal.RequireFromString("100.00")
	if err := repo.CreatePurchase(context.Background(), entries, card.ID, total); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := repo.DeletePurchaseGroup(context.Background(), *entries[0].PurchaseID, card.ID, total)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted entries, got %d", deleted)
	}

	reloaded, _ := NewCardRepository(db).FindByID(context.Background(), card.ID)
	if !reloaded.UsedLimit.IsZero() {
		t.Errorf("expected used limit back to zero, got %s", reloaded.UsedLimit.String())
	}

	// Soft-deleted installments no longer show up in reads.
	stored, _ := repo.FindByPurchase(context.Background(), *entries[0].PurchaseID)
	if len(stored) != 0 {
		t.Errorf("expected no visible installments, got %d", len(stored))
	}
}

func TestUsedLimitFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "1000.00")
	repo := NewLedgerRepository(db)

	entry := buildInstallments(userID, card.ID, []string{"200.00"}, []string{"2025-01"})[0]
	if err := repo.CreatePurchase(context.Background(), []*entity.LedgerEntry{entry}, card.ID, entry.Amount); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Paying more than is reserved floors at zero instead of going negative.
	if err := repo.RecordStatementPayment(context.Background(), card.ID, decimal.RequireFromString("500.00"), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, _ := NewCardRepository(db).FindByID(context.Background(), card.ID)
	if !reloaded.UsedLimit.IsZero() {
		t.Errorf("expected used limit 0, got %s", reloaded.UsedLimit.String())
	}
}

func TestUpdateWithLimitAdjustMovesEntryAndLimitTogether(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "1000.00")
	repo := NewLedgerRepository(db)

	entry := buildInstallments(userID, card.ID, []string{"300.00"}, []string{"2025-01"})[0]
	if err := repo.CreatePurchase(context.Background(), []*entity.LedgerEntry{entry}, card.ID, entry.Amount); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry.Amount = decimal.RequireFromString("500.00")
	if err := repo.UpdateWithLimitAdjust(context.Background(), entry, card.ID, decimal.RequireFromString("200.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Amount.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected amount 500.00, got %s", stored.Amount.String())
	}

	reloaded, _ := NewCardRepository(db).FindByID(context.Background(), card.ID)
	if !reloaded.UsedLimit.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected used limit 500.00, got %s", reloaded.UsedLimit.String())
	}
}

func TestUpdateWithLimitAdjustRollsBackOnMissingCard(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "1000.00")
	repo := NewLedgerRepository(db)

	entry := buildInstallments(userID, card.ID, []string{"300.00"}, []string{"2025-01"})[0]
	if err := repo.CreatePurchase(context.Background(), []*entity.LedgerEntry{entry}, card.ID, entry.Amount); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry.Amount = decimal.RequireFromString("500.00")
	err := repo.UpdateWithLimitAdjust(context.Background(), entry, uuid.New(), decimal.RequireFromString("200.00"))
	if err == nil {
		t.Fatal("expected an error for a missing card")
	}

	// The amount edit rolled back with the failed limit adjustment, so the
	// ledger and the used credit still agree.
	stored, _ := repo.FindByID(context.Background(), entry.ID)
	if !stored.Amount.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("expected amount 300.00 after rollback, got %s", stored.Amount.String())
	}
}

func TestRecordStatementPaymentWritesEntryAndLimitTogether(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "1000.00")
	repo := NewLedgerRepository(db)

	charge := buildInstallments(userID, card.ID, []string{"450.00"}, []string{"2025-03"})[0]
	if err := repo.CreatePurchase(context.Background(), []*entity.LedgerEntry{charge}, card.ID, charge.Amount); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payment := entity.NewLedgerEntry(
		userID, entity.EntryKindExpense, "Fatura do cartão", "Pagamento fatura Nubank",
		decimal.RequireFromString("450.00"),
		time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC),
		"2025-04", entity.PaymentMethodTransfer, "Conta corrente", nil, "",
	)
	if err := repo.RecordStatementPayment(context.Background(), card.ID, payment.Amount, payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), payment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.CardID != nil {
		t.Error("payment entry must not reference the card")
	}

	reloaded, _ := NewCardRepository(db).FindByID(context.Background(), card.ID)
	if !reloaded.UsedLimit.IsZero() {
		t.Errorf("expected used limit 0 after payment, got %s", reloaded.UsedLimit.String())
	}
}

func TestRecordStatementPaymentRollsBackOnMissingCard(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	repo := NewLedgerRepository(db)

	payment := entity.NewLedgerEntry(
		userID, entity.EntryKindExpense, "Fatura do cartão", "Pagamento fatura",
		decimal.RequireFromString("450.00"),
		time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC),
		"2025-04", entity.PaymentMethodTransfer, "", nil, "",
	)

	err := repo.RecordStatementPayment(context.Background(), uuid.New(), payment.Amount, payment)
	if err == nil {
		t.Fatal("expected an error for a missing card")
	}

	// No payment record survives the failed limit release.
	var count int64
	db.Model(&model.LedgerEntryModel{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 entries after rollback, got %d", count)
	}
}

func TestFindStatementFiltersByCardMonthAndKind(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "5000.00")
	otherCard := seedCard(t, db, userID, "3000.00")
	repo := NewLedgerRepository(db)

	mkEntry := func(cardID *uuid.UUID, kind entity.EntryKind, amount, bucket string) *entity.LedgerEntry {
		return entity.NewLedgerEntry(
			userID, kind, "Mercado", "compra",
			decimal.RequireFromString(amount),
			time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			bucket, entity.PaymentMethodCredit, "", cardID, "",
		)
	}

	for _, entry := range []*entity.LedgerEntry{
		mkEntry(&card.ID, entity.EntryKindExpense, "120.00", "2025-03"),
		mkEntry(&card.ID, entity.EntryKindExpense, "80.00", "2025-03"),
		mkEntry(&card.ID, entity.EntryKindExpense, "999.00", "2025-04"), // other month
		mkEntry(&otherCard.ID, entity.EntryKindExpense, "50.00", "2025-03"), // other card
		mkEntry(&card.ID, entity.EntryKindIncome, "10.00", "2025-03"), // refund, not an expense
	} {
		if err := repo.Create(context.Background(), entry); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}

	entries, err := repo.FindStatement(context.Background(), userID, card.ID, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 statement entries, got %d", len(entries))
	}

	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	if !total.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("expected statement total 200.00, got %s", total.String())
	}
}

func TestStatementHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "5000.00")
	repo := NewLedgerRepository(db)

	for _, seed := range []struct{ amount, bucket string }{
		{"100.00", "2025-01"},
		{"200.00", "2025-02"},
		{"50.00", "2025-02"},
		{"400.00", "2024-12"},
	} {
		entry := entity.NewLedgerEntry(
			userID, entity.EntryKindExpense, "Mercado", "compra",
			decimal.RequireFromString(seed.amount),
			time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			seed.bucket, entity.PaymentMethodCredit, "", &card.ID, "",
		)
		if err := repo.Create(context.Background(), entry); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}

	months, err := repo.StatementHistory(context.Background(), userID, card.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(months))
	}

	if months[0].ReferenceMonth != "2025-02" || months[2].ReferenceMonth != "2024-12" {
		t.Errorf("expected newest-first ordering, got %s .. %s", months[0].ReferenceMonth, months[2].ReferenceMonth)
	}
	if !months[0].Total.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("expected 2025-02 total 250.00, got %s", months[0].Total.String())
	}
	if months[0].Count != 2 {
		t.Errorf("expected 2025-02 count 2, got %d", months[0].Count)
	}
}

func TestDeleteWithLimitRelease(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	card := seedCard(t, db, userID, "1000.00")
	repo := NewLedgerRepository(db)

	entry := entity.NewLedgerEntry(
		userID, entity.EntryKindExpense, "Mercado", "compra",
		decimal.RequireFromString("150.00"),
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		"2025-03", entity.PaymentMethodCredit, "", &card.ID, "",
	)
	if err := repo.CreatePurchase(context.Background(), []*entity.LedgerEntry{entry}, card.ID, entry.Amount); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteWithLimitRelease(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, _ := NewCardRepository(db).FindByID(context.Background(), card.ID)
	if !reloaded.UsedLimit.IsZero() {
		t.Errorf("expected used limit 0 after release, got %s", reloaded.UsedLimit.String())
	}
}
