// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

const (
	// MaxDescriptionLength is the maximum allowed length for entry descriptions.
	MaxDescriptionLength = 200
	// MaxNotesLength is the maximum allowed length for entry notes.
	MaxNotesLength = 500
)

// CreateEntryInput represents the input for ledger entry creation.
type CreateEntryInput struct {
	UserID        uuid.UUID
	Kind          entity.EntryKind
	Category      string
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod entity.PaymentMethod
	BankAccount   string
	CardID        *uuid.UUID // required iff PaymentMethod is credit
	Installments  int        // 1 for a single payment, up to 48
	Notes         string
}

// CreateEntryOutput represents the output of ledger entry creation: the
// single created entry, or every installment of an expanded purchase.
type CreateEntryOutput struct {
	Entries []*entity.LedgerEntry
}

// CreateEntryUseCase handles ledger entry creation, expanding credit
// purchases with N installments into N monthly entries.
type CreateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	cardRepo   adapter.CardRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(ledgerRepo adapter.LedgerRepository, cardRepo adapter.CardRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		ledgerRepo: ledgerRepo,
		cardRepo:   cardRepo,
	}
}

// Execute performs the ledger entry creation. All validation happens before
// any write; an installment purchase is persisted atomically together with
// the card's single used-limit increment.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	installments := input.Installments

	if err := uc.validate(input, installments); err != nil {
		return nil, err
	}

	var card *entity.Card
	if input.PaymentMethod == entity.PaymentMethodCredit {
		found, err := uc.cardRepo.FindByID(ctx, *input.CardID)
		if err != nil || found.UserID != input.UserID {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerCardNotFound,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
		card = found
	}

	baseBucket := valueobject.BucketOf(input.Date)

	if installments == 1 {
		entry := entity.NewLedgerEntry(
			input.UserID,
			input.Kind,
			input.Category,
			input.Description,
			input.Amount,
			input.Date,
			baseBucket,
			input.PaymentMethod,
			input.BankAccount,
			input.CardID,
			input.Notes,
		)

		if card != nil {
			// Single-payment credit purchase still reserves the card's limit.
			if err := uc.ledgerRepo.CreatePurchase(ctx, []*entity.LedgerEntry{entry}, card.ID, input.Amount); err != nil {
				return nil, fmt.Errorf("failed to create purchase: %w", err)
			}
		} else {
			if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
				return nil, fmt.Errorf("failed to create ledger entry: %w", err)
			}
		}

		return &CreateEntryOutput{Entries: []*entity.LedgerEntry{entry}}, nil
	}

	// Installment expansion: one entry per month, equal shares with the
	// rounding remainder on the last installment, buckets shifted forward
	// from the first installment's month.
	shares := valueobject.SplitInstallments(input.Amount, installments)
	purchaseID := uuid.New()

	entries := make([]*entity.LedgerEntry, installments)
	for i := 0; i < installments; i++ {
		bucket, err := valueobject.ShiftBucket(baseBucket, i)
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidReferenceMonth,
				"failed to derive installment reference month",
				err,
			)
		}

		entry := entity.NewLedgerEntry(
			input.UserID,
			input.Kind,
			input.Category,
			input.Description,
			shares[i],
			input.Date,
			bucket,
			input.PaymentMethod,
			input.BankAccount,
			input.CardID,
			input.Notes,
		)

		index := i + 1
		count := installments
		entry.PurchaseID = &purchaseID
		entry.InstallmentIndex = &index
		entry.InstallmentCount = &count

		entries[i] = entry
	}

	// One atomic write: N entries plus a single increment by the full total.
	if err := uc.ledgerRepo.CreatePurchase(ctx, entries, card.ID, input.Amount); err != nil {
		return nil, fmt.Errorf("failed to create parceled purchase: %w", err)
	}

	return &CreateEntryOutput{Entries: entries}, nil
}

// validate rejects invalid input before any write happens.
func (uc *CreateEntryUseCase) validate(input CreateEntryInput, installments int) error {
	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeEntryDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	if input.Kind != entity.EntryKindExpense && input.Kind != entity.EntryKindIncome {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryKind,
			"entry kind must be 'expense' or 'income'",
			domainerror.ErrInvalidEntryKind,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if !entity.ValidPaymentMethod(input.PaymentMethod) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if installments < 1 || installments > valueobject.InstallmentsMax {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallmentCount,
			fmt.Sprintf("installments must be between 1 and %d", valueobject.InstallmentsMax),
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	if input.PaymentMethod == entity.PaymentMethodCredit && input.CardID == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeCardRequiredForCredit,
			"credit entries require a card",
			domainerror.ErrCardRequiredForCredit,
		)
	}

	if installments > 1 && input.PaymentMethod != entity.PaymentMethodCredit {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"only credit purchases can be split into installments",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	return nil
}
