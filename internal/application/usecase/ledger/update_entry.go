// Package ledger contains ledger entry use cases.
package ledger

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
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// UpdateEntryInput represents the input for ledger entry update.
// Nil fields are left unchanged.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	UserID      uuid.UUID
	Category    *string
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
	BankAccount *string
	Notes       *string
}

// UpdateEntryOutput represents the output of ledger entry update.
type UpdateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// UpdateEntryUseCase handles ledger entry update logic. Installment entries
// are locked: the whole purchase must be deleted and recreated instead.
type UpdateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(ledgerRepo adapter.LedgerRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the ledger entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.ledgerRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEntryNotFound,
				"ledger entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}

	if entry.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to modify this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if entry.IsInstallment() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInstallmentLocked,
			"installment entries cannot be edited; delete the purchase and create it again",
			domainerror.ErrInstallmentLocked,
		)
	}

	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEntryDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		entry.Description = *input.Description
	}

	if input.Notes != nil {
		if len(*input.Notes) > MaxNotesLength {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEntryNotesTooLong,
				fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
				domainerror.ErrNotesTooLong,
			)
		}
		entry.Notes = *input.Notes
	}

	if input.Category != nil {
		entry.Category = *input.Category
	}

	if input.BankAccount != nil {
		entry.BankAccount = *input.BankAccount
	}

	if input.Date != nil {
		entry.Date = *input.Date
		entry.ReferenceMonth = valueobject.BucketOf(*input.Date)
	}

	// An amount change on a credit entry moves the card's used limit by the
	// difference, keeping the used-credit invariant aligned with the ledger.
	var limitDelta decimal.Decimal
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidEntryAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidEntryAmount,
			)
		}
		if entry.PaymentMethod == entity.PaymentMethodCredit && entry.CardID != nil {
			limitDelta = input.Amount.Sub(entry.Amount)
		}
		entry.Amount = *input.Amount
	}

	entry.UpdatedAt = time.Now().UTC()

	// The entry and the limit delta commit together, so a failure cannot
	// leave the new amount persisted against the old used credit.
	if !limitDelta.IsZero() {
		if err := uc.ledgerRepo.UpdateWithLimitAdjust(ctx, entry, *entry.CardID, limitDelta); err != nil {
			return nil, fmt.Errorf("failed to update ledger entry: %w", err)
		}
	} else if err := uc.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: entry}, nil
}
