// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for ledger entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteEntryOutput represents the output of ledger entry deletion.
type DeleteEntryOutput struct {
	Success bool
}

// DeleteEntryUseCase handles single entry deletion. Installments cannot be
// deleted individually; DeletePurchaseUseCase removes the whole group.
type DeleteEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(ledgerRepo adapter.LedgerRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the ledger entry deletion. Deleting a credit entry
// releases its amount from the card's used limit in the same transaction.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
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
			"not authorized to delete this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if entry.IsInstallment() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInstallmentLocked,
			"installment entries cannot be deleted individually; delete the whole purchase",
			domainerror.ErrInstallmentLocked,
		)
	}

	if entry.PaymentMethod == entity.PaymentMethodCredit && entry.CardID != nil {
		if err := uc.ledgerRepo.DeleteWithLimitRelease(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to delete credit entry: %w", err)
		}
	} else {
		if err := uc.ledgerRepo.Delete(ctx, entry.ID); err != nil {
			return nil, fmt.Errorf("failed to delete ledger entry: %w", err)
		}
	}

	return &DeleteEntryOutput{Success: true}, nil
}
