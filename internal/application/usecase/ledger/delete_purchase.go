// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeletePurchaseInput represents the input for purchase group deletion.
type DeletePurchaseInput struct {
	PurchaseID uuid.UUID
	UserID     uuid.UUID
}

// DeletePurchaseOutput represents the output of purchase group deletion.
type DeletePurchaseOutput struct {
	DeletedCount int64
}

// DeletePurchaseUseCase removes every installment of a parceled purchase
// and releases the purchase total from the card's used limit once.
type DeletePurchaseUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeletePurchaseUseCase creates a new DeletePurchaseUseCase instance.
func NewDeletePurchaseUseCase(ledgerRepo adapter.LedgerRepository) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the purchase group deletion.
func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, input DeletePurchaseInput) (*DeletePurchaseOutput, error) {
	entries, err := uc.ledgerRepo.FindByPurchase(ctx, input.PurchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	if len(entries) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePurchaseNotFound,
			"purchase not found",
			domainerror.ErrPurchaseNotFound,
		)
	}

	if entries[0].UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to delete this purchase",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if entries[0].CardID == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePurchaseNotFound,
			"purchase has no card reference",
			domainerror.ErrPurchaseNotFound,
		)
	}

	// The group's amounts sum back to the original purchase total, so the
	// used limit is released by exactly what the purchase reserved.
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}

	deleted, err := uc.ledgerRepo.DeletePurchaseGroup(ctx, input.PurchaseID, *entries[0].CardID, total)
	if err != nil {
		return nil, fmt.Errorf("failed to delete purchase: %w", err)
	}

	return &DeletePurchaseOutput{DeletedCount: deleted}, nil
}
