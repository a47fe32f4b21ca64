// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// LedgerFilter defines filter options for listing ledger entries.
type LedgerFilter struct {
	UserID         uuid.UUID
	ReferenceMonth string
	Kind           *entity.EntryKind
	Category       string
	PaymentMethod  *entity.PaymentMethod
	CardID         *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
}

// LedgerRepository defines the interface for ledger persistence operations.
type LedgerRepository interface {
	// Create creates a single ledger entry. Used for entries that do not
	// touch a card's used limit (cash, debit, transfer, pix, income).
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// CreatePurchase atomically inserts the given entries (one entry for a
	// single payment, N entries for an installment plan) and increments the
	// card's used limit once by total. Either everything is written or
	// nothing is, so a partial failure can never leave orphaned installments
	// or an unadjusted limit.
	CreatePurchase(ctx context.Context, entries []*entity.LedgerEntry, cardID uuid.UUID, total decimal.Decimal) error

	// FindByID retrieves a ledger entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByFilter retrieves entries matching the filter, newest first.
	FindByFilter(ctx context.Context, filter LedgerFilter) ([]*entity.LedgerEntry, error)

	// FindByPurchase retrieves all installments of a purchase group,
	// ordered by installment index.
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*entity.LedgerEntry, error)

	// FindStatement retrieves the expense entries of a card for one
	// reference month, sorted by date descending.
	FindStatement(ctx context.Context, userID, cardID uuid.UUID, referenceMonth string) ([]*entity.LedgerEntry, error)

	// StatementHistory returns per-month expense totals for a card,
	// newest month first.
	StatementHistory(ctx context.Context, userID, cardID uuid.UUID) ([]*entity.StatementSummary, error)

	// Update updates an existing ledger entry.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// UpdateWithLimitAdjust atomically updates a credit entry and applies
	// delta to the card's used limit, floored at zero. Either both writes
	// commit or neither does, so an amount edit can never leave the ledger
	// and the used credit disagreeing.
	UpdateWithLimitAdjust(ctx context.Context, entry *entity.LedgerEntry, cardID uuid.UUID, delta decimal.Decimal) error

	// Delete soft-deletes a single ledger entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteWithLimitRelease atomically soft-deletes a credit entry and
	// decrements the card's used limit by its amount, floored at zero.
	DeleteWithLimitRelease(ctx context.Context, entry *entity.LedgerEntry) error

	// DeletePurchaseGroup atomically soft-deletes every installment of a
	// purchase group and decrements the card's used limit once by total,
	// floored at zero. Returns the number of deleted entries.
	DeletePurchaseGroup(ctx context.Context, purchaseID, cardID uuid.UUID, total decimal.Decimal) (int64, error)

	// RecordStatementPayment atomically releases amount from the card's used
	// limit, floored at zero, and creates the payment entry when one is
	// given. A nil paymentEntry releases the limit only.
	RecordStatementPayment(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal, paymentEntry *entity.LedgerEntry) error
}
