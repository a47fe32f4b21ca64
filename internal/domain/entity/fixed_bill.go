// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedBill represents a recurring monthly bill (rent, utilities, subscriptions).
type FixedBill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	DueDay    int // day of month the bill is due (1-31)
	Category  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewFixedBill creates a new FixedBill entity, active by default.
func NewFixedBill(userID uuid.UUID, name string, amount decimal.Decimal, dueDay int, category string) *FixedBill {
	now := time.Now().UTC()

	return &FixedBill{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		DueDay:    dueDay,
		Category:  category,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
