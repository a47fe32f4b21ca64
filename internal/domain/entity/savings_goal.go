// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target in the finance dashboard.
type SavingsGoal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	TargetAmount   decimal.Decimal
	SavedAmount    decimal.Decimal
	DeadlineMonths *int // optional horizon in months
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(userID uuid.UUID, name string, targetAmount, savedAmount decimal.Decimal, deadlineMonths *int) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		TargetAmount:   targetAmount,
		SavedAmount:    savedAmount,
		DeadlineMonths: deadlineMonths,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Progress returns how much of the target has been saved, from 0 to 1.
// A goal with a zero target reports full progress.
func (g *SavingsGoal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.NewFromInt(1)
	}
	return g.SavedAmount.DivRound(g.TargetAmount, 4)
}
