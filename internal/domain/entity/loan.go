// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanKind distinguishes the two financing records a user may keep.
type LoanKind string

const (
	LoanKindHome LoanKind = "home"
	LoanKindAuto LoanKind = "auto"
)

// ValidLoanKind reports whether kind is a known financing kind.
func ValidLoanKind(kind LoanKind) bool {
	return kind == LoanKindHome || kind == LoanKindAuto
}

// Loan represents a long-term financing record (home or auto). Each user
// keeps at most one record per kind; saving again replaces the fields.
// Amortization is a flat installment split; no interest accrual is computed.
type Loan struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Kind              LoanKind
	TotalValue        decimal.Decimal
	FinancedValue     decimal.Decimal
	DownPayment       decimal.Decimal // auto only
	InstallmentValue  decimal.Decimal
	InstallmentsTotal int
	InstallmentsPaid  int
	InterestRate      decimal.Decimal // yearly percentage, informational
	ConstructionRate  decimal.Decimal // home only ("taxa de obra")
	CarModel          string          // auto only
	StartDate         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewLoan creates a new Loan entity.
func NewLoan(userID uuid.UUID, kind LoanKind) *Loan {
	now := time.Now().UTC()

	return &Loan{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RemainingInstallments returns how many installments are still open.
func (l *Loan) RemainingInstallments() int {
	remaining := l.InstallmentsTotal - l.InstallmentsPaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OutstandingBalance returns the flat value of the open installments.
func (l *Loan) OutstandingBalance() decimal.Decimal {
	return l.InstallmentValue.Mul(decimal.NewFromInt(int64(l.RemainingInstallments())))
}
