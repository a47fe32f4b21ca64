// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind represents the kind of ledger entry (expense or income).
type EntryKind string

const (
	EntryKindExpense EntryKind = "expense"
	EntryKindIncome  EntryKind = "income"
)

// PaymentMethod represents how a ledger entry was paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodDebit    PaymentMethod = "debit"
	PaymentMethodCredit   PaymentMethod = "credit"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodPix      PaymentMethod = "pix"
)

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodDebit,
	PaymentMethodCredit,
	PaymentMethodTransfer,
	PaymentMethodPix,
}

// ValidPaymentMethod reports whether method is one of the accepted methods.
func ValidPaymentMethod(method PaymentMethod) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// SinglePaymentLabel is the statement label for a non-installment purchase.
// The literal value matches what the dashboard has always displayed.
const SinglePaymentLabel = "À vista"

// LedgerEntry represents one dated monetary entry in the monthly ledger.
//
// ReferenceMonth is the "YYYY-MM" bucket the entry belongs to. For plain
// entries it is derived from Date; for installments it is shifted forward
// per installment index, so a purchase made in January with 3 installments
// produces entries in the January, February and March buckets.
//
// Entries created by splitting one purchase share a PurchaseID and carry
// InstallmentIndex (1-based) and InstallmentCount. Their amounts always sum
// to the original purchase total.
type LedgerEntry struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Kind             EntryKind
	Category         string
	Description      string
	Amount           decimal.Decimal // always positive; Kind carries the sign
	Date             time.Time
	ReferenceMonth   string
	PaymentMethod    PaymentMethod
	BankAccount      string
	CardID           *uuid.UUID // required iff PaymentMethod is credit
	PurchaseID       *uuid.UUID // shared by all installments of one purchase
	InstallmentIndex *int
	InstallmentCount *int
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewLedgerEntry creates a new non-installment LedgerEntry entity.
func NewLedgerEntry(
	userID uuid.UUID,
	kind EntryKind,
	category string,
	description string,
	amount decimal.Decimal,
	date time.Time,
	referenceMonth string,
	paymentMethod PaymentMethod,
	bankAccount string,
	cardID *uuid.UUID,
	notes string,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Kind:           kind,
		Category:       category,
		Description:    description,
		Amount:         amount,
		Date:           date,
		ReferenceMonth: referenceMonth,
		PaymentMethod:  paymentMethod,
		BankAccount:    bankAccount,
		CardID:         cardID,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsInstallment reports whether the entry is part of a parceled purchase.
func (e *LedgerEntry) IsInstallment() bool {
	return e.InstallmentCount != nil && *e.InstallmentCount > 1
}

// InstallmentLabel returns the human label shown on statements:
// "i/N" for installments, "À vista" otherwise.
func (e *LedgerEntry) InstallmentLabel() string {
	if e.IsInstallment() && e.InstallmentIndex != nil {
		return fmt.Sprintf("%d/%d", *e.InstallmentIndex, *e.InstallmentCount)
	}
	return SinglePaymentLabel
}
