// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrPurchaseNotFound is returned when an installment purchase group is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrNotAuthorizedToModifyEntry is returned when the entry belongs to another user.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify ledger entry")

	// ErrInvalidEntryKind is returned when the entry kind is invalid.
	ErrInvalidEntryKind = errors.New("invalid entry kind")

	// ErrInvalidEntryAmount is returned when the amount is not positive.
	ErrInvalidEntryAmount = errors.New("entry amount must be positive")

	// ErrInvalidPaymentMethod is returned when the payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrCardRequiredForCredit is returned when a credit entry has no card.
	ErrCardRequiredForCredit = errors.New("credit entries require a card")

	// ErrInvalidInstallmentCount is returned when the installment count is outside 1-48.
	ErrInvalidInstallmentCount = errors.New("invalid installment count")

	// ErrInvalidReferenceMonth is returned when a reference month is malformed.
	ErrInvalidReferenceMonth = errors.New("reference month must be in YYYY-MM format")

	// ErrInstallmentLocked is returned when editing or deleting a single
	// installment of a parceled purchase. The whole group must be deleted
	// and recreated instead.
	ErrInstallmentLocked = errors.New("installment entries cannot be modified individually")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")
)

// LedgerErrorCode defines error codes for ledger errors.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryKind        LedgerErrorCode = "LED-010001"
	ErrCodeInvalidEntryAmount      LedgerErrorCode = "LED-010002"
	ErrCodeInvalidPaymentMethod    LedgerErrorCode = "LED-010003"
	ErrCodeCardRequiredForCredit   LedgerErrorCode = "LED-010004"
	ErrCodeInvalidInstallmentCount LedgerErrorCode = "LED-010005"
	ErrCodeInvalidReferenceMonth   LedgerErrorCode = "LED-010006"
	ErrCodeEntryDescriptionTooLong LedgerErrorCode = "LED-010007"
	ErrCodeEntryNotesTooLong       LedgerErrorCode = "LED-010008"
	ErrCodeMissingEntryFields      LedgerErrorCode = "LED-010009"
	ErrCodeInvalidEntryDate        LedgerErrorCode = "LED-010010"

	// Lookup/authorization errors (02XXXX)
	ErrCodeEntryNotFound      LedgerErrorCode = "LED-020001"
	ErrCodePurchaseNotFound   LedgerErrorCode = "LED-020002"
	ErrCodeNotAuthorizedEntry LedgerErrorCode = "LED-020003"
	ErrCodeLedgerCardNotFound LedgerErrorCode = "LED-020004"

	// Policy errors (03XXXX)
	ErrCodeInstallmentLocked LedgerErrorCode = "LED-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
