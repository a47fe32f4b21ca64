// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Card domain errors.
var (
	// ErrCardNotFound is returned when a card is not found in the system.
	ErrCardNotFound = errors.New("card not found")

	// ErrNotAuthorizedToModifyCard is returned when the card belongs to another user.
	ErrNotAuthorizedToModifyCard = errors.New("not authorized to modify card")

	// ErrInvalidCardBrand is returned when the card brand is not an accepted network.
	ErrInvalidCardBrand = errors.New("invalid card brand")

	// ErrInvalidCardLimit is returned when the total limit is not positive.
	ErrInvalidCardLimit = errors.New("card limit must be positive")

	// ErrInvalidCycleDay is returned when a closing or due day is outside 1-31.
	ErrInvalidCycleDay = errors.New("cycle day must be between 1 and 31")

	// ErrCardHasEntries is returned when deleting a card that ledger entries
	// still reference. Deletion is blocked rather than cascaded so purchase
	// history is never silently dropped.
	ErrCardHasEntries = errors.New("card has ledger entries and cannot be deleted")
)

// CardErrorCode defines error codes for card errors.
type CardErrorCode string

const (
	ErrCodeCardNotFound      CardErrorCode = "CARD-010001"
	ErrCodeNotAuthorizedCard CardErrorCode = "CARD-010002"
	ErrCodeInvalidCardBrand  CardErrorCode = "CARD-010003"
	ErrCodeInvalidCardLimit  CardErrorCode = "CARD-010004"
	ErrCodeInvalidCycleDay   CardErrorCode = "CARD-010005"
	ErrCodeCardHasEntries    CardErrorCode = "CARD-020001"
	ErrCodeMissingCardFields CardErrorCode = "CARD-010006"
)

// CardError represents a card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
