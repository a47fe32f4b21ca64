// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Fixed bill domain errors.
var (
	// ErrBillNotFound is returned when a fixed bill is not found.
	ErrBillNotFound = errors.New("fixed bill not found")

	// ErrNotAuthorizedToModifyBill is returned when the bill belongs to another user.
	ErrNotAuthorizedToModifyBill = errors.New("not authorized to modify fixed bill")

	// ErrInvalidBillAmount is returned when the bill amount is not positive.
	ErrInvalidBillAmount = errors.New("bill amount must be positive")

	// ErrInvalidBillDueDay is returned when the due day is outside 1-31.
	ErrInvalidBillDueDay = errors.New("bill due day must be between 1 and 31")
)

// BillErrorCode defines error codes for fixed bill errors.
type BillErrorCode string

const (
	ErrCodeBillNotFound      BillErrorCode = "BILL-010001"
	ErrCodeNotAuthorizedBill BillErrorCode = "BILL-010002"
	ErrCodeInvalidBillAmount BillErrorCode = "BILL-010003"
	ErrCodeInvalidBillDueDay BillErrorCode = "BILL-010004"
	ErrCodeMissingBillFields BillErrorCode = "BILL-010005"
)

// BillError represents a fixed bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
