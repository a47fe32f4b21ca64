// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Loan domain errors.
var (
	// ErrLoanNotFound is returned when no financing record exists for the kind.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrInvalidLoanKind is returned when the loan kind is not home or auto.
	ErrInvalidLoanKind = errors.New("invalid loan kind")

	// ErrInvalidLoanValues is returned when monetary fields are negative or
	// installment counts are inconsistent.
	ErrInvalidLoanValues = errors.New("invalid loan values")
)

// LoanErrorCode defines error codes for loan errors.
type LoanErrorCode string

const (
	ErrCodeLoanNotFound      LoanErrorCode = "LOAN-010001"
	ErrCodeInvalidLoanKind   LoanErrorCode = "LOAN-010002"
	ErrCodeInvalidLoanValues LoanErrorCode = "LOAN-010003"
)

// LoanError represents a loan error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
