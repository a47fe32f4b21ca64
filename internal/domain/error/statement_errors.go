// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Statement domain errors.
var (
	// ErrInvalidPaymentAmount is returned when a statement payment is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

// StatementErrorCode defines error codes for statement errors.
type StatementErrorCode string

const (
	ErrCodeInvalidStatementMonth  StatementErrorCode = "STM-010001"
	ErrCodeInvalidPaymentAmount   StatementErrorCode = "STM-010002"
	ErrCodeStatementCardNotFound  StatementErrorCode = "STM-020001"
	ErrCodeNotAuthorizedStatement StatementErrorCode = "STM-020002"
)

// StatementError represents a statement error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
