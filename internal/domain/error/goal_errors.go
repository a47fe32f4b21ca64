// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrNotAuthorizedToModifyGoal is returned when the goal belongs to another user.
	ErrNotAuthorizedToModifyGoal = errors.New("not authorized to modify savings goal")

	// ErrInvalidGoalAmount is returned when the target amount is not positive
	// or the saved amount is negative.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")

	// ErrInvalidGoalDeadline is returned when the deadline is outside 1-600 months.
	ErrInvalidGoalDeadline = errors.New("goal deadline must be between 1 and 600 months")
)

// GoalErrorCode defines error codes for savings goal errors.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound        GoalErrorCode = "GOAL-010001"
	ErrCodeNotAuthorizedGoal   GoalErrorCode = "GOAL-010002"
	ErrCodeInvalidGoalAmount   GoalErrorCode = "GOAL-010003"
	ErrCodeInvalidGoalDeadline GoalErrorCode = "GOAL-010004"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOAL-010005"
)

// GoalError represents a savings goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
