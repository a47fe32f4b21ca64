// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a JWT token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTokenRevoked is returned when a refresh token was invalidated by logout.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrInvalidResetToken is returned when a password reset token is invalid or used.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")
)

// AuthErrorCode defines error codes for auth errors.
type AuthErrorCode string

const (
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010003"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010004"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010005"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020002"
	ErrCodeTokenRevoked       AuthErrorCode = "AUTH-020003"
	ErrCodeInvalidResetToken  AuthErrorCode = "AUTH-020004"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
