// Package error defines domain-specific errors for the Pocketfin application.
package error

import "errors"

// Profile and authentication domain errors.
var (
	// ErrProfileNotFound is returned when a profile is not found in the system.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned when a profile with the same name already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrEmptyProfileName is returned when the profile name is empty after trimming.
	ErrEmptyProfileName = errors.New("profile name must not be empty")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidCredentials is returned when name/password verification fails.
	ErrInvalidCredentials = errors.New("invalid profile name or password")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid token")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyProfileName     ProfileErrorCode = "PRF-010001"
	ErrCodeWeakPassword         ProfileErrorCode = "PRF-010002"
	ErrCodeProfileAlreadyExists ProfileErrorCode = "PRF-010003"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials ProfileErrorCode = "PRF-020001"
	ErrCodeMissingToken       ProfileErrorCode = "PRF-020002"
	ErrCodeInvalidToken       ProfileErrorCode = "PRF-020003"
	ErrCodeTooManyRequests    ProfileErrorCode = "PRF-020004"

	// Not-found errors (03XXXX)
	ErrCodeProfileNotFound ProfileErrorCode = "PRF-030001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
