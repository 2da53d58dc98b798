// Package error defines domain-specific errors for the Pocketfin application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyGoalTitle is returned when the goal title is empty after trimming.
	ErrEmptyGoalTitle = errors.New("goal title must not be empty")

	// ErrInvalidGoalTarget is returned when the target is not a positive number.
	ErrInvalidGoalTarget = errors.New("invalid goal target")

	// ErrInvalidAllocationAmount is returned when the allocation amount is not a positive number.
	ErrInvalidAllocationAmount = errors.New("invalid allocation amount")

	// ErrUnknownAccount is returned when the account is not one of the enumerated accounts.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrInsufficientFunds is returned when an allocation exceeds the account's uncommitted funds.
	ErrInsufficientFunds = errors.New("insufficient uncommitted funds")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyGoalTitle          GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalTarget       GoalErrorCode = "GOL-010002"
	ErrCodeInvalidAllocationAmount GoalErrorCode = "GOL-010003"
	ErrCodeUnknownAccount          GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields       GoalErrorCode = "GOL-010005"

	// Funds errors (02XXXX)
	ErrCodeInsufficientFunds GoalErrorCode = "GOL-020001"

	// Not-found errors (03XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-030001"
)

// GoalError represents a goal error with code and message.
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
