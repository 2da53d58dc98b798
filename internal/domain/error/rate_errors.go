// Package error defines domain-specific errors for the Pocketfin application.
package error

import "errors"

// Exchange rate domain errors.
var (
	// ErrRateUnavailable is returned when the rate provider is unreachable or
	// responds with a non-success status.
	ErrRateUnavailable = errors.New("exchange rate unavailable")

	// ErrRateBadPayload is returned when the rate provider's response cannot be
	// parsed or carries a non-finite rate value.
	ErrRateBadPayload = errors.New("malformed exchange rate payload")

	// ErrUnknownCurrency is returned when the currency code is empty.
	ErrUnknownCurrency = errors.New("unknown currency code")

	// ErrInvalidConversionAmount is returned when the amount to convert is not
	// a positive number.
	ErrInvalidConversionAmount = errors.New("invalid conversion amount")

	// ErrInvalidConversionDate is returned when the conversion date is not a
	// valid calendar date.
	ErrInvalidConversionDate = errors.New("invalid conversion date")
)

// RateErrorCode defines error codes for exchange rate errors.
// Format: RAT-XXYYYY where XX is category and YYYY is specific error.
type RateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownCurrency         RateErrorCode = "RAT-010001"
	ErrCodeInvalidConversionAmount RateErrorCode = "RAT-010002"
	ErrCodeInvalidConversionDate   RateErrorCode = "RAT-010003"

	// Lookup errors (02XXXX)
	ErrCodeRateUnavailable RateErrorCode = "RAT-020001"
	ErrCodeRateBadPayload  RateErrorCode = "RAT-020002"
)

// RateError represents an exchange rate error with code and message.
type RateError struct {
	Code    RateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RateError) Unwrap() error {
	return e.Err
}

// NewRateError creates a new RateError with the given code and message.
func NewRateError(code RateErrorCode, message string, err error) *RateError {
	return &RateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
