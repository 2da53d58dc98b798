// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Epsilon absorbs floating-point noise in money comparisons.
var Epsilon = decimal.New(1, -9) // 1e-9

// ErrNotAPositiveAmount is returned when an entered amount does not parse to a
// finite number greater than zero.
var ErrNotAPositiveAmount = errors.New("amount must be a number greater than zero")

// ParseAmount parses a user-entered money amount. Whitespace is stripped and
// both '.' and ',' are accepted as the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return decimal.Zero, ErrNotAPositiveAmount
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrNotAPositiveAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNotAPositiveAmount
	}
	return amount, nil
}
