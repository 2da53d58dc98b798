// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HomeCurrency is the pivot currency for all conversions. Its rate is fixed at 1:1.
const HomeCurrency = "BYN"

// Rate represents a published exchange rate for one currency on one date.
// Rate is the amount of home currency paid for Scale units of the currency.
type Rate struct {
	Code  string
	Date  time.Time
	Scale int64
	Rate  decimal.Decimal
}

// HomeRate returns the identity rate for the home currency.
func HomeRate(date time.Time) *Rate {
	return &Rate{
		Code:  HomeCurrency,
		Date:  date,
		Scale: 1,
		Rate:  decimal.NewFromInt(1),
	}
}

// PerUnit returns the home-currency value of a single unit of the currency.
func (r *Rate) PerUnit() decimal.Decimal {
	return r.Rate.Div(decimal.NewFromInt(r.Scale))
}
