// Package fx contains currency conversion use cases.
package fx

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// ConvertInput represents a currency conversion request. Amount arrives as
// raw text; Date is optional and defaults to the current calendar date.
type ConvertInput struct {
	Amount string
	From   string
	To     string
	Date   string
}

// ConvertOutput represents the conversion result.
type ConvertOutput struct {
	Amount decimal.Decimal // Input amount as parsed
	Result decimal.Decimal // Converted amount, rounded to 2 decimal places
	From   string
	To     string
	Date   time.Time

	// FromPerUnit/ToPerUnit are the home-currency values of one unit of each
	// currency on the requested date.
	FromPerUnit decimal.Decimal
	ToPerUnit   decimal.Decimal
}

// ConvertUseCase converts an amount between currencies using the home
// currency as pivot. Conversion is read-only; a failed rate lookup never
// touches local state and the caller may simply retry.
type ConvertUseCase struct {
	rates adapter.RateProvider
}

// NewConvertUseCase creates a new ConvertUseCase instance.
func NewConvertUseCase(rates adapter.RateProvider) *ConvertUseCase {
	return &ConvertUseCase{
		rates: rates,
	}
}

// Execute performs the conversion. Converting a currency to itself returns
// the amount unchanged without any rate lookup.
func (uc *ConvertUseCase) Execute(ctx context.Context, input ConvertInput) (*ConvertOutput, error) {
	amount, err := entity.ParseAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewRateError(
			domainerror.ErrCodeInvalidConversionAmount,
			"amount must be a number greater than zero",
			domainerror.ErrInvalidConversionAmount,
		)
	}

	from := strings.ToUpper(strings.TrimSpace(input.From))
	to := strings.ToUpper(strings.TrimSpace(input.To))
	if from == "" || to == "" {
		return nil, domainerror.NewRateError(
			domainerror.ErrCodeUnknownCurrency,
			"currency codes must not be empty",
			domainerror.ErrUnknownCurrency,
		)
	}

	var date time.Time
	if dateStr := strings.TrimSpace(input.Date); dateStr == "" {
		now := time.Now().UTC()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		date, err = time.ParseInLocation(entity.DateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, domainerror.NewRateError(
				domainerror.ErrCodeInvalidConversionDate,
				"date must be a calendar date in YYYY-MM-DD format",
				domainerror.ErrInvalidConversionDate,
			)
		}
	}

	if from == to {
		one := decimal.NewFromInt(1)
		return &ConvertOutput{
			Amount:      amount,
			Result:      amount,
			From:        from,
			To:          to,
			Date:        date,
			FromPerUnit: one,
			ToPerUnit:   one,
		}, nil
	}

	var rateFrom, rateTo *entity.Rate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rateFrom, err = uc.rates.GetRate(gctx, from, date)
		return err
	})
	g.Go(func() error {
		var err error
		rateTo, err = uc.rates.GetRate(gctx, to, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fromPerUnit := rateFrom.PerUnit()
	toPerUnit := rateTo.PerUnit()

	// Pivot through the home currency: amount -> home -> target.
	home := amount.Mul(fromPerUnit)
	result := home.Div(toPerUnit)

	return &ConvertOutput{
		Amount:      amount,
		Result:      result.Round(2),
		From:        from,
		To:          to,
		Date:        date,
		FromPerUnit: fromPerUnit,
		ToPerUnit:   toPerUnit,
	}, nil
}
