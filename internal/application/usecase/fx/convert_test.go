// Package fx contains currency conversion use cases.
package fx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// fakeRateProvider returns canned rates and counts lookups.
type fakeRateProvider struct {
	rates   map[string]*entity.Rate
	lookups int
}

func (p *fakeRateProvider) GetRate(_ context.Context, code string, onDate time.Time) (*entity.Rate, error) {
	p.lookups++
	if code == entity.HomeCurrency {
		return entity.HomeRate(onDate), nil
	}
	rate, ok := p.rates[code]
	if !ok {
		return nil, domainerror.NewRateError(domainerror.ErrCodeRateUnavailable, "no rate for "+code, domainerror.ErrRateUnavailable)
	}
	return rate, nil
}

func newFakeRateProvider() *fakeRateProvider {
	return &fakeRateProvider{
		rates: map[string]*entity.Rate{
			// 1 USD = 3.25 BYN
			"USD": {Code: "USD", Scale: 1, Rate: decimal.RequireFromString("3.25")},
			// 100 RUB = 3.60 BYN
			"RUB": {Code: "RUB", Scale: 100, Rate: decimal.RequireFromString("3.60")},
			// 1 EUR = 3.50 BYN
			"EUR": {Code: "EUR", Scale: 1, Rate: decimal.RequireFromString("3.50")},
		},
	}
}

func TestConvertUseCase_Execute(t *testing.T) {
	t.Run("converts through the home currency pivot", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())

		output, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "100",
			From:   "USD",
			To:     "EUR",
			Date:   "2025-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 100 USD -> 325 BYN -> 92.857... EUR, rounded to 2 places.
		if !output.Result.Equal(decimal.RequireFromString("92.86")) {
			t.Errorf("expected 92.86, got %s", output.Result)
		}
	})

	t.Run("scale is applied per unit", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())

		output, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "1000",
			From:   "RUB",
			To:     "BYN",
			Date:   "2025-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 1000 RUB at 3.60 per 100 = 36 BYN.
		if !output.Result.Equal(decimal.RequireFromString("36")) {
			t.Errorf("expected 36, got %s", output.Result)
		}
	})

	t.Run("converting to the home currency uses the identity rate", func(t *testing.T) {
		provider := newFakeRateProvider()
		uc := NewConvertUseCase(provider)

		output, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "10",
			From:   "USD",
			To:     "BYN",
			Date:   "2025-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Result.Equal(decimal.RequireFromString("32.5")) {
			t.Errorf("expected 32.5, got %s", output.Result)
		}
		if !output.ToPerUnit.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected home per-unit rate 1, got %s", output.ToPerUnit)
		}
	})

	t.Run("same currency skips lookups entirely", func(t *testing.T) {
		provider := newFakeRateProvider()
		uc := NewConvertUseCase(provider)

		output, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "42.42",
			From:   "usd",
			To:     "USD",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Result.Equal(decimal.RequireFromString("42.42")) {
			t.Errorf("expected the amount unchanged, got %s", output.Result)
		}
		if provider.lookups != 0 {
			t.Errorf("expected no rate lookups, got %d", provider.lookups)
		}
	})

	t.Run("round trip stays within rounding tolerance", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())

		there, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "100",
			From:   "USD",
			To:     "EUR",
			Date:   "2025-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		back, err := uc.Execute(context.Background(), ConvertInput{
			Amount: there.Result.String(),
			From:   "EUR",
			To:     "USD",
			Date:   "2025-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		diff := back.Result.Sub(decimal.RequireFromString("100")).Abs()
		if diff.GreaterThan(decimal.RequireFromString("0.01")) {
			t.Errorf("expected round trip within 0.01, got %s off", diff)
		}
	})

	t.Run("rejects invalid amount", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())
		_, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "-5",
			From:   "USD",
			To:     "EUR",
		})
		var rateErr *domainerror.RateError
		if !errors.As(err, &rateErr) {
			t.Fatalf("expected a RateError, got %T: %v", err, err)
		}
		if rateErr.Code != domainerror.ErrCodeInvalidConversionAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidConversionAmount, rateErr.Code)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())
		_, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "5",
			From:   "USD",
			To:     "EUR",
			Date:   "15-03-2025",
		})
		var rateErr *domainerror.RateError
		if !errors.As(err, &rateErr) {
			t.Fatalf("expected a RateError, got %T: %v", err, err)
		}
		if rateErr.Code != domainerror.ErrCodeInvalidConversionDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidConversionDate, rateErr.Code)
		}
	})

	t.Run("rejects empty currency codes", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())
		_, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "5",
			From:   "",
			To:     "EUR",
		})
		var rateErr *domainerror.RateError
		if !errors.As(err, &rateErr) {
			t.Fatalf("expected a RateError, got %T: %v", err, err)
		}
		if rateErr.Code != domainerror.ErrCodeUnknownCurrency {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnknownCurrency, rateErr.Code)
		}
	})

	t.Run("propagates rate lookup failures", func(t *testing.T) {
		uc := NewConvertUseCase(newFakeRateProvider())
		_, err := uc.Execute(context.Background(), ConvertInput{
			Amount: "5",
			From:   "XXX",
			To:     "EUR",
		})
		var rateErr *domainerror.RateError
		if !errors.As(err, &rateErr) {
			t.Fatalf("expected a RateError, got %T: %v", err, err)
		}
		if rateErr.Code != domainerror.ErrCodeRateUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateUnavailable, rateErr.Code)
		}
	})
}
