package rates

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// countingProvider wraps canned rates and records how often it is asked.
type countingProvider struct {
	rate  *entity.Rate
	calls int
}

func (p *countingProvider) GetRate(_ context.Context, code string, onDate time.Time) (*entity.Rate, error) {
	p.calls++
	return p.rate, nil
}

func newCacheFixture(t *testing.T) (*countingProvider, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	provider := &countingProvider{
		rate: &entity.Rate{
			Code:  "USD",
			Scale: 1,
			Rate:  decimal.RequireFromString("3.25"),
		},
	}
	return provider, client, mr
}

func TestCachedRateProvider_GetRate(t *testing.T) {
	date, _ := time.ParseInLocation(entity.DateLayout, "2025-03-15", time.UTC)

	t.Run("first lookup misses and populates the cache", func(t *testing.T) {
		provider, client, mr := newCacheFixture(t)
		cached := NewCachedRateProvider(provider, client, time.Hour)

		rate, err := cached.GetRate(context.Background(), "USD", date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("expected 1 provider call, got %d", provider.calls)
		}
		if !rate.Rate.Equal(decimal.RequireFromString("3.25")) {
			t.Errorf("expected rate 3.25, got %s", rate.Rate)
		}
		if !mr.Exists("fxrate:2025-03-15:USD") {
			t.Error("expected the rate to be cached")
		}
	})

	t.Run("second lookup is served from the cache", func(t *testing.T) {
		provider, client, _ := newCacheFixture(t)
		cached := NewCachedRateProvider(provider, client, time.Hour)

		if _, err := cached.GetRate(context.Background(), "USD", date); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rate, err := cached.GetRate(context.Background(), "USD", date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("expected the second lookup to hit the cache, provider calls: %d", provider.calls)
		}
		if !rate.Rate.Equal(decimal.RequireFromString("3.25")) {
			t.Errorf("expected rate 3.25, got %s", rate.Rate)
		}
	})

	t.Run("different dates cache independently", func(t *testing.T) {
		provider, client, _ := newCacheFixture(t)
		cached := NewCachedRateProvider(provider, client, time.Hour)

		otherDate := date.AddDate(0, 0, 1)
		if _, err := cached.GetRate(context.Background(), "USD", date); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := cached.GetRate(context.Background(), "USD", otherDate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 2 {
			t.Errorf("expected 2 provider calls for 2 dates, got %d", provider.calls)
		}
	})

	t.Run("home currency bypasses redis", func(t *testing.T) {
		provider, client, mr := newCacheFixture(t)
		cached := NewCachedRateProvider(provider, client, time.Hour)

		rate, err := cached.GetRate(context.Background(), entity.HomeCurrency, date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 0 {
			t.Errorf("expected no provider calls, got %d", provider.calls)
		}
		if len(mr.Keys()) != 0 {
			t.Error("expected no cache writes for the home currency")
		}
		if !rate.Rate.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected identity rate, got %s", rate.Rate)
		}
	})

	t.Run("corrupted cache entry falls through to the provider", func(t *testing.T) {
		provider, client, mr := newCacheFixture(t)
		cached := NewCachedRateProvider(provider, client, time.Hour)

		// Valid JSON with a zero scale must not reach per-unit division.
		if err := mr.Set("fxrate:2025-03-15:USD", `{"code":"USD","date":"2025-03-15","scale":0,"rate":"3.25"}`); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		rate, err := cached.GetRate(context.Background(), "USD", date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("expected the corrupted entry to be ignored, provider calls: %d", provider.calls)
		}
		if rate.Scale != 1 || !rate.Rate.Equal(decimal.RequireFromString("3.25")) {
			t.Errorf("expected the provider rate, got %+v", rate)
		}
	})

	t.Run("redis outage falls through to the provider", func(t *testing.T) {
		provider, client, mr := newCacheFixture(t)
		cached := NewCachedRateProvider(provider, client, time.Hour)
		mr.Close()

		rate, err := cached.GetRate(context.Background(), "USD", date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("expected 1 provider call, got %d", provider.calls)
		}
		if !rate.Rate.Equal(decimal.RequireFromString("3.25")) {
			t.Errorf("expected rate 3.25, got %s", rate.Rate)
		}
	})
}
