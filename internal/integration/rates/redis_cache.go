package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// DefaultCacheTTL is how long a cached rate stays fresh. Published rates do
// not change within a day, so a generous TTL is safe.
const DefaultCacheTTL = 12 * time.Hour

// cachedRate is the JSON shape stored in redis.
type cachedRate struct {
	Code  string          `json:"code"`
	Date  string          `json:"date"`
	Scale int64           `json:"scale"`
	Rate  decimal.Decimal `json:"rate"`
}

// cachedRateProvider wraps a RateProvider with a redis read-through cache.
// Redis failures are logged and fall through to the inner provider.
type cachedRateProvider struct {
	inner  adapter.RateProvider
	client *redis.Client
	ttl    time.Duration
}

// NewCachedRateProvider creates a rate provider that caches lookups in redis.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedRateProvider(inner adapter.RateProvider, client *redis.Client, ttl time.Duration) adapter.RateProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedRateProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

// GetRate returns a cached rate when present, otherwise delegates to the
// inner provider and stores the result.
func (p *cachedRateProvider) GetRate(ctx context.Context, code string, onDate time.Time) (*entity.Rate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == entity.HomeCurrency {
		return entity.HomeRate(onDate), nil
	}

	key := cacheKey(code, onDate)

	raw, err := p.client.Get(ctx, key).Result()
	if err == nil {
		var cached cachedRate
		// A non-positive scale or rate would divide by zero downstream, so a
		// corrupted entry falls through to the provider like a miss.
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && cached.Scale > 0 && cached.Rate.IsPositive() {
			return &entity.Rate{
				Code:  cached.Code,
				Date:  onDate,
				Scale: cached.Scale,
				Rate:  cached.Rate,
			}, nil
		}
		slog.Debug("discarding malformed cached rate", "key", key)
	} else if err != redis.Nil {
		slog.Debug("rate cache read failed", "key", key, "error", err)
	}

	rate, err := p.inner.GetRate(ctx, code, onDate)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedRate{
		Code:  rate.Code,
		Date:  onDate.Format(entity.DateLayout),
		Scale: rate.Scale,
		Rate:  rate.Rate,
	})
	if err == nil {
		if err := p.client.Set(ctx, key, payload, p.ttl).Err(); err != nil {
			slog.Debug("rate cache write failed", "key", key, "error", err)
		}
	}

	return rate, nil
}

func cacheKey(code string, onDate time.Time) string {
	return fmt.Sprintf("fxrate:%s:%s", onDate.Format(entity.DateLayout), code)
}
