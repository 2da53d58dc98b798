// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// RateProvider defines the interface for exchange rate lookups.
// The home currency always resolves to the identity rate without a lookup.
type RateProvider interface {
	// GetRate returns the published rate for the currency on the given date.
	GetRate(ctx context.Context, code string, onDate time.Time) (*entity.Rate, error)
}
