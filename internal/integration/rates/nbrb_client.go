// Package rates implements the exchange rate provider against the National
// Bank of the Republic of Belarus public API.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// DefaultBaseURL is the production endpoint of the NBRB rates API.
const DefaultBaseURL = "https://api.nbrb.by"

const requestTimeout = 10 * time.Second

// ratePayload mirrors the NBRB response body for a single rate lookup.
type ratePayload struct {
	CurAbbreviation string          `json:"Cur_Abbreviation"`
	CurScale        int64           `json:"Cur_Scale"`
	CurOfficialRate decimal.Decimal `json:"Cur_OfficialRate"`
	Date            string          `json:"Date"`
}

// nbrbClient implements adapter.RateProvider against the NBRB HTTP API.
type nbrbClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNBRBClient creates a rate provider backed by the NBRB public API.
// An empty baseURL falls back to DefaultBaseURL.
func NewNBRBClient(baseURL string) adapter.RateProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &nbrbClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// GetRate returns the published rate for the currency on the given date.
// The home currency resolves to the identity rate without a network call.
func (c *nbrbClient) GetRate(ctx context.Context, code string, onDate time.Time) (*entity.Rate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domainerror.NewRateError(domainerror.ErrCodeUnknownCurrency, "currency code is required", domainerror.ErrUnknownCurrency)
	}
	if code == entity.HomeCurrency {
		return entity.HomeRate(onDate), nil
	}

	endpoint := fmt.Sprintf("%s/exrates/rates/%s?parammode=2&ondate=%s",
		c.baseURL, url.PathEscape(code), onDate.Format(entity.DateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerror.NewRateError(domainerror.ErrCodeRateUnavailable,
			fmt.Sprintf("rate lookup failed for %s", code), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerror.NewRateError(domainerror.ErrCodeRateUnavailable,
			fmt.Sprintf("rate provider returned status %d for %s", resp.StatusCode, code), domainerror.ErrRateUnavailable)
	}

	var payload ratePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerror.NewRateError(domainerror.ErrCodeRateBadPayload,
			fmt.Sprintf("failed to decode rate payload for %s", code), err)
	}

	if payload.CurScale <= 0 || !payload.CurOfficialRate.IsPositive() {
		return nil, domainerror.NewRateError(domainerror.ErrCodeRateBadPayload,
			fmt.Sprintf("rate payload for %s carries a non-positive scale or rate", code), domainerror.ErrRateBadPayload)
	}

	return &entity.Rate{
		Code:  code,
		Date:  onDate,
		Scale: payload.CurScale,
		Rate:  payload.CurOfficialRate,
	}, nil
}
