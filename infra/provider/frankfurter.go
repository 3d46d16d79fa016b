package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirasaad/priceconv/pkg/config"
	"github.com/amirasaad/priceconv/pkg/converter"
	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/amirasaad/priceconv/pkg/provider"
)

// FrankfurterProvider implements provider.RateFetcher for api.frankfurter.dev
type FrankfurterProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// FrankfurterResponse represents the /latest response.
// Example: {"amount":1.0,"base":"ILS","date":"2025-01-10","rates":{"CAD":0.3921}}
type FrankfurterResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// NewFrankfurterProvider creates a new Frankfurter provider using config
func NewFrankfurterProvider(cfg *config.ExchangeRateProvider, logger *slog.Logger) *FrankfurterProvider {
	return &FrankfurterProvider{
		baseURL: strings.TrimRight(cfg.ApiUrl, "/"), // Should be like https://api.frankfurter.dev/v1
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger.With("provider", "frankfurter"),
	}
}

// FetchRate fetches the latest rate for from→to with a single GET.
func (p *FrankfurterProvider) FetchRate(ctx context.Context, from, to string) (*provider.RateInfo, error) {
	q := url.Values{}
	q.Set("base", from)
	q.Set("symbols", to)
	endpoint := p.baseURL + "/latest?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	p.logger.Debug("Fetching exchange rate", "url", endpoint)
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRateUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: API returned status %d: %s",
			domain.ErrRateUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp FrankfurterResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrRateUnavailable, err)
	}

	rate, ok := apiResp.Rates[to]
	if !ok {
		return nil, fmt.Errorf("%w: currency %s not found in response", domain.ErrRateUnavailable, to)
	}
	if !converter.ValidRate(rate) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRate, rate)
	}

	return &provider.RateInfo{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		Date:         apiResp.Date,
		Timestamp:    time.Now(),
		Provider:     p.Name(),
	}, nil
}

// Name returns the provider's name
func (p *FrankfurterProvider) Name() string {
	return "frankfurter"
}

// Ensure FrankfurterProvider implements provider.RateFetcher
var _ provider.RateFetcher = (*FrankfurterProvider)(nil)
