package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/priceconv/pkg/currency"
	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/amirasaad/priceconv/pkg/provider"
)

// StubRateProvider answers every request with a fixed rate and never touches
// the network. Only the configured pair is supported.
type StubRateProvider struct {
	pair currency.Pair
	rate float64
}

// NewStubRateProvider creates a StubRateProvider quoting rate for pair.
func NewStubRateProvider(pair currency.Pair, rate float64) *StubRateProvider {
	return &StubRateProvider{pair: pair, rate: rate}
}

func (s *StubRateProvider) FetchRate(ctx context.Context, from, to string) (*provider.RateInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pair, err := currency.NewPair(from, to)
	if err != nil {
		return nil, err
	}
	if pair != s.pair {
		return nil, fmt.Errorf("%w: stub only quotes %s, got %s", domain.ErrUnsupportedPair, s.pair, pair)
	}
	return &provider.RateInfo{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         s.rate,
		Timestamp:    time.Now(),
		Provider:     s.Name(),
	}, nil
}

func (s *StubRateProvider) Name() string {
	return "stub"
}

var _ provider.RateFetcher = (*StubRateProvider)(nil)
