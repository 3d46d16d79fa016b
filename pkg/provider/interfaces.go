package provider

import (
	"context"
	"time"
)

// RateInfo contains information about an exchange rate
type RateInfo struct {
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Rate         float64   `json:"rate"`
	Date         string    `json:"date,omitempty"` // publication date reported by the source
	Timestamp    time.Time `json:"timestamp"`
	Provider     string    `json:"provider"`
}

// RateFetcher defines the interface for fetching exchange rates
type RateFetcher interface {
	// FetchRate gets the exchange rate for a currency pair.
	// Implementations make a single attempt and never retry.
	FetchRate(ctx context.Context, from, to string) (*RateInfo, error)

	// Name returns the provider's name for logging and identification.
	Name() string
}
