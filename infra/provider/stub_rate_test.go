package provider

import (
	"context"
	"testing"

	"github.com/amirasaad/priceconv/pkg/currency"
	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubRateProvider(t *testing.T) {
	p := NewStubRateProvider(currency.DefaultPair, 0.5)

	info, err := p.FetchRate(context.Background(), "ILS", "CAD")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, info.Rate, 1e-12)
	assert.Equal(t, "stub", info.Provider)

	_, err = p.FetchRate(context.Background(), "CAD", "ILS")
	require.ErrorIs(t, err, domain.ErrUnsupportedPair)

	_, err = p.FetchRate(context.Background(), "USD", "CAD")
	require.ErrorIs(t, err, domain.ErrUnsupportedPair)
}
