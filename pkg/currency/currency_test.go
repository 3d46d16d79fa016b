package currency

import (
	"testing"

	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	meta, ok := Get(" ils ")
	require.True(t, ok)
	assert.Equal(t, "₪", meta.Symbol)
	assert.Equal(t, "kg", meta.WeightUnit)

	_, ok = Get("USD")
	assert.False(t, ok)
}

func TestNewPair(t *testing.T) {
	p, err := NewPair("ILS", "CAD")
	require.NoError(t, err)
	assert.Equal(t, DefaultPair, p)
	assert.Equal(t, "ILS/CAD", p.String())

	_, err = NewPair("ILS", "ILS")
	require.ErrorIs(t, err, domain.ErrUnsupportedPair)

	_, err = NewPair("USD", "CAD")
	require.ErrorIs(t, err, domain.ErrUnsupportedPair)
}

func TestPair_Oriented(t *testing.T) {
	src, dst := DefaultPair.Oriented(false)
	assert.Equal(t, "ILS", src.Code)
	assert.Equal(t, "CAD", dst.Code)

	src, dst = DefaultPair.Oriented(true)
	assert.Equal(t, "CAD", src.Code)
	assert.Equal(t, "ILS", dst.Code)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$43.66", CAD.FormatPrice(43.66))
	assert.Equal(t, "₪0.00", ILS.FormatPrice(0))
	assert.Equal(t, "0.4366", FormatFixed(0.4366, RateDecimals))
	assert.Equal(t, "2.2046", FormatFixed(2.20462, RateDecimals))
	assert.Equal(t, "1.01", FormatFixed(1.005, 2))
}
