package converter

import (
	"testing"

	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		dir    Direction
		weight bool
		rate   float64
		want   float64
	}{
		{"forward total", 100, Forward, false, 0.4366, 43.66},
		{"forward weight", 100, Forward, true, 0.4366, 43.66 / KgToLb},
		{"reverse total", 43.66, Reverse, false, 0.4366, 100},
		{"reverse weight", 10, Reverse, true, 0.5, 10 * KgToLb / 0.5},
		{"forward unit rate", 1, Forward, false, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(tc.amount, tc.dir, tc.weight, tc.rate)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvert_ForwardIsAmountTimesRate(t *testing.T) {
	rates := []float64{0.01, 0.4366, 1, 3.7}
	amounts := []float64{0, 0.5, 1, 99.99, 12345.678}
	for _, r := range rates {
		for _, a := range amounts {
			assert.InDelta(t, a*r, Convert(a, Forward, false, r), 1e-9, "amount=%v rate=%v", a, r)
		}
	}
}

func TestConvert_ZeroAmountInWeightMode(t *testing.T) {
	for _, dir := range []Direction{Forward, Reverse} {
		for _, r := range []float64{0.1, 0.4366, 2.5} {
			assert.Zero(t, Convert(0, dir, true, r), "dir=%s rate=%v", dir, r)
		}
	}
}

func TestConvert_WeightRoundTrip(t *testing.T) {
	perKg := 50.0
	perLb := Convert(perKg, Forward, true, 0.4366)
	back := Convert(perLb, Reverse, true, 0.4366)
	assert.InDelta(t, perKg, back, 1e-9)
}

func TestDirection_FlipTwice(t *testing.T) {
	assert.Equal(t, Reverse, Forward.Flip())
	assert.Equal(t, Forward, Forward.Flip().Flip())
	assert.Equal(t, Reverse, Reverse.Flip().Flip())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Forward, d)

	d, err = ParseDirection("CAD-ILS")
	require.NoError(t, err)
	assert.Equal(t, Reverse, d)

	_, err = ParseDirection("usd-eur")
	require.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("weight")
	require.NoError(t, err)
	assert.Equal(t, PerWeight, m)
	assert.Equal(t, "weight", m.String())

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Total, m)

	_, err = ParseMode("volume")
	require.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestDisplayRate(t *testing.T) {
	assert.InDelta(t, 0.5, DisplayRate(Forward, 0.5), 1e-12)
	assert.InDelta(t, 2.0, DisplayRate(Reverse, 0.5), 1e-12)
}
