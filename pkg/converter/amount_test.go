package converter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"100", 100},
		{" 42.5 ", 42.5},
		{".75", 0.75},
		{"3.", 3},
		{"12abc", 12},
		{"1e2", 100},
		{"abc", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e999", 0},
		{"0x10", 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.InDelta(t, tc.want, ParseAmount(tc.in), 1e-12)
		})
	}
}

func TestValidRate(t *testing.T) {
	assert.True(t, ValidRate(0.4366))
	assert.False(t, ValidRate(0))
	assert.False(t, ValidRate(-1))
	assert.False(t, ValidRate(math.Inf(1)))
	assert.False(t, ValidRate(math.NaN()))
}
