package pairwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1},
		{2.0, 2},
		{0.125, 0.12},
		{0.375, 0.38},
		{-0.125, -0.12},
		{2.675, 2.67},
		{1.0 / 3, 0.33},
		{math.Sqrt2, 1.41},
		{0.005, 0.01},
		{-1.239, -1.24},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestRound_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN())))
	assert.True(t, math.IsInf(Round(math.Inf(1)), 1))
	assert.True(t, math.IsInf(Round(math.Inf(-1)), -1))
}
