package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{1.004, 1.0},
		{2.675, 2.68},
		{0, 0},
		{-1.005, -1.01},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		quantity  int
		unitPrice float64
		discount  float64
		want      float64
	}{
		{1, 100.00, 0, 100.00},
		{3, 19.99, 0.10, 53.97},
		{2, 49.95, 0.25, 74.93},
		{5, 0.10, 0, 0.50},
	}
	for _, tt := range tests {
		got := LineTotal(tt.quantity, tt.unitPrice, tt.discount)
		assert.Equal(t, tt.want, got, "LineTotal(%d, %v, %v)", tt.quantity, tt.unitPrice, tt.discount)
	}
}

func TestSum2AvoidsFloatDrift(t *testing.T) {
	// 0.1+0.1+0.1 drifts in binary floats; the decimal sum must not.
	assert.Equal(t, 0.3, Sum2([]float64{0.1, 0.1, 0.1}))
	assert.Equal(t, 0.0, Sum2(nil))
	assert.Equal(t, 1234.56, Sum2([]float64{1000.00, 234.56}))
}
