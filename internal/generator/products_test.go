package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopforge/internal/sampling"
)

func TestCostForMarginStaysInBand(t *testing.T) {
	src := sampling.New(21)
	for i := 0; i < 5000; i++ {
		price := src.Uniform(8, 2500)
		margin := src.Uniform(minMargin, maxMargin)
		cost := costForMargin(price, margin)

		effective := (price - cost) / price
		require.GreaterOrEqual(t, effective, minMargin-1e-9,
			"price %v margin %v cost %v", price, margin, cost)
		require.LessOrEqual(t, effective, maxMargin+1e-9,
			"price %v margin %v cost %v", price, margin, cost)
	}
}

func TestCostForMarginClampsLowPrices(t *testing.T) {
	// At very low prices a cent of rounding is a big margin swing; the
	// clamp has to absorb it.
	cost := costForMargin(8.00, 0.499)
	require.GreaterOrEqual(t, cost, 4.00)
	require.LessOrEqual(t, cost, 6.40)
}
