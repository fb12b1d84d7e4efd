package common

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// LineTotal computes round(quantity * unitPrice * (1 - discount), 2).
func LineTotal(quantity int, unitPrice, discount float64) float64 {
	qty := decimal.NewFromInt(int64(quantity))
	price := decimal.NewFromFloat(unitPrice)
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discount))
	return qty.Mul(price).Mul(factor).Round(2).InexactFloat64()
}

// Sum2 adds already-rounded monetary values without accumulating float
// drift and returns the total at two decimal places.
func Sum2(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}
