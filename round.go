package xirr

import (
	"math"

	"github.com/shopspring/decimal"
)

// round returns x rounded half away from zero to the given number of decimals.
//
// Non finite values are returned unchanged.
func round(x float64, decimals int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(decimals).InexactFloat64()
}
