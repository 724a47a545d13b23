package xirr

import (
	"math"
	"slices"
)

// GuessRate returns a starting rate for the solvers, rounded to decimals.
//
// amounts are the raw amounts of the cash flow (nil values removed, not
// compacted). The guess is the rate that would turn the largest outflow into
// the largest inflow, spread over the number of flows. It is a heuristic and
// does not need to bracket the root.
func GuessRate(amounts []float64, decimals int32) float64 {
	if len(amounts) == 0 {
		return 0
	}
	lo, hi := slices.Min(amounts), slices.Max(amounts)

	period := 1.0
	if len(amounts) > 1 {
		period = 1 / float64(len(amounts)-1)
	}

	multiple := 2.0
	if lo != 0 {
		multiple = 1 + math.Abs(hi/lo)
	}
	return round(math.Pow(multiple, period)-1, decimals)
}
