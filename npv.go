package xirr

import (
	"golang.org/x/sync/errgroup"
)

// minTermsPerWorker is the smallest chunk worth a goroutine.
const minTermsPerWorker = 64

// discount returns the present value of f at rate, and its derivative with
// respect to the rate.
func (f Flow) discount(rate float64) (value, slope float64) {
	base := 1 + rate
	value = f.Amount / f.Fraction.Pow(base)
	slope = -f.Fraction.Years() * value / base
	return value, slope
}

// presentValue returns the net present value of s at rate and its
// derivative.
//
// Terms are computed on up to workers goroutines, then summed in series order
// so that the result does not depend on workers.
func presentValue(s Series, rate float64, workers int) (npv, slope float64) {
	values := make([]float64, len(s))
	slopes := make([]float64, len(s))

	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			values[i], slopes[i] = s[i].discount(rate)
		}
	}

	chunk := len(s)
	if workers > 1 {
		chunk = max((len(s)+workers-1)/workers, minTermsPerWorker)
	}
	if chunk >= len(s) {
		fill(0, len(s))
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for lo := 0; lo < len(s); lo += chunk {
			lo := lo
			hi := min(lo+chunk, len(s))
			g.Go(func() error {
				fill(lo, hi)
				return nil
			})
		}
		_ = g.Wait() // workers never fail
	}

	for i := range values {
		npv += values[i]
		slope += slopes[i]
	}
	return npv, slope
}
