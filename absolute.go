package xirr

import "math"

// AbsoluteRate converts an annual rate into the percentage earned over a
// holding period of days.
//
// Periods shorter than a year are compounded down: ((1+rate)^(days/365)-1)*100.
// Longer periods report the annual rate itself: rate*100. The result is rounded
// to 2 decimals.
//
// A zero rate is rejected with ErrZeroRate.
func AbsoluteRate(rate float64, days int) (Percent, error) {
	if rate == 0 {
		return 0, ErrZeroRate
	}
	abs := rate * 100
	if days < DaysInYear {
		abs = (math.Pow(1+rate, float64(days)/DaysInYear) - 1) * 100
	}
	if math.IsNaN(abs) || math.IsInf(abs, 0) {
		return 0, ErrNonFiniteRate
	}
	return Percent(round(abs, 2)), nil
}
