package xirr

import (
	"fmt"
	"math"
)

// DaysInYear is the denominator of every DayFraction.
const DaysInYear = 365.0

// DayFraction is a number of days expressed as an exact fraction of a year.
//
// DayFraction is comparable: two values are equal iff they have the same
// numerator and denominator, so it can be used as a map key.
type DayFraction struct {
	num int
	den float64
}

// NewDayFraction returns the fraction days/365.
func NewDayFraction(days int) DayFraction { return DayFraction{num: days, den: DaysInYear} }

// Num returns the number of days.
func (f DayFraction) Num() int { return f.num }

// Den returns the number of days in a year.
func (f DayFraction) Den() float64 { return f.den }

// Years returns the fraction as a number of years.
func (f DayFraction) Years() float64 { return float64(f.num) / f.den }

// Pow returns base raised to the fraction.
//
// A negative base has no real power for a fractional exponent, the sign is
// then carried by the parity of the numerator: |base|^f * (-1)^num.
func (f DayFraction) Pow(base float64) float64 {
	if base >= 0 {
		return math.Pow(base, f.Years())
	}
	p := math.Pow(-base, f.Years())
	if f.num%2 != 0 {
		return -p
	}
	return p
}

func (f DayFraction) String() string { return fmt.Sprintf("%d/%g", f.num, f.den) }
