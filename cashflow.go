package xirr

import (
	"slices"

	"github.com/etnz/xirr/date"
)

// Flow is the net amount exchanged on a given day of a Series.
type Flow struct {
	Fraction DayFraction // offset from the earliest day of the series
	Amount   float64
}

// Series is a compacted cash flow: at most one Flow per day, sorted by day.
//
// The first Flow is always the earliest day of the series (offset 0).
type Series []Flow

// Compact merges a list of (date, amount) pairs into a Series.
//
// dates and amounts are parallel slices. A nil amount is skipped, it is not a
// zero amount. The series is anchored on the earliest date among the entries
// with an amount, and amounts on the same day are summed.
func Compact(dates []date.Date, amounts []*float64) (Series, error) {
	if len(dates) != len(amounts) {
		return nil, ErrSizeMismatch
	}
	days, values := present(dates, amounts)
	if len(values) == 0 {
		return nil, ErrNoValidEntries
	}
	first := date.Min(days...)

	buckets := make(map[DayFraction]float64, len(values))
	for i, on := range days {
		buckets[NewDayFraction(on.Sub(first))] += values[i]
	}

	series := make(Series, 0, len(buckets))
	for f, amount := range buckets {
		series = append(series, Flow{Fraction: f, Amount: amount})
	}
	slices.SortFunc(series, func(a, b Flow) int { return a.Fraction.num - b.Fraction.num })
	return series, nil
}

// present returns the entries that have an amount.
func present(dates []date.Date, amounts []*float64) ([]date.Date, []float64) {
	days := make([]date.Date, 0, len(dates))
	values := make([]float64, 0, len(amounts))
	for i, a := range amounts {
		if a == nil {
			continue
		}
		days = append(days, dates[i])
		values = append(values, *a)
	}
	return days, values
}

// Fractions returns the distinct days of the series.
func (s Series) Fractions() []DayFraction {
	fractions := make([]DayFraction, len(s))
	for i, f := range s {
		fractions[i] = f.Fraction
	}
	return fractions
}

// Amounts returns the net amounts of the series, aligned with Fractions.
func (s Series) Amounts() []float64 {
	amounts := make([]float64, len(s))
	for i, f := range s {
		amounts[i] = f.Amount
	}
	return amounts
}

// NonZero returns the flows whose net amount is not zero.
//
// Zero flows do not contribute to the present value, solvers iterate on this
// subset.
func (s Series) NonZero() Series {
	return slices.DeleteFunc(slices.Clone(s), func(f Flow) bool { return f.Amount == 0 })
}

// ValidSigns reports whether the series has at least one strictly positive and
// one strictly negative amount.
func (s Series) ValidSigns() bool {
	if len(s) == 0 {
		return false
	}
	amounts := s.Amounts()
	return slices.Min(amounts) < 0 && slices.Max(amounts) > 0
}

// orientation returns +1 if the earliest non zero flow is an outflow, -1
// otherwise.
//
// Multiplying the present value by the orientation makes it decrease with
// the rate near the root, whatever the side the series starts on.
func (s Series) orientation() float64 {
	for _, f := range s {
		if f.Amount < 0 {
			return 1
		}
		if f.Amount > 0 {
			return -1
		}
	}
	return 1
}
