package xirr

import (
	"math"
	"testing"

	"github.com/etnz/xirr/date"
)

// dates is a helper for test to parse a list of dates from const.
func dates(s ...string) []date.Date {
	ds := make([]date.Date, len(s))
	for i, v := range s {
		ds[i] = date.MustParse(v)
	}
	return ds
}

// quarterly returns n dates 91 days apart starting on 2020-01-01.
func quarterly(n int) []date.Date {
	ds := make([]date.Date, n)
	for i := range ds {
		ds[i] = date.New(2020, 1, 1).Add(91 * i)
	}
	return ds
}

// savingsPlan is a 12 entries cash flow, with two entries on the same day.
var savingsPlan = struct {
	dates   []date.Date
	amounts []float64
}{
	dates: dates("2010-01-01", "2010-03-15", "2010-03-15", "2010-07-01", "2011-01-01", "2011-06-30",
		"2012-02-01", "2012-09-09", "2013-01-01", "2013-05-05", "2014-01-01", "2014-12-31"),
	amounts: []float64{-1000, -250, -250, -300, 100, -200, 150, -100, 200, 300, 400, 1900},
}

// mustCompact is a helper for test to compact a cash flow that must be valid.
func mustCompact(t *testing.T, ds []date.Date, values ...float64) Series {
	t.Helper()
	s, err := Compact(ds, Amounts(values...))
	if err != nil {
		t.Fatalf("Compact() unexpected error: %v", err)
	}
	return s
}

// residual returns the net present value of s at rate.
func residual(s Series, rate float64) float64 {
	npv, _ := presentValue(s, rate, 1)
	return npv
}

// scale returns the sum of absolute amounts of s.
func scale(s Series) float64 {
	var total float64
	for _, f := range s {
		total += math.Abs(f.Amount)
	}
	return total
}
