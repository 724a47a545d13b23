package renderer

import (
	"fmt"

	"github.com/etnz/xirr"
	"github.com/etnz/xirr/date"
)

// Report is the outcome of an XIRR computation, ready to be rendered.
type Report struct {
	Entries  int // entries with an amount
	Span     int // days from the first to the last flow
	Method   string
	Flows    []Flow
	Rate     float64
	Absolute xirr.Percent // return over Span, only for spans shorter than a year
	Error    string
}

// Flow is one row of the compacted cash flow.
type Flow struct {
	Date   date.Date
	Days   int
	Amount float64
}

// NewReport computes the XIRR of dates and amounts with opts and collects
// everything worth showing about it.
//
// A failure is reported in the Report itself, so that the flows are still
// rendered.
func NewReport(dates []date.Date, amounts []*float64, opts xirr.Options) *Report {
	r := new(Report)

	series, err := xirr.Compact(dates, amounts)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	var first date.Date
	for i, a := range amounts {
		if a == nil {
			continue
		}
		r.Entries++
		if r.Entries == 1 || dates[i].Before(first) {
			first = dates[i]
		}
	}
	for _, f := range series {
		r.Flows = append(r.Flows, Flow{Date: first.Add(f.Fraction.Num()), Days: f.Fraction.Num(), Amount: f.Amount})
	}
	r.Span = series[len(series)-1].Fraction.Num()
	r.Method = opts.MethodFor(r.Entries).String()

	rate, err := opts.XIRR(dates, amounts)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Rate = rate
	if r.Span < xirr.DaysInYear {
		// a zero rate has no absolute return, it is simply not shown.
		r.Absolute, _ = xirr.AbsoluteRate(rate, r.Span)
	}
	return r
}

// RateString returns the rate as a decimal and as a percentage.
func (r *Report) RateString() string {
	return fmt.Sprintf("%.6f (%s)", r.Rate, xirr.Percent(r.Rate*100))
}

// HasAbsolute reports whether the absolute return is meaningful.
func (r *Report) HasAbsolute() bool { return r.Absolute != 0 }
