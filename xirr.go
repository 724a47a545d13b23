package xirr

import (
	"github.com/etnz/xirr/date"
	"go.uber.org/zap"
)

// XIRR returns the annual rate of return of the cash flow made of amounts
// exchanged on dates, using DefaultOptions.
//
// A nil amount is ignored. The rate is rounded to 6 decimals.
func XIRR(dates []date.Date, amounts []*float64) (float64, error) {
	return DefaultOptions().XIRR(dates, amounts)
}

// XIRR returns the annual rate of return of the cash flow made of amounts
// exchanged on dates.
//
// The input is validated in this order: both slices must have the same
// length (ErrSizeMismatch), at least one amount must be present
// (ErrNoValidEntries), and the net amounts per day must contain an inflow and
// an outflow (ErrInvalidSign). The Solver is then chosen by o.Method.
func (o Options) XIRR(dates []date.Date, amounts []*float64) (float64, error) {
	log := o.logger()

	series, err := Compact(dates, amounts)
	if err != nil {
		log.Debug("invalid cash flow", zap.Error(err))
		return 0, err
	}
	if !series.ValidSigns() {
		log.Debug("invalid cash flow", zap.Error(ErrInvalidSign), zap.Int("days", len(series)))
		return 0, ErrInvalidSign
	}

	_, values := present(dates, amounts)
	solver := o.solver(len(values))
	guess := GuessRate(values, solver.GuessDecimals())
	log.Debug("solving",
		zap.Int("entries", len(values)),
		zap.Int("days", len(series)),
		zap.Float64("guess", guess),
		zap.Stringer("method", methodOf(solver)))

	return solver.Solve(series, guess)
}

// Solver returns the Solver o.XIRR uses for a cash flow of n valid entries.
func (o Options) Solver(n int) Solver { return o.solver(n) }

// MethodFor returns the Method o.XIRR uses for a cash flow of n valid entries.
func (o Options) MethodFor(n int) Method { return methodOf(o.solver(n)) }

func methodOf(s Solver) Method {
	switch s.(type) {
	case NewtonSolver:
		return Newton
	case BisectionSolver:
		return Bisection
	default:
		return Auto
	}
}

// Amounts returns pointers to values, for use as XIRR amounts.
func Amounts(values ...float64) []*float64 {
	amounts := make([]*float64, len(values))
	for i := range values {
		amounts[i] = &values[i]
	}
	return amounts
}
