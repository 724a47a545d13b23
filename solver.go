package xirr

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// MaxIterations is the default number of iterations a solver runs before it
// gives up.
const MaxIterations = 300

// divergedRate is the rate a solver is pinned to when it cannot progress.
const divergedRate = -1.0

// Solver finds the rate that zeroes the net present value of a Series.
type Solver interface {
	// Solve iterates from guess and returns the rate rounded to 6 decimals.
	Solve(s Series, guess float64) (float64, error)
	// GuessDecimals is the precision of the guess this solver starts from.
	GuessDecimals() int32
}

// Method selects the Solver used by Options.XIRR.
type Method int

const (
	Auto      Method = iota // Bisection for small series, Newton otherwise
	Newton                  // always NewtonSolver
	Bisection               // always BisectionSolver
)

// SmallSeries is the number of valid entries under which Auto uses the
// bisection.
const SmallSeries = 10

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Newton:
		return "newton"
	case Bisection:
		return "bisection"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name as returned by Method.String.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "newton", "newton-raphson":
		return Newton, nil
	case "bisection", "legacy":
		return Bisection, nil
	default:
		return Auto, fmt.Errorf("invalid method %q, want one of auto, newton, bisection", s)
	}
}

// Options configure the computation of XIRR.
type Options struct {
	Method        Method
	Workers       int // goroutines evaluating the present value, 0 or 1 for none
	MaxIterations int // 0 means MaxIterations
	Logger        *zap.Logger
}

// DefaultOptions returns the options used by XIRR.
func DefaultOptions() Options {
	return Options{Method: Auto, Workers: 1, MaxIterations: MaxIterations, Logger: zap.NewNop()}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// solver returns the Solver to use for n valid entries.
func (o Options) solver(n int) Solver {
	m := o.Method
	if m == Auto {
		m = Newton
		if n < SmallSeries {
			m = Bisection
		}
	}
	if m == Bisection {
		return BisectionSolver{MaxIterations: o.MaxIterations, Workers: o.Workers, Logger: o.logger()}
	}
	return NewtonSolver{MaxIterations: o.MaxIterations, Workers: o.Workers, Logger: o.logger()}
}

// iterations returns n, or the default cap if n is not positive.
func iterations(n int) int {
	if n <= 0 {
		return MaxIterations
	}
	return n
}
