package xirr

import (
	"math"

	"go.uber.org/zap"
)

const (
	// BisectionEpsilon is the present value under which the bisection has converged.
	BisectionEpsilon = 1.0e-6
	// bracketWidth is the distance from the guess to the initial bounds.
	bracketWidth = 1.0
	// ceilingMargin is how close to an open upper bound the rate must get to
	// push that bound up by bracketWidth.
	ceilingMargin = 0.01
)

// BisectionSolver finds the rate by halving a bracket around it.
//
// The bracket starts one unit around the guess. Its upper bound is pushed up
// as long as the root lies above it, so roots far from the guess are found
// too, at the cost of more iterations. It fails with ErrUnableToConverge
// after MaxIterations.
type BisectionSolver struct {
	MaxIterations int
	Workers       int
	Logger        *zap.Logger
}

func (BisectionSolver) GuessDecimals() int32 { return 3 }

func (b BisectionSolver) Solve(s Series, guess float64) (float64, error) {
	log := b.Logger
	if log == nil {
		log = zap.NewNop()
	}
	terms := s.NonZero()
	orientation := s.orientation()
	maxIter := iterations(b.MaxIterations)

	rate := guess
	bottom, upper := guess-bracketWidth, guess+bracketWidth
	capped := false // upper has been set by a residual below zero
	for iter := 0; ; iter++ {
		switch {
		case rate == divergedRate:
			log.Debug("bisection diverged", zap.Int("iterations", iter))
			return 0, ErrNotConverged
		case iter == maxIter:
			log.Debug("bisection exhausted", zap.Int("iterations", iter),
				zap.Float64("rate", rate), zap.Float64("upper", upper))
			return 0, ErrUnableToConverge
		}

		npv, _ := presentValue(terms, rate, b.Workers)
		residual := orientation * npv
		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			rate = divergedRate
			continue
		}
		if math.Abs(residual) < BisectionEpsilon {
			log.Debug("bisection converged", zap.Int("iterations", iter), zap.Float64("rate", rate))
			return round(rate, 6), nil
		}

		switch {
		case residual < 0: // the root is below
			upper, capped = rate, true
			rate = (bottom + rate) / 2
		case !capped && upper-rate < ceilingMargin: // the root is above the bracket
			upper += bracketWidth
			bottom = rate
			rate = (rate + upper) / 2
		default: // the root is above
			bottom = rate
			rate = (rate + upper) / 2
		}
	}
}
