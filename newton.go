package xirr

import (
	"math"

	"go.uber.org/zap"
)

// NewtonEpsilon is the rate step under which the Newton solver has converged.
const NewtonEpsilon = 1.0e-3

// NewtonSolver finds the rate with the Newton-Raphson method.
//
// It converges in a handful of iterations when started close enough from the
// root. It fails with ErrNotConverged when the present value stops
// decreasing with the rate, and with ErrGiveUp after MaxIterations.
type NewtonSolver struct {
	MaxIterations int
	Workers       int
	Logger        *zap.Logger
}

func (NewtonSolver) GuessDecimals() int32 { return 6 }

func (n NewtonSolver) Solve(s Series, guess float64) (float64, error) {
	log := n.Logger
	if log == nil {
		log = zap.NewNop()
	}
	terms := s.NonZero()
	orientation := s.orientation()
	maxIter := iterations(n.MaxIterations)

	rate, diff := guess, 1.0
	for iter := 0; ; iter++ {
		switch {
		case diff == 0:
			log.Debug("newton converged", zap.Int("iterations", iter), zap.Float64("rate", rate))
			return round(rate, 6), nil
		case rate == divergedRate:
			log.Debug("newton diverged", zap.Int("iterations", iter))
			return 0, ErrNotConverged
		case iter == maxIter:
			log.Debug("newton exhausted", zap.Int("iterations", iter), zap.Float64("rate", rate))
			return 0, ErrGiveUp
		}

		npv, slope := presentValue(terms, rate, n.Workers)
		npv, slope = orientation*npv, orientation*slope
		log.Debug("newton step", zap.Int("iteration", iter), zap.Float64("rate", rate),
			zap.Float64("npv", npv), zap.Float64("slope", slope))

		if !(slope < 0) || math.IsNaN(npv) || math.IsInf(npv, 0) || math.IsInf(slope, 0) {
			// flat, rising or overflowing: no step can get closer to the root.
			rate = divergedRate
			continue
		}

		next := rate - npv/slope
		diff = math.Abs(next - rate)
		if diff < NewtonEpsilon {
			diff = 0
		}
		rate = next
	}
}
