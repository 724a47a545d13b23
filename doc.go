// Package xirr computes the internal rate of return of cash flows occurring on
// irregular dates.
//
// The computation works in three steps:
//   - Compaction: the (date, amount) pairs are merged into one net amount per
//     day, each day expressed as an exact fraction of a 365 days year from the
//     earliest date. See [Compact].
//   - Initial guess: a starting rate is derived from the extreme amounts. See
//     [GuessRate].
//   - Root finding: a [Solver] iterates from the guess until the net present
//     value of the series vanishes. Two solvers are available, [NewtonSolver]
//     and [BisectionSolver], selected by [Options].
//
// Every failure is reported as an [*Error] whose [Reason] is stable, so
// callers can branch with errors.Is on the Err* values.
//
// [AbsoluteRate] converts an annual rate into the plain percentage earned over
// a holding period.
package xirr
