package xirr

import "errors"

// Reason identifies a class of failure.
type Reason int

const (
	InputSizeMismatch   Reason = iota + 1 // dates and amounts have different lengths
	NoValidEntries                        // every amount is missing
	InvalidCashFlowSign                   // amounts lack a positive or a negative value
	ConvergenceFailure                    // the solver diverged
	IterationExhausted                    // the iteration cap was reached
	ZeroRate                              // the rate cannot be converted
)

func (r Reason) String() string {
	switch r {
	case InputSizeMismatch:
		return "InputSizeMismatch"
	case NoValidEntries:
		return "NoValidEntries"
	case InvalidCashFlowSign:
		return "InvalidCashFlowSign"
	case ConvergenceFailure:
		return "ConvergenceFailure"
	case IterationExhausted:
		return "IterationExhausted"
	case ZeroRate:
		return "ZeroRate"
	default:
		return "Unknown"
	}
}

// Error is the error returned by every operation of this package.
//
// Two errors are considered equal by errors.Is when they share the same
// Reason, messages may differ.
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is reports whether target is an *Error with the same Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

var (
	ErrSizeMismatch     = &Error{InputSizeMismatch, "Date and Value collections must have the same size"}
	ErrNoValidEntries   = &Error{NoValidEntries, "No valid date-value pairs after filtering nil values"}
	ErrInvalidSign      = &Error{InvalidCashFlowSign, "Values should have at least one positive or negative value."}
	ErrNotConverged     = &Error{ConvergenceFailure, "Could not converge"}
	ErrGiveUp           = &Error{IterationExhausted, "I give up"}
	ErrUnableToConverge = &Error{IterationExhausted, "Unable to converge"}
	ErrZeroRate         = &Error{ZeroRate, "Rate is 0"}
	ErrNonFiniteRate    = &Error{ZeroRate, "Rate is not a finite number"}
)

// ReasonOf returns the Reason of err, or 0 if err is not an *Error.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return 0
}
