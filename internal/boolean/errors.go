package boolean

import (
	"errors"
	"fmt"
)

// ErrVariableLimitExceeded is returned when an expression references more
// variables than the configured ceiling. It is reported before any table
// allocation happens.
var ErrVariableLimitExceeded = errors.New("variable limit exceeded")

// ErrTooComplex is returned when minimizing a function would exceed the
// minimizer's implicant or step budget. Like ErrVariableLimitExceeded it is
// a property of the input, not an engine defect.
var ErrTooComplex = errors.New("expression too complex to minimize")

// ParseError reports malformed input. Pos is the byte offset of the
// offending fragment in the expression.
type ParseError struct {
	Pos      int
	Fragment string
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("parse error at position %d near %q: %s", e.Pos, e.Fragment, e.Msg)
}

// EvaluationError means the evaluator met a variable with no binding.
// The extractor guarantees this cannot happen, so it always indicates a bug.
type EvaluationError struct {
	Var string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error: no binding for variable %q", e.Var)
}

// MinimizationError means the cover selection could not account for a
// minterm. Like EvaluationError, it is an internal defect.
type MinimizationError struct {
	Minterm uint32
	Msg     string
}

func (e *MinimizationError) Error() string {
	return fmt.Sprintf("minimization error on minterm %d: %s", e.Minterm, e.Msg)
}

// IsUserError reports whether err was caused by the caller's input rather
// than by a defect in the engine.
func IsUserError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) ||
		errors.Is(err, ErrVariableLimitExceeded) ||
		errors.Is(err, ErrTooComplex)
}
