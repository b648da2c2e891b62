package compiler

import (
	"errors"
	"fmt"
)

// Lowering failures. All are equation-local and wrapped in an
// EquationError carrying the position of the offending equation, so
// callers can match the kind with errors.Is and still report where
// compilation stopped.
var (
	// ErrStructural reports a malformed left-hand side: no terms, more
	// than four terms, more than one quadratic term, or a variable
	// appearing in two linear terms.
	ErrStructural = errors.New("structural error")

	// ErrShape reports an equation that cannot fit the fixed gate
	// shape: more than two distinct input variables, or a right-hand
	// variable that also feeds the gate's inputs.
	ErrShape = errors.New("shape error")

	// ErrCapacity reports wire or gate counts beyond the range the
	// constraint system can index.
	ErrCapacity = errors.New("capacity error")
)

// EquationError locates a lowering failure in the source.
type EquationError struct {
	// Position is the index of the equation in source order.
	Position int
	Err      error
}

func (e *EquationError) Error() string {
	return fmt.Sprintf("equation %d: %v", e.Position, e.Err)
}

func (e *EquationError) Unwrap() error {
	return e.Err
}
