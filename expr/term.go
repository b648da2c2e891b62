package expr

// similar to gnark frontend/internal/expr/term, but wires are resolved
// circuit indices and a term may be a product of two wires

import "github.com/consensys/gnark/constraint"

// NoWire marks the absent second wire of a linear term.
const NoWire = -1

// Term is one signed product of an equation's left-hand side after its
// variables have been resolved to wire indices. The sign is folded into
// Coeff by the lowering stage.
type Term struct {
	// WireA is always a valid wire. WireB is NoWire for a linear term.
	WireA int
	WireB int
	Coeff constraint.Element
}

// NewLinearTerm returns coeff * wire.
func NewLinearTerm(wire int, coeff constraint.Element) Term {
	return Term{WireA: wire, WireB: NoWire, Coeff: coeff}
}

// NewQuadraticTerm returns coeff * wireA * wireB. Wire order is
// preserved: the first variable of the source term takes the gate's
// left input slot.
func NewQuadraticTerm(wireA, wireB int, coeff constraint.Element) Term {
	return Term{WireA: wireA, WireB: wireB, Coeff: coeff}
}

func (t *Term) SetCoeff(c constraint.Element) {
	t.Coeff = c
}

func (t Term) Degree() int {
	if t.WireB == NoWire {
		return 1
	}
	return 2
}
