package compiler

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkplang/plang/circuit"
	"github.com/zkplang/plang/expr"
	"github.com/zkplang/plang/field"
	"github.com/zkplang/plang/parser"
)

// maxTerms is the grammar's bound on left-hand terms. The gate itself
// admits at most two distinct input variables, so term counts between
// the two bounds can still fail with ErrShape during role binding.
const maxTerms = 4

type lowerer struct {
	field   field.Field
	symbols *SymbolTable
}

// normalize resolves one surface term to its wire-level form, folding
// the sign into the coefficient. Variables are resolved left to right,
// so wire allocation order equals first-occurrence order.
func (lw *lowerer) normalize(t parser.Term) (expr.Term, error) {
	coeff := lw.field.FromInterface(t.Coeff)
	if t.Minus {
		coeff = lw.field.Neg(coeff)
	}
	switch len(t.Vars) {
	case 1:
		return expr.NewLinearTerm(lw.symbols.Resolve(t.Vars[0]), coeff), nil
	case 2:
		if t.Vars[0] == t.Vars[1] {
			return expr.Term{}, fmt.Errorf("%w: quadratic term multiplies %q by itself", ErrShape, t.Vars[0])
		}
		wa := lw.symbols.Resolve(t.Vars[0])
		wb := lw.symbols.Resolve(t.Vars[1])
		return expr.NewQuadraticTerm(wa, wb, coeff), nil
	default:
		return expr.Term{}, fmt.Errorf("%w: term references %d variables", ErrStructural, len(t.Vars))
	}
}

// lower converts one equation into a selector row.
//
// Wire roles: the quadratic term, if present, pins its variables to the
// a and b input slots; linear terms must then reuse one of those wires.
// Without a quadratic term the first linear term takes a and the second
// takes b. Any term needing a third distinct input variable cannot fit
// the gate and fails with ErrShape.
func (lw *lowerer) lower(eq parser.Equation) (circuit.Gate, error) {
	if len(eq.Terms) == 0 {
		return circuit.Gate{}, fmt.Errorf("%w: equation has no left-hand terms", ErrStructural)
	}
	if len(eq.Terms) > maxTerms {
		return circuit.Gate{}, fmt.Errorf("%w: equation has %d left-hand terms, at most %d allowed", ErrStructural, len(eq.Terms), maxTerms)
	}
	if eq.Out == "" {
		return circuit.Gate{}, fmt.Errorf("%w: right-hand side is not a bare variable", ErrShape)
	}

	lhs := make(expr.Expression, 0, len(eq.Terms))
	for _, t := range eq.Terms {
		nt, err := lw.normalize(t)
		if err != nil {
			return circuit.Gate{}, err
		}
		lhs = append(lhs, nt)
	}

	if _, nbQuad := lhs.CountOfDegrees(); nbQuad > 1 {
		return circuit.Gate{}, fmt.Errorf("%w: equation has %d quadratic terms, a gate admits one multiplication", ErrStructural, nbQuad)
	}

	var qm, ql, qr constraint.Element
	xa, xb := 0, 0
	hasA, hasB := false, false

	// The quadratic term binds first so its variables own the input
	// slots.
	for _, t := range lhs {
		if t.Degree() == 2 {
			qm = t.Coeff
			xa, xb = t.WireA, t.WireB
			hasA, hasB = true, true
		}
	}

	seen := make(map[int]bool, 2)
	for _, t := range lhs {
		if t.Degree() != 1 {
			continue
		}
		if seen[t.WireA] {
			return circuit.Gate{}, fmt.Errorf("%w: variable %q appears in two linear terms", ErrStructural, lw.symbols.NameOf(t.WireA))
		}
		seen[t.WireA] = true
		switch {
		case hasA && t.WireA == xa:
			ql = t.Coeff
		case hasB && t.WireA == xb:
			qr = t.Coeff
		case !hasA:
			xa, hasA = t.WireA, true
			ql = t.Coeff
		case !hasB:
			xb, hasB = t.WireA, true
			qr = t.Coeff
		default:
			return circuit.Gate{}, fmt.Errorf("%w: equation uses more distinct input variables than one gate supports", ErrShape)
		}
	}

	xo := lw.symbols.Resolve(eq.Out)
	if (hasA && xo == xa) || (hasB && xo == xb) {
		return circuit.Gate{}, fmt.Errorf("%w: right-hand variable %q also appears on the left-hand side", ErrShape, eq.Out)
	}

	// QO is fixed to -1: the row constrains the left-hand side to equal
	// the output wire. QC stays zero, the grammar has no constants.
	return circuit.Gate{
		QM: qm,
		QL: ql,
		QR: qr,
		QO: lw.field.Neg(lw.field.One()),
		XA: xa,
		XB: xb,
		XO: xo,
	}, nil
}
