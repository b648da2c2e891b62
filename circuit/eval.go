package circuit

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkplang/plang/field"
)

// ErrNoSuchVariable reports an assignment entry that names no wire of
// the circuit.
var ErrNoSuchVariable = errors.New("no such variable")

// Assign builds the full per-wire value vector from a name to value
// map. Wires without an entry stay zero, mirroring unset witnesses.
// Values may be anything the field accepts: integers, *big.Int,
// decimal strings.
func (cs *ConstraintSystem) Assign(f field.Field, vals map[string]interface{}) ([]constraint.Element, error) {
	w := make([]constraint.Element, cs.NbWires)
	for name, v := range vals {
		wire, ok := cs.Wires[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchVariable, name)
		}
		w[wire] = f.FromInterface(v)
	}
	return w, nil
}

// PublicInputs returns the public-input vector: one entry per gate,
// aligned by gate index, zero where the gate carries no public slot.
func (cs *ConstraintSystem) PublicInputs(f field.Field, vals map[string]interface{}) ([]constraint.Element, error) {
	w, err := cs.Assign(f, vals)
	if err != nil {
		return nil, err
	}
	pi := make([]constraint.Element, len(cs.Gates))
	for i, g := range cs.Gates {
		if cs.Public.Test(uint(g.XO)) {
			pi[i] = w[g.XO]
		}
	}
	return pi, nil
}

// Satisfied evaluates every gate against the assignment and reports
// whether all rows hold. The output wire of each gate takes its value
// from the assignment like any other wire, so a row evaluating to zero
// means the left-hand side equals the supplied public output.
func (cs *ConstraintSystem) Satisfied(f field.Field, vals map[string]interface{}) (bool, error) {
	w, err := cs.Assign(f, vals)
	if err != nil {
		return false, err
	}
	for _, g := range cs.Gates {
		acc := f.Mul(f.Mul(g.QM, w[g.XA]), w[g.XB])
		acc = f.Add(acc, f.Mul(g.QL, w[g.XA]))
		acc = f.Add(acc, f.Mul(g.QR, w[g.XB]))
		acc = f.Add(acc, f.Mul(g.QO, w[g.XO]))
		acc = f.Add(acc, g.QC)
		if !acc.IsZero() {
			return false, nil
		}
	}
	return true, nil
}
