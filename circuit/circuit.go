// Package circuit defines the compiled constraint system: the selector
// rows, wire assignments and public-input wiring a PLONK key-generation
// backend consumes.
package circuit

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/constraint"
)

// Gate is one selector row. It constrains
//
//	QM·a·b + QL·a + QR·b + QO·o + QC = PI
//
// where a, b, o are the values of wires XA, XB, XO and PI is the
// public input bound to the gate's output wire. The compiler fixes QO
// to -1, so a row reads "left-hand side equals output". XA and XB may
// be the zero wire with a zero selector when the gate has fewer than
// two inputs.
type Gate struct {
	QM, QL, QR, QO, QC constraint.Element
	XA, XB, XO         int
}

// ConstraintSystem is the compiler's output, one gate per source
// equation in source order. It is immutable once built; the
// key-generation backend reads it to derive prover and verifier keys.
type ConstraintSystem struct {
	// FieldOrder is the order of the proving field the selector
	// coefficients live in.
	FieldOrder *big.Int

	Gates []Gate

	// NbWires is the size of the wire space, the number of distinct
	// variables in the source.
	NbWires int

	// Wires maps variable names to wire indices. WireNames is the
	// inverse, in allocation order: WireNames[w] is the variable bound
	// to wire w.
	Wires     map[string]int
	WireNames []string

	// Public marks the wires whose values are supplied as public
	// inputs: the right-hand variables of the source equations.
	Public *bitset.BitSet
}

func (cs *ConstraintSystem) NbGates() int {
	return len(cs.Gates)
}

func (cs *ConstraintSystem) NbPublic() int {
	return int(cs.Public.Count())
}

// PaddedGates returns the power-of-two domain size a backend should
// allocate for this system. One row is reserved on top of the gate
// count, matching the usual blinding row of PLONK implementations.
func (cs *ConstraintSystem) PaddedGates() int {
	n := cs.NbGates() + 1
	padk := 1
	for n > (1 << padk) {
		padk++
	}
	return 1 << padk
}
