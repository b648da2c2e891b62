// Package compiler lowers parsed equations into a PLONK-shaped
// constraint system: one selector row per equation, wires allocated in
// first-occurrence order, the right-hand variable of each equation
// doubling as the gate's public-input slot.
package compiler

import (
	"fmt"
	"math"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/zkplang/plang/circuit"
	"github.com/zkplang/plang/field"
	"github.com/zkplang/plang/parser"
)

// Builder accumulates gates and public-input wiring across the
// equations of one circuit. A Builder compiles one circuit and is not
// safe for concurrent use; equations are processed strictly in source
// order.
type Builder struct {
	field   field.Field
	symbols *SymbolTable
}

// NewBuilder returns a builder for the proving field of the given
// order.
func NewBuilder(order *big.Int) *Builder {
	return &Builder{
		field:   field.GetFieldFromOrder(order),
		symbols: NewSymbolTable(),
	}
}

// Field returns the builder's proving field.
func (b *Builder) Field() field.Field {
	return b.field
}

// Build lowers the equations in source order into a constraint system.
// Compilation is atomic: the first failing equation aborts the build
// and no partial system is returned. An empty equation list yields a
// legal zero-gate system.
func (b *Builder) Build(eqs []parser.Equation) (*circuit.ConstraintSystem, error) {
	lw := &lowerer{field: b.field, symbols: b.symbols}

	gates := make([]circuit.Gate, 0, len(eqs))
	public := bitset.New(uint(len(eqs)))
	for i, eq := range eqs {
		gate, err := lw.lower(eq)
		if err != nil {
			return nil, &EquationError{Position: i, Err: err}
		}
		gates = append(gates, gate)
		public.Set(uint(gate.XO))

		if uint64(b.symbols.NbWires()) > math.MaxUint32 || uint64(len(gates)) > math.MaxUint32 {
			return nil, &EquationError{
				Position: i,
				Err:      fmt.Errorf("%w: circuit exceeds %d wires or gates", ErrCapacity, uint64(math.MaxUint32)),
			}
		}
	}

	return &circuit.ConstraintSystem{
		FieldOrder: b.field.Field(),
		Gates:      gates,
		NbWires:    b.symbols.NbWires(),
		Wires:      b.symbols.Wires(),
		WireNames:  b.symbols.Names(),
		Public:     public,
	}, nil
}
