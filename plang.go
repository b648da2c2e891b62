// Package plang compiles a small language of arithmetic equations into
// the gate representation of a PLONK-style proof system: per-gate
// selector coefficients, wire assignments and public-input wiring.
//
// Each equation lowers to exactly one gate. The left-hand side is a
// signed sum of up to four terms, at most one of which multiplies two
// variables; the right-hand side is a single variable that becomes the
// gate's output wire and its public-input slot:
//
//	a + b = c
//	a * b = d
//
// The compiled constraint system is deterministic: identical sources
// yield identical wire numbering, gate order and serialization, so
// prover and verifier keys derived from it match across independent
// compilations.
package plang

import (
	"math/big"

	"github.com/consensys/gnark/logger"

	"github.com/zkplang/plang/circuit"
	"github.com/zkplang/plang/compiler"
	"github.com/zkplang/plang/parser"
)

// Compile parses source and lowers it into a constraint system over
// the field of the given order.
func Compile(order *big.Int, source string) (*circuit.ConstraintSystem, error) {
	eqs, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return CompileEquations(order, eqs)
}

// CompileEquations lowers an already parsed equation list. Callers with
// their own surface syntax can feed equations directly.
func CompileEquations(order *big.Int, eqs []parser.Equation) (*circuit.ConstraintSystem, error) {
	cs, err := compiler.NewBuilder(order).Build(eqs)
	if err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Info().
		Int("nbGates", cs.NbGates()).
		Int("nbWires", cs.NbWires).
		Int("nbPublic", cs.NbPublic()).
		Msg("compiled plang circuit")

	return cs, nil
}
