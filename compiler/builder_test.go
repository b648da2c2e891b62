package compiler

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/zkplang/plang/circuit"
	"github.com/zkplang/plang/field"
	"github.com/zkplang/plang/parser"
)

var (
	testField = field.GetFieldFromOrder(ecc.BLS12_381.ScalarField())
	zero      = constraint.Element{}
	one       = testField.One()
	minusOne  = testField.Neg(testField.One())
)

func compile(t *testing.T, src string) *circuit.ConstraintSystem {
	t.Helper()
	eqs, err := parser.Parse(src)
	require.NoError(t, err)
	cs, err := NewBuilder(ecc.BLS12_381.ScalarField()).Build(eqs)
	require.NoError(t, err)
	return cs
}

func compileErr(t *testing.T, src string) error {
	t.Helper()
	eqs, err := parser.Parse(src)
	require.NoError(t, err)
	_, err = NewBuilder(ecc.BLS12_381.ScalarField()).Build(eqs)
	require.Error(t, err)
	return err
}

func TestAdditionGate(t *testing.T) {
	cs := compile(t, "a + b = c")
	require.Len(t, cs.Gates, 1)

	g := cs.Gates[0]
	require.Equal(t, zero, g.QM)
	require.Equal(t, one, g.QL)
	require.Equal(t, one, g.QR)
	require.Equal(t, minusOne, g.QO)
	require.Equal(t, zero, g.QC)
	require.Equal(t, 0, g.XA)
	require.Equal(t, 1, g.XB)
	require.Equal(t, 2, g.XO)

	require.Equal(t, 3, cs.NbWires)
	require.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, cs.Wires)
	require.True(t, cs.Public.Test(2))
	require.False(t, cs.Public.Test(0))
	require.False(t, cs.Public.Test(1))
}

func TestMultiplicationGateReusesWires(t *testing.T) {
	cs := compile(t, "a + b = c\na * b = d\n")
	require.Len(t, cs.Gates, 2)

	g := cs.Gates[1]
	require.Equal(t, one, g.QM)
	require.Equal(t, zero, g.QL)
	require.Equal(t, zero, g.QR)
	require.Equal(t, minusOne, g.QO)
	require.Equal(t, 0, g.XA)
	require.Equal(t, 1, g.XB)
	require.Equal(t, 3, g.XO)

	require.Equal(t, 4, cs.NbWires)
	require.Equal(t, []string{"a", "b", "c", "d"}, cs.WireNames)
	require.Equal(t, 2, cs.NbPublic())
}

func TestCoefficientsAndSigns(t *testing.T) {
	cs := compile(t, "2a - 3b = c")
	g := cs.Gates[0]
	require.Equal(t, testField.FromInterface(2), g.QL)
	require.Equal(t, testField.Neg(testField.FromInterface(3)), g.QR)
	require.Equal(t, zero, g.QM)
}

func TestQuadraticPinsInputSlots(t *testing.T) {
	// The quadratic term owns the a and b slots; linear terms attach to
	// whichever slot their variable already occupies.
	cs := compile(t, "a*b + 2a - 3b = c")
	g := cs.Gates[0]
	require.Equal(t, one, g.QM)
	require.Equal(t, testField.FromInterface(2), g.QL)
	require.Equal(t, testField.Neg(testField.FromInterface(3)), g.QR)
	require.Equal(t, 0, g.XA)
	require.Equal(t, 1, g.XB)
	require.Equal(t, 2, g.XO)

	cs = compile(t, "a*b + b = c")
	g = cs.Gates[0]
	require.Equal(t, zero, g.QL)
	require.Equal(t, one, g.QR)
}

func TestSingleTermGate(t *testing.T) {
	cs := compile(t, "5x = y")
	g := cs.Gates[0]
	require.Equal(t, testField.FromInterface(5), g.QL)
	require.Equal(t, zero, g.QR)
	require.Equal(t, 0, g.XA)
	// the b slot is unused: zero wire with a zero selector
	require.Equal(t, 0, g.XB)
	require.Equal(t, 1, g.XO)
}

func TestEmptyProgram(t *testing.T) {
	cs := compile(t, "")
	require.Equal(t, 0, cs.NbGates())
	require.Equal(t, 0, cs.NbWires)
	require.Equal(t, 0, cs.NbPublic())
}

func TestDeterminism(t *testing.T) {
	src := "a + b = c\na * b = d\n2b - a = e\n"
	cs1 := compile(t, src)
	cs2 := compile(t, src)
	require.Equal(t, cs1, cs2)
}

func TestTooManyTerms(t *testing.T) {
	err := compileErr(t, "a + a + a + a + a = b")
	require.ErrorIs(t, err, ErrStructural)
}

func TestNoTerms(t *testing.T) {
	_, err := NewBuilder(ecc.BLS12_381.ScalarField()).Build([]parser.Equation{{Out: "c"}})
	require.ErrorIs(t, err, ErrStructural)
}

func TestTwoQuadraticTerms(t *testing.T) {
	err := compileErr(t, "a*b + c*d = e")
	require.ErrorIs(t, err, ErrStructural)
}

func TestThirdInputVariable(t *testing.T) {
	// a*b pins both input slots, so e has nowhere to go
	err := compileErr(t, "a*b + e = f")
	require.ErrorIs(t, err, ErrShape)

	// three independent linear terms exceed the two input slots
	err = compileErr(t, "a + b + e = f")
	require.ErrorIs(t, err, ErrShape)
}

func TestRepeatedLinearVariable(t *testing.T) {
	err := compileErr(t, "a + a = b")
	require.ErrorIs(t, err, ErrStructural)
}

func TestSquaredVariable(t *testing.T) {
	err := compileErr(t, "a*a = b")
	require.ErrorIs(t, err, ErrShape)
}

func TestOutputOnLeftHandSide(t *testing.T) {
	err := compileErr(t, "a + b = a")
	require.ErrorIs(t, err, ErrShape)

	err = compileErr(t, "a*b = b")
	require.ErrorIs(t, err, ErrShape)
}

func TestErrorReportsEquationPosition(t *testing.T) {
	err := compileErr(t, "a + b = c\na*a = d\n")
	require.ErrorIs(t, err, ErrShape)

	var eqErr *EquationError
	require.ErrorAs(t, err, &eqErr)
	require.Equal(t, 1, eqErr.Position)
}

func TestNoGatesDroppedOnSuccess(t *testing.T) {
	src := "a + b = c\na * b = d\nc + d = e\n"
	cs := compile(t, src)
	require.Equal(t, 3, cs.NbGates())
}
