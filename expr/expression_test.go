package expr

import (
	"sort"
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"
)

func TestTermDegree(t *testing.T) {
	lin := NewLinearTerm(3, constraint.Element{1})
	require.Equal(t, 1, lin.Degree())
	require.Equal(t, NoWire, lin.WireB)

	quad := NewQuadraticTerm(3, 0, constraint.Element{1})
	require.Equal(t, 2, quad.Degree())
	require.Equal(t, 3, quad.WireA)
	require.Equal(t, 0, quad.WireB)
}

func TestExpressionDegree(t *testing.T) {
	e := Expression{
		NewLinearTerm(0, constraint.Element{1}),
		NewLinearTerm(1, constraint.Element{2}),
	}
	require.Equal(t, 1, e.Degree())

	e = append(e, NewQuadraticTerm(0, 1, constraint.Element{3}))
	require.Equal(t, 2, e.Degree())

	nbLin, nbQuad := e.CountOfDegrees()
	require.Equal(t, 2, nbLin)
	require.Equal(t, 1, nbQuad)
}

func TestExpressionSortAndEqual(t *testing.T) {
	e := Expression{
		NewLinearTerm(2, constraint.Element{1}),
		NewQuadraticTerm(1, 0, constraint.Element{2}),
		NewLinearTerm(0, constraint.Element{3}),
	}
	sort.Sort(e)
	require.Equal(t, 0, e[0].WireA)
	require.Equal(t, 1, e[1].WireA)
	require.Equal(t, 2, e[2].WireA)

	clone := e.Clone()
	require.True(t, e.Equal(clone))

	clone[0].SetCoeff(constraint.Element{42})
	require.False(t, e.Equal(clone))
}
