// Package expr holds the wire-resolved form of an equation's left-hand
// side, implemented after gnark's frontend/internal/expr with support
// for second degree terms.
package expr

type Expression []Term

func (e Expression) Clone() Expression {
	res := make(Expression, len(e))
	copy(res, e)
	return res
}

// Len returns the number of terms (implements sort.Interface).
func (e Expression) Len() int {
	return len(e)
}

// Equal returns true if both SORTED expressions are the same.
//
// pre conditions: e and o are sorted
func (e Expression) Equal(o Expression) bool {
	if len(e) != len(o) {
		return false
	}
	if (e == nil) != (o == nil) {
		return false
	}
	for i := 0; i < len(e); i++ {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// Swap swaps two terms (implements sort.Interface).
func (e Expression) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

// Less orders terms by wire indices (implements sort.Interface).
func (e Expression) Less(i, j int) bool {
	if e[i].WireA != e[j].WireA {
		return e[i].WireA < e[j].WireA
	}
	return e[i].WireB < e[j].WireB
}

// Degree returns the degree of the polynomial.
func (e Expression) Degree() int {
	res := 0
	for _, val := range e {
		deg := val.Degree()
		if deg == 2 {
			return 2
		}
		if deg > res {
			res = deg
		}
	}
	return res
}

// CountOfDegrees returns the number of linear and quadratic terms.
func (e Expression) CountOfDegrees() (int, int) {
	res1 := 0
	res2 := 0
	for _, val := range e {
		if val.Degree() == 2 {
			res2++
		} else {
			res1++
		}
	}
	return res1, res2
}
