// Package field abstracts the proving fields supported by the compiler
// behind gnark's coefficient arithmetic.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zkplang/plang/field/bls12381"
	"github.com/zkplang/plang/field/bn254"
)

// Field extends constraint.Field with the metadata a key-generation
// backend needs to size its polynomial domains.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
	SerializedLen() int
}

// GetFieldFromOrder returns the field implementation for the given
// scalar field order.
func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bls12381.ScalarField) == 0 {
		return &bls12381.Field{}
	}
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
