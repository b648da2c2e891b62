package circuit

import (
	"bytes"
	"io"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// The encoding is deterministic CBOR: independent compilations of the
// same source are byte-identical, so keys derived from the encoding
// match bit for bit.

// serializedSystem mirrors ConstraintSystem with the public-wire set
// flattened to its word representation.
type serializedSystem struct {
	FieldOrder *big.Int
	Gates      []Gate
	NbWires    int
	Wires      map[string]int
	WireNames  []string
	Public     []uint64
	PublicLen  uint
}

// WriteTo encodes the constraint system to w.
func (cs *ConstraintSystem) WriteTo(w io.Writer) (int64, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	s := serializedSystem{
		FieldOrder: cs.FieldOrder,
		Gates:      cs.Gates,
		NbWires:    cs.NbWires,
		Wires:      cs.Wires,
		WireNames:  cs.WireNames,
		Public:     cs.Public.Bytes(),
		PublicLen:  cs.Public.Len(),
	}
	var buf bytes.Buffer
	if err := enc.NewEncoder(&buf).Encode(&s); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadFrom decodes a constraint system from r, replacing the receiver's
// contents.
func (cs *ConstraintSystem) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	dm, err := cbor.DecOptions{
		MaxArrayElements: 2147483647,
		MaxMapPairs:      2147483647,
	}.DecMode()
	if err != nil {
		return 0, err
	}
	var s serializedSystem
	if err := dm.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	cs.FieldOrder = s.FieldOrder
	cs.Gates = s.Gates
	cs.NbWires = s.NbWires
	cs.Wires = s.Wires
	cs.WireNames = s.WireNames
	cs.Public = bitset.FromWithLength(s.PublicLen, s.Public)
	return int64(len(data)), nil
}

// ID returns a 32-byte circuit identifier, the blake2b digest of the
// deterministic encoding.
func (cs *ConstraintSystem) ID() ([32]byte, error) {
	var buf bytes.Buffer
	if _, err := cs.WriteTo(&buf); err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(buf.Bytes()), nil
}
