package format

import "math"

// Candidate describes one representable element type: its code, signedness,
// bit width, and the exact value range it covers.
//
// Integer candidates carry exact bounds in MinInt and MaxUint. Float
// candidates carry the largest finite magnitude they can hold in
// MaxMagnitude; MinInt and MaxUint are zero for them.
type Candidate struct {
	Code         TypeCode
	Signed       bool
	Float        bool
	Bits         uint8
	MinInt       int64
	MaxUint      uint64
	MaxMagnitude float64
}

// Width returns the byte width of one element of this candidate.
func (c Candidate) Width() int {
	return c.Code.Size()
}

func (c Candidate) String() string {
	return c.Code.String()
}

// catalog is ordered by TypeCode.Rank: ascending width, signed before
// unsigned at equal width, floats after all integers. Selection walks
// slices of this table, so the order is part of the contract.
var catalog = [...]Candidate{
	{Code: TypeInt8, Signed: true, Bits: 8, MinInt: math.MinInt8, MaxUint: math.MaxInt8},
	{Code: TypeUint8, Bits: 8, MaxUint: math.MaxUint8},
	{Code: TypeInt16, Signed: true, Bits: 16, MinInt: math.MinInt16, MaxUint: math.MaxInt16},
	{Code: TypeUint16, Bits: 16, MaxUint: math.MaxUint16},
	{Code: TypeInt32, Signed: true, Bits: 32, MinInt: math.MinInt32, MaxUint: math.MaxInt32},
	{Code: TypeUint32, Bits: 32, MaxUint: math.MaxUint32},
	{Code: TypeInt64, Signed: true, Bits: 64, MinInt: math.MinInt64, MaxUint: math.MaxInt64},
	{Code: TypeUint64, Bits: 64, MaxUint: math.MaxUint64},
	{Code: TypeFloat32, Signed: true, Float: true, Bits: 32, MaxMagnitude: math.MaxFloat32},
	{Code: TypeFloat64, Signed: true, Float: true, Bits: 64, MaxMagnitude: math.Inf(1)},
}

// Catalog returns all candidates in rank order. The returned slice is a
// copy; callers may reorder or filter it freely.
func Catalog() []Candidate {
	out := make([]Candidate, len(catalog))
	copy(out, catalog[:])

	return out
}

// CandidateOf returns the catalog entry for the given code.
// It returns false for TypeInvalid or any out-of-catalog value.
func CandidateOf(code TypeCode) (Candidate, bool) {
	r := code.Rank()
	if r < 0 || r >= len(catalog) {
		return Candidate{}, false
	}

	return catalog[r], true
}
