package pack

import (
	"iter"

	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/scalar"
)

// ResultSet collects the windows of a stream and provides unified access
// across them with global element indices.
//
// Windows keep their stream order; a set built from Stream output iterates
// elements in the exact order they were supplied.
type ResultSet struct {
	results []Result
	total   int
}

// NewResultSet builds a set over the given windows. The slice is copied;
// the windows themselves are shared.
func NewResultSet(results []Result) ResultSet {
	owned := make([]Result, len(results))
	copy(owned, results)

	total := 0
	for _, res := range owned {
		total += res.Len()
	}

	return ResultSet{results: owned, total: total}
}

// Collect drains a stream into a ResultSet.
//
// Example:
//
//	seq, err := pack.Stream(values, pack.WithChunkSize(4096))
//	if err != nil {
//	    return err
//	}
//	set := pack.Collect(seq)
func Collect(seq iter.Seq[Result]) ResultSet {
	var results []Result
	for res := range seq {
		results = append(results, res)
	}

	return NewResultSet(results)
}

// Len returns the total element count across all windows.
func (rs ResultSet) Len() int {
	return rs.total
}

// Results returns the windows in stream order. Callers must not modify the
// returned slice.
func (rs ResultSet) Results() []Result {
	return rs.results
}

// PackedCount returns the number of packed windows.
func (rs ResultSet) PackedCount() int {
	count := 0
	for _, res := range rs.results {
		if res.IsPacked() {
			count++
		}
	}

	return count
}

// FallbackCount returns the number of fallback windows.
func (rs ResultSet) FallbackCount() int {
	return len(rs.results) - rs.PackedCount()
}

// Homogeneous reports whether every window packed as one shared type, and
// which. An empty set and a set containing any fallback are not
// homogeneous.
func (rs ResultSet) Homogeneous() (format.TypeCode, bool) {
	code := format.TypeInvalid
	for _, res := range rs.results {
		pb, ok := res.AsPacked()
		if !ok {
			return format.TypeInvalid, false
		}

		switch {
		case code == format.TypeInvalid:
			code = pb.TypeCode()
		case code != pb.TypeCode():
			return format.TypeInvalid, false
		}
	}

	if code == format.TypeInvalid {
		return format.TypeInvalid, false
	}

	return code, true
}

// All iterates every element across all windows in stream order.
// Returns global index and value for each iteration.
func (rs ResultSet) All() iter.Seq2[int, scalar.Value] {
	return func(yield func(int, scalar.Value) bool) {
		index := 0
		for _, res := range rs.results {
			for v := range res.All() {
				if !yield(index, v) {
					return
				}
				index++
			}
		}
	}
}

// At returns the element at the given global index across all windows.
// Returns false if the index is out of range.
func (rs ResultSet) At(index int) (scalar.Value, bool) {
	if index < 0 || index >= rs.total {
		return scalar.Value{}, false
	}

	for _, res := range rs.results {
		n := res.Len()
		if index < n {
			return res.At(index)
		}
		index -= n
	}

	return scalar.Value{}, false
}
