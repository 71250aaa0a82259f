package pool

import (
	"sync"

	"github.com/arloliu/numpack/scalar"
)

var valueSlicePool = sync.Pool{
	New: func() any { return &[]scalar.Value{} },
}

// GetValueSlice retrieves a scalar.Value slice of the given length from the
// pool, allocating a fresh one when the pooled slice is too small.
//
// The caller must call the returned release function once the slice is no
// longer referenced. Windows that escape to the caller (fallback output) must
// skip the release so the recycled backing array is never aliased.
//
// Example:
//
//	window, release := pool.GetValueSlice(chunkSize)
//	// fill and pack window...
//	release()
func GetValueSlice(size int) ([]scalar.Value, func()) {
	ptr, _ := valueSlicePool.Get().(*[]scalar.Value)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]scalar.Value, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { valueSlicePool.Put(ptr) }
}
