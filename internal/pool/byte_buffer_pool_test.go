package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/numpack/scalar"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteResetReuse(t *testing.T) {
	bb := NewByteBuffer(PackBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.Bytes())
	assert.True(t, &bb.B[0] == &bb.Bytes()[0], "Bytes() should return the same underlying slice")

	originalCap := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")

	bb.MustWrite([]byte("second"))
	assert.Equal(t, []byte("second"), bb.B)
}

func TestByteBuffer_ExtendAndSetLength(t *testing.T) {
	bb := NewByteBuffer(16)

	require.True(t, bb.Extend(8), "extend within capacity should succeed")
	assert.Equal(t, 8, bb.Len())

	require.False(t, bb.Extend(1024), "extend beyond capacity should fail")

	bb.ExtendOrGrow(1024)
	assert.Equal(t, 8+1024, bb.Len())

	bb.SetLength(4)
	assert.Equal(t, 4, bb.Len())

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.Slice(2, 1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(PackBufferDefaultSize)
	originalCap := bb.Cap()

	bb.Grow(100)
	assert.Equal(t, originalCap, bb.Cap(), "should not reallocate when capacity is sufficient")

	data := []byte("data that must survive growth")
	bb.MustWrite(data)
	bb.Grow(PackBufferDefaultSize * 4)

	assert.GreaterOrEqual(t, bb.Cap(), PackBufferDefaultSize*4, "should have at least requested capacity")
	assert.Equal(t, data, bb.B, "data should be preserved after growth")
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetPutPackBuffer(t *testing.T) {
	bb := GetPackBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), PackBufferDefaultSize)

	bb.MustWrite([]byte("payload"))
	PutPackBuffer(bb)
	assert.Equal(t, 0, bb.Len(), "PutPackBuffer should reset the buffer")

	assert.NotPanics(t, func() { PutPackBuffer(nil) })
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(10000)
	assert.Greater(t, bb.Cap(), 4096, "buffer should have grown beyond threshold")

	// Oversized buffers are discarded on Put.
	p.Put(bb)
	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 4096*2, "should not reuse buffer larger than threshold")
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 32
	const numIterations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetPackBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutPackBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

// =============================================================================
// Value Slice Pool Tests
// =============================================================================

func TestGetValueSlice(t *testing.T) {
	slice, release := GetValueSlice(128)

	require.Len(t, slice, 128)
	slice[0] = scalar.Int(42)
	slice[127] = scalar.Float(1.5)
	release()

	// A second request may reuse the backing array; length must match anyway.
	slice2, release2 := GetValueSlice(64)
	require.Len(t, slice2, 64)
	release2()
}

func TestGetValueSlice_GrowsWhenNeeded(t *testing.T) {
	small, release := GetValueSlice(4)
	require.Len(t, small, 4)
	release()

	big, release2 := GetValueSlice(100000)
	require.Len(t, big, 100000)
	release2()
}

// =============================================================================
// Benchmark Tests
// =============================================================================

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := []byte("benchmark data")

	b.ResetTimer()
	for b.Loop() {
		bb := GetPackBuffer()
		bb.MustWrite(data)
		PutPackBuffer(bb)
	}
}

func BenchmarkPool_vs_NewBuffer(b *testing.B) {
	data := make([]byte, 1024)

	b.Run("WithPool", func(b *testing.B) {
		for b.Loop() {
			bb := GetPackBuffer()
			bb.MustWrite(data)
			PutPackBuffer(bb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for b.Loop() {
			bb := NewByteBuffer(PackBufferDefaultSize)
			bb.MustWrite(data)
		}
	})
}

func BenchmarkGetValueSlice(b *testing.B) {
	for b.Loop() {
		slice, release := GetValueSlice(65536)
		_ = slice
		release()
	}
}
