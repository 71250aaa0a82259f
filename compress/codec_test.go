package compress

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/numpack/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}
}

// uint16RampPayload builds a fixed-width payload the way the packer lays out
// uint16 elements: dense little-endian values with lots of repeated high bytes.
func uint16RampPayload(count int) []byte {
	payload := make([]byte, count*2)
	for i := range count {
		binary.LittleEndian.PutUint16(payload[i*2:], uint16(i%512))
	}

	return payload
}

// float64WavePayload builds a high-entropy payload of IEEE 754 bit patterns.
func float64WavePayload(count int) []byte {
	payload := make([]byte, count*8)
	for i := range count {
		bits := math.Float64bits(math.Sin(float64(i) * 0.1))
		binary.LittleEndian.PutUint64(payload[i*8:], bits)
	}

	return payload
}

func TestCompressionStats_Calculations(t *testing.T) {
	stats := CompressionStats{
		Algorithm:      format.CompressionZstd,
		OriginalSize:   1000,
		CompressedSize: 250,
	}

	assert.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	assert.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	empty := CompressionStats{Algorithm: format.CompressionNone}
	assert.Equal(t, 0.0, empty.CompressionRatio())
}

func TestCreateCodec_AllTypes(t *testing.T) {
	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(cType, "payload")
		require.NoError(t, err, "compression type %s", cType)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xEE), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec_Unsupported(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"uint16 ramp":    uint16RampPayload(4096),
		"float64 wave":   float64WavePayload(1024),
		"constant int64": make([]byte, 8*1024),
		"single byte":    {0x42},
		"odd length":     {1, 2, 3, 4, 5, 6, 7},
	}

	for codecName, codec := range getAllCodecs() {
		for payloadName, payload := range payloads {
			t.Run(fmt.Sprintf("%s/%s", codecName, payloadName), func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestAllCodecs_CompressesRepetitivePayloads(t *testing.T) {
	payload := uint16RampPayload(16384)

	for name, codec := range getAllCodecs() {
		if name == "noop" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(payload), "%s should shrink a repetitive payload", name)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	// Starts with a tiny claimed length so codecs reject it without first
	// allocating a huge destination buffer.
	garbage := []byte{0x04, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	for name, codec := range getAllCodecs() {
		if name == "noop" {
			continue // noop passes data through unchanged
		}
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err, "%s should reject garbage input", name)
		})
	}
}

func TestNoOpCompressor_RoundTrip(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := float64WavePayload(64)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	// NoOp returns the same backing slice, not a copy
	require.Equal(t, &payload[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &decompressed[0])
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	payload := uint16RampPayload(2048)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 32)

			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 4 {
						compressed, err := codec.Compress(payload)
						if err != nil {
							errCh <- err
							return
						}
						decompressed, err := codec.Decompress(compressed)
						if err != nil {
							errCh <- err
							return
						}
						if len(decompressed) != len(payload) {
							errCh <- fmt.Errorf("length mismatch: got %d, want %d", len(decompressed), len(payload))
							return
						}
					}
				}()
			}

			wg.Wait()
			close(errCh)
			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}
