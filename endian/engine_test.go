package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness_MatchesHost(t *testing.T) {
	result := CheckEndianness()

	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	default:
		t.Fatalf("unexpected probe byte: %v", first)
	}

	// Stable across calls.
	for range 10 {
		require.Equal(t, result, CheckEndianness())
	}
}

func TestNativeChecks_AreInverse(t *testing.T) {
	little := IsNativeLittleEndian()
	big := IsNativeBigEndian()

	require.NotEqual(t, little, big)
	require.True(t, little || big)
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestEngines_RoundTrip(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), little)
	require.Implements(t, (*EndianEngine)(nil), big)

	var v16 uint16 = 0x0102
	lb := make([]byte, 2)
	bb := make([]byte, 2)
	little.PutUint16(lb, v16)
	big.PutUint16(bb, v16)

	require.Equal(t, byte(0x02), lb[0], "little endian puts LSB first")
	require.Equal(t, byte(0x01), bb[0], "big endian puts MSB first")
	require.Equal(t, v16, little.Uint16(lb))
	require.Equal(t, v16, big.Uint16(bb))

	var v64 uint64 = 0x0102030405060708
	lb64 := little.AppendUint64(nil, v64)
	bb64 := big.AppendUint64(nil, v64)

	require.NotEqual(t, lb64, bb64)
	require.Equal(t, v64, little.Uint64(lb64))
	require.Equal(t, v64, big.Uint64(bb64))
}
