package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64Tagged computes the xxHash64 of a single tag byte followed by data,
// without materializing the concatenation.
func Sum64Tagged(tag byte, data []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{tag})
	_, _ = d.Write(data)

	return d.Sum64()
}
