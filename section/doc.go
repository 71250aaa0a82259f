// Package section defines the low-level binary structures and constants for the compact container format.
//
// This package provides the types that define the physical layout of compact
// containers. It handles binary serialization and deserialization of the
// header and its flag field, ensuring a consistent byte-level representation
// across platforms.
//
// # Container Structure
//
// A compact container is a fixed-size header followed by a single payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	│  - Flag (2 bytes): endianness + magic number            │
//	│  - TypeCode (1 byte): element type of the payload       │
//	│  - Compression (1 byte): payload codec                  │
//	│  - Count (4 bytes): number of elements                  │
//	│  - PayloadSize (4 bytes): stored payload bytes          │
//	│  - Reserved (4 bytes): must be zero                     │
//	│  - Checksum (8 bytes): xxHash64 of stored payload       │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                             │
//	│  - Fixed-width elements, optionally compressed          │
//	└─────────────────────────────────────────────────────────┘
//
// The Flag field is always stored little-endian so the endianness bit can be
// read before the byte order of anything else is known. All remaining header
// fields and the payload itself follow the byte order the flag declares.
//
// When Compression is format.CompressionNone, the payload is exactly
// Count × TypeCode.Size() bytes and native-order payloads can be
// reinterpreted in place without copying.
//
// # Usage
//
// Headers are usually produced and consumed by pack.Compact and pack.Restore;
// use this package directly to inspect a container without restoring it:
//
//	header, err := section.ParseCompactHeader(container)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(header.TypeCode, header.Count)
package section
