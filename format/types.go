package format

type (
	TypeCode        uint8
	CompressionType uint8
)

const (
	TypeInvalid TypeCode = 0x0 // TypeInvalid represents no usable element type.
	TypeInt8    TypeCode = 0x1 // TypeInt8 represents signed 8-bit integers.
	TypeUint8   TypeCode = 0x2 // TypeUint8 represents unsigned 8-bit integers.
	TypeInt16   TypeCode = 0x3 // TypeInt16 represents signed 16-bit integers.
	TypeUint16  TypeCode = 0x4 // TypeUint16 represents unsigned 16-bit integers.
	TypeInt32   TypeCode = 0x5 // TypeInt32 represents signed 32-bit integers.
	TypeUint32  TypeCode = 0x6 // TypeUint32 represents unsigned 32-bit integers.
	TypeInt64   TypeCode = 0x7 // TypeInt64 represents signed 64-bit integers.
	TypeUint64  TypeCode = 0x8 // TypeUint64 represents unsigned 64-bit integers.
	TypeFloat32 TypeCode = 0x9 // TypeFloat32 represents IEEE 754 single-precision floats.
	TypeFloat64 TypeCode = 0xA // TypeFloat64 represents IEEE 754 double-precision floats.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (t TypeCode) String() string {
	switch t {
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeUint16:
		return "uint16"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// Size returns the byte width of one element of this type, or 0 for TypeInvalid.
func (t TypeCode) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// IsValid reports whether the code names one of the ten catalog types.
func (t TypeCode) IsValid() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// IsFloat reports whether the code names a floating-point type.
func (t TypeCode) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsSigned reports whether the code names a signed integer or float type.
// Floats are signed by nature.
func (t TypeCode) IsSigned() bool {
	switch t {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64, TypeFloat32, TypeFloat64:
		return true
	default:
		return false
	}
}

// Rank returns the position of the code in the narrowness order used by
// candidate selection, or -1 for TypeInvalid. Narrower types rank lower,
// unsigned ranks above signed at equal width, and floats rank above all
// integers.
func (t TypeCode) Rank() int {
	if !t.IsValid() {
		return -1
	}

	return int(t) - 1
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
