package arrowconv

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/arloliu/numpack/format"
)

// dataTypes maps every catalog element type to its Arrow primitive
// equivalent. The catalog holds exactly the fixed-width numerics Arrow
// also treats as primitives, so the mapping is total in both directions.
var dataTypes = map[format.TypeCode]arrow.DataType{
	format.TypeInt8:    arrow.PrimitiveTypes.Int8,
	format.TypeUint8:   arrow.PrimitiveTypes.Uint8,
	format.TypeInt16:   arrow.PrimitiveTypes.Int16,
	format.TypeUint16:  arrow.PrimitiveTypes.Uint16,
	format.TypeInt32:   arrow.PrimitiveTypes.Int32,
	format.TypeUint32:  arrow.PrimitiveTypes.Uint32,
	format.TypeInt64:   arrow.PrimitiveTypes.Int64,
	format.TypeUint64:  arrow.PrimitiveTypes.Uint64,
	format.TypeFloat32: arrow.PrimitiveTypes.Float32,
	format.TypeFloat64: arrow.PrimitiveTypes.Float64,
}

// DataTypeOf returns the Arrow data type matching a catalog code.
// It returns false for format.TypeInvalid or any out-of-catalog value.
func DataTypeOf(code format.TypeCode) (arrow.DataType, bool) {
	dt, ok := dataTypes[code]

	return dt, ok
}

// TypeCodeOf returns the catalog code matching an Arrow data type.
// It returns false for non-primitive and non-numeric Arrow types.
func TypeCodeOf(dt arrow.DataType) (format.TypeCode, bool) {
	switch dt.ID() {
	case arrow.INT8:
		return format.TypeInt8, true
	case arrow.UINT8:
		return format.TypeUint8, true
	case arrow.INT16:
		return format.TypeInt16, true
	case arrow.UINT16:
		return format.TypeUint16, true
	case arrow.INT32:
		return format.TypeInt32, true
	case arrow.UINT32:
		return format.TypeUint32, true
	case arrow.INT64:
		return format.TypeInt64, true
	case arrow.UINT64:
		return format.TypeUint64, true
	case arrow.FLOAT32:
		return format.TypeFloat32, true
	case arrow.FLOAT64:
		return format.TypeFloat64, true
	default:
		return format.TypeInvalid, false
	}
}
