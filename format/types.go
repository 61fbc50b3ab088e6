package format

type (
	DataType        uint8
	CompressionType uint8
)

// Element type codes. They are written into every blob and must never be reassigned.
const (
	TypeInt8    DataType = 0 // TypeInt8 represents signed 8-bit integers.
	TypeUint8   DataType = 1 // TypeUint8 represents unsigned 8-bit integers.
	TypeInt16   DataType = 2 // TypeInt16 represents signed 16-bit integers.
	TypeUint16  DataType = 3 // TypeUint16 represents unsigned 16-bit integers.
	TypeInt32   DataType = 4 // TypeInt32 represents signed 32-bit integers.
	TypeUint32  DataType = 5 // TypeUint32 represents unsigned 32-bit integers.
	TypeFloat32 DataType = 6 // TypeFloat32 represents IEEE 754 single precision floats.
	TypeFloat64 DataType = 7 // TypeFloat64 represents IEEE 754 double precision floats.
)

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.
)

var dataTypeSizes = [...]int{
	TypeInt8:    1,
	TypeUint8:   1,
	TypeInt16:   2,
	TypeUint16:  2,
	TypeInt32:   4,
	TypeUint32:  4,
	TypeFloat32: 4,
	TypeFloat64: 8,
}

// IsValid reports whether d is one of the registered element types.
func (d DataType) IsValid() bool {
	return int(d) < len(dataTypeSizes)
}

// Size returns the number of bytes occupied by one element, or 0 for an unknown type.
func (d DataType) Size() int {
	if !d.IsValid() {
		return 0
	}

	return dataTypeSizes[d]
}

// IsFloat reports whether d is a floating point type.
func (d DataType) IsFloat() bool {
	return d == TypeFloat32 || d == TypeFloat64
}

// Range returns the smallest and largest values representable by d.
// Float types report their finite extremes.
func (d DataType) Range() (float64, float64) {
	switch d {
	case TypeInt8:
		return -128, 127
	case TypeUint8:
		return 0, 255
	case TypeInt16:
		return -32768, 32767
	case TypeUint16:
		return 0, 65535
	case TypeInt32:
		return -2147483648, 2147483647
	case TypeUint32:
		return 0, 4294967295
	case TypeFloat32:
		return -3.4028234663852886e+38, 3.4028234663852886e+38
	case TypeFloat64:
		return -1.7976931348623157e+308, 1.7976931348623157e+308
	default:
		return 0, 0
	}
}

func (d DataType) String() string {
	switch d {
	case TypeInt8:
		return "Int8"
	case TypeUint8:
		return "Uint8"
	case TypeInt16:
		return "Int16"
	case TypeUint16:
		return "Uint16"
	case TypeInt32:
		return "Int32"
	case TypeUint32:
		return "Uint32"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
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
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}
