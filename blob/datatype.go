package blob

import (
	"unsafe"

	"github.com/arloliu/lerc/format"
)

// Element is the closed set of value types a blob can hold.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// DataTypeOf returns the registered type code of T.
//
// The code is derived from the size, signedness and integrality of T, so every
// instantiation resolves to a fixed code without inspecting values at runtime.
func DataTypeOf[T Element]() format.DataType {
	var zero, one T = 0, 1

	size := unsafe.Sizeof(zero)
	isFloat := one/2 != zero
	isSigned := zero-one < zero

	switch {
	case isFloat && size == 4:
		return format.TypeFloat32
	case isFloat:
		return format.TypeFloat64
	case isSigned && size == 1:
		return format.TypeInt8
	case isSigned && size == 2:
		return format.TypeInt16
	case isSigned:
		return format.TypeInt32
	case size == 1:
		return format.TypeUint8
	case size == 2:
		return format.TypeUint16
	default:
		return format.TypeUint32
	}
}

// asBytes returns a byte view of values sharing its memory, in host byte order.
func asBytes[T Element](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*int(unsafe.Sizeof(values[0])))
}
