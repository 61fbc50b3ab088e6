// Package endian provides byte order utilities for the lerc wire format.
//
// Two byte orders matter to a codec engine:
//
//   - the order of the blob itself, recorded in the header flag (little-endian by default)
//   - the host order of caller value buffers, which cross the engine boundary as
//     zero-copy byte views of typed slices
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so that both
// orders are handled through the same interface:
//
//	blobOrder := endian.GetLittleEndianEngine()
//	hostOrder := endian.NativeEngine()
//	v := hostOrder.Uint32(values[i*4:])
//	body = blobOrder.AppendUint32(body, v)
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x01 first only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
// Byte views of typed slices in that order can be copied without conversion.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	if CheckEndianness() == binary.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
