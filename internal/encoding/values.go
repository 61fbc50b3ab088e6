package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/lerc/endian"
	"github.com/arloliu/lerc/format"
)

// ValueReader returns element i of buf widened to float64.
type ValueReader func(buf []byte, i int) float64

// ValueWriter narrows v to the element type and stores it as element i of buf.
//
// v must be representable in the element type; integer writers round to the
// nearest integer and saturate at the type bounds.
type ValueWriter func(buf []byte, i int, v float64)

// NewValueReader creates a reader for elements of type dt stored in the byte order of engine.
func NewValueReader(dt format.DataType, engine endian.EndianEngine) (ValueReader, error) {
	switch dt {
	case format.TypeInt8:
		return func(buf []byte, i int) float64 { return float64(int8(buf[i])) }, nil
	case format.TypeUint8:
		return func(buf []byte, i int) float64 { return float64(buf[i]) }, nil
	case format.TypeInt16:
		return func(buf []byte, i int) float64 { return float64(int16(engine.Uint16(buf[i*2:]))) }, nil
	case format.TypeUint16:
		return func(buf []byte, i int) float64 { return float64(engine.Uint16(buf[i*2:])) }, nil
	case format.TypeInt32:
		return func(buf []byte, i int) float64 { return float64(int32(engine.Uint32(buf[i*4:]))) }, nil
	case format.TypeUint32:
		return func(buf []byte, i int) float64 { return float64(engine.Uint32(buf[i*4:])) }, nil
	case format.TypeFloat32:
		return func(buf []byte, i int) float64 { return float64(math.Float32frombits(engine.Uint32(buf[i*4:]))) }, nil
	case format.TypeFloat64:
		return func(buf []byte, i int) float64 { return math.Float64frombits(engine.Uint64(buf[i*8:])) }, nil
	default:
		return nil, fmt.Errorf("unsupported data type: %d", dt)
	}
}

// NewValueWriter creates a writer for elements of type dt stored in the byte order of engine.
func NewValueWriter(dt format.DataType, engine endian.EndianEngine) (ValueWriter, error) {
	switch dt {
	case format.TypeInt8:
		return func(buf []byte, i int, v float64) { buf[i] = byte(int8(toInt(dt, v))) }, nil
	case format.TypeUint8:
		return func(buf []byte, i int, v float64) { buf[i] = byte(toInt(dt, v)) }, nil
	case format.TypeInt16:
		return func(buf []byte, i int, v float64) { engine.PutUint16(buf[i*2:], uint16(int16(toInt(dt, v)))) }, nil
	case format.TypeUint16:
		return func(buf []byte, i int, v float64) { engine.PutUint16(buf[i*2:], uint16(toInt(dt, v))) }, nil
	case format.TypeInt32:
		return func(buf []byte, i int, v float64) { engine.PutUint32(buf[i*4:], uint32(int32(toInt(dt, v)))) }, nil
	case format.TypeUint32:
		return func(buf []byte, i int, v float64) { engine.PutUint32(buf[i*4:], uint32(toInt(dt, v))) }, nil
	case format.TypeFloat32:
		return func(buf []byte, i int, v float64) { engine.PutUint32(buf[i*4:], math.Float32bits(float32(v))) }, nil
	case format.TypeFloat64:
		return func(buf []byte, i int, v float64) { engine.PutUint64(buf[i*8:], math.Float64bits(v)) }, nil
	default:
		return nil, fmt.Errorf("unsupported data type: %d", dt)
	}
}

// AppendValue appends v encoded as type dt to dst.
func AppendValue(dst []byte, dt format.DataType, engine endian.EndianEngine, v float64) []byte {
	switch dt {
	case format.TypeInt8:
		return append(dst, byte(int8(toInt(dt, v))))
	case format.TypeUint8:
		return append(dst, byte(toInt(dt, v)))
	case format.TypeInt16:
		return engine.AppendUint16(dst, uint16(int16(toInt(dt, v))))
	case format.TypeUint16:
		return engine.AppendUint16(dst, uint16(toInt(dt, v)))
	case format.TypeInt32:
		return engine.AppendUint32(dst, uint32(int32(toInt(dt, v))))
	case format.TypeUint32:
		return engine.AppendUint32(dst, uint32(toInt(dt, v)))
	case format.TypeFloat32:
		return engine.AppendUint32(dst, math.Float32bits(float32(v)))
	case format.TypeFloat64:
		return engine.AppendUint64(dst, math.Float64bits(v))
	default:
		return dst
	}
}

// Narrow returns v as it reads back after being stored as type dt.
func Narrow(dt format.DataType, v float64) float64 {
	switch dt {
	case format.TypeFloat32:
		return float64(float32(v))
	case format.TypeFloat64:
		return v
	default:
		return float64(toInt(dt, v))
	}
}

func toInt(dt format.DataType, v float64) int64 {
	lo, hi := dt.Range()
	switch {
	case math.IsNaN(v):
		return 0
	case v <= lo:
		return int64(lo)
	case v >= hi:
		return int64(hi)
	default:
		return int64(math.Round(v))
	}
}
