package engine

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/els0r/telemetry/logging"

	"github.com/arloliu/lerc/endian"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
	ienc "github.com/arloliu/lerc/internal/encoding"
	"github.com/arloliu/lerc/internal/pool"
)

// Band section modes. Every band section starts with one mode byte.
const (
	// bandEmpty has no valid pixels and no payload.
	bandEmpty byte = 0
	// bandConstant stores one float64 shared by all valid values.
	bandConstant byte = 1
	// bandQuantized stores zMin, zMax and step as float64, a uvarint payload
	// length and the bit-packed quantized indexes.
	bandQuantized byte = 2
	// bandRaw stores the valid values verbatim in the element type.
	bandRaw byte = 3
)

// quantizedOverhead is the mode byte plus zMin, zMax and step.
const quantizedOverhead = 1 + 3*8

// effectiveMaxZError returns the error bound the engine actually encodes with.
// Integer types never use a bound below 0.5, which is lossless for them.
func effectiveMaxZError(dt format.DataType, maxZError float64) float64 {
	if dt.IsFloat() {
		return maxZError
	}

	return math.Max(0.5, math.Floor(maxZError))
}

// bandEncoder appends band sections for one encode call.
type bandEncoder struct {
	p         Params
	read      ienc.ValueReader
	order     endian.EndianEngine
	maxZError float64
	logger    *logging.L

	// valid value range over all bands
	zMin, zMax float64
	hasRange   bool
}

func newBandEncoder(p Params, order endian.EndianEngine, logger *logging.L) (*bandEncoder, error) {
	read, err := ienc.NewValueReader(p.DataType, endian.NativeEngine())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrWrongParam, err)
	}

	return &bandEncoder{
		p:         p,
		read:      read,
		order:     order,
		maxZError: effectiveMaxZError(p.DataType, p.MaxZError),
		logger:    logger,
	}, nil
}

// encode appends the section of band to dst and returns the number of valid pixels.
// bandMask is nil when every pixel is valid.
func (e *bandEncoder) encode(dst, values, bandMask []byte, band int) ([]byte, int, error) {
	pc := e.p.PixelCount()
	depth := e.p.Depth
	base := band * pc * depth

	vals, release := pool.GetFloat64Slice(pc * depth)
	defer release()
	vals = vals[:0]

	valid := 0
	for px := range pc {
		if bandMask != nil && bandMask[px] == 0 {
			continue
		}
		valid++

		idx := base + px*depth
		for d := range depth {
			v := e.read(values, idx+d)
			if math.IsNaN(v) {
				return dst, 0, fmt.Errorf("%w: band %d pixel %d", errs.ErrNaN, band, px)
			}
			vals = append(vals, v)
		}
	}

	if len(vals) == 0 {
		return append(dst, bandEmpty), 0, nil
	}

	lo, hi := vals[0], vals[0]
	first := math.Float64bits(vals[0])
	constant := true
	for _, v := range vals[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
		if constant && math.Float64bits(v) != first {
			constant = false
		}
	}
	e.extendRange(lo, hi)

	if constant {
		dst = append(dst, bandConstant)
		return e.order.AppendUint64(dst, first), valid, nil
	}

	return e.appendValues(dst, vals, lo, hi, band), valid, nil
}

func (e *bandEncoder) extendRange(lo, hi float64) {
	if !e.hasRange {
		e.zMin, e.zMax, e.hasRange = lo, hi, true
		return
	}

	e.zMin = min(e.zMin, lo)
	e.zMax = max(e.zMax, hi)
}

// appendValues stores vals quantized when that is within the error bound and
// smaller than the raw form, verbatim otherwise.
func (e *bandEncoder) appendValues(dst []byte, vals []float64, lo, hi float64, band int) []byte {
	rawSize := 1 + len(vals)*e.p.DataType.Size()

	if packed, q, ok := e.quantize(vals, lo, hi); ok {
		if packed == nil {
			// every value reads back as zMin within the error bound
			dst = append(dst, bandConstant)
			return e.order.AppendUint64(dst, math.Float64bits(q.Dequantize(0)))
		}

		var lenBuf [binary.MaxVarintLen64]byte
		lenSize := binary.PutUvarint(lenBuf[:], uint64(len(packed)))

		if quantizedOverhead+lenSize+len(packed) < rawSize {
			dst = append(dst, bandQuantized)
			dst = e.order.AppendUint64(dst, math.Float64bits(q.ZMin))
			dst = e.order.AppendUint64(dst, math.Float64bits(q.ZMax))
			dst = e.order.AppendUint64(dst, math.Float64bits(q.Step))
			dst = append(dst, lenBuf[:lenSize]...)

			return append(dst, packed...)
		}

		e.logger.Debugf("band %d: quantized size %d not below raw size %d, storing raw", band, len(packed), rawSize)
	}

	dst = append(dst, bandRaw)
	for _, v := range vals {
		dst = ienc.AppendValue(dst, e.p.DataType, e.order, v)
	}

	return dst
}

// quantize maps vals onto the quantization grid and packs the indexes.
//
// Returns false when the range does not fit the grid or any value would read
// back outside the error bound. The packed data is nil when every index is zero.
func (e *bandEncoder) quantize(vals []float64, lo, hi float64) ([]byte, ienc.Quantizer, bool) {
	step, tolerance := 2*e.maxZError, e.maxZError
	if e.maxZError == 0 {
		// lossless floats: works for integral values only, verified below
		step = 1
	}

	q, ok := ienc.NewQuantizer(lo, hi, step)
	if !ok {
		return nil, q, false
	}

	// every index is zero: the band reads back as zMin
	if q.MaxIndex() == 0 {
		for _, v := range vals {
			if !e.withinTolerance(ienc.Narrow(e.p.DataType, q.Dequantize(0)), v, tolerance) {
				return nil, q, false
			}
		}

		return nil, q, true
	}

	indexes, release := pool.GetUint64Slice(len(vals))
	defer release()

	for i, v := range vals {
		n := q.Quantize(v)
		if !e.withinTolerance(ienc.Narrow(e.p.DataType, q.Dequantize(n)), v, tolerance) {
			return nil, q, false
		}
		indexes[i] = n
	}

	return ienc.PackQuantized(indexes), q, true
}

// withinTolerance reports whether rec reads back as v within tolerance.
// A zero tolerance requires a bit-exact match.
func (e *bandEncoder) withinTolerance(rec, v, tolerance float64) bool {
	if tolerance == 0 {
		return math.Float64bits(rec) == math.Float64bits(v)
	}

	return math.Abs(rec-v) <= tolerance
}

// bandDecoder reads band sections for one decode call.
type bandDecoder struct {
	p         Params
	write     ienc.ValueWriter
	readStore ienc.ValueReader
	// native is set when the blob byte order equals the host order, so raw
	// sections of fully valid bands are copied as is.
	native bool
}

func newBandDecoder(p Params, order endian.EndianEngine) (*bandDecoder, error) {
	write, err := ienc.NewValueWriter(p.DataType, endian.NativeEngine())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrWrongParam, err)
	}

	readStore, err := ienc.NewValueReader(p.DataType, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrWrongParam, err)
	}

	return &bandDecoder{
		p:         p,
		write:     write,
		readStore: readStore,
		native:    endian.CompareNativeEndian(order),
	}, nil
}

// decode reads the section of band from r into values. Invalid pixels are set to zero.
// bandMask is nil when every pixel is valid.
func (d *bandDecoder) decode(r *bodyReader, values, bandMask []byte, band int) error {
	pc := d.p.PixelCount()
	depth := d.p.Depth
	base := band * pc * depth

	valid := pc
	if bandMask != nil {
		valid = ienc.CountValid(bandMask)
	}
	n := valid * depth

	mode, err := r.readByte()
	if err != nil {
		return err
	}

	var valueAt func(i int) float64
	switch mode {
	case bandEmpty:
		if valid != 0 {
			return fmt.Errorf("%w: band %d empty with %d valid pixels", errs.ErrInvalidBody, band, valid)
		}
	case bandConstant:
		c, err := r.readFloat64()
		if err != nil {
			return err
		}
		valueAt = func(int) float64 { return c }
	case bandQuantized:
		q, err := readQuantizer(r)
		if err != nil {
			return err
		}

		size, err := r.readUvarint()
		if err != nil {
			return err
		}
		if size > uint64(r.remaining()) {
			return fmt.Errorf("%w: band %d payload of %d bytes truncated", errs.ErrInvalidBody, band, size)
		}

		data, _ := r.next(int(size))
		indexes, err := ienc.UnpackQuantized(data, n)
		if err != nil {
			return err
		}
		valueAt = func(i int) float64 { return q.Dequantize(indexes[i]) }
	case bandRaw:
		size := d.p.DataType.Size()
		data, err := r.next(n * size)
		if err != nil {
			return err
		}
		if bandMask == nil && d.native {
			copy(values[base*size:], data)
			return nil
		}
		valueAt = func(i int) float64 { return d.readStore(data, i) }
	default:
		return fmt.Errorf("%w: band %d has unknown mode %d", errs.ErrInvalidBody, band, mode)
	}

	i := 0
	for px := range pc {
		idx := base + px*depth
		if bandMask != nil && bandMask[px] == 0 {
			for k := range depth {
				d.write(values, idx+k, 0)
			}

			continue
		}

		for k := range depth {
			d.write(values, idx+k, valueAt(i))
			i++
		}
	}

	return nil
}

func readQuantizer(r *bodyReader) (ienc.Quantizer, error) {
	var fields [3]float64
	for i := range fields {
		v, err := r.readFloat64()
		if err != nil {
			return ienc.Quantizer{}, err
		}
		fields[i] = v
	}

	q, ok := ienc.NewQuantizer(fields[0], fields[1], fields[2])
	if !ok {
		return ienc.Quantizer{}, fmt.Errorf("%w: invalid quantization range", errs.ErrInvalidBody)
	}

	return q, nil
}
