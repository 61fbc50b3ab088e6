// Package engine defines the codec engine boundary of lerc and ships the
// built-in pure Go engine.
//
// An Engine exposes exactly four primitives: a header-only metadata query, a
// compressed size estimate, an encode into a caller-provided buffer and a decode
// into caller-provided buffers. Value buffers always cross the boundary as byte
// views of typed slices in host byte order, in band, row, column, depth order.
// A nil mask means the caller supplied or requested no mask.
//
// Every primitive reports a wire-stable errs.Status instead of an error so that
// engines backed by a foreign library and the built-in engine are
// interchangeable:
//
//	status := engine.Default().Decode(blob, nil, values, params)
//	if err := errs.FromStatus(uint32(status)); err != nil {
//		return err
//	}
//
// All engines must be safe for concurrent independent calls.
package engine

import (
	"fmt"
	"math"
	"sync"

	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
	"github.com/arloliu/lerc/section"
)

// Integer metadata slots filled by Engine.BlobInfo.
const (
	InfoVersion     = iota // InfoVersion is the codec version that wrote the blob.
	InfoDataType           // InfoDataType is the element type code.
	InfoHeight             // InfoHeight is the number of rows.
	InfoWidth              // InfoWidth is the number of columns.
	InfoBands              // InfoBands is the number of bands.
	InfoDepth              // InfoDepth is the number of values per pixel.
	InfoMasks              // InfoMasks is the number of validity masks.
	InfoValidPixels        // InfoValidPixels is the number of valid pixels of the first band.
	InfoBlobSize           // InfoBlobSize is the blob size in bytes.
	InfoReserved           // InfoReserved is never written with meaningful data.
	InfoNoDataUses         // InfoNoDataUses is the number of bands using a no-data value.
	InfoReserved2          // InfoReserved2 is never written with meaningful data.
)

// Metadata array lengths understood by every engine.
const (
	// InfoLenBasic is the integer array length of the minimal metadata query.
	InfoLenBasic = 10
	// InfoLenExtended is the integer array length of the extended metadata query.
	InfoLenExtended = 12

	// RangeMin and RangeMax are the slots of the valid value range.
	RangeMin = 0
	RangeMax = 1
	// RangeMaxZError is the optional slot receiving the max Z error the blob was encoded with.
	RangeMaxZError = 2
	// RangeLen is the range array length of the minimal metadata query.
	RangeLen = 2
)

// Params describes the raster layout and element type of one engine call.
type Params struct {
	DataType format.DataType
	Width    int
	Height   int
	Depth    int
	Bands    int
	// Masks is 0 for no mask, 1 for a mask shared by all bands or Bands for one mask per band.
	Masks int
	// MaxZError is the maximum absolute error per value. Zero requests lossless encoding.
	// Decode ignores it.
	MaxZError float64
}

// PixelCount returns Width*Height.
func (p Params) PixelCount() int {
	return p.Width * p.Height
}

// ValueCount returns the number of elements of the value buffer.
func (p Params) ValueCount() int {
	return p.Width * p.Height * p.Depth * p.Bands
}

// MaskByteCount returns the number of bytes of the mask buffer.
func (p Params) MaskByteCount() int {
	return p.Width * p.Height * p.Masks
}

// Validate checks the element type, dimensions and mask count.
//
// Returns an error wrapping errs.ErrWrongParam when:
//   - the element type is not registered
//   - a dimension is zero, negative or larger than section.MaxDimension
//   - the value buffer size would overflow int
//   - Masks is not 0, 1 or Bands
func (p Params) Validate() error {
	if !p.DataType.IsValid() {
		return fmt.Errorf("%w: data type %d", errs.ErrWrongParam, p.DataType)
	}

	size := uint64(p.DataType.Size())
	for _, dim := range [...]int{p.Width, p.Height, p.Depth, p.Bands} {
		if dim <= 0 || dim > section.MaxDimension {
			return fmt.Errorf("%w: dimension %d out of range", errs.ErrWrongParam, dim)
		}

		if size > math.MaxInt/uint64(dim) {
			return fmt.Errorf("%w: raster too large", errs.ErrWrongParam)
		}
		size *= uint64(dim)
	}

	if p.Masks != 0 && p.Masks != 1 && p.Masks != p.Bands {
		return fmt.Errorf("%w: mask count %d for %d bands", errs.ErrWrongParam, p.Masks, p.Bands)
	}

	return nil
}

// Engine is the capability interface of a LERC codec engine.
type Engine interface {
	// BlobInfo reads blob metadata without decoding values.
	//
	// info receives as many integer slots as it has room for, up to InfoLenExtended.
	// dataRange, when at least RangeLen long, receives the valid value range.
	BlobInfo(blob []byte, info []uint32, dataRange []float64) errs.Status

	// CompressedSize returns the number of bytes Encode needs for the same input.
	// The estimate may exceed the actual encoded size.
	CompressedSize(values, mask []byte, p Params) (uint32, errs.Status)

	// Encode writes the blob into dst and returns the number of bytes written.
	Encode(values, mask []byte, p Params, dst []byte) (uint32, errs.Status)

	// Decode writes the decoded values, and the mask when mask is not nil.
	Decode(blob []byte, mask, values []byte, p Params) errs.Status
}

var defaultLerc = sync.OnceValue(func() *Lerc {
	l, err := New()
	if err != nil {
		panic(fmt.Sprintf("engine: invalid default configuration: %v", err))
	}

	return l
})

// Default returns the shared built-in engine with default options.
func Default() *Lerc {
	return defaultLerc()
}
