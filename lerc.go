// Package lerc encodes and decodes LERC (Limited Error Raster Compression) blobs.
//
// LERC compresses 2D and 3D gridded numeric rasters such as imagery, elevation
// models and scientific grids, either losslessly or with a caller-chosen
// maximum error per value. A raster may have several bands, several values per
// pixel (depth) and optional per-pixel validity masks.
//
// # Core Features
//
//   - Eight element types: int8, uint8, int16, uint16, int32, uint32, float32, float64
//   - Lossless encoding or quantization bounded by a max Z error
//   - No mask, one mask shared by all bands, or one mask per band
//   - Header-only metadata queries, no value decoding needed
//   - Pluggable codec engine behind a four-primitive interface
//   - Typed errors for every engine status
//
// # Basic Usage
//
// Encoding a single-band float32 tile with a 1cm error bound:
//
//	import "github.com/arloliu/lerc"
//
//	heights := make([]float32, 256*256)
//	data, err := lerc.Encode(heights, nil, 256, 256, 1, 1, 0, 0.01)
//
// Decoding without knowing the layout:
//
//	info, err := lerc.GetBlobInfo(data)
//	if info.DataType == lerc.DataTypeOf[float32]() {
//	    values, mask, err := lerc.DecodeWithMetadata[float32](data)
//	}
//
// # Package Structure
//
// This package provides flat convenience wrappers around the blob package that
// use the shared built-in engine. For engine selection and option handling, use
// the blob package directly:
//
//   - blob: generic encode, decode and metadata operations
//   - engine: the codec engine interface and the built-in pure Go engine
//   - errs: status codes and sentinel errors
//   - format: element type and compression codes
package lerc

import (
	"github.com/arloliu/lerc/blob"
	"github.com/arloliu/lerc/engine"
	"github.com/arloliu/lerc/format"
)

type (
	// Element is the closed set of supported value types.
	Element = blob.Element
	// Shape describes the raster layout of a value buffer.
	Shape = blob.Shape
	// BlobInfo is the metadata read from a blob header.
	BlobInfo = blob.BlobInfo
	// DataRange is the range of valid values in a blob.
	DataRange = blob.DataRange
)

// DataTypeOf returns the wire type code of T.
func DataTypeOf[T Element]() format.DataType {
	return blob.DataTypeOf[T]()
}

// Encode compresses values into a new blob.
//
// Values are ordered by band, row, column and depth and must number exactly
// width*height*depth*bands. mask may be nil; when present it must hold
// width*height*masks bytes, non-zero meaning valid. masks is 0, 1 or bands.
//
// Parameters:
//   - values: The raster values
//   - mask: Optional validity mask, only read
//   - width, height, depth, bands, masks: The raster shape
//   - maxZError: Maximum absolute error per value, 0 for lossless
//
// Returns:
//   - []byte: The blob, exactly as long as the engine wrote
//   - error: errs.ErrInvalidArgument for buffer length mismatches, or an engine error
//
// Example:
//
//	mask := make([]byte, 64*64) // all invalid until set
//	data, err := lerc.Encode(dem, mask, 64, 64, 1, 1, 1, 0.5)
func Encode[T Element](values []T, mask []byte, width, height, depth, bands, masks int, maxZError float64) ([]byte, error) {
	shape := Shape{Width: width, Height: height, Depth: depth, Bands: bands, Masks: masks}

	return blob.Encode(values, mask, shape, maxZError)
}

// Decode decodes a blob whose layout is known.
//
// The mask is nil when masks is 0. The element type and shape must match the
// blob; mismatches are reported as errs.ErrWrongParam by the built-in engine.
func Decode[T Element](data []byte, width, height, depth, bands, masks int) ([]T, []byte, error) {
	shape := Shape{Width: width, Height: height, Depth: depth, Bands: bands, Masks: masks}

	return blob.Decode[T](data, shape)
}

// DecodeWithMetadata decodes a blob using the layout recorded in its header.
//
// This is the recommended entry point when the layout is not known. It reads the
// metadata and then decodes, so it costs two engine calls.
func DecodeWithMetadata[T Element](data []byte) ([]T, []byte, error) {
	return blob.DecodeAuto[T](data)
}

// GetBlobInfo reads the blob header including the valid value range.
func GetBlobInfo(data []byte) (BlobInfo, error) {
	return blob.GetBlobInfo(data)
}

// GetBlobInfoExtended reads the blob header including the valid pixel count,
// blob size and no-data usage count.
func GetBlobInfoExtended(data []byte) (BlobInfo, error) {
	return blob.GetBlobInfoExtended(data)
}

// NewEngine creates a configured built-in engine for use with blob.WithEngine.
//
// Example:
//
//	eng, err := lerc.NewEngine(engine.WithCompression(format.CompressionLZ4))
//	data, err := blob.Encode(values, nil, shape, 0, blob.WithEngine(eng))
func NewEngine(opts ...engine.Option) (*engine.Lerc, error) {
	return engine.New(opts...)
}
