// Package blob encodes typed raster arrays into LERC blobs and decodes them back.
//
// It is the validation and allocation layer around a codec engine: it checks
// caller buffers against the declared raster shape, sizes every buffer that
// crosses the engine boundary from that shape, and turns engine status codes
// into typed errors. The bit-level compression itself is delegated to an
// engine.Engine, by default the built-in pure Go engine.
//
// # Data Layout
//
// A raster is described by a Shape. Values are a flat slice of one Element type
// ordered by band, then row, then column, then depth:
//
//	index = ((band*Height+row)*Width+col)*Depth + d
//
// A validity mask holds one byte per pixel and mask; non-zero means valid.
// Masks is 0 (no mask), 1 (one mask shared by all bands) or Bands (one mask per band).
//
// # Encoding
//
//	shape := blob.Shape{Width: 256, Height: 256, Depth: 1, Bands: 1}
//	data, err := blob.Encode(elevation, nil, shape, 0.01)
//
// Encode asks the engine for the required capacity, encodes into a buffer of
// exactly that size and returns it truncated to the bytes actually written.
// A maxZError of 0 requests lossless encoding.
//
// # Decoding
//
// When the layout is known:
//
//	values, mask, err := blob.Decode[float32](data, shape)
//
// When it is not, read the metadata first or let DecodeAuto do it:
//
//	info, err := blob.GetBlobInfo(data)
//	values, mask, err := blob.DecodeWithInfo[float32](data, info)
//
//	values, mask, err := blob.DecodeAuto[float32](data)
//
// The decoded mask is freshly allocated and owned by the caller. The mask passed
// to Encode is only read and never retained.
//
// # Errors
//
// Shape and buffer length mismatches detected before any engine call return
// errs.ErrInvalidArgument. Engine failures return *errs.StatusError or
// *errs.UnknownStatusError; match them with errors.Is against the errs sentinels.
//
// All functions are safe for concurrent use as long as each call works on its
// own buffers.
package blob
