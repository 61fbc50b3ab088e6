// Package compress provides the body codecs used by the built-in lerc engine.
//
// A blob produced by the built-in engine is a fixed-size header followed by a body
// holding mask runs and per-band value sections. Quantization and bit packing
// remove most of the redundancy in raster values; the codecs in this package are a
// second, general-purpose stage applied to the whole body.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): body stored as-is
//   - Zstd (format.CompressionZstd): best ratio, the engine default
//   - S2 (format.CompressionS2): fast, good ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//   - Snappy (format.CompressionSnappy): fast, widely supported block format
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(body)
//	...
//	body, err = codec.Decompress(packed, len(body))
//
// Decompress takes the exact expected output size, which the engine derives
// from the blob header after bounding it by the caller's raster shape. No codec
// allocates more than that, so a small forged blob cannot demand a large buffer.
//
// The engine falls back to storing the body uncompressed whenever a codec does not
// shrink it, so a codec may report ErrIncompressible instead of producing output.
//
// # Thread Safety
//
// All codec implementations are stateless values that draw encoder and decoder state
// from sync.Pool and can be shared across goroutines.
//
// The pure Go zstd implementation is used by default. Building with the gozstd tag
// (and cgo enabled) switches to the cgo binding of the reference zstd library.
package compress
