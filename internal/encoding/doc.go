// Package encoding implements the value-level building blocks of the built-in lerc engine.
//
// These helpers are internal to the engine and are not part of the public API:
//
//   - ValueReader / ValueWriter: element access into typed buffers of any registered
//     data type through an endian engine, widening every element to float64
//   - Quantizer: maps values onto the grid zMin + n*step that bounds the
//     reconstruction error by maxZError
//   - PackQuantized / UnpackQuantized: byte-width packing of quantized integers
//   - AppendMaskRuns / DecodeMaskRuns: run-length coding of validity masks
//
// Every element of the eight registered types is exactly representable as a float64,
// so the engine works on float64 scratch values and narrows back on output.
package encoding
