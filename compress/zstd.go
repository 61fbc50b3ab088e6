package compress

// ZstdCompressor provides Zstandard compression of blob bodies.
//
// It is the default body codec of the built-in engine: quantized rasters produce
// long runs of identical packed bytes that Zstd collapses well, and decoding stays
// cheap relative to the unpacking work that follows.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(body)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
