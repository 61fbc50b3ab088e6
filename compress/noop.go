package compress

// NoOpCompressor stores blob bodies without compression.
//
// The engine uses it both when compression is disabled and as the fallback for
// bodies that another codec failed to shrink.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a compressor that passes bodies through unchanged.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself when it holds exactly size bytes.
// The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkDecodedLen(len(data), size); err != nil {
		return nil, err
	}

	return data, nil
}
