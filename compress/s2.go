package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 block compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using the S2 block format.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block. The length preamble of the block is
// checked against size before any output is allocated.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen(0, size)
	}

	declared, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkDecodedLen(declared, size); err != nil {
		return nil, err
	}

	decoded, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return decoded, nil
}
