package compress

import (
	"fmt"

	"github.com/golang/snappy"
)

type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy block compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses the input data using the Snappy block format.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses a Snappy block. The length preamble of the block is
// checked against size before any output is allocated.
func (c SnappyCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen(0, size)
	}

	declared, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}
	if err := checkDecodedLen(declared, size); err != nil {
		return nil, err
	}

	decoded, err := snappy.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return decoded, nil
}
