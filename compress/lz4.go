package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Compressors holds hash tables of lz4.Compressor between calls.
var lz4Compressors = sync.Pool{
	New: func() any {
		return new(lz4.Compressor)
	},
}

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
//
// LZ4 blocks carry no length preamble; the engine records the raw body size in
// the blob header instead.
//
// Returns ErrIncompressible when the block would not be smaller than data.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4Compressors.Get().(*lz4.Compressor)
	defer lz4Compressors.Put(lc)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 || n >= len(data) {
		return nil, ErrIncompressible
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block into a buffer of exactly size bytes.
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen(0, size)
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if err := checkDecodedLen(n, size); err != nil {
		return nil, err
	}

	return dst, nil
}
