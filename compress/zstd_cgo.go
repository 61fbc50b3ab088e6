//go:build gozstd && cgo

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

// Compress compresses data using the cgo zstd binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress streams a zstd frame into a buffer of exactly size bytes.
//
// gozstd.Decompress trusts the frame content size, so the streaming reader is
// used to keep the output bounded by size.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen(0, size)
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	decoded := make([]byte, size)
	n, err := io.ReadFull(zr, decoded)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, checkDecodedLen(n, size)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	var extra [1]byte
	if k, _ := zr.Read(extra[:]); k > 0 {
		return nil, fmt.Errorf("%w: stream longer than %d bytes", ErrSizeMismatch, size)
	}

	return decoded, nil
}
