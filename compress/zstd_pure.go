//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Decoders never write past the capacity of the DecodeAll destination, which
// Decompress sets to the expected body size.
var zstdDecoders = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: zstd decoder options: %v", err))
		}

		return d
	},
}

var zstdEncoders = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: zstd encoder options: %v", err))
		}

		return e
	},
}

// Compress compresses data as a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	e, _ := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(e)

	return e.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decodes a zstd frame of exactly size bytes.
//
// Frames expanding beyond size fail with zstd.ErrDecoderSizeExceeded as soon as
// the limit is crossed; nothing larger than size is allocated.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkDecodedLen(0, size)
	}

	d, _ := zstdDecoders.Get().(*zstd.Decoder)
	defer zstdDecoders.Put(d)

	decoded, err := d.DecodeAll(data, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkDecodedLen(len(decoded), size); err != nil {
		return nil, err
	}

	return decoded, nil
}
