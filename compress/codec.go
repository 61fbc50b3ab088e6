package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/lerc/format"
)

var (
	// ErrIncompressible is returned by a Compressor that cannot shrink its input.
	ErrIncompressible = errors.New("data is incompressible")
	// ErrSizeMismatch is returned by a Decompressor whose input does not expand to
	// exactly the expected number of bytes.
	ErrSizeMismatch = errors.New("decompressed size does not match expected size")
)

// Compressor compresses a complete blob body.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a blob body produced by the matching Compressor.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data that must expand to exactly size bytes.
	//
	// Implementations never allocate more than size bytes of output, whatever
	// the compressed stream claims. Returns ErrSizeMismatch when the stream
	// expands to a different length, or a codec error for corrupted input.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec retrieves the shared built-in Codec for a compression type.
//
// Returns an error for CompressionType values outside the registered set.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported body compression: %s", compressionType)
}

// checkDecodedLen rejects a declared decoded length that differs from size.
func checkDecodedLen(declared, size int) error {
	if declared != size {
		return fmt.Errorf("%w: stream declares %d bytes, expected %d", ErrSizeMismatch, declared, size)
	}

	return nil
}
