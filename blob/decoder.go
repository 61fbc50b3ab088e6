package blob

import (
	"fmt"

	"github.com/arloliu/lerc/errs"
)

// Decode decodes blob into a value slice of type T laid out as shape.
//
// The mask is returned only when shape.Masks > 0, freshly allocated with
// shape.MaskByteCount() bytes; otherwise it is nil and the engine is asked for
// no mask. Decoded masks hold only 1 for valid and 0 for invalid pixels, so a
// mask encoded with other non-zero bytes reads back normalized. Invalid pixels
// decode as zero. The shape and T are not checked against the blob; a mismatch is
// reported by the engine.
//
// Returns errs.ErrInvalidArgument for a negative or oversized shape, or the
// engine error. No buffers are returned on error.
func Decode[T Element](blob []byte, shape Shape, opts ...Option) ([]T, []byte, error) {
	dt := DataTypeOf[T]()
	if err := shape.validate(dt.Size()); err != nil {
		return nil, nil, err
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	values := make([]T, shape.ValueCount())

	var mask []byte
	if shape.Masks > 0 {
		mask = make([]byte, shape.MaskByteCount())
	}

	status := cfg.engine.Decode(blob, mask, asBytes(values), shape.params(dt, 0))
	if err := errs.FromStatus(uint32(status)); err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s blob: %w", dt, err)
	}

	return values, mask, nil
}

// DecodeWithInfo decodes blob using the shape recorded in info.
func DecodeWithInfo[T Element](blob []byte, info BlobInfo, opts ...Option) ([]T, []byte, error) {
	return Decode[T](blob, info.Shape(), opts...)
}

// DecodeAuto reads the blob metadata and decodes blob with the shape it records.
//
// It makes two engine calls, a header-only query followed by the full decode.
// T must still match the element type of the blob; check BlobInfo.DataType
// against DataTypeOf when the type is not known in advance.
func DecodeAuto[T Element](blob []byte, opts ...Option) ([]T, []byte, error) {
	info, err := GetBlobInfo(blob, opts...)
	if err != nil {
		return nil, nil, err
	}

	return DecodeWithInfo[T](blob, info, opts...)
}
