package blob

import (
	"fmt"

	"github.com/arloliu/lerc/errs"
)

// Encode compresses values into a new blob.
//
// values must hold exactly shape.ValueCount() elements. mask may be nil; when
// present it must hold exactly shape.MaskByteCount() bytes and is only read.
// Any non-zero mask byte marks a valid pixel; the values of invalid pixels are
// not stored.
// maxZError is the maximum absolute error per value, 0 meaning lossless. It is
// passed to the engine unchecked.
//
// Encoding takes two engine calls: the first reports the required capacity, the
// second encodes into a buffer of that size. The returned blob is truncated to
// the bytes actually written.
//
// Returns errs.ErrInvalidArgument without calling the engine when a buffer
// length does not match the shape, or the engine error of the failing phase.
func Encode[T Element](values []T, mask []byte, shape Shape, maxZError float64, opts ...Option) ([]byte, error) {
	dt := DataTypeOf[T]()
	if err := shape.validate(dt.Size()); err != nil {
		return nil, err
	}

	if len(values) != shape.ValueCount() {
		return nil, fmt.Errorf("%w: got %d values, shape %+v needs %d", errs.ErrInvalidArgument, len(values), shape, shape.ValueCount())
	}

	if mask != nil && len(mask) != shape.MaskByteCount() {
		return nil, fmt.Errorf("%w: got %d mask bytes, shape %+v needs %d", errs.ErrInvalidArgument, len(mask), shape, shape.MaskByteCount())
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	params := shape.params(dt, maxZError)
	data := asBytes(values)

	size, status := cfg.engine.CompressedSize(data, mask, params)
	if err := errs.FromStatus(uint32(status)); err != nil {
		return nil, fmt.Errorf("failed to compute compressed size: %w", err)
	}

	out := make([]byte, size)
	written, status := cfg.engine.Encode(data, mask, params, out)
	if err := errs.FromStatus(uint32(status)); err != nil {
		return nil, fmt.Errorf("failed to encode %s values: %w", dt, err)
	}

	if written > size {
		return nil, fmt.Errorf("failed to encode %s values: %w: engine wrote %d bytes into %d",
			dt, &errs.StatusError{Status: errs.StatusBufferTooSmall}, written, size)
	}

	return out[:written], nil
}
