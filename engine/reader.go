package engine

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/lerc/endian"
	"github.com/arloliu/lerc/errs"
	ienc "github.com/arloliu/lerc/internal/encoding"
)

// bodyReader is a bounds-checked cursor over a decompressed blob body.
type bodyReader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

func newBodyReader(data []byte, engine endian.EndianEngine) *bodyReader {
	return &bodyReader{data: data, engine: engine}
}

func (r *bodyReader) remaining() int {
	return len(r.data) - r.off
}

func (r *bodyReader) next(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrInvalidBody, n, r.off, r.remaining())
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

func (r *bodyReader) readByte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *bodyReader) readFloat64() (float64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}

func (r *bodyReader) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad uvarint at offset %d", errs.ErrInvalidBody, r.off)
	}
	r.off += n

	return v, nil
}

// readMaskRuns expands the next run-length coded mask into dst.
func (r *bodyReader) readMaskRuns(dst []byte) error {
	n, err := ienc.DecodeMaskRuns(r.data[r.off:], dst)
	if err != nil {
		return err
	}
	r.off += n

	return nil
}
