package encoding

import (
	"fmt"

	"github.com/arloliu/lerc/errs"
	"github.com/fako1024/gotools/bitpack"
)

// PackQuantized stores quantized values using the minimum byte width needed by the largest one.
//
// values must not be empty.
func PackQuantized(values []uint64) []byte {
	return bitpack.Pack(values)
}

// UnpackQuantized restores exactly n quantized values from data produced by PackQuantized.
func UnpackQuantized(data []byte, n int) ([]uint64, error) {
	if len(data) == 0 || n <= 0 {
		return nil, errs.ErrInvalidPackedData
	}

	width := bitpack.ByteWidth(data)
	if width < 1 || width > 8 {
		return nil, fmt.Errorf("%w: byte width %d", errs.ErrInvalidPackedData, width)
	}

	if got := bitpack.Len(data); got != n || len(data)-1 != n*width {
		return nil, fmt.Errorf("%w: expected %d values of %d bytes in %d bytes", errs.ErrInvalidPackedData, n, width, len(data)-1)
	}

	values := bitpack.UnpackInto(data, make([]uint64, 0, n))
	if len(values) != n {
		return nil, fmt.Errorf("%w: unpacked %d values, expected %d", errs.ErrInvalidPackedData, len(values), n)
	}

	return values, nil
}
