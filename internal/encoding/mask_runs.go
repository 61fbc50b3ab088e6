package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/lerc/errs"
)

// AppendMaskRuns appends the run-length form of mask to dst.
//
// Wire format: uvarint run count, then run count uvarint run lengths. Runs
// alternate between valid and invalid pixels and always start with a valid run,
// which is zero-length when the first pixel is invalid. Any non-zero mask byte
// counts as valid.
func AppendMaskRuns(dst []byte, mask []byte) []byte {
	var runs []uint64

	valid := true
	var cur uint64
	for _, b := range mask {
		if (b != 0) == valid {
			cur++
			continue
		}

		runs = append(runs, cur)
		valid = !valid
		cur = 1
	}
	runs = append(runs, cur)

	dst = binary.AppendUvarint(dst, uint64(len(runs)))
	for _, r := range runs {
		dst = binary.AppendUvarint(dst, r)
	}

	return dst
}

// AppendAllValidRuns appends the run-length form of a mask of n valid pixels to dst.
func AppendAllValidRuns(dst []byte, n int) []byte {
	dst = binary.AppendUvarint(dst, 1)

	return binary.AppendUvarint(dst, uint64(n))
}

// DecodeMaskRuns expands run-length mask data into dst, writing 1 for valid and 0
// for invalid pixels.
//
// The runs must cover exactly len(dst) pixels. Returns the number of bytes consumed.
func DecodeMaskRuns(data []byte, dst []byte) (int, error) {
	count, off := binary.Uvarint(data)
	if off <= 0 {
		return 0, errs.ErrInvalidMaskRuns
	}

	if count == 0 || count > uint64(len(dst))+1 {
		return 0, fmt.Errorf("%w: run count %d for %d pixels", errs.ErrInvalidMaskRuns, count, len(dst))
	}

	pos := 0
	valid := byte(1)
	for range count {
		runLen, n := binary.Uvarint(data[off:])
		if n <= 0 {
			return 0, errs.ErrInvalidMaskRuns
		}
		off += n

		if runLen > uint64(len(dst)-pos) {
			return 0, fmt.Errorf("%w: runs exceed %d pixels", errs.ErrInvalidMaskRuns, len(dst))
		}

		end := pos + int(runLen)
		for i := pos; i < end; i++ {
			dst[i] = valid
		}
		pos = end
		valid ^= 1
	}

	if pos != len(dst) {
		return 0, fmt.Errorf("%w: runs cover %d of %d pixels", errs.ErrInvalidMaskRuns, pos, len(dst))
	}

	return off, nil
}

// CountValid returns the number of non-zero bytes in mask.
func CountValid(mask []byte) int {
	n := 0
	for _, b := range mask {
		if b != 0 {
			n++
		}
	}

	return n
}
