package engine

import (
	"bytes"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/els0r/telemetry/logging"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
)

type number interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

func bytesOf[T number](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// randomValues returns n values in [0, 100) for integer types and in [-500, 500) for floats.
func randomValues[T number](rng *rand.Rand, dt format.DataType, n int) []T {
	values := make([]T, n)
	for i := range values {
		if dt.IsFloat() {
			values[i] = T(rng.Float64()*1000 - 500)
		} else {
			values[i] = T(float64(rng.Intn(100)))
		}
	}

	return values
}

func randomMask(rng *rand.Rand, n int) []byte {
	mask := make([]byte, n)
	for i := range mask {
		if rng.Intn(4) != 0 {
			mask[i] = 1
		}
	}

	return mask
}

// maskedExpectation zeroes the values of invalid pixels.
func maskedExpectation[T number](values []T, mask []byte, p Params) []T {
	expected := append([]T(nil), values...)
	if mask == nil || p.Masks == 0 {
		return expected
	}

	pixels := p.PixelCount()
	for b := range p.Bands {
		bandMask := maskOf(mask, p.Masks, pixels, b)
		for px := range pixels {
			if bandMask[px] != 0 {
				continue
			}
			for d := range p.Depth {
				expected[(b*pixels+px)*p.Depth+d] = 0
			}
		}
	}

	return expected
}

func encodeBlob[T number](t *testing.T, l *Lerc, values []T, mask []byte, p Params) []byte {
	t.Helper()

	size, status := l.CompressedSize(bytesOf(values), mask, p)
	require.Equal(t, errs.StatusOK, status)

	blob := make([]byte, size)
	written, status := l.Encode(bytesOf(values), mask, p, blob)
	require.Equal(t, errs.StatusOK, status)
	require.Equal(t, size, written)

	return blob[:written]
}

func decodeBlob[T number](t *testing.T, l *Lerc, blob []byte, p Params) ([]T, []byte) {
	t.Helper()

	values := make([]T, p.ValueCount())
	var mask []byte
	if p.Masks > 0 {
		mask = make([]byte, p.MaskByteCount())
	}

	require.Equal(t, errs.StatusOK, l.Decode(blob, mask, bytesOf(values), p))

	return values, mask
}

// strictEngine creates an engine that fails the test if it logs at error
// level. The only error-level log of the engine is a recovered decode panic.
func strictEngine(t *testing.T, opts ...Option) *Lerc {
	t.Helper()

	var out bytes.Buffer
	logger, _, err := logging.New(logging.LevelError, logging.EncodingPlain, logging.WithOutput(&out))
	require.NoError(t, err)

	l, err := New(append(opts, WithLogger(logger))...)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.Empty(t, out.String(), "engine recovered from a panic")
	})

	return l
}
