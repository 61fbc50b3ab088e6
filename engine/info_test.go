package engine

import (
	"testing"

	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
	"github.com/arloliu/lerc/section"
	"github.com/stretchr/testify/require"
)

func TestLerc_BlobInfo(t *testing.T) {
	p := Params{DataType: format.TypeFloat64, Width: 7, Height: 3, Depth: 2, Bands: 2, Masks: 2, MaxZError: 0.5}
	values := make([]float64, p.ValueCount())
	for i := range values {
		values[i] = float64(i) - 10
	}
	mask := make([]byte, p.MaskByteCount())
	for i := range mask {
		if i != 0 && i != 5 {
			mask[i] = 1
		}
	}
	blob := encodeBlob(t, Default(), values, mask, p)

	t.Run("Basic", func(t *testing.T) {
		info := make([]uint32, InfoLenBasic)
		dataRange := make([]float64, RangeLen)
		require.Equal(t, errs.StatusOK, Default().BlobInfo(blob, info, dataRange))

		require.Equal(t, uint32(section.CodecVersion), info[InfoVersion])
		require.Equal(t, uint32(format.TypeFloat64), info[InfoDataType])
		require.Equal(t, uint32(3), info[InfoHeight])
		require.Equal(t, uint32(7), info[InfoWidth])
		require.Equal(t, uint32(2), info[InfoBands])
		require.Equal(t, uint32(2), info[InfoDepth])
		require.Equal(t, uint32(2), info[InfoMasks])
		require.Equal(t, uint32(19), info[InfoValidPixels])
		require.Equal(t, uint32(len(blob)), info[InfoBlobSize])

		// band 0 skips pixels 0 and 5, band 1 skips nothing
		require.Equal(t, 2.0-10, dataRange[RangeMin])
		require.Equal(t, float64(len(values)-1-10), dataRange[RangeMax])
	})

	t.Run("Extended", func(t *testing.T) {
		info := make([]uint32, InfoLenExtended)
		for i := range info {
			info[i] = 0xFFFF
		}
		require.Equal(t, errs.StatusOK, Default().BlobInfo(blob, info, nil))
		require.Equal(t, uint32(len(blob)), info[InfoBlobSize])
		require.Zero(t, info[InfoReserved])
		require.Zero(t, info[InfoNoDataUses])
		require.Zero(t, info[InfoReserved2])
	})

	t.Run("MaxZError", func(t *testing.T) {
		dataRange := make([]float64, RangeMaxZError+1)
		require.Equal(t, errs.StatusOK, Default().BlobInfo(blob, make([]uint32, 1), dataRange))
		require.Equal(t, 0.5, dataRange[RangeMaxZError])
	})

	t.Run("ShortArrays", func(t *testing.T) {
		info := make([]uint32, 3)
		dataRange := []float64{-1}
		require.Equal(t, errs.StatusOK, Default().BlobInfo(blob, info, dataRange))
		require.Equal(t, []uint32{uint32(section.CodecVersion), uint32(format.TypeFloat64), 3}, info)
		require.Equal(t, []float64{-1}, dataRange)
	})

	t.Run("NoInfoArray", func(t *testing.T) {
		require.Equal(t, errs.StatusWrongParam, Default().BlobInfo(blob, nil, make([]float64, 2)))
	})

	t.Run("Malformed", func(t *testing.T) {
		info := make([]uint32, InfoLenBasic)
		require.Equal(t, errs.StatusFailed, Default().BlobInfo([]byte{1, 2, 3}, info, nil))
		require.Equal(t, errs.StatusFailed, Default().BlobInfo(make([]byte, 200), info, nil))
		require.Equal(t, errs.StatusFailed, Default().BlobInfo(blob[:len(blob)-1], info, nil))
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		// the body is not checksummed by a metadata query
		corrupted := append([]byte(nil), blob...)
		corrupted[len(corrupted)-1] ^= 0xFF
		require.Equal(t, errs.StatusOK, Default().BlobInfo(corrupted, make([]uint32, InfoLenBasic), nil))
	})
}
