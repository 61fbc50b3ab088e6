package lerc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lerc/blob"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
)

func TestEncodeDecode(t *testing.T) {
	values := make([]uint16, 20*10*2)
	for i := range values {
		values[i] = uint16(i * 3)
	}
	mask := make([]byte, 20*10)
	for i := range mask {
		mask[i] = 1
	}

	data, err := Encode(values, mask, 20, 10, 1, 2, 1, 0)
	require.NoError(t, err)

	decoded, decodedMask, err := Decode[uint16](data, 20, 10, 1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
	require.Equal(t, mask, decodedMask)

	auto, autoMask, err := DecodeWithMetadata[uint16](data)
	require.NoError(t, err)
	require.Equal(t, values, auto)
	require.Equal(t, mask, autoMask)
}

func TestGetBlobInfo(t *testing.T) {
	data, err := Encode([]float64{1.5, -2, 8, 0.25, 3, 3}, nil, 3, 2, 1, 1, 0, 0)
	require.NoError(t, err)

	info, err := GetBlobInfo(data)
	require.NoError(t, err)
	require.Equal(t, DataTypeOf[float64](), info.DataType)
	require.Equal(t, Shape{Width: 3, Height: 2, Depth: 1, Bands: 1}, info.Shape())
	require.Equal(t, &DataRange{Min: -2, Max: 8}, info.Range)
	require.Nil(t, info.ValidPixels)

	extended, err := GetBlobInfoExtended(data)
	require.NoError(t, err)
	require.Nil(t, extended.Range)
	require.Equal(t, 6, *extended.ValidPixels)
	require.Equal(t, len(data), *extended.BlobSize)
	require.Equal(t, 0, *extended.NoDataUses)
}

func TestEncode_InvalidArgument(t *testing.T) {
	_, err := Encode([]int8{1, 2, 3}, nil, 2, 2, 1, 1, 0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Encode([]int8{1, 2, 3, 4}, []byte{1}, 2, 2, 1, 1, 1, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNewEngine(t *testing.T) {
	eng, err := NewEngine()
	require.NoError(t, err)

	data, err := blob.Encode([]float32{0, 0, 0, 0}, nil, Shape{Width: 2, Height: 2, Depth: 1, Bands: 1}, 0, blob.WithEngine(eng))
	require.NoError(t, err)

	values, mask, err := DecodeWithMetadata[float32](data)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0, 0, 0}, values)
	require.Nil(t, mask)

	require.Equal(t, format.TypeFloat32, DataTypeOf[float32]())
}
