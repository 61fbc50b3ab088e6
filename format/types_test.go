package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataTypeCodes(t *testing.T) {
	// codes are part of the wire format
	tests := []struct {
		dt   DataType
		code uint8
		size int
		name string
	}{
		{TypeInt8, 0, 1, "Int8"},
		{TypeUint8, 1, 1, "Uint8"},
		{TypeInt16, 2, 2, "Int16"},
		{TypeUint16, 3, 2, "Uint16"},
		{TypeInt32, 4, 4, "Int32"},
		{TypeUint32, 5, 4, "Uint32"},
		{TypeFloat32, 6, 4, "Float32"},
		{TypeFloat64, 7, 8, "Float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.code, uint8(tt.dt))
			require.Equal(t, tt.size, tt.dt.Size())
			require.Equal(t, tt.name, tt.dt.String())
			require.True(t, tt.dt.IsValid())
		})
	}
}

func TestDataTypeInvalid(t *testing.T) {
	dt := DataType(8)
	require.False(t, dt.IsValid())
	require.Equal(t, 0, dt.Size())
	require.Equal(t, "Unknown", dt.String())

	lo, hi := dt.Range()
	require.Zero(t, lo)
	require.Zero(t, hi)
}

func TestDataTypeIsFloat(t *testing.T) {
	require.True(t, TypeFloat32.IsFloat())
	require.True(t, TypeFloat64.IsFloat())
	require.False(t, TypeInt32.IsFloat())
	require.False(t, TypeUint8.IsFloat())
}

func TestDataTypeRange(t *testing.T) {
	lo, hi := TypeInt16.Range()
	require.Equal(t, -32768.0, lo)
	require.Equal(t, 32767.0, hi)

	lo, hi = TypeUint32.Range()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 4294967295.0, hi)
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Snappy", CompressionSnappy.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
