package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/lerc/endian"
	"github.com/arloliu/lerc/format"
	"github.com/stretchr/testify/require"
)

var allDataTypes = []format.DataType{
	format.TypeInt8, format.TypeUint8, format.TypeInt16, format.TypeUint16,
	format.TypeInt32, format.TypeUint32, format.TypeFloat32, format.TypeFloat64,
}

func TestValueReaderWriter_RoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"LittleEndian": endian.GetLittleEndianEngine(),
		"BigEndian":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		for _, dt := range allDataTypes {
			t.Run(name+"/"+dt.String(), func(t *testing.T) {
				lo, hi := dt.Range()
				values := []float64{0, 1, lo, hi}
				if dt.IsFloat() {
					values = append(values, -0.5, 1234.25)
				}

				buf := make([]byte, len(values)*dt.Size())
				reader, err := NewValueReader(dt, engine)
				require.NoError(t, err)
				writer, err := NewValueWriter(dt, engine)
				require.NoError(t, err)

				for i, v := range values {
					writer(buf, i, v)
				}
				for i, v := range values {
					require.Equal(t, Narrow(dt, v), reader(buf, i))
				}

				var appended []byte
				for _, v := range values {
					appended = AppendValue(appended, dt, engine, v)
				}
				require.Equal(t, buf, appended)
			})
		}
	}
}

func TestValueWriter_Saturates(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	writer, err := NewValueWriter(format.TypeUint8, engine)
	require.NoError(t, err)
	reader, err := NewValueReader(format.TypeUint8, engine)
	require.NoError(t, err)

	buf := make([]byte, 3)
	writer(buf, 0, 300)
	writer(buf, 1, -4)
	writer(buf, 2, 41.6)

	require.Equal(t, 255.0, reader(buf, 0))
	require.Equal(t, 0.0, reader(buf, 1))
	require.Equal(t, 42.0, reader(buf, 2))
}

func TestValueReader_InvalidType(t *testing.T) {
	_, err := NewValueReader(format.DataType(9), endian.NativeEngine())
	require.Error(t, err)

	_, err = NewValueWriter(format.DataType(9), endian.NativeEngine())
	require.Error(t, err)
}

func TestNarrow(t *testing.T) {
	require.Equal(t, float64(float32(0.1)), Narrow(format.TypeFloat32, 0.1))
	require.Equal(t, 0.1, Narrow(format.TypeFloat64, 0.1))
	require.Equal(t, 3.0, Narrow(format.TypeInt16, 2.7))
	require.Equal(t, 127.0, Narrow(format.TypeInt8, 1000))
	require.Equal(t, 0.0, Narrow(format.TypeInt32, math.NaN()))
}
