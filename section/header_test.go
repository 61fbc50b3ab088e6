package section

import (
	"testing"

	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
	"github.com/stretchr/testify/require"
)

func sampleHeader() *Header {
	h := NewHeader(format.TypeFloat32)
	h.Width = 256
	h.Height = 128
	h.Depth = 3
	h.Bands = 2
	h.Masks = 2
	h.ValidPixels = 30000
	h.BodySize = 4096
	h.RawBodySize = 9000
	h.BlobSize = HeaderSize + 4096
	h.MaxZError = 0.01
	h.ZMin = -12.5
	h.ZMax = 880.25
	h.Checksum = 0xDEADBEEFCAFEBABE

	return h
}

func TestNewHeader(t *testing.T) {
	header := NewHeader(format.TypeInt16)

	require.NotNil(t, header)
	require.Equal(t, uint16(MagicRasterV1Opt), header.Flag.GetMagicNumber())
	require.Equal(t, uint8(CodecVersion), header.Flag.Version)
	require.Equal(t, format.TypeInt16, header.Flag.ElementType())
	require.Equal(t, format.CompressionZstd, header.Flag.BodyCompression())
	require.True(t, header.Flag.IsLittleEndian())
	require.True(t, header.Flag.HasChecksum())
}

func TestHeader_Parse(t *testing.T) {
	t.Run("LittleEndian", func(t *testing.T) {
		original := sampleHeader()

		parsed, err := ParseHeader(original.Bytes())
		require.NoError(t, err)
		require.Equal(t, *original, parsed)
	})

	t.Run("BigEndian", func(t *testing.T) {
		original := sampleHeader()
		original.Flag.WithBigEndian()

		data := original.Bytes()
		require.Equal(t, []byte{0, 0, 1, 0}, data[8:12])

		parsed, err := ParseHeader(data)
		require.NoError(t, err)
		require.True(t, parsed.Flag.IsBigEndian())
		require.Equal(t, *original, parsed)
	})

	t.Run("TrailingBody", func(t *testing.T) {
		original := sampleHeader()
		data := append(original.Bytes(), make([]byte, 4096)...)

		parsed, err := ParseHeader(data)
		require.NoError(t, err)
		require.Equal(t, uint32(256), parsed.Width)
		require.Equal(t, uint32(128), parsed.Height)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := ParseHeader([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		h := &Header{}
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	t.Run("InvalidMagicNumber", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, HeaderSize))
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("ReservedBits", func(t *testing.T) {
		h := sampleHeader()
		h.Flag.Options |= 0x0004
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("FutureVersion", func(t *testing.T) {
		h := sampleHeader()
		h.Flag.Version = CodecVersion + 1
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("InvalidDataType", func(t *testing.T) {
		h := sampleHeader()
		h.Flag.DataType = 8
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("InvalidCompression", func(t *testing.T) {
		h := sampleHeader()
		h.Flag.SetBodyCompression(format.CompressionType(0x9))
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("ZeroDimension", func(t *testing.T) {
		h := sampleHeader()
		h.Height = 0
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("InvalidMaskCount", func(t *testing.T) {
		h := sampleHeader()
		h.Bands = 3
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("BlobSizeMismatch", func(t *testing.T) {
		h := sampleHeader()
		h.BlobSize++
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidBlobSize)
	})

	t.Run("BodySizeWrapsBlobSize", func(t *testing.T) {
		h := sampleHeader()
		h.BodySize = 1<<32 - 70
		h.BlobSize = 10 // HeaderSize + BodySize in uint32 arithmetic
		require.Equal(t, h.BlobSize, uint32(HeaderSize)+h.BodySize)

		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidBlobSize)
	})
}

func TestFlag(t *testing.T) {
	flag := NewFlag(format.TypeUint8)
	require.NoError(t, flag.Validate())

	flag.SetHasChecksum(false)
	require.False(t, flag.HasChecksum())
	flag.SetHasChecksum(true)
	require.True(t, flag.HasChecksum())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.False(t, flag.IsLittleEndian())
	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())

	// toggling options must not disturb the magic number
	require.Equal(t, uint16(MagicRasterV1Opt), flag.GetMagicNumber())

	flag.SetBodyCompression(format.CompressionSnappy)
	require.Equal(t, format.CompressionSnappy, flag.BodyCompression())
	require.NoError(t, flag.Validate())
}
