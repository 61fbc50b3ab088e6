package section

import (
	"math"

	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
)

// Header represents the fixed-size header at the start of every blob written by
// the built-in engine.
//
// It holds everything a metadata query reports, so blob info is read without
// touching the body.
type Header struct {
	// Flag is a packed field for options, magic number, version, type and compression.
	Flag Flag // byte offset 0-7

	Width  uint32 // byte offset 8-11
	Height uint32 // byte offset 12-15
	Depth  uint32 // byte offset 16-19
	Bands  uint32 // byte offset 20-23
	// Masks is 0 (all valid), 1 (one mask shared by all bands) or Bands (one mask per band).
	Masks uint32 // byte offset 24-27
	// ValidPixels is the number of valid pixels of the first band.
	ValidPixels uint32 // byte offset 28-31
	// BlobSize is the total size of the blob including the header.
	BlobSize uint32 // byte offset 32-35
	// BodySize is the size of the stored, possibly compressed, body.
	BodySize uint32 // byte offset 36-39
	// RawBodySize is the size of the body after decompression.
	RawBodySize uint32 // byte offset 40-43
	// NoDataUses is the number of bands that use a no-data value.
	NoDataUses uint32 // byte offset 44-47

	// MaxZError is the effective maximum error the values were encoded with.
	MaxZError float64 // byte offset 48-55
	// ZMin and ZMax are the range of all valid values over all bands.
	ZMin float64 // byte offset 56-63
	ZMax float64 // byte offset 64-71

	// Checksum is the xxHash64 of header bytes 0-71 followed by the body.
	Checksum uint64 // byte offset 72-79
}

// NewHeader creates a new Header for values of type dt.
// The sizes, ranges and checksum are set when the engine finishes the body.
func NewHeader(dt format.DataType) *Header {
	return &Header{
		Flag: NewFlag(dt),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian, it decides the order of everything else
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Version = data[2]
	h.Flag.DataType = data[3]
	h.Flag.Compression = data[4]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.Width = engine.Uint32(data[8:12])
	h.Height = engine.Uint32(data[12:16])
	h.Depth = engine.Uint32(data[16:20])
	h.Bands = engine.Uint32(data[20:24])
	h.Masks = engine.Uint32(data[24:28])
	h.ValidPixels = engine.Uint32(data[28:32])
	h.BlobSize = engine.Uint32(data[32:36])
	h.BodySize = engine.Uint32(data[36:40])
	h.RawBodySize = engine.Uint32(data[40:44])
	h.NoDataUses = engine.Uint32(data[44:48])
	h.MaxZError = math.Float64frombits(engine.Uint64(data[48:56]))
	h.ZMin = math.Float64frombits(engine.Uint64(data[56:64]))
	h.ZMax = math.Float64frombits(engine.Uint64(data[64:72]))
	h.Checksum = engine.Uint64(data[72:80])

	return h.validateShape()
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Version
	b[3] = h.Flag.DataType
	b[4] = h.Flag.Compression
	engine.PutUint32(b[8:12], h.Width)
	engine.PutUint32(b[12:16], h.Height)
	engine.PutUint32(b[16:20], h.Depth)
	engine.PutUint32(b[20:24], h.Bands)
	engine.PutUint32(b[24:28], h.Masks)
	engine.PutUint32(b[28:32], h.ValidPixels)
	engine.PutUint32(b[32:36], h.BlobSize)
	engine.PutUint32(b[36:40], h.BodySize)
	engine.PutUint32(b[40:44], h.RawBodySize)
	engine.PutUint32(b[44:48], h.NoDataUses)
	engine.PutUint64(b[48:56], math.Float64bits(h.MaxZError))
	engine.PutUint64(b[56:64], math.Float64bits(h.ZMin))
	engine.PutUint64(b[64:72], math.Float64bits(h.ZMax))
	engine.PutUint64(b[72:80], h.Checksum)

	return b
}

func (h *Header) validateShape() error {
	if h.Width == 0 || h.Height == 0 || h.Depth == 0 || h.Bands == 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if h.Width > MaxDimension || h.Height > MaxDimension || h.Depth > MaxDimension || h.Bands > MaxDimension {
		return errs.ErrInvalidHeaderFlags
	}

	if h.Masks != 0 && h.Masks != 1 && h.Masks != h.Bands {
		return errs.ErrInvalidHeaderFlags
	}

	if uint64(h.BlobSize) != HeaderSize+uint64(h.BodySize) {
		return errs.ErrInvalidBlobSize
	}

	return nil
}

// ParseHeader parses a Header from the start of a blob.
//
// Parameters:
//   - data: Byte slice containing the blob (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize, flag validation or shape validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
