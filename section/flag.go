package section

import (
	"github.com/arloliu/lerc/endian"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
)

// Flag represents the packed flag fields at the start of the blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 1 means the header carries an xxHash64 checksum.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the blob format (0xEC10 for v1).
	Options uint16

	// Version is the codec version that wrote the blob.
	Version uint8
	// DataType is the element type code of the stored values.
	DataType uint8
	// Compression is the body compression type.
	Compression uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone):   {},
	uint8(format.CompressionZstd):   {},
	uint8(format.CompressionS2):     {},
	uint8(format.CompressionLZ4):    {},
	uint8(format.CompressionSnappy): {},
}

// NewFlag creates a new Flag with default settings: little-endian, checksum enabled,
// Zstd body compression.
func NewFlag(dt format.DataType) Flag {
	flag := Flag{
		Options:     MagicRasterV1Opt,
		Version:     CodecVersion,
		DataType:    uint8(dt),
		Compression: uint8(format.CompressionZstd),
	}
	flag.WithLittleEndian()
	flag.SetHasChecksum(true)

	return flag
}

// HasChecksum returns whether the header carries a checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetHasChecksum enables or disables the checksum.
func (f *Flag) SetHasChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the blob is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the blob is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// ElementType returns the element type recorded in the flag.
func (f Flag) ElementType() format.DataType {
	return format.DataType(f.DataType)
}

// BodyCompression returns the body compression recorded in the flag.
func (f Flag) BodyCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetBodyCompression sets the body compression type.
func (f *Flag) SetBodyCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicRasterV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Version == 0 || f.Version > CodecVersion {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.ElementType().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
