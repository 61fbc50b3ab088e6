package section

const (
	// Bit masks of the Options word
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicRasterV1Opt is the magic number of the version 1 raster blob format.
	MagicRasterV1Opt = 0xEC10

	// CodecVersion is the codec version written by the built-in engine.
	CodecVersion = 1
)

// offsets and sizes in the blob
const (
	HeaderSize     = 80         // fixed header size in bytes
	ChecksumOffset = 72         // byte offset of the checksum field
	BodyOffset     = HeaderSize // byte offset where the body starts
	MaxBlobSize    = 1<<32 - 1  // blob and body sizes are stored as uint32
	MaxDimension   = 1<<31 - 1  // width, height, depth and bands are stored as uint32
)
