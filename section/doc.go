// Package section defines the fixed-size header of blobs written by the built-in
// lerc engine.
//
// The header holds everything a metadata query reports, so the engine answers
// BlobInfo without decompressing the body.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (80 bytes, fixed)                                │
//	│  - Flag (8 bytes): options, version, type, compression  │
//	│  - Shape (20 bytes): width, height, depth, bands, masks │
//	│  - Counts (20 bytes): valid pixels, blob, body, raw     │
//	│    body sizes, no-data uses                             │
//	│  - Values (24 bytes): max Z error, zMin, zMax           │
//	│  - Checksum (8 bytes): xxHash64                         │
//	├─────────────────────────────────────────────────────────┤
//	│ Body (BodySize bytes, optionally compressed)            │
//	│  - Mask runs, one per mask                              │
//	│  - Band sections, one per band                          │
//	└─────────────────────────────────────────────────────────┘
//
// # Flag Layout
//
// The first two bytes are always little-endian and carry the byte order of the
// rest of the blob:
//
//	Bit 0:     checksum present
//	Bit 1:     0 = little-endian, 1 = big-endian
//	Bits 2-3:  reserved, must be 0
//	Bits 4-15: magic number (0xEC1)
//
// # Checksum
//
// The checksum is the xxHash64 of header bytes 0-71 followed by the stored body.
// It covers the header fields so a tampered shape or range is detected on decode.
package section
