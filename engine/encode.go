package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/lerc/compress"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
	ienc "github.com/arloliu/lerc/internal/encoding"
	"github.com/arloliu/lerc/internal/hash"
	"github.com/arloliu/lerc/internal/pool"
	"github.com/arloliu/lerc/section"
)

// CompressedSize encodes into a pooled scratch buffer and reports the blob size.
// The result is exact for the built-in engine.
func (l *Lerc) CompressedSize(values, mask []byte, p Params) (uint32, errs.Status) {
	buf := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(buf)

	if err := l.encodeBlob(buf, values, mask, p); err != nil {
		l.log().Debugf("compressed size: %v", err)
		return 0, statusOf(err)
	}

	return uint32(buf.Len()), errs.StatusOK //nolint:gosec
}

// Encode writes the blob into dst.
//
// Returns StatusBufferTooSmall when dst cannot hold the blob, leaving dst in an
// unspecified state.
func (l *Lerc) Encode(values, mask []byte, p Params, dst []byte) (uint32, errs.Status) {
	buf := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(buf)

	if err := l.encodeBlob(buf, values, mask, p); err != nil {
		l.log().Debugf("encode: %v", err)
		return 0, statusOf(err)
	}

	if len(dst) < buf.Len() {
		return 0, errs.StatusBufferTooSmall
	}

	return uint32(copy(dst, buf.Bytes())), errs.StatusOK //nolint:gosec
}

// validateBuffers checks the caller buffers against p.
func validateBuffers(values, mask []byte, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if want := p.ValueCount() * p.DataType.Size(); len(values) != want {
		return fmt.Errorf("%w: value buffer has %d bytes, want %d", errs.ErrWrongParam, len(values), want)
	}

	if mask != nil && p.Masks > 0 && len(mask) != p.MaskByteCount() {
		return fmt.Errorf("%w: mask buffer has %d bytes, want %d", errs.ErrWrongParam, len(mask), p.MaskByteCount())
	}

	return nil
}

// maskOf returns the mask of band, or nil when the band has every pixel valid.
func maskOf(masks []byte, count, pixels, band int) []byte {
	switch {
	case masks == nil || count == 0:
		return nil
	case count == 1:
		return masks[:pixels]
	default:
		return masks[band*pixels : (band+1)*pixels]
	}
}

// encodeBlob appends the complete blob for the given input to buf.
func (l *Lerc) encodeBlob(buf *pool.ByteBuffer, values, mask []byte, p Params) error {
	if err := validateBuffers(values, mask, p); err != nil {
		return err
	}

	if p.MaxZError < 0 || math.IsNaN(p.MaxZError) || math.IsInf(p.MaxZError, 0) {
		return fmt.Errorf("%w: max Z error %v", errs.ErrWrongParam, p.MaxZError)
	}

	if p.Masks == 0 {
		mask = nil
	}

	header := section.NewHeader(p.DataType)
	if l.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetHasChecksum(l.checksum)
	header.Width = uint32(p.Width)   //nolint:gosec
	header.Height = uint32(p.Height) //nolint:gosec
	header.Depth = uint32(p.Depth)   //nolint:gosec
	header.Bands = uint32(p.Bands)   //nolint:gosec
	header.Masks = uint32(p.Masks)   //nolint:gosec

	order := header.Flag.GetEndianEngine()
	enc, err := newBandEncoder(p, order, l.log())
	if err != nil {
		return err
	}

	raw := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(raw)

	pixels := p.PixelCount()
	for m := range p.Masks {
		if mask == nil {
			raw.B = ienc.AppendAllValidRuns(raw.B, pixels)
		} else {
			raw.B = ienc.AppendMaskRuns(raw.B, mask[m*pixels:(m+1)*pixels])
		}
	}

	for b := range p.Bands {
		var valid int
		raw.B, valid, err = enc.encode(raw.B, values, maskOf(mask, p.Masks, pixels, b), b)
		if err != nil {
			return err
		}

		if b == 0 {
			header.ValidPixels = uint32(valid) //nolint:gosec
		}
	}

	header.MaxZError = enc.maxZError
	header.ZMin, header.ZMax = enc.zMin, enc.zMax

	if uint64(raw.Len()) > section.MaxBlobSize-section.HeaderSize {
		return fmt.Errorf("%w: body of %d bytes exceeds blob limit", errs.ErrFailed, raw.Len())
	}

	body, comp := l.compressBody(raw.Bytes())
	if uint64(len(body)) > section.MaxBlobSize-section.HeaderSize {
		return fmt.Errorf("%w: body of %d bytes exceeds blob limit", errs.ErrFailed, len(body))
	}

	header.Flag.SetBodyCompression(comp)
	header.RawBodySize = uint32(raw.Len())                   //nolint:gosec
	header.BodySize = uint32(len(body))                      //nolint:gosec
	header.BlobSize = uint32(section.HeaderSize + len(body)) //nolint:gosec

	headerBytes := header.Bytes()
	if l.checksum {
		header.Checksum = hash.Checksum(headerBytes[:section.ChecksumOffset], body)
		order.PutUint64(headerBytes[section.ChecksumOffset:], header.Checksum)
	}

	buf.Grow(len(headerBytes) + len(body))
	buf.B = append(buf.B, headerBytes...)
	buf.B = append(buf.B, body...)

	return nil
}

// compressBody compresses the raw body with the configured codec.
// The raw body is kept when compression fails to shrink it.
func (l *Lerc) compressBody(raw []byte) ([]byte, format.CompressionType) {
	if l.compression == format.CompressionNone {
		return raw, format.CompressionNone
	}

	compressed, err := l.codec.Compress(raw)
	if err != nil {
		if !errors.Is(err, compress.ErrIncompressible) {
			l.log().Debugf("%s compression failed, storing body uncompressed: %v", l.compression, err)
		}

		return raw, format.CompressionNone
	}

	if len(compressed) >= len(raw) {
		return raw, format.CompressionNone
	}

	return compressed, l.compression
}
