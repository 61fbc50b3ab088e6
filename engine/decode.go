package engine

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/lerc/compress"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/internal/hash"
	"github.com/arloliu/lerc/section"
)

// Decode decodes blob into values and, when mask is not nil, into mask.
//
// The element type and shape in p must equal the blob's, otherwise the result
// is StatusWrongParam. p.Masks may differ from the blob's mask count:
//   - a blob without masks fills mask with ones
//   - a blob with one shared mask is replicated into p.Bands masks
//   - a blob with per-band masks cannot be decoded into a single mask
//
// Malformed blobs are reported as StatusFailed.
func (l *Lerc) Decode(blob []byte, mask, values []byte, p Params) (status errs.Status) {
	defer func() {
		if r := recover(); r != nil {
			l.log().Errorf("decode panicked: %v", r)
			status = errs.StatusFailed
		}
	}()

	if err := l.decodeBlob(blob, mask, values, p); err != nil {
		l.log().Debugf("decode: %v", err)
		return statusOf(err)
	}

	return errs.StatusOK
}

func (l *Lerc) decodeBlob(blob []byte, mask, values []byte, p Params) error {
	if err := validateBuffers(values, mask, p); err != nil {
		return err
	}

	if p.Masks > 0 && mask == nil {
		return fmt.Errorf("%w: missing mask buffer for %d masks", errs.ErrWrongParam, p.Masks)
	}

	header, err := section.ParseHeader(blob)
	if err != nil {
		return err
	}

	if err := matchHeader(&header, p); err != nil {
		return err
	}

	if limit := min(rawBodyLimit(p, int(header.Masks)), math.MaxInt); uint64(header.RawBodySize) > limit {
		return fmt.Errorf("%w: body of %d bytes exceeds %d for the raster shape", errs.ErrInvalidBody, header.RawBodySize, limit)
	}

	body, err := readBody(blob, &header)
	if err != nil {
		return err
	}

	order := header.Flag.GetEndianEngine()
	r := newBodyReader(body, order)

	pixels := p.PixelCount()
	blobMasks := make([]byte, pixels*int(header.Masks))
	for m := range int(header.Masks) {
		if err := r.readMaskRuns(blobMasks[m*pixels : (m+1)*pixels]); err != nil {
			return err
		}
	}

	dec, err := newBandDecoder(p, order)
	if err != nil {
		return err
	}

	for b := range p.Bands {
		if err := dec.decode(r, values, maskOf(blobMasks, int(header.Masks), pixels, b), b); err != nil {
			return err
		}
	}

	if r.remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidBody, r.remaining())
	}

	if p.Masks > 0 {
		return fillMasks(mask, blobMasks, int(header.Masks), p)
	}

	return nil
}

// matchHeader checks that the caller's type and shape equal the blob's.
func matchHeader(h *section.Header, p Params) error {
	if h.Flag.ElementType() != p.DataType {
		return fmt.Errorf("%w: blob holds %s values, caller expects %s", errs.ErrWrongParam, h.Flag.ElementType(), p.DataType)
	}

	if int(h.Width) != p.Width || int(h.Height) != p.Height || int(h.Depth) != p.Depth || int(h.Bands) != p.Bands {
		return fmt.Errorf("%w: blob shape %dx%dx%dx%d, caller expects %dx%dx%dx%d", errs.ErrWrongParam,
			h.Width, h.Height, h.Depth, h.Bands, p.Width, p.Height, p.Depth, p.Bands)
	}

	return nil
}

// readBody verifies the blob size and checksum and returns the decompressed body.
// The caller bounds h.RawBodySize before any output is allocated.
func readBody(blob []byte, h *section.Header) ([]byte, error) {
	if uint64(len(blob)) < uint64(h.BlobSize) {
		return nil, fmt.Errorf("%w: blob has %d bytes, header declares %d", errs.ErrInvalidBlobSize, len(blob), h.BlobSize)
	}

	stored := blob[section.BodyOffset:h.BlobSize]

	if h.Flag.HasChecksum() {
		if sum := hash.Checksum(blob[:section.ChecksumOffset], stored); sum != h.Checksum {
			return nil, fmt.Errorf("%w: got %016x, header has %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
		}
	}

	codec, err := compress.GetCodec(h.Flag.BodyCompression())
	if err != nil {
		return nil, err
	}

	body, err := codec.Decompress(stored, int(h.RawBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidBody, err)
	}

	return body, nil
}

// rawBodyLimit returns the largest raw body the built-in engine writes for p
// with the given number of stored masks.
//
// A mask holds at most pixels+1 runs. A band section is never larger than its
// raw form or a constant, whichever is bigger.
func rawBodyLimit(p Params, masks int) uint64 {
	pixels := uint64(p.PixelCount())
	maskLimit := satAdd(uvarintLen(pixels+1), satMul(pixels+1, uvarintLen(pixels)))

	rawBand := satAdd(1, satMul(satMul(pixels, uint64(p.Depth)), uint64(p.DataType.Size())))
	bandLimit := max(rawBand, 1+8)

	return satAdd(satMul(uint64(masks), maskLimit), satMul(uint64(p.Bands), bandLimit))
}

func uvarintLen(v uint64) uint64 {
	n := uint64(1)
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return sum
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// fillMasks writes the blob's masks into the caller's mask buffer.
func fillMasks(dst, blobMasks []byte, blobCount int, p Params) error {
	pixels := p.PixelCount()

	switch {
	case blobCount == p.Masks:
		copy(dst, blobMasks)
	case blobCount == 0:
		for i := range dst {
			dst[i] = 1
		}
	case blobCount == 1:
		for m := range p.Masks {
			copy(dst[m*pixels:(m+1)*pixels], blobMasks)
		}
	default:
		return fmt.Errorf("%w: blob has %d masks, caller expects %d", errs.ErrWrongParam, blobCount, p.Masks)
	}

	return nil
}
