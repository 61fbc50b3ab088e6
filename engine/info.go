package engine

import (
	"fmt"

	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/section"
)

// BlobInfo reads the blob header and fills info and dataRange.
//
// info receives min(len(info), InfoLenExtended) slots. dataRange receives the
// valid value range when it has at least RangeLen slots, and the max Z error
// the blob was encoded with when it has a third one. The body is neither
// decompressed nor checksummed.
func (l *Lerc) BlobInfo(blob []byte, info []uint32, dataRange []float64) errs.Status {
	if len(info) == 0 {
		return errs.StatusWrongParam
	}

	header, err := section.ParseHeader(blob)
	if err == nil && uint64(len(blob)) < uint64(header.BlobSize) {
		err = fmt.Errorf("%w: blob has %d bytes, header declares %d", errs.ErrInvalidBlobSize, len(blob), header.BlobSize)
	}
	if err != nil {
		l.log().Debugf("blob info: %v", err)
		return statusOf(err)
	}

	var slots [InfoLenExtended]uint32
	slots[InfoVersion] = uint32(header.Flag.Version)
	slots[InfoDataType] = uint32(header.Flag.DataType)
	slots[InfoHeight] = header.Height
	slots[InfoWidth] = header.Width
	slots[InfoBands] = header.Bands
	slots[InfoDepth] = header.Depth
	slots[InfoMasks] = header.Masks
	slots[InfoValidPixels] = header.ValidPixels
	slots[InfoBlobSize] = header.BlobSize
	slots[InfoNoDataUses] = header.NoDataUses
	copy(info, slots[:])

	if len(dataRange) >= RangeLen {
		dataRange[RangeMin] = header.ZMin
		dataRange[RangeMax] = header.ZMax
	}
	if len(dataRange) > RangeMaxZError {
		dataRange[RangeMaxZError] = header.MaxZError
	}

	return errs.StatusOK
}
