package blob

import (
	"fmt"

	"github.com/arloliu/lerc/engine"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
)

// DataRange is the range of all valid values in a blob.
type DataRange struct {
	Min float64
	Max float64
}

// BlobInfo is the metadata read from a blob without decoding its values.
//
// The minimal query fills Range and leaves the extended counts nil; the extended
// query does the opposite. A nil field was not queried, which is distinct from a
// zero count.
type BlobInfo struct {
	Version  int
	DataType format.DataType
	Width    int
	Height   int
	Depth    int
	Bands    int
	Masks    int

	// Range is set by GetBlobInfo.
	Range *DataRange

	// ValidPixels, BlobSize and NoDataUses are set by GetBlobInfoExtended.
	// ValidPixels counts the valid pixels of the first band.
	ValidPixels *int
	BlobSize    *int
	NoDataUses  *int
}

// Shape returns the raster shape the blob was encoded with.
func (i BlobInfo) Shape() Shape {
	return Shape{
		Width:  i.Width,
		Height: i.Height,
		Depth:  i.Depth,
		Bands:  i.Bands,
		Masks:  i.Masks,
	}
}

// ValueCount returns the number of values the blob decodes to.
func (i BlobInfo) ValueCount() int {
	return i.Shape().ValueCount()
}

// MaskByteCount returns the number of mask bytes the blob decodes to.
func (i BlobInfo) MaskByteCount() int {
	return i.Shape().MaskByteCount()
}

// GetBlobInfo reads the blob metadata including the valid value range.
//
// It reads the header only and allocates no value or mask buffers.
//
// Returns errs.ErrInvalidArgument for an empty blob, or the engine error for a
// malformed one.
func GetBlobInfo(blob []byte, opts ...Option) (BlobInfo, error) {
	var info [engine.InfoLenBasic]uint32
	var dataRange [engine.RangeLen]float64

	if err := queryInfo(blob, info[:], dataRange[:], opts); err != nil {
		return BlobInfo{}, err
	}

	result := infoFromSlots(info[:])
	result.Range = &DataRange{Min: dataRange[engine.RangeMin], Max: dataRange[engine.RangeMax]}

	return result, nil
}

// GetBlobInfoExtended reads the blob metadata including the valid pixel count,
// blob size and no-data usage count. Range is left nil.
func GetBlobInfoExtended(blob []byte, opts ...Option) (BlobInfo, error) {
	var info [engine.InfoLenExtended]uint32

	if err := queryInfo(blob, info[:], nil, opts); err != nil {
		return BlobInfo{}, err
	}

	result := infoFromSlots(info[:])
	validPixels := int(info[engine.InfoValidPixels])
	blobSize := int(info[engine.InfoBlobSize])
	noDataUses := int(info[engine.InfoNoDataUses])
	result.ValidPixels = &validPixels
	result.BlobSize = &blobSize
	result.NoDataUses = &noDataUses

	return result, nil
}

func queryInfo(blob []byte, info []uint32, dataRange []float64, opts []Option) error {
	if len(blob) == 0 {
		return fmt.Errorf("%w: empty blob", errs.ErrInvalidArgument)
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	status := cfg.engine.BlobInfo(blob, info, dataRange)
	if err := errs.FromStatus(uint32(status)); err != nil {
		return fmt.Errorf("failed to read blob info: %w", err)
	}

	return nil
}

// infoFromSlots builds the fields shared by both queries.
func infoFromSlots(info []uint32) BlobInfo {
	return BlobInfo{
		Version:  int(info[engine.InfoVersion]),
		DataType: format.DataType(info[engine.InfoDataType]), //nolint:gosec
		Width:    int(info[engine.InfoWidth]),
		Height:   int(info[engine.InfoHeight]),
		Depth:    int(info[engine.InfoDepth]),
		Bands:    int(info[engine.InfoBands]),
		Masks:    int(info[engine.InfoMasks]),
	}
}
