package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/lerc/engine"
	"github.com/arloliu/lerc/errs"
	"github.com/arloliu/lerc/format"
)

// Shape describes how a flat value buffer maps onto pixels.
type Shape struct {
	Width  int
	Height int
	// Depth is the number of values per pixel per band.
	Depth int
	Bands int
	// Masks is 0 for no mask, 1 for a mask shared by all bands or Bands for one mask per band.
	Masks int
}

// ValueCount returns Width*Height*Depth*Bands.
func (s Shape) ValueCount() int {
	return s.Width * s.Height * s.Depth * s.Bands
}

// MaskByteCount returns Width*Height*Masks.
func (s Shape) MaskByteCount() int {
	return s.Width * s.Height * s.Masks
}

// validate checks that every field is non-negative and that the buffers the
// shape describes are addressable for elements of elemSize bytes.
func (s Shape) validate(elemSize int) error {
	fields := [...]int{s.Width, s.Height, s.Depth, s.Bands, s.Masks}
	for _, f := range fields {
		if f < 0 {
			return fmt.Errorf("%w: negative shape field in %+v", errs.ErrInvalidArgument, s)
		}
	}

	if !fitsInt(elemSize, s.Width, s.Height, s.Depth, s.Bands) || !fitsInt(1, s.Width, s.Height, s.Masks) {
		return fmt.Errorf("%w: shape %+v too large", errs.ErrInvalidArgument, s)
	}

	return nil
}

func (s Shape) params(dt format.DataType, maxZError float64) engine.Params {
	return engine.Params{
		DataType:  dt,
		Width:     s.Width,
		Height:    s.Height,
		Depth:     s.Depth,
		Bands:     s.Bands,
		Masks:     s.Masks,
		MaxZError: maxZError,
	}
}

// fitsInt reports whether the product of the non-negative factors fits in an int.
func fitsInt(factors ...int) bool {
	product := 1
	for _, f := range factors {
		if f == 0 {
			return true
		}
		if product > math.MaxInt/f {
			return false
		}
		product *= f
	}

	return true
}
