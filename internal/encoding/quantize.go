package encoding

import "math"

// MaxQuantized is the largest quantized value the engine stores.
const MaxQuantized = math.MaxUint32

// Quantizer maps values in [ZMin, ZMax] onto the grid ZMin + n*Step.
//
// With Step = 2*maxZError every reconstructed value lies within maxZError of its
// original, up to the rounding of the output type which callers verify.
type Quantizer struct {
	ZMin float64
	ZMax float64
	Step float64
}

// NewQuantizer creates a Quantizer for the given value range and step.
//
// Returns false when step is not positive or the range needs more than
// MaxQuantized grid points.
func NewQuantizer(zMin, zMax, step float64) (Quantizer, bool) {
	if !(step > 0) || math.IsInf(step, 0) {
		return Quantizer{}, false
	}

	span := (zMax - zMin) / step
	if math.IsNaN(span) || span < 0 || span+0.5 > MaxQuantized {
		return Quantizer{}, false
	}

	return Quantizer{ZMin: zMin, ZMax: zMax, Step: step}, true
}

// MaxIndex returns the quantized value of ZMax.
func (q Quantizer) MaxIndex() uint64 {
	return q.Quantize(q.ZMax)
}

// Quantize returns the grid index closest to z. z must lie within [ZMin, ZMax].
func (q Quantizer) Quantize(z float64) uint64 {
	return uint64(math.Floor((z-q.ZMin)/q.Step + 0.5))
}

// Dequantize returns the grid value for index n, clamped to ZMax.
func (q Quantizer) Dequantize(n uint64) float64 {
	v := q.ZMin + float64(n)*q.Step
	if v > q.ZMax {
		return q.ZMax
	}

	return v
}
