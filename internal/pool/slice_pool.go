package pool

import "sync"

// Slice pools for the per-band scratch slices of the engine.
var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
)

// GetFloat64Slice retrieves a float64 slice of length size from the pool.
//
// The caller must call the returned cleanup function (typically with defer) to
// return the slice to the pool.
//
// Example:
//
//	values, cleanup := pool.GetFloat64Slice(width * height * depth)
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

// GetUint64Slice retrieves a uint64 slice of length size from the pool.
//
// The caller must call the returned cleanup function to return the slice to the pool.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint64SlicePool.Put(ptr) }
}
