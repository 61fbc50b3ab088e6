package pool

import (
	"sync"
)

// Default sizes of pooled body buffers.
const (
	BodyBufferDefaultSize  = 1024 * 64        // 64KiB, a 128x128 float32 tile
	BodyBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is a reusable scratch buffer for assembling blob bodies.
type ByteBuffer struct {
	// B is the underlying byte slice. Callers append to it directly.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers grow by BodyBufferDefaultSize, buffers above four times that
// grow by 25% of their capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := BodyBufferDefaultSize
	if cap(bb.B) > 4*BodyBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put so that a
// single huge raster does not pin memory for the life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var bodyDefaultPool = NewByteBufferPool(BodyBufferDefaultSize, BodyBufferMaxThreshold)

// GetBodyBuffer retrieves a ByteBuffer from the default body pool.
func GetBodyBuffer() *ByteBuffer {
	return bodyDefaultPool.Get()
}

// PutBodyBuffer returns a ByteBuffer to the default body pool.
func PutBodyBuffer(bb *ByteBuffer) {
	bodyDefaultPool.Put(bb)
}
