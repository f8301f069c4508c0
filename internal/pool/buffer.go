// Package pool provides pooled byte buffers for PDU encoding, avoiding a
// fresh allocation on every Encode call.
package pool

import "sync"

// Default backing size for an encode buffer: 2x a typical Ethernet MTU
// (§4.1 "Writers assume the caller has pre-sized the buffer (default 2 x
// MTU)"). PduBufferMaxThreshold bounds how large a buffer the pool will
// retain; oversized datagrams (e.g. Signal's variable-length payload, or
// an Electromagnetic Emission PDU with many beams) get discarded instead
// of bloating the pool.
const (
	PduBufferDefaultSize  = 1500 * 2
	PduBufferMaxThreshold = 1500 * 16
)

// ByteBuffer is a growable byte slice meant to be reused across many
// encode calls via ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default
// capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its allocated capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// ByteBufferPool is a sync.Pool of ByteBuffers.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (not retained) once they grow past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding it if it has
// grown past the pool's maxThreshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(PduBufferDefaultSize, PduBufferMaxThreshold)

// GetPduBuffer retrieves a ByteBuffer from the default pool.
func GetPduBuffer() *ByteBuffer { return defaultPool.Get() }

// PutPduBuffer returns a ByteBuffer to the default pool.
func PutPduBuffer(bb *ByteBuffer) { defaultPool.Put(bb) }
