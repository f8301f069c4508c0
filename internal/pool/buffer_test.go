package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPutPduBuffer(t *testing.T) {
	bb := GetPduBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B))

	bb.B = append(bb.B, 1, 2, 3)
	PutPduBuffer(bb)

	bb2 := GetPduBuffer()
	assert.Equal(t, 0, len(bb2.B), "pooled buffer should be reset before reuse")
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := p.Get()
	bb.B = make([]byte, 0, 1024)
	p.Put(bb)

	// The oversized buffer should have been discarded, not retained.
	fresh := p.Get()
	assert.Less(t, cap(fresh.B), 1024)
}
