package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip_Unsigned(t *testing.T) {
	w := NewWriter(4)
	w.WriteUnsigned(1, 1)
	w.WriteUnsigned(3, 5)
	w.WriteUnsigned(12, 4000)

	r := NewReader(w.Bytes())
	v, err := r.ReadUnsigned(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	v, err = r.ReadUnsigned(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	v, err = r.ReadUnsigned(12)
	require.NoError(t, err)
	assert.Equal(t, uint32(4000), v)
}

func TestWriterReaderRoundTrip_Signed(t *testing.T) {
	cases := []struct {
		bits int
		v    int32
	}{
		{3, -4}, {3, 3}, {12, -2047}, {12, 2047}, {32, -1}, {32, 1<<31 - 1},
	}
	for _, c := range cases {
		w := NewWriter(8)
		w.WriteSigned(c.bits, c.v)
		r := NewReader(w.Bytes())
		got, err := r.ReadSigned(c.bits)
		require.NoError(t, err)
		assert.Equal(t, c.v, got, "bits=%d v=%d", c.bits, c.v)
	}
}

func TestUvint8Literal(t *testing.T) {
	// spec.md §8.a: UVINT8 value 1 encodes to 0b0000_1000.
	w := NewWriter(1)
	w.WriteUnsigned(1, 0) // selector: "Four"
	w.WriteSigned(4, 1)
	assert.Equal(t, []byte{0b0000_1000}, w.Bytes())
}

func TestReadTruncated(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadUnsigned(9)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0b1010_0000})
	v, err := r.Peek(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0b1010), v)
	assert.Equal(t, 0, r.BitPos())
}

func TestAlignToByte(t *testing.T) {
	w := NewWriter(2)
	w.WriteUnsigned(3, 0b101)
	w.AlignToByte()
	assert.Equal(t, 8, w.BitPos())
	assert.Equal(t, []byte{0b101_00000}, w.Bytes())
}

func TestPatchUnsigned(t *testing.T) {
	w := NewWriter(4)
	lenPos := w.BitPos()
	w.WriteUnsigned(16, 0) // placeholder length
	w.WriteUnsigned(8, 0xAB)
	w.PatchUnsigned(lenPos, 16, 24)

	r := NewReader(w.Bytes())
	length, err := r.ReadUnsigned(16)
	require.NoError(t, err)
	assert.Equal(t, uint32(24), length)
}
