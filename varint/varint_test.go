package varint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distsim/cdis-codec/bitio"
)

func TestUVINT8_Literals(t *testing.T) {
	// spec.md §8.a
	w := bitio.NewWriter(2)
	WriteUVINT8(w, 1)
	assert.Equal(t, []byte{0b0000_1000}, w.Bytes())

	w = bitio.NewWriter(2)
	WriteUVINT8(w, 129)
	assert.Equal(t, []byte{0b1100_0000, 0b1000_0000}, w.Bytes())
}

func TestSVINT12_Literal(t *testing.T) {
	// spec.md §8.a
	w := bitio.NewWriter(2)
	WriteSVINT12(w, -2047)
	assert.Equal(t, []byte{0b1110_0000, 0b0000_0100}, w.Bytes())
}

func TestUVINT_RoundTripMinimalClass(t *testing.T) {
	cases := []uint32{0, 1, 15, 16, 255, 256, 2047, 2048, 16383, 16384, 65535}
	for _, v := range cases {
		w := bitio.NewWriter(8)
		WriteUVINT16(w, UVINT16(v))
		got := w.BitPos()

		r := bitio.NewReader(w.Bytes())
		decoded, err := ReadUVINT16(r)
		require.NoError(t, err)
		assert.Equal(t, UVINT16(v), decoded)

		c := pickUnsigned(uvint16Classes, v)
		assert.Equal(t, 2+c.bits, got, "value %d should use minimal class", v)
	}
}

func TestSVINT_RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 3, -4, 31, -32, 2047, -2048}
	for _, v := range cases {
		w := bitio.NewWriter(8)
		WriteSVINT12(w, SVINT12(v))
		r := bitio.NewReader(w.Bytes())
		decoded, err := ReadSVINT12(r)
		require.NoError(t, err)
		assert.Equal(t, SVINT12(v), decoded, "value %d", v)
	}
}

func TestSVINT24_WideRange(t *testing.T) {
	cases := []int32{0, 32767, -32768, 262143, -262144, 8388607, -8388608}
	for _, v := range cases {
		w := bitio.NewWriter(8)
		WriteSVINT24(w, SVINT24(v))
		r := bitio.NewReader(w.Bytes())
		decoded, err := ReadSVINT24(r)
		require.NoError(t, err)
		assert.Equal(t, SVINT24(v), decoded, "value %d", v)
	}
}

func TestUVINT32_Truncated(t *testing.T) {
	r := bitio.NewReader([]byte{0b11000000})
	_, err := ReadUVINT32(r)
	require.ErrorIs(t, err, bitio.ErrTruncated)
}
