package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarking_FiveBitLiteral(t *testing.T) {
	w := bitio.NewWriter(8)
	WriteMarking(w, "ABCDE")

	assert.Equal(t, []byte{0x50, 0x44, 0x32, 0x14}, w.Bytes())

	r := bitio.NewReader(w.Bytes())
	got, err := ReadMarking(r)
	require.NoError(t, err)
	assert.Equal(t, "ABCDE", got)
}

func TestMarking_SixBitLiteralForcedByJ(t *testing.T) {
	w := bitio.NewWriter(8)
	WriteMarking(w, "AAJJ")

	assert.Equal(t, []byte{0x48, 0x20, 0x94, 0x50}, w.Bytes())

	r := bitio.NewReader(w.Bytes())
	got, err := ReadMarking(r)
	require.NoError(t, err)
	assert.Equal(t, "AAJJ", got)
}

func TestMarking_EmptyString(t *testing.T) {
	w := bitio.NewWriter(8)
	WriteMarking(w, "")

	r := bitio.NewReader(w.Bytes())
	got, err := ReadMarking(r)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDisMarking_StripsTrailingSpaces(t *testing.T) {
	buf := WriteDisMarking(nil, "TEST", 11)
	require.Len(t, buf, 11)

	got, next := ReadDisMarking(buf, 0, 11)
	assert.Equal(t, "TEST", got)
	assert.Equal(t, 11, next)
}
