package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerHeader_BackPatchedLength(t *testing.T) {
	w := bitio.NewWriter(8)
	lengthAt := WriteLayerHeader(w, 1, 0)

	w.WriteUnsigned(16, 0xBEEF) // stand-in payload
	PatchLayerLength(w, lengthAt)

	r := bitio.NewReader(w.Bytes())
	hdr, err := ReadLayerHeader(r)
	require.NoError(t, err)
	assert.EqualValues(t, 1, hdr.Number)
	assert.EqualValues(t, 0, hdr.Version)
	assert.EqualValues(t, LayerHeaderBits+16, hdr.Length)

	payload, err := r.ReadUnsigned(16)
	require.NoError(t, err)
	assert.EqualValues(t, 0xBEEF, payload)
}
