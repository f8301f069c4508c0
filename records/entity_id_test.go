package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/require"
)

func TestEntityID_RoundTrip(t *testing.T) {
	id := EntityID{Site: 7, Application: 127, Entity: 255}

	w := bitio.NewWriter(8)
	WriteEntityID(w, id)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadEntityID(r)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestDisEntityID_RoundTrip(t *testing.T) {
	id := EntityID{Site: 1, Application: 2, Entity: 3}

	buf := WriteDisEntityID(nil, id)
	require.Len(t, buf, 6)

	got, next := ReadDisEntityID(buf, 0)
	require.Equal(t, id, got)
	require.Equal(t, 6, next)
}
