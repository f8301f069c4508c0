package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/require"
)

func TestEntityType_RoundTrip(t *testing.T) {
	// Platform, Air, Netherlands (country 201 per DIS enumerations), zeros
	// elsewhere, matching §8.c's "Platform, Air, Country=Netherlands,
	// 0/0/0/0".
	et := EntityType{Kind: 1, Domain: 2, Country: 201}

	w := bitio.NewWriter(8)
	WriteEntityType(w, et)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadEntityType(r)
	require.NoError(t, err)
	require.Equal(t, et, got)
}

func TestDisEntityType_RoundTrip(t *testing.T) {
	et := EntityType{Kind: 1, Domain: 2, Country: 201, Category: 3, Subcategory: 4, Specific: 5, Extra: 6}

	buf := WriteDisEntityType(nil, et)
	require.Len(t, buf, 8)

	got, next := ReadDisEntityType(buf, 0)
	require.Equal(t, et, got)
	require.Equal(t, 8, next)
}
