package records

import (
	"math"
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientation_RoundTrip(t *testing.T) {
	o := Orientation{Psi: math.Pi / 2, Theta: -math.Pi / 4, Phi: 0}

	w := bitio.NewWriter(8)
	WriteOrientation(w, o)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadOrientation(r)
	require.NoError(t, err)
	assert.InDelta(t, o.Psi, got.Psi, 0.01)
	assert.InDelta(t, o.Theta, got.Theta, 0.01)
	assert.InDelta(t, o.Phi, got.Phi, 0.01)
}

func TestOrientation_ClampsAtExtremes(t *testing.T) {
	o := Orientation{Psi: math.Pi, Theta: -math.Pi, Phi: 0}

	w := bitio.NewWriter(8)
	WriteOrientation(w, o)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadOrientation(r)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got.Psi, 0.01)
	assert.InDelta(t, -math.Pi, got.Theta, 0.01)
}

func TestDisOrientation_RoundTrip(t *testing.T) {
	o := Orientation{Psi: 1, Theta: 2, Phi: 3}

	buf := WriteDisOrientation(nil, o)
	got, next := ReadDisOrientation(buf, 0)
	assert.InDelta(t, o.Psi, got.Psi, 1e-6)
	assert.InDelta(t, o.Theta, got.Theta, 1e-6)
	assert.InDelta(t, o.Phi, got.Phi, 1e-6)
	assert.Equal(t, 12, next)
}
