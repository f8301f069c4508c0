package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityCoordinateVector_RoundTripCentimeters(t *testing.T) {
	v := Vector3{X: 1.5, Y: -2.25, Z: 0}
	unit := EncodeLinearUnit(v)
	require.Equal(t, LinearCentimeters, unit)

	w := bitio.NewWriter(8)
	WriteEntityCoordinateVector(w, v, unit)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadEntityCoordinateVector(r, unit)
	require.NoError(t, err)
	assert.InDelta(t, v.X, got.X, 0.01)
	assert.InDelta(t, v.Y, got.Y, 0.01)
	assert.InDelta(t, v.Z, got.Z, 0.01)
}

func TestEntityCoordinateVector_FallsBackToMeters(t *testing.T) {
	v := Vector3{X: 1000, Y: 0, Z: 0} // 100_000 cm overflows SVINT16
	assert.Equal(t, LinearMeters, EncodeLinearUnit(v))
}

func TestLinearVelocity_RoundTrip(t *testing.T) {
	v := Vector3{X: 10, Y: 10, Z: 10}

	w := bitio.NewWriter(8)
	WriteLinearVelocity(w, v)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadLinearVelocity(r)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestAngularVelocity_RoundTrip(t *testing.T) {
	v := Vector3{X: 1, Y: -1, Z: 0.5}

	w := bitio.NewWriter(8)
	WriteAngularVelocity(w, v)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadAngularVelocity(r)
	require.NoError(t, err)
	assert.InDelta(t, v.X, got.X, 0.01)
	assert.InDelta(t, v.Y, got.Y, 0.01)
	assert.InDelta(t, v.Z, got.Z, 0.01)
}

func TestDisFloat3_RoundTrip(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}

	buf := WriteDisFloat3(nil, v)
	require.Len(t, buf, 12)

	got, next := ReadDisFloat3(buf, 0)
	assert.Equal(t, v, got)
	assert.Equal(t, 12, next)
}
