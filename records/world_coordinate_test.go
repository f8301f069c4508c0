package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldCoordinate_RoundTripZeroLatLon(t *testing.T) {
	// §8.c: "location (0,0,5_000_000 m) ... location.x and location.y
	// round to 0.0" once decoded back from the fixed-point fraction-of-pi
	// encoding.
	c := WorldCoordinate{LatRadians: 0, LonRadians: 0, AltMeters: 5_000_000}

	w := bitio.NewWriter(16)
	unit := EncodeAltitudeUnit(c.AltMeters)
	WriteWorldCoordinate(w, c, unit)

	r := bitio.NewReader(w.Bytes())
	got, err := ReadWorldCoordinate(r, unit)
	require.NoError(t, err)

	assert.InDelta(t, 0, got.LatRadians, 1e-6)
	assert.InDelta(t, 0, got.LonRadians, 1e-6)
	assert.InDelta(t, c.AltMeters, got.AltMeters, 10) // dekameter rounding
}

func TestEncodeAltitudeUnit_FallsBackToDekameters(t *testing.T) {
	assert.Equal(t, AltitudeCentimeters, EncodeAltitudeUnit(100))
	assert.Equal(t, AltitudeDekameters, EncodeAltitudeUnit(5_000_000))
}

func TestWorldCoordinate_Truncated(t *testing.T) {
	r := bitio.NewReader([]byte{0x00})
	_, err := ReadWorldCoordinate(r, AltitudeDekameters)
	require.ErrorIs(t, err, bitio.ErrTruncated)
}
