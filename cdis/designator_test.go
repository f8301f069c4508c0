package cdis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdis"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/state"
)

func testDesignator() dis.Designator {
	return dis.Designator{
		DesignatingEntityID: records.EntityID{Site: 1, Application: 2, Entity: 3},
		CodeName:            1234,
		DesignatedEntityID:  records.EntityID{Site: 1, Application: 2, Entity: 4},
		Code:                5678,
		Power:               12.5,
		Wavelength:          1.06,
		SpotWrtDesignated:   records.Vector3{X: 1, Y: 2, Z: 3},
		SpotLocation:        records.WorldCoordinate{LatRadians: 0.1, LonRadians: 0.2, AltMeters: 1500},
		DeadReckoningAlgo:   2,
		LinearAcceleration:  records.Vector3{X: 0.1, Y: 0.2, Z: 0.3},
	}
}

func TestDesignatorFullUpdateRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testDesignator()

	w := bitio.NewWriter(64)
	full := cdis.WriteDesignator(w, in, enc, opts, now)
	require.True(t, full)

	r := bitio.NewReader(w.Bytes())
	out, stateMiss, err := cdis.ReadDesignator(r, dec, now)
	require.NoError(t, err)
	require.False(t, stateMiss)

	require.Equal(t, in.DesignatingEntityID, out.DesignatingEntityID)
	require.Equal(t, in.DesignatedEntityID, out.DesignatedEntityID)
	require.Equal(t, in.CodeName, out.CodeName)
	require.Equal(t, in.Code, out.Code)
	require.InDelta(t, in.Power, out.Power, 0.01)
	require.InDelta(t, in.Wavelength, out.Wavelength, 0.01)
	require.Equal(t, in.DeadReckoningAlgo, out.DeadReckoningAlgo)
}

// A second encode within the heartbeat interval omits every stateful
// field; decoding it against the first decode's cached snapshot must
// still reproduce the original values.
func TestDesignatorPartialUpdateResolvesAgainstSnapshot(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testDesignator()

	w1 := bitio.NewWriter(64)
	cdis.WriteDesignator(w1, in, enc, opts, now)
	first, _, err := cdis.ReadDesignator(bitio.NewReader(w1.Bytes()), dec, now)
	require.NoError(t, err)

	later := now.Add(time.Second)
	w2 := bitio.NewWriter(64)
	full := cdis.WriteDesignator(w2, in, enc, opts, later)
	require.False(t, full)

	second, stateMiss, err := cdis.ReadDesignator(bitio.NewReader(w2.Bytes()), dec, later)
	require.NoError(t, err)
	require.False(t, stateMiss)

	require.Equal(t, first.DesignatedEntityID, second.DesignatedEntityID)
	require.Equal(t, first.CodeName, second.CodeName)
	require.Equal(t, first.Code, second.Code)
	require.InDelta(t, first.Power, second.Power, 0.01)
	require.Equal(t, first.SpotLocation, second.SpotLocation)
}

// A partial update with no prior snapshot at all is reported as a state
// miss rather than a decode error (§7 "not a fatal error, but counted").
func TestDesignatorStateMissWithNoPriorSnapshot(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := cdis.DefaultOptions()
	opts.UpdateMode = cdis.UpdateModeAuto

	in := testDesignator()

	// Force a partial encode despite there being no decoder snapshot yet,
	// by encoding twice in a row and decoding only the second frame: the
	// decoder never observed the first (full) frame.
	now := time.Unix(1000, 0)
	w1 := bitio.NewWriter(64)
	cdis.WriteDesignator(w1, in, enc, opts, now)

	later := now.Add(time.Millisecond)
	w2 := bitio.NewWriter(64)
	cdis.WriteDesignator(w2, in, enc, opts, later)

	_, stateMiss, err := cdis.ReadDesignator(bitio.NewReader(w2.Bytes()), dec, later)
	require.NoError(t, err)
	require.True(t, stateMiss)
}
