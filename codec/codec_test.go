package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/distsim/cdis-codec/cdis"
	"github.com/distsim/cdis-codec/codec"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/state"
)

func testEntityState() dis.PDU {
	return dis.PDU{
		Kind: dis.KindEntityState,
		EntityState: dis.EntityState{
			EntityID: records.EntityID{Site: 7, Application: 127, Entity: 255},
			ForceID:  1,
			EntityType: records.EntityType{
				Kind: 1, Domain: 2, Country: 201,
			},
			Location: records.WorldCoordinate{LatRadians: 0, LonRadians: 0, AltMeters: 5_000_000},
			Marking:  "TEST",
		},
	}
}

func round(t *testing.T, p dis.PDU, enc *state.EncoderState, dec *state.DecoderState, opts codec.Options, now time.Time) dis.PDU {
	t.Helper()

	header := cdis.Header{ProtocolVersion: cdis.CurrentProtocolVersion, ExerciseID: 1, Timestamp: 1}
	buf, err := codec.Encode(p, header, enc, opts, now)
	require.NoError(t, err)

	out, _, err := codec.Decode(buf, dec, now, opts)
	require.NoError(t, err)

	return out
}

// Scenario c: Entity State full-update round-trip.
func TestEntityStateFullUpdateRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := codec.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testEntityState()
	out := round(t, in, enc, dec, opts, now)

	require.Equal(t, in.EntityState.EntityID, out.EntityState.EntityID)
	require.Equal(t, in.EntityState.ForceID, out.EntityState.ForceID)
	require.Equal(t, in.EntityState.EntityType, out.EntityState.EntityType)
	require.Equal(t, in.EntityState.Marking, out.EntityState.Marking)
	require.Equal(t, in.EntityState.Capabilities, out.EntityState.Capabilities)
	require.InDelta(t, 0, out.EntityState.Location.LatRadians, 1e-9)
	require.InDelta(t, 0, out.EntityState.Location.LonRadians, 1e-9)
}

// Scenario d: a second encode within the heartbeat interval omits
// stateful fields, and decoding it against the first decode's state
// reproduces the first PDU.
func TestEntityStatePartialUpdateOmitsStatefulFields(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := codec.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testEntityState()
	header := cdis.Header{ProtocolVersion: cdis.CurrentProtocolVersion, ExerciseID: 1, Timestamp: 1}

	firstBuf, err := codec.Encode(in, header, enc, opts, now)
	require.NoError(t, err)
	first, _, err := codec.Decode(firstBuf, dec, now, opts)
	require.NoError(t, err)

	later := now.Add(time.Second)
	secondBuf, err := codec.Encode(in, header, enc, opts, later)
	require.NoError(t, err)
	second, stateMiss, err := codec.Decode(secondBuf, dec, later, opts)
	require.NoError(t, err)
	require.False(t, stateMiss)

	require.Equal(t, first.EntityState.EntityType, second.EntityState.EntityType)
	require.Equal(t, first.EntityState.Marking, second.EntityState.Marking)
	require.Equal(t, first.EntityState.Capabilities, second.EntityState.Capabilities)
	require.Equal(t, first.EntityState.Appearance, second.EntityState.Appearance)
}

// Scenario e: Detonation (stateless) round-trip.
func TestDetonationRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := codec.DefaultOptions()
	now := time.Unix(1000, 0)

	in := dis.PDU{
		Kind: dis.KindDetonation,
		Detonation: dis.Detonation{
			FiringEntityID:   records.EntityID{Site: 1, Application: 1, Entity: 1},
			TargetEntityID:   records.EntityID{Site: 2, Application: 2, Entity: 1},
			MunitionEntityID: records.EntityID{Site: 1, Application: 1, Entity: 100},
			EventID:          records.EventID{Site: 1, Application: 1, Entity: 1},
			Velocity:         records.Vector3{X: 10, Y: 10, Z: 10},
			Location:         records.WorldCoordinate{LatRadians: 0, LonRadians: 0, AltMeters: 20_000},
			Descriptor: dis.Descriptor{
				Kind: dis.DescriptorMunition,
				Munition: dis.MunitionDescriptor{
					Warhead:  1,
					Fuse:     1,
					Quantity: 1,
					Rate:     1,
				},
			},
			EntityLocation: records.Vector3{X: 10, Y: 10, Z: 0},
			Result:         1,
		},
	}

	out := round(t, in, enc, dec, opts, now)

	require.Equal(t, in.Detonation.FiringEntityID, out.Detonation.FiringEntityID)
	require.Equal(t, in.Detonation.TargetEntityID, out.Detonation.TargetEntityID)
	require.Equal(t, in.Detonation.MunitionEntityID, out.Detonation.MunitionEntityID)
	require.Equal(t, in.Detonation.EventID, out.Detonation.EventID)
	require.Equal(t, in.Detonation.Descriptor, out.Detonation.Descriptor)
	require.Equal(t, in.Detonation.Result, out.Detonation.Result)
	require.InDelta(t, in.Detonation.Velocity.X, out.Detonation.Velocity.X, 0.1)
	require.InDelta(t, 0, out.Detonation.Location.LatRadians, 1e-9)
}

// Scenario f: a C-DIS header declaring more bytes than the buffer holds
// yields Truncated.
func TestDecodeTruncatedHeaderYieldsTruncated(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := codec.DefaultOptions()
	now := time.Unix(1000, 0)

	header := cdis.Header{ProtocolVersion: cdis.CurrentProtocolVersion, ExerciseID: 1, Timestamp: 1}
	buf, err := codec.Encode(testEntityState(), header, enc, opts, now)
	require.NoError(t, err)

	truncated := buf[:len(buf)-1]
	_, _, err = codec.Decode(truncated, dec, now, opts)
	require.Error(t, err)
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestEncodeUnsupportedPduType(t *testing.T) {
	enc := state.NewEncoderState()
	opts := codec.DefaultOptions()
	header := cdis.Header{ProtocolVersion: cdis.CurrentProtocolVersion, ExerciseID: 1, Timestamp: 1}

	_, err := codec.Encode(dis.PDU{Kind: dis.PduKind(250)}, header, enc, opts, time.Unix(0, 0))
	require.Error(t, err)
}

func TestLegacyRoundTrip(t *testing.T) {
	in := testEntityState()
	legacyHeader := dis.Header{ProtocolVersion: dis.ProtocolVersion1278_1_2012, ExerciseID: 1, Timestamp: 1}

	buf, err := codec.EncodeLegacy(in, legacyHeader)
	require.NoError(t, err)

	out, err := codec.DecodeLegacy(buf)
	require.NoError(t, err)

	require.Equal(t, in.EntityState.EntityID, out.EntityState.EntityID)
	require.Equal(t, in.EntityState.Marking, out.EntityState.Marking)
}
