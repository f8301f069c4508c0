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

func testIFF() dis.IFF {
	return dis.IFF{
		EmittingEntityID: records.EntityID{Site: 1, Application: 2, Entity: 3},
		HasEventID:       true,
		EventID:          records.EntityID{Site: 1, Application: 2, Entity: 100},
		SystemID: dis.SystemID{
			SystemType: 1, SystemName: 2, SystemMode: 1, ChangeOptions: 0x0F,
		},
		SystemDesignator: 7,
		FundamentalOperational: dis.FundamentalOperationalData{
			SystemStatus:      0x01,
			InformationLayers: 0b0011_1100, // layers 2-5 present
			Parameter1:        9,
		},
		Layer2: &dis.IFFLayer2{
			BeamData:              dis.BeamData{AzimuthCenter: 0.1, ElevationCenter: 0.2},
			OperationalParameter1: 1,
			OperationalParameter2: 2,
			FundamentalParams: []dis.IFFFundamentalParameterData{
				{ERP: 10, Frequency: 1_030_000_000, PRF: 400, PulseWidth: 3.5, BurstLength: 32, ApplicableModes: 0x07, SystemSpecificData: 0},
			},
		},
		Layer3: &dis.IFFLayer3{
			ReportingSite:        1,
			ReportingApplication: 2,
			Mode5: dis.Mode5BasicData{
				IsTransponder: false,
				Interrogator: dis.Mode5InterrogatorBasicData{
					Status:                1,
					MessageFormatsPresent: 0x00FF,
					InterrogatedEntityID:  records.EntityID{Site: 9, Application: 9, Entity: 9},
				},
			},
		},
		Layer4: &dis.IFFLayer4{
			ReportingSite:        1,
			ReportingApplication: 2,
			ModeS: dis.ModeSBasicData{
				IsTransponder: true,
				Transponder: dis.ModeSTransponderBasicData{
					Status:                 2,
					AircraftIdentification: "N12345",
					AircraftAddress:        0xABCDEF01,
					AircraftIdentType:      1,
					SmartStatus:            1,
					Capability:             3,
				},
			},
			DataRecords: []dis.IFFDataRecord{
				{RecordType: 42, Fields: []byte{1, 2, 3}},
			},
		},
		Layer5: &dis.IFFLayer5{
			ReportingSite:        1,
			ReportingApplication: 2,
			ApplicableLayers:     0b0011_1100,
			DataCategory:         5,
		},
	}
}

func TestIFFFullUpdateRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testIFF()

	w := bitio.NewWriter(128)
	full := cdis.WriteIFF(w, in, enc, opts, now)
	require.True(t, full)

	r := bitio.NewReader(w.Bytes())
	out, stateMiss, err := cdis.ReadIFF(r, dec, now)
	require.NoError(t, err)
	require.False(t, stateMiss)

	require.Equal(t, in.EmittingEntityID, out.EmittingEntityID)
	require.Equal(t, in.SystemID, out.SystemID)
	require.Equal(t, in.FundamentalOperational, out.FundamentalOperational)

	require.NotNil(t, out.Layer2)
	require.Equal(t, in.Layer2.OperationalParameter1, out.Layer2.OperationalParameter1)
	require.Len(t, out.Layer2.FundamentalParams, 1)
	require.InDelta(t, in.Layer2.FundamentalParams[0].Frequency, out.Layer2.FundamentalParams[0].Frequency, 1000)
	require.Equal(t, in.Layer2.FundamentalParams[0].PRF, out.Layer2.FundamentalParams[0].PRF)

	require.NotNil(t, out.Layer3)
	require.False(t, out.Layer3.Mode5.IsTransponder)
	require.Equal(t, in.Layer3.Mode5.Interrogator.InterrogatedEntityID, out.Layer3.Mode5.Interrogator.InterrogatedEntityID)

	require.NotNil(t, out.Layer4)
	require.True(t, out.Layer4.ModeS.IsTransponder)
	require.Equal(t, in.Layer4.ModeS.Transponder.AircraftIdentification, out.Layer4.ModeS.Transponder.AircraftIdentification)
	require.Equal(t, in.Layer4.ModeS.Transponder.AircraftAddress, out.Layer4.ModeS.Transponder.AircraftAddress)
	require.Equal(t, in.Layer4.DataRecords, out.Layer4.DataRecords)

	require.NotNil(t, out.Layer5)
	require.Equal(t, in.Layer5.DataCategory, out.Layer5.DataCategory)
}

// A second encode within the heartbeat interval omits SystemID, the one
// stateful base-layer field, and the decoder resolves it from its cached
// snapshot (§4.4.3 "Only system_id is stateful in the base layer").
func TestIFFPartialUpdateResolvesSystemIDFromSnapshot(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testIFF()

	w1 := bitio.NewWriter(128)
	cdis.WriteIFF(w1, in, enc, opts, now)
	_, _, err := cdis.ReadIFF(bitio.NewReader(w1.Bytes()), dec, now)
	require.NoError(t, err)

	later := now.Add(time.Second)
	w2 := bitio.NewWriter(128)
	full := cdis.WriteIFF(w2, in, enc, opts, later)
	require.False(t, full)

	second, stateMiss, err := cdis.ReadIFF(bitio.NewReader(w2.Bytes()), dec, later)
	require.NoError(t, err)
	require.False(t, stateMiss)
	require.Equal(t, in.SystemID, second.SystemID)
}

// No optional layer present round-trips as all four pointers nil.
func TestIFFNoLayersRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := dis.IFF{
		EmittingEntityID: records.EntityID{Site: 1, Application: 1, Entity: 1},
		SystemID:         dis.SystemID{SystemType: 1},
	}

	w := bitio.NewWriter(32)
	cdis.WriteIFF(w, in, enc, opts, now)

	out, _, err := cdis.ReadIFF(bitio.NewReader(w.Bytes()), dec, now)
	require.NoError(t, err)
	require.Nil(t, out.Layer2)
	require.Nil(t, out.Layer3)
	require.Nil(t, out.Layer4)
	require.Nil(t, out.Layer5)
}
