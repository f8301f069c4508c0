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

func testTransmitter() dis.Transmitter {
	return dis.Transmitter{
		RadioReferenceID:   records.EntityID{Site: 1, Application: 2, Entity: 3},
		RadioNumber:        4,
		HasRadioType:       true,
		RadioType:          records.EntityType{Kind: 1, Domain: 2, Country: 225},
		TransmitState:      1,
		InputSource:        2,
		HasAntennaLocation: true,
		AntennaLocation:    records.WorldCoordinate{LatRadians: 0.1, LonRadians: 0.2, AltMeters: 100},
		HasRelativeAntenna: true,
		RelativeAntenna:    records.Vector3{X: 1, Y: 2, Z: 3},
		HasAntennaPattern:  true,
		AntennaPatternType: 1,
		AntennaPattern:     []byte{1, 2, 3, 4},
		HasFrequencyInfo:   true,
		Frequency:          225_000_000,
		Bandwidth:          25_000,
		Power:              10.5,
		ModulationType:     7,
		HasCrypto:          true,
		CryptoSystem:       1,
		CryptoKeyID:        42,
		ModulationParameters: []byte{9, 9},
		VariableTransmitter:  []byte{5},
	}
}

func TestTransmitterRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := testTransmitter()

	w := bitio.NewWriter(128)
	cdis.WriteTransmitter(w, in, enc, opts, now)

	out, err := cdis.ReadTransmitter(bitio.NewReader(w.Bytes()))
	require.NoError(t, err)

	require.Equal(t, in.RadioReferenceID, out.RadioReferenceID)
	require.Equal(t, in.RadioNumber, out.RadioNumber)
	require.Equal(t, in.RadioType, out.RadioType)
	require.Equal(t, in.TransmitState, out.TransmitState)
	require.Equal(t, in.AntennaLocation, out.AntennaLocation)
	require.Equal(t, in.AntennaPattern, out.AntennaPattern)
	require.InDelta(t, in.Frequency, out.Frequency, 10)
	require.InDelta(t, in.Power, out.Power, 0.01)
	require.Equal(t, in.CryptoSystem, out.CryptoSystem)
	require.Equal(t, in.CryptoKeyID, out.CryptoKeyID)
	require.Equal(t, in.ModulationParameters, out.ModulationParameters)
	require.Equal(t, in.VariableTransmitter, out.VariableTransmitter)
}

// When every Has* flag is false, all the optional fields are skipped and
// the two trailing byte blobs still round-trip as empty slices.
func TestTransmitterNoOptionalFieldsRoundTrip(t *testing.T) {
	enc := state.NewEncoderState()
	opts := cdis.DefaultOptions()
	now := time.Unix(1000, 0)

	in := dis.Transmitter{
		RadioReferenceID: records.EntityID{Site: 1, Application: 1, Entity: 1},
		RadioNumber:      1,
	}

	w := bitio.NewWriter(32)
	cdis.WriteTransmitter(w, in, enc, opts, now)

	out, err := cdis.ReadTransmitter(bitio.NewReader(w.Bytes()))
	require.NoError(t, err)

	require.False(t, out.HasRadioType)
	require.False(t, out.HasAntennaLocation)
	require.False(t, out.HasRelativeAntenna)
	require.False(t, out.HasAntennaPattern)
	require.False(t, out.HasFrequencyInfo)
	require.False(t, out.HasCrypto)
	require.Empty(t, out.ModulationParameters)
	require.Empty(t, out.VariableTransmitter)
}
