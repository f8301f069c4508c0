package cdisfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distsim/cdis-codec/bitio"
)

func TestParameterValueFloat_Literal(t *testing.T) {
	w := bitio.NewWriter(4)
	f := Float{Spec: ParameterValueSpec, Mantissa: 1, Exponent: 1}
	Write(w, f)
	assert.Equal(t, 18, w.BitPos())
	assert.Equal(t, []byte{0b00000000, 0b00000010, 0b01000000}, w.Bytes())
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Float{
		{Spec: FrequencySpec, Mantissa: 0, Exponent: 0},
		{Spec: FrequencySpec, Mantissa: -1, Exponent: 3},
		{Spec: TransmitFrequencyBandwidthSpec, Mantissa: 12345, Exponent: -2},
	} {
		w := bitio.NewWriter(8)
		Write(w, f)
		r := bitio.NewReader(w.Bytes())
		got, err := Read(r, f.Spec)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestFromFloatSaturatesExponent(t *testing.T) {
	// ParameterValueSpec: 15-bit mantissa (max 16383), 3-bit exponent (max 3).
	f := FromFloat(ParameterValueSpec, 1e12)
	assert.LessOrEqual(t, f.Exponent, int32(3))
	assert.LessOrEqual(t, f.Mantissa, int32(16383))
}

func TestFromFloatSmallValueNoScaling(t *testing.T) {
	f := FromFloat(FrequencySpec, 42)
	assert.Equal(t, int32(42), f.Mantissa)
	assert.Equal(t, int32(0), f.Exponent)
	assert.InDelta(t, 42.0, f.ToFloat(), 0.0001)
}
