// Package cdisfloat implements the compressed mantissa/exponent floating
// point record family (§3/§4.2 "CdisFloat<M,E>").
//
// Both the mantissa and the exponent are plain two's-complement signed
// fields of widths M and E bits — not the sign+magnitude scheme the
// varint package uses for SVINT*. This follows the upstream Rust
// implementation's writer (`write_value_signed` for both fields), which
// this repository treats as authoritative where spec prose and source
// disagree (spec.md's §4.2 prose calls the fields "unsigned"; the
// reference codec's writer and its byte-literal test do not — see
// DESIGN.md).
package cdisfloat

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
)

// Spec names one parameterisation of CdisFloat: mantissa width M and
// exponent width E, in bits.
type Spec struct {
	MantissaBits int
	ExponentBits int
}

// Named instantiations used by the PDU codecs (§4.2).
var (
	FrequencySpec                  = Spec{MantissaBits: 24, ExponentBits: 4}
	PulseWidthSpec                 = Spec{MantissaBits: 24, ExponentBits: 4}
	TransmitterFrequencySpec       = Spec{MantissaBits: 24, ExponentBits: 4}
	TransmitFrequencyBandwidthSpec = Spec{MantissaBits: 17, ExponentBits: 4}
	ParameterValueSpec             = Spec{MantissaBits: 15, ExponentBits: 3}
)

// Float is a decoded/to-be-encoded CdisFloat value: mantissa * 10^exponent.
type Float struct {
	Spec     Spec
	Mantissa int32
	Exponent int32
}

func signedBounds(bits int) (min, max int32) {
	max = int32(1)<<uint(bits-1) - 1
	min = -(int32(1) << uint(bits-1))

	return min, max
}

// FromFloat converts f into the given Spec, scaling the mantissa down by
// factors of 10 until it fits in MantissaBits or the exponent saturates
// (§4.2 "from_float"). Exponent saturation and the resulting mantissa
// truncation are accepted precision loss (§7 PrecisionLoss).
func FromFloat(spec Spec, f float64) Float {
	_, maxMantissa := signedBounds(spec.MantissaBits)
	_, maxExponent := signedBounds(spec.ExponentBits)

	mantissa := f
	exponent := int32(0)
	for math.Abs(mantissa) > float64(maxMantissa) && exponent < maxExponent {
		mantissa /= 10
		exponent++
	}

	minM, maxM := signedBounds(spec.MantissaBits)
	m := int32(math.Round(mantissa))
	if m > maxM {
		m = maxM
	} else if m < minM {
		m = minM
	}

	return Float{Spec: spec, Mantissa: m, Exponent: exponent}
}

// ToFloat reconstructs the scaled value: mantissa * 10^exponent.
func (f Float) ToFloat() float64 {
	return float64(f.Mantissa) * math.Pow(10, float64(f.Exponent))
}

// Write serializes the mantissa then the exponent, each as a plain
// two's-complement signed field of the spec's width.
func Write(w *bitio.Writer, f Float) {
	w.WriteSigned(f.Spec.MantissaBits, f.Mantissa)
	w.WriteSigned(f.Spec.ExponentBits, f.Exponent)
}

// Read parses a Float of the given Spec.
func Read(r *bitio.Reader, spec Spec) (Float, error) {
	mantissa, err := r.ReadSigned(spec.MantissaBits)
	if err != nil {
		return Float{}, err
	}
	exponent, err := r.ReadSigned(spec.ExponentBits)
	if err != nil {
		return Float{}, err
	}

	return Float{Spec: spec, Mantissa: mantissa, Exponent: exponent}, nil
}
