package records

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/varint"
)

// Orientation holds Euler angles in radians: psi (yaw), theta (pitch),
// phi (roll) — the legacy DIS ordering (§3 "Orientation (Euler)").
type Orientation struct {
	Psi, Theta, Phi float64
}

// orientationScale maps ±π onto SVINT13's widest class extremes
// (min -4096, max 4095): §4.3 "Euler angles scaled so that −π maps to
// class minimum and +π to class maximum". Because every narrower SVINT13
// class is a truncated-magnitude view of the same 13-bit two's-complement
// range, scaling against the full class and letting the variable-width
// selector pick the smallest class that still fits is equivalent to
// scaling against whichever class the value ends up in.
const orientationScale = 4096.0 / math.Pi

// WriteOrientation writes psi, theta, phi as three SVINT13 components.
func WriteOrientation(w *bitio.Writer, o Orientation) {
	varint.WriteSVINT13(w, varint.SVINT13(clampOrientation(o.Psi)))
	varint.WriteSVINT13(w, varint.SVINT13(clampOrientation(o.Theta)))
	varint.WriteSVINT13(w, varint.SVINT13(clampOrientation(o.Phi)))
}

// ReadOrientation is the inverse of WriteOrientation.
func ReadOrientation(r *bitio.Reader) (Orientation, error) {
	psi, err := varint.ReadSVINT13(r)
	if err != nil {
		return Orientation{}, err
	}
	theta, err := varint.ReadSVINT13(r)
	if err != nil {
		return Orientation{}, err
	}
	phi, err := varint.ReadSVINT13(r)
	if err != nil {
		return Orientation{}, err
	}

	return Orientation{
		Psi:   float64(psi) / orientationScale,
		Theta: float64(theta) / orientationScale,
		Phi:   float64(phi) / orientationScale,
	}, nil
}

func clampOrientation(radians float64) int32 {
	raw := int64(math.Round(radians * orientationScale))
	if raw < -4096 {
		return -4096
	}
	if raw > 4095 {
		return 4095
	}

	return int32(raw)
}

// WriteDisOrientation writes psi, theta, phi as three big-endian f32
// fields, the legacy form.
func WriteDisOrientation(buf []byte, o Orientation) []byte {
	buf = engine.AppendUint32(buf, math.Float32bits(float32(o.Psi)))
	buf = engine.AppendUint32(buf, math.Float32bits(float32(o.Theta)))
	buf = engine.AppendUint32(buf, math.Float32bits(float32(o.Phi)))

	return buf
}

// ReadDisOrientation reads three big-endian f32 fields starting at off.
func ReadDisOrientation(buf []byte, off int) (Orientation, int) {
	o := Orientation{
		Psi:   float64(math.Float32frombits(engine.Uint32(buf[off:]))),
		Theta: float64(math.Float32frombits(engine.Uint32(buf[off+4:]))),
		Phi:   float64(math.Float32frombits(engine.Uint32(buf[off+8:]))),
	}

	return o, off + 12
}
