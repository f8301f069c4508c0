package records

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/varint"
)

// LinearUnit selects meters or centimeters for an entity-local coordinate
// vector (§3 "Entity coordinate vector").
type LinearUnit uint8

const (
	LinearMeters      LinearUnit = 0
	LinearCentimeters LinearUnit = 1
)

// Vector3 is a generic float triple used for entity-local coordinates,
// velocities, and accelerations (§3).
type Vector3 struct {
	X, Y, Z float64
}

// WriteEntityCoordinateVector writes three SVINT16 components scaled per
// unit. EncodeLinearUnit should be used to pick unit so all three
// components fit (§4.3 "Entity coordinate vector").
func WriteEntityCoordinateVector(w *bitio.Writer, v Vector3, unit LinearUnit) {
	writeSVINT16Vector(w, v, linearScale(unit))
}

// ReadEntityCoordinateVector is the inverse of WriteEntityCoordinateVector.
func ReadEntityCoordinateVector(r *bitio.Reader, unit LinearUnit) (Vector3, error) {
	return readSVINT16Vector(r, linearScale(unit))
}

func linearScale(unit LinearUnit) float64 {
	if unit == LinearCentimeters {
		return 100
	}

	return 1
}

// EncodeLinearUnit selects centimeters when every component's
// centimeter-scaled value fits SVINT16's widest class, otherwise meters
// (§4.3: "Encoder selects centimeters when every component's absolute
// value fits an SVINT16 in centimeters; otherwise meters").
func EncodeLinearUnit(v Vector3) LinearUnit {
	const svint16Max = 1 << 15
	fits := func(f float64) bool {
		cm := f * 100
		return cm > -svint16Max && cm < svint16Max
	}
	if fits(v.X) && fits(v.Y) && fits(v.Z) {
		return LinearCentimeters
	}

	return LinearMeters
}

// WriteLinearVelocity writes three unscaled SVINT16 components (§4.3
// "Linear velocity, angular velocity, linear acceleration").
func WriteLinearVelocity(w *bitio.Writer, v Vector3) { writeSVINT16Vector(w, v, 1) }

// ReadLinearVelocity is the inverse of WriteLinearVelocity.
func ReadLinearVelocity(r *bitio.Reader) (Vector3, error) { return readSVINT16Vector(r, 1) }

// WriteLinearAcceleration writes three unscaled SVINT16 components.
func WriteLinearAcceleration(w *bitio.Writer, v Vector3) { writeSVINT16Vector(w, v, 1) }

// ReadLinearAcceleration is the inverse of WriteLinearAcceleration.
func ReadLinearAcceleration(r *bitio.Reader) (Vector3, error) { return readSVINT16Vector(r, 1) }

// angularVelocityScale converts radians/second to the integer units
// carried by an SVINT13 component. The source material available here
// does not pin down this scale factor (no HBT-style constant for angular
// rate survives in the retrieved sources); centiradians/second was
// chosen for consistency with the centimeter-scaling convention used
// elsewhere in this record family, and is recorded as a design decision
// rather than a grounded constant.
const angularVelocityScale = 100

// WriteAngularVelocity writes three SVINT13 components scaled by
// angularVelocityScale (§4.3: "angular velocity as radians per second
// scaled").
func WriteAngularVelocity(w *bitio.Writer, v Vector3) {
	varint.WriteSVINT13(w, varint.SVINT13(math.Round(v.X*angularVelocityScale)))
	varint.WriteSVINT13(w, varint.SVINT13(math.Round(v.Y*angularVelocityScale)))
	varint.WriteSVINT13(w, varint.SVINT13(math.Round(v.Z*angularVelocityScale)))
}

// ReadAngularVelocity is the inverse of WriteAngularVelocity.
func ReadAngularVelocity(r *bitio.Reader) (Vector3, error) {
	x, err := varint.ReadSVINT13(r)
	if err != nil {
		return Vector3{}, err
	}
	y, err := varint.ReadSVINT13(r)
	if err != nil {
		return Vector3{}, err
	}
	z, err := varint.ReadSVINT13(r)
	if err != nil {
		return Vector3{}, err
	}

	return Vector3{
		X: float64(x) / angularVelocityScale,
		Y: float64(y) / angularVelocityScale,
		Z: float64(z) / angularVelocityScale,
	}, nil
}

func writeSVINT16Vector(w *bitio.Writer, v Vector3, scale float64) {
	varint.WriteSVINT16(w, varint.SVINT16(math.Round(v.X*scale)))
	varint.WriteSVINT16(w, varint.SVINT16(math.Round(v.Y*scale)))
	varint.WriteSVINT16(w, varint.SVINT16(math.Round(v.Z*scale)))
}

func readSVINT16Vector(r *bitio.Reader, scale float64) (Vector3, error) {
	x, err := varint.ReadSVINT16(r)
	if err != nil {
		return Vector3{}, err
	}
	y, err := varint.ReadSVINT16(r)
	if err != nil {
		return Vector3{}, err
	}
	z, err := varint.ReadSVINT16(r)
	if err != nil {
		return Vector3{}, err
	}

	return Vector3{X: float64(x) / scale, Y: float64(y) / scale, Z: float64(z) / scale}, nil
}

// WriteDisFloat3 writes three big-endian f32 fields, the legacy form
// shared by entity-local coordinates, velocities, and accelerations
// (§3: "Legacy: three 32-bit floats").
func WriteDisFloat3(buf []byte, v Vector3) []byte {
	buf = engine.AppendUint32(buf, math.Float32bits(float32(v.X)))
	buf = engine.AppendUint32(buf, math.Float32bits(float32(v.Y)))
	buf = engine.AppendUint32(buf, math.Float32bits(float32(v.Z)))

	return buf
}

// ReadDisFloat3 reads three big-endian f32 fields starting at off.
func ReadDisFloat3(buf []byte, off int) (Vector3, int) {
	v := Vector3{
		X: float64(math.Float32frombits(engine.Uint32(buf[off:]))),
		Y: float64(math.Float32frombits(engine.Uint32(buf[off+4:]))),
		Z: float64(math.Float32frombits(engine.Uint32(buf[off+8:]))),
	}

	return v, off + 12
}
