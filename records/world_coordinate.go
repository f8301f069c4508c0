package records

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/varint"
)

// AltitudeUnit selects the scale of a compressed world coordinate's
// altitude field (§3 "World coordinates").
type AltitudeUnit uint8

const (
	AltitudeDekameters  AltitudeUnit = 0
	AltitudeCentimeters AltitudeUnit = 1
)

// WorldCoordinate is a geodetic position: latitude/longitude in radians,
// altitude in meters, the shape the legacy side stores as three f64
// (Earth-centered Earth-fixed, approximated here by the geodetic form the
// PDU codecs actually round-trip through).
type WorldCoordinate struct {
	LatRadians float64
	LonRadians float64
	AltMeters  float64
}

const (
	latScale = 1 << 30
	lonScale = 1 << 31
)

// WriteWorldCoordinate writes a 31-bit signed latitude, a 32-bit signed
// longitude, and an SVINT24 altitude scaled per unit (§4.3 "World
// coordinates"). The caller picks unit; EncodeAltitudeUnit chooses the
// unit that loses no precision when one exists.
func WriteWorldCoordinate(w *bitio.Writer, c WorldCoordinate, unit AltitudeUnit) {
	lat := clampInt32(int64(math.Round(c.LatRadians/math.Pi*latScale)), -(latScale-1), latScale-1)
	lon := clampInt32(int64(math.Round(c.LonRadians/math.Pi*lonScale)), -lonScale, lonScale-1)

	w.WriteSigned(31, lat)
	w.WriteSigned(32, lon)

	varint.WriteSVINT24(w, varint.SVINT24(encodeAltitude(c.AltMeters, unit)))
}

// ReadWorldCoordinate is the inverse of WriteWorldCoordinate.
func ReadWorldCoordinate(r *bitio.Reader, unit AltitudeUnit) (WorldCoordinate, error) {
	lat, err := r.ReadSigned(31)
	if err != nil {
		return WorldCoordinate{}, err
	}
	lon, err := r.ReadSigned(32)
	if err != nil {
		return WorldCoordinate{}, err
	}
	alt, err := varint.ReadSVINT24(r)
	if err != nil {
		return WorldCoordinate{}, err
	}

	return WorldCoordinate{
		LatRadians: float64(lat) / latScale * math.Pi,
		LonRadians: float64(lon) / lonScale * math.Pi,
		AltMeters:  decodeAltitude(int32(alt), unit),
	}, nil
}

func encodeAltitude(meters float64, unit AltitudeUnit) int32 {
	if unit == AltitudeCentimeters {
		return int32(math.Round(meters * 100))
	}

	return int32(math.Round(meters / 10))
}

func decodeAltitude(raw int32, unit AltitudeUnit) float64 {
	if unit == AltitudeCentimeters {
		return float64(raw) / 100
	}

	return float64(raw) * 10
}

// EncodeAltitudeUnit picks centimeters when the scaled value fits
// SVINT24's widest class, falling back to dekameters otherwise (§7
// "PrecisionLoss ... world-coordinate centimeter unit selected when
// meters were needed (degraded to meters)" — mirrored here for altitude
// at the dekameter/centimeter boundary).
func EncodeAltitudeUnit(meters float64) AltitudeUnit {
	cm := meters * 100
	if cm >= -(1<<23) && cm <= (1<<23)-1 {
		return AltitudeCentimeters
	}

	return AltitudeDekameters
}

func clampInt32(v int64, lo, hi int32) int32 {
	if v < int64(lo) {
		return lo
	}
	if v > int64(hi) {
		return hi
	}

	return int32(v)
}

// WriteDisDouble3 writes three big-endian f64 fields — the legacy
// Earth-centered Earth-fixed world coordinate form (§3 "World
// coordinates": "Legacy: three 64-bit doubles"). This helper only handles
// the wire layout; the PDU codecs pass latitude, longitude and altitude
// through unchanged, and no geodetic/ECEF conversion is done.
func WriteDisDouble3(buf []byte, x, y, z float64) []byte {
	buf = engine.AppendUint64(buf, math.Float64bits(x))
	buf = engine.AppendUint64(buf, math.Float64bits(y))
	buf = engine.AppendUint64(buf, math.Float64bits(z))

	return buf
}

// ReadDisDouble3 reads three big-endian f64 starting at off.
func ReadDisDouble3(buf []byte, off int) (x, y, z float64, next int) {
	x = math.Float64frombits(engine.Uint64(buf[off:]))
	y = math.Float64frombits(engine.Uint64(buf[off+8:]))
	z = math.Float64frombits(engine.Uint64(buf[off+16:]))

	return x, y, z, off + 24
}
