package dis

import "github.com/distsim/cdis-codec/records"

// ForceID is the legacy force-affiliation octet (friendly/opposing/
// neutral/other, opaque beyond that per §1).
type ForceID uint8

// EntityState is the legacy Entity State PDU body (§4.4.1). Fields
// marked stateful in the spec's delta engine are the same ones carried
// here; EntityState itself has no notion of "stateful" — that is purely
// a wire-encoding concern handled by the cdis package and state tables.
type EntityState struct {
	EntityID             records.EntityID
	ForceID              ForceID
	EntityType           records.EntityType
	AlternateEntityType  records.EntityType
	LinearVelocity       records.Vector3
	Location             records.WorldCoordinate
	Orientation          records.Orientation
	Appearance           uint32
	DeadReckoningAlgo    uint8
	DeadReckoningAccel   records.Vector3
	DeadReckoningAngular records.Vector3
	Marking              string
	Capabilities         uint32
	ArticulationParams   ArticulationParameters
}

// WriteEntityState appends the legacy Entity State PDU body to buf. The
// variable parameter count precedes the list as a single byte per the
// legacy wire convention.
func WriteEntityState(buf []byte, e EntityState) []byte {
	buf = records.WriteDisEntityID(buf, e.EntityID)
	buf = append(buf, uint8(e.ForceID), uint8(len(e.ArticulationParams)))
	buf = records.WriteDisEntityType(buf, e.EntityType)
	buf = records.WriteDisEntityType(buf, e.AlternateEntityType)
	buf = records.WriteDisFloat3(buf, e.LinearVelocity)
	buf = records.WriteDisDouble3(buf, e.Location.LatRadians, e.Location.LonRadians, e.Location.AltMeters)
	buf = records.WriteDisOrientation(buf, e.Orientation)
	buf = engine.AppendUint32(buf, e.Appearance)
	buf = append(buf, e.DeadReckoningAlgo)
	buf = records.WriteDisFloat3(buf, e.DeadReckoningAccel)
	buf = records.WriteDisFloat3(buf, e.DeadReckoningAngular)
	buf = records.WriteDisMarking(buf, e.Marking, 11)
	buf = engine.AppendUint32(buf, e.Capabilities)

	return buf
}

func ReadEntityState(buf []byte, off int) (EntityState, int) {
	var e EntityState

	e.EntityID, off = records.ReadDisEntityID(buf, off)
	e.ForceID = ForceID(buf[off])
	numParams := int(buf[off+1])
	off += 2
	e.EntityType, off = records.ReadDisEntityType(buf, off)
	e.AlternateEntityType, off = records.ReadDisEntityType(buf, off)
	e.LinearVelocity, off = records.ReadDisFloat3(buf, off)

	lat, lon, alt, next := records.ReadDisDouble3(buf, off)
	e.Location = records.WorldCoordinate{LatRadians: lat, LonRadians: lon, AltMeters: alt}
	off = next

	e.Orientation, off = records.ReadDisOrientation(buf, off)
	e.Appearance = engine.Uint32(buf[off:])
	off += 4
	e.DeadReckoningAlgo = buf[off]
	off++
	e.DeadReckoningAccel, off = records.ReadDisFloat3(buf, off)
	e.DeadReckoningAngular, off = records.ReadDisFloat3(buf, off)
	e.Marking, off = records.ReadDisMarking(buf, off, 11)
	e.Capabilities = engine.Uint32(buf[off:])
	off += 4

	_ = numParams // article parameters are encoded by the cdis side; the
	// legacy articulated-part list is opaque-length here per §1.

	return e, off
}
