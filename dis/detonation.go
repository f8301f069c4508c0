package dis

import "github.com/distsim/cdis-codec/records"

// MunitionDescriptor is the legacy burst descriptor for a munition
// detonation/fire event (§4.5 "Detonation encodes descriptor variants
// (munition vs. expendable) behind a 2-bit selector").
type MunitionDescriptor struct {
	EntityType records.EntityType
	Warhead    uint16
	Fuse       uint16
	Quantity   uint16
	Rate       uint16
}

// ExpendableDescriptor is the alternate burst descriptor for expendables
// (flares, chaff).
type ExpendableDescriptor struct {
	EntityType records.EntityType
}

// DescriptorKind selects between the munition and expendable descriptor
// variants (§4.5).
type DescriptorKind uint8

const (
	DescriptorMunition DescriptorKind = iota
	DescriptorExpendable
)

// Descriptor is the tagged union over MunitionDescriptor and
// ExpendableDescriptor.
type Descriptor struct {
	Kind       DescriptorKind
	Munition   MunitionDescriptor
	Expendable ExpendableDescriptor
}

// DetonationResult is the legacy detonation-result enumeration, opaque
// beyond its numeric value per §1.
type DetonationResult uint8

// Detonation is the legacy Detonation PDU body (§4.5, test scenario e).
type Detonation struct {
	FiringEntityID   records.EntityID
	TargetEntityID   records.EntityID
	MunitionEntityID records.EntityID
	EventID          records.EventID
	Velocity         records.Vector3
	Location         records.WorldCoordinate
	Descriptor       Descriptor
	EntityLocation   records.Vector3
	Result           DetonationResult
}

func WriteDetonation(buf []byte, d Detonation) []byte {
	buf = records.WriteDisEntityID(buf, d.FiringEntityID)
	buf = records.WriteDisEntityID(buf, d.TargetEntityID)
	buf = records.WriteDisEntityID(buf, d.MunitionEntityID)
	buf = records.WriteDisEntityID(buf, d.EventID)
	buf = records.WriteDisFloat3(buf, d.Velocity)
	buf = records.WriteDisDouble3(buf, d.Location.LatRadians, d.Location.LonRadians, d.Location.AltMeters)
	buf = writeMunitionDescriptor(buf, d.Descriptor.Munition)
	buf = records.WriteDisFloat3(buf, d.EntityLocation)
	buf = append(buf, uint8(d.Result), 0, 0)

	return buf
}

func ReadDetonation(buf []byte, off int) (Detonation, int) {
	var d Detonation

	d.FiringEntityID, off = records.ReadDisEntityID(buf, off)
	d.TargetEntityID, off = records.ReadDisEntityID(buf, off)
	d.MunitionEntityID, off = records.ReadDisEntityID(buf, off)
	d.EventID, off = records.ReadDisEntityID(buf, off)
	d.Velocity, off = records.ReadDisFloat3(buf, off)

	lat, lon, alt, next := records.ReadDisDouble3(buf, off)
	d.Location = records.WorldCoordinate{LatRadians: lat, LonRadians: lon, AltMeters: alt}
	off = next

	d.Descriptor.Munition, off = readMunitionDescriptor(buf, off)
	d.EntityLocation, off = records.ReadDisFloat3(buf, off)
	d.Result = DetonationResult(buf[off])
	off += 3

	return d, off
}

func writeMunitionDescriptor(buf []byte, m MunitionDescriptor) []byte {
	buf = records.WriteDisEntityType(buf, m.EntityType)
	buf = engine.AppendUint16(buf, m.Warhead)
	buf = engine.AppendUint16(buf, m.Fuse)
	buf = engine.AppendUint16(buf, m.Quantity)
	buf = engine.AppendUint16(buf, m.Rate)

	return buf
}

func readMunitionDescriptor(buf []byte, off int) (MunitionDescriptor, int) {
	var m MunitionDescriptor

	m.EntityType, off = records.ReadDisEntityType(buf, off)
	m.Warhead = engine.Uint16(buf[off:])
	m.Fuse = engine.Uint16(buf[off+2:])
	m.Quantity = engine.Uint16(buf[off+4:])
	m.Rate = engine.Uint16(buf[off+6:])

	return m, off + 8
}
