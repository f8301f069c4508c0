package dis

import "github.com/distsim/cdis-codec/records"

// Fire is the legacy Fire PDU body (§4.5). The descriptor variant is
// selected by the header's PduStatus.FireTypeIndicator bit rather than
// by a field in the body itself.
type Fire struct {
	FiringEntityID   records.EntityID
	TargetEntityID   records.EntityID
	MunitionEntityID records.EntityID
	EventID          records.EventID
	FireMissionIndex uint32
	Location         records.WorldCoordinate
	Descriptor       Descriptor
	Velocity         records.Vector3
	Range            float32
}

func WriteFire(buf []byte, f Fire) []byte {
	buf = records.WriteDisEntityID(buf, f.FiringEntityID)
	buf = records.WriteDisEntityID(buf, f.TargetEntityID)
	buf = records.WriteDisEntityID(buf, f.MunitionEntityID)
	buf = records.WriteDisEntityID(buf, f.EventID)
	buf = engine.AppendUint32(buf, f.FireMissionIndex)
	buf = records.WriteDisDouble3(buf, f.Location.LatRadians, f.Location.LonRadians, f.Location.AltMeters)
	buf = writeMunitionDescriptor(buf, f.Descriptor.Munition)
	buf = records.WriteDisFloat3(buf, f.Velocity)
	buf = engine.AppendUint32(buf, math32Bits(f.Range))

	return buf
}

func ReadFire(buf []byte, off int) (Fire, int) {
	var f Fire

	f.FiringEntityID, off = records.ReadDisEntityID(buf, off)
	f.TargetEntityID, off = records.ReadDisEntityID(buf, off)
	f.MunitionEntityID, off = records.ReadDisEntityID(buf, off)
	f.EventID, off = records.ReadDisEntityID(buf, off)
	f.FireMissionIndex = engine.Uint32(buf[off:])
	off += 4

	lat, lon, alt, next := records.ReadDisDouble3(buf, off)
	f.Location = records.WorldCoordinate{LatRadians: lat, LonRadians: lon, AltMeters: alt}
	off = next

	f.Descriptor.Munition, off = readMunitionDescriptor(buf, off)
	f.Velocity, off = records.ReadDisFloat3(buf, off)
	f.Range = math32FromBits(engine.Uint32(buf[off:]))
	off += 4

	return f, off
}
