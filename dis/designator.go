package dis

import "github.com/distsim/cdis-codec/records"

// Designator is the legacy Designator PDU body (§4.4.2), the second
// stateful PDU kind after Entity State.
type Designator struct {
	DesignatingEntityID records.EntityID
	CodeName            uint16
	DesignatedEntityID  records.EntityID
	Code                uint16
	Power               float32
	Wavelength          float32
	SpotWrtDesignated   records.Vector3
	SpotLocation        records.WorldCoordinate
	DeadReckoningAlgo   uint8
	LinearAcceleration  records.Vector3
}

func WriteDesignator(buf []byte, d Designator) []byte {
	buf = records.WriteDisEntityID(buf, d.DesignatingEntityID)
	buf = engine.AppendUint16(buf, d.CodeName)
	buf = records.WriteDisEntityID(buf, d.DesignatedEntityID)
	buf = append(buf, 0) // designator code (enumeration, opaque)
	buf = engine.AppendUint16(buf, d.Code)
	buf = engine.AppendUint32(buf, math32Bits(d.Power))
	buf = engine.AppendUint32(buf, math32Bits(d.Wavelength))
	buf = records.WriteDisFloat3(buf, d.SpotWrtDesignated)
	buf = records.WriteDisDouble3(buf, d.SpotLocation.LatRadians, d.SpotLocation.LonRadians, d.SpotLocation.AltMeters)
	buf = append(buf, d.DeadReckoningAlgo, 0, 0, 0)
	buf = records.WriteDisFloat3(buf, d.LinearAcceleration)

	return buf
}

func ReadDesignator(buf []byte, off int) (Designator, int) {
	var d Designator

	d.DesignatingEntityID, off = records.ReadDisEntityID(buf, off)
	d.CodeName = engine.Uint16(buf[off:])
	off += 2
	d.DesignatedEntityID, off = records.ReadDisEntityID(buf, off)
	off++ // designator code byte
	d.Code = engine.Uint16(buf[off:])
	off += 2
	d.Power = math32FromBits(engine.Uint32(buf[off:]))
	off += 4
	d.Wavelength = math32FromBits(engine.Uint32(buf[off:]))
	off += 4
	d.SpotWrtDesignated, off = records.ReadDisFloat3(buf, off)

	lat, lon, alt, next := records.ReadDisDouble3(buf, off)
	d.SpotLocation = records.WorldCoordinate{LatRadians: lat, LonRadians: lon, AltMeters: alt}
	off = next

	d.DeadReckoningAlgo = buf[off]
	off += 4
	d.LinearAcceleration, off = records.ReadDisFloat3(buf, off)

	return d, off
}
