package cdis

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/varint"
)

func writeMunitionDescriptor(w *bitio.Writer, m dis.MunitionDescriptor) {
	records.WriteEntityType(w, m.EntityType)
	varint.WriteUVINT16(w, varint.UVINT16(m.Warhead))
	varint.WriteUVINT16(w, varint.UVINT16(m.Fuse))
	varint.WriteUVINT16(w, varint.UVINT16(m.Quantity))
	varint.WriteUVINT16(w, varint.UVINT16(m.Rate))
}

func readMunitionDescriptor(r *bitio.Reader) (dis.MunitionDescriptor, error) {
	var m dis.MunitionDescriptor

	var err error
	m.EntityType, err = records.ReadEntityType(r)
	if err != nil {
		return m, err
	}
	warhead, err := varint.ReadUVINT16(r)
	if err != nil {
		return m, err
	}
	fuse, err := varint.ReadUVINT16(r)
	if err != nil {
		return m, err
	}
	quantity, err := varint.ReadUVINT16(r)
	if err != nil {
		return m, err
	}
	rate, err := varint.ReadUVINT16(r)
	if err != nil {
		return m, err
	}

	m.Warhead = uint16(warhead)
	m.Fuse = uint16(fuse)
	m.Quantity = uint16(quantity)
	m.Rate = uint16(rate)

	return m, nil
}

func writeExpendableDescriptor(w *bitio.Writer, e dis.ExpendableDescriptor) {
	records.WriteEntityType(w, e.EntityType)
}

func readExpendableDescriptor(r *bitio.Reader) (dis.ExpendableDescriptor, error) {
	t, err := records.ReadEntityType(r)

	return dis.ExpendableDescriptor{EntityType: t}, err
}

// writeDescriptor writes the kind selector (§4.5: Fire's selector is the
// legacy fire-type-indicator bit, 1 bit wide; Detonation's is a 2-bit
// field) then the chosen variant's payload.
func writeDescriptor(w *bitio.Writer, d dis.Descriptor, bits int) {
	w.WriteUnsigned(bits, uint32(d.Kind))
	switch d.Kind {
	case dis.DescriptorExpendable:
		writeExpendableDescriptor(w, d.Expendable)
	default:
		writeMunitionDescriptor(w, d.Munition)
	}
}

func readDescriptor(r *bitio.Reader, bits int) (dis.Descriptor, error) {
	kindBits, err := r.ReadUnsigned(bits)
	if err != nil {
		return dis.Descriptor{}, err
	}
	kind := dis.DescriptorKind(kindBits)

	if kind == dis.DescriptorExpendable {
		e, err := readExpendableDescriptor(r)

		return dis.Descriptor{Kind: kind, Expendable: e}, err
	}

	m, err := readMunitionDescriptor(r)

	return dis.Descriptor{Kind: kind, Munition: m}, err
}

// fireDescriptorBits and detonationDescriptorBits are the widths §4.5
// gives each PDU's descriptor kind selector: Fire reuses the legacy
// fire-type-indicator bit from the PDU status octet, Detonation gets a
// dedicated 2-bit field.
const (
	fireDescriptorBits       = 1
	detonationDescriptorBits = 2
)

// WriteFire encodes f's compressed body. The descriptor's 1-bit selector
// is the legacy fire-type indicator carried in the PDU status octet
// (§4.5).
func WriteFire(w *bitio.Writer, f dis.Fire) {
	records.WriteEntityID(w, f.FiringEntityID)
	records.WriteEntityID(w, f.TargetEntityID)
	records.WriteEntityID(w, f.MunitionEntityID)
	records.WriteEntityID(w, f.EventID)
	varint.WriteUVINT32(w, varint.UVINT32(f.FireMissionIndex))

	unit := records.EncodeAltitudeUnit(f.Location.AltMeters)
	w.WriteUnsigned(1, uint32(unit))
	records.WriteWorldCoordinate(w, f.Location, unit)

	writeDescriptor(w, f.Descriptor, fireDescriptorBits)
	records.WriteLinearVelocity(w, f.Velocity)
	w.WriteUnsigned(32, math.Float32bits(f.Range))
}

// ReadFire is the inverse of WriteFire.
func ReadFire(r *bitio.Reader) (dis.Fire, error) {
	var f dis.Fire

	var err error
	f.FiringEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return f, err
	}
	f.TargetEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return f, err
	}
	f.MunitionEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return f, err
	}
	f.EventID, err = records.ReadEntityID(r)
	if err != nil {
		return f, err
	}
	missionIndex, err := varint.ReadUVINT32(r)
	if err != nil {
		return f, err
	}
	f.FireMissionIndex = uint32(missionIndex)

	unitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return f, err
	}
	f.Location, err = records.ReadWorldCoordinate(r, records.AltitudeUnit(unitBit))
	if err != nil {
		return f, err
	}

	f.Descriptor, err = readDescriptor(r, fireDescriptorBits)
	if err != nil {
		return f, err
	}
	f.Velocity, err = records.ReadLinearVelocity(r)
	if err != nil {
		return f, err
	}
	rangeBits, err := r.ReadUnsigned(32)
	if err != nil {
		return f, err
	}
	f.Range = math.Float32frombits(rangeBits)

	return f, nil
}

// WriteDetonation encodes d's compressed body (§8 test scenario e).
func WriteDetonation(w *bitio.Writer, d dis.Detonation) {
	records.WriteEntityID(w, d.FiringEntityID)
	records.WriteEntityID(w, d.TargetEntityID)
	records.WriteEntityID(w, d.MunitionEntityID)
	records.WriteEntityID(w, d.EventID)
	records.WriteLinearVelocity(w, d.Velocity)

	unit := records.EncodeAltitudeUnit(d.Location.AltMeters)
	w.WriteUnsigned(1, uint32(unit))
	records.WriteWorldCoordinate(w, d.Location, unit)

	writeDescriptor(w, d.Descriptor, detonationDescriptorBits)

	entityLocUnit := records.EncodeLinearUnit(d.EntityLocation)
	w.WriteUnsigned(1, uint32(entityLocUnit))
	records.WriteEntityCoordinateVector(w, d.EntityLocation, entityLocUnit)

	varint.WriteUVINT8(w, varint.UVINT8(d.Result))
}

// ReadDetonation is the inverse of WriteDetonation.
func ReadDetonation(r *bitio.Reader) (dis.Detonation, error) {
	var d dis.Detonation

	var err error
	d.FiringEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return d, err
	}
	d.TargetEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return d, err
	}
	d.MunitionEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return d, err
	}
	d.EventID, err = records.ReadEntityID(r)
	if err != nil {
		return d, err
	}
	d.Velocity, err = records.ReadLinearVelocity(r)
	if err != nil {
		return d, err
	}

	unitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return d, err
	}
	d.Location, err = records.ReadWorldCoordinate(r, records.AltitudeUnit(unitBit))
	if err != nil {
		return d, err
	}

	d.Descriptor, err = readDescriptor(r, detonationDescriptorBits)
	if err != nil {
		return d, err
	}

	entityLocUnitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return d, err
	}
	d.EntityLocation, err = records.ReadEntityCoordinateVector(r, records.LinearUnit(entityLocUnitBit))
	if err != nil {
		return d, err
	}

	result, err := varint.ReadUVINT8(r)
	if err != nil {
		return d, err
	}
	d.Result = dis.DetonationResult(result)

	return d, nil
}
