package records

import (
	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/varint"
)

// EntityID is the (site, application, entity) triple used both as a PDU
// field and, hashed through internal/hash, as the originator key into the
// stateful delta engine's tables (§3 "Entity identifier").
type EntityID struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

// EventID shares EntityID's shape; fire/detonation correlation uses it
// the same way (§3 "Event identifier").
type EventID = EntityID

// WriteEntityID writes id as three UVINT16 fields.
func WriteEntityID(w *bitio.Writer, id EntityID) {
	varint.WriteUVINT16(w, varint.UVINT16(id.Site))
	varint.WriteUVINT16(w, varint.UVINT16(id.Application))
	varint.WriteUVINT16(w, varint.UVINT16(id.Entity))
}

// ReadEntityID reads three UVINT16 fields into an EntityID.
func ReadEntityID(r *bitio.Reader) (EntityID, error) {
	site, err := varint.ReadUVINT16(r)
	if err != nil {
		return EntityID{}, err
	}
	app, err := varint.ReadUVINT16(r)
	if err != nil {
		return EntityID{}, err
	}
	entity, err := varint.ReadUVINT16(r)
	if err != nil {
		return EntityID{}, err
	}

	return EntityID{Site: uint16(site), Application: uint16(app), Entity: uint16(entity)}, nil
}

// WriteDisEntityID writes id as three big-endian u16 fields, legacy form.
func WriteDisEntityID(buf []byte, id EntityID) []byte {
	buf = engine.AppendUint16(buf, id.Site)
	buf = engine.AppendUint16(buf, id.Application)
	buf = engine.AppendUint16(buf, id.Entity)

	return buf
}

// ReadDisEntityID reads three big-endian u16 fields from buf starting at
// offset off, returning the id and the offset immediately past it.
func ReadDisEntityID(buf []byte, off int) (EntityID, int) {
	return EntityID{
		Site:        engine.Uint16(buf[off:]),
		Application: engine.Uint16(buf[off+2:]),
		Entity:      engine.Uint16(buf[off+4:]),
	}, off + 6
}
