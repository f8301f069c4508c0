package dis

import "github.com/distsim/cdis-codec/records"

// Datum is a variable-resolution-data datum record: a 32-bit id followed
// by an opaque, length-prefixed value (§4.5 "Data/Set Data/Comment").
// The codec treats the value as opaque per §1 ("the full enumeration
// tables... treated as opaque").
type Datum struct {
	ID    uint32
	Value []byte
}

// AppendDatum appends a fixed (32-bit id, 32-bit bit-length, padded
// value) datum record to buf.
func AppendDatum(buf []byte, d Datum) []byte {
	buf = engine.AppendUint32(buf, d.ID)
	buf = engine.AppendUint32(buf, uint32(len(d.Value)*8))
	buf = append(buf, d.Value...)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}

	return buf
}

// ReadDatum reads one datum record starting at off, returning it and the
// offset immediately past its (possibly padded) value.
func ReadDatum(buf []byte, off int) (Datum, int) {
	id := engine.Uint32(buf[off:])
	bitLen := engine.Uint32(buf[off+4:])
	byteLen := int((bitLen + 7) / 8)
	value := append([]byte(nil), buf[off+8:off+8+byteLen]...)
	next := off + 8 + byteLen
	for next%4 != 0 {
		next++
	}

	return Datum{ID: id, Value: value}, next
}

// AttributeRecord is one entry of an Attribute PDU's record list (§4.5
// "Attribute carries an arbitrary list of attribute records; each has an
// opaque record-specific-fields byte sequence of stated length").
type AttributeRecord struct {
	RecordType uint32
	Fields     []byte
}

// ArticulationParameters is the variable parameter list shared by
// Entity State and Entity State Update (§4.3 "Variable parameter
// record").
type ArticulationParameters = []records.VariableParameter
