package records

import (
	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/varint"
)

// EntityType is the seven-field kind/domain/country/category/subcategory/
// specific/extra descriptor (§3 "Entity type"). The individual codes are
// opaque to this codec (§1 "the full enumeration tables... treated as
// opaque 8/16/32-bit identifiers").
type EntityType struct {
	Kind        uint8
	Domain      uint8
	Country     uint16
	Category    uint8
	Subcategory uint8
	Specific    uint8
	Extra       uint8
}

// WriteEntityType writes 4 bits kind, 4 bits domain, 9 bits country, then
// four UVINT8 fields (§4.3 "Entity type").
func WriteEntityType(w *bitio.Writer, t EntityType) {
	w.WriteUnsigned(4, uint32(t.Kind))
	w.WriteUnsigned(4, uint32(t.Domain))
	w.WriteUnsigned(9, uint32(t.Country))
	varint.WriteUVINT8(w, varint.UVINT8(t.Category))
	varint.WriteUVINT8(w, varint.UVINT8(t.Subcategory))
	varint.WriteUVINT8(w, varint.UVINT8(t.Specific))
	varint.WriteUVINT8(w, varint.UVINT8(t.Extra))
}

// ReadEntityType is the inverse of WriteEntityType.
func ReadEntityType(r *bitio.Reader) (EntityType, error) {
	var t EntityType

	kind, err := r.ReadUnsigned(4)
	if err != nil {
		return t, err
	}
	domain, err := r.ReadUnsigned(4)
	if err != nil {
		return t, err
	}
	country, err := r.ReadUnsigned(9)
	if err != nil {
		return t, err
	}
	category, err := varint.ReadUVINT8(r)
	if err != nil {
		return t, err
	}
	subcategory, err := varint.ReadUVINT8(r)
	if err != nil {
		return t, err
	}
	specific, err := varint.ReadUVINT8(r)
	if err != nil {
		return t, err
	}
	extra, err := varint.ReadUVINT8(r)
	if err != nil {
		return t, err
	}

	t.Kind = uint8(kind)
	t.Domain = uint8(domain)
	t.Country = uint16(country)
	t.Category = uint8(category)
	t.Subcategory = uint8(subcategory)
	t.Specific = uint8(specific)
	t.Extra = uint8(extra)

	return t, nil
}

// WriteDisEntityType writes t as the 8-byte legacy form: kind, domain,
// country (2B), category, subcategory, specific, extra.
func WriteDisEntityType(buf []byte, t EntityType) []byte {
	buf = append(buf, t.Kind, t.Domain)
	buf = engine.AppendUint16(buf, t.Country)
	buf = append(buf, t.Category, t.Subcategory, t.Specific, t.Extra)

	return buf
}

// ReadDisEntityType reads the 8-byte legacy form starting at off.
func ReadDisEntityType(buf []byte, off int) (EntityType, int) {
	t := EntityType{
		Kind:    buf[off],
		Domain:  buf[off+1],
		Country: engine.Uint16(buf[off+2:]),
	}
	t.Category = buf[off+4]
	t.Subcategory = buf[off+5]
	t.Specific = buf[off+6]
	t.Extra = buf[off+7]

	return t, off + 8
}
