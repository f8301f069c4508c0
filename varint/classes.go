// Package varint implements the C-DIS self-describing variable-length
// integer family (§3/§4.2 "VarInt"): UVINT8, UVINT16, UVINT32, SVINT12,
// SVINT13, SVINT14, SVINT16, SVINT24.
//
// Every instance is a (selector, value) pair. The selector is a 1- or
// 2-bit prefix naming one of 2-4 width classes; the payload that follows
// is exactly as wide as the selected class. Encoders always pick the
// smallest class that fits the value (§8 invariant 3); decoders read the
// selector first and then know exactly how many payload bits to consume.
//
// Signed classes encode a sign bit followed by an (N-1)-bit magnitude:
// the value itself when non-negative, its offset from the class's minimum
// when negative. The resulting N bits equal the value's N-bit
// two's-complement form — see unsignedClass/signedClass below.
package varint

import "github.com/distsim/cdis-codec/bitio"

// unsignedClass describes one width class of an unsigned VarInt family.
// bits is the total payload width (no sign bit).
type unsignedClass struct {
	selector int
	bits     int
}

// signedClass describes one width class of a signed VarInt family. bits
// is the TOTAL width including the leading sign bit, matching the spec's
// class tables (e.g. SVINT12's {3, 6, 9, 12}).
type signedClass struct {
	selector int
	bits     int
}

func (c signedClass) magnitudeBits() int { return c.bits - 1 }
func (c signedClass) min() int32         { return -(int32(1) << uint(c.magnitudeBits())) }
func (c signedClass) max() int32         { return int32(1)<<uint(c.magnitudeBits()) - 1 }

func pickUnsigned(classes []unsignedClass, value uint32) unsignedClass {
	for _, c := range classes[:len(classes)-1] {
		if value <= uint32(1)<<uint(c.bits)-1 {
			return c
		}
	}

	return classes[len(classes)-1]
}

func pickSigned(classes []signedClass, value int32) signedClass {
	for _, c := range classes[:len(classes)-1] {
		if value >= c.min() && value <= c.max() {
			return c
		}
	}

	return classes[len(classes)-1]
}

// writeUnsigned writes the selector (selectorBits wide) then the payload.
func writeUnsigned(w *bitio.Writer, classes []unsignedClass, selectorBits int, value uint32) {
	c := pickUnsigned(classes, value)
	w.WriteUnsigned(selectorBits, uint32(c.selector))
	w.WriteUnsigned(c.bits, value)
}

// readUnsigned reads the selector then the class-appropriate payload.
func readUnsigned(r *bitio.Reader, classes []unsignedClass, selectorBits int) (uint32, error) {
	sel, err := r.ReadUnsigned(selectorBits)
	if err != nil {
		return 0, err
	}
	c := classes[sel]

	return r.ReadUnsigned(c.bits)
}

// writeSigned writes the selector, a sign bit, then the (bits-1)-bit
// magnitude offset from the class minimum.
func writeSigned(w *bitio.Writer, classes []signedClass, selectorBits int, value int32) {
	c := pickSigned(classes, value)
	w.WriteUnsigned(selectorBits, uint32(c.selector))

	if value < 0 {
		w.WriteUnsigned(1, 1)
		w.WriteUnsigned(c.magnitudeBits(), uint32(value-c.min()))
	} else {
		w.WriteUnsigned(1, 0)
		w.WriteUnsigned(c.magnitudeBits(), uint32(value))
	}
}

// readSigned reads the selector, sign bit, and magnitude, reconstructing
// `sign ? class_min + magnitude : magnitude` per §4.2.
func readSigned(r *bitio.Reader, classes []signedClass, selectorBits int) (int32, error) {
	sel, err := r.ReadUnsigned(selectorBits)
	if err != nil {
		return 0, err
	}
	c := classes[sel]

	signBit, err := r.ReadUnsigned(1)
	if err != nil {
		return 0, err
	}
	magnitude, err := r.ReadUnsigned(c.magnitudeBits())
	if err != nil {
		return 0, err
	}

	if signBit != 0 {
		return c.min() + int32(magnitude), nil
	}

	return int32(magnitude), nil
}
