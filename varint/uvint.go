package varint

import "github.com/distsim/cdis-codec/bitio"

var uvint8Classes = []unsignedClass{{0, 4}, {1, 8}}
var uvint16Classes = []unsignedClass{{0, 8}, {1, 11}, {2, 14}, {3, 16}}
var uvint32Classes = []unsignedClass{{0, 8}, {1, 15}, {2, 18}, {3, 32}}

// UVINT8 is a VarInt over u8 with classes {4, 8} selected by a 1-bit flag.
type UVINT8 uint8

// WriteUVINT8 writes v using the smallest class that fits it.
func WriteUVINT8(w *bitio.Writer, v UVINT8) {
	writeUnsigned(w, uvint8Classes, 1, uint32(v))
}

// ReadUVINT8 reads a UVINT8.
func ReadUVINT8(r *bitio.Reader) (UVINT8, error) {
	v, err := readUnsigned(r, uvint8Classes, 1)

	return UVINT8(v), err
}

// UVINT16 is a VarInt over u16 with classes {8, 11, 14, 16} selected by a
// 2-bit flag.
type UVINT16 uint16

// WriteUVINT16 writes v using the smallest class that fits it.
func WriteUVINT16(w *bitio.Writer, v UVINT16) {
	writeUnsigned(w, uvint16Classes, 2, uint32(v))
}

// ReadUVINT16 reads a UVINT16.
func ReadUVINT16(r *bitio.Reader) (UVINT16, error) {
	v, err := readUnsigned(r, uvint16Classes, 2)

	return UVINT16(v), err
}

// UVINT32 is a VarInt over u32 with classes {8, 15, 18, 32} selected by a
// 2-bit flag.
type UVINT32 uint32

// WriteUVINT32 writes v using the smallest class that fits it.
func WriteUVINT32(w *bitio.Writer, v UVINT32) {
	writeUnsigned(w, uvint32Classes, 2, uint32(v))
}

// ReadUVINT32 reads a UVINT32.
func ReadUVINT32(r *bitio.Reader) (UVINT32, error) {
	v, err := readUnsigned(r, uvint32Classes, 2)

	return UVINT32(v), err
}
