package varint

import "github.com/distsim/cdis-codec/bitio"

var svint12Classes = []signedClass{{0, 3}, {1, 6}, {2, 9}, {3, 12}}
var svint13Classes = []signedClass{{0, 5}, {1, 7}, {2, 10}, {3, 13}}
var svint14Classes = []signedClass{{0, 4}, {1, 7}, {2, 9}, {3, 14}}
var svint16Classes = []signedClass{{0, 8}, {1, 12}, {2, 13}, {3, 16}}
var svint24Classes = []signedClass{{0, 16}, {1, 19}, {2, 21}, {3, 24}}

// SVINT12 is a signed VarInt with classes {3, 6, 9, 12}.
type SVINT12 int16

// WriteSVINT12 writes v using the smallest class that fits it.
func WriteSVINT12(w *bitio.Writer, v SVINT12) {
	writeSigned(w, svint12Classes, 2, int32(v))
}

// ReadSVINT12 reads an SVINT12.
func ReadSVINT12(r *bitio.Reader) (SVINT12, error) {
	v, err := readSigned(r, svint12Classes, 2)

	return SVINT12(v), err
}

// SVINT13 is a signed VarInt with classes {5, 7, 10, 13} (orientation
// Euler angles).
type SVINT13 int16

// WriteSVINT13 writes v using the smallest class that fits it.
func WriteSVINT13(w *bitio.Writer, v SVINT13) {
	writeSigned(w, svint13Classes, 2, int32(v))
}

// ReadSVINT13 reads an SVINT13.
func ReadSVINT13(r *bitio.Reader) (SVINT13, error) {
	v, err := readSigned(r, svint13Classes, 2)

	return SVINT13(v), err
}

// SVINT14 is a signed VarInt with classes {4, 7, 9, 14}.
type SVINT14 int16

// WriteSVINT14 writes v using the smallest class that fits it.
func WriteSVINT14(w *bitio.Writer, v SVINT14) {
	writeSigned(w, svint14Classes, 2, int32(v))
}

// ReadSVINT14 reads an SVINT14.
func ReadSVINT14(r *bitio.Reader) (SVINT14, error) {
	v, err := readSigned(r, svint14Classes, 2)

	return SVINT14(v), err
}

// SVINT16 is a signed VarInt with classes {8, 12, 13, 16} (entity-local
// coordinate and linear velocity/acceleration components).
type SVINT16 int16

// WriteSVINT16 writes v using the smallest class that fits it.
func WriteSVINT16(w *bitio.Writer, v SVINT16) {
	writeSigned(w, svint16Classes, 2, int32(v))
}

// ReadSVINT16 reads an SVINT16.
func ReadSVINT16(r *bitio.Reader) (SVINT16, error) {
	v, err := readSigned(r, svint16Classes, 2)

	return SVINT16(v), err
}

// SVINT24 is a signed VarInt with classes {16, 19, 21, 24} (world
// coordinate altitude).
type SVINT24 int32

// WriteSVINT24 writes v using the smallest class that fits it.
func WriteSVINT24(w *bitio.Writer, v SVINT24) {
	writeSigned(w, svint24Classes, 2, int32(v))
}

// ReadSVINT24 reads an SVINT24.
func ReadSVINT24(r *bitio.Reader) (SVINT24, error) {
	v, err := readSigned(r, svint24Classes, 2)

	return SVINT24(v), err
}
