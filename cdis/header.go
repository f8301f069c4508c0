// Package cdis implements the compressed, bit-packed C-DIS wire format
// (§6 "C-DIS wire format") and the per-PDU-kind encode/decode pairs of
// §4.4/§4.5, including the stateful partial-update machinery for Entity
// State, Designator, and IFF.
package cdis

import (
	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
)

// ProtocolVersion is the 2-bit C-DIS header version field.
type ProtocolVersion uint8

const CurrentProtocolVersion ProtocolVersion = 1

// Header is the C-DIS PDU header (§6): 2-bit protocol version, UVINT4
// exercise id, 8-bit PDU type, 26-bit timestamp, 14-bit length in bytes,
// 8-bit PDU status.
type Header struct {
	ProtocolVersion ProtocolVersion
	ExerciseID      uint8
	PduType         dis.PduKind
	Timestamp       uint32
	LengthBytes     uint16
	PduStatus       uint8
}

// uvint4Classes mirrors UVINT8's shape but is scoped to a 4-bit payload
// family used only by the header's exercise id (§6: "4-bit UVINT
// exercise id (with 1-bit size selector)").
var uvint4Classes = []struct {
	selector int
	bits     int
}{{0, 4}, {1, 8}}

func writeExerciseID(w *bitio.Writer, v uint8) {
	if v <= 0xF {
		w.WriteUnsigned(1, 0)
		w.WriteUnsigned(4, uint32(v))

		return
	}
	w.WriteUnsigned(1, 1)
	w.WriteUnsigned(8, uint32(v))
}

func readExerciseID(r *bitio.Reader) (uint8, error) {
	sel, err := r.ReadUnsigned(1)
	if err != nil {
		return 0, err
	}
	bits := uvint4Classes[sel].bits
	v, err := r.ReadUnsigned(bits)

	return uint8(v), err
}

// WriteHeader writes h to w.
func WriteHeader(w *bitio.Writer, h Header) {
	w.WriteUnsigned(2, uint32(h.ProtocolVersion))
	writeExerciseID(w, h.ExerciseID)
	w.WriteUnsigned(8, uint32(h.PduType))
	w.WriteUnsigned(26, h.Timestamp)
	w.WriteUnsigned(14, uint32(h.LengthBytes))
	w.WriteUnsigned(8, uint32(h.PduStatus))
}

// ReadHeader reads a C-DIS header.
func ReadHeader(r *bitio.Reader) (Header, error) {
	var h Header

	version, err := r.ReadUnsigned(2)
	if err != nil {
		return h, err
	}
	exerciseID, err := readExerciseID(r)
	if err != nil {
		return h, err
	}
	pduType, err := r.ReadUnsigned(8)
	if err != nil {
		return h, err
	}
	timestamp, err := r.ReadUnsigned(26)
	if err != nil {
		return h, err
	}
	length, err := r.ReadUnsigned(14)
	if err != nil {
		return h, err
	}
	status, err := r.ReadUnsigned(8)
	if err != nil {
		return h, err
	}

	h.ProtocolVersion = ProtocolVersion(version)
	h.ExerciseID = exerciseID
	h.PduType = dis.PduKind(pduType)
	h.Timestamp = timestamp
	h.LengthBytes = uint16(length)
	h.PduStatus = uint8(status)

	return h, nil
}
