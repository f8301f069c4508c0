package dis

import "github.com/distsim/cdis-codec/endian"

var engine = endian.GetBigEndianEngine()

// Header is the 12-byte legacy PDU header (§6 "Legacy DIS wire format"):
// protocol version, exercise id, PDU type, protocol family, timestamp,
// length, PDU status, padding.
type Header struct {
	ProtocolVersion uint8
	ExerciseID      uint8
	PduType         PduKind
	ProtocolFamily  ProtocolFamily
	Timestamp       uint32
	Length          uint16
	PduStatus       PduStatus
}

// HeaderSize is the fixed on-wire size of Header in bytes.
const HeaderSize = 12

// ProtocolVersion1278_1a is the 1278.1a-1998 baseline.
const ProtocolVersion1278_1a = 6

// ProtocolVersion1278_1_2012 is the IEEE 1278.1-2012 revision, the one
// that defines the PduStatus sub-fields this codec parses (§6: "if the
// version is 1278.1-2012 the PDU status byte encodes per-PDU-type bit
// fields").
const ProtocolVersion1278_1_2012 = 7

// PduStatus is the legacy header's PDU-status byte. Its sub-fields are
// only meaningful for certain PDU kinds and protocol versions; callers
// interpret the bits relevant to their own PDU type (§6).
type PduStatus uint8

// FireTypeIndicator reads bit 0: munition (0) vs. expendable (1)
// descriptor selector, used by Fire (§4.5 "Fire encodes a descriptor
// union... behind a 1-bit selector (the legacy PDU status's
// fire-type-indicator)").
func (s PduStatus) FireTypeIndicator() uint8 { return uint8(s) & 1 }

// TransferredEntityIndicator reads bit 1.
func (s PduStatus) TransferredEntityIndicator() uint8 { return (uint8(s) >> 1) & 1 }

// WriteHeader appends the 12-byte header to buf.
func WriteHeader(buf []byte, h Header) []byte {
	buf = append(buf, h.ProtocolVersion, h.ExerciseID, uint8(h.PduType), uint8(h.ProtocolFamily))
	buf = engine.AppendUint32(buf, h.Timestamp)
	buf = engine.AppendUint16(buf, h.Length)
	buf = append(buf, uint8(h.PduStatus), 0)

	return buf
}

// ReadHeader reads the 12-byte header from buf, which must be at least
// HeaderSize bytes long.
func ReadHeader(buf []byte) Header {
	return Header{
		ProtocolVersion: buf[0],
		ExerciseID:      buf[1],
		PduType:         PduKind(buf[2]),
		ProtocolFamily:  ProtocolFamily(buf[3]),
		Timestamp:       engine.Uint32(buf[4:]),
		Length:          engine.Uint16(buf[8:]),
		PduStatus:       PduStatus(buf[10]),
	}
}
