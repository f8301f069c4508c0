package dis

import "github.com/distsim/cdis-codec/records"

// Signal is the legacy Radio Signal PDU body. Its data payload's length
// is carried in bits on both wire forms; the decoder must respect that
// declared length rather than deriving it from outer framing (§4.5
// "Signal carries a variable-length data payload whose length is
// encoded in bits").
type Signal struct {
	RadioReferenceID records.EntityID
	RadioNumber      uint16
	EncodingScheme   uint16
	TDLType          uint16
	SampleRate       uint32
	DataLengthBits   uint16
	SamplesPerFrame  uint16
	Data             []byte
}

func WriteSignal(buf []byte, s Signal) []byte {
	buf = records.WriteDisEntityID(buf, s.RadioReferenceID)
	buf = engine.AppendUint16(buf, s.RadioNumber)
	buf = engine.AppendUint16(buf, s.EncodingScheme)
	buf = engine.AppendUint16(buf, s.TDLType)
	buf = engine.AppendUint32(buf, s.SampleRate)
	buf = engine.AppendUint16(buf, s.DataLengthBits)
	buf = engine.AppendUint16(buf, s.SamplesPerFrame)
	buf = append(buf, s.Data...)

	return buf
}

func ReadSignal(buf []byte, off int) (Signal, int) {
	var s Signal

	s.RadioReferenceID, off = records.ReadDisEntityID(buf, off)
	s.RadioNumber = engine.Uint16(buf[off:])
	s.EncodingScheme = engine.Uint16(buf[off+2:])
	s.TDLType = engine.Uint16(buf[off+4:])
	s.SampleRate = engine.Uint32(buf[off+6:])
	s.DataLengthBits = engine.Uint16(buf[off+10:])
	s.SamplesPerFrame = engine.Uint16(buf[off+12:])
	off += 14

	byteLen := int((int(s.DataLengthBits) + 7) / 8)
	s.Data = append([]byte(nil), buf[off:off+byteLen]...)
	off += byteLen

	return s, off
}

// Receiver is the legacy Receiver PDU body (§4.5).
type Receiver struct {
	RadioReferenceID records.EntityID
	RadioNumber      uint16
	ReceiverState    uint16
	ReceivedPower    float32
	TransmitterID    records.EntityID
	TransmitterRadio uint16
}

func WriteReceiver(buf []byte, r Receiver) []byte {
	buf = records.WriteDisEntityID(buf, r.RadioReferenceID)
	buf = engine.AppendUint16(buf, r.RadioNumber)
	buf = engine.AppendUint16(buf, r.ReceiverState)
	buf = engine.AppendUint32(buf, math32Bits(r.ReceivedPower))
	buf = records.WriteDisEntityID(buf, r.TransmitterID)
	buf = engine.AppendUint16(buf, r.TransmitterRadio)

	return buf
}

func ReadReceiver(buf []byte, off int) (Receiver, int) {
	var r Receiver

	r.RadioReferenceID, off = records.ReadDisEntityID(buf, off)
	r.RadioNumber = engine.Uint16(buf[off:])
	r.ReceiverState = engine.Uint16(buf[off+2:])
	r.ReceivedPower = math32FromBits(engine.Uint32(buf[off+4:]))
	off += 8
	r.TransmitterID, off = records.ReadDisEntityID(buf, off)
	r.TransmitterRadio = engine.Uint16(buf[off:])
	off += 2

	return r, off
}
