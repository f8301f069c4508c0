package dis

import "github.com/distsim/cdis-codec/records"

// Transmitter is the legacy Radio Transmitter PDU body (§4.4.5). Per §9
// Open Question 2, originator is radio reference id and this codec
// treats the receiver side as absent.
type Transmitter struct {
	RadioReferenceID     records.EntityID
	RadioNumber          uint16
	HasRadioType         bool
	RadioType            records.EntityType
	TransmitState        uint8
	InputSource          uint8
	HasAntennaLocation   bool
	AntennaLocation      records.WorldCoordinate
	HasRelativeAntenna   bool
	RelativeAntenna      records.Vector3
	HasAntennaPattern    bool
	AntennaPatternType   uint16
	AntennaPattern       []byte
	HasFrequencyInfo     bool
	Frequency            float64
	Bandwidth            float32
	Power                float32
	ModulationType       uint32
	HasCrypto            bool
	CryptoSystem         uint16
	CryptoKeyID          uint16
	ModulationParameters []byte
	VariableTransmitter  []byte
}

// originator satisfies the stateful-lookup shape every stateful PDU
// needs (§9 Open Question 2).
func (t Transmitter) Originator() records.EntityID { return t.RadioReferenceID }

func WriteTransmitter(buf []byte, t Transmitter) []byte {
	buf = records.WriteDisEntityID(buf, t.RadioReferenceID)
	buf = engine.AppendUint16(buf, t.RadioNumber)
	buf = append(buf, boolByte(t.HasRadioType))
	if t.HasRadioType {
		buf = records.WriteDisEntityType(buf, t.RadioType)
	}
	buf = append(buf, t.TransmitState, t.InputSource)
	buf = append(buf, boolByte(t.HasAntennaLocation))
	if t.HasAntennaLocation {
		buf = records.WriteDisDouble3(buf, t.AntennaLocation.LatRadians, t.AntennaLocation.LonRadians, t.AntennaLocation.AltMeters)
	}
	buf = append(buf, boolByte(t.HasRelativeAntenna))
	if t.HasRelativeAntenna {
		buf = records.WriteDisFloat3(buf, t.RelativeAntenna)
	}
	buf = append(buf, boolByte(t.HasAntennaPattern))
	if t.HasAntennaPattern {
		buf = engine.AppendUint16(buf, t.AntennaPatternType)
		buf = engine.AppendUint16(buf, uint16(len(t.AntennaPattern)))
		buf = append(buf, t.AntennaPattern...)
	}
	buf = append(buf, boolByte(t.HasFrequencyInfo))
	if t.HasFrequencyInfo {
		buf = engine.AppendUint64(buf, math64Bits(t.Frequency))
		buf = engine.AppendUint32(buf, math32Bits(t.Bandwidth))
		buf = engine.AppendUint32(buf, math32Bits(t.Power))
		buf = engine.AppendUint32(buf, t.ModulationType)
	}
	buf = append(buf, boolByte(t.HasCrypto))
	if t.HasCrypto {
		buf = engine.AppendUint16(buf, t.CryptoSystem)
		buf = engine.AppendUint16(buf, t.CryptoKeyID)
	}
	buf = engine.AppendUint16(buf, uint16(len(t.ModulationParameters)))
	buf = append(buf, t.ModulationParameters...)
	buf = engine.AppendUint16(buf, uint16(len(t.VariableTransmitter)))
	buf = append(buf, t.VariableTransmitter...)

	return buf
}

func ReadTransmitter(buf []byte, off int) (Transmitter, int) {
	var t Transmitter

	t.RadioReferenceID, off = records.ReadDisEntityID(buf, off)
	t.RadioNumber = engine.Uint16(buf[off:])
	off += 2
	t.HasRadioType = buf[off] != 0
	off++
	if t.HasRadioType {
		t.RadioType, off = records.ReadDisEntityType(buf, off)
	}
	t.TransmitState = buf[off]
	t.InputSource = buf[off+1]
	off += 2
	t.HasAntennaLocation = buf[off] != 0
	off++
	if t.HasAntennaLocation {
		lat, lon, alt, next := records.ReadDisDouble3(buf, off)
		t.AntennaLocation = records.WorldCoordinate{LatRadians: lat, LonRadians: lon, AltMeters: alt}
		off = next
	}
	t.HasRelativeAntenna = buf[off] != 0
	off++
	if t.HasRelativeAntenna {
		t.RelativeAntenna, off = records.ReadDisFloat3(buf, off)
	}
	t.HasAntennaPattern = buf[off] != 0
	off++
	if t.HasAntennaPattern {
		t.AntennaPatternType = engine.Uint16(buf[off:])
		length := int(engine.Uint16(buf[off+2:]))
		off += 4
		t.AntennaPattern = append([]byte(nil), buf[off:off+length]...)
		off += length
	}
	t.HasFrequencyInfo = buf[off] != 0
	off++
	if t.HasFrequencyInfo {
		t.Frequency = math64FromBits(engine.Uint64(buf[off:]))
		t.Bandwidth = math32FromBits(engine.Uint32(buf[off+8:]))
		t.Power = math32FromBits(engine.Uint32(buf[off+12:]))
		t.ModulationType = engine.Uint32(buf[off+16:])
		off += 20
	}
	t.HasCrypto = buf[off] != 0
	off++
	if t.HasCrypto {
		t.CryptoSystem = engine.Uint16(buf[off:])
		t.CryptoKeyID = engine.Uint16(buf[off+2:])
		off += 4
	}
	modLen := int(engine.Uint16(buf[off:]))
	off += 2
	t.ModulationParameters = append([]byte(nil), buf[off:off+modLen]...)
	off += modLen
	varLen := int(engine.Uint16(buf[off:]))
	off += 2
	t.VariableTransmitter = append([]byte(nil), buf[off:off+varLen]...)
	off += varLen

	return t, off
}
