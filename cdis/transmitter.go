package cdis

import (
	"math"
	"time"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdisfloat"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/state"
	"github.com/distsim/cdis-codec/varint"
)

// WriteTransmitter encodes t's compressed body. Transmitter consults the
// heartbeat table to set the full-update flag (it is listed among the
// PDU kinds that "participate in partial updates"), but unlike Entity
// State/Designator/IFF, §3 defines no decoder-state record shape for it;
// every optional field here is carried exactly when the legacy PDU's own
// Has* flag says so, independent of the full-update flag. This is a
// design decision recorded in DESIGN.md, not a spec-pinned behavior.
func WriteTransmitter(w *bitio.Writer, t dis.Transmitter, enc *state.EncoderState, opts Options, now time.Time) bool {
	records.WriteEntityID(w, t.RadioReferenceID)
	varint.WriteUVINT16(w, varint.UVINT16(t.RadioNumber))

	decision := enc.Decide(dis.KindTransmitter, t.RadioReferenceID, now, opts.Heartbeats, opts.forceFullUpdate())
	w.WriteUnsigned(1, boolBit(decision.FullUpdate))

	w.WriteUnsigned(1, boolBit(t.HasRadioType))
	if t.HasRadioType {
		records.WriteEntityType(w, t.RadioType)
	}

	varint.WriteUVINT8(w, varint.UVINT8(t.TransmitState))
	varint.WriteUVINT8(w, varint.UVINT8(t.InputSource))

	w.WriteUnsigned(1, boolBit(t.HasAntennaLocation))
	if t.HasAntennaLocation {
		unit := records.EncodeAltitudeUnit(t.AntennaLocation.AltMeters)
		w.WriteUnsigned(1, uint32(unit))
		records.WriteWorldCoordinate(w, t.AntennaLocation, unit)
	}

	w.WriteUnsigned(1, boolBit(t.HasRelativeAntenna))
	if t.HasRelativeAntenna {
		unit := records.EncodeLinearUnit(t.RelativeAntenna)
		w.WriteUnsigned(1, uint32(unit))
		records.WriteEntityCoordinateVector(w, t.RelativeAntenna, unit)
	}

	w.WriteUnsigned(1, boolBit(t.HasAntennaPattern))
	if t.HasAntennaPattern {
		varint.WriteUVINT16(w, varint.UVINT16(t.AntennaPatternType))
		writeByteBlob(w, t.AntennaPattern)
	}

	w.WriteUnsigned(1, boolBit(t.HasFrequencyInfo))
	if t.HasFrequencyInfo {
		cdisfloat.Write(w, cdisfloat.FromFloat(cdisfloat.TransmitterFrequencySpec, t.Frequency))
		cdisfloat.Write(w, cdisfloat.FromFloat(cdisfloat.TransmitFrequencyBandwidthSpec, float64(t.Bandwidth)))
		w.WriteUnsigned(32, math.Float32bits(t.Power))
		varint.WriteUVINT32(w, varint.UVINT32(t.ModulationType))
	}

	w.WriteUnsigned(1, boolBit(t.HasCrypto))
	if t.HasCrypto {
		varint.WriteUVINT16(w, varint.UVINT16(t.CryptoSystem))
		varint.WriteUVINT16(w, varint.UVINT16(t.CryptoKeyID))
	}

	writeByteBlob(w, t.ModulationParameters)
	writeByteBlob(w, t.VariableTransmitter)

	return decision.FullUpdate
}

func writeByteBlob(w *bitio.Writer, data []byte) {
	varint.WriteUVINT16(w, varint.UVINT16(len(data)))
	for _, b := range data {
		w.WriteUnsigned(8, uint32(b))
	}
}

func readByteBlob(r *bitio.Reader) ([]byte, error) {
	n, err := varint.ReadUVINT16(r)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, n)
	for range n {
		b, err := r.ReadUnsigned(8)
		if err != nil {
			return nil, err
		}
		data = append(data, uint8(b))
	}

	return data, nil
}

// ReadTransmitter is the inverse of WriteTransmitter. The full-update bit
// is consumed and discarded; no decoder-side state is consulted (see the
// WriteTransmitter comment).
func ReadTransmitter(r *bitio.Reader) (dis.Transmitter, error) {
	var t dis.Transmitter

	var err error
	t.RadioReferenceID, err = records.ReadEntityID(r)
	if err != nil {
		return t, err
	}
	radioNumber, err := varint.ReadUVINT16(r)
	if err != nil {
		return t, err
	}
	t.RadioNumber = uint16(radioNumber)

	if _, err := r.ReadUnsigned(1); err != nil {
		return t, err
	}

	hasRadioType, err := r.ReadUnsigned(1)
	if err != nil {
		return t, err
	}
	t.HasRadioType = hasRadioType != 0
	if t.HasRadioType {
		t.RadioType, err = records.ReadEntityType(r)
		if err != nil {
			return t, err
		}
	}

	transmitState, err := varint.ReadUVINT8(r)
	if err != nil {
		return t, err
	}
	inputSource, err := varint.ReadUVINT8(r)
	if err != nil {
		return t, err
	}
	t.TransmitState = uint8(transmitState)
	t.InputSource = uint8(inputSource)

	hasAntennaLoc, err := r.ReadUnsigned(1)
	if err != nil {
		return t, err
	}
	t.HasAntennaLocation = hasAntennaLoc != 0
	if t.HasAntennaLocation {
		unitBit, err := r.ReadUnsigned(1)
		if err != nil {
			return t, err
		}
		t.AntennaLocation, err = records.ReadWorldCoordinate(r, records.AltitudeUnit(unitBit))
		if err != nil {
			return t, err
		}
	}

	hasRelAntenna, err := r.ReadUnsigned(1)
	if err != nil {
		return t, err
	}
	t.HasRelativeAntenna = hasRelAntenna != 0
	if t.HasRelativeAntenna {
		unitBit, err := r.ReadUnsigned(1)
		if err != nil {
			return t, err
		}
		t.RelativeAntenna, err = records.ReadEntityCoordinateVector(r, records.LinearUnit(unitBit))
		if err != nil {
			return t, err
		}
	}

	hasPattern, err := r.ReadUnsigned(1)
	if err != nil {
		return t, err
	}
	t.HasAntennaPattern = hasPattern != 0
	if t.HasAntennaPattern {
		patternType, err := varint.ReadUVINT16(r)
		if err != nil {
			return t, err
		}
		t.AntennaPatternType = uint16(patternType)
		t.AntennaPattern, err = readByteBlob(r)
		if err != nil {
			return t, err
		}
	}

	hasFreq, err := r.ReadUnsigned(1)
	if err != nil {
		return t, err
	}
	t.HasFrequencyInfo = hasFreq != 0
	if t.HasFrequencyInfo {
		freq, err := cdisfloat.Read(r, cdisfloat.TransmitterFrequencySpec)
		if err != nil {
			return t, err
		}
		bw, err := cdisfloat.Read(r, cdisfloat.TransmitFrequencyBandwidthSpec)
		if err != nil {
			return t, err
		}
		power, err := r.ReadUnsigned(32)
		if err != nil {
			return t, err
		}
		modType, err := varint.ReadUVINT32(r)
		if err != nil {
			return t, err
		}
		t.Frequency = freq.ToFloat()
		t.Bandwidth = float32(bw.ToFloat())
		t.Power = math.Float32frombits(power)
		t.ModulationType = uint32(modType)
	}

	hasCrypto, err := r.ReadUnsigned(1)
	if err != nil {
		return t, err
	}
	t.HasCrypto = hasCrypto != 0
	if t.HasCrypto {
		cryptoSystem, err := varint.ReadUVINT16(r)
		if err != nil {
			return t, err
		}
		cryptoKeyID, err := varint.ReadUVINT16(r)
		if err != nil {
			return t, err
		}
		t.CryptoSystem = uint16(cryptoSystem)
		t.CryptoKeyID = uint16(cryptoKeyID)
	}

	t.ModulationParameters, err = readByteBlob(r)
	if err != nil {
		return t, err
	}
	t.VariableTransmitter, err = readByteBlob(r)
	if err != nil {
		return t, err
	}

	return t, nil
}
