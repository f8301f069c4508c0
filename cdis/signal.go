package cdis

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/varint"
)

// WriteSignal encodes s's compressed body. DataLengthBits is carried
// literally and the decoder must trust it over any derived byte count
// (§4.5 "the decoder must respect the stated bit length rather than
// deriving it from enclosing framing").
func WriteSignal(w *bitio.Writer, s dis.Signal) {
	records.WriteEntityID(w, s.RadioReferenceID)
	varint.WriteUVINT16(w, varint.UVINT16(s.RadioNumber))
	varint.WriteUVINT16(w, varint.UVINT16(s.EncodingScheme))
	varint.WriteUVINT16(w, varint.UVINT16(s.TDLType))
	varint.WriteUVINT32(w, varint.UVINT32(s.SampleRate))
	w.WriteUnsigned(16, uint32(s.DataLengthBits))
	varint.WriteUVINT16(w, varint.UVINT16(s.SamplesPerFrame))

	remaining := int(s.DataLengthBits)
	for _, b := range s.Data {
		width := 8
		if remaining < 8 {
			width = remaining
		}
		if width <= 0 {
			break
		}
		w.WriteUnsigned(width, uint32(b)>>(8-width))
		remaining -= width
	}
}

// ReadSignal is the inverse of WriteSignal.
func ReadSignal(r *bitio.Reader) (dis.Signal, error) {
	var s dis.Signal

	var err error
	s.RadioReferenceID, err = records.ReadEntityID(r)
	if err != nil {
		return s, err
	}
	radioNumber, err := varint.ReadUVINT16(r)
	if err != nil {
		return s, err
	}
	encodingScheme, err := varint.ReadUVINT16(r)
	if err != nil {
		return s, err
	}
	tdlType, err := varint.ReadUVINT16(r)
	if err != nil {
		return s, err
	}
	sampleRate, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	dataLenBits, err := r.ReadUnsigned(16)
	if err != nil {
		return s, err
	}
	samplesPerFrame, err := varint.ReadUVINT16(r)
	if err != nil {
		return s, err
	}

	s.RadioNumber = uint16(radioNumber)
	s.EncodingScheme = uint16(encodingScheme)
	s.TDLType = uint16(tdlType)
	s.SampleRate = uint32(sampleRate)
	s.DataLengthBits = uint16(dataLenBits)
	s.SamplesPerFrame = uint16(samplesPerFrame)

	remaining := int(s.DataLengthBits)
	s.Data = make([]byte, 0, (remaining+7)/8)
	for remaining > 0 {
		width := 8
		if remaining < 8 {
			width = remaining
		}
		v, err := r.ReadUnsigned(width)
		if err != nil {
			return s, err
		}
		s.Data = append(s.Data, uint8(v)<<(8-width))
		remaining -= width
	}

	return s, nil
}

// WriteReceiver encodes r's compressed body (§4.5).
func WriteReceiver(w *bitio.Writer, rcv dis.Receiver) {
	records.WriteEntityID(w, rcv.RadioReferenceID)
	varint.WriteUVINT16(w, varint.UVINT16(rcv.RadioNumber))
	varint.WriteUVINT16(w, varint.UVINT16(rcv.ReceiverState))
	w.WriteUnsigned(32, math.Float32bits(rcv.ReceivedPower))
	records.WriteEntityID(w, rcv.TransmitterID)
	varint.WriteUVINT16(w, varint.UVINT16(rcv.TransmitterRadio))
}

// ReadReceiver is the inverse of WriteReceiver.
func ReadReceiver(r *bitio.Reader) (dis.Receiver, error) {
	var rcv dis.Receiver

	var err error
	rcv.RadioReferenceID, err = records.ReadEntityID(r)
	if err != nil {
		return rcv, err
	}
	radioNumber, err := varint.ReadUVINT16(r)
	if err != nil {
		return rcv, err
	}
	receiverState, err := varint.ReadUVINT16(r)
	if err != nil {
		return rcv, err
	}
	power, err := r.ReadUnsigned(32)
	if err != nil {
		return rcv, err
	}
	rcv.TransmitterID, err = records.ReadEntityID(r)
	if err != nil {
		return rcv, err
	}
	transmitterRadio, err := varint.ReadUVINT16(r)
	if err != nil {
		return rcv, err
	}

	rcv.RadioNumber = uint16(radioNumber)
	rcv.ReceiverState = uint16(receiverState)
	rcv.ReceivedPower = math.Float32frombits(power)
	rcv.TransmitterRadio = uint16(transmitterRadio)

	return rcv, nil
}
