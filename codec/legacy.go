package codec

import (
	"fmt"

	"github.com/distsim/cdis-codec/dis"
)

// EncodeLegacy writes p in the legacy, byte-aligned wire format, with
// header.Length overwritten to match the encoded size. It mirrors
// Encode's dispatch shape on the legacy side of the relay, the other
// half of §9's single encode/decode driver.
func EncodeLegacy(p dis.PDU, header dis.Header) ([]byte, error) {
	header.PduType = p.Kind

	buf := dis.WriteHeader(make([]byte, 0, 64), header)

	body, err := encodeLegacyBody(buf, p)
	if err != nil {
		return nil, &DecodeError{PduType: uint8(p.Kind), Err: err}
	}

	length := uint16(len(body))
	body[8], body[9] = byte(length>>8), byte(length)

	return body, nil
}

func encodeLegacyBody(buf []byte, p dis.PDU) ([]byte, error) {
	switch p.Kind {
	case dis.KindEntityState:
		return dis.WriteEntityState(buf, p.EntityState), nil
	case dis.KindFire:
		return dis.WriteFire(buf, p.Fire), nil
	case dis.KindDetonation:
		return dis.WriteDetonation(buf, p.Detonation), nil
	case dis.KindCollision:
		return dis.WriteCollision(buf, p.Collision), nil
	case dis.KindCollisionElastic:
		return dis.WriteCollisionElastic(buf, p.CollisionElastic), nil
	case dis.KindCreateEntity, dis.KindRemoveEntity:
		return dis.WriteCreateEntity(buf, p.CreateEntity), nil
	case dis.KindStartResume:
		return dis.WriteStartResume(buf, p.StartResume), nil
	case dis.KindStopFreeze:
		return dis.WriteStopFreeze(buf, p.StopFreeze), nil
	case dis.KindAcknowledge:
		return dis.WriteAcknowledge(buf, p.Acknowledge), nil
	case dis.KindActionRequest:
		return dis.WriteActionRequest(buf, p.ActionRequest), nil
	case dis.KindActionResponse:
		return dis.WriteActionResponse(buf, p.ActionResponse), nil
	case dis.KindDataQuery:
		return dis.WriteDataQuery(buf, p.DataQuery), nil
	case dis.KindData:
		return dis.WriteData(buf, p.Data), nil
	case dis.KindSetData:
		return dis.WriteSetData(buf, p.SetData), nil
	case dis.KindEventReport:
		return dis.WriteEventReport(buf, p.EventReport), nil
	case dis.KindComment:
		return dis.WriteComment(buf, p.Comment), nil
	case dis.KindElectromagneticEmission:
		return dis.WriteElectromagneticEmission(buf, p.ElectromagneticEmission), nil
	case dis.KindDesignator:
		return dis.WriteDesignator(buf, p.Designator), nil
	case dis.KindTransmitter:
		return dis.WriteTransmitter(buf, p.Transmitter), nil
	case dis.KindSignal:
		return dis.WriteSignal(buf, p.Signal), nil
	case dis.KindReceiver:
		return dis.WriteReceiver(buf, p.Receiver), nil
	case dis.KindIFF:
		return dis.WriteIFF(buf, p.IFF), nil
	case dis.KindEntityStateUpdate:
		return dis.WriteEntityStateUpdate(buf, p.EntityStateUpdate), nil
	case dis.KindAttribute:
		return dis.WriteAttribute(buf, p.Attribute), nil
	default:
		if p.Kind.Supported() {
			return buf, ErrUnimplementedPduType
		}

		return buf, ErrUnsupportedPduType
	}
}

// DecodeLegacy parses a legacy PDU datagram. The per-kind readers in
// dis slice buf directly without their own bounds checks (legacy PDUs
// are fixed-width and byte-aligned, unlike the bit-cursor compressed
// readers that return bitio.ErrTruncated on their own); a short buffer
// is recovered here and reported as ErrTruncated rather than left to
// panic a caller that must keep serving other datagrams (§7 "No error
// is allowed to tear down the codec or the relay").
func DecodeLegacy(buf []byte) (p dis.PDU, err error) {
	if len(buf) < dis.HeaderSize {
		return dis.PDU{}, &DecodeError{Err: ErrTruncated}
	}

	defer func() {
		if rec := recover(); rec != nil {
			p = dis.PDU{}
			err = &DecodeError{PduType: uint8(p.Kind), Err: fmt.Errorf("%w: %v", ErrTruncated, rec)}
		}
	}()

	header := dis.ReadHeader(buf)
	p, decErr := decodeLegacyBody(buf, dis.HeaderSize, header.PduType)
	if decErr != nil {
		return dis.PDU{}, &DecodeError{PduType: uint8(header.PduType), Err: decErr}
	}

	return p, nil
}

func decodeLegacyBody(buf []byte, off int, kind dis.PduKind) (dis.PDU, error) {
	p := dis.PDU{Kind: kind}

	switch kind {
	case dis.KindEntityState:
		p.EntityState, _ = dis.ReadEntityState(buf, off)
	case dis.KindFire:
		p.Fire, _ = dis.ReadFire(buf, off)
	case dis.KindDetonation:
		p.Detonation, _ = dis.ReadDetonation(buf, off)
	case dis.KindCollision:
		p.Collision, _ = dis.ReadCollision(buf, off)
	case dis.KindCollisionElastic:
		p.CollisionElastic, _ = dis.ReadCollisionElastic(buf, off)
	case dis.KindCreateEntity, dis.KindRemoveEntity:
		p.CreateEntity, _ = dis.ReadCreateEntity(buf, off)
	case dis.KindStartResume:
		p.StartResume, _ = dis.ReadStartResume(buf, off)
	case dis.KindStopFreeze:
		p.StopFreeze, _ = dis.ReadStopFreeze(buf, off)
	case dis.KindAcknowledge:
		p.Acknowledge, _ = dis.ReadAcknowledge(buf, off)
	case dis.KindActionRequest:
		p.ActionRequest, _ = dis.ReadActionRequest(buf, off)
	case dis.KindActionResponse:
		p.ActionResponse, _ = dis.ReadActionResponse(buf, off)
	case dis.KindDataQuery:
		p.DataQuery, _ = dis.ReadDataQuery(buf, off)
	case dis.KindData:
		p.Data, _ = dis.ReadData(buf, off)
	case dis.KindSetData:
		p.SetData, _ = dis.ReadSetData(buf, off)
	case dis.KindEventReport:
		p.EventReport, _ = dis.ReadEventReport(buf, off)
	case dis.KindComment:
		p.Comment, _ = dis.ReadComment(buf, off)
	case dis.KindElectromagneticEmission:
		p.ElectromagneticEmission, _ = dis.ReadElectromagneticEmission(buf, off)
	case dis.KindDesignator:
		p.Designator, _ = dis.ReadDesignator(buf, off)
	case dis.KindTransmitter:
		p.Transmitter, _ = dis.ReadTransmitter(buf, off)
	case dis.KindSignal:
		p.Signal, _ = dis.ReadSignal(buf, off)
	case dis.KindReceiver:
		p.Receiver, _ = dis.ReadReceiver(buf, off)
	case dis.KindIFF:
		p.IFF, _ = dis.ReadIFF(buf, off)
	case dis.KindEntityStateUpdate:
		p.EntityStateUpdate, _ = dis.ReadEntityStateUpdate(buf, off)
	case dis.KindAttribute:
		p.Attribute, _ = dis.ReadAttribute(buf, off)
	default:
		if kind.Supported() {
			return p, ErrUnimplementedPduType
		}

		return p, ErrUnsupportedPduType
	}

	return p, nil
}
