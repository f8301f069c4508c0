package codec

import (
	"fmt"
	"time"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdis"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/state"
)

// estimatedBodyBytes sizes the writer's initial backing array; it is a
// guess, not a limit — bitio.Writer grows as needed.
const estimatedBodyBytes = 64

// Encode writes p's compressed form, consulting enc for the per-kind
// full/partial decision on stateful PDUs. header's LengthBytes is
// ignored and overwritten with the encoded size; the caller supplies
// everything else (exercise id, timestamp, PDU status).
//
// The length field is back-patched (§9 "Back-patching"): it is written
// as a placeholder before the body and corrected once the final bit
// position is known, the same cursor-reuse trick the compressed layer
// headers elsewhere in this codec use for the same purpose.
func Encode(p dis.PDU, header cdis.Header, enc *state.EncoderState, opts Options, now time.Time) ([]byte, error) {
	w := bitio.NewWriter(estimatedBodyBytes)

	header.PduType = p.Kind
	w.WriteUnsigned(2, uint32(header.ProtocolVersion))
	writeHeaderExerciseID(w, header.ExerciseID)
	w.WriteUnsigned(8, uint32(header.PduType))
	w.WriteUnsigned(26, header.Timestamp)

	lengthBit := w.BitPos()
	w.WriteUnsigned(14, 0)
	w.WriteUnsigned(8, uint32(header.PduStatus))

	full, err := encodeBody(w, p, enc, opts, now)
	if err != nil {
		return nil, &DecodeError{PduType: uint8(p.Kind), Err: err}
	}

	lengthBytes := (w.BitPos() + 7) / 8
	w.PatchUnsigned(lengthBit, 14, uint32(lengthBytes))

	recordUpdateDecision(opts.Telemetry, p.Kind, full)

	return w.Bytes(), nil
}

// encodeBody dispatches on p.Kind to the matching cdis.WriteXxx. Stateful
// kinds return their full/partial decision; stateless kinds report true,
// since there is no partial form to distinguish.
func encodeBody(w *bitio.Writer, p dis.PDU, enc *state.EncoderState, opts Options, now time.Time) (bool, error) {
	switch p.Kind {
	case dis.KindEntityState:
		return cdis.WriteEntityState(w, p.EntityState, enc, opts.Cdis, now), nil
	case dis.KindDesignator:
		return cdis.WriteDesignator(w, p.Designator, enc, opts.Cdis, now), nil
	case dis.KindIFF:
		return cdis.WriteIFF(w, p.IFF, enc, opts.Cdis, now), nil
	case dis.KindTransmitter:
		return cdis.WriteTransmitter(w, p.Transmitter, enc, opts.Cdis, now), nil
	case dis.KindFire:
		cdis.WriteFire(w, p.Fire)
	case dis.KindDetonation:
		cdis.WriteDetonation(w, p.Detonation)
	case dis.KindCollision:
		cdis.WriteCollision(w, p.Collision)
	case dis.KindCollisionElastic:
		cdis.WriteCollisionElastic(w, p.CollisionElastic)
	case dis.KindElectromagneticEmission:
		cdis.WriteElectromagneticEmission(w, p.ElectromagneticEmission)
	case dis.KindSignal:
		cdis.WriteSignal(w, p.Signal)
	case dis.KindReceiver:
		cdis.WriteReceiver(w, p.Receiver)
	case dis.KindCreateEntity, dis.KindRemoveEntity:
		cdis.WriteCreateEntity(w, p.CreateEntity)
	case dis.KindStartResume:
		cdis.WriteStartResume(w, p.StartResume)
	case dis.KindStopFreeze:
		cdis.WriteStopFreeze(w, p.StopFreeze)
	case dis.KindAcknowledge:
		cdis.WriteAcknowledge(w, p.Acknowledge)
	case dis.KindActionRequest:
		cdis.WriteActionRequest(w, p.ActionRequest)
	case dis.KindActionResponse:
		cdis.WriteActionResponse(w, p.ActionResponse)
	case dis.KindDataQuery:
		cdis.WriteDataQuery(w, p.DataQuery)
	case dis.KindData:
		cdis.WriteData(w, p.Data)
	case dis.KindSetData:
		cdis.WriteSetData(w, p.SetData)
	case dis.KindEventReport:
		cdis.WriteEventReport(w, p.EventReport)
	case dis.KindComment:
		cdis.WriteComment(w, p.Comment)
	case dis.KindAttribute:
		cdis.WriteAttribute(w, p.Attribute)
	case dis.KindEntityStateUpdate:
		cdis.WriteEntityStateUpdate(w, p.EntityStateUpdate)
	default:
		if p.Kind.Supported() {
			return true, ErrUnimplementedPduType
		}

		return true, ErrUnsupportedPduType
	}

	return true, nil
}

// Decode reads buf's C-DIS header and dispatches to the matching
// cdis.ReadXxx, merging any omitted stateful fields against dec (§9
// "Legacy/compressed coexistence": the merge already lives inside the
// per-kind readers, so Decode only needs to call through).
//
// A header declaring more bytes than buf actually holds fails fast with
// ErrTruncated (§8 scenario f) rather than surfacing a confusing error
// from partway through the body.
func Decode(buf []byte, dec *state.DecoderState, now time.Time, opts Options) (dis.PDU, cdis.Header, error) {
	r := bitio.NewReader(buf)

	header, err := cdis.ReadHeader(r)
	if err != nil {
		return dis.PDU{}, cdis.Header{}, err
	}
	if int(header.LengthBytes) > len(buf) {
		recordError(opts.Telemetry, header.PduType, "truncated")

		return dis.PDU{}, header, &DecodeError{PduType: uint8(header.PduType), Err: ErrTruncated}
	}

	p, stateMiss, err := decodeBody(r, header.PduType, dec, now)
	if err != nil {
		recordError(opts.Telemetry, header.PduType, errKind(err))

		return dis.PDU{}, header, &DecodeError{PduType: uint8(header.PduType), Err: err}
	}
	if stateMiss && opts.Telemetry != nil {
		opts.Telemetry.RecordStateMiss(header.PduType)
	}

	return p, header, nil
}

// decodeBody dispatches on kind, returning the decoded PDU and whether
// the decode hit a §7 StateMiss (only EntityState, Designator, and IFF
// can report one; every other kind always returns false).
func decodeBody(r *bitio.Reader, kind dis.PduKind, dec *state.DecoderState, now time.Time) (dis.PDU, bool, error) {
	p := dis.PDU{Kind: kind}
	var err error
	var stateMiss bool

	switch kind {
	case dis.KindEntityState:
		p.EntityState, stateMiss, err = cdis.ReadEntityState(r, dec, now)
	case dis.KindDesignator:
		p.Designator, stateMiss, err = cdis.ReadDesignator(r, dec, now)
	case dis.KindIFF:
		p.IFF, stateMiss, err = cdis.ReadIFF(r, dec, now)
	case dis.KindTransmitter:
		p.Transmitter, err = cdis.ReadTransmitter(r)
	case dis.KindFire:
		p.Fire, err = cdis.ReadFire(r)
	case dis.KindDetonation:
		p.Detonation, err = cdis.ReadDetonation(r)
	case dis.KindCollision:
		p.Collision, err = cdis.ReadCollision(r)
	case dis.KindCollisionElastic:
		p.CollisionElastic, err = cdis.ReadCollisionElastic(r)
	case dis.KindElectromagneticEmission:
		p.ElectromagneticEmission, err = cdis.ReadElectromagneticEmission(r)
	case dis.KindSignal:
		p.Signal, err = cdis.ReadSignal(r)
	case dis.KindReceiver:
		p.Receiver, err = cdis.ReadReceiver(r)
	case dis.KindCreateEntity, dis.KindRemoveEntity:
		p.CreateEntity, err = cdis.ReadCreateEntity(r)
	case dis.KindStartResume:
		p.StartResume, err = cdis.ReadStartResume(r)
	case dis.KindStopFreeze:
		p.StopFreeze, err = cdis.ReadStopFreeze(r)
	case dis.KindAcknowledge:
		p.Acknowledge, err = cdis.ReadAcknowledge(r)
	case dis.KindActionRequest:
		p.ActionRequest, err = cdis.ReadActionRequest(r)
	case dis.KindActionResponse:
		p.ActionResponse, err = cdis.ReadActionResponse(r)
	case dis.KindDataQuery:
		p.DataQuery, err = cdis.ReadDataQuery(r)
	case dis.KindData:
		p.Data, err = cdis.ReadData(r)
	case dis.KindSetData:
		p.SetData, err = cdis.ReadSetData(r)
	case dis.KindEventReport:
		p.EventReport, err = cdis.ReadEventReport(r)
	case dis.KindComment:
		p.Comment, err = cdis.ReadComment(r)
	case dis.KindAttribute:
		p.Attribute, err = cdis.ReadAttribute(r)
	case dis.KindEntityStateUpdate:
		p.EntityStateUpdate, err = cdis.ReadEntityStateUpdate(r)
	default:
		if kind.Supported() {
			return p, false, ErrUnimplementedPduType
		}

		return p, false, ErrUnsupportedPduType
	}

	return p, stateMiss, err
}

func writeHeaderExerciseID(w *bitio.Writer, v uint8) {
	if v <= 0xF {
		w.WriteUnsigned(1, 0)
		w.WriteUnsigned(4, uint32(v))

		return
	}
	w.WriteUnsigned(1, 1)
	w.WriteUnsigned(8, uint32(v))
}

func recordUpdateDecision(t Telemetry, kind dis.PduKind, full bool) {
	if t == nil {
		return
	}
	if full {
		t.RecordFullUpdate(kind)

		return
	}
	t.RecordPartialUpdate(kind)
}

func recordError(t Telemetry, kind dis.PduKind, errKind string) {
	if t == nil {
		return
	}
	t.RecordError(kind, errKind)
}

func errKind(err error) string {
	switch {
	case err == ErrTruncated:
		return "truncated"
	case err == ErrUnsupportedPduType:
		return "unsupported_pdu_type"
	case err == ErrUnimplementedPduType:
		return "unimplemented_pdu_type"
	case err == ErrInvalidEncoding:
		return "invalid_encoding"
	default:
		return fmt.Sprintf("%T", err)
	}
}
