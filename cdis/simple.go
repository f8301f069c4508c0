package cdis

import (
	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/varint"
)

func writeFixedDatums(w *bitio.Writer, ids []uint32) {
	varint.WriteUVINT8(w, varint.UVINT8(len(ids)))
	for _, id := range ids {
		varint.WriteUVINT32(w, varint.UVINT32(id))
	}
}

func readFixedDatums(r *bitio.Reader) ([]uint32, error) {
	n, err := varint.ReadUVINT8(r)
	if err != nil {
		return nil, err
	}
	ids := make([]uint32, 0, n)
	for range n {
		id, err := varint.ReadUVINT32(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint32(id))
	}

	return ids, nil
}

func writeDatum(w *bitio.Writer, d dis.Datum) {
	varint.WriteUVINT32(w, varint.UVINT32(d.ID))
	writeByteBlob(w, d.Value)
}

func readDatum(r *bitio.Reader) (dis.Datum, error) {
	id, err := varint.ReadUVINT32(r)
	if err != nil {
		return dis.Datum{}, err
	}
	value, err := readByteBlob(r)

	return dis.Datum{ID: uint32(id), Value: value}, err
}

func writeVariableDatums(w *bitio.Writer, datums []dis.Datum) {
	varint.WriteUVINT8(w, varint.UVINT8(len(datums)))
	for _, d := range datums {
		writeDatum(w, d)
	}
}

func readVariableDatums(r *bitio.Reader) ([]dis.Datum, error) {
	n, err := varint.ReadUVINT8(r)
	if err != nil {
		return nil, err
	}
	datums := make([]dis.Datum, 0, n)
	for range n {
		d, err := readDatum(r)
		if err != nil {
			return nil, err
		}
		datums = append(datums, d)
	}

	return datums, nil
}

// WriteCreateEntity encodes c's compressed body.
func WriteCreateEntity(w *bitio.Writer, c dis.CreateEntity) {
	records.WriteEntityID(w, c.OriginatingEntityID)
	records.WriteEntityID(w, c.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(c.RequestID))
}

// ReadCreateEntity is the inverse of WriteCreateEntity. The same pair
// serves Remove Entity (dis.RemoveEntity is a type alias of CreateEntity).
func ReadCreateEntity(r *bitio.Reader) (dis.CreateEntity, error) {
	var c dis.CreateEntity

	var err error
	c.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	requestID, err := varint.ReadUVINT32(r)
	c.RequestID = uint32(requestID)

	return c, err
}

// WriteStartResume encodes s's compressed body.
func WriteStartResume(w *bitio.Writer, s dis.StartResume) {
	records.WriteEntityID(w, s.OriginatingEntityID)
	records.WriteEntityID(w, s.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(s.RealWorldTimeSec))
	varint.WriteUVINT32(w, varint.UVINT32(s.RealWorldTimeUsec))
	varint.WriteUVINT32(w, varint.UVINT32(s.SimulationTimeSec))
	varint.WriteUVINT32(w, varint.UVINT32(s.SimulationTimeUsec))
	varint.WriteUVINT32(w, varint.UVINT32(s.RequestID))
}

// ReadStartResume is the inverse of WriteStartResume.
func ReadStartResume(r *bitio.Reader) (dis.StartResume, error) {
	var s dis.StartResume

	var err error
	s.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return s, err
	}
	s.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return s, err
	}
	realSec, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	realUsec, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	simSec, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	simUsec, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}

	s.RealWorldTimeSec = uint32(realSec)
	s.RealWorldTimeUsec = uint32(realUsec)
	s.SimulationTimeSec = uint32(simSec)
	s.SimulationTimeUsec = uint32(simUsec)
	s.RequestID = uint32(requestID)

	return s, nil
}

// WriteStopFreeze encodes s's compressed body.
func WriteStopFreeze(w *bitio.Writer, s dis.StopFreeze) {
	records.WriteEntityID(w, s.OriginatingEntityID)
	records.WriteEntityID(w, s.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(s.RealWorldTimeSec))
	varint.WriteUVINT32(w, varint.UVINT32(s.RealWorldTimeUsec))
	varint.WriteUVINT8(w, varint.UVINT8(s.Reason))
	varint.WriteUVINT8(w, varint.UVINT8(s.FrozenBehavior))
	varint.WriteUVINT32(w, varint.UVINT32(s.RequestID))
}

// ReadStopFreeze is the inverse of WriteStopFreeze.
func ReadStopFreeze(r *bitio.Reader) (dis.StopFreeze, error) {
	var s dis.StopFreeze

	var err error
	s.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return s, err
	}
	s.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return s, err
	}
	realSec, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	realUsec, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}
	reason, err := varint.ReadUVINT8(r)
	if err != nil {
		return s, err
	}
	behavior, err := varint.ReadUVINT8(r)
	if err != nil {
		return s, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return s, err
	}

	s.RealWorldTimeSec = uint32(realSec)
	s.RealWorldTimeUsec = uint32(realUsec)
	s.Reason = uint8(reason)
	s.FrozenBehavior = uint8(behavior)
	s.RequestID = uint32(requestID)

	return s, nil
}

// WriteAcknowledge encodes a's compressed body.
func WriteAcknowledge(w *bitio.Writer, a dis.Acknowledge) {
	records.WriteEntityID(w, a.OriginatingEntityID)
	records.WriteEntityID(w, a.ReceivingEntityID)
	varint.WriteUVINT16(w, varint.UVINT16(a.AcknowledgeFlag))
	varint.WriteUVINT16(w, varint.UVINT16(a.ResponseFlag))
	varint.WriteUVINT32(w, varint.UVINT32(a.RequestID))
}

// ReadAcknowledge is the inverse of WriteAcknowledge.
func ReadAcknowledge(r *bitio.Reader) (dis.Acknowledge, error) {
	var a dis.Acknowledge

	var err error
	a.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	a.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	ackFlag, err := varint.ReadUVINT16(r)
	if err != nil {
		return a, err
	}
	respFlag, err := varint.ReadUVINT16(r)
	if err != nil {
		return a, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return a, err
	}

	a.AcknowledgeFlag = uint16(ackFlag)
	a.ResponseFlag = uint16(respFlag)
	a.RequestID = uint32(requestID)

	return a, nil
}

// WriteActionRequest encodes a's compressed body.
func WriteActionRequest(w *bitio.Writer, a dis.ActionRequest) {
	records.WriteEntityID(w, a.OriginatingEntityID)
	records.WriteEntityID(w, a.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(a.RequestID))
	varint.WriteUVINT32(w, varint.UVINT32(a.ActionID))
	writeFixedDatums(w, a.FixedDatums)
	writeVariableDatums(w, a.VariableDatums)
}

// ReadActionRequest is the inverse of WriteActionRequest.
func ReadActionRequest(r *bitio.Reader) (dis.ActionRequest, error) {
	var a dis.ActionRequest

	var err error
	a.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	a.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return a, err
	}
	actionID, err := varint.ReadUVINT32(r)
	if err != nil {
		return a, err
	}
	a.RequestID = uint32(requestID)
	a.ActionID = uint32(actionID)

	a.FixedDatums, err = readFixedDatums(r)
	if err != nil {
		return a, err
	}
	a.VariableDatums, err = readVariableDatums(r)

	return a, err
}

// WriteActionResponse encodes a's compressed body.
func WriteActionResponse(w *bitio.Writer, a dis.ActionResponse) {
	records.WriteEntityID(w, a.OriginatingEntityID)
	records.WriteEntityID(w, a.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(a.RequestID))
	varint.WriteUVINT32(w, varint.UVINT32(a.RequestStatus))
	writeFixedDatums(w, a.FixedDatums)
	writeVariableDatums(w, a.VariableDatums)
}

// ReadActionResponse is the inverse of WriteActionResponse.
func ReadActionResponse(r *bitio.Reader) (dis.ActionResponse, error) {
	var a dis.ActionResponse

	var err error
	a.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	a.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return a, err
	}
	requestStatus, err := varint.ReadUVINT32(r)
	if err != nil {
		return a, err
	}
	a.RequestID = uint32(requestID)
	a.RequestStatus = uint32(requestStatus)

	a.FixedDatums, err = readFixedDatums(r)
	if err != nil {
		return a, err
	}
	a.VariableDatums, err = readVariableDatums(r)

	return a, err
}

// WriteDataQuery encodes q's compressed body.
func WriteDataQuery(w *bitio.Writer, q dis.DataQuery) {
	records.WriteEntityID(w, q.OriginatingEntityID)
	records.WriteEntityID(w, q.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(q.RequestID))
	varint.WriteUVINT32(w, varint.UVINT32(q.TimeInterval))
	writeFixedDatums(w, q.FixedDatumIDs)
	writeFixedDatums(w, q.VariableDatumIDs)
}

// ReadDataQuery is the inverse of WriteDataQuery.
func ReadDataQuery(r *bitio.Reader) (dis.DataQuery, error) {
	var q dis.DataQuery

	var err error
	q.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return q, err
	}
	q.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return q, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return q, err
	}
	timeInterval, err := varint.ReadUVINT32(r)
	if err != nil {
		return q, err
	}
	q.RequestID = uint32(requestID)
	q.TimeInterval = uint32(timeInterval)

	q.FixedDatumIDs, err = readFixedDatums(r)
	if err != nil {
		return q, err
	}
	q.VariableDatumIDs, err = readFixedDatums(r)

	return q, err
}

// WriteData encodes d's compressed body. WriteSetData shares this pair
// (dis.SetData is a type alias of dis.Data on the legacy side).
func WriteData(w *bitio.Writer, d dis.Data) {
	records.WriteEntityID(w, d.OriginatingEntityID)
	records.WriteEntityID(w, d.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(d.RequestID))
	writeFixedDatums(w, d.FixedDatums)
	writeVariableDatums(w, d.VariableDatums)
}

// ReadData is the inverse of WriteData.
func ReadData(r *bitio.Reader) (dis.Data, error) {
	var d dis.Data

	var err error
	d.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return d, err
	}
	d.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return d, err
	}
	requestID, err := varint.ReadUVINT32(r)
	if err != nil {
		return d, err
	}
	d.RequestID = uint32(requestID)

	d.FixedDatums, err = readFixedDatums(r)
	if err != nil {
		return d, err
	}
	d.VariableDatums, err = readVariableDatums(r)

	return d, err
}

// WriteSetData encodes d's compressed body, reusing Data's wire shape.
func WriteSetData(w *bitio.Writer, d dis.SetData) { WriteData(w, dis.Data(d)) }

// ReadSetData is the inverse of WriteSetData.
func ReadSetData(r *bitio.Reader) (dis.SetData, error) {
	d, err := ReadData(r)

	return dis.SetData(d), err
}

// WriteEventReport encodes e's compressed body.
func WriteEventReport(w *bitio.Writer, e dis.EventReport) {
	records.WriteEntityID(w, e.OriginatingEntityID)
	records.WriteEntityID(w, e.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(e.EventType))
	writeFixedDatums(w, e.FixedDatums)
	writeVariableDatums(w, e.VariableDatums)
}

// ReadEventReport is the inverse of WriteEventReport.
func ReadEventReport(r *bitio.Reader) (dis.EventReport, error) {
	var e dis.EventReport

	var err error
	e.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return e, err
	}
	e.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return e, err
	}
	eventType, err := varint.ReadUVINT32(r)
	if err != nil {
		return e, err
	}
	e.EventType = uint32(eventType)

	e.FixedDatums, err = readFixedDatums(r)
	if err != nil {
		return e, err
	}
	e.VariableDatums, err = readVariableDatums(r)

	return e, err
}

// WriteComment encodes c's compressed body.
func WriteComment(w *bitio.Writer, c dis.Comment) {
	records.WriteEntityID(w, c.OriginatingEntityID)
	records.WriteEntityID(w, c.ReceivingEntityID)
	writeVariableDatums(w, c.VariableDatums)
}

// ReadComment is the inverse of WriteComment.
func ReadComment(r *bitio.Reader) (dis.Comment, error) {
	var c dis.Comment

	var err error
	c.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.VariableDatums, err = readVariableDatums(r)

	return c, err
}

// WriteAttribute encodes a's compressed body (§4.5 "carries an arbitrary
// list of attribute records; each has an opaque record-specific-fields
// byte sequence of stated length").
func WriteAttribute(w *bitio.Writer, a dis.Attribute) {
	records.WriteEntityID(w, a.OriginatingEntityID)
	records.WriteEntityID(w, a.ReceivingEntityID)
	varint.WriteUVINT32(w, varint.UVINT32(a.MasterAttributeKind))
	varint.WriteUVINT8(w, varint.UVINT8(a.ActionCode))

	varint.WriteUVINT16(w, varint.UVINT16(len(a.Records)))
	for _, rec := range a.Records {
		varint.WriteUVINT32(w, varint.UVINT32(rec.RecordType))
		writeByteBlob(w, rec.Fields)
	}
}

// ReadAttribute is the inverse of WriteAttribute.
func ReadAttribute(r *bitio.Reader) (dis.Attribute, error) {
	var a dis.Attribute

	var err error
	a.OriginatingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	a.ReceivingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return a, err
	}
	kind, err := varint.ReadUVINT32(r)
	if err != nil {
		return a, err
	}
	action, err := varint.ReadUVINT8(r)
	if err != nil {
		return a, err
	}
	a.MasterAttributeKind = uint32(kind)
	a.ActionCode = uint8(action)

	n, err := varint.ReadUVINT16(r)
	if err != nil {
		return a, err
	}
	a.Records = make([]dis.AttributeRecord, 0, n)
	for range n {
		recType, err := varint.ReadUVINT32(r)
		if err != nil {
			return a, err
		}
		fields, err := readByteBlob(r)
		if err != nil {
			return a, err
		}
		a.Records = append(a.Records, dis.AttributeRecord{RecordType: uint32(recType), Fields: fields})
	}

	return a, nil
}

// WriteEntityStateUpdate encodes e's compressed body, Entity State's
// trimmed always-present-fields-only sibling (§6).
func WriteEntityStateUpdate(w *bitio.Writer, e dis.EntityStateUpdate) {
	records.WriteEntityID(w, e.EntityID)
	varint.WriteUVINT8(w, varint.UVINT8(len(e.ArticulationParams)))
	for _, vp := range e.ArticulationParams {
		records.WriteVariableParameter(w, vp)
	}
	records.WriteLinearVelocity(w, e.LinearVelocity)

	altUnit := records.EncodeAltitudeUnit(e.Location.AltMeters)
	w.WriteUnsigned(1, uint32(altUnit))
	records.WriteWorldCoordinate(w, e.Location, altUnit)
	records.WriteOrientation(w, e.Orientation)
	w.WriteUnsigned(32, e.Appearance)
}

// ReadEntityStateUpdate is the inverse of WriteEntityStateUpdate.
func ReadEntityStateUpdate(r *bitio.Reader) (dis.EntityStateUpdate, error) {
	var e dis.EntityStateUpdate

	var err error
	e.EntityID, err = records.ReadEntityID(r)
	if err != nil {
		return e, err
	}

	numParams, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, err
	}
	for range numParams {
		vp, err := records.ReadVariableParameter(r)
		if err != nil {
			return e, err
		}
		e.ArticulationParams = append(e.ArticulationParams, vp)
	}

	e.LinearVelocity, err = records.ReadLinearVelocity(r)
	if err != nil {
		return e, err
	}

	altUnitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return e, err
	}
	e.Location, err = records.ReadWorldCoordinate(r, records.AltitudeUnit(altUnitBit))
	if err != nil {
		return e, err
	}
	e.Orientation, err = records.ReadOrientation(r)
	if err != nil {
		return e, err
	}
	appearance, err := r.ReadUnsigned(32)
	if err != nil {
		return e, err
	}
	e.Appearance = appearance

	return e, nil
}
