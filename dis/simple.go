package dis

import "github.com/distsim/cdis-codec/records"

// CreateEntity/RemoveEntity/StartResume/StopFreeze/Acknowledge/
// ActionRequest/ActionResponse/DataQuery/SetData/Data/EventReport/
// Comment/Attribute are the simulation-management and data PDUs that
// carry no delta state (§4.5). Their bodies are small fixed headers;
// Action Request/Response, Data Query, Set Data, Data, Event Report and
// Comment follow theirs with counted datum lists, and Attribute with a
// counted attribute record list.

// SimulationAddress is the (site, application) pair these PDUs key a
// request by, distinct from a full EntityID (§4.5).
type SimulationAddress struct {
	Site        uint16
	Application uint16
}

func writeSimulationAddress(buf []byte, a SimulationAddress) []byte {
	buf = engine.AppendUint16(buf, a.Site)
	buf = engine.AppendUint16(buf, a.Application)

	return buf
}

func readSimulationAddress(buf []byte, off int) (SimulationAddress, int) {
	return SimulationAddress{Site: engine.Uint16(buf[off:]), Application: engine.Uint16(buf[off+2:])}, off + 4
}

// CreateEntity is the legacy Create Entity PDU body.
type CreateEntity struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RequestID           uint32
}

// RemoveEntity is the legacy Remove Entity PDU body.
type RemoveEntity = CreateEntity

// StartResume is the legacy Start/Resume PDU body.
type StartResume struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RealWorldTimeSec    uint32
	RealWorldTimeUsec   uint32
	SimulationTimeSec   uint32
	SimulationTimeUsec  uint32
	RequestID           uint32
}

// StopFreeze is the legacy Stop/Freeze PDU body.
type StopFreeze struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RealWorldTimeSec    uint32
	RealWorldTimeUsec   uint32
	Reason              uint8
	FrozenBehavior      uint8
	RequestID           uint32
}

// Acknowledge is the legacy Acknowledge PDU body.
type Acknowledge struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	AcknowledgeFlag     uint16
	ResponseFlag        uint16
	RequestID           uint32
}

// ActionRequest is the legacy Action Request PDU body.
type ActionRequest struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RequestID           uint32
	ActionID            uint32
	FixedDatums         []uint32
	VariableDatums      []Datum
}

// ActionResponse is the legacy Action Response PDU body.
type ActionResponse struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RequestID           uint32
	RequestStatus       uint32
	FixedDatums         []uint32
	VariableDatums      []Datum
}

// DataQuery is the legacy Data Query PDU body.
type DataQuery struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RequestID           uint32
	TimeInterval        uint32
	FixedDatumIDs       []uint32
	VariableDatumIDs    []uint32
}

// SetData is the legacy Set Data PDU body.
type SetData struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RequestID           uint32
	FixedDatums         []uint32
	VariableDatums      []Datum
}

// Data is the legacy Data PDU body.
type Data struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	RequestID           uint32
	FixedDatums         []uint32
	VariableDatums      []Datum
}

// EventReport is the legacy Event Report PDU body.
type EventReport struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	EventType           uint32
	FixedDatums         []uint32
	VariableDatums      []Datum
}

// Comment is the legacy Comment PDU body.
type Comment struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	VariableDatums      []Datum
}

// Attribute is the legacy Attribute PDU body (§4.5: "carries an
// arbitrary list of attribute records; each has an opaque
// record-specific-fields byte sequence of stated length").
type Attribute struct {
	OriginatingEntityID records.EntityID
	ReceivingEntityID   records.EntityID
	MasterAttributeKind uint32
	ActionCode          uint8
	Records             []AttributeRecord
}

// EntityStateUpdate is the legacy Entity State Update PDU body, a
// trimmed Entity State carrying only the frequently-changing fields
// (§6 "Supported PDU types").
type EntityStateUpdate struct {
	EntityID           records.EntityID
	LinearVelocity     records.Vector3
	Location           records.WorldCoordinate
	Orientation        records.Orientation
	Appearance         uint32
	ArticulationParams ArticulationParameters
}

func writeFixedDatums(buf []byte, ids []uint32) []byte {
	buf = engine.AppendUint32(buf, uint32(len(ids)))
	for _, id := range ids {
		buf = engine.AppendUint32(buf, id)
	}

	return buf
}

func readFixedDatums(buf []byte, off int) ([]uint32, int) {
	n := int(engine.Uint32(buf[off:]))
	off += 4
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = engine.Uint32(buf[off:])
		off += 4
	}

	return ids, off
}

func writeVariableDatums(buf []byte, datums []Datum) []byte {
	buf = engine.AppendUint32(buf, uint32(len(datums)))
	for _, d := range datums {
		buf = AppendDatum(buf, d)
	}

	return buf
}

func readVariableDatums(buf []byte, off int) ([]Datum, int) {
	n := int(engine.Uint32(buf[off:]))
	off += 4
	datums := make([]Datum, n)
	for i := range datums {
		datums[i], off = ReadDatum(buf, off)
	}

	return datums, off
}

func WriteActionRequest(buf []byte, a ActionRequest) []byte {
	buf = records.WriteDisEntityID(buf, a.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, a.ReceivingEntityID)
	buf = engine.AppendUint32(buf, a.RequestID)
	buf = engine.AppendUint32(buf, a.ActionID)
	buf = writeFixedDatums(buf, a.FixedDatums)
	buf = writeVariableDatums(buf, a.VariableDatums)

	return buf
}

func ReadActionRequest(buf []byte, off int) (ActionRequest, int) {
	var a ActionRequest

	a.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	a.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	a.RequestID = engine.Uint32(buf[off:])
	a.ActionID = engine.Uint32(buf[off+4:])
	off += 8
	a.FixedDatums, off = readFixedDatums(buf, off)
	a.VariableDatums, off = readVariableDatums(buf, off)

	return a, off
}

func WriteActionResponse(buf []byte, a ActionResponse) []byte {
	buf = records.WriteDisEntityID(buf, a.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, a.ReceivingEntityID)
	buf = engine.AppendUint32(buf, a.RequestID)
	buf = engine.AppendUint32(buf, a.RequestStatus)
	buf = writeFixedDatums(buf, a.FixedDatums)
	buf = writeVariableDatums(buf, a.VariableDatums)

	return buf
}

func ReadActionResponse(buf []byte, off int) (ActionResponse, int) {
	var a ActionResponse

	a.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	a.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	a.RequestID = engine.Uint32(buf[off:])
	a.RequestStatus = engine.Uint32(buf[off+4:])
	off += 8
	a.FixedDatums, off = readFixedDatums(buf, off)
	a.VariableDatums, off = readVariableDatums(buf, off)

	return a, off
}

func WriteData(buf []byte, d Data) []byte {
	buf = records.WriteDisEntityID(buf, d.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, d.ReceivingEntityID)
	buf = engine.AppendUint32(buf, d.RequestID)
	buf = append(buf, 0, 0, 0, 0) // padding
	buf = writeFixedDatums(buf, d.FixedDatums)
	buf = writeVariableDatums(buf, d.VariableDatums)

	return buf
}

func ReadData(buf []byte, off int) (Data, int) {
	var d Data

	d.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	d.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	d.RequestID = engine.Uint32(buf[off:])
	off += 8
	d.FixedDatums, off = readFixedDatums(buf, off)
	d.VariableDatums, off = readVariableDatums(buf, off)

	return d, off
}

func WriteSetData(buf []byte, d SetData) []byte {
	return WriteData(buf, Data(d))
}

func ReadSetData(buf []byte, off int) (SetData, int) {
	d, next := ReadData(buf, off)

	return SetData(d), next
}

func WriteDataQuery(buf []byte, q DataQuery) []byte {
	buf = records.WriteDisEntityID(buf, q.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, q.ReceivingEntityID)
	buf = engine.AppendUint32(buf, q.RequestID)
	buf = engine.AppendUint32(buf, q.TimeInterval)
	buf = writeFixedDatums(buf, q.FixedDatumIDs)
	buf = writeFixedDatums(buf, q.VariableDatumIDs)

	return buf
}

func ReadDataQuery(buf []byte, off int) (DataQuery, int) {
	var q DataQuery

	q.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	q.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	q.RequestID = engine.Uint32(buf[off:])
	q.TimeInterval = engine.Uint32(buf[off+4:])
	off += 8
	q.FixedDatumIDs, off = readFixedDatums(buf, off)
	q.VariableDatumIDs, off = readFixedDatums(buf, off)

	return q, off
}

func WriteEventReport(buf []byte, e EventReport) []byte {
	buf = records.WriteDisEntityID(buf, e.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, e.ReceivingEntityID)
	buf = engine.AppendUint32(buf, e.EventType)
	buf = append(buf, 0, 0, 0, 0)
	buf = writeFixedDatums(buf, e.FixedDatums)
	buf = writeVariableDatums(buf, e.VariableDatums)

	return buf
}

func ReadEventReport(buf []byte, off int) (EventReport, int) {
	var e EventReport

	e.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	e.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	e.EventType = engine.Uint32(buf[off:])
	off += 8
	e.FixedDatums, off = readFixedDatums(buf, off)
	e.VariableDatums, off = readVariableDatums(buf, off)

	return e, off
}

func WriteComment(buf []byte, c Comment) []byte {
	buf = records.WriteDisEntityID(buf, c.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, c.ReceivingEntityID)
	buf = writeVariableDatums(buf, c.VariableDatums)

	return buf
}

func ReadComment(buf []byte, off int) (Comment, int) {
	var c Comment

	c.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	c.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	c.VariableDatums, off = readVariableDatums(buf, off)

	return c, off
}

func WriteCreateEntity(buf []byte, c CreateEntity) []byte {
	buf = records.WriteDisEntityID(buf, c.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, c.ReceivingEntityID)
	buf = engine.AppendUint32(buf, c.RequestID)

	return buf
}

func ReadCreateEntity(buf []byte, off int) (CreateEntity, int) {
	var c CreateEntity

	c.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	c.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	c.RequestID = engine.Uint32(buf[off:])
	off += 4

	return c, off
}

func WriteStartResume(buf []byte, s StartResume) []byte {
	buf = records.WriteDisEntityID(buf, s.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, s.ReceivingEntityID)
	buf = engine.AppendUint32(buf, s.RealWorldTimeSec)
	buf = engine.AppendUint32(buf, s.RealWorldTimeUsec)
	buf = engine.AppendUint32(buf, s.SimulationTimeSec)
	buf = engine.AppendUint32(buf, s.SimulationTimeUsec)
	buf = engine.AppendUint32(buf, s.RequestID)

	return buf
}

func ReadStartResume(buf []byte, off int) (StartResume, int) {
	var s StartResume

	s.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	s.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	s.RealWorldTimeSec = engine.Uint32(buf[off:])
	s.RealWorldTimeUsec = engine.Uint32(buf[off+4:])
	s.SimulationTimeSec = engine.Uint32(buf[off+8:])
	s.SimulationTimeUsec = engine.Uint32(buf[off+12:])
	s.RequestID = engine.Uint32(buf[off+16:])
	off += 20

	return s, off
}

func WriteStopFreeze(buf []byte, s StopFreeze) []byte {
	buf = records.WriteDisEntityID(buf, s.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, s.ReceivingEntityID)
	buf = engine.AppendUint32(buf, s.RealWorldTimeSec)
	buf = engine.AppendUint32(buf, s.RealWorldTimeUsec)
	buf = append(buf, s.Reason, s.FrozenBehavior, 0, 0)
	buf = engine.AppendUint32(buf, s.RequestID)

	return buf
}

func ReadStopFreeze(buf []byte, off int) (StopFreeze, int) {
	var s StopFreeze

	s.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	s.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	s.RealWorldTimeSec = engine.Uint32(buf[off:])
	s.RealWorldTimeUsec = engine.Uint32(buf[off+4:])
	s.Reason = buf[off+8]
	s.FrozenBehavior = buf[off+9]
	s.RequestID = engine.Uint32(buf[off+12:])
	off += 16

	return s, off
}

func WriteAcknowledge(buf []byte, a Acknowledge) []byte {
	buf = records.WriteDisEntityID(buf, a.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, a.ReceivingEntityID)
	buf = engine.AppendUint16(buf, a.AcknowledgeFlag)
	buf = engine.AppendUint16(buf, a.ResponseFlag)
	buf = engine.AppendUint32(buf, a.RequestID)

	return buf
}

func ReadAcknowledge(buf []byte, off int) (Acknowledge, int) {
	var a Acknowledge

	a.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	a.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	a.AcknowledgeFlag = engine.Uint16(buf[off:])
	a.ResponseFlag = engine.Uint16(buf[off+2:])
	a.RequestID = engine.Uint32(buf[off+4:])
	off += 8

	return a, off
}

func WriteAttribute(buf []byte, a Attribute) []byte {
	buf = records.WriteDisEntityID(buf, a.OriginatingEntityID)
	buf = records.WriteDisEntityID(buf, a.ReceivingEntityID)
	buf = engine.AppendUint32(buf, a.MasterAttributeKind)
	buf = append(buf, a.ActionCode, 0, 0, 0)
	buf = engine.AppendUint16(buf, uint16(len(a.Records)))
	for _, rec := range a.Records {
		buf = engine.AppendUint32(buf, rec.RecordType)
		buf = engine.AppendUint16(buf, uint16(len(rec.Fields)))
		buf = append(buf, rec.Fields...)
	}

	return buf
}

func ReadAttribute(buf []byte, off int) (Attribute, int) {
	var a Attribute

	a.OriginatingEntityID, off = records.ReadDisEntityID(buf, off)
	a.ReceivingEntityID, off = records.ReadDisEntityID(buf, off)
	a.MasterAttributeKind = engine.Uint32(buf[off:])
	a.ActionCode = buf[off+4]
	off += 8
	n := int(engine.Uint16(buf[off:]))
	off += 2
	a.Records = make([]AttributeRecord, n)
	for i := range a.Records {
		recType := engine.Uint32(buf[off:])
		length := int(engine.Uint16(buf[off+4:]))
		off += 6
		a.Records[i] = AttributeRecord{RecordType: recType, Fields: append([]byte(nil), buf[off:off+length]...)}
		off += length
	}

	return a, off
}

func WriteEntityStateUpdate(buf []byte, e EntityStateUpdate) []byte {
	buf = records.WriteDisEntityID(buf, e.EntityID)
	buf = append(buf, 0, uint8(len(e.ArticulationParams)))
	buf = records.WriteDisFloat3(buf, e.LinearVelocity)
	buf = records.WriteDisDouble3(buf, e.Location.LatRadians, e.Location.LonRadians, e.Location.AltMeters)
	buf = records.WriteDisOrientation(buf, e.Orientation)
	buf = engine.AppendUint32(buf, e.Appearance)

	return buf
}

func ReadEntityStateUpdate(buf []byte, off int) (EntityStateUpdate, int) {
	var e EntityStateUpdate

	e.EntityID, off = records.ReadDisEntityID(buf, off)
	off += 2
	e.LinearVelocity, off = records.ReadDisFloat3(buf, off)

	lat, lon, alt, next := records.ReadDisDouble3(buf, off)
	e.Location = records.WorldCoordinate{LatRadians: lat, LonRadians: lon, AltMeters: alt}
	off = next

	e.Orientation, off = records.ReadDisOrientation(buf, off)
	e.Appearance = engine.Uint32(buf[off:])
	off += 4

	return e, off
}
