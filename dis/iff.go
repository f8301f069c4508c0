package dis

import "github.com/distsim/cdis-codec/records"

// SystemID is IFF's stateful field: a 20-bit record split as 4-bit
// type, 5-bit name, 3-bit mode, 8-bit change-options on the wire
// (§4.4.3), carried here as its decomposed parts.
type SystemID struct {
	SystemType    uint8
	SystemName    uint8
	SystemMode    uint8
	ChangeOptions uint8
}

// FundamentalOperationalData is IFF's mandatory 16-bit field plus up to
// six optional 8/16-bit parameters (§4.4.3). InformationLayers is the
// bitmap selecting which of layers 2-5 follow.
type FundamentalOperationalData struct {
	SystemStatus      uint8
	AlternateStatus   uint8
	InformationLayers uint8
	Parameter1        uint8
	Parameter2        uint8
	Parameter3        uint16
	Parameter4        uint16
	Parameter5        uint16
	Parameter6        uint16
}

// IFF layer numbers, carried in every layer header (§4.4.3's
// information-layers bitmap names which of these are present; layer 1
// is the base layer above and has no separate framing of its own).
const (
	IFFLayerNumberEmissions           = 2
	IFFLayerNumberMode5FunctionalData = 3
	IFFLayerNumberModeSFunctionalData = 4
	IFFLayerNumberDataCommunications  = 5
)

// IFFFundamentalParameterData is one emissions parameter set carried by
// layer 2, mirroring the legacy IFF standard's fundamental parameter
// data record (13.23.2).
type IFFFundamentalParameterData struct {
	ERP                uint8
	Frequency          float64
	PRF                uint16
	PulseWidth         float64
	BurstLength        uint16
	ApplicableModes    uint8
	SystemSpecificData uint8
}

// IFFLayer2 is the Layer 2 emissions data record: antenna beam pattern,
// two operational parameters, and one fundamental parameter set per
// emitted mode.
type IFFLayer2 struct {
	BeamData              BeamData
	OperationalParameter1 uint8
	OperationalParameter2 uint8
	FundamentalParams     []IFFFundamentalParameterData
}

// IFFDataRecord is the generic type/value extension record shared by
// layers 3-5 for vendor- or mode-specific data beyond the fixed fields.
type IFFDataRecord struct {
	RecordType uint16
	Fields     []byte
}

// Mode5InterrogatorBasicData is a Mode 5 interrogator's basic data
// record, present when Mode5BasicData.IsTransponder is false.
type Mode5InterrogatorBasicData struct {
	Status                uint8
	MessageFormatsPresent uint16
	InterrogatedEntityID  records.EntityID
}

// Mode5TransponderBasicData is a Mode 5 transponder's basic data
// record, present when Mode5BasicData.IsTransponder is true.
type Mode5TransponderBasicData struct {
	Status                uint16
	PIN                   uint16
	MessageFormatsPresent uint16
	EnhancedMode1         uint16
	NationalOrigin        uint16
	SupplementalData      uint8
	NavigationSource      uint8
	FigureOfMerit         uint8
}

// Mode5BasicData is the tagged union layer 3 carries: either an
// interrogator's or a transponder's basic data record, never both.
type Mode5BasicData struct {
	IsTransponder bool
	Interrogator  Mode5InterrogatorBasicData
	Transponder   Mode5TransponderBasicData
}

// IFFLayer3 is the Mode 5 Functional Data layer.
type IFFLayer3 struct {
	ReportingSite        uint16
	ReportingApplication uint16
	Mode5                Mode5BasicData
	DataRecords          []IFFDataRecord
}

// ModeSInterrogatorBasicData is a Mode S interrogator's basic data
// record, present when ModeSBasicData.IsTransponder is false.
type ModeSInterrogatorBasicData struct {
	Status uint16
}

// ModeSTransponderBasicData is a Mode S transponder's basic data
// record, present when ModeSBasicData.IsTransponder is true.
type ModeSTransponderBasicData struct {
	Status                 uint16
	AircraftIdentification string
	AircraftAddress        uint32
	AircraftIdentType      uint8
	SmartStatus            uint8
	Capability             uint8
}

// ModeSBasicData is the tagged union layer 4 carries.
type ModeSBasicData struct {
	IsTransponder bool
	Interrogator  ModeSInterrogatorBasicData
	Transponder   ModeSTransponderBasicData
}

// IFFLayer4 is the Mode S Functional Data layer.
type IFFLayer4 struct {
	ReportingSite        uint16
	ReportingApplication uint16
	ModeS                ModeSBasicData
	DataRecords          []IFFDataRecord
}

// IFFLayer5 is the Data Communications layer.
type IFFLayer5 struct {
	ReportingSite        uint16
	ReportingApplication uint16
	ApplicableLayers     uint8
	DataCategory         uint8
	DataRecords          []IFFDataRecord
}

// IFF is the legacy IFF PDU body, base layer plus any present optional
// layers (§4.4.3). Each optional layer is a pointer: nil means the
// layer is absent and its bit in FundamentalOperational.InformationLayers
// is clear.
type IFF struct {
	EmittingEntityID       records.EntityID
	HasEventID             bool
	EventID                records.EventID
	HasRelativeAntenna     bool
	RelativeAntenna        records.Vector3
	SystemID               SystemID
	SystemDesignator       uint8
	HasSystemSpecific      bool
	SystemSpecificData     uint8
	FundamentalOperational FundamentalOperationalData
	Layer2                 *IFFLayer2
	Layer3                 *IFFLayer3
	Layer4                 *IFFLayer4
	Layer5                 *IFFLayer5
}

func writeIFFDataRecord(buf []byte, rec IFFDataRecord) []byte {
	buf = engine.AppendUint16(buf, rec.RecordType)
	buf = engine.AppendUint16(buf, uint16(len(rec.Fields)))
	buf = append(buf, rec.Fields...)

	return buf
}

func readIFFDataRecord(buf []byte, off int) (IFFDataRecord, int) {
	var rec IFFDataRecord

	rec.RecordType = engine.Uint16(buf[off:])
	length := int(engine.Uint16(buf[off+2:]))
	off += 4
	rec.Fields = append([]byte(nil), buf[off:off+length]...)
	off += length

	return rec, off
}

func writeIFFDataRecords(buf []byte, recs []IFFDataRecord) []byte {
	buf = append(buf, uint8(len(recs)))
	for _, rec := range recs {
		buf = writeIFFDataRecord(buf, rec)
	}

	return buf
}

func readIFFDataRecords(buf []byte, off int) ([]IFFDataRecord, int) {
	n := int(buf[off])
	off++

	var recs []IFFDataRecord
	for range n {
		var rec IFFDataRecord
		rec, off = readIFFDataRecord(buf, off)
		recs = append(recs, rec)
	}

	return recs, off
}

func writeIFFLayer2(buf []byte, l IFFLayer2) []byte {
	buf = writeBeamData(buf, l.BeamData)
	buf = append(buf, l.OperationalParameter1, l.OperationalParameter2, uint8(len(l.FundamentalParams)))
	for _, p := range l.FundamentalParams {
		buf = append(buf, p.ERP)
		buf = engine.AppendUint64(buf, math64Bits(p.Frequency))
		buf = engine.AppendUint16(buf, p.PRF)
		buf = engine.AppendUint64(buf, math64Bits(p.PulseWidth))
		buf = engine.AppendUint16(buf, p.BurstLength)
		buf = append(buf, p.ApplicableModes, p.SystemSpecificData)
	}

	return buf
}

func readIFFLayer2(buf []byte, off int) (IFFLayer2, int) {
	var l IFFLayer2

	l.BeamData, off = readBeamData(buf, off)
	l.OperationalParameter1 = buf[off]
	l.OperationalParameter2 = buf[off+1]
	n := int(buf[off+2])
	off += 3

	for range n {
		var p IFFFundamentalParameterData
		p.ERP = buf[off]
		p.Frequency = math64FromBits(engine.Uint64(buf[off+1:]))
		p.PRF = engine.Uint16(buf[off+9:])
		p.PulseWidth = math64FromBits(engine.Uint64(buf[off+11:]))
		p.BurstLength = engine.Uint16(buf[off+19:])
		p.ApplicableModes = buf[off+21]
		p.SystemSpecificData = buf[off+22]
		off += 23
		l.FundamentalParams = append(l.FundamentalParams, p)
	}

	return l, off
}

func writeMode5BasicData(buf []byte, m Mode5BasicData) []byte {
	buf = append(buf, boolByte(m.IsTransponder))
	if m.IsTransponder {
		t := m.Transponder
		buf = engine.AppendUint16(buf, t.Status)
		buf = engine.AppendUint16(buf, t.PIN)
		buf = engine.AppendUint16(buf, t.MessageFormatsPresent)
		buf = engine.AppendUint16(buf, t.EnhancedMode1)
		buf = engine.AppendUint16(buf, t.NationalOrigin)
		buf = append(buf, t.SupplementalData, t.NavigationSource, t.FigureOfMerit)
	} else {
		i := m.Interrogator
		buf = append(buf, i.Status)
		buf = engine.AppendUint16(buf, i.MessageFormatsPresent)
		buf = records.WriteDisEntityID(buf, i.InterrogatedEntityID)
	}

	return buf
}

func readMode5BasicData(buf []byte, off int) (Mode5BasicData, int) {
	var m Mode5BasicData

	m.IsTransponder = buf[off] != 0
	off++
	if m.IsTransponder {
		var t Mode5TransponderBasicData
		t.Status = engine.Uint16(buf[off:])
		t.PIN = engine.Uint16(buf[off+2:])
		t.MessageFormatsPresent = engine.Uint16(buf[off+4:])
		t.EnhancedMode1 = engine.Uint16(buf[off+6:])
		t.NationalOrigin = engine.Uint16(buf[off+8:])
		t.SupplementalData = buf[off+10]
		t.NavigationSource = buf[off+11]
		t.FigureOfMerit = buf[off+12]
		off += 13
		m.Transponder = t
	} else {
		var i Mode5InterrogatorBasicData
		i.Status = buf[off]
		i.MessageFormatsPresent = engine.Uint16(buf[off+1:])
		off += 3
		i.InterrogatedEntityID, off = records.ReadDisEntityID(buf, off)
		m.Interrogator = i
	}

	return m, off
}

func writeIFFLayer3(buf []byte, l IFFLayer3) []byte {
	buf = engine.AppendUint16(buf, l.ReportingSite)
	buf = engine.AppendUint16(buf, l.ReportingApplication)
	buf = writeMode5BasicData(buf, l.Mode5)
	buf = writeIFFDataRecords(buf, l.DataRecords)

	return buf
}

func readIFFLayer3(buf []byte, off int) (IFFLayer3, int) {
	var l IFFLayer3

	l.ReportingSite = engine.Uint16(buf[off:])
	l.ReportingApplication = engine.Uint16(buf[off+2:])
	off += 4
	l.Mode5, off = readMode5BasicData(buf, off)
	l.DataRecords, off = readIFFDataRecords(buf, off)

	return l, off
}

func writeModeSBasicData(buf []byte, m ModeSBasicData) []byte {
	buf = append(buf, boolByte(m.IsTransponder))
	if m.IsTransponder {
		t := m.Transponder
		buf = engine.AppendUint16(buf, t.Status)
		buf = append(buf, uint8(len(t.AircraftIdentification)))
		buf = append(buf, t.AircraftIdentification...)
		buf = engine.AppendUint32(buf, t.AircraftAddress)
		buf = append(buf, t.AircraftIdentType, t.SmartStatus, t.Capability)
	} else {
		buf = engine.AppendUint16(buf, m.Interrogator.Status)
	}

	return buf
}

func readModeSBasicData(buf []byte, off int) (ModeSBasicData, int) {
	var m ModeSBasicData

	m.IsTransponder = buf[off] != 0
	off++
	if m.IsTransponder {
		var t ModeSTransponderBasicData
		t.Status = engine.Uint16(buf[off:])
		off += 2
		n := int(buf[off])
		off++
		t.AircraftIdentification = string(buf[off : off+n])
		off += n
		t.AircraftAddress = engine.Uint32(buf[off:])
		t.AircraftIdentType = buf[off+4]
		t.SmartStatus = buf[off+5]
		t.Capability = buf[off+6]
		off += 7
		m.Transponder = t
	} else {
		m.Interrogator.Status = engine.Uint16(buf[off:])
		off += 2
	}

	return m, off
}

func writeIFFLayer4(buf []byte, l IFFLayer4) []byte {
	buf = engine.AppendUint16(buf, l.ReportingSite)
	buf = engine.AppendUint16(buf, l.ReportingApplication)
	buf = writeModeSBasicData(buf, l.ModeS)
	buf = writeIFFDataRecords(buf, l.DataRecords)

	return buf
}

func readIFFLayer4(buf []byte, off int) (IFFLayer4, int) {
	var l IFFLayer4

	l.ReportingSite = engine.Uint16(buf[off:])
	l.ReportingApplication = engine.Uint16(buf[off+2:])
	off += 4
	l.ModeS, off = readModeSBasicData(buf, off)
	l.DataRecords, off = readIFFDataRecords(buf, off)

	return l, off
}

func writeIFFLayer5(buf []byte, l IFFLayer5) []byte {
	buf = engine.AppendUint16(buf, l.ReportingSite)
	buf = engine.AppendUint16(buf, l.ReportingApplication)
	buf = append(buf, l.ApplicableLayers, l.DataCategory)
	buf = writeIFFDataRecords(buf, l.DataRecords)

	return buf
}

func readIFFLayer5(buf []byte, off int) (IFFLayer5, int) {
	var l IFFLayer5

	l.ReportingSite = engine.Uint16(buf[off:])
	l.ReportingApplication = engine.Uint16(buf[off+2:])
	l.ApplicableLayers = buf[off+4]
	l.DataCategory = buf[off+5]
	off += 6
	l.DataRecords, off = readIFFDataRecords(buf, off)

	return l, off
}

func WriteIFF(buf []byte, f IFF) []byte {
	buf = records.WriteDisEntityID(buf, f.EmittingEntityID)
	buf = append(buf, boolByte(f.HasEventID))
	if f.HasEventID {
		buf = records.WriteDisEntityID(buf, f.EventID)
	}
	buf = append(buf, boolByte(f.HasRelativeAntenna))
	if f.HasRelativeAntenna {
		buf = records.WriteDisFloat3(buf, f.RelativeAntenna)
	}
	buf = append(buf, f.SystemID.SystemType, f.SystemID.SystemName, f.SystemID.SystemMode, f.SystemID.ChangeOptions)
	buf = append(buf, f.SystemDesignator, boolByte(f.HasSystemSpecific))
	if f.HasSystemSpecific {
		buf = append(buf, f.SystemSpecificData)
	}

	fod := f.FundamentalOperational
	buf = append(buf, fod.SystemStatus, fod.AlternateStatus, fod.InformationLayers, fod.Parameter1, fod.Parameter2)
	buf = engine.AppendUint16(buf, fod.Parameter3)
	buf = engine.AppendUint16(buf, fod.Parameter4)
	buf = engine.AppendUint16(buf, fod.Parameter5)
	buf = engine.AppendUint16(buf, fod.Parameter6)

	buf = append(buf, boolByte(f.Layer2 != nil))
	if f.Layer2 != nil {
		buf = writeIFFLayer2(buf, *f.Layer2)
	}
	buf = append(buf, boolByte(f.Layer3 != nil))
	if f.Layer3 != nil {
		buf = writeIFFLayer3(buf, *f.Layer3)
	}
	buf = append(buf, boolByte(f.Layer4 != nil))
	if f.Layer4 != nil {
		buf = writeIFFLayer4(buf, *f.Layer4)
	}
	buf = append(buf, boolByte(f.Layer5 != nil))
	if f.Layer5 != nil {
		buf = writeIFFLayer5(buf, *f.Layer5)
	}

	return buf
}

func ReadIFF(buf []byte, off int) (IFF, int) {
	var f IFF

	f.EmittingEntityID, off = records.ReadDisEntityID(buf, off)
	f.HasEventID = buf[off] != 0
	off++
	if f.HasEventID {
		f.EventID, off = records.ReadDisEntityID(buf, off)
	}
	f.HasRelativeAntenna = buf[off] != 0
	off++
	if f.HasRelativeAntenna {
		f.RelativeAntenna, off = records.ReadDisFloat3(buf, off)
	}
	f.SystemID = SystemID{SystemType: buf[off], SystemName: buf[off+1], SystemMode: buf[off+2], ChangeOptions: buf[off+3]}
	off += 4
	f.SystemDesignator = buf[off]
	f.HasSystemSpecific = buf[off+1] != 0
	off += 2
	if f.HasSystemSpecific {
		f.SystemSpecificData = buf[off]
		off++
	}

	f.FundamentalOperational = FundamentalOperationalData{
		SystemStatus:      buf[off],
		AlternateStatus:   buf[off+1],
		InformationLayers: buf[off+2],
		Parameter1:        buf[off+3],
		Parameter2:        buf[off+4],
		Parameter3:        engine.Uint16(buf[off+5:]),
		Parameter4:        engine.Uint16(buf[off+7:]),
		Parameter5:        engine.Uint16(buf[off+9:]),
		Parameter6:        engine.Uint16(buf[off+11:]),
	}
	off += 13

	hasLayer2 := buf[off] != 0
	off++
	if hasLayer2 {
		var l2 IFFLayer2
		l2, off = readIFFLayer2(buf, off)
		f.Layer2 = &l2
	}
	hasLayer3 := buf[off] != 0
	off++
	if hasLayer3 {
		var l3 IFFLayer3
		l3, off = readIFFLayer3(buf, off)
		f.Layer3 = &l3
	}
	hasLayer4 := buf[off] != 0
	off++
	if hasLayer4 {
		var l4 IFFLayer4
		l4, off = readIFFLayer4(buf, off)
		f.Layer4 = &l4
	}
	hasLayer5 := buf[off] != 0
	off++
	if hasLayer5 {
		var l5 IFFLayer5
		l5, off = readIFFLayer5(buf, off)
		f.Layer5 = &l5
	}

	return f, off
}
