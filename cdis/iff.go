package cdis

import (
	"time"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdisfloat"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/state"
	"github.com/distsim/cdis-codec/varint"
)

// WriteIFF encodes f's compressed body. Only SystemID is stateful (§4.4.3
// "Only system_id is stateful in the base layer"); every other base-layer
// field is carried on every PDU regardless of update mode. Layers 2-5
// are optional, each framed by records.LayerHeader with a back-patched
// length and holding its own typed record (§4.4.3 "holds layer-specific
// records").
func WriteIFF(w *bitio.Writer, f dis.IFF, enc *state.EncoderState, opts Options, now time.Time) bool {
	records.WriteEntityID(w, f.EmittingEntityID)

	decision := enc.Decide(dis.KindIFF, f.EmittingEntityID, now, opts.Heartbeats, opts.forceFullUpdate())
	w.WriteUnsigned(1, boolBit(decision.FullUpdate))

	w.WriteUnsigned(1, boolBit(f.HasEventID))
	if f.HasEventID {
		records.WriteEntityID(w, f.EventID)
	}

	w.WriteUnsigned(1, boolBit(f.HasRelativeAntenna))
	if f.HasRelativeAntenna {
		unit := records.EncodeLinearUnit(f.RelativeAntenna)
		w.WriteUnsigned(1, uint32(unit))
		records.WriteEntityCoordinateVector(w, f.RelativeAntenna, unit)
	}

	systemIDPresent := decision.FullUpdate
	w.WriteUnsigned(1, boolBit(systemIDPresent))
	if systemIDPresent {
		writeSystemID(w, f.SystemID)
	}

	w.WriteUnsigned(8, uint32(f.SystemDesignator))
	w.WriteUnsigned(1, boolBit(f.HasSystemSpecific))
	if f.HasSystemSpecific {
		w.WriteUnsigned(8, uint32(f.SystemSpecificData))
	}

	writeFundamentalOperationalData(w, f.FundamentalOperational)

	w.WriteUnsigned(1, boolBit(f.Layer2 != nil))
	if f.Layer2 != nil {
		lenAt := records.WriteLayerHeader(w, dis.IFFLayerNumberEmissions, 0)
		writeIFFLayer2(w, *f.Layer2)
		records.PatchLayerLength(w, lenAt)
	}
	w.WriteUnsigned(1, boolBit(f.Layer3 != nil))
	if f.Layer3 != nil {
		lenAt := records.WriteLayerHeader(w, dis.IFFLayerNumberMode5FunctionalData, 0)
		writeIFFLayer3(w, *f.Layer3)
		records.PatchLayerLength(w, lenAt)
	}
	w.WriteUnsigned(1, boolBit(f.Layer4 != nil))
	if f.Layer4 != nil {
		lenAt := records.WriteLayerHeader(w, dis.IFFLayerNumberModeSFunctionalData, 0)
		writeIFFLayer4(w, *f.Layer4)
		records.PatchLayerLength(w, lenAt)
	}
	w.WriteUnsigned(1, boolBit(f.Layer5 != nil))
	if f.Layer5 != nil {
		lenAt := records.WriteLayerHeader(w, dis.IFFLayerNumberDataCommunications, 0)
		writeIFFLayer5(w, *f.Layer5)
		records.PatchLayerLength(w, lenAt)
	}

	return decision.FullUpdate
}

func writeSystemID(w *bitio.Writer, id dis.SystemID) {
	w.WriteUnsigned(4, uint32(id.SystemType))
	w.WriteUnsigned(5, uint32(id.SystemName))
	w.WriteUnsigned(3, uint32(id.SystemMode))
	w.WriteUnsigned(8, uint32(id.ChangeOptions))
}

func readSystemID(r *bitio.Reader) (dis.SystemID, error) {
	var id dis.SystemID

	t, err := r.ReadUnsigned(4)
	if err != nil {
		return id, err
	}
	n, err := r.ReadUnsigned(5)
	if err != nil {
		return id, err
	}
	m, err := r.ReadUnsigned(3)
	if err != nil {
		return id, err
	}
	c, err := r.ReadUnsigned(8)
	if err != nil {
		return id, err
	}

	id.SystemType = uint8(t)
	id.SystemName = uint8(n)
	id.SystemMode = uint8(m)
	id.ChangeOptions = uint8(c)

	return id, nil
}

// writeFundamentalOperationalData writes the mandatory 16 bits (system
// status, alternate status), the information-layers bitmap, then the six
// optional parameters each gated by its own presence bit (§4.4.3 "16 bits
// mandatory + six optional 8/16-bit parameters").
func writeFundamentalOperationalData(w *bitio.Writer, fod dis.FundamentalOperationalData) {
	w.WriteUnsigned(8, uint32(fod.SystemStatus))
	w.WriteUnsigned(8, uint32(fod.AlternateStatus))
	w.WriteUnsigned(8, uint32(fod.InformationLayers))

	params := []uint32{uint32(fod.Parameter1), uint32(fod.Parameter2), uint32(fod.Parameter3), uint32(fod.Parameter4), uint32(fod.Parameter5), uint32(fod.Parameter6)}
	widths := [6]int{8, 8, 16, 16, 16, 16}

	for _, p := range params {
		w.WriteUnsigned(1, boolBit(p != 0))
	}
	for i, p := range params {
		if p != 0 {
			w.WriteUnsigned(widths[i], p)
		}
	}
}

func readFundamentalOperationalData(r *bitio.Reader) (dis.FundamentalOperationalData, error) {
	var fod dis.FundamentalOperationalData

	status, err := r.ReadUnsigned(8)
	if err != nil {
		return fod, err
	}
	alt, err := r.ReadUnsigned(8)
	if err != nil {
		return fod, err
	}
	layers, err := r.ReadUnsigned(8)
	if err != nil {
		return fod, err
	}
	fod.SystemStatus = uint8(status)
	fod.AlternateStatus = uint8(alt)
	fod.InformationLayers = uint8(layers)

	var present [6]bool
	for i := range present {
		bit, err := r.ReadUnsigned(1)
		if err != nil {
			return fod, err
		}
		present[i] = bit != 0
	}

	widths := [6]int{8, 8, 16, 16, 16, 16}
	values := make([]uint32, 6)
	for i, p := range present {
		if p {
			v, err := r.ReadUnsigned(widths[i])
			if err != nil {
				return fod, err
			}
			values[i] = v
		}
	}

	fod.Parameter1 = uint8(values[0])
	fod.Parameter2 = uint8(values[1])
	fod.Parameter3 = uint16(values[2])
	fod.Parameter4 = uint16(values[3])
	fod.Parameter5 = uint16(values[4])
	fod.Parameter6 = uint16(values[5])

	return fod, nil
}

// writeIFFDataRecords writes a count-prefixed list of layer extension
// records shared by layers 3-5: a UVINT8 record count, then per record a
// 16-bit record type, a UVINT8 field length, and the raw field bytes.
func writeIFFDataRecords(w *bitio.Writer, recs []dis.IFFDataRecord) {
	varint.WriteUVINT8(w, varint.UVINT8(len(recs)))
	for _, rec := range recs {
		w.WriteUnsigned(16, uint32(rec.RecordType))
		varint.WriteUVINT8(w, varint.UVINT8(len(rec.Fields)))
		for _, b := range rec.Fields {
			w.WriteUnsigned(8, uint32(b))
		}
	}
}

func readIFFDataRecords(r *bitio.Reader) ([]dis.IFFDataRecord, error) {
	n, err := varint.ReadUVINT8(r)
	if err != nil {
		return nil, err
	}

	var recs []dis.IFFDataRecord
	for range n {
		var rec dis.IFFDataRecord

		recType, err := r.ReadUnsigned(16)
		if err != nil {
			return recs, err
		}
		rec.RecordType = uint16(recType)

		fieldLen, err := varint.ReadUVINT8(r)
		if err != nil {
			return recs, err
		}
		rec.Fields = make([]byte, 0, fieldLen)
		for range fieldLen {
			b, err := r.ReadUnsigned(8)
			if err != nil {
				return recs, err
			}
			rec.Fields = append(rec.Fields, uint8(b))
		}

		recs = append(recs, rec)
	}

	return recs, nil
}

// writeIFFLayer2 encodes the Layer 2 emissions data record: antenna beam
// pattern, two operational parameters, then one fundamental parameter
// set per emitted mode (§13.23.2 referenced by §4.4.3).
func writeIFFLayer2(w *bitio.Writer, l dis.IFFLayer2) {
	writeBeamData(w, l.BeamData)
	w.WriteUnsigned(8, uint32(l.OperationalParameter1))
	w.WriteUnsigned(8, uint32(l.OperationalParameter2))

	varint.WriteUVINT8(w, varint.UVINT8(len(l.FundamentalParams)))
	for _, p := range l.FundamentalParams {
		w.WriteUnsigned(8, uint32(p.ERP))
		cdisfloat.Write(w, cdisfloat.FromFloat(cdisfloat.FrequencySpec, p.Frequency))
		w.WriteUnsigned(16, uint32(p.PRF))
		cdisfloat.Write(w, cdisfloat.FromFloat(cdisfloat.PulseWidthSpec, p.PulseWidth))
		w.WriteUnsigned(16, uint32(p.BurstLength))
		w.WriteUnsigned(8, uint32(p.ApplicableModes))
		w.WriteUnsigned(8, uint32(p.SystemSpecificData))
	}
}

func readIFFLayer2(r *bitio.Reader) (dis.IFFLayer2, error) {
	var l dis.IFFLayer2

	var err error
	l.BeamData, err = readBeamData(r)
	if err != nil {
		return l, err
	}
	op1, err := r.ReadUnsigned(8)
	if err != nil {
		return l, err
	}
	op2, err := r.ReadUnsigned(8)
	if err != nil {
		return l, err
	}
	l.OperationalParameter1 = uint8(op1)
	l.OperationalParameter2 = uint8(op2)

	n, err := varint.ReadUVINT8(r)
	if err != nil {
		return l, err
	}
	for range n {
		var p dis.IFFFundamentalParameterData

		erp, err := r.ReadUnsigned(8)
		if err != nil {
			return l, err
		}
		freq, err := cdisfloat.Read(r, cdisfloat.FrequencySpec)
		if err != nil {
			return l, err
		}
		prf, err := r.ReadUnsigned(16)
		if err != nil {
			return l, err
		}
		pw, err := cdisfloat.Read(r, cdisfloat.PulseWidthSpec)
		if err != nil {
			return l, err
		}
		burst, err := r.ReadUnsigned(16)
		if err != nil {
			return l, err
		}
		modes, err := r.ReadUnsigned(8)
		if err != nil {
			return l, err
		}
		specific, err := r.ReadUnsigned(8)
		if err != nil {
			return l, err
		}

		p.ERP = uint8(erp)
		p.Frequency = freq.ToFloat()
		p.PRF = uint16(prf)
		p.PulseWidth = pw.ToFloat()
		p.BurstLength = uint16(burst)
		p.ApplicableModes = uint8(modes)
		p.SystemSpecificData = uint8(specific)

		l.FundamentalParams = append(l.FundamentalParams, p)
	}

	return l, nil
}

func writeMode5BasicData(w *bitio.Writer, m dis.Mode5BasicData) {
	w.WriteUnsigned(1, boolBit(m.IsTransponder))
	if m.IsTransponder {
		t := m.Transponder
		w.WriteUnsigned(16, uint32(t.Status))
		w.WriteUnsigned(16, uint32(t.PIN))
		w.WriteUnsigned(16, uint32(t.MessageFormatsPresent))
		w.WriteUnsigned(16, uint32(t.EnhancedMode1))
		w.WriteUnsigned(16, uint32(t.NationalOrigin))
		w.WriteUnsigned(8, uint32(t.SupplementalData))
		w.WriteUnsigned(8, uint32(t.NavigationSource))
		w.WriteUnsigned(8, uint32(t.FigureOfMerit))
	} else {
		i := m.Interrogator
		w.WriteUnsigned(8, uint32(i.Status))
		w.WriteUnsigned(16, uint32(i.MessageFormatsPresent))
		records.WriteEntityID(w, i.InterrogatedEntityID)
	}
}

func readMode5BasicData(r *bitio.Reader) (dis.Mode5BasicData, error) {
	var m dis.Mode5BasicData

	transponder, err := r.ReadUnsigned(1)
	if err != nil {
		return m, err
	}
	m.IsTransponder = transponder != 0

	if m.IsTransponder {
		var t dis.Mode5TransponderBasicData

		status, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		pin, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		formats, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		enhanced, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		origin, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		supplemental, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}
		nav, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}
		fom, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}

		t.Status = uint16(status)
		t.PIN = uint16(pin)
		t.MessageFormatsPresent = uint16(formats)
		t.EnhancedMode1 = uint16(enhanced)
		t.NationalOrigin = uint16(origin)
		t.SupplementalData = uint8(supplemental)
		t.NavigationSource = uint8(nav)
		t.FigureOfMerit = uint8(fom)
		m.Transponder = t
	} else {
		var i dis.Mode5InterrogatorBasicData

		status, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}
		formats, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		i.Status = uint8(status)
		i.MessageFormatsPresent = uint16(formats)
		i.InterrogatedEntityID, err = records.ReadEntityID(r)
		if err != nil {
			return m, err
		}
		m.Interrogator = i
	}

	return m, nil
}

// writeIFFLayer3 encodes the Mode 5 Functional Data layer: the reporting
// simulation address, the interrogator/transponder basic data union,
// then any extension records.
func writeIFFLayer3(w *bitio.Writer, l dis.IFFLayer3) {
	varint.WriteUVINT16(w, varint.UVINT16(l.ReportingSite))
	varint.WriteUVINT16(w, varint.UVINT16(l.ReportingApplication))
	writeMode5BasicData(w, l.Mode5)
	writeIFFDataRecords(w, l.DataRecords)
}

func readIFFLayer3(r *bitio.Reader) (dis.IFFLayer3, error) {
	var l dis.IFFLayer3

	site, err := varint.ReadUVINT16(r)
	if err != nil {
		return l, err
	}
	app, err := varint.ReadUVINT16(r)
	if err != nil {
		return l, err
	}
	l.ReportingSite = uint16(site)
	l.ReportingApplication = uint16(app)

	l.Mode5, err = readMode5BasicData(r)
	if err != nil {
		return l, err
	}
	l.DataRecords, err = readIFFDataRecords(r)
	if err != nil {
		return l, err
	}

	return l, nil
}

func writeModeSBasicData(w *bitio.Writer, m dis.ModeSBasicData) {
	w.WriteUnsigned(1, boolBit(m.IsTransponder))
	if m.IsTransponder {
		t := m.Transponder
		w.WriteUnsigned(16, uint32(t.Status))
		varint.WriteUVINT8(w, varint.UVINT8(len(t.AircraftIdentification)))
		for i := 0; i < len(t.AircraftIdentification); i++ {
			w.WriteUnsigned(8, uint32(t.AircraftIdentification[i]))
		}
		w.WriteUnsigned(32, t.AircraftAddress)
		w.WriteUnsigned(8, uint32(t.AircraftIdentType))
		w.WriteUnsigned(8, uint32(t.SmartStatus))
		w.WriteUnsigned(8, uint32(t.Capability))
	} else {
		w.WriteUnsigned(16, uint32(m.Interrogator.Status))
	}
}

func readModeSBasicData(r *bitio.Reader) (dis.ModeSBasicData, error) {
	var m dis.ModeSBasicData

	transponder, err := r.ReadUnsigned(1)
	if err != nil {
		return m, err
	}
	m.IsTransponder = transponder != 0

	if m.IsTransponder {
		var t dis.ModeSTransponderBasicData

		status, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		t.Status = uint16(status)

		n, err := varint.ReadUVINT8(r)
		if err != nil {
			return m, err
		}
		id := make([]byte, n)
		for i := range id {
			b, err := r.ReadUnsigned(8)
			if err != nil {
				return m, err
			}
			id[i] = uint8(b)
		}
		t.AircraftIdentification = string(id)

		addr, err := r.ReadUnsigned(32)
		if err != nil {
			return m, err
		}
		identType, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}
		smart, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}
		capability, err := r.ReadUnsigned(8)
		if err != nil {
			return m, err
		}
		t.AircraftAddress = addr
		t.AircraftIdentType = uint8(identType)
		t.SmartStatus = uint8(smart)
		t.Capability = uint8(capability)
		m.Transponder = t
	} else {
		status, err := r.ReadUnsigned(16)
		if err != nil {
			return m, err
		}
		m.Interrogator.Status = uint16(status)
	}

	return m, nil
}

// writeIFFLayer4 encodes the Mode S Functional Data layer.
func writeIFFLayer4(w *bitio.Writer, l dis.IFFLayer4) {
	varint.WriteUVINT16(w, varint.UVINT16(l.ReportingSite))
	varint.WriteUVINT16(w, varint.UVINT16(l.ReportingApplication))
	writeModeSBasicData(w, l.ModeS)
	writeIFFDataRecords(w, l.DataRecords)
}

func readIFFLayer4(r *bitio.Reader) (dis.IFFLayer4, error) {
	var l dis.IFFLayer4

	site, err := varint.ReadUVINT16(r)
	if err != nil {
		return l, err
	}
	app, err := varint.ReadUVINT16(r)
	if err != nil {
		return l, err
	}
	l.ReportingSite = uint16(site)
	l.ReportingApplication = uint16(app)

	l.ModeS, err = readModeSBasicData(r)
	if err != nil {
		return l, err
	}
	l.DataRecords, err = readIFFDataRecords(r)
	if err != nil {
		return l, err
	}

	return l, nil
}

// writeIFFLayer5 encodes the Data Communications layer.
func writeIFFLayer5(w *bitio.Writer, l dis.IFFLayer5) {
	varint.WriteUVINT16(w, varint.UVINT16(l.ReportingSite))
	varint.WriteUVINT16(w, varint.UVINT16(l.ReportingApplication))
	w.WriteUnsigned(8, uint32(l.ApplicableLayers))
	w.WriteUnsigned(8, uint32(l.DataCategory))
	writeIFFDataRecords(w, l.DataRecords)
}

func readIFFLayer5(r *bitio.Reader) (dis.IFFLayer5, error) {
	var l dis.IFFLayer5

	site, err := varint.ReadUVINT16(r)
	if err != nil {
		return l, err
	}
	app, err := varint.ReadUVINT16(r)
	if err != nil {
		return l, err
	}
	l.ReportingSite = uint16(site)
	l.ReportingApplication = uint16(app)

	layers, err := r.ReadUnsigned(8)
	if err != nil {
		return l, err
	}
	category, err := r.ReadUnsigned(8)
	if err != nil {
		return l, err
	}
	l.ApplicableLayers = uint8(layers)
	l.DataCategory = uint8(category)

	l.DataRecords, err = readIFFDataRecords(r)
	if err != nil {
		return l, err
	}

	return l, nil
}

// ReadIFF is the inverse of WriteIFF. The returned bool reports a §7
// StateMiss for system_id, the only stateful base-layer field.
func ReadIFF(r *bitio.Reader, dec *state.DecoderState, now time.Time) (dis.IFF, bool, error) {
	var f dis.IFF

	originator, err := records.ReadEntityID(r)
	if err != nil {
		return f, false, err
	}
	f.EmittingEntityID = originator

	fullBit, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	full := fullBit != 0

	hasEvent, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	f.HasEventID = hasEvent != 0
	if f.HasEventID {
		f.EventID, err = records.ReadEntityID(r)
		if err != nil {
			return f, false, err
		}
	}

	hasAntenna, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	f.HasRelativeAntenna = hasAntenna != 0
	if f.HasRelativeAntenna {
		unitBit, err := r.ReadUnsigned(1)
		if err != nil {
			return f, false, err
		}
		f.RelativeAntenna, err = records.ReadEntityCoordinateVector(r, records.LinearUnit(unitBit))
		if err != nil {
			return f, false, err
		}
	}

	systemIDPresent, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}

	snapshot, haveSnapshot := dec.IFF(originator)
	if systemIDPresent != 0 {
		f.SystemID, err = readSystemID(r)
		if err != nil {
			return f, false, err
		}
	} else if haveSnapshot {
		f.SystemID = snapshot.SystemID
	}

	designator, err := r.ReadUnsigned(8)
	if err != nil {
		return f, false, err
	}
	f.SystemDesignator = uint8(designator)

	hasSpecific, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	f.HasSystemSpecific = hasSpecific != 0
	if f.HasSystemSpecific {
		v, err := r.ReadUnsigned(8)
		if err != nil {
			return f, false, err
		}
		f.SystemSpecificData = uint8(v)
	}

	f.FundamentalOperational, err = readFundamentalOperationalData(r)
	if err != nil {
		return f, false, err
	}

	hasLayer2, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	if hasLayer2 != 0 {
		if _, err := records.ReadLayerHeader(r); err != nil {
			return f, false, err
		}
		layer, err := readIFFLayer2(r)
		if err != nil {
			return f, false, err
		}
		f.Layer2 = &layer
	}

	hasLayer3, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	if hasLayer3 != 0 {
		if _, err := records.ReadLayerHeader(r); err != nil {
			return f, false, err
		}
		layer, err := readIFFLayer3(r)
		if err != nil {
			return f, false, err
		}
		f.Layer3 = &layer
	}

	hasLayer4, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	if hasLayer4 != 0 {
		if _, err := records.ReadLayerHeader(r); err != nil {
			return f, false, err
		}
		layer, err := readIFFLayer4(r)
		if err != nil {
			return f, false, err
		}
		f.Layer4 = &layer
	}

	hasLayer5, err := r.ReadUnsigned(1)
	if err != nil {
		return f, false, err
	}
	if hasLayer5 != 0 {
		if _, err := records.ReadLayerHeader(r); err != nil {
			return f, false, err
		}
		layer, err := readIFFLayer5(r)
		if err != nil {
			return f, false, err
		}
		f.Layer5 = &layer
	}

	if full {
		dec.PutIFF(originator, state.IFFSnapshot{SystemID: f.SystemID}, now)
	}

	return f, !full && !haveSnapshot, nil
}
