package cdis

import (
	"math"
	"time"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/state"
	"github.com/distsim/cdis-codec/varint"
)

// Designator's fields-present bitmap (§4.4.2). spot-wrt-designated-entity
// and spot location are tracked as separate bits even though §3's
// decoder-state prose folds them under one "spot location" mention; this
// codec's DesignatorSnapshot carries both, so splitting the bits loses
// nothing and lets either be omitted independently.
const (
	desigFieldDesignatedEntityID = iota
	desigFieldSystemName
	desigFieldCode
	desigFieldPower
	desigFieldWavelength
	desigFieldSpotWrtDesignated
	desigFieldSpotLocation
	desigFieldDeadReckoningAlgo
	desigFieldLinearAcceleration
	designatorFieldCount
)

// WriteDesignator encodes d's compressed body. See WriteEntityState's
// doc comment for the partial-update omission strategy this codec
// shares.
func WriteDesignator(w *bitio.Writer, d dis.Designator, enc *state.EncoderState, opts Options, now time.Time) bool {
	records.WriteEntityID(w, d.DesignatingEntityID)

	decision := enc.Decide(dis.KindDesignator, d.DesignatingEntityID, now, opts.Heartbeats, opts.forceFullUpdate())
	w.WriteUnsigned(1, boolBit(decision.FullUpdate))

	spotUnit := records.EncodeLinearUnit(d.SpotWrtDesignated)
	altUnit := records.EncodeAltitudeUnit(d.SpotLocation.AltMeters)
	w.WriteUnsigned(1, uint32(spotUnit))
	w.WriteUnsigned(1, uint32(altUnit))

	present := [designatorFieldCount]bool{}
	if decision.FullUpdate {
		for i := range present {
			present[i] = true
		}
	}
	for _, p := range present {
		w.WriteUnsigned(1, boolBit(p))
	}

	if present[desigFieldDesignatedEntityID] {
		records.WriteEntityID(w, d.DesignatedEntityID)
	}
	if present[desigFieldSystemName] {
		w.WriteUnsigned(14, uint32(d.CodeName))
	}
	if present[desigFieldCode] {
		varint.WriteUVINT16(w, varint.UVINT16(d.Code))
	}
	if present[desigFieldPower] {
		varint.WriteUVINT32(w, varint.UVINT32(math.Float32bits(d.Power)))
	}
	if present[desigFieldWavelength] {
		varint.WriteUVINT32(w, varint.UVINT32(math.Float32bits(d.Wavelength)))
	}
	if present[desigFieldSpotWrtDesignated] {
		records.WriteEntityCoordinateVector(w, d.SpotWrtDesignated, spotUnit)
	}
	if present[desigFieldSpotLocation] {
		records.WriteWorldCoordinate(w, d.SpotLocation, altUnit)
	}
	if present[desigFieldDeadReckoningAlgo] {
		varint.WriteUVINT8(w, varint.UVINT8(d.DeadReckoningAlgo))
	}
	if present[desigFieldLinearAcceleration] {
		records.WriteLinearAcceleration(w, d.LinearAcceleration)
	}

	return decision.FullUpdate
}

// ReadDesignator is the inverse of WriteDesignator, resolving omitted
// fields against dec's cached snapshot. The returned bool reports a §7
// StateMiss, the same convention ReadEntityState's doc comment explains.
func ReadDesignator(r *bitio.Reader, dec *state.DecoderState, now time.Time) (dis.Designator, bool, error) {
	var d dis.Designator

	originator, err := records.ReadEntityID(r)
	if err != nil {
		return d, false, err
	}
	d.DesignatingEntityID = originator

	fullBit, err := r.ReadUnsigned(1)
	if err != nil {
		return d, false, err
	}
	full := fullBit != 0

	spotUnitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return d, false, err
	}
	altUnitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return d, false, err
	}
	spotUnit := records.LinearUnit(spotUnitBit)
	altUnit := records.AltitudeUnit(altUnitBit)

	var present [designatorFieldCount]bool
	for i := range present {
		bit, err := r.ReadUnsigned(1)
		if err != nil {
			return d, false, err
		}
		present[i] = bit != 0
	}

	snapshot, haveSnapshot := dec.Designator(originator)

	if present[desigFieldDesignatedEntityID] {
		d.DesignatedEntityID, err = records.ReadEntityID(r)
	} else if haveSnapshot {
		d.DesignatedEntityID = snapshot.DesignatedEntityID
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldSystemName] {
		var v uint32
		v, err = r.ReadUnsigned(14)
		d.CodeName = uint16(v)
	} else if haveSnapshot {
		d.CodeName = snapshot.SystemName
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldCode] {
		var v varint.UVINT16
		v, err = varint.ReadUVINT16(r)
		d.Code = uint16(v)
	} else if haveSnapshot {
		d.Code = snapshot.Code
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldPower] {
		var v varint.UVINT32
		v, err = varint.ReadUVINT32(r)
		d.Power = math.Float32frombits(uint32(v))
	} else if haveSnapshot {
		d.Power = snapshot.Power
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldWavelength] {
		var v varint.UVINT32
		v, err = varint.ReadUVINT32(r)
		d.Wavelength = math.Float32frombits(uint32(v))
	} else if haveSnapshot {
		d.Wavelength = snapshot.Wavelength
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldSpotWrtDesignated] {
		d.SpotWrtDesignated, err = records.ReadEntityCoordinateVector(r, spotUnit)
	} else if haveSnapshot {
		d.SpotWrtDesignated = snapshot.SpotWrtDesignated
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldSpotLocation] {
		d.SpotLocation, err = records.ReadWorldCoordinate(r, altUnit)
	} else if haveSnapshot {
		d.SpotLocation = snapshot.SpotLocation
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldDeadReckoningAlgo] {
		var v varint.UVINT8
		v, err = varint.ReadUVINT8(r)
		d.DeadReckoningAlgo = uint8(v)
	} else if haveSnapshot {
		d.DeadReckoningAlgo = snapshot.DeadReckoningAlgo
	}
	if err != nil {
		return d, false, err
	}

	if present[desigFieldLinearAcceleration] {
		d.LinearAcceleration, err = records.ReadLinearAcceleration(r)
	} else if haveSnapshot {
		d.LinearAcceleration = snapshot.LinearAcceleration
	}
	if err != nil {
		return d, false, err
	}

	if full {
		dec.PutDesignator(originator, state.DesignatorSnapshot{
			DesignatedEntityID: d.DesignatedEntityID,
			SystemName:         d.CodeName,
			Code:               d.Code,
			Power:              d.Power,
			Wavelength:         d.Wavelength,
			SpotWrtDesignated:  d.SpotWrtDesignated,
			SpotLocation:       d.SpotLocation,
			DeadReckoningAlgo:  d.DeadReckoningAlgo,
			LinearAcceleration: d.LinearAcceleration,
		}, now)
	}

	return d, !full && !haveSnapshot, nil
}
