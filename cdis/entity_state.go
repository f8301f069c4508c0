package cdis

import (
	"time"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/state"
	"github.com/distsim/cdis-codec/varint"
)

// entityStateFields indexes the 9-bit fields-present bitmap that follows
// Entity State's full-update flag (§4.4.1, §3 "Fields-present bitmap").
// Order follows §4.4.1's Entity State field list (linear velocity before
// location), not the field order of state.EntityStateSnapshot.
const (
	fieldEntityType = iota
	fieldAlternateEntityType
	fieldLinearVelocity
	fieldLocation
	fieldOrientation
	fieldAppearance
	fieldDeadReckoning
	fieldMarking
	fieldCapabilities
	entityStateFieldCount
)

// WriteEntityState encodes e's compressed body, consulting enc to decide
// full vs. partial (§4.4 encoder state machine) and writing the decision
// as the leading full-update flag.
//
// Lacking per-field history — the encoder table keeps only a last-send
// timestamp (§3) — a partial update omits every optional stateful field
// it is permitted to omit; the one exception is alternate entity type,
// forced present when opts.UseGuise is set (§6 "use_guise ... always
// included ... regardless of default").
func WriteEntityState(w *bitio.Writer, e dis.EntityState, enc *state.EncoderState, opts Options, now time.Time) bool {
	records.WriteEntityID(w, e.EntityID)

	decision := enc.Decide(dis.KindEntityState, e.EntityID, now, opts.Heartbeats, opts.forceFullUpdate())
	w.WriteUnsigned(1, boolBit(decision.FullUpdate))

	altUnit := records.EncodeAltitudeUnit(e.Location.AltMeters)
	w.WriteUnsigned(1, uint32(altUnit))

	present := [entityStateFieldCount]bool{}
	if decision.FullUpdate {
		for i := range present {
			present[i] = true
		}
	} else if opts.UseGuise {
		present[fieldAlternateEntityType] = true
	}
	for _, p := range present {
		w.WriteUnsigned(1, boolBit(p))
	}

	varint.WriteUVINT8(w, varint.UVINT8(e.ForceID))
	varint.WriteUVINT8(w, varint.UVINT8(len(e.ArticulationParams)))
	for _, vp := range e.ArticulationParams {
		records.WriteVariableParameter(w, vp)
	}

	if present[fieldEntityType] {
		records.WriteEntityType(w, e.EntityType)
	}
	if present[fieldAlternateEntityType] {
		records.WriteEntityType(w, e.AlternateEntityType)
	}
	if present[fieldLinearVelocity] {
		records.WriteLinearVelocity(w, e.LinearVelocity)
	}
	if present[fieldLocation] {
		records.WriteWorldCoordinate(w, e.Location, altUnit)
	}
	if present[fieldOrientation] {
		records.WriteOrientation(w, e.Orientation)
	}
	if present[fieldAppearance] {
		w.WriteUnsigned(32, e.Appearance)
	}
	if present[fieldDeadReckoning] {
		varint.WriteUVINT8(w, varint.UVINT8(e.DeadReckoningAlgo))
		records.WriteLinearAcceleration(w, e.DeadReckoningAccel)
		records.WriteAngularVelocity(w, e.DeadReckoningAngular)
	}
	if present[fieldMarking] {
		records.WriteMarking(w, e.Marking)
	}
	if present[fieldCapabilities] {
		varint.WriteUVINT32(w, varint.UVINT32(e.Capabilities))
	}

	return decision.FullUpdate
}

// ReadEntityState decodes a compressed Entity State body, filling fields
// omitted by a partial update from dec's cached snapshot for the
// originator (§3 "absent fields are resolved against the decoder state").
// The returned bool reports a §7 StateMiss: a partial update arrived for
// an originator dec has never seen a full update from, so every omitted
// field resolved to its zero value rather than a cached one.
func ReadEntityState(r *bitio.Reader, dec *state.DecoderState, now time.Time) (dis.EntityState, bool, error) {
	var e dis.EntityState

	originator, err := records.ReadEntityID(r)
	if err != nil {
		return e, false, err
	}
	e.EntityID = originator

	fullBit, err := r.ReadUnsigned(1)
	if err != nil {
		return e, false, err
	}
	full := fullBit != 0

	altUnitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return e, false, err
	}
	altUnit := records.AltitudeUnit(altUnitBit)

	var present [entityStateFieldCount]bool
	for i := range present {
		bit, err := r.ReadUnsigned(1)
		if err != nil {
			return e, false, err
		}
		present[i] = bit != 0
	}

	forceID, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, false, err
	}
	e.ForceID = dis.ForceID(forceID)

	numParams, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, false, err
	}
	for range numParams {
		vp, err := records.ReadVariableParameter(r)
		if err != nil {
			return e, false, err
		}
		e.ArticulationParams = append(e.ArticulationParams, vp)
	}

	snapshot, haveSnapshot := dec.EntityState(originator)

	if present[fieldEntityType] {
		e.EntityType, err = records.ReadEntityType(r)
	} else if haveSnapshot {
		e.EntityType = snapshot.EntityType
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldAlternateEntityType] {
		e.AlternateEntityType, err = records.ReadEntityType(r)
	} else if haveSnapshot {
		e.AlternateEntityType = snapshot.AlternateEntityType
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldLinearVelocity] {
		e.LinearVelocity, err = records.ReadLinearVelocity(r)
	} else if haveSnapshot {
		e.LinearVelocity = snapshot.LinearVelocity
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldLocation] {
		e.Location, err = records.ReadWorldCoordinate(r, altUnit)
	} else if haveSnapshot {
		e.Location = snapshot.Location
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldOrientation] {
		e.Orientation, err = records.ReadOrientation(r)
	} else if haveSnapshot {
		e.Orientation = snapshot.Orientation
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldAppearance] {
		var v uint32
		v, err = r.ReadUnsigned(32)
		e.Appearance = v
	} else if haveSnapshot {
		e.Appearance = snapshot.Appearance
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldDeadReckoning] {
		algo, aerr := varint.ReadUVINT8(r)
		if aerr != nil {
			return e, false, aerr
		}
		e.DeadReckoningAlgo = uint8(algo)
		e.DeadReckoningAccel, err = records.ReadLinearAcceleration(r)
		if err != nil {
			return e, false, err
		}
		e.DeadReckoningAngular, err = records.ReadAngularVelocity(r)
		if err != nil {
			return e, false, err
		}
	} else if haveSnapshot {
		e.DeadReckoningAlgo = snapshot.DeadReckoningAlgo
		e.DeadReckoningAccel = snapshot.DeadReckoningAccel
		e.DeadReckoningAngular = snapshot.DeadReckoningAngular
	}

	if present[fieldMarking] {
		e.Marking, err = records.ReadMarking(r)
	} else if haveSnapshot {
		e.Marking = snapshot.Marking
	}
	if err != nil {
		return e, false, err
	}

	if present[fieldCapabilities] {
		var v varint.UVINT32
		v, err = varint.ReadUVINT32(r)
		e.Capabilities = uint32(v)
	} else if haveSnapshot {
		e.Capabilities = snapshot.Capabilities
	}
	if err != nil {
		return e, false, err
	}

	if full {
		dec.PutEntityState(originator, state.EntityStateSnapshot{
			EntityType:           e.EntityType,
			AlternateEntityType:  e.AlternateEntityType,
			Location:             e.Location,
			Orientation:          e.Orientation,
			LinearVelocity:       e.LinearVelocity,
			Appearance:           e.Appearance,
			DeadReckoningAlgo:    e.DeadReckoningAlgo,
			DeadReckoningAccel:   e.DeadReckoningAccel,
			DeadReckoningAngular: e.DeadReckoningAngular,
			Marking:              e.Marking,
			Capabilities:         e.Capabilities,
		}, now)
	}

	return e, !full && !haveSnapshot, nil
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}
