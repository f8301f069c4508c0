package cdis

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/varint"
)

// WriteCollision encodes c's compressed body (§4.5).
func WriteCollision(w *bitio.Writer, c dis.Collision) {
	records.WriteEntityID(w, c.IssuingEntityID)
	records.WriteEntityID(w, c.CollidingEntityID)
	records.WriteEntityID(w, c.EventID)
	varint.WriteUVINT8(w, varint.UVINT8(c.CollisionType))
	records.WriteLinearVelocity(w, c.Velocity)
	w.WriteUnsigned(32, math.Float32bits(c.Mass))

	unit := records.EncodeLinearUnit(c.Location)
	w.WriteUnsigned(1, uint32(unit))
	records.WriteEntityCoordinateVector(w, c.Location, unit)
}

// ReadCollision is the inverse of WriteCollision.
func ReadCollision(r *bitio.Reader) (dis.Collision, error) {
	var c dis.Collision

	var err error
	c.IssuingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.CollidingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.EventID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	ct, err := varint.ReadUVINT8(r)
	if err != nil {
		return c, err
	}
	c.CollisionType = dis.CollisionType(ct)

	c.Velocity, err = records.ReadLinearVelocity(r)
	if err != nil {
		return c, err
	}
	mass, err := r.ReadUnsigned(32)
	if err != nil {
		return c, err
	}
	c.Mass = math.Float32frombits(mass)

	unitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return c, err
	}
	c.Location, err = records.ReadEntityCoordinateVector(r, records.LinearUnit(unitBit))
	if err != nil {
		return c, err
	}

	return c, nil
}

// WriteCollisionElastic encodes c's compressed body, the richer contact-
// velocity/spin variant of Collision (§4.5).
func WriteCollisionElastic(w *bitio.Writer, c dis.CollisionElastic) {
	records.WriteEntityID(w, c.IssuingEntityID)
	records.WriteEntityID(w, c.CollidingEntityID)
	records.WriteEntityID(w, c.EventID)
	records.WriteLinearVelocity(w, c.ContactVelocity)
	w.WriteUnsigned(32, math.Float32bits(c.Mass))

	locUnit := records.EncodeLinearUnit(c.Location)
	w.WriteUnsigned(1, uint32(locUnit))
	records.WriteEntityCoordinateVector(w, c.Location, locUnit)

	records.WriteLinearVelocity(w, c.IntermediateVel)
	varint.WriteUVINT8(w, varint.UVINT8(c.CollisionType))
}

// ReadCollisionElastic is the inverse of WriteCollisionElastic.
func ReadCollisionElastic(r *bitio.Reader) (dis.CollisionElastic, error) {
	var c dis.CollisionElastic

	var err error
	c.IssuingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.CollidingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.EventID, err = records.ReadEntityID(r)
	if err != nil {
		return c, err
	}
	c.ContactVelocity, err = records.ReadLinearVelocity(r)
	if err != nil {
		return c, err
	}
	mass, err := r.ReadUnsigned(32)
	if err != nil {
		return c, err
	}
	c.Mass = math.Float32frombits(mass)

	locUnitBit, err := r.ReadUnsigned(1)
	if err != nil {
		return c, err
	}
	c.Location, err = records.ReadEntityCoordinateVector(r, records.LinearUnit(locUnitBit))
	if err != nil {
		return c, err
	}

	c.IntermediateVel, err = records.ReadLinearVelocity(r)
	if err != nil {
		return c, err
	}
	ct, err := varint.ReadUVINT8(r)
	if err != nil {
		return c, err
	}
	c.CollisionType = dis.CollisionType(ct)

	return c, nil
}
