package dis

import "github.com/distsim/cdis-codec/records"

// CollisionType distinguishes inelastic (default) from elastic collision
// semantics, opaque beyond its numeric value (§1).
type CollisionType uint8

// Collision is the legacy Collision PDU body (§4.5).
type Collision struct {
	IssuingEntityID   records.EntityID
	CollidingEntityID records.EntityID
	EventID           records.EventID
	CollisionType     CollisionType
	Velocity          records.Vector3
	Mass              float32
	Location          records.Vector3
}

func WriteCollision(buf []byte, c Collision) []byte {
	buf = records.WriteDisEntityID(buf, c.IssuingEntityID)
	buf = records.WriteDisEntityID(buf, c.CollidingEntityID)
	buf = records.WriteDisEntityID(buf, c.EventID)
	buf = append(buf, uint8(c.CollisionType))
	buf = records.WriteDisFloat3(buf, c.Velocity)
	buf = engine.AppendUint32(buf, math32Bits(c.Mass))
	buf = records.WriteDisFloat3(buf, c.Location)

	return buf
}

func ReadCollision(buf []byte, off int) (Collision, int) {
	var c Collision

	c.IssuingEntityID, off = records.ReadDisEntityID(buf, off)
	c.CollidingEntityID, off = records.ReadDisEntityID(buf, off)
	c.EventID, off = records.ReadDisEntityID(buf, off)
	c.CollisionType = CollisionType(buf[off])
	off++
	c.Velocity, off = records.ReadDisFloat3(buf, off)
	c.Mass = math32FromBits(engine.Uint32(buf[off:]))
	off += 4
	c.Location, off = records.ReadDisFloat3(buf, off)

	return c, off
}

// CollisionElastic is the legacy Collision-Elastic PDU body, a richer
// variant of Collision carrying contact velocity and spin (§4.5).
type CollisionElastic struct {
	IssuingEntityID   records.EntityID
	CollidingEntityID records.EntityID
	EventID           records.EventID
	ContactVelocity   records.Vector3
	Mass              float32
	Location          records.Vector3
	IntermediateVel   records.Vector3
	CollisionType     CollisionType
}

func WriteCollisionElastic(buf []byte, c CollisionElastic) []byte {
	buf = records.WriteDisEntityID(buf, c.IssuingEntityID)
	buf = records.WriteDisEntityID(buf, c.CollidingEntityID)
	buf = records.WriteDisEntityID(buf, c.EventID)
	buf = append(buf, 0, 0) // padding where the legacy layout reserves 16 bits
	buf = records.WriteDisFloat3(buf, c.ContactVelocity)
	buf = engine.AppendUint32(buf, math32Bits(c.Mass))
	buf = records.WriteDisFloat3(buf, c.Location)
	buf = records.WriteDisFloat3(buf, c.IntermediateVel)
	buf = append(buf, uint8(c.CollisionType), 0, 0, 0)

	return buf
}

func ReadCollisionElastic(buf []byte, off int) (CollisionElastic, int) {
	var c CollisionElastic

	c.IssuingEntityID, off = records.ReadDisEntityID(buf, off)
	c.CollidingEntityID, off = records.ReadDisEntityID(buf, off)
	c.EventID, off = records.ReadDisEntityID(buf, off)
	off += 2
	c.ContactVelocity, off = records.ReadDisFloat3(buf, off)
	c.Mass = math32FromBits(engine.Uint32(buf[off:]))
	off += 4
	c.Location, off = records.ReadDisFloat3(buf, off)
	c.IntermediateVel, off = records.ReadDisFloat3(buf, off)
	c.CollisionType = CollisionType(buf[off])
	off += 4

	return c, off
}
