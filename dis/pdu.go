package dis

// PDU is the tagged union of every legacy PDU body this codec supports
// (§9 "Tagged variants": "one sum type with one variant per PDU kind;
// each variant carries its typed body; a discriminant octet on the wire
// selects the variant"). Kind selects which single field is populated;
// dispatch on Kind lives in one place only, the codec package's driver.
type PDU struct {
	Kind PduKind

	EntityState             EntityState
	Fire                     Fire
	Detonation               Detonation
	Collision                Collision
	CollisionElastic         CollisionElastic
	CreateEntity             CreateEntity
	StartResume              StartResume
	StopFreeze               StopFreeze
	Acknowledge              Acknowledge
	ActionRequest            ActionRequest
	ActionResponse           ActionResponse
	DataQuery                DataQuery
	SetData                  SetData
	Data                     Data
	EventReport              EventReport
	Comment                  Comment
	ElectromagneticEmission  ElectromagneticEmission
	Designator               Designator
	Transmitter              Transmitter
	Signal                   Signal
	Receiver                 Receiver
	IFF                      IFF
	EntityStateUpdate        EntityStateUpdate
	Attribute                Attribute
}
