// Package dis implements the legacy, byte-aligned Distributed
// Interactive Simulation wire format (§6 "Legacy DIS wire format"): the
// 12-byte header and the PDU bodies this codec supports.
package dis

// PduKind is the legacy DIS PDU type octet (§6 "Supported PDU types").
type PduKind uint8

const (
	KindEntityState             PduKind = 1
	KindFire                    PduKind = 2
	KindDetonation              PduKind = 3
	KindCollision               PduKind = 4
	KindCreateEntity            PduKind = 11
	KindRemoveEntity            PduKind = 12
	KindStartResume             PduKind = 13
	KindStopFreeze              PduKind = 14
	KindAcknowledge             PduKind = 15
	KindActionRequest           PduKind = 16
	KindActionResponse          PduKind = 17
	KindDataQuery               PduKind = 18
	KindSetData                 PduKind = 19
	KindData                    PduKind = 20
	KindEventReport             PduKind = 21
	KindComment                 PduKind = 22
	KindElectromagneticEmission PduKind = 23
	KindDesignator              PduKind = 24
	KindTransmitter             PduKind = 25
	KindSignal                  PduKind = 26
	KindReceiver                PduKind = 27
	KindIFF                     PduKind = 28
	KindCollisionElastic        PduKind = 66
	KindEntityStateUpdate       PduKind = 67
	KindAttribute               PduKind = 70
)

func (k PduKind) String() string {
	switch k {
	case KindEntityState:
		return "EntityState"
	case KindFire:
		return "Fire"
	case KindDetonation:
		return "Detonation"
	case KindCollision:
		return "Collision"
	case KindCreateEntity:
		return "CreateEntity"
	case KindRemoveEntity:
		return "RemoveEntity"
	case KindStartResume:
		return "StartResume"
	case KindStopFreeze:
		return "StopFreeze"
	case KindAcknowledge:
		return "Acknowledge"
	case KindActionRequest:
		return "ActionRequest"
	case KindActionResponse:
		return "ActionResponse"
	case KindDataQuery:
		return "DataQuery"
	case KindSetData:
		return "SetData"
	case KindData:
		return "Data"
	case KindEventReport:
		return "EventReport"
	case KindComment:
		return "Comment"
	case KindElectromagneticEmission:
		return "ElectromagneticEmission"
	case KindDesignator:
		return "Designator"
	case KindTransmitter:
		return "Transmitter"
	case KindSignal:
		return "Signal"
	case KindReceiver:
		return "Receiver"
	case KindIFF:
		return "IFF"
	case KindEntityStateUpdate:
		return "EntityStateUpdate"
	case KindCollisionElastic:
		return "CollisionElastic"
	case KindAttribute:
		return "Attribute"
	default:
		return "Unknown"
	}
}

// Supported reports whether k is one of the PDU kinds this codec
// implements (§6 "the encoder/decoder must implement, and reject others
// as unsupported").
func (k PduKind) Supported() bool {
	return k.String() != "Unknown"
}

// ProtocolFamily groups PDU kinds the way the legacy header's protocol
// family octet does. Only the families this codec touches are named;
// anything else rides through as FamilyOther.
type ProtocolFamily uint8

const (
	FamilyOther               ProtocolFamily = 0
	FamilyEntityInformation   ProtocolFamily = 1
	FamilyWarfare             ProtocolFamily = 2
	FamilyLogisticsManagement ProtocolFamily = 3
	FamilyRadioCommunications ProtocolFamily = 4
	FamilySimulationManagement ProtocolFamily = 5
	FamilyDistributedEmission ProtocolFamily = 6
)
