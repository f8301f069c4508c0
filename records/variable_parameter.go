package records

import (
	"fmt"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdisfloat"
)

// VariableParameterKind is the 3-bit record-type selector (§4.3
// "Variable parameter record").
type VariableParameterKind uint8

const (
	VPArticulatedPart VariableParameterKind = iota
	VPAttachedPart
	VPEntitySeparation
	VPEntityType
	VPEntityAssociation
)

// VariableParameter is a tagged union over the five record shapes; only
// the field matching Kind is meaningful.
type VariableParameter struct {
	Kind VariableParameterKind

	// Articulated part.
	ChangeIndicator uint8
	AttachmentID    uint16
	ParameterType   uint32
	ParameterValue  cdisfloat.Float

	// Attached part.
	Detached bool
	PartType EntityType

	// Entity separation.
	ReasonCode     uint8
	StationCode    uint8
	ParentEntityID EntityID
	StationName    uint8
	StationNumber  uint16

	// Entity type (reuses PartType above).

	// Entity association.
	AssociationStatus  uint8
	AssociationType    uint8
	AssociatedEntityID EntityID
	AssociatedLocation uint8
	PhysicalConnection uint8
	GroupMemberType    uint8
	GroupNumber        uint16
}

// WriteVariableParameter writes the 1-bit compressed flag (always set),
// the 3-bit kind selector, and the kind-specific payload.
func WriteVariableParameter(w *bitio.Writer, p VariableParameter) error {
	w.WriteUnsigned(1, 1)
	w.WriteUnsigned(3, uint32(p.Kind))

	switch p.Kind {
	case VPArticulatedPart:
		w.WriteUnsigned(8, uint32(p.ChangeIndicator))
		w.WriteUnsigned(10, uint32(p.AttachmentID))
		w.WriteUnsigned(14, p.ParameterType)
		cdisfloat.Write(w, p.ParameterValue)
	case VPAttachedPart:
		w.WriteUnsigned(1, boolBit(p.Detached))
		w.WriteUnsigned(10, uint32(p.AttachmentID))
		w.WriteUnsigned(11, p.ParameterType)
		WriteEntityType(w, p.PartType)
	case VPEntitySeparation:
		w.WriteUnsigned(3, uint32(p.ReasonCode))
		w.WriteUnsigned(3, uint32(p.StationCode))
		WriteEntityID(w, p.ParentEntityID)
		w.WriteUnsigned(6, uint32(p.StationName))
		w.WriteUnsigned(12, uint32(p.StationNumber))
	case VPEntityType:
		w.WriteUnsigned(1, uint32(p.ChangeIndicator)&1)
		WriteEntityType(w, p.PartType)
	case VPEntityAssociation:
		w.WriteUnsigned(1, uint32(p.ChangeIndicator)&1)
		w.WriteUnsigned(4, uint32(p.AssociationStatus))
		w.WriteUnsigned(8, uint32(p.AssociationType))
		WriteEntityID(w, p.AssociatedEntityID)
		w.WriteUnsigned(6, uint32(p.AssociatedLocation))
		w.WriteUnsigned(5, uint32(p.PhysicalConnection))
		w.WriteUnsigned(4, uint32(p.GroupMemberType))
		w.WriteUnsigned(16, uint32(p.GroupNumber))
	default:
		return fmt.Errorf("records: unknown variable parameter kind %d", p.Kind)
	}

	return nil
}

// ReadVariableParameter is the inverse of WriteVariableParameter. The
// leading compressed-flag bit is consumed and discarded; every record on
// the wire is compressed by construction.
func ReadVariableParameter(r *bitio.Reader) (VariableParameter, error) {
	if _, err := r.ReadUnsigned(1); err != nil {
		return VariableParameter{}, err
	}
	kindBits, err := r.ReadUnsigned(3)
	if err != nil {
		return VariableParameter{}, err
	}

	p := VariableParameter{Kind: VariableParameterKind(kindBits)}

	switch p.Kind {
	case VPArticulatedPart:
		ci, err := r.ReadUnsigned(8)
		if err != nil {
			return p, err
		}
		attach, err := r.ReadUnsigned(10)
		if err != nil {
			return p, err
		}
		paramType, err := r.ReadUnsigned(14)
		if err != nil {
			return p, err
		}
		value, err := cdisfloat.Read(r, cdisfloat.ParameterValueSpec)
		if err != nil {
			return p, err
		}
		p.ChangeIndicator = uint8(ci)
		p.AttachmentID = uint16(attach)
		p.ParameterType = paramType
		p.ParameterValue = value
	case VPAttachedPart:
		detached, err := r.ReadUnsigned(1)
		if err != nil {
			return p, err
		}
		attach, err := r.ReadUnsigned(10)
		if err != nil {
			return p, err
		}
		paramType, err := r.ReadUnsigned(11)
		if err != nil {
			return p, err
		}
		partType, err := ReadEntityType(r)
		if err != nil {
			return p, err
		}
		p.Detached = detached != 0
		p.AttachmentID = uint16(attach)
		p.ParameterType = paramType
		p.PartType = partType
	case VPEntitySeparation:
		reason, err := r.ReadUnsigned(3)
		if err != nil {
			return p, err
		}
		station, err := r.ReadUnsigned(3)
		if err != nil {
			return p, err
		}
		parent, err := ReadEntityID(r)
		if err != nil {
			return p, err
		}
		name, err := r.ReadUnsigned(6)
		if err != nil {
			return p, err
		}
		number, err := r.ReadUnsigned(12)
		if err != nil {
			return p, err
		}
		p.ReasonCode = uint8(reason)
		p.StationCode = uint8(station)
		p.ParentEntityID = parent
		p.StationName = uint8(name)
		p.StationNumber = uint16(number)
	case VPEntityType:
		ci, err := r.ReadUnsigned(1)
		if err != nil {
			return p, err
		}
		partType, err := ReadEntityType(r)
		if err != nil {
			return p, err
		}
		p.ChangeIndicator = uint8(ci)
		p.PartType = partType
	case VPEntityAssociation:
		ci, err := r.ReadUnsigned(1)
		if err != nil {
			return p, err
		}
		status, err := r.ReadUnsigned(4)
		if err != nil {
			return p, err
		}
		assocType, err := r.ReadUnsigned(8)
		if err != nil {
			return p, err
		}
		entity, err := ReadEntityID(r)
		if err != nil {
			return p, err
		}
		loc, err := r.ReadUnsigned(6)
		if err != nil {
			return p, err
		}
		conn, err := r.ReadUnsigned(5)
		if err != nil {
			return p, err
		}
		groupType, err := r.ReadUnsigned(4)
		if err != nil {
			return p, err
		}
		groupNumber, err := r.ReadUnsigned(16)
		if err != nil {
			return p, err
		}
		p.ChangeIndicator = uint8(ci)
		p.AssociationStatus = uint8(status)
		p.AssociationType = uint8(assocType)
		p.AssociatedEntityID = entity
		p.AssociatedLocation = uint8(loc)
		p.PhysicalConnection = uint8(conn)
		p.GroupMemberType = uint8(groupType)
		p.GroupNumber = uint16(groupNumber)
	default:
		return p, fmt.Errorf("records: unknown variable parameter kind %d", p.Kind)
	}

	return p, nil
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}
