package records

import (
	"testing"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdisfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableParameter_ArticulatedPartRoundTrip(t *testing.T) {
	p := VariableParameter{
		Kind:            VPArticulatedPart,
		ChangeIndicator: 3,
		AttachmentID:    512,
		ParameterType:   1000,
		ParameterValue:  cdisfloat.FromFloat(cdisfloat.ParameterValueSpec, 12.5),
	}

	w := bitio.NewWriter(8)
	require.NoError(t, WriteVariableParameter(w, p))

	r := bitio.NewReader(w.Bytes())
	got, err := ReadVariableParameter(r)
	require.NoError(t, err)
	assert.Equal(t, p.Kind, got.Kind)
	assert.Equal(t, p.ChangeIndicator, got.ChangeIndicator)
	assert.Equal(t, p.AttachmentID, got.AttachmentID)
	assert.Equal(t, p.ParameterType, got.ParameterType)
	assert.InDelta(t, p.ParameterValue.ToFloat(), got.ParameterValue.ToFloat(), 0.01)
}

func TestVariableParameter_EntityAssociationRoundTrip(t *testing.T) {
	p := VariableParameter{
		Kind:               VPEntityAssociation,
		ChangeIndicator:    1,
		AssociationStatus:  2,
		AssociationType:    3,
		AssociatedEntityID: EntityID{Site: 1, Application: 2, Entity: 3},
		AssociatedLocation: 4,
		PhysicalConnection: 5,
		GroupMemberType:    6,
		GroupNumber:        7,
	}

	w := bitio.NewWriter(8)
	require.NoError(t, WriteVariableParameter(w, p))

	r := bitio.NewReader(w.Bytes())
	got, err := ReadVariableParameter(r)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestVariableParameter_EntitySeparationRoundTrip(t *testing.T) {
	p := VariableParameter{
		Kind:           VPEntitySeparation,
		ReasonCode:     1,
		StationCode:    2,
		ParentEntityID: EntityID{Site: 9, Application: 8, Entity: 7},
		StationName:    3,
		StationNumber:  4,
	}

	w := bitio.NewWriter(8)
	require.NoError(t, WriteVariableParameter(w, p))

	r := bitio.NewReader(w.Bytes())
	got, err := ReadVariableParameter(r)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
