package state

import (
	"testing"
	"time"

	"github.com/distsim/cdis-codec/records"
	"github.com/stretchr/testify/assert"
)

func TestDecoderState_EntityStateMissThenHit(t *testing.T) {
	s := NewDecoderState()
	originator := records.EntityID{Site: 1, Application: 2, Entity: 3}

	_, ok := s.EntityState(originator)
	assert.False(t, ok)

	snap := EntityStateSnapshot{Marking: "TEST", Capabilities: 42}
	s.PutEntityState(originator, snap, time.Now())

	got, ok := s.EntityState(originator)
	assert.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestDecoderState_PruneRemovesStaleEntries(t *testing.T) {
	s := NewDecoderState()
	originator := records.EntityID{Site: 1, Application: 2, Entity: 3}
	past := time.Now().Add(-time.Hour)

	s.PutEntityState(originator, EntityStateSnapshot{}, past)
	s.Prune(time.Now())

	_, ok := s.EntityState(originator)
	assert.False(t, ok)
}

func TestDecoderState_DesignatorAndIFFAreIndependent(t *testing.T) {
	s := NewDecoderState()
	originator := records.EntityID{Site: 5, Application: 5, Entity: 5}

	s.PutDesignator(originator, DesignatorSnapshot{Code: 7}, time.Now())

	_, ok := s.IFF(originator)
	assert.False(t, ok)

	des, ok := s.Designator(originator)
	assert.True(t, ok)
	assert.EqualValues(t, 7, des.Code)
}
