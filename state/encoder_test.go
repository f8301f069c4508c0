package state

import (
	"testing"
	"time"

	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderState_FirstCallIsFullUpdate(t *testing.T) {
	s := NewEncoderState()
	cfg := DefaultConfig()
	originator := records.EntityID{Site: 1, Application: 1, Entity: 1}

	d := s.Decide(dis.KindEntityState, originator, time.Now(), cfg, false)
	assert.True(t, d.FullUpdate)
	assert.True(t, d.StateUpdated)
}

func TestEncoderState_SecondCallWithinHeartbeatIsPartial(t *testing.T) {
	// §8 invariant 7: two encodes of the same originator within the
	// heartbeat window, the second in PartialUpdate mode, must return
	// StateUnchanged with the full-update flag clear.
	s := NewEncoderState()
	cfg := DefaultConfig()
	originator := records.EntityID{Site: 1, Application: 1, Entity: 1}
	now := time.Now()

	first := s.Decide(dis.KindEntityState, originator, now, cfg, false)
	require.True(t, first.FullUpdate)

	second := s.Decide(dis.KindEntityState, originator, now.Add(time.Second), cfg, false)
	assert.False(t, second.FullUpdate)
	assert.False(t, second.StateUpdated)
}

func TestEncoderState_PromotesToFullAfterHeartbeatExpires(t *testing.T) {
	s := NewEncoderState()
	cfg := DefaultConfig()
	originator := records.EntityID{Site: 1, Application: 1, Entity: 1}
	now := time.Now()

	s.Decide(dis.KindEntityState, originator, now, cfg, false)

	later := now.Add(cfg.Threshold(dis.KindEntityState) + time.Second)
	d := s.Decide(dis.KindEntityState, originator, later, cfg, false)
	assert.True(t, d.FullUpdate)
}

func TestEncoderState_ForceFullUpdate(t *testing.T) {
	s := NewEncoderState()
	cfg := DefaultConfig()
	originator := records.EntityID{Site: 1, Application: 1, Entity: 1}
	now := time.Now()

	s.Decide(dis.KindEntityState, originator, now, cfg, false)
	d := s.Decide(dis.KindEntityState, originator, now.Add(time.Millisecond), cfg, true)
	assert.True(t, d.FullUpdate)
}

func TestEncoderState_NamespacesByKind(t *testing.T) {
	s := NewEncoderState()
	cfg := DefaultConfig()
	originator := records.EntityID{Site: 1, Application: 1, Entity: 1}
	now := time.Now()

	s.Decide(dis.KindEntityState, originator, now, cfg, false)
	d := s.Decide(dis.KindDesignator, originator, now, cfg, false)
	assert.True(t, d.FullUpdate, "a different PDU kind for the same entity must not share state")
}
