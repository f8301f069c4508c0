package state

import (
	"sync"
	"time"

	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/internal/collision"
	"github.com/distsim/cdis-codec/internal/hash"
	"github.com/distsim/cdis-codec/records"
)

// encoderEntry is all the encoder needs per (kind, originator): the
// last-send timestamp (§3 "State table entry — encoder": "That is all
// the encoder needs to decide full vs. partial; the actual field values
// are re-read from the incoming legacy PDU on every call").
type encoderEntry struct {
	lastSend time.Time
}

// EncoderState is the process-wide encoder-side table, one map entry per
// (PDU kind, originating entity id), collapsed into a single map keyed by
// internal/hash.OriginatorKey per §9's "Per-kind state tables" note.
// Safe for concurrent use (§5 "Concurrent encoders sharing a state table
// must serialise per-key; a table-wide lock ... satisf[ies] the spec").
type EncoderState struct {
	mu        sync.Mutex
	entries   map[uint64]*encoderEntry
	collision *collision.Tracker
}

// NewEncoderState creates an empty encoder state table.
func NewEncoderState() *EncoderState {
	return &EncoderState{
		entries:   make(map[uint64]*encoderEntry),
		collision: collision.NewTracker(),
	}
}

// Collisions reports how many times two distinct originators have
// hashed to the same OriginatorKey. It is always zero in practice; a
// nonzero count means two entities collapsed onto the same state
// table entry and should be surfaced as a precision-loss telemetry
// event by the caller.
func (s *EncoderState) Collisions() int {
	return s.collision.Count()
}

// Decision is the result of consulting the encoder table for one PDU.
type Decision struct {
	// FullUpdate is true when the wire PDU must carry every stateful
	// field and set the full-update flag.
	FullUpdate bool
	// StateUpdated mirrors the §4.4 encoder return value: true when the
	// table entry was replaced this call, false when it was left alone.
	StateUpdated bool
}

// Decide implements the §4.4 encoder state machine for one (kind,
// originator) pair at time now. forceFullUpdate corresponds to codec
// option update_mode = FullUpdate.
func (s *EncoderState) Decide(kind dis.PduKind, originator records.EntityID, now time.Time, cfg Config, forceFullUpdate bool) Decision {
	key := hash.OriginatorKey(uint8(kind), originator.Site, originator.Application, originator.Entity)
	tuple := collision.Tuple{Site: originator.Site, Application: originator.Application, Entity: originator.Entity}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collision.Observe(key, tuple)

	entry, ok := s.entries[key]
	stale := ok && now.Sub(entry.lastSend) > cfg.Threshold(kind)

	if forceFullUpdate || !ok || stale {
		s.entries[key] = &encoderEntry{lastSend: now}

		return Decision{FullUpdate: true, StateUpdated: true}
	}

	return Decision{FullUpdate: false, StateUpdated: false}
}

// Peek reports whether a table entry exists for (kind, originator)
// without mutating it, for tests that need to inspect §8 invariants 5/6
// directly.
func (s *EncoderState) Peek(kind dis.PduKind, originator records.EntityID) (lastSend time.Time, ok bool) {
	key := hash.OriginatorKey(uint8(kind), originator.Site, originator.Application, originator.Entity)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, found := s.entries[key]
	if !found {
		return time.Time{}, false
	}

	return entry.lastSend, true
}
