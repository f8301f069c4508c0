package state

import (
	"sync"
	"time"

	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/internal/collision"
	"github.com/distsim/cdis-codec/internal/hash"
	"github.com/distsim/cdis-codec/records"
)

// EntityStateSnapshot is the decoder-side state record for Entity State
// (§3 "State table entry — decoder": "For Entity State: entity type,
// alternate entity type, entity location..., orientation, linear
// velocity, appearance, dead-reckoning parameters, marking,
// capabilities").
type EntityStateSnapshot struct {
	EntityType           records.EntityType
	AlternateEntityType  records.EntityType
	Location             records.WorldCoordinate
	Orientation          records.Orientation
	LinearVelocity       records.Vector3
	Appearance           uint32
	DeadReckoningAlgo    uint8
	DeadReckoningAccel   records.Vector3
	DeadReckoningAngular records.Vector3
	Marking              string
	Capabilities         uint32
}

// DesignatorSnapshot is the decoder-side state record for Designator
// (§3: "designated entity id, system name, code, power, wavelength, spot
// location, DR algorithm and acceleration"). It also carries the fields
// named in §9 Open Question 1 ("not part of the state per spec section
// 13.19") for decoder-side convenience; a minimum-state decoder may
// choose to ignore them.
type DesignatorSnapshot struct {
	DesignatedEntityID records.EntityID
	SystemName         uint16
	Code               uint16
	Power              float32
	Wavelength         float32
	SpotWrtDesignated  records.Vector3
	SpotLocation       records.WorldCoordinate
	DeadReckoningAlgo  uint8
	LinearAcceleration records.Vector3
}

// IFFSnapshot is the decoder-side state record for IFF: only system id
// is stateful in the base layer (§4.4.3).
type IFFSnapshot struct {
	SystemID dis.SystemID
}

// decoderEntry wraps a last-receive timestamp around whichever
// kind-specific snapshot applies; only one of the typed fields is
// populated per entry, matching the originator key's kind component.
type decoderEntry struct {
	lastReceive time.Time
	entityState *EntityStateSnapshot
	designator  *DesignatorSnapshot
	iff         *IFFSnapshot
}

// DecoderState is the process-wide decoder-side table (§4.6), safe for
// concurrent use (§5).
type DecoderState struct {
	mu        sync.Mutex
	entries   map[uint64]*decoderEntry
	collision *collision.Tracker
}

// NewDecoderState creates an empty decoder state table.
func NewDecoderState() *DecoderState {
	return &DecoderState{
		entries:   make(map[uint64]*decoderEntry),
		collision: collision.NewTracker(),
	}
}

// Collisions reports how many times two distinct originators have
// hashed to the same OriginatorKey on the decode side.
func (s *DecoderState) Collisions() int {
	return s.collision.Count()
}

func key(kind dis.PduKind, originator records.EntityID) uint64 {
	return hash.OriginatorKey(uint8(kind), originator.Site, originator.Application, originator.Entity)
}

func (s *DecoderState) observe(kind dis.PduKind, originator records.EntityID) {
	s.collision.Observe(key(kind, originator), collision.Tuple{
		Site:        originator.Site,
		Application: originator.Application,
		Entity:      originator.Entity,
	})
}

// EntityState returns the cached snapshot for originator, if any.
func (s *DecoderState) EntityState(originator records.EntityID) (EntityStateSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key(dis.KindEntityState, originator)]
	if !ok || e.entityState == nil {
		return EntityStateSnapshot{}, false
	}

	return *e.entityState, true
}

// PutEntityState replaces the cached snapshot for originator (§3 "On
// decoding a full update, the decoder state for that (kind, originator)
// is atomically replaced").
func (s *DecoderState) PutEntityState(originator records.EntityID, snap EntityStateSnapshot, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observe(dis.KindEntityState, originator)
	s.entries[key(dis.KindEntityState, originator)] = &decoderEntry{lastReceive: now, entityState: &snap}
}

// Designator returns the cached snapshot for originator, if any.
func (s *DecoderState) Designator(originator records.EntityID) (DesignatorSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key(dis.KindDesignator, originator)]
	if !ok || e.designator == nil {
		return DesignatorSnapshot{}, false
	}

	return *e.designator, true
}

// PutDesignator replaces the cached snapshot for originator.
func (s *DecoderState) PutDesignator(originator records.EntityID, snap DesignatorSnapshot, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observe(dis.KindDesignator, originator)
	s.entries[key(dis.KindDesignator, originator)] = &decoderEntry{lastReceive: now, designator: &snap}
}

// IFF returns the cached snapshot for originator, if any.
func (s *DecoderState) IFF(originator records.EntityID) (IFFSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key(dis.KindIFF, originator)]
	if !ok || e.iff == nil {
		return IFFSnapshot{}, false
	}

	return *e.iff, true
}

// PutIFF replaces the cached snapshot for originator.
func (s *DecoderState) PutIFF(originator records.EntityID, snap IFFSnapshot, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observe(dis.KindIFF, originator)
	s.entries[key(dis.KindIFF, originator)] = &decoderEntry{lastReceive: now, iff: &snap}
}

// Prune removes every entry whose last-receive/last-send timestamp is
// older than before. The core imposes no eviction policy (§4.6: "The
// state engine provides no explicit eviction"); this is the caller-
// chosen policy the spec explicitly allows.
func (s *DecoderState) Prune(before time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		if e.lastReceive.Before(before) {
			delete(s.entries, k)
		}
	}
}

// Prune is the encoder-side equivalent of DecoderState.Prune.
func (s *EncoderState) Prune(before time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		if e.lastSend.Before(before) {
			delete(s.entries, k)
		}
	}
}
