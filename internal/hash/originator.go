// Package hash turns an originating entity identifier into a single
// uint64 map key, the way mebo hashes a metric name into a MetricID for
// O(1) blob lookup. The stateful delta engine (state package) is keyed by
// (PDU kind, originator entity id); collapsing that 4-field key into one
// uint64 keeps the encoder/decoder state tables a flat map[uint64]*Entry
// instead of a map keyed by a comparable struct, and makes a pruning pass
// over entries cheap to reason about.
package hash

import "github.com/cespare/xxhash/v2"

// OriginatorKey hashes a PDU kind together with the (site, application,
// entity) triple of an entity identifier into a single uint64 key.
// Distinct PDU kinds are namespaced by construction (§9 "Per-kind state
// tables": "the spec only requires that distinct kinds be namespaced").
func OriginatorKey(kind uint8, site, application, entity uint16) uint64 {
	var buf [7]byte
	buf[0] = kind
	buf[1] = byte(site >> 8)
	buf[2] = byte(site)
	buf[3] = byte(application >> 8)
	buf[4] = byte(application)
	buf[5] = byte(entity >> 8)
	buf[6] = byte(entity)

	return xxhash.Sum64(buf[:])
}
