// Package records implements the common record codecs shared by every PDU
// (§4.3): entity and event identifiers, entity types, world and
// entity-local coordinates, velocity/acceleration/orientation vectors,
// markings, variable parameter records, and layer headers.
//
// Each record type exposes a pair of functions, WriteXxx/ReadXxx, that
// operate on a bitio.Writer/Reader for the compressed form, and most also
// a Dis-prefixed pair for the legacy byte-aligned form (variable parameter
// records and layer headers have only the compressed pair), so a PDU codec never
// has to reach for raw shift/mask arithmetic itself (§9 "Bit cursor
// abstraction").
package records

import "github.com/distsim/cdis-codec/endian"

// engine is the byte order for every legacy (DIS-prefixed) record codec in
// this package (§6 "Legacy DIS wire format": "Big-endian, byte-aligned").
var engine = endian.GetBigEndianEngine()
