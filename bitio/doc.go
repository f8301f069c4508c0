// Package bitio provides the bit-granular cursor shared by every C-DIS
// record codec.
//
// C-DIS packs PDU bodies at the bit level: fields are not byte-aligned and
// a single byte commonly holds parts of two or three unrelated fields. This
// package is the one place that does shift/mask arithmetic; every record
// and PDU codec in this module reads and writes through a [Reader] or
// [Writer] instead of touching byte slices directly.
//
// All integers flow big-endian with the most significant bit written
// first, matching the legacy DIS wire format and the C-DIS header (§6 of
// the governing specification).
package bitio
