// Package codec wires the legacy (dis) and compressed (cdis) codec
// packages together behind a single tagged-union Encode/Decode driver
// (§9 "Visitor dispatch belongs in one place only: the PDU-level
// encode/decode driver"), applying the stateful delta engine
// (state.EncoderState/DecoderState) per call.
package codec

import (
	"errors"
	"fmt"

	"github.com/distsim/cdis-codec/bitio"
)

// Error kinds per §7 "Error Handling Design". ErrTruncated is bitio's
// own sentinel, re-exported here so callers never need to import bitio
// just to compare errors.
var (
	ErrTruncated = bitio.ErrTruncated

	// ErrUnsupportedPduType means the PDU type octet does not map to
	// any codec this build knows about at all.
	ErrUnsupportedPduType = errors.New("codec: unsupported pdu type")

	// ErrUnimplementedPduType means the type is one of the §6 mandatory
	// kinds but this build's dispatch table has no codec wired for it.
	// Distinguished from ErrUnsupportedPduType in telemetry per §7.
	ErrUnimplementedPduType = errors.New("codec: unimplemented pdu type")

	// ErrInvalidEncoding means a field's decoded value falls outside
	// what its declared class/width permits (should be unreachable from
	// a conforming encoder).
	ErrInvalidEncoding = errors.New("codec: invalid encoding")

	// ErrStateMiss is never returned from Decode — a state miss resolves
	// to the kind's default and decoding proceeds (§7 "not a fatal
	// error, but counted"). It exists so callers and tests have a
	// stable value to compare a telemetry error-kind string against.
	ErrStateMiss = errors.New("codec: state miss")
)

// DecodeError wraps a dispatch or codec failure with the PDU type that
// was being processed, so a caller iterating a datagram of PDUs can log
// which one it discarded and move on (§7 "the PDU-level driver ...
// continues with the next PDU in the datagram").
type DecodeError struct {
	PduType uint8
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: pdu type %d: %v", e.PduType, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PrecisionLoss is an informational event, not an error (§7): it is
// produced alongside a successful Encode/Decode result, never returned
// as the call's error value.
type PrecisionLoss struct {
	// Field names the lossy field, e.g. "location.altitude" or
	// "frequency.exponent".
	Field string
	// Reason is a short machine-stable tag: "exponent_saturated",
	// "centimeters_insufficient_degraded_to_meters", and similar.
	Reason string
}
