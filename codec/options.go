package codec

import (
	"time"

	"github.com/distsim/cdis-codec/cdis"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/internal/options"
)

// Telemetry receives the events §7 requires ("the PDU-level driver ...
// emits a telemetry event identifying the PDU type and the error
// kind"). A nil Telemetry is a valid no-op sink; every call site must
// guard with a nil check rather than assume a sink is present, the same
// pattern dittofs's own *Metrics receivers use.
type Telemetry interface {
	RecordFullUpdate(kind dis.PduKind)
	RecordPartialUpdate(kind dis.PduKind)
	RecordStateMiss(kind dis.PduKind)
	RecordError(kind dis.PduKind, errKind string)
	RecordPrecisionLoss(kind dis.PduKind, reason string)
}

// Options carries the per-call settings §6 "Codec options" names, plus
// the telemetry sink. Cdis holds update/optimize mode, guise, and the
// heartbeat table; it is passed straight through to every cdis.WriteXxx
// call.
type Options struct {
	Cdis      cdis.Options
	Telemetry Telemetry
}

// DefaultOptions returns Options with cdis.DefaultOptions() and no
// telemetry sink.
func DefaultOptions() Options {
	return Options{Cdis: cdis.DefaultOptions()}
}

// Option configures Options, following internal/options' generic
// functional-option pattern (the same one state.Config's construction
// and mebo's encoder configs use).
type Option = options.Option[*Options]

// NewOptions builds an Options starting from DefaultOptions and applying
// opts in order.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	if err := options.Apply(&o, opts...); err != nil {
		return Options{}, err
	}

	return o, nil
}

// WithUpdateMode forces full or lets the delta engine decide.
func WithUpdateMode(mode cdis.UpdateMode) Option {
	return options.NoError(func(o *Options) { o.Cdis.UpdateMode = mode })
}

// WithOptimizeMode selects bandwidth- or completeness-biased class
// selection.
func WithOptimizeMode(mode cdis.OptimizeMode) Option {
	return options.NoError(func(o *Options) { o.Cdis.OptimizeMode = mode })
}

// WithGuise controls whether Entity State's alternate entity type is
// always carried regardless of the delta engine's decision.
func WithGuise(useGuise bool) Option {
	return options.NoError(func(o *Options) { o.Cdis.UseGuise = useGuise })
}

// WithHeartbeat overrides a single PDU kind's heartbeat duration.
func WithHeartbeat(kind dis.PduKind, d time.Duration) Option {
	return options.NoError(func(o *Options) {
		if o.Cdis.Heartbeats.Heartbeats == nil {
			o.Cdis.Heartbeats.Heartbeats = map[dis.PduKind]time.Duration{}
		}
		o.Cdis.Heartbeats.Heartbeats[kind] = d
	})
}

// WithHeartbeatMultiplier overrides the heartbeat scaling factor
// (§5 "Default heartbeat multiplier: 2.4").
func WithHeartbeatMultiplier(m float64) Option {
	return options.NoError(func(o *Options) { o.Cdis.Heartbeats.Multiplier = m })
}

// WithTelemetry installs a telemetry sink.
func WithTelemetry(t Telemetry) Option {
	return options.NoError(func(o *Options) { o.Telemetry = t })
}
