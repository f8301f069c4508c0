package cdis

import "github.com/distsim/cdis-codec/state"

// UpdateMode forces or defers the full-vs-partial decision (§6 "Codec
// options": update_mode).
type UpdateMode uint8

const (
	// UpdateModeAuto lets the delta engine decide per §4.4's invariants.
	UpdateModeAuto UpdateMode = iota
	// UpdateModeFull forces every stateful field onto the wire.
	UpdateModeFull
)

// OptimizeMode trades bandwidth against headroom when a value sits near a
// varint class boundary (§6 "optimize_mode").
type OptimizeMode uint8

const (
	// OptimizeBandwidth always picks the smallest class that fits.
	OptimizeBandwidth OptimizeMode = iota
	// OptimizeCompleteness is accepted as a distinct option value; this
	// codec has no wider class to over-provision into beyond what the
	// varint package's own class tables already select, so it currently
	// behaves identically to OptimizeBandwidth.
	OptimizeCompleteness
)

// Options carries the per-call knobs every stateful PDU codec in this
// package accepts (§6 "Codec options").
type Options struct {
	UpdateMode   UpdateMode
	OptimizeMode OptimizeMode
	// UseGuise, when true, always includes Entity State's alternate
	// entity type field regardless of the default presence decision.
	UseGuise bool
	// Heartbeats supplies the per-kind thresholds and multiplier the
	// delta engine consults; callers normally pass state.DefaultConfig().
	Heartbeats state.Config
}

// DefaultOptions returns the codec's zero-configuration defaults:
// automatic update mode, bandwidth optimization, guise off, and the
// default heartbeat table.
func DefaultOptions() Options {
	return Options{Heartbeats: state.DefaultConfig()}
}

func (o Options) forceFullUpdate() bool { return o.UpdateMode == UpdateModeFull }
