// Package telemetry implements codec.Telemetry with Prometheus metrics
// (§7 "the PDU-level driver ... emits a telemetry event identifying the
// PDU type and the error kind"), following the nil-receiver,
// guard-every-method pattern the rest of this module's ecosystem stack
// uses for optional observability collectors.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/distsim/cdis-codec/dis"
)

// Recorder tracks codec-level counters by PDU kind. All metrics carry
// the cdis_ prefix to distinguish them from anything else registered
// against the same Prometheus registry.
//
// Every method guards against a nil receiver: a nil *Recorder is a
// valid, inert telemetry sink, the same contract codec.Options'
// zero-value Telemetry field already assumes.
type Recorder struct {
	fullUpdatesTotal    *prometheus.CounterVec
	partialUpdatesTotal *prometheus.CounterVec
	stateMissesTotal    *prometheus.CounterVec
	errorsTotal         *prometheus.CounterVec
	precisionLossTotal  *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its metrics against reg.
// Panics if registration fails, expected only during initialization.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		fullUpdatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdis_full_updates_total",
				Help: "Total full-update encodes/decodes by PDU kind",
			},
			[]string{"pdu_kind"},
		),
		partialUpdatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdis_partial_updates_total",
				Help: "Total partial-update encodes/decodes by PDU kind",
			},
			[]string{"pdu_kind"},
		),
		stateMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdis_state_misses_total",
				Help: "Total decodes where an omitted field had no cached decoder snapshot",
			},
			[]string{"pdu_kind"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdis_errors_total",
				Help: "Total encode/decode errors by PDU kind and error kind",
			},
			[]string{"pdu_kind", "error_kind"},
		),
		precisionLossTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cdis_precision_loss_total",
				Help: "Total lossy field conversions by PDU kind and reason",
			},
			[]string{"pdu_kind", "reason"},
		),
	}

	reg.MustRegister(
		r.fullUpdatesTotal,
		r.partialUpdatesTotal,
		r.stateMissesTotal,
		r.errorsTotal,
		r.precisionLossTotal,
	)

	return r
}

func (r *Recorder) RecordFullUpdate(kind dis.PduKind) {
	if r == nil {
		return
	}
	r.fullUpdatesTotal.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) RecordPartialUpdate(kind dis.PduKind) {
	if r == nil {
		return
	}
	r.partialUpdatesTotal.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) RecordStateMiss(kind dis.PduKind) {
	if r == nil {
		return
	}
	r.stateMissesTotal.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) RecordError(kind dis.PduKind, errKind string) {
	if r == nil {
		return
	}
	r.errorsTotal.WithLabelValues(kind.String(), errKind).Inc()
}

func (r *Recorder) RecordPrecisionLoss(kind dis.PduKind, reason string) {
	if r == nil {
		return
	}
	r.precisionLossTotal.WithLabelValues(kind.String(), reason).Inc()
}

// NullRecorder returns nil, which acts as a no-op telemetry sink. Every
// Recorder method handles a nil receiver gracefully.
func NullRecorder() *Recorder {
	return nil
}
