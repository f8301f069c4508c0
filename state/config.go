package state

import (
	"time"

	"github.com/distsim/cdis-codec/dis"
)

// Config carries the heartbeat time table and multiplier consulted on
// every encode call (§4.6: "come from a configuration record passed into
// every encode/decode call; the core does not read process-wide
// globals").
type Config struct {
	Heartbeats map[dis.PduKind]time.Duration
	Multiplier float64
}

// DefaultConfig returns the default per-kind heartbeat seconds and
// multiplier (§5 "Timeouts": "Default heartbeat multiplier: 2.4. Default
// per-kind heartbeats (seconds): entity state = 5, designator = 5,
// IFF = 10, EE = 5, transmitter = 2, receiver = 5, gridded data = 900").
// Gridded data has no dis.PduKind in this codec, so the returned table
// has no entry for it.
func DefaultConfig() Config {
	return Config{
		Multiplier: 2.4,
		Heartbeats: map[dis.PduKind]time.Duration{
			dis.KindEntityState:             5 * time.Second,
			dis.KindDesignator:              5 * time.Second,
			dis.KindIFF:                     10 * time.Second,
			dis.KindElectromagneticEmission: 5 * time.Second,
			dis.KindTransmitter:             2 * time.Second,
			dis.KindReceiver:                5 * time.Second,
		},
	}
}

// Threshold returns HBT_PDU_kind × multiplier, the age past which an
// encoder must promote a partial update to a full one (§4.4 encoder
// state machine). Unknown kinds get a conservative 5-second heartbeat.
func (c Config) Threshold(kind dis.PduKind) time.Duration {
	hbt, ok := c.Heartbeats[kind]
	if !ok {
		hbt = 5 * time.Second
	}

	return time.Duration(float64(hbt) * c.Multiplier)
}
