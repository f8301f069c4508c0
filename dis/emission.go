package dis

import "github.com/distsim/cdis-codec/records"

// FundamentalParameters describes one emitter beam's RF parameters
// (§4.4.4). Values are carried as floats on the legacy side; the cdis
// codec compresses frequency and pulse width through CdisFloat.
type FundamentalParameters struct {
	Frequency      float64
	FrequencyRange float32
	ERP            float32
	PRF            float32
	PulseWidth     float32
}

// BeamData carries azimuth/elevation center and sweep (§4.4.4).
type BeamData struct {
	AzimuthCenter   float32
	AzimuthSweep    float32
	ElevationCenter float32
	ElevationSweep  float32
	SweepSync       float32
}

// TrackJamTarget is one entry of a beam's track/jam target list.
type TrackJamTarget struct {
	EntityID  records.EntityID
	EmitterID uint8
	BeamID    uint8
}

// EmitterBeam is one beam of an emitter system, holding indices into the
// PDU-level fundamental-parameters/beam-data arrays rather than inline
// copies (§4.4.4: "Emitter systems contain a variable number of beams;
// each beam carries optional fundamental-parameters and beam-data
// indices").
type EmitterBeam struct {
	BeamID               uint8
	HasFundamentalParams bool
	FundamentalParamsIdx int
	HasBeamData          bool
	BeamDataIdx          int
	JammingTechnique     uint32
	TrackJamTargets      []TrackJamTarget
}

// EmitterSystem is one radar/jammer system aboard the emitting entity.
type EmitterSystem struct {
	Name     uint16
	Function uint8
	Number   uint8
	Location records.Vector3
	Beams    []EmitterBeam
}

// ElectromagneticEmission is the legacy Electromagnetic Emission PDU
// body (§4.4.4). Per §9 Open Question 3, this codec keeps no delta
// state for EE: the full-update flag toggles "state update" vs.
// "heartbeat" semantics but no field is ever omitted.
type ElectromagneticEmission struct {
	EmittingEntityID     records.EntityID
	EventID              records.EventID
	StateUpdateIndicator uint8
	FundamentalParams    []FundamentalParameters
	BeamData             []BeamData
	SiteApplicationPairs [][2]uint16
	Systems              []EmitterSystem
}
