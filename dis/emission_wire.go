package dis

import (
	"math"

	"github.com/distsim/cdis-codec/records"
)

func writeFundamentalParameters(buf []byte, p FundamentalParameters) []byte {
	buf = engine.AppendUint64(buf, math.Float64bits(p.Frequency))
	buf = engine.AppendUint32(buf, math32Bits(p.FrequencyRange))
	buf = engine.AppendUint32(buf, math32Bits(p.ERP))
	buf = engine.AppendUint32(buf, math32Bits(p.PRF))
	buf = engine.AppendUint32(buf, math32Bits(p.PulseWidth))

	return buf
}

func readFundamentalParameters(buf []byte, off int) (FundamentalParameters, int) {
	var p FundamentalParameters

	p.Frequency = math.Float64frombits(engine.Uint64(buf[off:]))
	p.FrequencyRange = math32FromBits(engine.Uint32(buf[off+8:]))
	p.ERP = math32FromBits(engine.Uint32(buf[off+12:]))
	p.PRF = math32FromBits(engine.Uint32(buf[off+16:]))
	p.PulseWidth = math32FromBits(engine.Uint32(buf[off+20:]))

	return p, off + 24
}

func writeBeamData(buf []byte, b BeamData) []byte {
	buf = engine.AppendUint32(buf, math32Bits(b.AzimuthCenter))
	buf = engine.AppendUint32(buf, math32Bits(b.AzimuthSweep))
	buf = engine.AppendUint32(buf, math32Bits(b.ElevationCenter))
	buf = engine.AppendUint32(buf, math32Bits(b.ElevationSweep))
	buf = engine.AppendUint32(buf, math32Bits(b.SweepSync))

	return buf
}

func readBeamData(buf []byte, off int) (BeamData, int) {
	var b BeamData

	b.AzimuthCenter = math32FromBits(engine.Uint32(buf[off:]))
	b.AzimuthSweep = math32FromBits(engine.Uint32(buf[off+4:]))
	b.ElevationCenter = math32FromBits(engine.Uint32(buf[off+8:]))
	b.ElevationSweep = math32FromBits(engine.Uint32(buf[off+12:]))
	b.SweepSync = math32FromBits(engine.Uint32(buf[off+16:]))

	return b, off + 20
}

// WriteElectromagneticEmission appends the legacy EE PDU body, counted
// arrays framed by their own length prefixes (§4.4.4).
func WriteElectromagneticEmission(buf []byte, e ElectromagneticEmission) []byte {
	buf = records.WriteDisEntityID(buf, e.EmittingEntityID)
	buf = records.WriteDisEntityID(buf, e.EventID)
	buf = append(buf, e.StateUpdateIndicator, uint8(len(e.Systems)))

	buf = append(buf, uint8(len(e.FundamentalParams)))
	for _, p := range e.FundamentalParams {
		buf = writeFundamentalParameters(buf, p)
	}
	buf = append(buf, uint8(len(e.BeamData)))
	for _, b := range e.BeamData {
		buf = writeBeamData(buf, b)
	}
	buf = append(buf, uint8(len(e.SiteApplicationPairs)))
	for _, pair := range e.SiteApplicationPairs {
		buf = engine.AppendUint16(buf, pair[0])
		buf = engine.AppendUint16(buf, pair[1])
	}

	for _, sys := range e.Systems {
		buf = engine.AppendUint16(buf, sys.Name)
		buf = append(buf, sys.Function, sys.Number)
		buf = records.WriteDisFloat3(buf, sys.Location)
		buf = append(buf, uint8(len(sys.Beams)))
		for _, beam := range sys.Beams {
			buf = append(buf, beam.BeamID, boolByte(beam.HasFundamentalParams), uint8(beam.FundamentalParamsIdx))
			buf = append(buf, boolByte(beam.HasBeamData), uint8(beam.BeamDataIdx))
			buf = engine.AppendUint32(buf, beam.JammingTechnique)
			buf = append(buf, uint8(len(beam.TrackJamTargets)))
			for _, tgt := range beam.TrackJamTargets {
				buf = records.WriteDisEntityID(buf, tgt.EntityID)
				buf = append(buf, tgt.EmitterID, tgt.BeamID)
			}
		}
	}

	return buf
}

// ReadElectromagneticEmission is the inverse of
// WriteElectromagneticEmission.
func ReadElectromagneticEmission(buf []byte, off int) (ElectromagneticEmission, int) {
	var e ElectromagneticEmission

	e.EmittingEntityID, off = records.ReadDisEntityID(buf, off)
	e.EventID, off = records.ReadDisEntityID(buf, off)
	e.StateUpdateIndicator = buf[off]
	numSystems := int(buf[off+1])
	off += 2

	numParams := int(buf[off])
	off++
	for range numParams {
		var p FundamentalParameters
		p, off = readFundamentalParameters(buf, off)
		e.FundamentalParams = append(e.FundamentalParams, p)
	}

	numBeamData := int(buf[off])
	off++
	for range numBeamData {
		var b BeamData
		b, off = readBeamData(buf, off)
		e.BeamData = append(e.BeamData, b)
	}

	numPairs := int(buf[off])
	off++
	for range numPairs {
		site := engine.Uint16(buf[off:])
		app := engine.Uint16(buf[off+2:])
		e.SiteApplicationPairs = append(e.SiteApplicationPairs, [2]uint16{site, app})
		off += 4
	}

	for range numSystems {
		var sys EmitterSystem
		sys.Name = engine.Uint16(buf[off:])
		sys.Function = buf[off+2]
		sys.Number = buf[off+3]
		off += 4
		sys.Location, off = records.ReadDisFloat3(buf, off)
		numBeams := int(buf[off])
		off++
		for range numBeams {
			var beam EmitterBeam
			beam.BeamID = buf[off]
			beam.HasFundamentalParams = buf[off+1] != 0
			beam.FundamentalParamsIdx = int(buf[off+2])
			beam.HasBeamData = buf[off+3] != 0
			beam.BeamDataIdx = int(buf[off+4])
			beam.JammingTechnique = engine.Uint32(buf[off+5:])
			off += 9
			numTargets := int(buf[off])
			off++
			for range numTargets {
				var tgt TrackJamTarget
				tgt.EntityID, off = records.ReadDisEntityID(buf, off)
				tgt.EmitterID = buf[off]
				tgt.BeamID = buf[off+1]
				off += 2
				beam.TrackJamTargets = append(beam.TrackJamTargets, tgt)
			}
			sys.Beams = append(sys.Beams, beam)
		}
		e.Systems = append(e.Systems, sys)
	}

	return e, off
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}
