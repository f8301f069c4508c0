package cdis

import (
	"math"

	"github.com/distsim/cdis-codec/bitio"
	"github.com/distsim/cdis-codec/cdisfloat"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/records"
	"github.com/distsim/cdis-codec/varint"
)

// WriteElectromagneticEmission encodes e's compressed body. Per §4.4.4
// there is no per-entity delta caching here: the state-update indicator
// simply rides through as carried on the legacy PDU, and every counted
// array is written in full every time.
func WriteElectromagneticEmission(w *bitio.Writer, e dis.ElectromagneticEmission) {
	records.WriteEntityID(w, e.EmittingEntityID)
	records.WriteEntityID(w, e.EventID)
	w.WriteUnsigned(8, uint32(e.StateUpdateIndicator))

	varint.WriteUVINT8(w, varint.UVINT8(len(e.FundamentalParams)))
	for _, p := range e.FundamentalParams {
		writeFundamentalParameters(w, p)
	}

	varint.WriteUVINT8(w, varint.UVINT8(len(e.BeamData)))
	for _, b := range e.BeamData {
		writeBeamData(w, b)
	}

	varint.WriteUVINT8(w, varint.UVINT8(len(e.SiteApplicationPairs)))
	for _, pair := range e.SiteApplicationPairs {
		varint.WriteUVINT16(w, varint.UVINT16(pair[0]))
		varint.WriteUVINT16(w, varint.UVINT16(pair[1]))
	}

	varint.WriteUVINT8(w, varint.UVINT8(len(e.Systems)))
	for _, sys := range e.Systems {
		varint.WriteUVINT16(w, varint.UVINT16(sys.Name))
		w.WriteUnsigned(8, uint32(sys.Function))
		w.WriteUnsigned(8, uint32(sys.Number))
		records.WriteEntityCoordinateVector(w, sys.Location, records.EncodeLinearUnit(sys.Location))

		varint.WriteUVINT8(w, varint.UVINT8(len(sys.Beams)))
		for _, beam := range sys.Beams {
			w.WriteUnsigned(8, uint32(beam.BeamID))
			w.WriteUnsigned(1, boolBit(beam.HasFundamentalParams))
			if beam.HasFundamentalParams {
				varint.WriteUVINT8(w, varint.UVINT8(beam.FundamentalParamsIdx))
			}
			w.WriteUnsigned(1, boolBit(beam.HasBeamData))
			if beam.HasBeamData {
				varint.WriteUVINT8(w, varint.UVINT8(beam.BeamDataIdx))
			}
			varint.WriteUVINT32(w, varint.UVINT32(beam.JammingTechnique))

			varint.WriteUVINT8(w, varint.UVINT8(len(beam.TrackJamTargets)))
			for _, tgt := range beam.TrackJamTargets {
				records.WriteEntityID(w, tgt.EntityID)
				w.WriteUnsigned(8, uint32(tgt.EmitterID))
				w.WriteUnsigned(8, uint32(tgt.BeamID))
			}
		}
	}
}

func writeFundamentalParameters(w *bitio.Writer, p dis.FundamentalParameters) {
	cdisfloat.Write(w, cdisfloat.FromFloat(cdisfloat.FrequencySpec, p.Frequency))
	w.WriteUnsigned(32, math.Float32bits(p.FrequencyRange))
	w.WriteUnsigned(32, math.Float32bits(p.ERP))
	w.WriteUnsigned(32, math.Float32bits(p.PRF))
	cdisfloat.Write(w, cdisfloat.FromFloat(cdisfloat.PulseWidthSpec, float64(p.PulseWidth)))
}

func readFundamentalParameters(r *bitio.Reader) (dis.FundamentalParameters, error) {
	var p dis.FundamentalParameters

	freq, err := cdisfloat.Read(r, cdisfloat.FrequencySpec)
	if err != nil {
		return p, err
	}
	fr, err := r.ReadUnsigned(32)
	if err != nil {
		return p, err
	}
	erp, err := r.ReadUnsigned(32)
	if err != nil {
		return p, err
	}
	prf, err := r.ReadUnsigned(32)
	if err != nil {
		return p, err
	}
	pw, err := cdisfloat.Read(r, cdisfloat.PulseWidthSpec)
	if err != nil {
		return p, err
	}

	p.Frequency = freq.ToFloat()
	p.FrequencyRange = math.Float32frombits(fr)
	p.ERP = math.Float32frombits(erp)
	p.PRF = math.Float32frombits(prf)
	p.PulseWidth = float32(pw.ToFloat())

	return p, nil
}

func writeBeamData(w *bitio.Writer, b dis.BeamData) {
	w.WriteUnsigned(32, math.Float32bits(b.AzimuthCenter))
	w.WriteUnsigned(32, math.Float32bits(b.AzimuthSweep))
	w.WriteUnsigned(32, math.Float32bits(b.ElevationCenter))
	w.WriteUnsigned(32, math.Float32bits(b.ElevationSweep))
	w.WriteUnsigned(32, math.Float32bits(b.SweepSync))
}

func readBeamData(r *bitio.Reader) (dis.BeamData, error) {
	var b dis.BeamData

	az, err := r.ReadUnsigned(32)
	if err != nil {
		return b, err
	}
	azs, err := r.ReadUnsigned(32)
	if err != nil {
		return b, err
	}
	el, err := r.ReadUnsigned(32)
	if err != nil {
		return b, err
	}
	els, err := r.ReadUnsigned(32)
	if err != nil {
		return b, err
	}
	sweep, err := r.ReadUnsigned(32)
	if err != nil {
		return b, err
	}

	b.AzimuthCenter = math.Float32frombits(az)
	b.AzimuthSweep = math.Float32frombits(azs)
	b.ElevationCenter = math.Float32frombits(el)
	b.ElevationSweep = math.Float32frombits(els)
	b.SweepSync = math.Float32frombits(sweep)

	return b, nil
}

// ReadElectromagneticEmission is the inverse of
// WriteElectromagneticEmission.
func ReadElectromagneticEmission(r *bitio.Reader) (dis.ElectromagneticEmission, error) {
	var e dis.ElectromagneticEmission

	var err error
	e.EmittingEntityID, err = records.ReadEntityID(r)
	if err != nil {
		return e, err
	}
	e.EventID, err = records.ReadEntityID(r)
	if err != nil {
		return e, err
	}
	indicator, err := r.ReadUnsigned(8)
	if err != nil {
		return e, err
	}
	e.StateUpdateIndicator = uint8(indicator)

	numParams, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, err
	}
	for range numParams {
		p, err := readFundamentalParameters(r)
		if err != nil {
			return e, err
		}
		e.FundamentalParams = append(e.FundamentalParams, p)
	}

	numBeamData, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, err
	}
	for range numBeamData {
		b, err := readBeamData(r)
		if err != nil {
			return e, err
		}
		e.BeamData = append(e.BeamData, b)
	}

	numPairs, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, err
	}
	for range numPairs {
		site, err := varint.ReadUVINT16(r)
		if err != nil {
			return e, err
		}
		app, err := varint.ReadUVINT16(r)
		if err != nil {
			return e, err
		}
		e.SiteApplicationPairs = append(e.SiteApplicationPairs, [2]uint16{uint16(site), uint16(app)})
	}

	numSystems, err := varint.ReadUVINT8(r)
	if err != nil {
		return e, err
	}
	for range numSystems {
		var sys dis.EmitterSystem

		name, err := varint.ReadUVINT16(r)
		if err != nil {
			return e, err
		}
		fn, err := r.ReadUnsigned(8)
		if err != nil {
			return e, err
		}
		num, err := r.ReadUnsigned(8)
		if err != nil {
			return e, err
		}
		sys.Name = uint16(name)
		sys.Function = uint8(fn)
		sys.Number = uint8(num)

		unitBit, err := r.ReadUnsigned(1)
		if err != nil {
			return e, err
		}
		sys.Location, err = records.ReadEntityCoordinateVector(r, records.LinearUnit(unitBit))
		if err != nil {
			return e, err
		}

		numBeams, err := varint.ReadUVINT8(r)
		if err != nil {
			return e, err
		}
		for range numBeams {
			var beam dis.EmitterBeam

			beamID, err := r.ReadUnsigned(8)
			if err != nil {
				return e, err
			}
			beam.BeamID = uint8(beamID)

			hasFP, err := r.ReadUnsigned(1)
			if err != nil {
				return e, err
			}
			beam.HasFundamentalParams = hasFP != 0
			if beam.HasFundamentalParams {
				idx, err := varint.ReadUVINT8(r)
				if err != nil {
					return e, err
				}
				beam.FundamentalParamsIdx = int(idx)
			}

			hasBD, err := r.ReadUnsigned(1)
			if err != nil {
				return e, err
			}
			beam.HasBeamData = hasBD != 0
			if beam.HasBeamData {
				idx, err := varint.ReadUVINT8(r)
				if err != nil {
					return e, err
				}
				beam.BeamDataIdx = int(idx)
			}

			jam, err := varint.ReadUVINT32(r)
			if err != nil {
				return e, err
			}
			beam.JammingTechnique = uint32(jam)

			numTargets, err := varint.ReadUVINT8(r)
			if err != nil {
				return e, err
			}
			for range numTargets {
				var tgt dis.TrackJamTarget
				tgt.EntityID, err = records.ReadEntityID(r)
				if err != nil {
					return e, err
				}
				emitterID, err := r.ReadUnsigned(8)
				if err != nil {
					return e, err
				}
				beamNum, err := r.ReadUnsigned(8)
				if err != nil {
					return e, err
				}
				tgt.EmitterID = uint8(emitterID)
				tgt.BeamID = uint8(beamNum)
				beam.TrackJamTargets = append(beam.TrackJamTargets, tgt)
			}

			sys.Beams = append(sys.Beams, beam)
		}

		e.Systems = append(e.Systems, sys)
	}

	return e, nil
}
