package cat048

import (
	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/bitutil"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func newRadarTarget() any {
	return &surveillance.RadarTarget{ModeSRegisters: make(map[uint8][]byte)}
}

func dataSourceID(data []byte, target any, state *timebase.State) error {
	sac, sic, err := common.DecodeDataSourceID(data)
	if err != nil {
		return err
	}
	state.SetSACSIC(sac, sic)
	return nil
}

func timeOfDay(data []byte, target any, state *timebase.State) error {
	tod, err := common.DecodeTimeOfDay(data)
	if err != nil {
		return err
	}
	state.UpdateTOD(tod, nil)
	rt := target.(*surveillance.RadarTarget)
	rt.TimeOfDay = surveillance.Some(state.EffectiveTime(tod))
	return nil
}

// targetReportDescriptor reads only the TYP subfield of the first octet;
// any FX-chained extension octets are already included in data by the
// walker and are otherwise ignored.
func targetReportDescriptor(data []byte, target any, state *timebase.State) error {
	rt := target.(*surveillance.RadarTarget)
	typ := (data[0] >> 5) & 0x07
	rt.DetectionType = surveillance.Some(uint8(typ))
	return nil
}

func measuredPosition(data []byte, target any, state *timebase.State) error {
	rangeM, azR, err := common.DecodeMeasuredPosition(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).Measured = surveillance.Some(surveillance.PolarPosition{RangeM: rangeM, AzimuthR: azR})
	return nil
}

func mode3A(data []byte, target any, state *timebase.State) error {
	m3a, err := common.DecodeMode3A(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).Mode3AInfo = surveillance.Some(m3a)
	return nil
}

// flightLevel decodes I048/090, a plain 16-bit two's-complement value in
// 1/4 FL units with no validity flags of its own (those live in the
// separate Mode-C Gray-code item, I048/100).
func flightLevel(data []byte, target any, state *timebase.State) error {
	fl := float64(bitutil.SBE16(data)) * 0.25
	feet := fl * 100.0
	target.(*surveillance.RadarTarget).ModeCInfo = surveillance.Some(surveillance.ModeC{
		ValueFeet:   feet,
		ValueMeters: feet * 0.3048,
		Invalid:     surveillance.Undefined,
		Garbled:     surveillance.Undefined,
	})
	return nil
}

// modeCGrayCode decodes I048/100's length only; demodulating the Gray
// code itself is not implemented since I048/090 already gives this
// decoder a clean binary flight level for every record that carries
// one.
func modeCGrayCode(data []byte, target any, state *timebase.State) error {
	return nil
}

func aircraftAddress(data []byte, target any, state *timebase.State) error {
	addr, err := common.DecodeAircraftAddress(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).Address = surveillance.Some(addr)
	return nil
}

func aircraftIdentification(data []byte, target any, state *timebase.State) error {
	id, err := common.DecodeIdentification(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).TargetID = surveillance.Some(id)
	return nil
}

// bdsRegisterData decodes I048/250: each 8-byte repetition is a 1-byte
// BDS register number followed by 7 bytes of raw MB data.
func bdsRegisterData(data []byte, target any, state *timebase.State) error {
	rt := target.(*surveillance.RadarTarget)
	for i := 1; i+8 <= len(data); i += 8 {
		reg := data[i]
		mb := make([]byte, 7)
		copy(mb, data[i+1:i+8])
		rt.ModeSRegisters[reg] = mb
	}
	return nil
}

func trackNumber(data []byte, target any, state *timebase.State) error {
	n, err := common.DecodeTrackNumber(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).TrackNumber = surveillance.Some(n)
	return nil
}

func calculatedPosition(data []byte, target any, state *timebase.State) error {
	x, y, err := common.DecodeCalculatedPositionCartesian(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).Calculated = surveillance.Some(surveillance.CartesianPosition{X: x, Y: y})
	return nil
}

func calculatedVelocity(data []byte, target any, state *timebase.State) error {
	speedMS, trackR, err := common.DecodeGroundVector(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).GroundVector = surveillance.Some(surveillance.GroundVector{GroundSpeedMS: speedMS, TrackAngleR: trackR})
	return nil
}

// trackStatus's presence at all distinguishes a CAT048 track record
// from a plot record; its subfields are not otherwise decoded.
func trackStatus(data []byte, target any, state *timebase.State) error {
	target.(*surveillance.RadarTarget).IsRadarTrack = true
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

var fields132 = []asterix.Field{
	{FRN: 1, Name: "I048/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I048/140", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay, Mandatory: true},
	{FRN: 3, Name: "I048/020", Descr: "Target Report Descriptor", Kind: asterix.Extended, Handler: targetReportDescriptor, Mandatory: true},
	{FRN: 4, Name: "I048/040", Descr: "Measured Position", Kind: asterix.Fixed, FixedLen: 4, Handler: measuredPosition},
	{FRN: 5, Name: "I048/070", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: mode3A},
	{FRN: 6, Name: "I048/090", Descr: "Flight Level", Kind: asterix.Fixed, FixedLen: 2, Handler: flightLevel},
	{FRN: 7, Name: "I048/130", Descr: "Radar Plot Characteristics", Kind: asterix.Compound, Imm: asterix.UniformCompoundHandler(asterix.Cat048, "I048/130", 1)},
	{FRN: 8, Name: "I048/220", Descr: "Aircraft Address", Kind: asterix.Fixed, FixedLen: 3, Handler: aircraftAddress},
	{FRN: 9, Name: "I048/240", Descr: "Aircraft Identification", Kind: asterix.Fixed, FixedLen: 6, Handler: aircraftIdentification},
	{FRN: 10, Name: "I048/250", Descr: "BDS Register Data", Kind: asterix.Repetitive, RepUnit: 8, Handler: bdsRegisterData},
	{FRN: 11, Name: "I048/161", Descr: "Track Number", Kind: asterix.Fixed, FixedLen: 2, Handler: trackNumber},
	{FRN: 12, Name: "I048/042", Descr: "Calculated Position (Cartesian)", Kind: asterix.Fixed, FixedLen: 4, Handler: calculatedPosition},
	{FRN: 13, Name: "I048/200", Descr: "Calculated Track Velocity", Kind: asterix.Fixed, FixedLen: 4, Handler: calculatedVelocity},
	{FRN: 14, Name: "I048/170", Descr: "Track Status", Kind: asterix.Extended, Handler: trackStatus},
	{FRN: 15, Name: "I048/210", Descr: "Track Quality", Kind: asterix.Fixed, FixedLen: 4, Handler: discard},
	{FRN: 16, Name: "I048/030", Descr: "Warning/Error Conditions", Kind: asterix.Extended, Handler: discard},
	{FRN: 17, Name: "I048/080", Descr: "Mode-3/A Code Confidence", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 18, Name: "I048/100", Descr: "Mode-C Code and Confidence", Kind: asterix.Fixed, FixedLen: 4, Handler: modeCGrayCode},
	{FRN: 19, Name: "I048/110", Descr: "Height Measured by 3D Radar", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 20, Name: "I048/120", Descr: "Radial Doppler Speed", Kind: asterix.Compound, Imm: asterix.UniformCompoundHandler(asterix.Cat048, "I048/120", 2)},
	{FRN: 21, Name: "I048/230", Descr: "Comms/ACAS Capability and Flight Status", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 22, Name: "I048/260", Descr: "ACAS Resolution Advisory Report", Kind: asterix.Fixed, FixedLen: 7, Handler: discard},
	{FRN: 23, Name: "I048/055", Descr: "Mode-1 Code", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 24, Name: "I048/050", Descr: "Mode-2 Code", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 25, Name: "I048/065", Descr: "Mode-1 Code Confidence", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 26, Name: "I048/060", Descr: "Mode-2 Code Confidence", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 27, Name: "SP048", Descr: "Special Purpose Field", Kind: asterix.Immediate, Imm: asterix.SPFHandler(asterix.Cat048)},
	{FRN: 28, Name: "RE048", Descr: "Reserved Expansion Field", Kind: asterix.Immediate, Imm: asterix.SPFHandler(asterix.Cat048)},
}
