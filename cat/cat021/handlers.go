package cat021

import (
	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/bitutil"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func dataSourceID(data []byte, target any, state *timebase.State) error {
	sac, sic, err := common.DecodeDataSourceID(data)
	if err != nil {
		return err
	}
	state.SetSACSIC(sac, sic)
	return nil
}

// positionWGS84 decodes I021/130, the low-resolution (24-bit/coordinate)
// WGS-84 position; I021/131's high-resolution sibling overwrites it when
// present (FRN order places 131 right after 130).
func positionWGS84(data []byte, target any, state *timebase.State) error {
	lat, lon, err := common.DecodeWGS84Position24(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Adsb).WGS84 = surveillance.Some(surveillance.WGS84Position{Lat: lat, Lon: lon})
	return nil
}

func positionWGS84HighRes(data []byte, target any, state *timebase.State) error {
	lat, lon, err := common.DecodeWGS84Position32(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Adsb).WGS84 = surveillance.Some(surveillance.WGS84Position{Lat: lat, Lon: lon, HighPrecision: true})
	return nil
}

func targetAddress(data []byte, target any, state *timebase.State) error {
	addr, err := common.DecodeAircraftAddress(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Adsb).Address = surveillance.Some(addr)
	return nil
}

func targetIdentification(data []byte, target any, state *timebase.State) error {
	id, err := common.DecodeIdentification(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Adsb).TargetID = surveillance.Some(id)
	return nil
}

// flightLevel decodes I021/145, the same plain signed 1/4FL wire shape
// as CAT048's I048/090.
func flightLevel(data []byte, target any, state *timebase.State) error {
	feet := float64(bitutil.SBE16(data)) * 0.25 * 100.0
	target.(*surveillance.Adsb).BarometricAlt = surveillance.Some(feet * 0.3048)
	return nil
}

// geometricHeight decodes I021/140: a 16-bit two's-complement value,
// LSB 6.25ft, WGS-84 referenced.
func geometricHeight(data []byte, target any, state *timebase.State) error {
	feet := float64(bitutil.SBE16(data)) * 6.25
	target.(*surveillance.Adsb).GeometricAlt = surveillance.Some(feet * 0.3048)
	return nil
}

// qualityIndicators accepts I021/090 without decoding it: the
// NUCp/NIC values are not modelled, and the walker has already consumed
// the FX-chained bytes.
func qualityIndicators(data []byte, target any, state *timebase.State) error { return nil }

func targetStatus(data []byte, target any, state *timebase.State) error {
	target.(*surveillance.Adsb).TargetStatus = surveillance.Some(data[0])
	return nil
}

// mopsVersion decodes I021/210's VN subfield (bits 6-4).
func mopsVersion(data []byte, target any, state *timebase.State) error {
	vn := (data[0] >> 4) & 0x07
	target.(*surveillance.Adsb).MOPSVersion = surveillance.Some(vn)
	return nil
}

// airborneGroundVector decodes I021/160 with the same ground-speed
// (LSB 2^-14 NM/s) and track-angle (LSB 360/2^16 degrees) encoding as
// CAT048's I048/200. Editions 0.20 onward carry exactly these 4 bytes.
func airborneGroundVector(data []byte, target any, state *timebase.State) error {
	speed, track, err := common.DecodeGroundVector(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Adsb).GroundVector = surveillance.Some(surveillance.GroundVector{GroundSpeedMS: speed, TrackAngleR: track})
	return nil
}

// airborneGroundVector6 decodes editions 0.12/0.13's 6-byte I021/160:
// the same leading speed/track-angle octets as the later 4-byte item,
// followed by a vertical-rate subfield this port doesn't surface.
func airborneGroundVector6(data []byte, target any, state *timebase.State) error {
	return airborneGroundVector(data[:4], target, state)
}

// modeSMBData decodes I021/250, 8-byte repetitions of 1-byte BDS
// register number followed by 7 bytes of MB data, same shape as
// CAT048's I048/250.
func modeSMBData(data []byte, target any, state *timebase.State) error {
	a := target.(*surveillance.Adsb)
	for i := 1; i+8 <= len(data); i += 8 {
		reg := data[i]
		mb := make([]byte, 7)
		copy(mb, data[i+1:i+8])
		a.BDSRegisters[reg] = mb
	}
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

// fieldsFor builds this category's FRN table for one reference version.
// Every FRN but two (9 and 26) is identical across every published
// edition; I021/150 (Air Speed) and I021/160 (Airborne Ground Vector)
// are the two items whose wire length genuinely changes across
// editions - 0.12/0.13 carry 6-byte forms (an extra heading/vertical-
// rate tail this port doesn't surface), every edition from 0.20 on
// carries the shorter 2-/4-byte forms. airSpeedLen/groundVectorLen and
// groundVectorHandler let each edition's NewUAP call select its own
// pair without duplicating the other 40 entries per edition.
func fieldsFor(airSpeedLen, groundVectorLen int, groundVectorHandler asterix.ItemHandler) []asterix.Field {
	return []asterix.Field{
		{FRN: 1, Name: "I021/010", Descr: "Data Source Identification", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
		{FRN: 2, Name: "I021/040", Descr: "Target Report Descriptor", Kind: asterix.Extended, Handler: discard, Mandatory: true},
		{FRN: 3, Name: "I021/161", Descr: "Track Number", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 4, Name: "I021/015", Descr: "Service Identification", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
		{FRN: 5, Name: "I021/071", Descr: "Time of Applicability for Position", Kind: asterix.Fixed, FixedLen: 3, Handler: discard},
		{FRN: 6, Name: "I021/130", Descr: "Position in WGS-84 Coordinates", Kind: asterix.Fixed, FixedLen: 6, Handler: positionWGS84},
		{FRN: 7, Name: "I021/131", Descr: "Position in WGS-84 Coordinates, High Resolution", Kind: asterix.Fixed, FixedLen: 8, Handler: positionWGS84HighRes},
		{FRN: 8, Name: "I021/072", Descr: "Time of Applicability for Velocity", Kind: asterix.Fixed, FixedLen: 3, Handler: discard},
		{FRN: 9, Name: "I021/150", Descr: "Air Speed", Kind: asterix.Fixed, FixedLen: airSpeedLen, Handler: discard},
		{FRN: 10, Name: "I021/151", Descr: "True Air Speed", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 11, Name: "I021/080", Descr: "Target Address", Kind: asterix.Fixed, FixedLen: 3, Handler: targetAddress, Mandatory: true},
		{FRN: 12, Name: "I021/073", Descr: "Time of Message Reception of Position", Kind: asterix.Fixed, FixedLen: 3, Handler: discard},
		{FRN: 13, Name: "I021/074", Descr: "Time of Message Reception of Position-High Precision", Kind: asterix.Fixed, FixedLen: 4, Handler: discard},
		{FRN: 14, Name: "I021/075", Descr: "Time of Message Reception of Velocity", Kind: asterix.Fixed, FixedLen: 3, Handler: discard},
		{FRN: 15, Name: "I021/076", Descr: "Time of Message Reception of Velocity-High Precision", Kind: asterix.Fixed, FixedLen: 4, Handler: discard},
		{FRN: 16, Name: "I021/140", Descr: "Geometric Height", Kind: asterix.Fixed, FixedLen: 2, Handler: geometricHeight},
		{FRN: 17, Name: "I021/090", Descr: "Quality Indicators", Kind: asterix.Extended, Handler: qualityIndicators},
		{FRN: 18, Name: "I021/210", Descr: "MOPS Version", Kind: asterix.Fixed, FixedLen: 1, Handler: mopsVersion},
		{FRN: 19, Name: "I021/070", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 20, Name: "I021/230", Descr: "Roll Angle", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 21, Name: "I021/145", Descr: "Flight Level", Kind: asterix.Fixed, FixedLen: 2, Handler: flightLevel},
		{FRN: 22, Name: "I021/152", Descr: "Magnetic Heading", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 23, Name: "I021/200", Descr: "Target Status", Kind: asterix.Fixed, FixedLen: 1, Handler: targetStatus},
		{FRN: 24, Name: "I021/155", Descr: "Barometric Vertical Rate", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 25, Name: "I021/157", Descr: "Geometric Vertical Rate", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 26, Name: "I021/160", Descr: "Airborne Ground Vector", Kind: asterix.Fixed, FixedLen: groundVectorLen, Handler: groundVectorHandler},
		{FRN: 27, Name: "I021/165", Descr: "Track Angle Rate", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 28, Name: "I021/077", Descr: "Time of Report Transmission", Kind: asterix.Fixed, FixedLen: 3, Handler: discard},
		{FRN: 29, Name: "I021/170", Descr: "Target Identification", Kind: asterix.Fixed, FixedLen: 6, Handler: targetIdentification},
		{FRN: 30, Name: "I021/020", Descr: "Emitter Category", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
		{FRN: 31, Name: "I021/220", Descr: "Met Information", Kind: asterix.Compound, Imm: asterix.UniformCompoundHandler(asterix.Cat021, "I021/220", 2)},
		{FRN: 32, Name: "I021/146", Descr: "Selected Altitude", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 33, Name: "I021/148", Descr: "Final State Selected Altitude", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
		{FRN: 34, Name: "I021/110", Descr: "Trajectory Intent", Kind: asterix.Compound, Imm: asterix.UniformCompoundHandler(asterix.Cat021, "I021/110", 15)},
		{FRN: 35, Name: "I021/016", Descr: "Service Management", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
		{FRN: 36, Name: "I021/008", Descr: "Aircraft Operational Status", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
		{FRN: 37, Name: "I021/271", Descr: "Surface Capabilities and Characteristics", Kind: asterix.Extended, Handler: discard},
		{FRN: 38, Name: "I021/132", Descr: "Message Amplitude", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
		{FRN: 39, Name: "I021/250", Descr: "Mode S MB Data", Kind: asterix.Repetitive, RepUnit: 8, Handler: modeSMBData},
		{FRN: 40, Name: "I021/260", Descr: "ACAS Resolution Advisory Report", Kind: asterix.Fixed, FixedLen: 7, Handler: discard},
		{FRN: 41, Name: "I021/400", Descr: "Receiver ID", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
		{FRN: 42, Name: "I021/295", Descr: "Data Ages", Kind: asterix.Compound, Imm: asterix.UniformCompoundHandler(asterix.Cat021, "I021/295", 1)},
	}
}

// fieldsEarly is editions 0.12/0.13's FRN table: I021/150 and
// I021/160 both carry their longer, 6-byte forms.
func fieldsEarly() []asterix.Field { return fieldsFor(6, 6, airborneGroundVector6) }

// fieldsStandard is every edition from 0.20 onward: I021/150 shrinks
// to 2 bytes, I021/160 to 4, and stays there through 2.4.
func fieldsStandard() []asterix.Field { return fieldsFor(2, 4, airborneGroundVector) }
