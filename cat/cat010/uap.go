// Package cat010 implements ASTERIX Category 010, Monosensor Surface
// Movement Data (multilateration reports). Its WGS-84/Mode-3A/Mode-C/
// velocity item shapes mirror a Multilateration Target Reports profile
// under different item numbers; those shapes are generalised here to
// CAT010's own FRN table and decoded with the shared cat/common
// primitives.
package cat010

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const (
	Version1 = "0.24s" // edition 0.24, 1st published profile
	Version3 = "1.1"   // edition 1.1, 3rd published profile
)

// NewUAP dispatches on the published edition string. "-2" (the interim,
// never-widely-deployed edition 2 profile) is rejected outright rather
// than silently treated as an alias of Version3 - the two editions
// diverge enough in FRN layout that guessing would misdecode item 6
// onward.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version1:
		return asterix.NewBaseUAP(asterix.Cat010, Version1, 2, fieldsV1, newMlat)
	case Version3:
		return asterix.NewBaseUAP(asterix.Cat010, Version3, 3, fieldsV3, newMlat)
	case "-2":
		return nil, fmt.Errorf("%w: CAT010 edition 2 (\"-2\") is not supported; use %q", asterix.ErrUAPNotDefined, Version3)
	default:
		return nil, fmt.Errorf("%w: CAT010 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version3 }
func AvailableVersions() []string { return []string{Version1, Version3} }

func newMlat() any { return &surveillance.Mlat{} }

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
	target.(*surveillance.Mlat).TimeOfDay = surveillance.Some(tod)
	return nil
}

func targetReportDescriptor(data []byte, target any, state *timebase.State) error {
	target.(*surveillance.Mlat).DetectionType = surveillance.Some(data[0] & 0x03)
	return nil
}

func positionWGS84(data []byte, target any, state *timebase.State) error {
	lat, lon, err := common.DecodeWGS84Position32(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).WGS84 = surveillance.Some(surveillance.WGS84Position{Lat: lat, Lon: lon, HighPrecision: true})
	return nil
}

func positionCartesian(data []byte, target any, state *timebase.State) error {
	x, y, err := common.DecodeCalculatedPositionCartesian(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).Calculated = surveillance.Some(surveillance.CartesianPosition{X: x, Y: y})
	return nil
}

func mode3A(data []byte, target any, state *timebase.State) error {
	m3a, err := common.DecodeMode3A(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).Mode3AInfo = surveillance.Some(m3a)
	return nil
}

// modeC suppresses storage when the item's own V/G bits flag the value,
// the same rule CAT016 applies, rather than carrying a
// known-unreliable altitude into the normalised object.
func modeC(data []byte, target any, state *timebase.State) error {
	modec, err := common.DecodeModeC(data)
	if err != nil {
		return err
	}
	if modec.Invalid == surveillance.True || modec.Garbled == surveillance.True {
		return asterix.ErrDomainViolation
	}
	target.(*surveillance.Mlat).ModeCInfo = surveillance.Some(modec)
	return nil
}

func targetAddress(data []byte, target any, state *timebase.State) error {
	addr, err := common.DecodeAircraftAddress(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).Address = surveillance.Some(addr)
	return nil
}

func targetIdentification(data []byte, target any, state *timebase.State) error {
	// data[0] is the leading STI octet; the 6-byte packed identification follows.
	id, err := common.DecodeIdentification(data[1:])
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).TargetID = surveillance.Some(id)
	return nil
}

func velocity(data []byte, target any, state *timebase.State) error {
	speed, track, err := common.DecodeGroundVector(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).Velocity = surveillance.Some(surveillance.GroundVector{GroundSpeedMS: speed, TrackAngleR: track})
	return nil
}

// sext12 sign-extends a 12-bit two's-complement value held in the low
// 12 bits of v.
func sext12(v uint16) int16 {
	v &= 0x0FFF
	if v&0x0800 != 0 {
		return int16(v) - 0x1000
	}
	return int16(v)
}

// computedVelocityV1 decodes edition 0.24s's 3-byte I010/202: two
// packed 12-bit signed components, LSB = 1 m/s, no scale factor.
func computedVelocityV1(data []byte, target any, state *timebase.State) error {
	if len(data) != 3 {
		return fmt.Errorf("%w: I010/202 length %d, want 3", asterix.ErrInvalidField, len(data))
	}
	vx12 := uint16(data[0])<<4 | uint16(data[1])>>4
	vy12 := uint16(data[1]&0x0F)<<8 | uint16(data[2])
	vx := float64(sext12(vx12))
	vy := float64(sext12(vy12))
	target.(*surveillance.Mlat).ComputedVelocity = surveillance.Some(surveillance.CartesianVelocity{VX: vx, VY: vy})
	return nil
}

// computedVelocityV3 decodes edition 1.1's 4-byte I010/202: two
// 16-bit signed components, LSB = 0.25 m/s.
func computedVelocityV3(data []byte, target any, state *timebase.State) error {
	if len(data) != 4 {
		return fmt.Errorf("%w: I010/202 length %d, want 4", asterix.ErrInvalidField, len(data))
	}
	vx := int16(uint16(data[0])<<8 | uint16(data[1]))
	vy := int16(uint16(data[2])<<8 | uint16(data[3]))
	target.(*surveillance.Mlat).ComputedVelocity = surveillance.Some(surveillance.CartesianVelocity{
		VX: float64(vx) * 0.25,
		VY: float64(vy) * 0.25,
	})
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

// fieldsV1 is edition 0.24s's FRN table. This edition never defined
// I010/200 (Calculated Track Velocity in polar form) at all; FRN 7
// carries I010/202 instead, at its 3-byte, unscaled-12-bit-component
// length.
var fieldsV1 = []asterix.Field{
	{FRN: 1, Name: "I010/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I010/000", Descr: "Message Type", Kind: asterix.Fixed, FixedLen: 1, Handler: discard, Mandatory: true},
	{FRN: 3, Name: "I010/020", Descr: "Target Report Descriptor", Kind: asterix.Extended, Handler: targetReportDescriptor},
	{FRN: 4, Name: "I010/140", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay},
	{FRN: 5, Name: "I010/041", Descr: "Position (WGS-84)", Kind: asterix.Fixed, FixedLen: 8, Handler: positionWGS84},
	{FRN: 6, Name: "I010/042", Descr: "Position (Cartesian)", Kind: asterix.Fixed, FixedLen: 4, Handler: positionCartesian},
	{FRN: 7, Name: "I010/202", Descr: "Calculated Track Velocity in Cartesian Co-ordinates", Kind: asterix.Fixed, FixedLen: 3, Handler: computedVelocityV1},
	{FRN: 8, Name: "I010/060", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: mode3A},
	{FRN: 9, Name: "I010/090", Descr: "Mode-C Code", Kind: asterix.Fixed, FixedLen: 2, Handler: modeC},
	{FRN: 10, Name: "I010/220", Descr: "Target Address", Kind: asterix.Fixed, FixedLen: 3, Handler: targetAddress},
	{FRN: 11, Name: "I010/245", Descr: "Target Identification", Kind: asterix.Fixed, FixedLen: 7, Handler: discard},
	{FRN: 12, Name: "I010/250", Descr: "Mode S MB Data", Kind: asterix.Repetitive, RepUnit: 8, Handler: discard},
	{FRN: 13, Name: "I010/161", Descr: "Track Number", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 14, Name: "I010/170", Descr: "Track Status", Kind: asterix.Extended, Handler: discard},
}

// fieldsV3 is edition 1.1's FRN table; I010/245's 7-byte field is this
// edition's 6-byte ICAO-packed identification, so it gets a real
// decode instead of v1's placeholder discard. I010/200 (ground
// vector, polar form) only exists under this edition; I010/202
// (Cartesian computed velocity) also grows to 4 bytes with full
// 16-bit, 0.25 m/s-scaled components and sits in a new FRN slot since
// both items coexist on a 1.1 record.
var fieldsV3 = []asterix.Field{
	{FRN: 1, Name: "I010/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I010/000", Descr: "Message Type", Kind: asterix.Fixed, FixedLen: 1, Handler: discard, Mandatory: true},
	{FRN: 3, Name: "I010/020", Descr: "Target Report Descriptor", Kind: asterix.Extended, Handler: targetReportDescriptor},
	{FRN: 4, Name: "I010/140", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay},
	{FRN: 5, Name: "I010/041", Descr: "Position (WGS-84)", Kind: asterix.Fixed, FixedLen: 8, Handler: positionWGS84},
	{FRN: 6, Name: "I010/042", Descr: "Position (Cartesian)", Kind: asterix.Fixed, FixedLen: 4, Handler: positionCartesian},
	{FRN: 7, Name: "I010/200", Descr: "Calculated Track Velocity", Kind: asterix.Fixed, FixedLen: 4, Handler: velocity},
	{FRN: 8, Name: "I010/060", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: mode3A},
	{FRN: 9, Name: "I010/090", Descr: "Mode-C Code", Kind: asterix.Fixed, FixedLen: 2, Handler: modeC},
	{FRN: 10, Name: "I010/220", Descr: "Target Address", Kind: asterix.Fixed, FixedLen: 3, Handler: targetAddress},
	{FRN: 11, Name: "I010/245", Descr: "Target Identification", Kind: asterix.Fixed, FixedLen: 7, Handler: targetIdentification},
	{FRN: 12, Name: "I010/250", Descr: "Mode S MB Data", Kind: asterix.Repetitive, RepUnit: 8, Handler: discard},
	{FRN: 13, Name: "I010/161", Descr: "Track Number", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 14, Name: "I010/170", Descr: "Track Status", Kind: asterix.Extended, Handler: discard},
	{FRN: 15, Name: "I010/202", Descr: "Calculated Track Velocity in Cartesian Co-ordinates", Kind: asterix.Fixed, FixedLen: 4, Handler: computedVelocityV3},
}
