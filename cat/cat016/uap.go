// Package cat016 implements ASTERIX Category 016, Monoradar Track
// Data. No teacher source exists for this category; it is grounded on
// cat/cat048's field table (the two categories share almost the same
// plot/track item shapes) with SAC/SIC propagation and an
// IsRadarTrack flag driven directly by I016/020's first octet instead
// of a separate track-status item.
package cat016

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const Version13 = "1.3"

func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version13:
		return asterix.NewBaseUAP(asterix.Cat016, Version13, 3, fieldsV13, newRadarTarget)
	default:
		return nil, fmt.Errorf("%w: CAT016 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version13 }
func AvailableVersions() []string { return []string{Version13} }

func newRadarTarget() any { return &surveillance.RadarTarget{ModeSRegisters: make(map[uint8][]byte)} }

func dataSourceID(data []byte, target any, state *timebase.State) error {
	sac, sic, err := common.DecodeDataSourceID(data)
	if err != nil {
		return err
	}
	state.SetSACSIC(sac, sic)
	return nil
}

// trackDescriptor reads I016/020's first octet: bit8 distinguishes a
// track (set) from a plot (clear), the rest is report-type detail that
// has no slot on RadarTarget.
func trackDescriptor(data []byte, target any, state *timebase.State) error {
	target.(*surveillance.RadarTarget).IsRadarTrack = data[0]&0x80 != 0
	return nil
}

func timeOfDay(data []byte, target any, state *timebase.State) error {
	tod, err := common.DecodeTimeOfDay(data)
	if err != nil {
		return err
	}
	state.UpdateTOD(tod, nil)
	target.(*surveillance.RadarTarget).TimeOfDay = surveillance.Some(state.EffectiveTime(tod))
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

func mode3A(data []byte, target any, state *timebase.State) error {
	m3a, err := common.DecodeMode3A(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).Mode3AInfo = surveillance.Some(m3a)
	return nil
}

// modeC suppresses storage on a set invalid/garbled bit (I016/090).
// CAT021's I021/145 carries no such bits and its handler stores every
// decoded value.
func modeC(data []byte, target any, state *timebase.State) error {
	modec, err := common.DecodeModeC(data)
	if err != nil {
		return err
	}
	if modec.Invalid == surveillance.True || modec.Garbled == surveillance.True {
		return asterix.ErrDomainViolation
	}
	target.(*surveillance.RadarTarget).ModeCInfo = surveillance.Some(modec)
	return nil
}

func calculatedVelocity(data []byte, target any, state *timebase.State) error {
	speed, trackR, err := common.DecodeGroundVector(data)
	if err != nil {
		return err
	}
	target.(*surveillance.RadarTarget).GroundVector = surveillance.Some(surveillance.GroundVector{GroundSpeedMS: speed, TrackAngleR: trackR})
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

func discard(data []byte, target any, state *timebase.State) error { return nil }

var fieldsV13 = []asterix.Field{
	{FRN: 1, Name: "I016/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I016/020", Descr: "Track/Plot Descriptor", Kind: asterix.Extended, Handler: trackDescriptor, Mandatory: true},
	{FRN: 3, Name: "I016/140", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay, Mandatory: true},
	{FRN: 4, Name: "I016/161", Descr: "Track Number", Kind: asterix.Fixed, FixedLen: 2, Handler: trackNumber},
	{FRN: 5, Name: "I016/042", Descr: "Calculated Position (Cartesian)", Kind: asterix.Fixed, FixedLen: 4, Handler: calculatedPosition},
	{FRN: 6, Name: "I016/070", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: mode3A},
	{FRN: 7, Name: "I016/090", Descr: "Mode-C Code", Kind: asterix.Fixed, FixedLen: 2, Handler: modeC},
	{FRN: 8, Name: "I016/200", Descr: "Calculated Track Velocity", Kind: asterix.Fixed, FixedLen: 4, Handler: calculatedVelocity},
	{FRN: 9, Name: "I016/220", Descr: "Aircraft Address", Kind: asterix.Fixed, FixedLen: 3, Handler: aircraftAddress},
	{FRN: 10, Name: "I016/230", Descr: "Track Status", Kind: asterix.Extended, Handler: discard},
	{FRN: 11, Name: "I016/210", Descr: "Track Quality", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
}
