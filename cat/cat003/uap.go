// Package cat003 implements ASTERIX Category 003, MADAP-era system
// track data. No teacher source existed for this category; its UAP is
// new, grounded on cat/cat048's field-table shape and cat/common's
// decode primitives. Every record becomes a surveillance.SystemTrack.
package cat003

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const Version11 = "1.1"

// uapV11 is filled in by NewUAP before any record is decoded; the RFS
// field's handler closes over it rather than the UAP value itself,
// resolving the chicken-and-egg of a field table needing the very UAP
// it is part of.
var uapV11 asterix.UAP

func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version11:
		u, err := asterix.NewBaseUAP(asterix.Cat003, Version11, 3, fieldsV11, newSystemTrack)
		if err != nil {
			return nil, err
		}
		uapV11 = u
		return u, nil
	default:
		return nil, fmt.Errorf("%w: CAT003 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version11 }
func AvailableVersions() []string { return []string{Version11} }

func newSystemTrack() any { return &surveillance.SystemTrack{} }

func dataSourceID(data []byte, target any, state *timebase.State) error {
	sac, sic, err := common.DecodeDataSourceID(data)
	if err != nil {
		return err
	}
	state.SetSACSIC(sac, sic)
	return nil
}

func trackNumber(data []byte, target any, state *timebase.State) error {
	tn, err := common.DecodeTrackNumber(data)
	if err != nil {
		return err
	}
	target.(*surveillance.SystemTrack).TrackNumber = surveillance.Some(tn)
	return nil
}

func calculatedPosition(data []byte, target any, state *timebase.State) error {
	x, y, err := common.DecodeCalculatedPositionCartesian(data)
	if err != nil {
		return err
	}
	target.(*surveillance.SystemTrack).CalculatedLocal = surveillance.Some(surveillance.CartesianPosition{X: x, Y: y})
	return nil
}

func mode3A(data []byte, target any, state *timebase.State) error {
	m3a, err := common.DecodeMode3A(data)
	if err != nil {
		return err
	}
	target.(*surveillance.SystemTrack).Mode3AInfo = surveillance.Some(m3a)
	return nil
}

func groundVector(data []byte, target any, state *timebase.State) error {
	speed, track, err := common.DecodeGroundVector(data)
	if err != nil {
		return err
	}
	target.(*surveillance.SystemTrack).GroundVector = surveillance.Some(surveillance.GroundVector{GroundSpeedMS: speed, TrackAngleR: track})
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

// fieldsV11 covers the track-server subset of CAT003's item catalogue
// relevant to a read-only listing tool. I003/SPF and I003/RFS are given
// separate descriptors ("desc_i003_spf"/"desc_i003_rfs") rather than
// being folded into one, despite both being present-but-unused in this
// minimal profile - see DESIGN.md's Open Question decisions.
var fieldsV11 = []asterix.Field{
	{FRN: 1, Name: "I003/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I003/040", Descr: "Track Number", Kind: asterix.Fixed, FixedLen: 2, Handler: trackNumber, Mandatory: true},
	{FRN: 3, Name: "I003/042", Descr: "Calculated Position (Cartesian)", Kind: asterix.Fixed, FixedLen: 4, Handler: calculatedPosition},
	{FRN: 4, Name: "I003/060", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: mode3A},
	{FRN: 5, Name: "I003/200", Descr: "Calculated Track Velocity", Kind: asterix.Fixed, FixedLen: 4, Handler: groundVector},
	{FRN: 6, Name: "I003/220", Descr: "Track Status", Kind: asterix.Extended, Handler: discard},
	{FRN: 7, Name: "desc_i003_spf", Descr: "Special Purpose Field", Kind: asterix.Immediate, Imm: asterix.SPFHandler(asterix.Cat003)},
	{FRN: 8, Name: "desc_i003_rfs", Descr: "Random Field Sequencing", Kind: asterix.Immediate, Imm: rfsV11},
}

func rfsV11(data []byte, pos *int, target any, state *timebase.State) error {
	return asterix.RFSHandler(uapV11)(data, pos, target, state)
}
