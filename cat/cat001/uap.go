// Package cat001 implements ASTERIX Category 001, Monoradar Data
// (legacy plots), version 1.2.
package cat001

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/bitutil"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const Version12 = "1.2"

func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version12:
		return asterix.NewBaseUAP(asterix.Cat001, Version12, 2, fieldsV12, newRadarTarget)
	default:
		return nil, fmt.Errorf("%w: CAT001 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version12 }
func AvailableVersions() []string { return []string{Version12} }

func newRadarTarget() any { return &surveillance.RadarTarget{} }

func dataSourceID(data []byte, target any, state *timebase.State) error {
	sac, sic, err := common.DecodeDataSourceID(data)
	if err != nil {
		return err
	}
	state.SetSACSIC(sac, sic)
	return nil
}

func targetReportDescriptor(data []byte, target any, state *timebase.State) error {
	rt := target.(*surveillance.RadarTarget)
	rt.DetectionType = surveillance.Some(uint8((data[0] >> 5) & 0x07))
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

// modeC decodes I001/090: a 2-byte Mode-C code in binary (not Gray)
// representation, LSB 1/4 FL, with its own V/G flags in the top bits -
// unlike CAT048's split between I048/090 (clean binary) and I048/100
// (Gray code), CAT001 carries the flagged form directly.
func modeC(data []byte, target any, state *timebase.State) error {
	modec, err := common.DecodeModeC(data)
	if err != nil {
		return err
	}
	if modec.Invalid == surveillance.True {
		return asterix.ErrDomainViolation
	}
	target.(*surveillance.RadarTarget).ModeCInfo = surveillance.Some(modec)
	return nil
}

// truncatedTimeOfDay decodes I001/141's 2-byte, 1/128s time-of-day
// field and restores the missing high bits against the timebase's last
// full value.
func truncatedTimeOfDay(data []byte, target any, state *timebase.State) error {
	low := bitutil.BE16(data)
	full, err := state.FillUp(low)
	if err != nil {
		return nil // no reference yet; leave TimeOfDay absent rather than fail the record
	}
	state.UpdateTOD(full, nil)
	target.(*surveillance.RadarTarget).TimeOfDay = surveillance.Some(state.EffectiveTime(full))
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

var fieldsV12 = []asterix.Field{
	{FRN: 1, Name: "I001/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I001/020", Descr: "Target Report Descriptor", Kind: asterix.Extended, Handler: targetReportDescriptor, Mandatory: true},
	{FRN: 3, Name: "I001/040", Descr: "Measured Position", Kind: asterix.Fixed, FixedLen: 4, Handler: measuredPosition},
	{FRN: 4, Name: "I001/070", Descr: "Mode-3/A Code", Kind: asterix.Fixed, FixedLen: 2, Handler: mode3A},
	{FRN: 5, Name: "I001/090", Descr: "Mode-C Code", Kind: asterix.Fixed, FixedLen: 2, Handler: modeC},
	{FRN: 6, Name: "I001/130", Descr: "Radar Plot Characteristics", Kind: asterix.Compound, Imm: asterix.UniformCompoundHandler(asterix.Cat001, "I001/130", 1)},
	{FRN: 7, Name: "I001/141", Descr: "Truncated Time of Day", Kind: asterix.Fixed, FixedLen: 2, Handler: truncatedTimeOfDay},
	{FRN: 8, Name: "I001/050", Descr: "Mode-2 Code", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 9, Name: "I001/120", Descr: "Measured Radial Doppler Speed", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 10, Name: "I001/131", Descr: "Received Power", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 11, Name: "I001/080", Descr: "Mode-3/A Code Confidence", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 12, Name: "I001/100", Descr: "Mode-C Code and Confidence", Kind: asterix.Fixed, FixedLen: 4, Handler: discard},
	{FRN: 13, Name: "I001/060", Descr: "Mode-2 Code Confidence", Kind: asterix.Fixed, FixedLen: 2, Handler: discard},
	{FRN: 14, Name: "I001/030", Descr: "Warning/Error Conditions", Kind: asterix.Extended, Handler: discard},
}
