// Package cat019 implements ASTERIX Category 019, Multilateration
// System Status Messages. No teacher source exists for this category;
// it shares cat010's surveillance.Mlat target and most of cat010's
// decode primitives, trimmed to the status-message subset and with
// every record flagged IsStatusMessage.
package cat019

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const Version12 = "1.2"

func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version12:
		return asterix.NewBaseUAP(asterix.Cat019, Version12, 2, fieldsV12, newMlatStatus)
	default:
		return nil, fmt.Errorf("%w: CAT019 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version12 }
func AvailableVersions() []string { return []string{Version12} }

func newMlatStatus() any { return &surveillance.Mlat{IsStatusMessage: true} }

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

func positionWGS84(data []byte, target any, state *timebase.State) error {
	lat, lon, err := common.DecodeWGS84Position32(data)
	if err != nil {
		return err
	}
	target.(*surveillance.Mlat).WGS84 = surveillance.Some(surveillance.WGS84Position{Lat: lat, Lon: lon, HighPrecision: true})
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

var fieldsV12 = []asterix.Field{
	{FRN: 1, Name: "I019/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I019/000", Descr: "Message Type", Kind: asterix.Fixed, FixedLen: 1, Handler: discard, Mandatory: true},
	{FRN: 3, Name: "I019/140", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay},
	{FRN: 4, Name: "I019/550", Descr: "System Status", Kind: asterix.Extended, Handler: discard},
	{FRN: 5, Name: "I019/551", Descr: "Tracking Processor Detailed Status", Kind: asterix.Extended, Handler: discard},
	{FRN: 6, Name: "I019/552", Descr: "Remote Sensor Status", Kind: asterix.Repetitive, RepUnit: 3, Handler: discard},
	{FRN: 7, Name: "I019/607", Descr: "Reference Station Configuration", Kind: asterix.Repetitive, RepUnit: 1, Handler: discard},
	{FRN: 8, Name: "I019/008", Descr: "Receiver/Transmitter Status", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 9, Name: "I019/606", Descr: "Ground Station Position", Kind: asterix.Fixed, FixedLen: 8, Handler: positionWGS84},
	{FRN: 10, Name: "I019/610", Descr: "Clock Reset", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
}
