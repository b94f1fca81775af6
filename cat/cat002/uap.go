// Package cat002 implements ASTERIX Category 002, Monoradar
// Sector/Status Messages, version 1.0. Every record becomes a
// surveillance.RadarService.
package cat002

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/bitutil"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const Version10 = "1.0"

func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version10:
		return asterix.NewBaseUAP(asterix.Cat002, Version10, 1, fieldsV10, newRadarService)
	default:
		return nil, fmt.Errorf("%w: CAT002 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version10 }
func AvailableVersions() []string { return []string{Version10} }

func newRadarService() any { return &surveillance.RadarService{} }

func dataSourceID(data []byte, target any, state *timebase.State) error {
	sac, sic, err := common.DecodeDataSourceID(data)
	if err != nil {
		return err
	}
	state.SetSACSIC(sac, sic)
	return nil
}

func messageType(data []byte, target any, state *timebase.State) error { return nil }

func sectorNumber(data []byte, target any, state *timebase.State) error {
	deg := float64(data[0]) * (360.0 / 256.0)
	target.(*surveillance.RadarService).AntennaAzimuthR = surveillance.Some(deg * (3.14159265358979323846 / 180.0))
	target.(*surveillance.RadarService).SectorNumber = surveillance.Some(data[0])
	return nil
}

func timeOfDay(data []byte, target any, state *timebase.State) error {
	tod, err := common.DecodeTimeOfDay(data)
	if err != nil {
		return err
	}
	state.UpdateTOD(tod, nil)
	return nil
}

func antennaRotationSpeed(data []byte, target any, state *timebase.State) error {
	_ = bitutil.BE16(data) // period in 1/128s, not carried by RadarService today
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

var fieldsV10 = []asterix.Field{
	{FRN: 1, Name: "I002/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I002/000", Descr: "Message Type", Kind: asterix.Fixed, FixedLen: 1, Handler: messageType, Mandatory: true},
	{FRN: 3, Name: "I002/020", Descr: "Sector Number", Kind: asterix.Fixed, FixedLen: 1, Handler: sectorNumber},
	{FRN: 4, Name: "I002/030", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay},
	{FRN: 5, Name: "I002/041", Descr: "Antenna Rotation Speed", Kind: asterix.Fixed, FixedLen: 2, Handler: antennaRotationSpeed},
	{FRN: 6, Name: "I002/050", Descr: "Station Configuration Status", Kind: asterix.Extended, Handler: discard},
	{FRN: 7, Name: "I002/060", Descr: "Station Processing Mode", Kind: asterix.Extended, Handler: discard},
}
