// Package cat065 implements ASTERIX Category 065, SDPS Service Status
// Messages. No teacher source exists for this category; it reuses
// cat002's surveillance.RadarService target for the same
// service/status-report shape at the SDPS level instead of the
// sensor level.
package cat065

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/common"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

const Version15 = "1.5"

func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version15:
		return asterix.NewBaseUAP(asterix.Cat065, Version15, 1, fieldsV15, newRadarService)
	default:
		return nil, fmt.Errorf("%w: CAT065 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string       { return Version15 }
func AvailableVersions() []string { return []string{Version15} }

func newRadarService() any { return &surveillance.RadarService{} }

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
	return nil
}

func discard(data []byte, target any, state *timebase.State) error { return nil }

var fieldsV15 = []asterix.Field{
	{FRN: 1, Name: "I065/010", Descr: "Data Source Identifier", Kind: asterix.Fixed, FixedLen: 2, Handler: dataSourceID, Mandatory: true},
	{FRN: 2, Name: "I065/000", Descr: "Message Type", Kind: asterix.Fixed, FixedLen: 1, Handler: discard, Mandatory: true},
	{FRN: 3, Name: "I065/015", Descr: "Service Identification", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 4, Name: "I065/030", Descr: "Time of Day", Kind: asterix.Fixed, FixedLen: 3, Handler: timeOfDay, Mandatory: true},
	{FRN: 5, Name: "I065/020", Descr: "Batch Number", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 6, Name: "I065/040", Descr: "SDPS Configuration and Status", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
	{FRN: 7, Name: "I065/050", Descr: "Service Status Report", Kind: asterix.Fixed, FixedLen: 1, Handler: discard},
}
