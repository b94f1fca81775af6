// Package cat021 implements ASTERIX Category 021, ADS-B Reports,
// across every published edition from 0.12 through 2.4. Most of the
// FRN layout is stable across that whole span, but two items are not:
// I021/150 (Air Speed) and I021/160 (Airborne Ground Vector) both
// shrink from a 6-byte to a 2-/4-byte wire form at edition 0.20 and
// stay there through 2.4. NewUAP dispatches each requested edition to
// the matching field table instead of forcing every edition through
// one shared length.
package cat021

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
)

const (
	Version012 = "0.12"
	Version013 = "0.13"
	Version020 = "0.20"
	Version023 = "0.23"
	Version10P = "1.0P"
	Version14  = "1.4"
	Version21  = "2.1"
	Version24  = "2.4"
)

func AvailableVersions() []string {
	return []string{Version012, Version013, Version020, Version023, Version10P, Version14, Version21, Version24}
}

func LatestVersion() string { return Version24 }

// fieldsForVersion returns the FRN table for one published edition,
// per astx_021.cpp's set_vsn021/desc_i021_150/desc_i021_160: editions
// 0.12 and 0.13 use the 6-byte I021/150/160 forms, every edition from
// 0.20 on uses the shorter, standard forms.
func fieldsForVersion(version string) ([]asterix.Field, bool) {
	switch version {
	case Version012, Version013:
		return fieldsEarly(), true
	case Version020, Version023, Version10P, Version14, Version21, Version24:
		return fieldsStandard(), true
	default:
		return nil, false
	}
}

func NewUAP(version string) (asterix.UAP, error) {
	fields, ok := fieldsForVersion(version)
	if !ok {
		return nil, fmt.Errorf("%w: CAT021 version %q", asterix.ErrUAPNotDefined, version)
	}
	return asterix.NewBaseUAP(asterix.Cat021, version, 6, fields, newAdsb)
}

func newAdsb() any { return &surveillance.Adsb{BDSRegisters: make(map[uint8][]byte)} }

// Fields exposes edition 0.23's field table so cat221 (wire-identical
// to 0.23) can build its own UAP from the same item catalogue without
// duplicating it.
func Fields() []asterix.Field { return fieldsStandard() }

// NewObject exposes this package's object constructor for the same
// reason as Fields.
func NewObject() any { return newAdsb() }
