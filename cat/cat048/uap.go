// Package cat048 implements ASTERIX Category 048, Monoradar Target
// Reports (plots and tracks), version 1.32 - the richest of the
// categories this module decodes, with handler functions that
// populate a surveillance.RadarTarget directly.
package cat048

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
)

const Version132 = "1.32"

// NewUAP returns the UAP for the requested CAT048 reference version.
// CAT048 has had one stable reference version (1.32) since the 1990s;
// the fan-out exists for symmetry with the other categories and to
// surface an unsupported-version error the same way they do.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version132:
		return newUAP132()
	default:
		return nil, fmt.Errorf("%w: CAT048 version %q", asterix.ErrUAPNotDefined, version)
	}
}

func LatestVersion() string        { return Version132 }
func AvailableVersions() []string  { return []string{Version132} }

func newUAP132() (asterix.UAP, error) {
	return asterix.NewBaseUAP(asterix.Cat048, Version132, 4, fields132, newRadarTarget)
}
