// Package cat221 is a thin re-export of ASTERIX Category 021 edition
// 0.23: CAT221 was the provisional category number used for ADS-B
// reports before the item catalogue was renumbered and folded into
// CAT021, and its wire format for that edition is unchanged. Rather
// than duplicate cat021's field table, this package reuses it verbatim
// under Category 221.
package cat221

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/cat021"
)

const Version023 = cat021.Version023

func NewUAP(version string) (asterix.UAP, error) {
	if version != Version023 {
		return nil, fmt.Errorf("%w: CAT221 version %q", asterix.ErrUAPNotDefined, version)
	}
	return asterix.NewBaseUAP(asterix.Cat221, Version023, 6, cat021.Fields(), cat021.NewObject)
}

func LatestVersion() string       { return Version023 }
func AvailableVersions() []string { return []string{Version023} }
