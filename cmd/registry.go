package cmd

import (
	"fmt"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/cat/cat001"
	"github.com/kvitre/atxreplay/cat/cat002"
	"github.com/kvitre/atxreplay/cat/cat003"
	"github.com/kvitre/atxreplay/cat/cat010"
	"github.com/kvitre/atxreplay/cat/cat016"
	"github.com/kvitre/atxreplay/cat/cat019"
	"github.com/kvitre/atxreplay/cat/cat021"
	"github.com/kvitre/atxreplay/cat/cat048"
	"github.com/kvitre/atxreplay/cat/cat065"
	"github.com/kvitre/atxreplay/cat/cat221"
)

// catalogEntry is one category's UAP factory, adapted from
// idefix/internal/decoder.CreateDecoder's per-category if-block into a
// table so `list` and `dump` can both walk it instead of duplicating
// the category set.
type catalogEntry struct {
	Category    asterix.Category
	NewUAP      func(version string) (asterix.UAP, error)
	Latest      func() string
	AllVersions func() []string
}

var catalog = []catalogEntry{
	{asterix.Cat001, cat001.NewUAP, cat001.LatestVersion, cat001.AvailableVersions},
	{asterix.Cat002, cat002.NewUAP, cat002.LatestVersion, cat002.AvailableVersions},
	{asterix.Cat003, cat003.NewUAP, cat003.LatestVersion, cat003.AvailableVersions},
	{asterix.Cat010, cat010.NewUAP, cat010.LatestVersion, cat010.AvailableVersions},
	{asterix.Cat016, cat016.NewUAP, cat016.LatestVersion, cat016.AvailableVersions},
	{asterix.Cat019, cat019.NewUAP, cat019.LatestVersion, cat019.AvailableVersions},
	{asterix.Cat021, cat021.NewUAP, cat021.LatestVersion, cat021.AvailableVersions},
	{asterix.Cat048, cat048.NewUAP, cat048.LatestVersion, cat048.AvailableVersions},
	{asterix.Cat065, cat065.NewUAP, cat065.LatestVersion, cat065.AvailableVersions},
	{asterix.Cat221, cat221.NewUAP, cat221.LatestVersion, cat221.AvailableVersions},
}

func catalogEntryFor(cat asterix.Category) (catalogEntry, bool) {
	for _, e := range catalog {
		if e.Category == cat {
			return e, true
		}
	}
	return catalogEntry{}, false
}

// buildUAPs instantiates one UAP per selected category, at its
// configured reference version where overrides names one, falling back
// to that category's latest published version.
func buildUAPs(selected []asterix.Category, overrides map[asterix.Category]string) (map[asterix.Category]asterix.UAP, error) {
	uaps := make(map[asterix.Category]asterix.UAP, len(selected))
	for _, cat := range selected {
		entry, ok := catalogEntryFor(cat)
		if !ok {
			return nil, fmt.Errorf("cmd: no UAP registered for %s", cat)
		}
		version := entry.Latest()
		if v, ok := overrides[cat]; ok {
			version = v
		}
		uap, err := entry.NewUAP(version)
		if err != nil {
			return nil, fmt.Errorf("cmd: building UAP for %s version %q: %w", cat, version, err)
		}
		uaps[cat] = uap
	}
	return uaps, nil
}
