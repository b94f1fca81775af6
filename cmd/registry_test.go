package cmd

import (
	"testing"

	"github.com/kvitre/atxreplay/asterix"
)

func TestCatalogEntryFor(t *testing.T) {
	entry, ok := catalogEntryFor(asterix.Cat048)
	if !ok {
		t.Fatal("expected CAT048 in catalog")
	}
	if entry.Latest() == "" {
		t.Error("expected a non-empty latest version")
	}
	if _, ok := catalogEntryFor(asterix.Category(250)); ok {
		t.Error("expected unknown category to be absent")
	}
}

func TestBuildUAPsAppliesOverride(t *testing.T) {
	uaps, err := buildUAPs([]asterix.Category{asterix.Cat021}, map[asterix.Category]string{asterix.Cat021: "1.4"})
	if err != nil {
		t.Fatalf("buildUAPs: %v", err)
	}
	if _, ok := uaps[asterix.Cat021]; !ok {
		t.Fatal("expected CAT021 UAP to be built")
	}
}

func TestBuildUAPsRejectsUnknownCategory(t *testing.T) {
	if _, err := buildUAPs([]asterix.Category{asterix.Category(250)}, nil); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
