package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/envelope"
	"github.com/kvitre/atxreplay/surveillance"
)

func TestParseByteOrder(t *testing.T) {
	if bo, err := parseByteOrder("big"); err != nil || bo != envelope.BigEndian {
		t.Errorf("big: %v,%v", bo, err)
	}
	if bo, err := parseByteOrder("little"); err != nil || bo != envelope.LittleEndian {
		t.Errorf("little: %v,%v", bo, err)
	}
	if _, err := parseByteOrder("middle"); err == nil {
		t.Error("expected error for unknown byte order")
	}
}

func TestParseBaseDateExplicit(t *testing.T) {
	d, err := parseBaseDate("2026-03-05")
	if err != nil {
		t.Fatalf("parseBaseDate: %v", err)
	}
	if d.Year != 2026 || d.Month != 3 || d.Day != 5 {
		t.Errorf("date = %+v, want 2026-03-05", d)
	}
}

func TestParseBaseDateRejectsGarbage(t *testing.T) {
	if _, err := parseBaseDate("not-a-date"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseCategoriesDefaultsToAll(t *testing.T) {
	cats, err := parseCategories("")
	if err != nil {
		t.Fatalf("parseCategories: %v", err)
	}
	if len(cats) != len(catalog) {
		t.Errorf("got %d categories, want %d", len(cats), len(catalog))
	}
}

func TestParseCategoriesExplicit(t *testing.T) {
	cats, err := parseCategories("21, 48")
	if err != nil {
		t.Fatalf("parseCategories: %v", err)
	}
	want := []asterix.Category{asterix.Cat021, asterix.Cat048}
	if len(cats) != 2 || cats[0] != want[0] || cats[1] != want[1] {
		t.Errorf("cats = %v, want %v", cats, want)
	}
}

func TestParseVersionOverrides(t *testing.T) {
	overrides, err := parseVersionOverrides([]string{"21=1.4", " 10 = 1.1 "})
	if err != nil {
		t.Fatalf("parseVersionOverrides: %v", err)
	}
	if overrides[asterix.Cat021] != "1.4" || overrides[asterix.Cat010] != "1.1" {
		t.Errorf("overrides = %v", overrides)
	}
}

func TestParseVersionOverridesRejectsMalformed(t *testing.T) {
	if _, err := parseVersionOverrides([]string{"garbage"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildSinkKinds(t *testing.T) {
	var buf bytes.Buffer
	for _, kind := range []string{"", "list", "csv", "json"} {
		s, err := buildSink(kind, &buf)
		if err != nil {
			t.Errorf("buildSink(%q): %v", kind, err)
			continue
		}
		if s == nil {
			t.Errorf("buildSink(%q) returned nil", kind)
		}
	}
	if _, err := buildSink("xml", &buf); err == nil {
		t.Error("expected error for unknown sink kind")
	}
}

func TestOpenReaderNetto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.ast")
	if err := os.WriteFile(path, []byte{0x01, 0x00, 0x03}, 0o644); err != nil {
		t.Fatal(err)
	}
	rd, err := openReader("netto", path, envelope.BigEndian, surveillance.FrameDate{Year: 2026, Month: 1, Day: 1}, false, 0)
	if err != nil {
		t.Fatalf("openReader: %v", err)
	}
	defer rd.Close()

	f, err := rd.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(f.Payload) != 3 {
		t.Errorf("payload len = %d, want 3", len(f.Payload))
	}
}

func TestOpenReaderUnknownFormat(t *testing.T) {
	if _, err := openReader("carrier-pigeon", "x", envelope.BigEndian, surveillance.FrameDate{Year: 2026, Month: 1, Day: 1}, false, 0); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
