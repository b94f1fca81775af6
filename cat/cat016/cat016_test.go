package cat016

import (
	"encoding/hex"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockTrack(t *testing.T) {
	data, err := hex.DecodeString(
		"10000A" + // CAT 16, LEN 10
			"E0" + // FSPEC: FRN1,2,3 -> 1110000 0 = 0xE0
			"0102" + // I016/010
			"80" + // I016/020 track bit set, FX=0
			"070800") // I016/140 TOD
	if err != nil {
		t.Fatal(err)
	}

	uap, err := NewUAP(Version13)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got *surveillance.RadarTarget
	n, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = obj.(*surveillance.RadarTarget)
		return true
	})
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if n != len(data) {
		t.Errorf("consumed %d, want %d", n, len(data))
	}
	if got == nil {
		t.Fatal("sink never called")
	}
	if !got.IsRadarTrack {
		t.Error("IsRadarTrack = false, want true")
	}
}

// TestDecodeBlockSACSICPropagation covers a block where the second
// record omits I016/010 entirely: its SAC/SIC must still come out set,
// carried forward from the first record via the decode state rather
// than left absent.
func TestDecodeBlockSACSICPropagation(t *testing.T) {
	data, err := hex.DecodeString(
		"10000F" + // CAT 16, LEN 15
			// record 1: FSPEC FRN1,2,3 -> 0xE0
			"E0" +
			"0102" + // I016/010 SAC=1 SIC=2
			"80" + // I016/020 track bit set
			"070800" + // I016/140 TOD
			// record 2: FSPEC FRN2,3 only -> 0x60, I016/010 omitted
			"60" +
			"80" + // I016/020 track bit set
			"070900") // I016/140 TOD
	if err != nil {
		t.Fatal(err)
	}

	uap, err := NewUAP(Version13)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got []*surveillance.RadarTarget
	n, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = append(got, obj.(*surveillance.RadarTarget))
		return true
	})
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if n != len(data) {
		t.Errorf("consumed %d, want %d", n, len(data))
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for i, rt := range got {
		if rt.DataSourceIdentifier.SAC != 1 || rt.DataSourceIdentifier.SIC != 2 {
			t.Errorf("record %d: SAC/SIC = %+v, want {1,2}", i, rt.DataSourceIdentifier)
		}
	}
}
