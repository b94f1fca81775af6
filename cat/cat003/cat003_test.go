package cat003

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockTrack(t *testing.T) {
	data, err := hex.DecodeString(
		"030008" + // CAT 3, LEN 8
			"C0" + // FSPEC: FRN1,2 -> 1100000 0 = 0xC0
			"0102" + // I003/010 SAC=1 SIC=2
			"0321") // I003/040 track number 0x321
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version11)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got *surveillance.SystemTrack
	if _, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = obj.(*surveillance.SystemTrack)
		return true
	}); err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if got == nil {
		t.Fatal("sink never called")
	}
	if tn, ok := got.TrackNumber.Get(); !ok || tn != 0x321 {
		t.Errorf("TrackNumber = %#x,%v, want 0x321,true", tn, ok)
	}
}

// TestDecodeBlockEmptyRecord covers the all-zero-FSPEC scenario: the
// record carries no data items at all and must be skipped, not
// delivered to the sink, without the block decode failing.
func TestDecodeBlockEmptyRecord(t *testing.T) {
	data, err := hex.DecodeString("03000400") // CAT 3, LEN 4, FSPEC=0x00
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version11)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	called := false
	n, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(any) bool {
		called = true
		return true
	})
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if n != len(data) {
		t.Errorf("consumed %d, want %d", n, len(data))
	}
	if called {
		t.Error("sink was called for an empty record")
	}
}

func TestPeekBlockHeaderEmptyRecord(t *testing.T) {
	data, _ := hex.DecodeString("03000400")
	cat, length, err := asterix.PeekBlockHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	if cat != asterix.Cat003 || length != 4 {
		t.Errorf("cat=%v length=%d, want Cat003,4", cat, length)
	}
	if errors.Is(err, asterix.ErrDomainViolation) {
		t.Error("unexpected domain violation from header peek alone")
	}
}
