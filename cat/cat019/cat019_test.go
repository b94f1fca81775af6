package cat019

import (
	"encoding/hex"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockStatus(t *testing.T) {
	data, err := hex.DecodeString(
		"130007" + // CAT 19, LEN 7
			"C0" + // FSPEC: FRN1,2 -> 1100000 0 = 0xC0
			"0102" + // I019/010
			"03") // I019/000 message type
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version12)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got *surveillance.Mlat
	if _, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = obj.(*surveillance.Mlat)
		return true
	}); err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if got == nil {
		t.Fatal("sink never called")
	}
	if !got.IsStatusMessage {
		t.Error("IsStatusMessage = false, want true")
	}
}
