package cat221

import (
	"encoding/hex"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockReport(t *testing.T) {
	data, err := hex.DecodeString(
		"DD0007" + // CAT 221, LEN 7
			"C0" + // FSPEC: FRN1,2 -> 1100000 0 = 0xC0
			"0102" + // I021/010
			"40") // I021/040 TRD, FX=0
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version023)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got *surveillance.Adsb
	if _, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = obj.(*surveillance.Adsb)
		return true
	}); err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if got == nil {
		t.Fatal("sink never called")
	}
	if got.DataSourceIdentifier.SAC != 1 {
		t.Errorf("SAC = %d, want 1", got.DataSourceIdentifier.SAC)
	}
}

func TestNewUAPRejectsUnknownVersion(t *testing.T) {
	if _, err := NewUAP("9.9"); err == nil {
		t.Fatal("expected error for unsupported CAT221 version")
	}
}
