package cat002

import (
	"encoding/hex"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockSectorCrossing(t *testing.T) {
	data, err := hex.DecodeString(
		"02000B" + // CAT 2, LEN 11
			"F0" + // FSPEC: FRN1-4, FX=0 -> bits 1111 000 0 = 0xF0
			"0102" + // I002/010
			"02" + // I002/000 message type = sector crossing
			"80" + // I002/020 sector = 0x80 -> 180deg
			"070800") // I002/030 TOD = 3600.0s
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version10)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got *surveillance.RadarService
	if _, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = obj.(*surveillance.RadarService)
		return true
	}); err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if got == nil {
		t.Fatal("sink never called")
	}
	if sn, ok := got.SectorNumber.Get(); !ok || sn != 0x80 {
		t.Errorf("SectorNumber = %v,%v, want 128,true", sn, ok)
	}
}
