package cat048

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockPlot(t *testing.T) {
	data, err := hex.DecodeString(
		"30001E" + // CAT 48, LEN 30
			"FDD0" + // FSPEC: FRN1-6,8,9,11
			"0102" + // I048/010 SAC=1 SIC=2
			"070800" + // I048/140 TOD = 3600.0s
			"60" + // I048/020 TYP=3
			"0A004000" + // I048/040 RHO=10NM THETA=90deg
			"0500" + // I048/070 Mode-3/A code 0x0500
			"0578" + // I048/090 FL = 0x0578/4 = 350.0
			"ABCDEF" + // I048/220 aircraft address
			"2CC371820820" + // I048/240 "KLM1"
			"0123") // I048/161 track number 0x123
	if err != nil {
		t.Fatal(err)
	}

	uap, err := NewUAP(Version132)
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
		t.Fatal("sink was never called")
	}

	if got.DataSourceIdentifier.SAC != 1 || got.DataSourceIdentifier.SIC != 2 {
		t.Errorf("SAC/SIC = %+v, want {1,2}", got.DataSourceIdentifier)
	}
	if tod, ok := got.TimeOfDay.Get(); !ok || tod != 3600.0 {
		t.Errorf("TimeOfDay = %v,%v, want 3600.0,true", tod, ok)
	}
	if typ, ok := got.DetectionType.Get(); !ok || typ != 3 {
		t.Errorf("DetectionType = %v,%v, want 3,true", typ, ok)
	}
	if pos, ok := got.Measured.Get(); !ok || math.Abs(pos.RangeM-18520.0) > 0.01 || math.Abs(pos.AzimuthR-math.Pi/2) > 1e-6 {
		t.Errorf("Measured = %+v,%v, want RangeM=18520 AzimuthR=pi/2", pos, ok)
	}
	if m3a, ok := got.Mode3AInfo.Get(); !ok || m3a.Code != 0x0500 {
		t.Errorf("Mode3AInfo = %+v,%v, want Code=0x0500", m3a, ok)
	}
	if modec, ok := got.ModeCInfo.Get(); !ok || modec.ValueFeet != 35000.0 {
		t.Errorf("ModeCInfo = %+v,%v, want ValueFeet=35000", modec, ok)
	}
	if addr, ok := got.Address.Get(); !ok || addr != 0xABCDEF {
		t.Errorf("Address = %#x,%v, want 0xabcdef,true", addr, ok)
	}
	if id, ok := got.TargetID.Get(); !ok || id != "KLM1" {
		t.Errorf("TargetID = %q,%v, want \"KLM1\",true", id, ok)
	}
	if tn, ok := got.TrackNumber.Get(); !ok || tn != 0x0123 {
		t.Errorf("TrackNumber = %#x,%v, want 0x123,true", tn, ok)
	}
	if got.IsRadarTrack {
		t.Error("IsRadarTrack = true, want false (no I048/170 in this record)")
	}
}

func TestDecodeBlockRejectsWrongCategory(t *testing.T) {
	uap, err := NewUAP(Version132)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})
	data, _ := hex.DecodeString("15000400")
	if _, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(any) bool { return true }); err == nil {
		t.Fatal("expected error decoding a CAT021 block against the CAT048 UAP")
	}
}

func TestUnsupportedVersion(t *testing.T) {
	if _, err := NewUAP("9.9"); err == nil {
		t.Fatal("expected error for unsupported CAT048 version")
	}
}
