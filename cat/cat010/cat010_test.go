package cat010

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockTargetReport(t *testing.T) {
	data, err := hex.DecodeString(
		"0A000D" + // CAT 10, LEN 13
			"D180" + // FSPEC: FRN1,2,4,8 -> 1101000 1, 1000000 0
			"0102" + // I010/010
			"01" + // I010/000 message type
			"070800" + // I010/140 TOD
			"0500") // I010/060 Mode-3/A
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version3)
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
	if tod, ok := got.TimeOfDay.Get(); !ok || math.Abs(tod-3600.0) > 1e-9 {
		t.Errorf("TimeOfDay = %v,%v, want 3600.0,true", tod, ok)
	}
	if m3a, ok := got.Mode3AInfo.Get(); !ok || m3a.Code != 0x0500 {
		t.Errorf("Mode3AInfo = %+v,%v, want Code=0x0500", m3a, ok)
	}
}

// TestComputedVelocityVersionFanOut exercises the declared-length fan
// out on I010/202: a 3-byte item decodes under edition 0.24s and is a
// truncated-item error under edition 1.1, and a 4-byte item does the
// reverse.
func TestComputedVelocityVersionFanOut(t *testing.T) {
	block := func(version string, item string) []byte {
		payload, err := hex.DecodeString("0102" + "01" + item) // I010/010, I010/000, I010/202
		if err != nil {
			t.Fatal(err)
		}
		fspec := []byte{0xC2} // edition 0.24s: FRN1,2,7
		if version == Version3 {
			fspec = []byte{0xC1, 0x01, 0x80} // edition 1.1: FRN1,2,15
		}
		data := append(append([]byte{byte(asterix.Cat010), 0, 0}, fspec...), payload...)
		data[2] = byte(len(data))
		return data
	}
	decode := func(version string, data []byte) error {
		uap, err := NewUAP(version)
		if err != nil {
			t.Fatal(err)
		}
		state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})
		_, err = asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(any) bool { return true })
		return err
	}

	len3 := "010203"
	len4 := "01020304"

	if err := decode(Version1, block(Version1, len3)); err != nil {
		t.Errorf("v1 + 3-byte I010/202: %v, want success", err)
	}
	if err := decode(Version3, block(Version3, len3)); err == nil {
		t.Error("v3 + 3-byte I010/202: want error (item is 4 bytes under edition 1.1)")
	}
	if err := decode(Version1, block(Version1, len4)); err == nil {
		t.Error("v1 + 4-byte I010/202: want error (item is 3 bytes under edition 0.24s)")
	}
	if err := decode(Version3, block(Version3, len4)); err != nil {
		t.Errorf("v3 + 4-byte I010/202: %v, want success", err)
	}
}

func TestNewUAPRejectsEdition2(t *testing.T) {
	if _, err := NewUAP("-2"); err == nil {
		t.Fatal("expected edition 2 (\"-2\") to be rejected")
	}
}

func TestNewUAPRejectsUnknownVersion(t *testing.T) {
	if _, err := NewUAP("9.9"); err == nil {
		t.Fatal("expected error for unsupported CAT010 version")
	}
}
