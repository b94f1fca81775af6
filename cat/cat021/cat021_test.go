package cat021

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

func TestDecodeBlockReport(t *testing.T) {
	data, err := hex.DecodeString(
		"150011" + // CAT 21, LEN 17
			"DC" + // FSPEC: FRN1,2,4,5,6 -> 1101110 0 = 0xDC
			"0102" + // I021/010
			"40" + // I021/040 TRD, FX=0
			"01" + // I021/015 service id
			"070800" + // I021/071 time of applicability
			"7FFFFF800000") // I021/130 position, 6 bytes
	if err != nil {
		t.Fatal(err)
	}
	uap, err := NewUAP(Version24)
	if err != nil {
		t.Fatal(err)
	}
	state := timebase.NewState(timebase.Date{Year: 2026, Month: 1, Day: 1})

	var got *surveillance.Adsb
	n, err := asterix.DecodeBlock(uap, data, asterix.FrameMeta{}, state, func(obj any) bool {
		got = obj.(*surveillance.Adsb)
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
	if got.DataSourceIdentifier.SAC != 1 || got.DataSourceIdentifier.SIC != 2 {
		t.Errorf("SAC/SIC = %+v, want {1,2}", got.DataSourceIdentifier)
	}
	if pos, ok := got.WGS84.Get(); !ok || math.Abs(pos.Lat) > 180 {
		t.Errorf("WGS84 = %+v,%v, want present", pos, ok)
	}
}

// TestAirSpeedVersionFanOut exercises the declared-length fan-out on
// I021/150: editions 0.12/0.13 carry it at 6 bytes, every edition from
// 0.20 on carries it at 2 bytes, per astx_021.cpp's desc_i021_150.
func TestAirSpeedVersionFanOut(t *testing.T) {
	block := func(item string) []byte {
		payload, err := hex.DecodeString("0102" + "40" + item) // I021/010, I021/040 (FX=0), FRN9
		if err != nil {
			t.Fatal(err)
		}
		data := append([]byte{byte(asterix.Cat021), 0, 0, 0xC1, 0x40}, payload...) // FSPEC: FRN1,2,9 (2 octets)
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

	len2 := "0102"
	len6 := "010203040506"

	if err := decode(Version012, block(len6)); err != nil {
		t.Errorf("0.12 + 6-byte I021/150: %v, want success", err)
	}
	if err := decode(Version24, block(len6)); err == nil {
		t.Error("2.4 + 6-byte I021/150: want error (item is 2 bytes from edition 0.20 on)")
	}
	if err := decode(Version012, block(len2)); err == nil {
		t.Error("0.12 + 2-byte I021/150: want error (item is 6 bytes under 0.12/0.13)")
	}
	if err := decode(Version24, block(len2)); err != nil {
		t.Errorf("2.4 + 2-byte I021/150: %v, want success", err)
	}
}

func TestNewUAPRejectsUnknownVersion(t *testing.T) {
	if _, err := NewUAP("9.9"); err == nil {
		t.Fatal("expected error for unsupported CAT021 version")
	}
}
