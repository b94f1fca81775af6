package envelope

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/kvitre/atxreplay/surveillance"
)

func TestIOSSReaderDecodesFrame(t *testing.T) {
	// header: length=16 (8 header + 4 payload + 4 padding), line=3,
	// recording_day=0, tod_10ms=100 (1.00s)
	raw, err := hex.DecodeString(
		"0010" + // length
			"00" + // reserved
			"03" + // line
			"00" + // recording_day
			"000064" + // tod_10ms = 100
			"01020304" + // ASTERIX payload
			"A5A5A5A5") // padding
	if err != nil {
		t.Fatal(err)
	}

	rd := NewIOSSReader(bytes.NewReader(raw), IOSSOptions{BaseDate: surveillance.FrameDate{Year: 2026, Month: 1, Day: 1}})
	f, err := rd.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if line, ok := f.Line.Get(); !ok || line != 3 {
		t.Errorf("line = %v,%v, want 3", line, ok)
	}
	if tod, ok := f.TimeOfDay.Get(); !ok || tod != 1.0 {
		t.Errorf("tod = %v,%v, want 1.0", tod, ok)
	}
	if !bytes.Equal(f.Payload, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("payload = %x, want 01020304", f.Payload)
	}

	if _, err := rd.Next(); err != io.EOF {
		t.Errorf("second Next: %v, want io.EOF", err)
	}
}

func TestIOSSReaderRejectsBadPadding(t *testing.T) {
	raw, err := hex.DecodeString(
		"0010" + "00" + "03" + "00" + "000064" +
			"01020304" +
			"DEADBEEF") // wrong padding
	if err != nil {
		t.Fatal(err)
	}
	rd := NewIOSSReader(bytes.NewReader(raw), IOSSOptions{})
	if _, err := rd.Next(); err == nil {
		t.Fatal("expected padding error")
	}
}

func TestIOSSReaderStripsSequenceNumber(t *testing.T) {
	raw, err := hex.DecodeString(
		"0014" + // length = 8 header + 4 seq + 4 payload + 4 padding
			"00" + "03" + "00" + "000064" +
			"EFBEADDE" + // little-endian sequence number, stripped
			"01020304" +
			"A5A5A5A5")
	if err != nil {
		t.Fatal(err)
	}
	rd := NewIOSSReader(bytes.NewReader(raw), IOSSOptions{StripSequenceNumber: true})
	f, err := rd.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !bytes.Equal(f.Payload, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("payload = %x, want 01020304", f.Payload)
	}
}

func TestIOSSReaderTracksMidnightJump(t *testing.T) {
	mkFrame := func(todTicks uint32) []byte {
		hdr := []byte{0x00, 0x10, 0x00, 0x01, 0x00,
			byte(todTicks >> 16), byte(todTicks >> 8), byte(todTicks)}
		return append(append(hdr, 0x01, 0x02, 0x03, 0x04), 0xA5, 0xA5, 0xA5, 0xA5)
	}
	var buf bytes.Buffer
	buf.Write(mkFrame(8639900)) // 86399.00s, just before midnight
	buf.Write(mkFrame(100))     // 1.00s, just after midnight

	rd := NewIOSSReader(&buf, IOSSOptions{BaseDate: surveillance.FrameDate{Year: 2026, Month: 1, Day: 1}})
	if _, err := rd.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	f2, err := rd.Next()
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if rd.midnightJumps != 1 {
		t.Errorf("midnightJumps = %d, want 1", rd.midnightJumps)
	}
	date, ok := f2.Date.Get()
	if !ok || date.Day != 2 {
		t.Errorf("date = %+v,%v, want day 2", date, ok)
	}
}
