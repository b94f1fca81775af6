package envelope

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestLineSerialReaderDecodesLines(t *testing.T) {
	rd := NewLineSerialReader(strings.NewReader("01020304\n\nAABBCC\n"))

	f1, err := rd.Next()
	if err != nil {
		t.Fatalf("Next 1: %v", err)
	}
	if !bytes.Equal(f1.Payload, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("payload 1 = %x", f1.Payload)
	}
	if line, ok := f1.Line.Get(); !ok || line != 1 {
		t.Errorf("line = %v,%v, want 1", line, ok)
	}

	f2, err := rd.Next()
	if err != nil {
		t.Fatalf("Next 2: %v", err)
	}
	if !bytes.Equal(f2.Payload, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("payload 2 = %x", f2.Payload)
	}

	if _, err := rd.Next(); err != io.EOF {
		t.Errorf("Next 3: %v, want io.EOF", err)
	}
}

func TestLineSerialReaderRejectsBadHex(t *testing.T) {
	rd := NewLineSerialReader(strings.NewReader("not-hex\n"))
	if _, err := rd.Next(); err == nil {
		t.Fatal("expected hex decode error")
	}
}

func TestLooksLikeSerialPort(t *testing.T) {
	cases := map[string]bool{
		"/dev/ttyUSB0":      true,
		"/dev/cu.usbserial": true,
		"COM3":              true,
		"com7":              true,
		"capture.rec":       false,
		"/home/user/a.txt":  false,
	}
	for path, want := range cases {
		if got := looksLikeSerialPort(path); got != want {
			t.Errorf("looksLikeSerialPort(%q) = %v, want %v", path, got, want)
		}
	}
}
