package envelope

import (
	"bytes"
	"io"
	"testing"
)

func TestRECReaderReadsFrames(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x03, 0x01, 0x02, 0x03})
	buf.Write([]byte{0x00, 0x02, 0xAA, 0xBB})

	rd := NewRECReader(&buf, RECOptions{ByteOrder: BigEndian})

	f1, err := rd.Next()
	if err != nil {
		t.Fatalf("Next 1: %v", err)
	}
	if !bytes.Equal(f1.Payload, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload 1 = %x", f1.Payload)
	}
	if _, present := f1.TimeOfDay.Get(); present {
		t.Error("REC frame must not carry a time")
	}

	f2, err := rd.Next()
	if err != nil {
		t.Fatalf("Next 2: %v", err)
	}
	if !bytes.Equal(f2.Payload, []byte{0xAA, 0xBB}) {
		t.Errorf("payload 2 = %x", f2.Payload)
	}

	if _, err := rd.Next(); err != io.EOF {
		t.Errorf("Next 3: %v, want io.EOF", err)
	}
}

func TestRECReaderTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x05, 0x01, 0x02}) // declares 5, only 2 follow

	rd := NewRECReader(&buf, RECOptions{ByteOrder: BigEndian})
	if _, err := rd.Next(); err == nil {
		t.Fatal("expected truncation error")
	}
}
