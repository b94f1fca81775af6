package envelope

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"
)

func TestNettoReaderReadsBlocks(t *testing.T) {
	block1, err := hex.DecodeString("010007" + "01020304")
	if err != nil {
		t.Fatal(err)
	}
	block2, err := hex.DecodeString("300005" + "AABB")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.Write(block1)
	buf.Write(block2)

	rd := NewNettoReader(&buf)

	f1, err := rd.Next()
	if err != nil {
		t.Fatalf("Next 1: %v", err)
	}
	if !bytes.Equal(f1.Payload, block1) {
		t.Errorf("frame 1 = %x, want %x", f1.Payload, block1)
	}

	f2, err := rd.Next()
	if err != nil {
		t.Fatalf("Next 2: %v", err)
	}
	if !bytes.Equal(f2.Payload, block2) {
		t.Errorf("frame 2 = %x, want %x", f2.Payload, block2)
	}

	if _, err := rd.Next(); err != io.EOF {
		t.Errorf("Next 3: %v, want io.EOF", err)
	}
}
