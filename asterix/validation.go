// asterix/validation.go
package asterix

import (
	"encoding/binary"
	"fmt"
)

// PeekBlockHeader reads a block's category and declared length without
// decoding any records, for callers (the `list` command, stats
// gathering) that only need to classify traffic rather than fully
// decode it.
func PeekBlockHeader(data []byte) (cat Category, length int, err error) {
	if len(data) < 3 {
		return 0, 0, fmt.Errorf("%w: block shorter than 3-byte header (%d bytes)", ErrInvalidMessage, len(data))
	}
	cat = Category(data[0])
	length = int(binary.BigEndian.Uint16(data[1:3]))
	if length < 3 {
		return cat, length, fmt.Errorf("%w: declared length %d", ErrInvalidLength, length)
	}
	return cat, length, nil
}

// BlockSummary is the diagnostic shape AnalyzeBlock returns: enough to
// report on a block's shape without committing to fully decoding it,
// scoped to one block within a multi-block frame.
type BlockSummary struct {
	Category     Category
	DeclaredLen  int
	ActualLen    int
	FSPECOctets  int
	FSPECDataBits int
	Truncated    bool
}

// AnalyzeBlock inspects a block's header and first record's FSPEC for
// diagnostic reporting; it never errors, reporting what it can glean
// even from malformed input.
func AnalyzeBlock(data []byte) BlockSummary {
	var s BlockSummary
	s.ActualLen = len(data)
	if len(data) < 3 {
		s.Truncated = true
		return s
	}
	s.Category = Category(data[0])
	s.DeclaredLen = int(binary.BigEndian.Uint16(data[1:3]))
	if s.DeclaredLen > len(data) {
		s.Truncated = true
	}
	if len(data) <= 3 {
		return s
	}

	fspecEnd := min(s.DeclaredLen, len(data))
	for i := 3; i < fspecEnd; i++ {
		b := data[i]
		s.FSPECOctets++
		for j := 0; j < 7; j++ {
			if b&(0x80>>j) != 0 {
				s.FSPECDataBits++
			}
		}
		if b&0x01 == 0 {
			break
		}
		if i == fspecEnd-1 {
			s.Truncated = true
		}
	}
	return s
}
