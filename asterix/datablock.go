// asterix/datablock.go
package asterix

import (
	"encoding/binary"
	"fmt"

	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

// FrameMeta carries the per-frame metadata an envelope reader attaches
// to every object decoded from one frame: the envelope's own date/time
// stamp, when it carries one, and the recording-line annotation.
type FrameMeta struct {
	FrameDate surveillance.Optional[surveillance.FrameDate]
	FrameTime surveillance.Optional[float64]
	Line      surveillance.Optional[uint32]
}

// Sink receives one decoded normalised object and reports whether the
// caller should keep decoding. Returning false stops the current block
// (and, by propagation, the whole decode) without it being an error -
// this is how a bounded `list -n 10` style consumer stops early.
type Sink func(obj any) bool

// DecodeBlock decodes one ASTERIX data block - a 1-byte category, a
// 2-byte big-endian total length, and a concatenation of records. It
// returns the number of bytes consumed (always the
// declared block length once the header validates, so a caller can
// advance past a block even when one of its records failed) and the
// first error encountered, if any.
func DecodeBlock(uap UAP, data []byte, meta FrameMeta, state *timebase.State, sink Sink) (consumed int, err error) {
	if len(data) < 3 {
		return len(data), newDecodeError(BlockTooShort, uap.Category(), 0, "block shorter than 3-byte header")
	}

	cat := Category(data[0])
	length := int(binary.BigEndian.Uint16(data[1:3]))

	if length < 3 {
		return len(data), newDecodeError(BlockTooShort, cat, 0, fmt.Sprintf("declared length %d", length))
	}
	if length > len(data) {
		return len(data), newDecodeError(BlockOverrun, cat, 0, fmt.Sprintf("declared length %d exceeds %d bytes available", length, len(data)))
	}
	if cat != uap.Category() {
		return length, fmt.Errorf("%w: block declares %s, UAP is for %s", ErrInvalidCategory, cat, uap.Category())
	}

	payload := data[3:length]
	pos := 0
	for pos < len(payload) {
		obj := uap.NewObject()
		n, empty, err := DecodeRecord(uap, payload, pos, obj, state)
		if err != nil {
			return length, err
		}
		pos += n
		if n == 0 {
			// Defensive: a zero-length record would loop forever.
			return length, newDecodeError(TruncatedItem, cat, pos, "record consumed zero bytes")
		}
		if empty {
			continue
		}

		src, _ := state.SACSIC()
		AttachCommon(obj, cat, meta.FrameDate, meta.FrameTime, meta.Line,
			surveillance.DataSourceID{SAC: src.SAC, SIC: src.SIC})

		if !sink(obj) {
			return length, nil
		}
	}

	return length, nil
}
