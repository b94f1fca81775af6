// Package envelope reads ASTERIX frames out of the file formats the
// recording tools on the ground actually produce: line-serial capture,
// SASS-C IOSS, RFF, REC, and raw "netto" concatenation. Every format
// implements the same FrameReader interface and yields the same Frame
// shape, so the record walker in package asterix never needs to know
// which one produced a given payload.
package envelope

import (
	"errors"
	"fmt"

	"github.com/kvitre/atxreplay/surveillance"
)

// Frame is one envelope-delimited unit of ASTERIX payload, with
// whatever per-frame metadata its format carries. Every envelope shares
// this shape: (offset, line?, date?, time_of_day?, payload).
type Frame struct {
	// Offset is the byte offset of this frame's header within the
	// input stream, for diagnostics.
	Offset int64

	Line      surveillance.Optional[uint32]
	Date      surveillance.Optional[surveillance.FrameDate]
	TimeOfDay surveillance.Optional[float64]

	// Payload is the frame's ASTERIX content: zero or more
	// concatenated data blocks, ready for asterix.DecodeBlock to walk.
	Payload []byte
}

// FrameReader iterates frames out of one input stream. Next returns
// io.EOF at a clean end of input; any other error is fatal and the
// caller should stop reading. Readers are not safe for concurrent use -
// each expects strictly sequential reads of a single input.
type FrameReader interface {
	Next() (Frame, error)
	Close() error
}

// ErrTruncated reports a short read at a frame header or payload.
var ErrTruncated = errors.New("envelope: truncated frame")

// ErrPadding reports an IOSS frame whose trailing four bytes are not
// the expected 0xA5 padding.
var ErrPadding = errors.New("envelope: padding mismatch")

func truncatedf(offset int64, format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrTruncated, offset, fmt.Sprintf(format, args...))
}
