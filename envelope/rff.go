package envelope

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/kvitre/atxreplay/encoding"
	"github.com/kvitre/atxreplay/surveillance"
)

// rffFileHeaderLen is the fixed-size header every RFF recording opens
// with, skipped once at the start of the stream.
const rffFileHeaderLen = 128

// rffFrameHeaderLen is the per-frame header: length (2 bytes) followed
// by a millisecond timestamp (4 bytes).
const rffFrameHeaderLen = 6

// ByteOrder selects the integer encoding an envelope format uses, for
// the formats whose recordings were produced on either a big- or
// little-endian host.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (b ByteOrder) binary() binary.ByteOrder {
	if b == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// RFFOptions configures an RFFReader.
type RFFOptions struct {
	ByteOrder ByteOrder
	// BaseDate is the fixed calendar date attached to every frame - RFF
	// frame headers carry a millisecond timestamp but no calendar date
	// of their own.
	BaseDate surveillance.FrameDate
}

// RFFReader reads RFF recordings: a 128-byte file header followed by a
// run of {length, time_ms} framed payloads.
type RFFReader struct {
	r      *bufio.Reader
	closer io.Closer
	bo     binary.ByteOrder
	opts   RFFOptions
	pool   *encoding.BufferPool

	offset      int64
	skippedFile bool
	prev        []byte
}

func NewRFFReader(r io.Reader, opts RFFOptions) *RFFReader {
	closer, _ := r.(io.Closer)
	return &RFFReader{r: bufio.NewReader(r), closer: closer, bo: opts.ByteOrder.binary(), opts: opts, pool: encoding.DefaultBufferPool}
}

func (rd *RFFReader) Close() error {
	if rd.closer != nil {
		return rd.closer.Close()
	}
	return nil
}

func (rd *RFFReader) Next() (Frame, error) {
	if rd.prev != nil {
		rd.pool.Put(rd.prev)
		rd.prev = nil
	}

	if !rd.skippedFile {
		skip := make([]byte, rffFileHeaderLen)
		n, err := io.ReadFull(rd.r, skip)
		rd.offset += int64(n)
		if err != nil {
			return Frame{}, truncatedf(0, "RFF file header: %v", err)
		}
		rd.skippedFile = true
	}

	hdrOffset := rd.offset
	hdr := make([]byte, rffFrameHeaderLen)
	n, err := io.ReadFull(rd.r, hdr)
	if err != nil {
		if err == io.EOF && n == 0 {
			return Frame{}, io.EOF
		}
		return Frame{}, truncatedf(hdrOffset, "RFF frame header: %v", err)
	}
	rd.offset += int64(n)

	length := rd.bo.Uint16(hdr[0:2])
	timeMs := rd.bo.Uint32(hdr[2:6])

	payload := rd.pool.GetWithSize(int(length))
	n, err = io.ReadFull(rd.r, payload)
	rd.offset += int64(n)
	if err != nil {
		rd.pool.Put(payload)
		return Frame{}, truncatedf(hdrOffset, "RFF payload: %v", err)
	}
	rd.prev = payload

	return Frame{
		Offset:    hdrOffset,
		Date:      surveillance.Some(rd.opts.BaseDate),
		TimeOfDay: surveillance.Some(float64(timeMs) / 1000.0),
		Payload:   payload,
	}, nil
}
