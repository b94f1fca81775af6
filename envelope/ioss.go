package envelope

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/kvitre/atxreplay/encoding"
	"github.com/kvitre/atxreplay/surveillance"
)

// iossHeaderLen is the fixed 8-byte IOSS frame header: length (u16 BE),
// one reserved byte, line (u8), recording_day (u8), tod_10ms (u24 BE).
const iossHeaderLen = 8

// iossPaddingLen is the trailing 0xA5 run every IOSS payload must end
// with.
const iossPaddingLen = 4

// IOSSOptions configures an IOSSReader.
type IOSSOptions struct {
	// StripSequenceNumber strips a little-endian 4-byte sequence number
	// from the front of each frame's payload before it reaches the
	// record walker.
	StripSequenceNumber bool

	// BaseDate is the recording's calendar date at recording_day 0.
	BaseDate surveillance.FrameDate

	// Logger receives a warning on every detected midnight jump. May be nil.
	Logger *slog.Logger
}

// IOSSReader reads SASS-C IOSS recordings.
type IOSSReader struct {
	r      *bufio.Reader
	closer io.Closer
	opts   IOSSOptions
	pool   *encoding.BufferPool

	offset int64
	prev   []byte

	haveLastTOD   bool
	lastTOD       float64
	recordingDay  uint8
	sawRecordDay0 bool
	midnightJumps int
}

// NewIOSSReader builds an IOSSReader over r. If r also implements
// io.Closer, Close closes it.
func NewIOSSReader(r io.Reader, opts IOSSOptions) *IOSSReader {
	closer, _ := r.(io.Closer)
	return &IOSSReader{r: bufio.NewReader(r), closer: closer, opts: opts, pool: encoding.DefaultBufferPool}
}

func (rd *IOSSReader) Close() error {
	if rd.closer != nil {
		return rd.closer.Close()
	}
	return nil
}

func (rd *IOSSReader) Next() (Frame, error) {
	if rd.prev != nil {
		rd.pool.Put(rd.prev)
		rd.prev = nil
	}

	hdrOffset := rd.offset
	hdr := make([]byte, iossHeaderLen)
	n, err := io.ReadFull(rd.r, hdr)
	if err != nil {
		if err == io.EOF && n == 0 {
			return Frame{}, io.EOF
		}
		return Frame{}, truncatedf(hdrOffset, "IOSS header: %v", err)
	}
	rd.offset += int64(n)

	length := binary.BigEndian.Uint16(hdr[0:2])
	line := hdr[3]
	recordingDay := hdr[4]
	todTicks := uint32(hdr[5])<<16 | uint32(hdr[6])<<8 | uint32(hdr[7])

	if int(length) < iossHeaderLen {
		return Frame{}, truncatedf(hdrOffset, "IOSS declared length %d shorter than header", length)
	}

	payload := rd.pool.GetWithSize(int(length) - iossHeaderLen)
	n, err = io.ReadFull(rd.r, payload)
	rd.offset += int64(n)
	if err != nil {
		rd.pool.Put(payload)
		return Frame{}, truncatedf(hdrOffset, "IOSS payload: %v", err)
	}
	rd.prev = payload
	if len(payload) < iossPaddingLen {
		return Frame{}, truncatedf(hdrOffset, "IOSS payload shorter than padding")
	}

	padding := payload[len(payload)-iossPaddingLen:]
	for _, b := range padding {
		if b != 0xA5 {
			return Frame{}, fmt.Errorf("%w at offset %d: got %x", ErrPadding, hdrOffset, padding)
		}
	}
	asterixData := payload[:len(payload)-iossPaddingLen]

	if rd.opts.StripSequenceNumber {
		if len(asterixData) < 4 {
			return Frame{}, truncatedf(hdrOffset, "IOSS payload shorter than sequence number")
		}
		asterixData = asterixData[4:]
	}

	todSeconds := float64(todTicks) * 0.01

	if recordingDay == 0 {
		if rd.haveLastTOD && todSeconds < 60 && rd.lastTOD > 86400-60 {
			rd.midnightJumps++
			if rd.opts.Logger != nil {
				rd.opts.Logger.Warn("ioss: midnight crossing detected",
					"previous_tod", rd.lastTOD, "new_tod", todSeconds, "jump_count", rd.midnightJumps)
			}
		}
		rd.sawRecordDay0 = true
	} else {
		// recording_day has advanced on its own; the hidden jump
		// counter only matters while it is still pinned at zero.
		rd.sawRecordDay0 = false
	}
	rd.lastTOD = todSeconds
	rd.haveLastTOD = true
	rd.recordingDay = recordingDay

	dayOffset := int(recordingDay) + rd.midnightJumps
	date := addDays(rd.opts.BaseDate, dayOffset)

	return Frame{
		Offset:    hdrOffset,
		Line:      surveillance.Some(uint32(line)),
		Date:      surveillance.Some(date),
		TimeOfDay: surveillance.Some(todSeconds),
		Payload:   asterixData,
	}, nil
}

// addDays offsets a FrameDate by n days without pulling in time.Time at
// every call site; mirrors timebase.Date.AddDays, duplicated here to
// avoid a dependency from envelope on timebase for a single helper.
func addDays(d surveillance.FrameDate, n int) surveillance.FrameDate {
	if n == 0 {
		return d
	}
	t := dateToDays(d) + n
	return daysToDate(t)
}

// dateToDays/daysToDate implement a minimal proleptic-Gregorian day
// count, sufficient for the small positive offsets a recording's
// midnight jumps and recording_day values produce.
func dateToDays(d surveillance.FrameDate) int {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	return d.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func daysToDate(jdn int) surveillance.FrameDate {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153
	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10
	return surveillance.FrameDate{Year: year, Month: month, Day: day}
}
