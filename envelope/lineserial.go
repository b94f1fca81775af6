package envelope

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kvitre/atxreplay/surveillance"
	"go.bug.st/serial"
)

// LineSerialOptions configures a live serial port opened by
// OpenLineSerial. It is ignored when the path names a plain file.
type LineSerialOptions struct {
	BaudRate int
}

// LineSerialReader reads a line-serial capture: one hex-encoded ASTERIX
// payload per text line, either from a live serial port or a plain
// file. Blank lines are skipped rather than treated as empty frames,
// since a serial link idles with bare newlines.
type LineSerialReader struct {
	scan   *bufio.Scanner
	closer io.Closer
	line   uint32
	offset int64
}

// OpenLineSerial opens path as a live serial port when it names one
// (recognised device-path shapes), or as a plain file otherwise, so
// this format serves both live capture and a recorded-file workflow.
func OpenLineSerial(path string, opts LineSerialOptions) (*LineSerialReader, error) {
	if looksLikeSerialPort(path) {
		baud := opts.BaudRate
		if baud == 0 {
			baud = 115200
		}
		mode := &serial.Mode{BaudRate: baud, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
		port, err := serial.Open(path, mode)
		if err != nil {
			return nil, fmt.Errorf("envelope: open serial port %s: %w", path, err)
		}
		return NewLineSerialReader(port), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("envelope: open %s: %w", path, err)
	}
	return NewLineSerialReader(f), nil
}

// looksLikeSerialPort reports whether path names a serial device rather
// than a plain capture file, by the conventional device-path shapes on
// Unix (/dev/tty*, /dev/cu.*) and Windows (COMn).
func looksLikeSerialPort(path string) bool {
	if strings.HasPrefix(path, "/dev/tty") || strings.HasPrefix(path, "/dev/cu.") {
		return true
	}
	upper := strings.ToUpper(path)
	return strings.HasPrefix(upper, "COM")
}

// NewLineSerialReader wraps an already-open reader (a live serial.Port
// or a plain file) in line-serial framing.
func NewLineSerialReader(r io.Reader) *LineSerialReader {
	closer, _ := r.(io.Closer)
	return &LineSerialReader{scan: bufio.NewScanner(r), closer: closer}
}

func (rd *LineSerialReader) Close() error {
	if rd.closer != nil {
		return rd.closer.Close()
	}
	return nil
}

func (rd *LineSerialReader) Next() (Frame, error) {
	for rd.scan.Scan() {
		text := strings.TrimSpace(rd.scan.Text())
		hdrOffset := rd.offset
		rd.offset += int64(len(rd.scan.Bytes())) + 1
		rd.line++
		if text == "" {
			continue
		}
		payload, err := hex.DecodeString(text)
		if err != nil {
			return Frame{}, fmt.Errorf("envelope: line-serial: line %d: %w", rd.line, err)
		}
		return Frame{
			Offset:  hdrOffset,
			Line:    surveillance.Some(rd.line),
			Payload: payload,
		}, nil
	}
	if err := rd.scan.Err(); err != nil {
		return Frame{}, err
	}
	return Frame{}, io.EOF
}
