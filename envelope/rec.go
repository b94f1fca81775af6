package envelope

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/kvitre/atxreplay/encoding"
)

// RECOptions configures an RECReader.
type RECOptions struct {
	ByteOrder ByteOrder
}

// RECReader reads REC recordings: a bare 2-byte length prefix ahead of
// each payload, with no per-frame timestamp.
type RECReader struct {
	r      *bufio.Reader
	closer io.Closer
	bo     binary.ByteOrder
	pool   *encoding.BufferPool
	offset int64
	prev   []byte
}

func NewRECReader(r io.Reader, opts RECOptions) *RECReader {
	closer, _ := r.(io.Closer)
	return &RECReader{r: bufio.NewReader(r), closer: closer, bo: opts.ByteOrder.binary(), pool: encoding.DefaultBufferPool}
}

func (rd *RECReader) Close() error {
	if rd.closer != nil {
		return rd.closer.Close()
	}
	return nil
}

func (rd *RECReader) Next() (Frame, error) {
	if rd.prev != nil {
		rd.pool.Put(rd.prev)
		rd.prev = nil
	}

	hdrOffset := rd.offset
	hdr := make([]byte, 2)
	n, err := io.ReadFull(rd.r, hdr)
	if err != nil {
		if err == io.EOF && n == 0 {
			return Frame{}, io.EOF
		}
		return Frame{}, truncatedf(hdrOffset, "REC length prefix: %v", err)
	}
	rd.offset += int64(n)

	length := rd.bo.Uint16(hdr)
	payload := rd.pool.GetWithSize(int(length))
	n, err = io.ReadFull(rd.r, payload)
	rd.offset += int64(n)
	if err != nil {
		rd.pool.Put(payload)
		return Frame{}, truncatedf(hdrOffset, "REC payload: %v", err)
	}
	rd.prev = payload

	return Frame{Offset: hdrOffset, Payload: payload}, nil
}
