package envelope

import (
	"encoding/binary"
	"io"

	"github.com/kvitre/atxreplay/encoding"
)

// blockHeaderLen is the 1-byte category + 2-byte big-endian length
// every ASTERIX data block opens with.
const blockHeaderLen = 3

// NettoReader reads raw "netto" ASTERIX: no envelope at all, one data
// block after another with no external framing. Each call to Next
// yields exactly one data block, its length taken from the block's own
// header.
type NettoReader struct {
	r      io.Reader
	closer io.Closer
	offset int64
	pool   *encoding.BufferPool
	prev   []byte
}

func NewNettoReader(r io.Reader) *NettoReader {
	closer, _ := r.(io.Closer)
	return &NettoReader{r: r, closer: closer, pool: encoding.DefaultBufferPool}
}

func (rd *NettoReader) Close() error {
	if rd.closer != nil {
		return rd.closer.Close()
	}
	return nil
}

func (rd *NettoReader) Next() (Frame, error) {
	if rd.prev != nil {
		rd.pool.Put(rd.prev)
		rd.prev = nil
	}

	hdrOffset := rd.offset
	hdr := make([]byte, blockHeaderLen)
	n, err := io.ReadFull(rd.r, hdr)
	if err != nil {
		if err == io.EOF && n == 0 {
			return Frame{}, io.EOF
		}
		return Frame{}, truncatedf(hdrOffset, "netto block header: %v", err)
	}

	length := int(binary.BigEndian.Uint16(hdr[1:3]))
	if length < blockHeaderLen {
		return Frame{}, truncatedf(hdrOffset, "netto declared length %d shorter than header", length)
	}

	block := rd.pool.GetWithSize(length)
	copy(block, hdr)
	n, err = io.ReadFull(rd.r, block[blockHeaderLen:])
	if err != nil {
		rd.pool.Put(block)
		return Frame{}, truncatedf(hdrOffset, "netto block payload: %v", err)
	}
	rd.offset += int64(blockHeaderLen + n)
	rd.prev = block

	return Frame{Offset: hdrOffset, Payload: block}, nil
}
