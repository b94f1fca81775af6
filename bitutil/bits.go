// Package bitutil provides the packed-integer primitives every ASTERIX
// data-item handler is built on: big-endian assembly of 1-4 octet
// integers, two's-complement sign extension of non-power-of-two bit
// widths, and 6-bit ICAO character expansion.
//
// Every function here assumes the caller has already bounds-checked the
// slice it hands in - a short slice is a programming error, not an
// input error, and these functions will panic on it the same way a
// slice index out of range would. Item handlers carve out their input
// slice from the record buffer before calling into this package.
package bitutil

import "fmt"

// BE16 assembles an unsigned 16-bit integer from two big-endian bytes.
func BE16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0])<<8 | uint16(b[1])
}

// BE24 assembles an unsigned 24-bit integer from three big-endian bytes,
// returned widened to uint32.
func BE24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// BE32 assembles an unsigned 32-bit integer from four big-endian bytes.
func BE32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// SBE16 assembles a signed 16-bit integer from two big-endian bytes.
func SBE16(b []byte) int16 {
	return int16(BE16(b))
}

// SBE32 assembles a signed 32-bit integer from four big-endian bytes.
func SBE32(b []byte) int32 {
	return int32(BE32(b))
}

// SignExtend extends a value encoded in the low `width` bits of v to a
// full int32, replicating the sign bit into the high bits. width must
// be in [1,32]; widths of 16 and 32 are a no-op since Go's int32 already
// holds them correctly when read unsigned-then-cast is avoided, but the
// function handles those cases too for uniformity.
//
// Every item whose wire field is signed and narrower than its holding
// type - the 6-bit track-angle-rate at I021/165, the 12-bit barometric
// vertical rate at I021/155/157, Mode-C at I016/090 - must pass through
// here before rescaling.
func SignExtend(v uint32, width uint) int32 {
	if width == 0 || width > 32 {
		panic(fmt.Sprintf("bitutil: SignExtend: invalid width %d", width))
	}
	shift := 32 - width
	return int32(v<<shift) >> shift
}

// SignExtend64 is SignExtend for values assembled into a uint64, for
// wire fields wider than 32 bits (rare, but I021/271 style expansions
// can run long).
func SignExtend64(v uint64, width uint) int64 {
	if width == 0 || width > 64 {
		panic(fmt.Sprintf("bitutil: SignExtend64: invalid width %d", width))
	}
	shift := 64 - width
	return int64(v<<shift) >> shift
}

// ICAOChar expands one 6-bit IA-5 code (as used by I021/170, I048/240,
// and related target-identification items) to its ASCII character.
// Unmapped codes decode to '?' rather than erroring - a garbled
// character is not reason to drop the whole callsign.
func ICAOChar(code byte) byte {
	switch {
	case code >= 0x01 && code <= 0x1A:
		return 'A' + (code - 0x01)
	case code == 0x20:
		return ' '
	case code >= 0x30 && code <= 0x39:
		return '0' + (code - 0x30)
	default:
		return '?'
	}
}

// ICAOString expands a run of 6-bit characters packed into data (4
// characters per 3 bytes, as used by every ASTERIX callsign item) into
// a trimmed ASCII string.
func ICAOString(data []byte) string {
	if len(data)%3 != 0 {
		panic("bitutil: ICAOString: data length must be a multiple of 3")
	}
	out := make([]byte, 0, len(data)/3*4)
	for i := 0; i < len(data); i += 3 {
		b0, b1, b2 := data[i], data[i+1], data[i+2]
		codes := [4]byte{
			b0 >> 2,
			(b0&0x03)<<4 | b1>>4,
			(b1&0x0F)<<2 | b2>>6,
			b2 & 0x3F,
		}
		for _, c := range codes {
			out = append(out, ICAOChar(c))
		}
	}
	// Trim trailing spaces; a callsign shorter than the field width is
	// padded with 0x20 on the wire.
	end := len(out)
	for end > 0 && out[end-1] == ' ' {
		end--
	}
	return string(out[:end])
}

// FillUp16 picks the full value nearest to ref whose low 16 bits equal
// low, used to restore a truncated time-of-day field (some items carry
// only the low two bytes of the 1/128s counter) against the last known
// full value. The search window is +/-2^15 on the low field.
func FillUp16(ref uint32, low uint16) uint32 {
	base := int64(ref) &^ 0xFFFF
	candidate := base | int64(low)

	if candidate-int64(ref) > 1<<15 {
		candidate -= 1 << 16
	} else if int64(ref)-candidate > 1<<15 {
		candidate += 1 << 16
	}
	if candidate < 0 {
		candidate = int64(low)
	}
	return uint32(candidate)
}
