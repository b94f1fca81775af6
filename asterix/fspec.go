// asterix/fspec.go
package asterix

import "fmt"

// FSPEC represents the decoded Field Specification bitmap of one
// record: 1..N octets, each octet's low bit (FX) signalling whether
// another octet follows. Bits are consulted high-to-low within each
// octet; the FX bit itself never consumes an FRN slot.
type FSPEC struct {
	bits []byte
}

// DecodeFSPEC reads an FSPEC starting at data[0], stopping at the first
// octet whose FX bit is clear, or erroring with FspecTooLong once
// maxBytes octets have been consumed without terminating. It returns
// the decoded FSPEC and the number of bytes consumed.
func DecodeFSPEC(data []byte, maxBytes int, cat Category, offset int) (*FSPEC, int, error) {
	if len(data) == 0 {
		return nil, 0, newDecodeError(TruncatedItem, cat, offset, "no bytes available for FSPEC")
	}

	f := &FSPEC{bits: make([]byte, 0, 2)}
	for i := 0; ; i++ {
		if i >= len(data) {
			return nil, i, newDecodeError(TruncatedItem, cat, offset+i, "FSPEC runs past record")
		}
		if i >= maxBytes {
			return nil, i, newDecodeError(FspecTooLong, cat, offset+i,
				fmt.Sprintf("exceeds category maximum of %d octets", maxBytes))
		}
		b := data[i]
		f.bits = append(f.bits, b)
		if b&0x01 == 0 {
			return f, i + 1, nil
		}
	}
}

// GetFRN reports whether the given 1-based Field Reference Number is
// marked present in this FSPEC.
func (f *FSPEC) GetFRN(frn uint8) bool {
	if frn == 0 {
		return false
	}
	byteIndex := (frn - 1) / 7
	bitPos := (frn - 1) % 7
	if int(byteIndex) >= len(f.bits) {
		return false
	}
	return f.bits[byteIndex]&(0x80>>bitPos) != 0
}

// MaxFRN returns the highest FRN this FSPEC's octet count could encode
// (7 bits per octet), used by the walker to bound its FRN sweep.
func (f *FSPEC) MaxFRN() uint8 {
	return uint8(len(f.bits) * 7)
}

// Empty reports whether no FRN bit was set anywhere in the FSPEC - an
// all-zero FSPEC (besides FX bits) is an empty record to be skipped,
// not delivered to the sink.
func (f *FSPEC) Empty() bool {
	for _, b := range f.bits {
		if b&0xFE != 0 {
			return false
		}
	}
	return true
}

// Size returns the number of octets in the FSPEC.
func (f *FSPEC) Size() int {
	return len(f.bits)
}
