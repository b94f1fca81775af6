// asterix/record.go
package asterix

import (
	"errors"
	"fmt"

	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

// DecodeRecord decodes one record from data[offset:] into a freshly
// allocated normalised object: walk the FSPEC high-to-low, dispatch
// each present FRN to its UAP field, and let each field resolve its
// own length per its ItemKind.
//
// It returns the number of bytes consumed, whether the record's FSPEC
// was entirely empty (an empty record - the caller skips it rather
// than invoking the sink), and an error identifying the first kind of
// corruption hit, if any. Any error here means "skip the rest of this
// record"; the caller decides whether to keep walking the block.
func DecodeRecord(uap UAP, data []byte, offset int, target any, state *timebase.State) (consumed int, empty bool, err error) {
	fspec, n, err := DecodeFSPEC(data[offset:], uap.MaxFSPECBytes(), uap.Category(), offset)
	if err != nil {
		return n, false, err
	}
	pos := n

	if fspec.Empty() {
		return pos, true, nil
	}

	maxFRN := fspec.MaxFRN()
	for frn := uint8(1); frn <= maxFRN; frn++ {
		if !fspec.GetFRN(frn) {
			continue
		}
		field, ok := uap.FieldByFRN(frn)
		if !ok {
			return pos, false, newDecodeError(UndefinedUapSlot, uap.Category(), offset+pos,
				fmt.Sprintf("FRN %d undefined in version %s", frn, uap.Version()))
		}
		if err := decodeField(uap, field, data[offset:], &pos, target, state, offset); err != nil {
			return pos, false, err
		}
	}

	return pos, false, nil
}

// decodeField resolves one field's length according to its ItemKind and
// invokes its handler, advancing *pos past whatever it consumed.
func decodeField(uap UAP, field Field, data []byte, pos *int, target any, state *timebase.State, offset int) error {
	switch field.Kind {
	case Fixed:
		n := field.FixedLen
		if *pos+n > len(data) {
			return newDecodeError(TruncatedItem, uap.Category(), offset+*pos, field.Name)
		}
		item := data[*pos : *pos+n]
		*pos += n
		return invokeHandler(field, item, target, state)

	case Extended:
		start := *pos
		for {
			if *pos >= len(data) {
				return newDecodeError(TruncatedItem, uap.Category(), offset+*pos, field.Name)
			}
			b := data[*pos]
			*pos++
			if b&0x01 == 0 {
				break
			}
		}
		return invokeHandler(field, data[start:*pos], target, state)

	case Repetitive:
		if *pos >= len(data) {
			return newDecodeError(TruncatedItem, uap.Category(), offset+*pos, field.Name)
		}
		rep := int(data[*pos])
		if rep == 0 {
			if !field.AllowZeroRepeat {
				return newDecodeError(InvalidRepeat, uap.Category(), offset+*pos, field.Name)
			}
			*pos++
			return invokeHandler(field, data[*pos-1:*pos], target, state)
		}
		total := 1 + rep*field.RepUnit
		if *pos+total > len(data) {
			return newDecodeError(TruncatedItem, uap.Category(), offset+*pos, field.Name)
		}
		item := data[*pos : *pos+total]
		*pos += total
		return invokeHandler(field, item, target, state)

	case Compound, Immediate:
		if field.Imm == nil {
			return fmt.Errorf("%w: %s declared Compound/Immediate with no handler", ErrInvalidField, field.Name)
		}
		if err := field.Imm(data, pos, target, state); err != nil {
			if errors.Is(err, ErrDomainViolation) {
				return nil
			}
			return fmt.Errorf("decoding %s: %w", field.Name, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %s has unknown kind %s", ErrInvalidField, field.Name, field.Kind)
	}
}

func invokeHandler(field Field, item []byte, target any, state *timebase.State) error {
	if field.Handler == nil {
		return fmt.Errorf("%w: %s has no handler", ErrInvalidField, field.Name)
	}
	if err := field.Handler(item, target, state); err != nil {
		if errors.Is(err, ErrDomainViolation) {
			return nil
		}
		return fmt.Errorf("decoding %s: %w", field.Name, err)
	}
	return nil
}

// AttachCommon populates the envelope/timing metadata every normalised
// object carries, after the item handlers have filled in the
// category-specific fields. frameDate/frameTime reflect the
// envelope's own per-frame stamps when the active envelope format
// carries them (IOSS, RFF); line carries the recording-line annotation.
func AttachCommon(target any, cat Category, frameDate surveillance.Optional[surveillance.FrameDate], frameTime surveillance.Optional[float64], line surveillance.Optional[uint32], src surveillance.DataSourceID) {
	holder, ok := target.(surveillance.CommonFields)
	if !ok {
		return
	}
	c := holder.CommonFields()
	c.AsterixCategory = uint8(cat)
	c.DataFormat = surveillance.Asterix
	c.FrameDate = frameDate
	c.FrameTime = frameTime
	c.LineNumber = line
	c.DataSourceIdentifier = src
}

// UniformCompoundHandler builds an Immediate handler for a compound item
// whose primary subfield is an FX-extensible presence bitmap and whose
// every subfield is exactly subfieldLen bytes wide - a shape common
// enough across categories (I048/130, I048/120) to share one skip
// routine. The subfield payloads themselves are not retained; only
// byte-accounting for correct record-length tracking is guaranteed.
func UniformCompoundHandler(cat Category, name string, subfieldLen int) ImmediateHandler {
	return func(data []byte, pos *int, target any, state *timebase.State) error {
		start := *pos
		bits := 0
		for {
			if *pos >= len(data) {
				return newDecodeError(TruncatedItem, cat, *pos, name+" primary subfield")
			}
			b := data[*pos]
			*pos++
			for j := 0; j < 7; j++ {
				if b&(0x80>>j) != 0 {
					bits++
				}
			}
			if b&0x01 == 0 {
				break
			}
		}
		total := bits * subfieldLen
		if *pos+total > len(data) {
			*pos = start
			return newDecodeError(TruncatedItem, cat, *pos, name+" subfields")
		}
		*pos += total
		return nil
	}
}

// RFSHandler builds the generic "Random Field Sequencing" immediate
// handler: a 1-byte repeat count, each repetition being a further
// 1-byte FRN followed by that FRN's own item resolved against the very
// same UAP. CAT003's RFS item uses it.
func RFSHandler(uap UAP) ImmediateHandler {
	return func(data []byte, pos *int, target any, state *timebase.State) error {
		if *pos >= len(data) {
			return newDecodeError(TruncatedItem, uap.Category(), *pos, "RFS repeat count")
		}
		n := int(data[*pos])
		*pos++
		for i := 0; i < n; i++ {
			if *pos >= len(data) {
				return newDecodeError(TruncatedItem, uap.Category(), *pos, "RFS sub-field FRN")
			}
			frn := data[*pos]
			*pos++
			field, ok := uap.FieldByFRN(frn)
			if !ok {
				return newDecodeError(UndefinedUapSlot, uap.Category(), *pos,
					fmt.Sprintf("RFS references undefined FRN %d", frn))
			}
			if err := decodeField(uap, field, data, pos, target, state, 0); err != nil {
				return err
			}
		}
		return nil
	}
}

// SPFHandler is the generic "Special Purpose Field" immediate handler:
// a 1-byte LEN octet giving the item's total length (including the LEN
// octet itself), followed by LEN-1 bytes of opaque, site-specific data
// that this decoder has no UAP entry for and simply skips.
func SPFHandler(cat Category) ImmediateHandler {
	return func(data []byte, pos *int, target any, state *timebase.State) error {
		if *pos >= len(data) {
			return newDecodeError(TruncatedItem, cat, *pos, "SPF length octet")
		}
		l := int(data[*pos])
		if l < 1 {
			return newDecodeError(TruncatedItem, cat, *pos, "SPF length octet must be >= 1")
		}
		rest := l - 1
		if *pos+1+rest > len(data) {
			return newDecodeError(TruncatedItem, cat, *pos, "SPF payload")
		}
		*pos += 1 + rest
		return nil
	}
}
