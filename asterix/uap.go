// asterix/uap.go
package asterix

import (
	"fmt"

	"github.com/kvitre/atxreplay/timebase"
)

// ItemKind indicates how a data item's length is resolved by the
// data-item engine.
type ItemKind uint8

const (
	// Fixed items are exactly FixedLen bytes.
	Fixed ItemKind = iota + 1
	// Extended items consume octets until one has its low (FX) bit
	// clear.
	Extended
	// Repetitive items are a 1-byte repetition count R followed by
	// R*RepUnit bytes.
	Repetitive
	// Compound items carry their own internal presence bitmap; the
	// handler is responsible for its own length logic.
	Compound
	// Immediate items (RFS, SPF, and similar) are handed the rest of
	// the record and a mutable position; the handler owns all length
	// decisions, including recursing back into the item engine (RFS).
	Immediate
)

func (k ItemKind) String() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Extended:
		return "Extended"
	case Repetitive:
		return "Repetitive"
	case Compound:
		return "Compound"
	case Immediate:
		return "Immediate"
	default:
		return "Unknown"
	}
}

// ItemHandler decodes one data item's payload into the normalised
// object the category's walker is populating. target is always a
// pointer to the concrete surveillance type the category produces
// (*surveillance.RadarTarget, *surveillance.Adsb, ...); handlers type
// assert it once at the top and write straight into its flattened
// fields rather than building an intermediate item object.
//
// A handler returns ErrDomainViolation to signal "value decoded fine
// but failed its semantic range check, drop the field and keep going".
// Any other error aborts the whole record.
type ItemHandler func(data []byte, target any, state *timebase.State) error

// ImmediateHandler is the handler shape for Immediate-kind items (RFS,
// SPF): it receives the remaining record bytes and the current
// position, and is responsible for consuming exactly what it needs
// before returning and advancing pos accordingly.
type ImmediateHandler func(data []byte, pos *int, target any, state *timebase.State) error

// Field describes one FRN slot in a UAP.
type Field struct {
	FRN      uint8
	Name     string // e.g. "I048/040"
	Descr    string
	Kind     ItemKind
	FixedLen int // meaningful for Fixed

	RepUnit        int  // meaningful for Repetitive: bytes per repeated group
	AllowZeroRepeat bool // meaningful for Repetitive: R==0 succeeds with no payload instead of InvalidRepeat

	Handler ItemHandler      // meaningful for Fixed/Extended/Repetitive
	Imm     ImmediateHandler // meaningful for Compound/Immediate

	Mandatory bool
}

// UAP (User Application Profile) maps FRN to data item for one category
// and reference version.
type UAP interface {
	Category() Category
	Version() string
	// MaxFSPECBytes is the category's maximum allowed FSPEC length in
	// octets, typically 2 to 7 depending on category.
	MaxFSPECBytes() int
	// FieldByFRN returns the field descriptor for frn, or ok=false if
	// this reference version leaves that slot undefined
	// (UndefinedUapSlot).
	FieldByFRN(frn uint8) (Field, bool)
	Fields() []Field
	// NewObject allocates a fresh, zero-valued normalised object of the
	// kind this category produces.
	NewObject() any
}

// BaseUAP provides the common, version-agnostic UAP plumbing; concrete
// per-category UAPs embed it and supply NewObject and their field
// table, keyed to flattened normalised objects rather than an
// intermediate per-item registry.
type BaseUAP struct {
	category      Category
	version       string
	maxFSPECBytes int
	fields        map[uint8]Field
	newObject     func() any
}

// NewBaseUAP builds a BaseUAP from a field table, rejecting duplicate
// FRNs and a field table that defines FRN 0.
func NewBaseUAP(cat Category, version string, maxFSPECBytes int, fields []Field, newObject func() any) (*BaseUAP, error) {
	if maxFSPECBytes <= 0 {
		return nil, fmt.Errorf("%w: maxFSPECBytes must be positive", ErrInvalidMessage)
	}
	table := make(map[uint8]Field, len(fields))
	for _, f := range fields {
		if f.FRN == 0 {
			return nil, fmt.Errorf("%w: FRN cannot be 0 for %s", ErrInvalidField, f.Name)
		}
		if _, exists := table[f.FRN]; exists {
			return nil, fmt.Errorf("%w: duplicate FRN %d", ErrInvalidField, f.FRN)
		}
		table[f.FRN] = f
	}
	return &BaseUAP{
		category:      cat,
		version:       version,
		maxFSPECBytes: maxFSPECBytes,
		fields:        table,
		newObject:     newObject,
	}, nil
}

func (u *BaseUAP) Category() Category        { return u.category }
func (u *BaseUAP) Version() string           { return u.version }
func (u *BaseUAP) MaxFSPECBytes() int        { return u.maxFSPECBytes }
func (u *BaseUAP) NewObject() any            { return u.newObject() }

func (u *BaseUAP) FieldByFRN(frn uint8) (Field, bool) {
	f, ok := u.fields[frn]
	return f, ok
}

func (u *BaseUAP) Fields() []Field {
	out := make([]Field, 0, len(u.fields))
	for _, f := range u.fields {
		out = append(out, f)
	}
	return out
}
