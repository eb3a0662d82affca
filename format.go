package structpack

import (
	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/internal/abi"
	"github.com/wippyai/structpack/internal/types"
)

// ByteOrder selects the on-wire byte order of a field.
type ByteOrder = abi.ByteOrder

const (
	LittleEndian = abi.LittleEndian
	BigEndian    = abi.BigEndian
)

// Kind identifies one of the fixed-width scalar kinds the codec supports.
type Kind = types.Kind

const (
	KindBool = types.KindBool
	KindS8   = types.KindS8
	KindU8   = types.KindU8
	KindS16  = types.KindS16
	KindU16  = types.KindU16
	KindS32  = types.KindS32
	KindU32  = types.KindU32
	KindS64  = types.KindS64
	KindU64  = types.KindU64
)

// Op distinguishes the three directive forms.
type Op uint8

const (
	OpSetOrder Op = iota
	OpPad
	OpField
)

// Directive is one parsed unit of a format string.
type Directive struct {
	Op    Op
	Order ByteOrder // valid when Op is OpSetOrder
	Kind  Kind      // valid when Op is OpField
}

// Parse interprets a format string into its directive sequence. Characters
// are consumed left to right: '<' and '>' switch the byte order for all
// subsequent fields, 'x' is one pad byte, ASCII space is a separator, and
// every other character must be a registered type tag.
func Parse(format string) ([]Directive, error) {
	dirs := make([]Directive, 0, len(format))
	for i, c := range format {
		switch c {
		case '<':
			dirs = append(dirs, Directive{Op: OpSetOrder, Order: LittleEndian})
		case '>':
			dirs = append(dirs, Directive{Op: OpSetOrder, Order: BigEndian})
		case 'x':
			dirs = append(dirs, Directive{Op: OpPad})
		case ' ':
			// separator
		default:
			kind, ok := types.Lookup(c)
			if !ok {
				return nil, errors.UnknownFormatChar(i, c)
			}
			dirs = append(dirs, Directive{Op: OpField, Kind: kind})
		}
	}
	return dirs, nil
}

// NumFields counts the Field directives in a directive sequence.
func NumFields(dirs []Directive) int {
	n := 0
	for _, d := range dirs {
		if d.Op == OpField {
			n++
		}
	}
	return n
}
