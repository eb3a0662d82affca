package structpack

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/structpack/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []Directive
	}{
		{
			name:   "empty",
			format: "",
			want:   []Directive{},
		},
		{
			name:   "single field",
			format: "i",
			want:   []Directive{{Op: OpField, Kind: KindS32}},
		},
		{
			name:   "order markers",
			format: "<i>I",
			want: []Directive{
				{Op: OpSetOrder, Order: LittleEndian},
				{Op: OpField, Kind: KindS32},
				{Op: OpSetOrder, Order: BigEndian},
				{Op: OpField, Kind: KindU32},
			},
		},
		{
			name:   "pad and bool",
			format: "x?",
			want: []Directive{
				{Op: OpPad},
				{Op: OpField, Kind: KindBool},
			},
		},
		{
			name:   "spaces are separators",
			format: "h H q Q",
			want: []Directive{
				{Op: OpField, Kind: KindS16},
				{Op: OpField, Kind: KindU16},
				{Op: OpField, Kind: KindS64},
				{Op: OpField, Kind: KindU64},
			},
		},
		{
			name:   "all tags",
			format: "bBhHiIqQ?",
			want: []Directive{
				{Op: OpField, Kind: KindS8},
				{Op: OpField, Kind: KindU8},
				{Op: OpField, Kind: KindS16},
				{Op: OpField, Kind: KindU16},
				{Op: OpField, Kind: KindS32},
				{Op: OpField, Kind: KindU32},
				{Op: OpField, Kind: KindS64},
				{Op: OpField, Kind: KindU64},
				{Op: OpField, Kind: KindBool},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.format)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.format, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %d directives, want %d", tt.format, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %+v, want %+v", tt.format, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_UnknownFormatChar(t *testing.T) {
	tests := []struct {
		format string
		offset int
	}{
		{"z", 0},
		{"<iz", 2},
		{"i!I", 1},
		{"f", 0},  // floats are not supported
		{"s", 0},  // strings are not supported
		{"i\t", 1}, // only space separates
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := Parse(tt.format)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.format)
			}
			target := &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindUnknownFormatChar}
			if !stderrors.Is(err, target) {
				t.Fatalf("Parse(%q) error = %v, want unknown_format_char", tt.format, err)
			}
			var perr *errors.Error
			if !stderrors.As(err, &perr) {
				t.Fatalf("Parse(%q) error is not a structured error", tt.format)
			}
			if perr.Offset != tt.offset {
				t.Errorf("Parse(%q) offset = %d, want %d", tt.format, perr.Offset, tt.offset)
			}
		})
	}
}

func TestNumFields(t *testing.T) {
	tests := []struct {
		format string
		want   int
	}{
		{"", 0},
		{"<>x", 0},
		{"i", 1},
		{"<i?xQ", 3},
	}

	for _, tt := range tests {
		dirs, err := Parse(tt.format)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.format, err)
		}
		if got := NumFields(dirs); got != tt.want {
			t.Errorf("NumFields(%q) = %d, want %d", tt.format, got, tt.want)
		}
	}
}
