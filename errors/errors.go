package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // format string interpretation
	PhasePack   Phase = "pack"   // values to bytes
	PhaseUnpack Phase = "unpack" // bytes to values
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownFormatChar       Kind = "unknown_format_char"
	KindInsufficientValues      Kind = "insufficient_values"
	KindUnsupportedValueType    Kind = "unsupported_value_type"
	KindInsufficientOutputSlots Kind = "insufficient_output_slots"
	KindArityMismatch           Kind = "arity_mismatch"
	KindBufferUnderrun          Kind = "buffer_underrun"
	KindTypeMismatch            Kind = "type_mismatch"
	KindValueOutOfRange         Kind = "value_out_of_range"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Tag    string
	Detail string
	Offset int // byte or character offset into the format/data; -1 when unset
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		fmt.Fprintf(&b, "%d", e.Offset)
	}

	if e.GoType != "" || e.Tag != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Tag != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", field tag ")
			b.WriteString(e.Tag)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("field tag ")
			b.WriteString(e.Tag)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Tag != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the byte or character offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Tag sets the format type tag
func (b *Builder) Tag(t string) *Builder {
	b.err.Tag = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownFormatChar reports a format character that is neither a marker nor a
// registered type tag.
func UnknownFormatChar(offset int, c rune) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnknownFormatChar,
		Offset: offset,
		Detail: fmt.Sprintf("unknown format character %q", c),
		Value:  c,
	}
}

// InsufficientValues reports fewer pack inputs than field directives.
func InsufficientValues(have, need int) *Error {
	return &Error{
		Phase:  PhasePack,
		Kind:   KindInsufficientValues,
		Offset: -1,
		Detail: fmt.Sprintf("format has %d fields but %d values were supplied", need, have),
	}
}

// UnsupportedValueType reports a pack input that fits no registered scalar kind.
func UnsupportedValueType(goType, tag string, value any) *Error {
	return &Error{
		Phase:  PhasePack,
		Kind:   KindUnsupportedValueType,
		Offset: -1,
		GoType: goType,
		Tag:    tag,
		Value:  value,
	}
}

// ExcessValues reports more pack inputs than field directives.
func ExcessValues(have, need int) *Error {
	return &Error{
		Phase:  PhasePack,
		Kind:   KindArityMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("format has %d fields but %d values were supplied", need, have),
	}
}

// InsufficientOutputSlots reports more field directives than declared outputs.
func InsufficientOutputSlots(have, need int) *Error {
	return &Error{
		Phase:  PhaseUnpack,
		Kind:   KindInsufficientOutputSlots,
		Offset: -1,
		Detail: fmt.Sprintf("format has %d fields but %d output slots were declared", need, have),
	}
}

// ArityMismatch reports a produced value count that differs from the declared arity.
func ArityMismatch(produced, declared int) *Error {
	return &Error{
		Phase:  PhaseUnpack,
		Kind:   KindArityMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("format produced %d values but %d were declared", produced, declared),
	}
}

// BufferUnderrun reports a read past the end of the input buffer.
func BufferUnderrun(offset, need, remaining int) *Error {
	return &Error{
		Phase:  PhaseUnpack,
		Kind:   KindBufferUnderrun,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", need, remaining),
	}
}

// TypeMismatch reports a bool/integer crossing between a field and its slot.
func TypeMismatch(phase Phase, goType, tag string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Offset: -1,
		GoType: goType,
		Tag:    tag,
	}
}

// OutOfRange reports a value that does not fit the target type's range.
func OutOfRange(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValueOutOfRange,
		Offset: -1,
		GoType: target,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
