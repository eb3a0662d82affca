package structpack

import (
	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/internal/abi"
)

// Pack encodes values into a freshly allocated byte buffer as described by
// format. Each Field directive consumes exactly one value in order; Pad
// directives emit a zero byte and consume nothing. The value count must
// equal the field count: too few values fail with InsufficientValues,
// surplus values with ArityMismatch. The buffer length equals the sum of
// all pad bytes and field widths, in directive order.
func Pack(format string, values ...Value) ([]byte, error) {
	dirs, err := Parse(format)
	if err != nil {
		return nil, err
	}
	buf, perr := packDirectives(dirs, values)
	if perr != nil {
		return nil, perr
	}
	debugf("pack %q: %d directives, %d bytes", format, len(dirs), len(buf))
	return buf, nil
}

// PackAny is a convenience form of Pack that accepts native Go scalars. Any
// built-in integer type and bool are supported; each value is coerced to the
// kind its Field directive names, truncating integers to the field width.
// A value of any other type fails with UnsupportedValueType.
func PackAny(format string, values ...any) ([]byte, error) {
	dirs, err := Parse(format)
	if err != nil {
		return nil, err
	}

	tagged := make([]Value, 0, len(values))
	for _, raw := range values {
		v, ok := valueOf(raw)
		if !ok {
			return nil, errors.UnsupportedValueType(abi.TypeName(raw), "", raw)
		}
		tagged = append(tagged, v)
	}

	buf, perr := packDirectives(dirs, tagged)
	if perr != nil {
		return nil, perr
	}
	return buf, nil
}

func packDirectives(dirs []Directive, values []Value) ([]byte, *errors.Error) {
	buf := make([]byte, 0, packedSize(dirs))
	order := LittleEndian
	next := 0

	for _, d := range dirs {
		switch d.Op {
		case OpSetOrder:
			order = d.Order
		case OpPad:
			buf = append(buf, 0)
		case OpField:
			if next >= len(values) {
				return nil, errors.InsufficientValues(len(values), NumFields(dirs))
			}
			bits, err := fieldBits(d.Kind, values[next])
			if err != nil {
				return nil, err
			}
			next++
			buf = abi.AppendUint(buf, bits, d.Kind.Width(), order)
		}
	}
	if next != len(values) {
		return nil, errors.ExcessValues(len(values), next)
	}
	return buf, nil
}

// fieldBits coerces v to the field kind and returns its raw low-width bits.
// Bool fields take only bool values and emit exactly 0x01 or 0x00; integer
// fields take only integer values, truncated to the field width.
func fieldBits(kind Kind, v Value) (uint64, *errors.Error) {
	if kind.IsBool() {
		if !v.Kind().IsBool() {
			return 0, errors.UnsupportedValueType(v.Kind().String(), string(kind.Tag()), v)
		}
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	if v.Kind().IsBool() {
		return 0, errors.UnsupportedValueType("bool", string(kind.Tag()), v)
	}

	var bits uint64
	if v.Kind().Signed() {
		bits = uint64(v.Int()) // sign-extended so negatives widen correctly
	} else {
		bits = v.Uint()
	}
	return bits & abi.Mask(kind.Width()), nil
}

// valueOf maps a native Go scalar onto the tagged-union Value of matching
// width and signedness.
func valueOf(raw any) (Value, bool) {
	switch v := raw.(type) {
	case Value:
		return v, true
	case bool:
		return Bool(v), true
	case int8:
		return S8(v), true
	case uint8:
		return U8(v), true
	case int16:
		return S16(v), true
	case uint16:
		return U16(v), true
	case int32:
		return S32(v), true
	case uint32:
		return U32(v), true
	case int64:
		return S64(v), true
	case uint64:
		return U64(v), true
	case int:
		return S64(int64(v)), true
	case uint:
		return U64(uint64(v)), true
	}
	return Value{}, false
}
