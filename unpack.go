package structpack

import (
	"math"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/internal/abi"
)

// Unpack decodes data as described by format into the pointed-to output
// slots. out is an ordered list of pointers to Go scalars (bool or any
// integer width); it declares both the expected arity and each slot's target
// type. Widening conversions are exact; narrowing conversions are
// range-checked and fail with ValueOutOfRange rather than truncating. Bool
// slots take only bool fields, passed through unchanged.
func Unpack(format string, data []byte, out ...any) error {
	vals, err := unpackFormat(format, data, len(out))
	if err != nil {
		return err
	}
	if len(vals) != len(out) {
		return errors.ArityMismatch(len(vals), len(out))
	}
	for i, v := range vals {
		if serr := store(v, out[i]); serr != nil {
			return serr
		}
	}
	return nil
}

// UnpackValues decodes data as described by format and returns the field
// values in directive order, without conversion to caller types.
func UnpackValues(format string, data []byte) ([]Value, error) {
	vals, err := unpackFormat(format, data, -1)
	if err != nil {
		return nil, err
	}
	return vals, nil
}

// UnpackSingle decodes a format carrying exactly one field and returns its
// value directly. A format with any other field count fails with
// ArityMismatch.
func UnpackSingle(format string, data []byte) (Value, error) {
	vals, err := unpackFormat(format, data, -1)
	if err != nil {
		return Value{}, err
	}
	if len(vals) != 1 {
		return Value{}, errors.ArityMismatch(len(vals), 1)
	}
	return vals[0], nil
}

// unpackFormat walks the directive stream over data. limit caps the number
// of fields decoded; a negative limit means unbounded. The byte cursor never
// passes len(data): pads and fields alike fail with BufferUnderrun when the
// buffer runs short.
func unpackFormat(format string, data []byte, limit int) ([]Value, error) {
	dirs, err := Parse(format)
	if err != nil {
		return nil, err
	}

	vals := make([]Value, 0, NumFields(dirs))
	order := LittleEndian
	cursor := 0

	for _, d := range dirs {
		switch d.Op {
		case OpSetOrder:
			order = d.Order
		case OpPad:
			if cursor >= len(data) {
				return nil, errors.BufferUnderrun(cursor, 1, len(data)-cursor)
			}
			cursor++
		case OpField:
			if limit >= 0 && len(vals) >= limit {
				return nil, errors.InsufficientOutputSlots(limit, NumFields(dirs))
			}
			w := d.Kind.Width()
			if cursor+w > len(data) {
				return nil, errors.BufferUnderrun(cursor, w, len(data)-cursor)
			}
			bits := abi.ReadUint(data[cursor:cursor+w], w, order)
			cursor += w
			if d.Kind.IsBool() {
				vals = append(vals, Bool(bits != 0))
			} else {
				vals = append(vals, valueBits(d.Kind, bits))
			}
		}
	}

	debugf("unpack: %d directives, %d values, %d of %d bytes", len(dirs), len(vals), cursor, len(data))
	return vals, nil
}

// store converts one decoded value into the caller's output slot.
func store(v Value, out any) *errors.Error {
	switch p := out.(type) {
	case *bool:
		if !v.Kind().IsBool() {
			return errors.TypeMismatch(errors.PhaseUnpack, "*bool", string(v.Kind().Tag()))
		}
		*p = v.Bool()
	case *int8:
		n, err := signedSlot(v, 1, "int8")
		if err != nil {
			return err
		}
		*p = int8(n)
	case *int16:
		n, err := signedSlot(v, 2, "int16")
		if err != nil {
			return err
		}
		*p = int16(n)
	case *int32:
		n, err := signedSlot(v, 4, "int32")
		if err != nil {
			return err
		}
		*p = int32(n)
	case *int64:
		n, err := signedSlot(v, 8, "int64")
		if err != nil {
			return err
		}
		*p = n
	case *int:
		n, err := signedSlot(v, 8, "int")
		if err != nil {
			return err
		}
		*p = int(n)
	case *uint8:
		n, err := unsignedSlot(v, 1, "uint8")
		if err != nil {
			return err
		}
		*p = uint8(n)
	case *uint16:
		n, err := unsignedSlot(v, 2, "uint16")
		if err != nil {
			return err
		}
		*p = uint16(n)
	case *uint32:
		n, err := unsignedSlot(v, 4, "uint32")
		if err != nil {
			return err
		}
		*p = uint32(n)
	case *uint64:
		n, err := unsignedSlot(v, 8, "uint64")
		if err != nil {
			return err
		}
		*p = n
	case *uint:
		n, err := unsignedSlot(v, 8, "uint")
		if err != nil {
			return err
		}
		*p = uint(n)
	case *Value:
		*p = v
	default:
		return errors.TypeMismatch(errors.PhaseUnpack, abi.TypeName(out), string(v.Kind().Tag()))
	}
	return nil
}

// signedSlot converts a decoded field for a signed output slot of the given
// byte width, rejecting bool fields and out-of-range magnitudes.
func signedSlot(v Value, width int, target string) (int64, *errors.Error) {
	if v.Kind().IsBool() {
		return 0, errors.TypeMismatch(errors.PhaseUnpack, "*"+target, string(v.Kind().Tag()))
	}
	if v.Kind().Signed() {
		n := v.Int()
		if !abi.FitsSigned(n, width) {
			return 0, errors.OutOfRange(errors.PhaseUnpack, n, target)
		}
		return n, nil
	}
	u := v.Uint()
	if u > math.MaxInt64 || !abi.FitsSigned(int64(u), width) {
		return 0, errors.OutOfRange(errors.PhaseUnpack, u, target)
	}
	return int64(u), nil
}

// unsignedSlot converts a decoded field for an unsigned output slot of the
// given byte width, rejecting bool fields, negatives, and overflow.
func unsignedSlot(v Value, width int, target string) (uint64, *errors.Error) {
	if v.Kind().IsBool() {
		return 0, errors.TypeMismatch(errors.PhaseUnpack, "*"+target, string(v.Kind().Tag()))
	}
	if v.Kind().Signed() {
		n := v.Int()
		if n < 0 {
			return 0, errors.OutOfRange(errors.PhaseUnpack, n, target)
		}
		u := uint64(n)
		if !abi.FitsUnsigned(u, width) {
			return 0, errors.OutOfRange(errors.PhaseUnpack, n, target)
		}
		return u, nil
	}
	u := v.Uint()
	if !abi.FitsUnsigned(u, width) {
		return 0, errors.OutOfRange(errors.PhaseUnpack, u, target)
	}
	return u, nil
}
