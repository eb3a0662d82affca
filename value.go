package structpack

import (
	"fmt"

	"github.com/wippyai/structpack/internal/abi"
)

// Value is one scalar drawn from the codec's closed set of kinds. It stores
// the raw field bits alongside the kind, so a Value survives a pack/unpack
// round trip bit-exactly. The zero Value is bool(false).
type Value struct {
	bits uint64
	kind Kind
}

func Bool(v bool) Value {
	if v {
		return Value{bits: 1, kind: KindBool}
	}
	return Value{kind: KindBool}
}

func S8(v int8) Value { return Value{bits: uint64(uint8(v)), kind: KindS8} }

func U8(v uint8) Value { return Value{bits: uint64(v), kind: KindU8} }

func S16(v int16) Value { return Value{bits: uint64(uint16(v)), kind: KindS16} }

func U16(v uint16) Value { return Value{bits: uint64(v), kind: KindU16} }

func S32(v int32) Value { return Value{bits: uint64(uint32(v)), kind: KindS32} }

func U32(v uint32) Value { return Value{bits: uint64(v), kind: KindU32} }

func S64(v int64) Value { return Value{bits: uint64(v), kind: KindS64} }

func U64(v uint64) Value { return Value{bits: v, kind: KindU64} }

// valueBits builds a Value from decoded field bits. bits must already be
// masked to the kind's width.
func valueBits(kind Kind, bits uint64) Value {
	return Value{bits: bits, kind: kind}
}

// Kind returns the scalar kind the value carries.
func (v Value) Kind() Kind { return v.kind }

// Bool reports the value as a boolean; any nonzero bit pattern is true.
func (v Value) Bool() bool { return v.bits != 0 }

// Int returns the value sign-extended to int64. For unsigned kinds the raw
// bits are reinterpreted, so a u64 above MaxInt64 wraps negative; use Uint
// for unsigned magnitudes.
func (v Value) Int() int64 {
	if v.kind.Signed() {
		return abi.SignExtend(v.bits, v.kind.Width())
	}
	return int64(v.bits)
}

// Uint returns the raw field bits zero-extended to uint64.
func (v Value) Uint() uint64 { return v.bits }

func (v Value) String() string {
	switch {
	case v.kind == KindBool:
		return fmt.Sprintf("bool(%t)", v.Bool())
	case v.kind.Signed():
		return fmt.Sprintf("%s(%d)", v.kind, v.Int())
	default:
		return fmt.Sprintf("%s(%d)", v.kind, v.Uint())
	}
}
