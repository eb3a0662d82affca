// Package structpack encodes and decodes fixed-width binary records driven
// by a compact format string, in the spirit of Python's struct module. It is
// meant for callers - device-control protocol layers and similar - that want
// to describe wire layouts declaratively instead of hand-rolling byte
// offsets.
//
// # Format mini-language
//
// Each character of a format string is consumed left to right:
//
//	Char    Meaning
//	─────────────────────────────────────────────
//	<       subsequent fields little-endian (default)
//	>       subsequent fields big-endian
//	x       one zero pad byte (pack) / skip one byte (unpack)
//	b / B   signed / unsigned 8-bit integer
//	h / H   signed / unsigned 16-bit integer
//	i / I   signed / unsigned 32-bit integer
//	q / Q   signed / unsigned 64-bit integer
//	?       8-bit boolean
//	space   separator, ignored
//
// Byte order markers are sticky: they apply to every following field until
// the next marker. Only explicit 'x' padding exists; fields are never
// implicitly aligned.
//
// # Packing
//
// Pack takes tagged Value scalars, one per field directive:
//
//	buf, err := structpack.Pack("<hI", structpack.S16(-2), structpack.U32(70000))
//
// The value count must match the field count exactly: too few values fail
// with insufficient_values, surplus values with arity_mismatch.
// PackAny accepts native Go integers and bools instead. Integer inputs are
// truncated to the field width; bool fields emit exactly 0x01 or 0x00.
//
// # Unpacking
//
// Unpack decodes into pointers, which declare both arity and target types:
//
//	var a int16
//	var b uint32
//	err := structpack.Unpack("<hI", buf, &a, &b)
//
// Widening conversions are exact. Narrowing conversions are range-checked:
// a decoded value outside the target type's range fails with
// value_out_of_range rather than being truncated. Bool fields pass through
// only into bool slots (any nonzero byte decodes true). UnpackValues returns
// the decoded tagged values directly, and UnpackSingle is the one-field
// convenience form.
//
// # Errors
//
// All failures are structured errors from the errors subpackage, categorized
// by phase (parse, pack, unpack) and kind (unknown_format_char,
// insufficient_values, buffer_underrun, ...). They mark contract violations
// at the caller boundary, not recoverable runtime conditions.
//
// # Concurrency
//
// Pack and unpack are pure functions over their arguments; the type registry
// is immutable. Any number of calls may run in parallel with no
// coordination.
package structpack
