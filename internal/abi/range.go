package abi

// FitsSigned reports whether v is representable as a two's-complement signed
// integer of the given byte width.
func FitsSigned(v int64, width int) bool {
	if width >= 8 {
		return true
	}
	limit := int64(1) << (8*width - 1)
	return v >= -limit && v < limit
}

// FitsUnsigned reports whether v is representable as an unsigned integer of
// the given byte width.
func FitsUnsigned(v uint64, width int) bool {
	if width >= 8 {
		return true
	}
	return v>>(8*width) == 0
}
