package abi

// ByteOrder selects the on-wire byte order of a field. Both conversions are
// explicit; the host's native order is never consulted.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// AppendUint appends the low width bytes of bits to dst in the given order.
func AppendUint(dst []byte, bits uint64, width int, order ByteOrder) []byte {
	if order == BigEndian {
		for i := width - 1; i >= 0; i-- {
			dst = append(dst, byte(bits>>(8*i)))
		}
		return dst
	}
	for i := 0; i < width; i++ {
		dst = append(dst, byte(bits>>(8*i)))
	}
	return dst
}

// ReadUint decodes width bytes from data in the given order. data must hold
// at least width bytes; the caller performs the bounds check.
func ReadUint(data []byte, width int, order ByteOrder) uint64 {
	var bits uint64
	if order == BigEndian {
		for i := 0; i < width; i++ {
			bits = bits<<8 | uint64(data[i])
		}
		return bits
	}
	for i := width - 1; i >= 0; i-- {
		bits = bits<<8 | uint64(data[i])
	}
	return bits
}

// Mask returns the bit mask covering a field of the given byte width.
func Mask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*width) - 1
}

// SignExtend interprets the low width bytes of bits as a two's-complement
// value and extends the sign through the full 64 bits.
func SignExtend(bits uint64, width int) int64 {
	shift := uint(64 - 8*width)
	return int64(bits<<shift) >> shift
}
