package types

type Kind uint8

const (
	KindBool Kind = iota
	KindS8
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindS64
	KindU64
)

var kindNames = [...]string{
	KindBool: "bool",
	KindS8:   "s8",
	KindU8:   "u8",
	KindS16:  "s16",
	KindU16:  "u16",
	KindS32:  "s32",
	KindU32:  "u32",
	KindS64:  "s64",
	KindU64:  "u64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var kindWidths = [...]int{
	KindBool: 1,
	KindS8:   1,
	KindU8:   1,
	KindS16:  2,
	KindU16:  2,
	KindS32:  4,
	KindU32:  4,
	KindS64:  8,
	KindU64:  8,
}

// Width returns the fixed on-wire byte width of the kind.
func (k Kind) Width() int {
	if int(k) < len(kindWidths) {
		return kindWidths[k]
	}
	return 0
}

func (k Kind) Signed() bool {
	switch k {
	case KindS8, KindS16, KindS32, KindS64:
		return true
	}
	return false
}

func (k Kind) IsBool() bool {
	return k == KindBool
}
