package types

// The tag table is the codec's single source of truth: one entry per format
// type tag, fixed at build time and never mutated, so it is safe to share
// across any number of concurrent callers.

type entry struct {
	kind Kind
	ok   bool
}

var tags = [128]entry{
	'?': {KindBool, true},
	'b': {KindS8, true},
	'B': {KindU8, true},
	'h': {KindS16, true},
	'H': {KindU16, true},
	'i': {KindS32, true},
	'I': {KindU32, true},
	'q': {KindS64, true},
	'Q': {KindU64, true},
}

var kindTags = [...]byte{
	KindBool: '?',
	KindS8:   'b',
	KindU8:   'B',
	KindS16:  'h',
	KindU16:  'H',
	KindS32:  'i',
	KindU32:  'I',
	KindS64:  'q',
	KindU64:  'Q',
}

// Lookup resolves a format type tag to its kind.
func Lookup(c rune) (Kind, bool) {
	if c < 0 || int(c) >= len(tags) {
		return 0, false
	}
	e := tags[c]
	return e.kind, e.ok
}

// Tag returns the canonical format character for the kind.
func (k Kind) Tag() byte {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return 0
}

// All lists every registered kind in tag-table order.
var All = []Kind{
	KindBool,
	KindS8,
	KindU8,
	KindS16,
	KindU16,
	KindS32,
	KindU32,
	KindS64,
	KindU64,
}
