package structpack

// Size returns the number of bytes a format string describes: one byte per
// pad directive plus the registry width of every field directive. It is the
// exact length of any buffer Pack produces for the same format.
func Size(format string) (int, error) {
	dirs, err := Parse(format)
	if err != nil {
		return 0, err
	}
	return packedSize(dirs), nil
}

func packedSize(dirs []Directive) int {
	n := 0
	for _, d := range dirs {
		switch d.Op {
		case OpPad:
			n++
		case OpField:
			n += d.Kind.Width()
		}
	}
	return n
}
