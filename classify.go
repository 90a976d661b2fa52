package tripn

// isAlpha reports whether c is an ASCII letter. The grammar only ever
// classifies name characters over ASCII; wider code points pass through
// structurally (see escape.go) rather than through these predicates.
func isAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func inRange(c, lo, hi byte) bool {
	return c >= lo && c <= hi
}

func isHex(c byte) bool {
	return isDigit(c) || inRange(c, 'A', 'F') || inRange(c, 'a', 'f')
}

// isUpperHex is isHex restricted to uppercase A-F, the only case a \u/\U
// character escape's hex digits may use.
func isUpperHex(c byte) bool {
	return isDigit(c) || inRange(c, 'A', 'F')
}

// isNameStartChar approximates Turtle's nameStartChar production with the
// ASCII subset the source classifies explicitly. After the first
// character, isNameChar also accepts any non-ASCII byte, and the name
// loops read the whole wide UTF-8 character it starts (see consumeRaw in
// escape.go).
func isNameStartChar(c byte) bool {
	return c == '_' || isAlpha(c)
}

func isNameChar(c byte) bool {
	return isNameStartChar(c) || c == '-' || isDigit(c) || c >= 0x80
}
