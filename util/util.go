package util

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

func IsUnderScore(b byte) bool {
	return b == '_'
}

func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsSymbolStart reports whether b may begin a hack symbol: a letter, '_', '.', '$' or ':'.
func IsSymbolStart(b byte) bool {
	return IsLetter(b) || IsUnderScore(b) || b == '.' || b == '$' || b == ':'
}

// IsSymbolChar reports whether b may appear after the first character of a symbol.
func IsSymbolChar(b byte) bool {
	return IsSymbolStart(b) || IsNumber(b)
}
