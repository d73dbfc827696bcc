package lexer

// Character classes of the GraphQL lexical grammar. These are
// deliberately distinct from unicode.IsSpace and friends: the
// whitespace and source-character sets below are GraphQL-specific,
// not general Unicode categories. Code points are spelled numerically
// to keep the set exact and avoid any ambiguity over which invisible
// character a literal would represent.
func isWhitespace(r rune) bool {
	switch r {
	case 0x0009, // tab
		0x000A, // line feed
		0x000B, // vertical tab
		0x000C, // form feed
		0x000D, // carriage return
		0x0020, // space
		0xFEFF, // byte order mark
		0x0085, // next line
		0x200E, // left-to-right mark
		0x200F, // right-to-left mark
		0x2028, // line separator
		0x2029: // paragraph separator
		return true
	default:
		return false
	}
}

func isLineTerminator(r rune) bool {
	return r == 0x000A || r == 0x000D
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isEscapedChar reports whether r is one of the single-character
// escapes valid after a backslash in a string value. 'u' (the
// unit-escape introducer) is checked separately by the caller: its
// four-hex-digit payload is not validated at this layer.
func isEscapedChar(r rune) bool {
	switch r {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	default:
		return false
	}
}

// isSourceChar reports whether r may appear verbatim inside a string
// or block-string body: tab, carriage return, line feed, or any code
// point in [U+0020, U+FFFF].
func isSourceChar(r rune) bool {
	switch r {
	case 0x0009, 0x000D, 0x000A:
		return true
	default:
		return r >= 0x0020 && r <= 0xFFFF
	}
}
