package scanner

import (
	"unicode"
	"unicode/utf8"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII runes branch to the Unicode path.
var asciiStart, asciiContinue [utf8.RuneSelf]bool

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.IsLetter(chr) || unicode.Is(unicode.Nl, chr) || unicode.Is(unicode.Other_ID_Start, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	switch chr {
	case '\u200c', '\u200d':
		return true
	}
	return isIdentifierStart(chr) ||
		unicode.In(chr, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isDecimalDigit(chr rune) bool {
	return chr >= '0' && chr <= '9'
}

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhiteSpace(chr rune) bool {
	return chr == '\ufeff' || unicode.IsSpace(chr)
}
