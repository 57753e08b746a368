package diagfmt

import (
	"strings"

	"github.com/t14raptor/go-estree/ast"
)

// Pos is a 1-based line and column. Columns count runes.
type Pos struct {
	Line, Col int
}

// Position resolves the rune offset off in src. Offsets past the end
// resolve to the position just after the last rune.
func Position(src string, off ast.Idx) Pos {
	pos := Pos{Line: 1, Col: 1}
	var n ast.Idx
	var prevCR bool
	for _, r := range src {
		if n == off {
			break
		}
		n++
		switch {
		case r == '\n' && prevCR:
			// CRLF counts as one line break.
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			pos.Line++
			pos.Col = 1
		default:
			pos.Col++
		}
		prevCR = r == '\r'
	}
	return pos
}

// lineAt returns the text of the given 1-based line without its terminator.
func lineAt(src string, line int) string {
	for i := 1; i < line; i++ {
		_, rest, ok := cutLine(src)
		if !ok {
			return ""
		}
		src = rest
	}
	text, _, _ := cutLine(src)
	return text
}

func cutLine(s string) (line, rest string, found bool) {
	i := strings.IndexAny(s, "\r\n\u2028\u2029")
	if i < 0 {
		return s, "", false
	}
	line, rest = s[:i], s[i:]
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		rest = rest[2:]
	case rest[0] == '\r' || rest[0] == '\n':
		rest = rest[1:]
	default:
		// U+2028 and U+2029 are both three bytes long.
		rest = rest[3:]
	}
	return line, rest, true
}
