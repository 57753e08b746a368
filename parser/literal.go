package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

var errInvalidEscape = errors.New("Invalid escape sequence")

func (p parser) literal(cursor int) (*ast.Literal, int, error) {
	tkn, ok := p.at(cursor)
	if !ok {
		return nil, cursor, p.errorUnexpectedToken(cursor)
	}
	lit := &ast.Literal{
		Span: ast.Span{Start: tkn.Start, End: tkn.End},
		Raw:  tkn.Text(),
	}
	switch tkn.Label {
	case token.Number:
		lit.LiteralType = ast.LiteralNumber
		v, err := strconv.ParseFloat(lit.Raw, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, cursor, p.errorf(tkn.Start, tkn.End, "Invalid number %s", lit.Raw)
		}
		lit.Value = v
	case token.String:
		lit.LiteralType = ast.LiteralString
		s, err := cookString(lit.Raw)
		if err != nil {
			return nil, cursor, p.errorf(tkn.Start, tkn.End, "%v", err)
		}
		lit.Value = s
	case token.True, token.False:
		lit.LiteralType = ast.LiteralBoolean
		lit.Value = tkn.Label == token.True
	case token.Null:
		lit.LiteralType = ast.LiteralNull
	case token.RegExp:
		lit.LiteralType = ast.LiteralRegExp
		re := tkn.Value.(*token.RegExpValue)
		lit.Regex = &ast.RegExp{Pattern: re.Pattern, Flags: re.Flags}
	default:
		return nil, cursor, p.errorUnexpectedToken(cursor)
	}
	return lit, cursor + 1, nil
}

// cookString returns the value of a quoted string literal.
func cookString(raw string) (string, error) {
	return cook(raw[1 : len(raw)-1])
}

// cook resolves the escape sequences in body.
func cook(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			b.WriteByte(body[i])
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(body[i+1:])
		i += 1 + size
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x':
			v, n, err := hexEscape(body[i:], 2)
			if err != nil {
				return "", err
			}
			b.WriteRune(v)
			i += n
		case 'u':
			v, n, err := unicodeEscape(body[i:])
			if err != nil {
				return "", err
			}
			i += n
			if utf16.IsSurrogate(v) && strings.HasPrefix(body[i:], `\u`) {
				if lo, m, err := unicodeEscape(body[i+2:]); err == nil {
					if pair := utf16.DecodeRune(v, lo); pair != utf8.RuneError {
						v = pair
						i += 2 + m
					}
				}
			}
			b.WriteRune(v)
		case '\r':
			// line continuation
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n', '\u2028', '\u2029':
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// unicodeEscape decodes the XXXX or {X...} following `\u`.
func unicodeEscape(s string) (rune, int, error) {
	if !strings.HasPrefix(s, "{") {
		return hexEscape(s, 4)
	}
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return 0, 0, errInvalidEscape
	}
	v, _, err := hexEscape(s[1:end], end-1)
	if err != nil || v > utf8.MaxRune {
		return 0, 0, errInvalidEscape
	}
	return v, end + 1, nil
}

func hexEscape(s string, n int) (rune, int, error) {
	if len(s) < n {
		return 0, 0, errInvalidEscape
	}
	v, err := strconv.ParseUint(s[:n], 16, 32)
	if err != nil {
		return 0, 0, errInvalidEscape
	}
	return rune(v), n, nil
}
