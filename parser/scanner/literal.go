package scanner

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

func (s *lexState) stepLiteral(r rune) error {
	switch s.literal {
	case literalString:
		return s.stepString(r)
	case literalInteger, literalFloat:
		return s.stepNumber(r)
	case literalRegExp:
		return s.stepRegExp(r)
	}
	return s.stepRegExpFlags(r)
}

// stepString scans a quoted string. A quote or line terminator is escaped
// when preceded by an odd run of backslashes.
func (s *lexState) stepString(r rune) error {
	escaped := s.escapes%2 == 1
	switch {
	case r == '\\':
		s.escapes++
		s.escapedCR = false
		s.consume(r)
		return nil
	case r == s.quote && !escaped:
		s.consume(r)
		s.emitText(token.String, "")
		return nil
	case isLineTerminator(r) && !escaped && !(r == '\n' && s.escapedCR):
		return unterminatedString(ast.Idx(s.start), ast.Idx(s.pos))
	}
	s.escapedCR = escaped && r == '\r'
	s.escapes = 0
	s.consume(r)
	return nil
}

func (s *lexState) stepNumber(r rune) error {
	switch {
	case isDecimalDigit(r):
		s.consume(r)
	case r == '.':
		if s.literal == literalFloat {
			return unexpectedNumber(ast.Idx(s.start), ast.Idx(s.pos+1))
		}
		s.literal = literalFloat
		s.consume(r)
	case isIdentifierPart(r):
		if keywords.Root().Step(r) == nil {
			return identifierAfterNumber(ast.Idx(s.start), ast.Idx(s.pos+1))
		}
		s.emitText(token.Number, "")
	default:
		s.emitText(token.Number, "")
	}
	return nil
}
