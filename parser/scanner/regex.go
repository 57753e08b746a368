package scanner

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

var regExpFlags = []rune{'g', 'i', 'm', 'u', 'y'}

type regExpState struct {
	parens  int
	inClass bool

	// canRepeat is set when the last item is an atom a quantifier may follow.
	canRepeat  bool
	quantifier bool
	prev       rune

	// bodyEnd is the pending length up to and including the closing slash.
	bodyEnd int
}

func (st *regExpState) atom(r rune) {
	st.canRepeat = true
	st.quantifier = false
	st.prev = r
}

func (s *lexState) stepRegExp(r rune) error {
	st := &s.regexp
	if isLineTerminator(r) {
		return unterminatedRegExp(ast.Idx(s.start), ast.Idx(s.pos))
	}
	if r == '\\' {
		s.escapes++
		if s.escapes%2 == 0 {
			st.atom(0)
		}
		s.consume(r)
		return nil
	}
	if s.escapes%2 == 1 {
		s.escapes = 0
		st.atom(0)
		s.consume(r)
		return nil
	}
	s.escapes = 0

	if st.inClass {
		if r == ']' {
			st.inClass = false
			st.atom(r)
		}
		s.consume(r)
		return nil
	}

	switch r {
	case '/':
		if st.parens > 0 {
			return unterminatedGroup(ast.Idx(s.start), ast.Idx(s.pos+1))
		}
		s.consume(r)
		st.bodyEnd = len(s.pending)
		s.literal = literalRegExpFlags
		return nil
	case '[':
		st.inClass = true
	case '(':
		st.parens++
		st.canRepeat = false
		st.quantifier = false
	case ')':
		if st.parens == 0 {
			return unmatchedParenthesis(ast.Idx(s.pos), ast.Idx(s.pos+1))
		}
		st.parens--
		st.atom(r)
	case '|', '^':
		st.canRepeat = false
		st.quantifier = false
	case '*', '+':
		if err := s.repeat(); err != nil {
			return err
		}
	case '?':
		switch {
		case st.prev == '(':
			// group modifier such as (?: or (?=
		case st.quantifier:
			st.quantifier = false
		default:
			if err := s.repeat(); err != nil {
				return err
			}
		}
	case '{':
		if n := quantifierLength(s.src[s.pos:]); n > 0 {
			if err := s.repeat(); err != nil {
				return err
			}
			s.pending = append(s.pending, s.src[s.pos:s.pos+n]...)
			s.pos += n
			st.prev = '}'
			return nil
		}
		st.atom(r)
	default:
		st.atom(r)
	}
	st.prev = r
	s.consume(r)
	return nil
}

// repeat applies a quantifier at the cursor.
func (s *lexState) repeat() error {
	st := &s.regexp
	if !st.canRepeat {
		return nothingToRepeat(ast.Idx(s.pos), ast.Idx(s.pos+1))
	}
	st.canRepeat = false
	st.quantifier = true
	return nil
}

// quantifierLength returns the length of a {n}, {n,} or {n,m} quantifier
// at the start of rs, or 0.
func quantifierLength(rs []rune) int {
	i := 1
	for i < len(rs) && isDecimalDigit(rs[i]) {
		i++
	}
	if i == 1 {
		return 0
	}
	if i < len(rs) && rs[i] == ',' {
		i++
		for i < len(rs) && isDecimalDigit(rs[i]) {
			i++
		}
	}
	if i < len(rs) && rs[i] == '}' {
		return i + 1
	}
	return 0
}

func (s *lexState) stepRegExpFlags(r rune) error {
	if !isIdentifierPart(r) {
		s.emitRegExp()
		return nil
	}
	if !slices.Contains(regExpFlags, r) {
		return regExpFlag(r, ast.Idx(s.pos), ast.Idx(s.pos+1))
	}
	if slices.Contains(s.pending[s.regexp.bodyEnd:], r) {
		return regExpFlagTwice(r, ast.Idx(s.pos), ast.Idx(s.pos+1))
	}
	s.consume(r)
	return nil
}

func (s *lexState) emitRegExp() {
	end := s.regexp.bodyEnd
	s.tokens = append(s.tokens, token.Token{
		Label: token.RegExp,
		Value: &token.RegExpValue{
			Pattern: string(s.pending[1 : end-1]),
			Flags:   string(s.pending[end:]),
			Raw:     string(s.pending),
		},
		Start: ast.Idx(s.start),
		End:   ast.Idx(s.pos),
	})
	s.mode = modeInitial
	s.pending = s.pending[:0]
}
