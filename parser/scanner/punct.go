package scanner

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// brace emits a `{` or `}` token. Braces are leaves of the punctuator trie
// so they never wait for a following rune. Inside a template placeholder
// they track the nesting depth, and the `}` closing the placeholder hands
// control back to the template.
func (s *lexState) brace(r rune) {
	top := len(s.frames) - 1
	if top >= 0 && s.frames[top].kind == frameExpression {
		f := &s.frames[top]
		switch {
		case r == '{':
			f.depth++
		case f.depth > 0:
			f.depth--
		default:
			s.emitDelimiter(token.RightBrace, s.pos, s.pos+1)
			s.frames = s.frames[:top]
			s.pos++
			s.beginTemplateSegment()
			return
		}
	}
	s.begin(modePunctuator)
	s.consume(r)
	s.emitText(token.Label(string(r)), "")
}

func (s *lexState) stepPunctuator(r rune) error {
	if next := s.node.Step(r); next != nil {
		s.node = next
		s.consume(r)
		if next.Leaf() {
			return s.flushPunctuator()
		}
		return nil
	}
	return s.flushPunctuator()
}

// flushPunctuator emits the longest accepted prefix of the pending
// punctuator. Runes scanned past that prefix are scanned again.
func (s *lexState) flushPunctuator() error {
	n := len(s.pending)
	if !s.node.Accepting() {
		if n = punctuators.Longest(s.pending); n == 0 {
			return unexpectedToken(string(s.pending), ast.Idx(s.start), ast.Idx(s.pos))
		}
	}
	s.pending = s.pending[:n]
	s.pos = s.start + n
	s.emitText(token.Label(string(s.pending)), "")
	return nil
}

func (s *lexState) stepKeyword(r rune) {
	if !isIdentifierPart(r) {
		s.flushKeyword()
		return
	}
	s.consume(r)
	if s.node = s.node.Step(r); s.node == nil {
		s.mode = modeIdentifier
	}
}

// flushKeyword emits the pending word as a keyword when it ends on an
// accepting node of the keyword trie, and as a name otherwise.
func (s *lexState) flushKeyword() {
	if !s.node.Accepting() {
		s.emitText(token.Name, "")
		return
	}
	word := string(s.pending)
	s.emitText(token.Label(word), word)
}

func (s *lexState) stepIdentifier(r rune) {
	if isIdentifierPart(r) {
		s.consume(r)
		return
	}
	s.emitText(token.Name, "")
}
