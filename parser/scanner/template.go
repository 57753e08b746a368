package scanner

import (
	"github.com/t14raptor/go-estree/token"
)

func (s *lexState) beginTemplateSegment() {
	s.mode = modeTemplate
	s.start = s.pos
	s.pending = s.pending[:0]
	s.escapes = 0
}

// stepTemplate accumulates the raw text of a template segment. The segment
// is emitted, possibly empty, before every `${` and before the closing
// backtick.
func (s *lexState) stepTemplate(r rune) error {
	escaped := s.escapes%2 == 1
	switch {
	case r == '\\':
		s.escapes++
		s.consume(r)
		return nil
	case r == '`' && !escaped:
		s.emitText(token.Template, "")
		s.emitDelimiter(token.Backtick, s.pos, s.pos+1)
		s.frames = s.frames[:len(s.frames)-1]
		s.pos++
		return nil
	case r == '$' && !escaped && s.peek(1) == '{':
		s.emitText(token.Template, "")
		s.emitDelimiter(token.DollarBrace, s.pos, s.pos+2)
		s.frames = append(s.frames, frame{kind: frameExpression, start: s.pos})
		s.pos += 2
		return nil
	}
	s.escapes = 0
	s.consume(r)
	return nil
}
