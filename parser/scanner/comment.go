package scanner

func (s *lexState) stepComment(r rune) {
	if s.comment == commentLine {
		if isLineTerminator(r) {
			s.mode = modeInitial
			return
		}
		s.pos++
		return
	}
	if r == '*' && s.peek(1) == '/' {
		s.pos += 2
		s.mode = modeInitial
		return
	}
	s.pos++
}
