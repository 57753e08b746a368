// Package scanner turns source text into a sequence of tokens.
//
// The scanner is a rune-level state machine. A single lexState value owns
// all of the scanning state and one step function per mode consumes the
// rune under the cursor, or switches mode and leaves it for the next step.
package scanner

import (
	"fortio.org/safecast"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
	"github.com/t14raptor/go-estree/tools/trie"
)

var (
	keywords    = trie.New(token.Keywords...)
	punctuators = trie.New(token.Punctuators...)
)

type mode uint8

const (
	modeInitial mode = iota
	modeKeyword
	modePunctuator
	modeIdentifier
	modeLiteral
	modeTemplate
	modeComment
)

type literalKind uint8

const (
	literalString literalKind = iota
	literalInteger
	literalFloat
	literalRegExp
	literalRegExpFlags
)

type commentKind uint8

const (
	commentLine commentKind = iota
	commentBlock
)

type frameKind uint8

const (
	frameTemplate frameKind = iota
	frameExpression
)

// frame is one level of template nesting. Depth counts the braces opened
// inside an expression placeholder that have not been closed yet.
type frame struct {
	kind  frameKind
	depth int
	start int
}

type lexState struct {
	src []rune
	pos int

	mode    mode
	pending []rune
	start   int

	// keyword and punctuator matching
	node *trie.Node

	literal literalKind
	quote   rune
	escapes int
	// escapedCR is set after a backslash-escaped carriage return so that a
	// following line feed continues the string.
	escapedCR bool

	frames []frame

	regexp regExpState

	comment commentKind

	tokens []token.Token
}

// Keywords returns the recognised keywords in lexical order.
func Keywords() []string {
	return keywords.Words()
}

// Punctuators returns the recognised punctuators in lexical order.
func Punctuators() []string {
	return punctuators.Words()
}

// Tokenize scans src and returns its tokens. Offsets count Unicode
// scalar values. The first lexical error aborts the scan.
func Tokenize(src string) ([]token.Token, error) {
	runes := []rune(src)
	if _, err := safecast.Conv[ast.Idx](len(runes)); err != nil {
		return nil, sourceTooLarge(len(runes))
	}

	s := &lexState{
		src:    runes,
		tokens: make([]token.Token, 0, len(runes)/4+1),
	}
	for {
		if s.pos >= len(s.src) {
			done, err := s.eof()
			if err != nil {
				return nil, err
			}
			if done {
				return s.tokens, nil
			}
			continue
		}
		if err := s.step(s.src[s.pos]); err != nil {
			return nil, err
		}
	}
}

func (s *lexState) step(r rune) error {
	switch s.mode {
	case modeKeyword:
		s.stepKeyword(r)
		return nil
	case modePunctuator:
		return s.stepPunctuator(r)
	case modeIdentifier:
		s.stepIdentifier(r)
		return nil
	case modeLiteral:
		return s.stepLiteral(r)
	case modeTemplate:
		return s.stepTemplate(r)
	case modeComment:
		s.stepComment(r)
		return nil
	}
	return s.stepInitial(r)
}

func (s *lexState) stepInitial(r rune) error {
	switch {
	case isWhiteSpace(r):
		s.pos++
		return nil
	case r == '{' || r == '}':
		s.brace(r)
		return nil
	case r == '"' || r == '\'':
		s.begin(modeLiteral)
		s.literal = literalString
		s.quote = r
		s.escapes = 0
		s.escapedCR = false
		s.consume(r)
		return nil
	case r == '`':
		s.emitDelimiter(token.Backtick, s.pos, s.pos+1)
		s.frames = append(s.frames, frame{kind: frameTemplate, start: s.pos})
		s.pos++
		s.beginTemplateSegment()
		return nil
	case isDecimalDigit(r):
		s.begin(modeLiteral)
		s.literal = literalInteger
		s.consume(r)
		return nil
	case r == '.' && isDecimalDigit(s.peek(1)):
		s.begin(modeLiteral)
		s.literal = literalFloat
		s.consume(r)
		return nil
	case r == '/' && s.peek(1) == '/':
		s.begin(modeComment)
		s.comment = commentLine
		s.pos += 2
		return nil
	case r == '/' && s.peek(1) == '*':
		s.begin(modeComment)
		s.comment = commentBlock
		s.pos += 2
		return nil
	case r == '/' && s.regExpAllowed():
		s.begin(modeLiteral)
		s.literal = literalRegExp
		s.regexp = regExpState{}
		s.escapes = 0
		s.consume(r)
		return nil
	}

	if node := punctuators.Root().Step(r); node != nil {
		s.begin(modePunctuator)
		s.node = node
		s.consume(r)
		if node.Leaf() {
			return s.flushPunctuator()
		}
		return nil
	}
	if isIdentifierStart(r) {
		if node := keywords.Root().Step(r); node != nil {
			s.begin(modeKeyword)
			s.node = node
		} else {
			s.begin(modeIdentifier)
		}
		s.consume(r)
		return nil
	}
	return unexpectedCharacter(r, ast.Idx(s.pos), ast.Idx(s.pos+1))
}

// eof handles the end of input in the current mode. It reports done once
// nothing is pending. A flush may move the cursor back, in which case the
// scan continues.
func (s *lexState) eof() (done bool, err error) {
	end := ast.Idx(len(s.src))
	switch s.mode {
	case modeKeyword:
		s.flushKeyword()
	case modeIdentifier:
		s.emitText(token.Name, "")
	case modePunctuator:
		return false, s.flushPunctuator()
	case modeLiteral:
		switch s.literal {
		case literalString:
			return false, unterminatedString(ast.Idx(s.start), end)
		case literalRegExp:
			return false, unterminatedRegExp(ast.Idx(s.start), end)
		case literalRegExpFlags:
			s.emitRegExp()
		default:
			s.emitText(token.Number, "")
		}
	case modeTemplate:
		return false, unterminatedTemplateLiteral(ast.Idx(s.frames[len(s.frames)-1].start), end)
	case modeComment:
		if s.comment == commentBlock {
			return false, unterminatedMultiLineComment(ast.Idx(s.start), end)
		}
		s.mode = modeInitial
	case modeInitial:
		if n := len(s.frames); n > 0 {
			return false, unterminatedTemplateLiteral(ast.Idx(s.frames[n-1].start), end)
		}
		return true, nil
	}
	return false, nil
}

// begin starts a new pending token of mode m at the cursor.
func (s *lexState) begin(m mode) {
	s.mode = m
	s.start = s.pos
	s.pending = s.pending[:0]
}

// consume appends r to the pending token and advances the cursor.
func (s *lexState) consume(r rune) {
	s.pending = append(s.pending, r)
	s.pos++
}

func (s *lexState) peek(n int) rune {
	if i := s.pos + n; i < len(s.src) {
		return s.src[i]
	}
	return -1
}

// emitText emits the pending text as a token covering [start, cursor) and
// returns to the initial mode. An empty keyword means the label is not one.
func (s *lexState) emitText(label token.Label, keyword string) {
	s.tokens = append(s.tokens, token.Token{
		Label:   label,
		Keyword: keyword,
		Value:   token.Text(s.pending),
		Start:   ast.Idx(s.start),
		End:     ast.Idx(s.pos),
	})
	s.mode = modeInitial
	s.pending = s.pending[:0]
}

func (s *lexState) emitDelimiter(label token.Label, start, end int) {
	s.tokens = append(s.tokens, token.Token{
		Label: label,
		Start: ast.Idx(start),
		End:   ast.Idx(end),
	})
}

func (s *lexState) last() (token.Token, bool) {
	if len(s.tokens) == 0 {
		return token.Token{}, false
	}
	return s.tokens[len(s.tokens)-1], true
}

// regExpAllowed reports whether a slash at the cursor starts a regular
// expression rather than a division operator.
func (s *lexState) regExpAllowed() bool {
	prev, ok := s.last()
	if !ok {
		return true
	}
	switch prev.Label {
	case token.DollarBrace:
		return true
	case token.RightParenthesis, token.RightBracket, token.RightBrace,
		token.Increment, token.Decrement:
		// A postfix ++ or -- ends an operand.
		return false
	}
	if prev.IsKeyword() {
		return token.BeforeExpression[prev.Label]
	}
	return prev.Value != nil && punctuators.Exists(string(prev.Label))
}
