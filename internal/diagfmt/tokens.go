package diagfmt

import (
	"fmt"

	"github.com/t14raptor/go-estree/token"
)

// Tokens writes one line per token: its ordinal, label, payload when it has
// one, and its line:col range in src.
func (p *Printer) Tokens(src string, tokens []token.Token) error {
	for i, tkn := range tokens {
		start, end := Position(src, tkn.Start), Position(src, tkn.End)
		label := tkn.Label.String()
		if tkn.IsKeyword() {
			label = "keyword"
		}
		var payload string
		switch v := tkn.Value.(type) {
		case token.Text:
			payload = fmt.Sprintf(" %q", string(v))
		case *token.RegExpValue:
			payload = fmt.Sprintf(" /%s/%s", v.Pattern, v.Flags)
		}
		_, err := fmt.Fprintf(p.w, "%3d: %-10s%s at %s\n", i+1, label, payload,
			p.location.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col))
		if err != nil {
			return err
		}
	}
	return nil
}
