package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// templateLiteral parses the token run of a template: a segment before
// every placeholder and one after the last.
func (p parser) templateLiteral(cursor int) (*ast.TemplateLiteral, int, error) {
	open, next, err := p.expect(cursor, token.Backtick)
	if err != nil {
		return nil, cursor, err
	}
	lit := &ast.TemplateLiteral{
		Quasis:      ast.TemplateElements{},
		Expressions: ast.Expressions{},
	}
	for {
		seg, after, err := p.expect(next, token.Template)
		if err != nil {
			return nil, cursor, err
		}
		cooked, err := cook(seg.Text())
		if err != nil {
			return nil, cursor, p.errorf(seg.Start, seg.End, "%v", err)
		}
		elem := &ast.TemplateElement{
			Span:   ast.Span{Start: seg.Start, End: seg.End},
			Raw:    seg.Text(),
			Cooked: cooked,
		}
		lit.Quasis = append(lit.Quasis, elem)
		next = after

		if _, after, ok := p.optional(next, token.DollarBrace); ok {
			expr, after, err := p.expression(after)
			if err != nil {
				return nil, cursor, err
			}
			lit.Expressions = append(lit.Expressions, expr)
			if next, err = p.skip(after, token.RightBrace); err != nil {
				return nil, cursor, err
			}
			continue
		}

		closing, after, err := p.expect(next, token.Backtick)
		if err != nil {
			return nil, cursor, err
		}
		elem.Tail = true
		lit.Span = ast.Span{Start: open.Start, End: closing.End}
		return lit, after, nil
	}
}
