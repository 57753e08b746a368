package ast

// LiteralType tells which kind of token a Literal was built from.
type LiteralType string

const (
	LiteralString  LiteralType = "string"
	LiteralNumber  LiteralType = "number"
	LiteralBoolean LiteralType = "boolean"
	LiteralNull    LiteralType = "null"
	LiteralRegExp  LiteralType = "regexp"
)

type (
	Literal struct {
		Span
		LiteralType LiteralType
		Raw         string

		// Value is the cooked value: string, float64, bool, or nil for
		// null and regular expressions.
		Value any

		Regex *RegExp
	}

	RegExp struct {
		Pattern string
		Flags   string
	}

	TemplateLiteral struct {
		Span
		Quasis      TemplateElements
		Expressions Expressions
	}

	TemplateElements []*TemplateElement

	// TemplateElement is one text segment of a template. Cooked has the
	// escape sequences of Raw resolved.
	TemplateElement struct {
		Span
		Raw    string
		Cooked string
		Tail   bool
	}
)

func (*Literal) _expr()         {}
func (*TemplateLiteral) _expr() {}
