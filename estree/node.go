// Package estree converts an AST into the ESTree shape used by external
// JavaScript tooling. Every node carries "type", "start" and "end"; the
// remaining keys follow the ESTree specification for the node type.
package estree

// Base holds the keys shared by every node. It is embedded with the inline
// option so that the msgpack encoder flattens it the way encoding/json does.
type Base struct {
	Type  string `json:"type"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type Program struct {
	Base `json:",inline"`
	Body       []any  `json:"body"`
	SourceType string `json:"sourceType"`
}

type BlockStatement struct {
	Base `json:",inline"`
	Body []any `json:"body"`
}

type VariableDeclaration struct {
	Base `json:",inline"`
	Kind         string `json:"kind"`
	Declarations []any  `json:"declarations"`
}

type VariableDeclarator struct {
	Base `json:",inline"`
	ID   any `json:"id"`
	Init any `json:"init"`
}

type Identifier struct {
	Base `json:",inline"`
	Name string `json:"name"`
}

type Literal struct {
	Base `json:",inline"`
	Value       any    `json:"value"`
	Raw         string `json:"raw"`
	LiteralType string `json:"literalType"`
	Regex       *Regex `json:"regex,omitempty"`
}

type Regex struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

type TemplateLiteral struct {
	Base `json:",inline"`
	Quasis      []any `json:"quasis"`
	Expressions []any `json:"expressions"`
}

type TemplateElement struct {
	Base `json:",inline"`
	Value TemplateValue `json:"value"`
	Tail  bool          `json:"tail"`
}

type TemplateValue struct {
	Raw    string `json:"raw"`
	Cooked string `json:"cooked"`
}

type ArrayExpression struct {
	Base `json:",inline"`
	Elements []any `json:"elements"`
}

type ObjectExpression struct {
	Base `json:",inline"`
	Properties []any `json:"properties"`
}

type Property struct {
	Base `json:",inline"`
	Key       any    `json:"key"`
	Value     any    `json:"value"`
	Kind      string `json:"kind"`
	Computed  bool   `json:"computed"`
	Method    bool   `json:"method"`
	Shorthand bool   `json:"shorthand"`
}

type Function struct {
	Base `json:",inline"`
	ID         any   `json:"id"`
	Params     []any `json:"params"`
	Body       any   `json:"body"`
	Expression bool  `json:"expression"`
	Generator  bool  `json:"generator"`
	Async      bool  `json:"async"`
}

type UnaryExpression struct {
	Base `json:",inline"`
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument any    `json:"argument"`
}

// BinaryExpression also serves LogicalExpression and AssignmentExpression,
// which share its keys.
type BinaryExpression struct {
	Base `json:",inline"`
	Operator string `json:"operator"`
	Left     any    `json:"left"`
	Right    any    `json:"right"`
}

type ConditionalExpression struct {
	Base `json:",inline"`
	Test       any `json:"test"`
	Consequent any `json:"consequent"`
	Alternate  any `json:"alternate"`
}

type MemberExpression struct {
	Base `json:",inline"`
	Object   any  `json:"object"`
	Property any  `json:"property"`
	Computed bool `json:"computed"`
	Optional bool `json:"optional"`
}

type CallExpression struct {
	Base `json:",inline"`
	Callee    any   `json:"callee"`
	Arguments []any `json:"arguments"`
	Optional  bool  `json:"optional"`
}

type NewExpression struct {
	Base `json:",inline"`
	Callee    any   `json:"callee"`
	Arguments []any `json:"arguments"`
}
