package token

// Category labels. Every other label is the exact spelling of a keyword,
// a punctuator, or a template delimiter.
const (
	Name     Label = "name"
	String   Label = "string"
	Number   Label = "number"
	RegExp   Label = "regexp"
	Template Label = "template"

	Backtick    Label = "`"  // `
	DollarBrace Label = "${" // ${
)

// Punctuators.
const (
	Plus      Label = "+"
	Minus     Label = "-"
	Multiply  Label = "*"
	Exponent  Label = "**"
	Slash     Label = "/"
	Remainder Label = "%"

	And                Label = "&"
	Or                 Label = "|"
	ExclusiveOr        Label = "^"
	ShiftLeft          Label = "<<"
	ShiftRight         Label = ">>"
	UnsignedShiftRight Label = ">>>"

	AddAssign       Label = "+="
	SubtractAssign  Label = "-="
	MultiplyAssign  Label = "*="
	ExponentAssign  Label = "**="
	QuotientAssign  Label = "/="
	RemainderAssign Label = "%="

	AndAssign                Label = "&="
	OrAssign                 Label = "|="
	ExclusiveOrAssign        Label = "^="
	ShiftLeftAssign          Label = "<<="
	ShiftRightAssign         Label = ">>="
	UnsignedShiftRightAssign Label = ">>>="

	LogicalAnd Label = "&&"
	LogicalOr  Label = "||"
	Coalesce   Label = "??"
	Increment  Label = "++"
	Decrement  Label = "--"

	Equal       Label = "=="
	StrictEqual Label = "==="
	Less        Label = "<"
	Greater     Label = ">"
	Assign      Label = "="
	Not         Label = "!"
	BitwiseNot  Label = "~"

	NotEqual       Label = "!="
	StrictNotEqual Label = "!=="
	LessOrEqual    Label = "<="
	GreaterOrEqual Label = ">="

	LeftParenthesis Label = "("
	LeftBracket     Label = "["
	LeftBrace       Label = "{"
	Comma           Label = ","
	Period          Label = "."

	RightParenthesis Label = ")"
	RightBracket     Label = "]"
	RightBrace       Label = "}"
	Semicolon        Label = ";"
	Colon            Label = ":"
	QuestionMark     Label = "?"
	Arrow            Label = "=>"
	Ellipsis         Label = "..."
)

// Keywords.
const (
	Var      Label = "var"
	Let      Label = "let"
	Const    Label = "const"
	Function Label = "function"
	If       Label = "if"
	While    Label = "while"
	For      Label = "for"
	Switch   Label = "switch"
	Case     Label = "case"
	Break    Label = "break"
	Continue Label = "continue"
	Async    Label = "async"
	Await    Label = "await"
	Catch    Label = "catch"
	Class    Label = "class"
	Debugger Label = "debugger"
	Default  Label = "default"
	Delete   Label = "delete"
	Do       Label = "do"
	Else     Label = "else"
	Export   Label = "export"
	Extends  Label = "extends"
	Finally  Label = "finally"
	Import   Label = "import"
	In       Label = "in"

	InstanceOf Label = "instanceof"

	New    Label = "new"
	Return Label = "return"
	Super  Label = "super"
	This   Label = "this"
	Throw  Label = "throw"
	Try    Label = "try"
	Typeof Label = "typeof"
	Void   Label = "void"
	With   Label = "with"
	Yield  Label = "yield"
	Enum   Label = "enum"
	True   Label = "true"
	False  Label = "false"
	Null   Label = "null"
)

// Keywords lists every word the scanner labels as a keyword.
var Keywords = []string{
	"var", "let", "const", "function", "if", "while", "for", "switch",
	"case", "break", "continue", "async", "await", "catch", "class",
	"debugger", "default", "delete", "do", "else", "export", "extends",
	"finally", "import", "in", "instanceof", "new", "return", "super",
	"this", "throw", "try", "typeof", "void", "with", "yield", "enum",
	"true", "false", "null",
}

// Punctuators lists every operator and delimiter spelling.
var Punctuators = []string{
	"=", ";", "(", ")", "{", "}", "[", "]", "+", "-", "*", "/", "%", ".",
	"!", ",", "==", "===", "!=", "!==", ">", "<", ">=", "<=", "=>", "+=",
	"-=", "*=", "/=", "%=", "...", "&&", "||", "??", "**", "++", "--",
	"<<", ">>", ">>>", "&", "|", "^", "~", "?", ":", "**=", "<<=", ">>=",
	">>>=", "&=", "|=", "^=",
}

// BeforeExpression holds the keywords after which an expression, and so a
// regular expression literal, may start.
var BeforeExpression = map[Label]bool{
	Return:     true,
	Typeof:     true,
	InstanceOf: true,
	In:         true,
	New:        true,
	Delete:     true,
	Void:       true,
	Throw:      true,
	Case:       true,
	Do:         true,
	Else:       true,
	Yield:      true,
	Await:      true,
}
