package ast

// TypeOf returns the ESTree type name of n.
func TypeOf(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *BlockStatement:
		return "BlockStatement"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *VariableDeclarator:
		return "VariableDeclarator"
	case *Identifier:
		return "Identifier"
	case *Literal:
		return "Literal"
	case *TemplateLiteral:
		return "TemplateLiteral"
	case *TemplateElement:
		return "TemplateElement"
	case *ArrayExpression:
		return "ArrayExpression"
	case *ObjectExpression:
		return "ObjectExpression"
	case *Property:
		return "Property"
	case *FunctionExpression:
		return "FunctionExpression"
	case *ArrowFunctionExpression:
		return "ArrowFunctionExpression"
	case *UnaryExpression:
		return "UnaryExpression"
	case *BinaryExpression:
		return "BinaryExpression"
	case *LogicalExpression:
		return "LogicalExpression"
	case *AssignmentExpression:
		return "AssignmentExpression"
	case *ConditionalExpression:
		return "ConditionalExpression"
	case *MemberExpression:
		return "MemberExpression"
	case *CallExpression:
		return "CallExpression"
	case *NewExpression:
		return "NewExpression"
	}
	return "Unknown"
}
