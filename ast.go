// ast.go: statement and expression nodes produced by the parser.
//
// Construction only; no parsing logic lives here. Every node renders a
// deterministic, fully parenthesized textual form. That rendering is the
// contract the precedence tests rely on: an expression and its String()
// output agree on grouping and associativity, so "a + b * c" comes back as
// "(a + (b * c))".
package monkey

import "strings"

// Node is anything the parser can produce.
type Node interface {
	// TokenLiteral returns the literal of the token the node started at.
	TokenLiteral() string
	String() string
}

// Statement nodes appear at the top level of a Program.
type Statement interface {
	Node
	statementNode()
}

// Expression nodes form strictly acyclic trees; each node exclusively owns
// its children.
type Expression interface {
	Node
	expressionNode()
}

// Program is an ordered sequence of statements in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

// ───────────────────────────── statements ─────────────────────────────

// LetStatement is `let <name> = <value>;`. Value may be nil while a
// malformed initializer is being recovered from.
type LetStatement struct {
	Token Token // the LET token
	Name  Token // the IDENT token being bound
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	var b strings.Builder
	b.WriteString(ls.TokenLiteral())
	b.WriteString(" ")
	b.WriteString(ls.Name.Literal)
	b.WriteString(" = ")
	if ls.Value != nil {
		b.WriteString(ls.Value.String())
	}
	return b.String()
}

// ReturnStatement is `return <value>;` with an optional value.
type ReturnStatement struct {
	Token Token // the RETURN token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var b strings.Builder
	b.WriteString(rs.TokenLiteral())
	if rs.Value != nil {
		b.WriteString(" ")
		b.WriteString(rs.Value.String())
	}
	return b.String()
}

// ExpressionStatement wraps a bare expression used in statement position.
type ExpressionStatement struct {
	Token Token // the first token of the expression
	Expr  Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expr == nil {
		return ""
	}
	return es.Expr.String()
}

// ───────────────────────────── expressions ─────────────────────────────

// Identifier is a name in expression position.
type Identifier struct {
	Token Token // the IDENT token
}

func (id *Identifier) expressionNode()      {}
func (id *Identifier) TokenLiteral() string { return id.Token.Literal }
func (id *Identifier) String() string       { return id.Token.Literal }

// IntegerLiteral carries both the raw digit text and its parsed value.
type IntegerLiteral struct {
	Token Token // the INT token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// PrefixExpression is `<op><operand>`, e.g. !ok or -5.
type PrefixExpression struct {
	Token Token // the operator token
	Right Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(pe.Token.Literal)
	if pe.Right != nil {
		b.WriteString(pe.Right.String())
	}
	b.WriteString(")")
	return b.String()
}

// InfixExpression is `<left> <op> <right>`.
type InfixExpression struct {
	Left  Expression
	Token Token // the operator token
	Right Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var b strings.Builder
	b.WriteString("(")
	if ie.Left != nil {
		b.WriteString(ie.Left.String())
	}
	b.WriteString(" ")
	b.WriteString(ie.Token.Literal)
	b.WriteString(" ")
	if ie.Right != nil {
		b.WriteString(ie.Right.String())
	}
	b.WriteString(")")
	return b.String()
}
