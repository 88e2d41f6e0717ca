// ast_test.go
package monkey

import "testing"

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: Token{Type: LET, Literal: "let"},
				Name:  Token{Type: IDENT, Literal: "myVar"},
				Value: &Identifier{Token: Token{Type: IDENT, Literal: "anotherVar"}},
			},
			&ReturnStatement{
				Token: Token{Type: RETURN, Literal: "return"},
				Value: &Identifier{Token: Token{Type: IDENT, Literal: "myVar"}},
			},
		},
	}

	if got := program.String(); got != "let myVar = anotherVarreturn myVar" {
		t.Fatalf("program rendering %q", got)
	}
	if got := program.TokenLiteral(); got != "let" {
		t.Fatalf("program TokenLiteral %q", got)
	}
}

func TestExpressionRendering(t *testing.T) {
	five := &IntegerLiteral{Token: Token{Type: INT, Literal: "5"}, Value: 5}
	x := &Identifier{Token: Token{Type: IDENT, Literal: "x"}}

	prefix := &PrefixExpression{
		Token: Token{Type: MINUS, Literal: "-"},
		Right: five,
	}
	if got := prefix.String(); got != "(-5)" {
		t.Fatalf("prefix rendering %q", got)
	}

	infix := &InfixExpression{
		Left:  prefix,
		Token: Token{Type: ASTERISK, Literal: "*"},
		Right: x,
	}
	if got := infix.String(); got != "((-5) * x)" {
		t.Fatalf("infix rendering %q", got)
	}
}

func TestRenderingWithMissingSlots(t *testing.T) {
	// Nodes whose optional children were lost to a parse error still render.
	ls := &LetStatement{
		Token: Token{Type: LET, Literal: "let"},
		Name:  Token{Type: IDENT, Literal: "x"},
	}
	if got := ls.String(); got != "let x = " {
		t.Fatalf("let rendering %q", got)
	}

	rs := &ReturnStatement{Token: Token{Type: RETURN, Literal: "return"}}
	if got := rs.String(); got != "return" {
		t.Fatalf("return rendering %q", got)
	}

	es := &ExpressionStatement{Token: Token{Type: SEMICOLON, Literal: ";"}}
	if got := es.String(); got != "" {
		t.Fatalf("empty expression statement rendering %q", got)
	}
}
