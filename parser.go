// parser.go: Pratt parser for Monkey.
//
// OVERVIEW
// --------
// The parser consumes the pull-based token stream from lexer.go through a
// two-token lookahead window (curToken, peekToken) and builds the AST
// bottom-up. Expressions are parsed by precedence climbing: every operator
// token maps to a binding power, and parseExpression folds infix operators
// into the left operand for as long as the upcoming operator binds tighter
// than the caller's threshold. Equal tiers fold left-associatively because
// the next same-tier operator is not strictly greater than the threshold.
//
// Error model: nothing here is fatal. Problems are appended to an ordered
// diagnostic list and parsing resumes at the next statement boundary, so a
// single run can surface several independent diagnostics alongside the
// best-effort partial AST.
//
// Several token kinds exist without a prefix rule in this version: "(" as
// grouping or call head (CALL keeps its reserved tier), "if", "fn", "true"
// and "false". They surface as "no prefix parse function" diagnostics.
//
// Dependencies
// ------------
//   - lexer.go (token stream)
//   - ast.go (node types)
//   - errors.go (Diagnostic)
package monkey

import (
	"fmt"
	"strconv"
)

// Binding powers, lowest to highest. Tokens that are not operators
// default to LOWEST.
const (
	LOWEST      = iota + 1
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x); reserved, no rule is wired to it yet
)

func precedence(tt TokenType) int {
	switch tt {
	case EQ, NOT_EQ:
		return EQUALS
	case LT, GT:
		return LESSGREATER
	case PLUS, MINUS:
		return SUM
	case SLASH, ASTERISK:
		return PRODUCT
	case LPAREN:
		return CALL
	}
	return LOWEST
}

func isInfixOperator(tt TokenType) bool {
	switch tt {
	case PLUS, MINUS, SLASH, ASTERISK, EQ, NOT_EQ, LT, GT:
		return true
	}
	return false
}

// Parser owns its Lexer and is single-use: construct, call ParseProgram,
// read the diagnostics, discard.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	diags []Diagnostic
}

// NewParser primes both lookahead slots with two advances.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the recorded diagnostic messages in the order they occurred.
func (p *Parser) Errors() []string {
	out := make([]string, 0, len(p.diags))
	for _, d := range p.diags {
		out = append(out, d.Msg)
	}
	return out
}

// Diagnostics returns the recorded diagnostics with their positions.
func (p *Parser) Diagnostics() []Diagnostic { return p.diags }

// ParseProgram parses statements until EOF and returns the Program along
// with whatever could be built. It never aborts; check Errors afterwards.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for p.curToken.Type != EOF {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// nextToken shifts the lookahead window: peek becomes current and a fresh
// token is pulled from the lexer into peek.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case LET:
		return p.parseLetStatement()
	case RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	letTok := p.curToken

	if !p.expectPeek(IDENT) {
		p.skipToSemicolon()
		return nil
	}
	name := p.curToken

	if !p.expectPeek(ASSIGN) {
		p.skipToSemicolon()
		return nil
	}

	p.nextToken()
	value := p.parseExpression(LOWEST)

	if p.peekToken.Type == SEMICOLON {
		p.nextToken()
	}
	return &LetStatement{Token: letTok, Name: name, Value: value}
}

func (p *Parser) parseReturnStatement() Statement {
	retTok := p.curToken
	p.nextToken()

	var value Expression
	if p.curToken.Type != SEMICOLON && p.curToken.Type != EOF {
		value = p.parseExpression(LOWEST)
		if p.peekToken.Type == SEMICOLON {
			p.nextToken()
		}
	}
	return &ReturnStatement{Token: retTok, Value: value}
}

// parseExpressionStatement wraps a bare expression; the trailing semicolon
// is optional so that REPL input like `1 + 2` works without one.
func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}
	stmt.Expr = p.parseExpression(LOWEST)
	if p.peekToken.Type == SEMICOLON {
		p.nextToken()
	}
	return stmt
}

// parseExpression is the precedence-climbing core. It builds the left
// operand from the current token's prefix rule, then folds infix operators
// while the peek token binds tighter than minPrec. A peek token without an
// infix rule terminates the loop cleanly rather than erroring, so trailing
// punctuation ends an expression without noise.
func (p *Parser) parseExpression(minPrec int) Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for p.peekToken.Type != SEMICOLON && minPrec < precedence(p.peekToken.Type) {
		if !isInfixOperator(p.peekToken.Type) {
			return left
		}
		p.nextToken()
		left = p.parseInfixExpression(left)
	}
	return left
}

func (p *Parser) parsePrefix() Expression {
	switch p.curToken.Type {
	case IDENT:
		return &Identifier{Token: p.curToken}
	case INT:
		return p.parseIntegerLiteral()
	case BANG, MINUS:
		return p.parsePrefixExpression()
	}
	p.noPrefixParseFnError(p.curToken)
	return nil
}

func (p *Parser) parseIntegerLiteral() Expression {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.report(fmt.Sprintf("could not parse %q as integer", tok.Literal), tok)
		return nil
	}
	return &IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parsePrefixExpression() Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &PrefixExpression{Token: tok, Right: right}
}

// parseInfixExpression folds left into a new Infix node. The right operand
// is parsed at the operator's own precedence, which is what makes chains of
// equal-precedence operators left-associative.
func (p *Parser) parseInfixExpression(left Expression) Expression {
	tok := p.curToken
	prec := precedence(tok.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	return &InfixExpression{Left: left, Token: tok, Right: right}
}

// ───────────────────────── lookahead & diagnostics ─────────────────────────

// expectPeek advances onto the peek token when it has the wanted type and
// records a diagnostic otherwise.
func (p *Parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

// skipToSemicolon scans forward to the next statement boundary after a
// malformed statement. EOF is a forced stop so the scan cannot spin past
// the end of input.
func (p *Parser) skipToSemicolon() {
	for p.curToken.Type != SEMICOLON && p.curToken.Type != EOF {
		p.nextToken()
	}
}

func (p *Parser) peekError(expected TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", expected, p.peekToken.Type)
	p.report(msg, p.peekToken)
}

func (p *Parser) noPrefixParseFnError(tok Token) {
	p.report(fmt.Sprintf("no prefix parse function for %s", tok), tok)
}

func (p *Parser) report(msg string, at Token) {
	p.diags = append(p.diags, Diagnostic{Msg: msg, Line: at.Line, Col: at.Col})
}
