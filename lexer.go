// lexer.go: byte-level scanner for Monkey source.
package monkey

// Lexer scans a Monkey source string and hands out one token per NextToken
// call. It owns the input and walks it left to right exactly once; it is not
// restartable or seekable.
type Lexer struct {
	input   string
	pos     int  // index of the current byte
	readPos int  // index of the next byte to read; readPos == pos+1 after each advance
	ch      byte // current byte; 0 once the input is exhausted
	line    int  // 1-based
	col     int  // 0-based column within line
}

// NewLexer takes ownership of the source text and primes the first character.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// NextToken returns exactly one token and advances the cursor. It never
// fails: unrecognized bytes become ILLEGAL tokens and scanning continues.
// Once the input is exhausted every further call returns EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, col := l.line, l.col

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: EQ, Literal: "==", Line: line, Col: col}
		} else {
			tok = Token{Type: ASSIGN, Literal: "=", Line: line, Col: col}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NOT_EQ, Literal: "!=", Line: line, Col: col}
		} else {
			tok = Token{Type: BANG, Literal: "!", Line: line, Col: col}
		}
	case '+':
		tok = Token{Type: PLUS, Literal: "+", Line: line, Col: col}
	case '-':
		tok = Token{Type: MINUS, Literal: "-", Line: line, Col: col}
	case '*':
		tok = Token{Type: ASTERISK, Literal: "*", Line: line, Col: col}
	case '/':
		tok = Token{Type: SLASH, Literal: "/", Line: line, Col: col}
	case '<':
		tok = Token{Type: LT, Literal: "<", Line: line, Col: col}
	case '>':
		tok = Token{Type: GT, Literal: ">", Line: line, Col: col}
	case ',':
		tok = Token{Type: COMMA, Literal: ",", Line: line, Col: col}
	case ';':
		tok = Token{Type: SEMICOLON, Literal: ";", Line: line, Col: col}
	case '(':
		tok = Token{Type: LPAREN, Literal: "(", Line: line, Col: col}
	case ')':
		tok = Token{Type: RPAREN, Literal: ")", Line: line, Col: col}
	case '{':
		tok = Token{Type: LBRACE, Literal: "{", Line: line, Col: col}
	case '}':
		tok = Token{Type: RBRACE, Literal: "}", Line: line, Col: col}
	case 0:
		return Token{Type: EOF, Line: line, Col: col}
	default:
		if isAlpha(l.ch) {
			lit := l.readIdentifier()
			return Token{Type: LookupIdent(lit), Literal: lit, Line: line, Col: col}
		}
		if isDigit(l.ch) {
			return Token{Type: INT, Literal: l.readNumber(), Line: line, Col: col}
		}
		tok = Token{Type: ILLEGAL, Literal: string(l.ch), Line: line, Col: col}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readChar() {
	if l.readPos > 0 && l.pos < len(l.input) {
		if l.ch == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar looks one byte ahead without consuming it, which is how the
// two-character operators "==" and "!=" are told apart from "=" and "!".
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier greedily extends over [A-Za-z_].
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isAlpha(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber greedily extends over digits. Conversion is left to the parser.
func (l *Lexer) readNumber() string {
	pos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
