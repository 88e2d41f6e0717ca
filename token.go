package monkey

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers & literals
	IDENT
	INT

	// Operators
	ASSIGN   // "="
	PLUS     // "+"
	MINUS    // "-"
	BANG     // "!"
	ASTERISK // "*"
	SLASH    // "/"
	LT       // "<"
	GT       // ">"
	EQ       // "=="
	NOT_EQ   // "!="

	// Punctuation
	COMMA     // ","
	SEMICOLON // ";"
	LPAREN    // "("
	RPAREN    // ")"
	LBRACE    // "{"
	RBRACE    // "}"

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

// Token is a lexical token. Literal holds the raw text for identifiers and
// integers and the canonical spelling for everything else. Line is 1-based,
// Col is 0-based within the line.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

// String renders the token the way diagnostics refer to it: by its text for
// identifiers, integers and illegal bytes, by its canonical spelling otherwise.
func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, ILLEGAL:
		return t.Literal
	}
	return t.Type.String()
}

// keywords map
var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent classifies an identifier span against the keyword table.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case ASSIGN:
		return "="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case BANG:
		return "!"
	case ASTERISK:
		return "*"
	case SLASH:
		return "/"
	case LT:
		return "<"
	case GT:
		return ">"
	case EQ:
		return "=="
	case NOT_EQ:
		return "!="
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case LBRACE:
		return "{"
	case RBRACE:
		return "}"
	case FUNCTION:
		return "fn"
	case LET:
		return "let"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case RETURN:
		return "return"
	}
	return "UNKNOWN"
}
