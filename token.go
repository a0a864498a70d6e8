package bauble

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// Single character tokens
	OPEN_PAREN TokenKind = iota // "("
	CLOSE_PAREN
	OPEN_BRACKET // "["
	CLOSE_BRACKET
	OPEN_BRACE // "{"
	CLOSE_BRACE
	COMMA
	DOT
	SEMICOLON

	// Operators
	EQUAL // "="
	EQUAL_EQUAL
	BANG // "!"
	BANG_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL
	PLUS
	MINUS
	STAR
	SLASH

	// Literals & identifiers
	INTEGER
	FLOAT
	STRING
	IDENT

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FN
	IF
	IMPORT
	LET
	NONE
	OR
	RETURN
	TRUE
	WHILE

	// Sentinels
	ERROR
	EOF

	kindCount
)

var kindSpellings = [kindCount]string{
	OPEN_PAREN:    "(",
	CLOSE_PAREN:   ")",
	OPEN_BRACKET:  "[",
	CLOSE_BRACKET: "]",
	OPEN_BRACE:    "{",
	CLOSE_BRACE:   "}",
	COMMA:         ",",
	DOT:           ".",
	SEMICOLON:     ";",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	BANG:          "!",
	BANG_EQUAL:    "!=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	INTEGER:       "INTEGER",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	IDENT:         "IDENTIFIER",
	AND:           "and",
	CLASS:         "class",
	ELSE:          "else",
	FALSE:         "false",
	FOR:           "for",
	FN:            "fn",
	IF:            "if",
	IMPORT:        "import",
	LET:           "let",
	NONE:          "none",
	OR:            "or",
	RETURN:        "return",
	TRUE:          "true",
	WHILE:         "while",
	ERROR:         "error",
	EOF:           "End of File",
}

// String returns the canonical spelling of the kind: the operator symbol or
// keyword text where one exists, a descriptive name otherwise.
func (k TokenKind) String() string {
	if k < 0 || k >= kindCount {
		return "error"
	}
	return kindSpellings[k]
}

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

// Token is a single lexical unit. Tokens are immutable once produced; lexical
// errors travel through the token stream as ERROR tokens rather than as Go
// errors.
type Token struct {
	Kind     TokenKind
	Position Position
	Value    string
}

// NewToken builds a token at the given position. An empty value defaults to
// the canonical spelling of the kind.
func NewToken(kind TokenKind, pos Position, value string) Token {
	if value == "" {
		value = kind.String()
	}
	return Token{Kind: kind, Position: pos, Value: value}
}

func (t Token) String() string { return t.Value }
