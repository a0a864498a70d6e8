// lexer.go: character-level scanner for Bauble source text.
//
// The lexer walks an in-memory source string byte by byte and turns it into
// a stream of Tokens. It stays exactly one token ahead of its consumer: the
// next token is computed eagerly at construction and refilled on every
// NextToken call, so Peek never has to do work. Lexical failures
// (unterminated strings, unknown characters) are emitted in-band as ERROR
// tokens; the lexer itself never returns a Go error.
package bauble

import "fmt"

// keywords maps reserved identifier spellings to their token kinds.
var keywords = map[string]TokenKind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fn":     FN,
	"if":     IF,
	"import": IMPORT,
	"let":    LET,
	"none":   NONE,
	"or":     OR,
	"return": RETURN,
	"true":   TRUE,
	"while":  WHILE,
}

func isWhitespace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool      { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool   { return isAlpha(b) || isDigit(b) }

// Lexer scans a Bauble source string into tokens.
type Lexer struct {
	source string
	pos    int
	line   int // 1-based
	column int // 1-based

	// start position of the token currently being scanned
	tokLine int
	tokCol  int

	// the single buffered lookahead token
	next Token
}

// NewLexer creates a lexer over source and immediately computes its first
// lookahead token.
func NewLexer(source string) *Lexer {
	l := &Lexer{source: source, line: 1, column: 1}
	l.next = l.lexToken()
	return l
}

// NextToken returns the buffered lookahead token and eagerly lexes the one
// after it, preserving the one-token-lookahead invariant. Once EOF has been
// produced it is returned on every subsequent call.
func (l *Lexer) NextToken() Token {
	current := l.next
	l.next = l.lexToken()
	return current
}

// Peek returns the buffered lookahead token without consuming it.
func (l *Lexer) Peek() Token { return l.next }

// Tokenize drains the stream into a slice, EOF token included.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

// ----- character-level operations -----

func (l *Lexer) atEnd() bool { return l.pos >= len(l.source) }

func (l *Lexer) peekChar() (byte, bool) {
	if l.atEnd() {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.atEnd() {
		return 0, false
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch, true
}

// consume advances only if the next character equals expected. Used for
// maximal-munch scanning of the two-character operators.
func (l *Lexer) consume(expected byte) bool {
	if ch, ok := l.peekChar(); ok && ch == expected {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.peekChar()
		if !ok || !isWhitespace(ch) {
			return
		}
		l.advance()
	}
}

func (l *Lexer) makeToken(kind TokenKind, value string) Token {
	return NewToken(kind, Position{Line: l.tokLine, Column: l.tokCol}, value)
}

// ----- production rules -----

// lexToken scans the next raw token. Whitespace and // line comments are
// skipped before classification; the loop restarts after a comment so the
// following real token is classified from scratch.
func (l *Lexer) lexToken() Token {
	for {
		l.skipWhitespace()
		l.tokLine, l.tokCol = l.line, l.column

		ch, ok := l.advance()
		if !ok {
			return l.makeToken(EOF, "")
		}

		switch ch {
		case '(':
			return l.makeToken(OPEN_PAREN, "")
		case ')':
			return l.makeToken(CLOSE_PAREN, "")
		case '[':
			return l.makeToken(OPEN_BRACKET, "")
		case ']':
			return l.makeToken(CLOSE_BRACKET, "")
		case '{':
			return l.makeToken(OPEN_BRACE, "")
		case '}':
			return l.makeToken(CLOSE_BRACE, "")
		case ',':
			return l.makeToken(COMMA, "")
		case '.':
			return l.makeToken(DOT, "")
		case ';':
			return l.makeToken(SEMICOLON, "")
		case '=':
			if l.consume('=') {
				return l.makeToken(EQUAL_EQUAL, "")
			}
			return l.makeToken(EQUAL, "")
		case '!':
			if l.consume('=') {
				return l.makeToken(BANG_EQUAL, "")
			}
			return l.makeToken(BANG, "")
		case '>':
			if l.consume('=') {
				return l.makeToken(GREATER_EQUAL, "")
			}
			return l.makeToken(GREATER, "")
		case '<':
			if l.consume('=') {
				return l.makeToken(LESS_EQUAL, "")
			}
			return l.makeToken(LESS, "")
		case '+':
			return l.makeToken(PLUS, "")
		case '-':
			return l.makeToken(MINUS, "")
		case '*':
			return l.makeToken(STAR, "")
		case '/':
			if l.consume('/') {
				for {
					c, ok := l.peekChar()
					if !ok || c == '\n' {
						break
					}
					l.advance()
				}
				continue
			}
			return l.makeToken(SLASH, "")
		case '"':
			return l.lexString()
		}

		switch {
		case isDigit(ch):
			return l.lexNumber(l.pos - 1)
		case isAlpha(ch):
			return l.lexIdentifier(l.pos - 1)
		}

		return l.makeToken(ERROR, fmt.Sprintf("Unknown character %c found", ch))
	}
}

// lexString scans a string literal; the opening quote has been consumed.
// Every '"' closes the literal. Reaching end of input first produces an
// ERROR token with a fixed message.
func (l *Lexer) lexString() Token {
	start := l.pos
	for {
		ch, ok := l.peekChar()
		if !ok {
			return l.makeToken(ERROR,
				"Unterminated string literal, expected to find closing quote, instead found EOF (End of File)")
		}
		if ch == '"' {
			break
		}
		l.advance()
	}
	value := l.source[start:l.pos]
	l.advance() // closing quote
	return l.makeToken(STRING, value)
}

// lexNumber scans an integer or float starting at the already-consumed digit
// at byte offset start. A '.' after the leading digits switches the token to
// FLOAT, whether or not fractional digits follow.
func (l *Lexer) lexNumber(start int) Token {
	kind := INTEGER
	for {
		ch, ok := l.peekChar()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	if ch, ok := l.peekChar(); ok && ch == '.' {
		kind = FLOAT
		l.advance()
		for {
			ch, ok := l.peekChar()
			if !ok || !isDigit(ch) {
				break
			}
			l.advance()
		}
	}
	return l.makeToken(kind, l.source[start:l.pos])
}

// lexIdentifier scans an identifier or keyword starting at the
// already-consumed character at byte offset start.
func (l *Lexer) lexIdentifier(start int) Token {
	for {
		ch, ok := l.peekChar()
		if !ok || !isAlphaNum(ch) {
			break
		}
		l.advance()
	}
	value := l.source[start:l.pos]
	if kind, ok := keywords[value]; ok {
		return l.makeToken(kind, value)
	}
	return l.makeToken(IDENT, value)
}
