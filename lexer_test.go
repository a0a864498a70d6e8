package bauble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// lexAll drains the token stream, EOF excluded.
func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	var tokens []Token
	lexer := NewLexer(src)
	for lexer.Peek().Kind != EOF {
		tokens = append(tokens, lexer.NextToken())
	}
	return tokens
}

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func values(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	return b.String()
}

func requireTok(t *testing.T, tok Token, kind TokenKind, value string, line, col int) {
	t.Helper()
	require.Equal(t, kind, tok.Kind, "token kind")
	require.Equal(t, value, tok.Value, "token value")
	require.Equal(t, line, tok.Position.Line, "token line")
	require.Equal(t, col, tok.Position.Column, "token column")
}

func TestLexerLiterals(t *testing.T) {
	cases := []struct {
		src   string
		kind  TokenKind
		value string
	}{
		{"10", INTEGER, "10"},
		{"1.5", FLOAT, "1.5"},
		{`"Hello, World"`, STRING, "Hello, World"},
		{"foo", IDENT, "foo"},
		{"false", FALSE, "false"},
		{"true", TRUE, "true"},
	}
	for _, tc := range cases {
		tokens := lexAll(t, tc.src)
		require.Len(t, tokens, 1, "source %q", tc.src)
		require.Equal(t, tc.kind, tokens[0].Kind, "source %q", tc.src)
		require.Equal(t, tc.value, tokens[0].Value, "source %q", tc.src)
	}
}

func TestLexerPunctuation(t *testing.T) {
	for _, src := range []string{"(", ")", "[", "]", "{", "}", ",", ".", ";"} {
		tokens := lexAll(t, src)
		require.Len(t, tokens, 1, "source %q", src)
		require.Equal(t, src, tokens[0].Value, "source %q", src)
	}

	// Concatenated values reconstruct a punctuation-only input verbatim.
	src := "(){}[],.;"
	require.Equal(t, src, values(lexAll(t, src)))
}

func TestLexerOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"=", EQUAL},
		{"==", EQUAL_EQUAL},
		{"!", BANG},
		{"!=", BANG_EQUAL},
		{">", GREATER},
		{">=", GREATER_EQUAL},
		{"<", LESS},
		{"<=", LESS_EQUAL},
		{"+", PLUS},
		{"-", MINUS},
		{"*", STAR},
		{"/", SLASH},
	}
	for _, tc := range cases {
		tokens := lexAll(t, tc.src)
		require.Len(t, tokens, 1, "source %q", tc.src)
		requireTok(t, tokens[0], tc.kind, tc.src, 1, 1)
	}
}

func TestLexerMaximalMunch(t *testing.T) {
	require.Equal(t,
		[]TokenKind{EQUAL_EQUAL, EQUAL, BANG_EQUAL, GREATER_EQUAL, LESS_EQUAL, LESS},
		kinds(lexAll(t, "=== != >= <= <")))
}

func TestLexerKeywords(t *testing.T) {
	src := "and class else false for fn if import let none or return true while"
	want := []TokenKind{AND, CLASS, ELSE, FALSE, FOR, FN, IF, IMPORT, LET, NONE, OR, RETURN, TRUE, WHILE}
	tokens := lexAll(t, src)
	require.Equal(t, want, kinds(tokens))

	// Keyword token values are the matched text, so concatenation
	// reconstructs the input modulo whitespace.
	require.Equal(t, strings.ReplaceAll(src, " ", ""), values(tokens))
}

func TestLexerKeywordPrefixIsIdent(t *testing.T) {
	tokens := lexAll(t, "iffy letter fortune")
	require.Equal(t, []TokenKind{IDENT, IDENT, IDENT}, kinds(tokens))
}

func TestLexerUnterminatedString(t *testing.T) {
	lexer := NewLexer(`"Unclosed String D:`)

	tok := lexer.NextToken()
	require.Equal(t, ERROR, tok.Kind)
	require.Equal(t,
		"Unterminated string literal, expected to find closing quote, instead found EOF (End of File)",
		tok.Value)

	require.Equal(t, EOF, lexer.NextToken().Kind)
}

func TestLexerUnknownCharacter(t *testing.T) {
	tokens := lexAll(t, "@")
	require.Len(t, tokens, 1)
	require.Equal(t, ERROR, tokens[0].Kind)
	require.Equal(t, "Unknown character @ found", tokens[0].Value)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	for _, src := range []string{"", " ", " \t\r\n  \n"} {
		lexer := NewLexer(src)
		require.Equal(t, EOF, lexer.NextToken().Kind, "source %q", src)
	}
}

func TestLexerComments(t *testing.T) {
	// A comment-only input lexes to bare EOF.
	require.Empty(t, lexAll(t, "// just a comment"))
	require.Empty(t, lexAll(t, "// one\n// two\n"))

	// The token after a comment is classified from scratch.
	tokens := lexAll(t, "// leading comment\n5")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], INTEGER, "5", 2, 1)

	// Comments between tokens are invisible to the stream.
	require.Equal(t, []TokenKind{INTEGER, PLUS, INTEGER}, kinds(lexAll(t, "1 // add\n+ 2")))

	// A single slash is still the division operator.
	require.Equal(t, []TokenKind{INTEGER, SLASH, INTEGER}, kinds(lexAll(t, "1 / 2")))
}

func TestLexerNumberEdgeCases(t *testing.T) {
	// A dot directly after the integer part switches to FLOAT even with no
	// fractional digits.
	tokens := lexAll(t, "1.")
	require.Len(t, tokens, 1)
	require.Equal(t, FLOAT, tokens[0].Kind)
	require.Equal(t, "1.", tokens[0].Value)

	// Only the first dot belongs to the number.
	require.Equal(t, []TokenKind{FLOAT, DOT, INTEGER}, kinds(lexAll(t, "1.5.6")))

	// A leading dot is not a number start.
	require.Equal(t, []TokenKind{DOT, INTEGER}, kinds(lexAll(t, ".5")))
}

func TestLexerIntegerValuesVerbatim(t *testing.T) {
	for _, src := range []string{"0", "7", "10", "00123", "999999999"} {
		tokens := lexAll(t, src)
		require.Len(t, tokens, 1, "source %q", src)
		require.Equal(t, INTEGER, tokens[0].Kind, "source %q", src)
		require.Equal(t, src, tokens[0].Value, "source %q", src)
	}
}

func TestLexerSingleLookahead(t *testing.T) {
	lexer := NewLexer("1 + 2")

	// Peek is stable until the buffered token is consumed.
	require.Equal(t, lexer.Peek(), lexer.Peek())
	first := lexer.Peek()
	require.Equal(t, first, lexer.NextToken())
	require.NotEqual(t, first, lexer.Peek())

	requireTok(t, lexer.NextToken(), PLUS, "+", 1, 3)
	requireTok(t, lexer.NextToken(), INTEGER, "2", 1, 5)
	require.Equal(t, EOF, lexer.NextToken().Kind)

	// EOF is sticky.
	require.Equal(t, EOF, lexer.NextToken().Kind)
	require.Equal(t, EOF, lexer.Peek().Kind)
}

func TestLexerPositions(t *testing.T) {
	tokens := lexAll(t, "let x\n  = 10")
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], LET, "let", 1, 1)
	requireTok(t, tokens[1], IDENT, "x", 1, 5)
	requireTok(t, tokens[2], EQUAL, "=", 2, 3)
	requireTok(t, tokens[3], INTEGER, "10", 2, 5)
}

func TestLexerTokenize(t *testing.T) {
	tokens := NewLexer("foo(1)").Tokenize()
	require.Equal(t, []TokenKind{IDENT, OPEN_PAREN, INTEGER, CLOSE_PAREN, EOF}, kinds(tokens))
}

func TestTokenDefaultValue(t *testing.T) {
	pos := Position{Line: 1, Column: 1}
	require.Equal(t, "=", NewToken(EQUAL, pos, "").Value)
	require.Equal(t, "fn", NewToken(FN, pos, "").Value)
	require.Equal(t, "End of File", NewToken(EOF, pos, "").Value)
	require.Equal(t, "10", NewToken(INTEGER, pos, "10").Value)
}
