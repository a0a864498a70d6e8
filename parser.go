// parser.go — precedence-climbing ("Pratt") expression parser for Bauble.
//
// The parser owns one Lexer exclusively and works entirely through its
// single-token lookahead: peek inspects the buffered token, advance consumes
// it. Each token kind owns up to two handlers — a prefix handler that can
// start an expression and an infix handler that extends one — held in a rule
// table built once at construction. A static precedence table drives the
// climbing loop: parseExpression(min) keeps folding infix operators into the
// left operand while their binding power is strictly greater than min.
//
// Binding powers (prefix, infix); lower binds more loosely:
//
//	=            (-, 1)
//	or           (-, 2)
//	and          (-, 3)
//	== !=        (-, 4)
//	> >= < <=    (-, 5)
//	+            (-, 6)
//	-            (8, 6)
//	* /          (-, 7)
//	!            (8, -)
//	( .          (-, 9)
//
// Assignment is right-recursive (the identifier handler re-enters at
// precedence 1), so a = b = 5 groups as a = (b = 5). MINUS is the one token
// with both roles: negation through its prefix power, subtraction through
// its infix power.
//
// Syntax errors are collected as *Diagnostic values and the first one is
// returned as the error result; parsing stops at the first structural
// failure. Lexical ERROR tokens surface here too, as "expected expression"
// diagnostics whose text carries the lexer's message.
package bauble

import (
	"fmt"
	"strconv"
)

// precedence holds the optional prefix and infix binding powers of a token
// kind. Zero means the role is absent; the climbing loop treats a missing
// infix power as the loosest possible binding.
type precedence struct {
	prefix int
	infix  int
}

func precedenceOf(kind TokenKind) precedence {
	switch kind {
	case EQUAL:
		return precedence{infix: 1}
	case OR:
		return precedence{infix: 2}
	case AND:
		return precedence{infix: 3}
	case EQUAL_EQUAL, BANG_EQUAL:
		return precedence{infix: 4}
	case GREATER, GREATER_EQUAL, LESS, LESS_EQUAL:
		return precedence{infix: 5}
	case PLUS:
		return precedence{infix: 6}
	case MINUS:
		return precedence{prefix: 8, infix: 6}
	case STAR, SLASH:
		return precedence{infix: 7}
	case BANG:
		return precedence{prefix: 8}
	case OPEN_PAREN, DOT:
		return precedence{infix: 9}
	}
	return precedence{}
}

// parseRule pairs the prefix and infix handlers of a token kind. Either may
// be nil.
type parseRule struct {
	prefix func() (Expr, error)
	infix  func(Expr) (Expr, error)
}

// maxNestingDepth bounds expression nesting so pathological input fails with
// a diagnostic instead of exhausting the call stack.
const maxNestingDepth = 1000

// Parser parses a source string into an expression AST.
type Parser struct {
	lexer    *Lexer
	filename string
	rules    [kindCount]parseRule
	diags    []*Diagnostic
	depth    int
}

// NewParser creates a parser for source. The filename labels diagnostics
// only; no file is read.
func NewParser(source, filename string) *Parser {
	p := &Parser{lexer: NewLexer(source), filename: filename}
	p.rules = [kindCount]parseRule{
		INTEGER:       {prefix: p.parseLiteral},
		FLOAT:         {prefix: p.parseLiteral},
		STRING:        {prefix: p.parseLiteral},
		FALSE:         {prefix: p.parseLiteral},
		TRUE:          {prefix: p.parseLiteral},
		NONE:          {prefix: p.parseLiteral},
		IDENT:         {prefix: p.parseIdent},
		OPEN_PAREN:    {prefix: p.parseGrouping},
		PLUS:          {infix: p.parseBinary},
		MINUS:         {prefix: p.parseUnary, infix: p.parseBinary},
		STAR:          {infix: p.parseBinary},
		SLASH:         {infix: p.parseBinary},
		BANG:          {prefix: p.parseUnary},
		EQUAL_EQUAL:   {infix: p.parseBinary},
		BANG_EQUAL:    {infix: p.parseBinary},
		GREATER:       {infix: p.parseBinary},
		GREATER_EQUAL: {infix: p.parseBinary},
		LESS:          {infix: p.parseBinary},
		LESS_EQUAL:    {infix: p.parseBinary},
		AND:           {infix: p.parseBinary},
		OR:            {infix: p.parseBinary},
	}
	return p
}

// ParseExpr parses source as a single expression.
func ParseExpr(source, filename string) (Expr, error) {
	return NewParser(source, filename).ParseExpression()
}

// ParseExpression parses one expression from the token stream.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.parseExpression(0)
}

// Diagnostics returns the syntax errors collected so far, in the order they
// were emitted.
func (p *Parser) Diagnostics() []*Diagnostic { return p.diags }

// AtEnd reports whether the token stream is exhausted.
func (p *Parser) AtEnd() bool { return p.peek().Kind == EOF }

// ----- token plumbing -----

func (p *Parser) peek() Token    { return p.lexer.Peek() }
func (p *Parser) advance() Token { return p.lexer.NextToken() }

// expect consumes the next token if it has the expected kind. Otherwise it
// emits a diagnostic at the unexpected token and does not advance past it.
func (p *Parser) expect(kind TokenKind, message string) error {
	if p.peek().Kind != kind {
		return p.errorAt(message, p.peek())
	}
	p.advance()
	return nil
}

// errorAt records a diagnostic at tok and returns it as the error.
func (p *Parser) errorAt(message string, tok Token) error {
	d := &Diagnostic{Filename: p.filename, Token: tok, Message: message}
	p.diags = append(p.diags, d)
	return d
}

// ----- the climbing engine -----

func (p *Parser) parseExpression(minPrecedence int) (Expr, error) {
	if p.depth >= maxNestingDepth {
		return nil, p.errorAt("Invalid Syntax: Expression nesting is too deep", p.peek())
	}
	p.depth++
	defer func() { p.depth-- }()

	tok := p.peek()
	rule := p.rules[tok.Kind]
	if rule.prefix == nil {
		return nil, p.errorAt(fmt.Sprintf("Invalid Syntax: Expected expression, found %s", tok.Value), tok)
	}

	lhs, err := rule.prefix()
	if err != nil {
		return nil, err
	}

	for minPrecedence < precedenceOf(p.peek().Kind).infix {
		infix := p.rules[p.peek().Kind].infix
		if infix == nil {
			break
		}
		lhs, err = infix(lhs)
		if err != nil {
			return nil, err
		}
	}

	return lhs, nil
}

// ----- handlers -----

// parseLiteral consumes a literal token. Numeric texts are converted to
// their values; strings keep the lexed text.
func (p *Parser) parseLiteral() (Expr, error) {
	tok := p.advance()
	switch tok.Kind {
	case INTEGER:
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.errorAt(fmt.Sprintf("Invalid Syntax: Integer literal %s is out of range", tok.Value), tok)
		}
		return &Literal{Value: v, Position: tok.Position}, nil
	case FLOAT:
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorAt(fmt.Sprintf("Invalid Syntax: Invalid float literal %s", tok.Value), tok)
		}
		return &Literal{Value: v, Position: tok.Position}, nil
	case TRUE:
		return &Literal{Value: true, Position: tok.Position}, nil
	case FALSE:
		return &Literal{Value: false, Position: tok.Position}, nil
	case NONE:
		return &Literal{Value: None{}, Position: tok.Position}, nil
	default: // STRING
		return &Literal{Value: tok.Value, Position: tok.Position}, nil
	}
}

// parseIdent consumes an identifier, then decides between assignment, call,
// and plain reference on one token of lookahead.
func (p *Parser) parseIdent() (Expr, error) {
	tok := p.advance()

	switch p.peek().Kind {
	case EQUAL:
		p.advance()
		value, err := p.parseExpression(1)
		if err != nil {
			return nil, err
		}
		return &Assignment{Name: tok.Value, Value: value, Position: tok.Position}, nil
	case OPEN_PAREN:
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return &FunctionCall{Name: tok.Value, Args: args, Position: tok.Position}, nil
	}

	return &Identifier{Name: tok.Value, Position: tok.Position}, nil
}

// parseCallArgs parses a parenthesized, comma-delimited argument list.
// Commas are consumed whenever present, so a trailing comma is tolerated.
func (p *Parser) parseCallArgs() ([]Expr, error) {
	if err := p.expect(OPEN_PAREN, "Expected to find opening parenthesis `(`"); err != nil {
		return nil, err
	}

	var args []Expr
	for p.peek().Kind != CLOSE_PAREN {
		arg, err := p.parseExpression(1)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.peek().Kind == COMMA {
			p.advance()
		}
	}

	if err := p.expect(CLOSE_PAREN, "Expected to find closing parenthesis `)`"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseGrouping parses a parenthesized expression and returns the inner
// node directly; no Grouping wrapper is constructed here.
func (p *Parser) parseGrouping() (Expr, error) {
	p.advance() // "("
	expr, err := p.parseExpression(1)
	if err != nil {
		return nil, err
	}
	if err := p.expect(CLOSE_PAREN, "Expected to find closing parenthesis `)`"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseUnary consumes a prefix operator and its operand, recursing at the
// operator's own prefix binding power.
func (p *Parser) parseUnary() (Expr, error) {
	op := p.advance()
	operand, err := p.parseExpression(precedenceOf(op.Kind).prefix)
	if err != nil {
		return nil, err
	}
	return &UnaryOp{Op: op.Value, Rhs: operand, Position: op.Position}, nil
}

// parseBinary consumes an infix operator and its right operand, recursing at
// the operator's infix binding power. The node sits at the left operand's
// position.
func (p *Parser) parseBinary(lhs Expr) (Expr, error) {
	op := p.advance()
	rhs, err := p.parseExpression(precedenceOf(op.Kind).infix)
	if err != nil {
		return nil, err
	}
	return &BinOp{Op: op.Value, Lhs: lhs, Rhs: rhs, Position: lhs.Pos()}, nil
}
