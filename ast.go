// ast.go: AST node model for Bauble.
//
// Expressions and statements are two closed sums: an interface with an
// unexported marker method, one struct per variant. Consumers (the printer
// here, an evaluator or checker elsewhere) switch over the variants, so
// adding one is a compile-time-visible event. Every node carries the source
// position it was parsed at, for diagnostics. Nodes are built bottom-up by
// the parser and never mutated afterwards.
//
// String renders the canonical parenthesized text form used by tests and the
// REPL; Repr in printer.go renders the verbose debug form.
package bauble

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is the closed set of expression nodes.
type Expr interface {
	Pos() Position
	String() string
	exprNode()
}

// Stmt is the closed set of statement nodes. The shapes are defined for
// downstream consumers, but no grammar rule currently produces them.
type Stmt interface {
	Pos() Position
	String() string
	stmtNode()
}

// None marks the value of a 'none' literal.
type None struct{}

func (None) String() string { return "none" }

// formatLiteral renders a literal value. Floats always keep a decimal point
// or exponent so a re-parse classifies them as FLOAT again.
func formatLiteral(v any) string {
	switch x := v.(type) {
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ----- expressions -----

// Literal is an integer, float, string, boolean, or none value.
type Literal struct {
	Value    any // int64, float64, string, bool, or None
	Position Position
}

func (e *Literal) Pos() Position  { return e.Position }
func (e *Literal) String() string { return formatLiteral(e.Value) }
func (e *Literal) exprNode()      {}

// BinOp is a binary operation with an infix operator and two operands.
type BinOp struct {
	Op       string
	Lhs      Expr
	Rhs      Expr
	Position Position
}

func (e *BinOp) Pos() Position  { return e.Position }
func (e *BinOp) String() string { return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Op, e.Rhs) }
func (e *BinOp) exprNode()      {}

// UnaryOp is a prefix operation with a single operand.
type UnaryOp struct {
	Op       string
	Rhs      Expr
	Position Position
}

func (e *UnaryOp) Pos() Position  { return e.Position }
func (e *UnaryOp) String() string { return fmt.Sprintf("(%s %s)", e.Op, e.Rhs) }
func (e *UnaryOp) exprNode()      {}

// Identifier is a bare name.
type Identifier struct {
	Name     string
	Position Position
}

func (e *Identifier) Pos() Position  { return e.Position }
func (e *Identifier) String() string { return e.Name }
func (e *Identifier) exprNode()      {}

// Grouping is a parenthesized expression. The grouping prefix handler
// returns the inner expression directly, so the parser never builds one;
// the variant exists for consumers that want an explicit wrapper.
type Grouping struct {
	Expr     Expr
	Position Position
}

func (e *Grouping) Pos() Position  { return e.Position }
func (e *Grouping) String() string { return fmt.Sprintf("(%s)", e.Expr) }
func (e *Grouping) exprNode()      {}

// FunctionCall is a named call with ordered arguments.
type FunctionCall struct {
	Name     string
	Args     []Expr
	Position Position
}

func (e *FunctionCall) Pos() Position { return e.Position }
func (e *FunctionCall) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}
func (e *FunctionCall) exprNode() {}

// Assignment assigns a value to a name. It is an expression and groups to
// the right: a = b = 5 assigns b first.
type Assignment struct {
	Name     string
	Value    Expr
	Position Position
}

func (e *Assignment) Pos() Position  { return e.Position }
func (e *Assignment) String() string { return fmt.Sprintf("%s = %s", e.Name, e.Value) }
func (e *Assignment) exprNode()      {}

// ----- statements -----

// If is a conditional with an optional else branch.
type If struct {
	Condition Expr
	Code      Stmt
	Else      Stmt // nil when absent
	Position  Position
}

func (s *If) Pos() Position { return s.Position }
func (s *If) String() string {
	if s.Else == nil {
		return fmt.Sprintf("if %s %s", s.Condition, s.Code)
	}
	return fmt.Sprintf("if %s %s else %s", s.Condition, s.Code, s.Else)
}
func (s *If) stmtNode() {}

// Block is a braced sequence of statements.
type Block struct {
	Code     []Stmt
	Position Position
}

func (s *Block) Pos() Position  { return s.Position }
func (s *Block) String() string { return fmt.Sprintf("{%s}", joinStmts(s.Code)) }
func (s *Block) stmtNode()      {}

// For is a for loop.
type For struct {
	Expr     Expr
	Code     []Stmt
	Position Position
}

func (s *For) Pos() Position  { return s.Position }
func (s *For) String() string { return fmt.Sprintf("for %s {%s}", s.Expr, joinStmts(s.Code)) }
func (s *For) stmtNode()      {}

// While is a while loop.
type While struct {
	Expr     Expr
	Code     []Stmt
	Position Position
}

func (s *While) Pos() Position  { return s.Position }
func (s *While) String() string { return fmt.Sprintf("while %s {%s}", s.Expr, joinStmts(s.Code)) }
func (s *While) stmtNode()      {}

// Return returns a value from a function.
type Return struct {
	Value    Expr
	Position Position
}

func (s *Return) Pos() Position  { return s.Position }
func (s *Return) String() string { return fmt.Sprintf("return %s", s.Value) }
func (s *Return) stmtNode()      {}

// Let declares a variable.
type Let struct {
	Name     string
	Value    Expr
	Position Position
}

func (s *Let) Pos() Position  { return s.Position }
func (s *Let) String() string { return fmt.Sprintf("let %s = %s", s.Name, s.Value) }
func (s *Let) stmtNode()      {}

// FunctionDef defines a named function.
type FunctionDef struct {
	Name     string
	Params   []string
	Body     Stmt
	Position Position
}

func (s *FunctionDef) Pos() Position { return s.Position }
func (s *FunctionDef) String() string {
	return fmt.Sprintf("fn %s(%s) %s", s.Name, strings.Join(s.Params, ", "), s.Body)
}
func (s *FunctionDef) stmtNode() {}

// ExpressionStmt is an expression in statement position.
type ExpressionStmt struct {
	Expr     Expr
	Position Position
}

func (s *ExpressionStmt) Pos() Position  { return s.Position }
func (s *ExpressionStmt) String() string { return s.Expr.String() }
func (s *ExpressionStmt) stmtNode()      {}

func joinStmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}
