// printer.go: verbose debug rendering of AST nodes.
//
// Repr and ReprStmt are the long-form counterparts of the nodes' String
// methods: every variant is named and its fields labeled, e.g.
//
//	BinOp[op: + lhs: 1 rhs: (2 * 3)]
//
// The switches cover both sums exhaustively, so a new variant shows up here
// as a missing case during review.
package bauble

import (
	"fmt"
	"strings"
)

// Repr renders an expression in its verbose debug form.
func Repr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return fmt.Sprintf("Literal[%s]", formatLiteral(n.Value))
	case *BinOp:
		return fmt.Sprintf("BinOp[op: %s lhs: %s rhs: %s]", n.Op, n.Lhs, n.Rhs)
	case *UnaryOp:
		return fmt.Sprintf("UnaryOp[op: %s rhs: %s]", n.Op, n.Rhs)
	case *Identifier:
		return fmt.Sprintf("Identifier[%s]", n.Name)
	case *Grouping:
		return fmt.Sprintf("Grouping[%s]", n.Expr)
	case *FunctionCall:
		return fmt.Sprintf("FunctionCall[name: %s args: %s]", n.Name, reprExprs(n.Args))
	case *Assignment:
		return fmt.Sprintf("Assignment[name: %s value: %s]", n.Name, n.Value)
	}
	return fmt.Sprintf("Unknown[%v]", e)
}

// ReprStmt renders a statement in its verbose debug form.
func ReprStmt(s Stmt) string {
	switch n := s.(type) {
	case *If:
		elseRepr := "none"
		if n.Else != nil {
			elseRepr = n.Else.String()
		}
		return fmt.Sprintf("If[condition: %s code: %s else: %s]", n.Condition, n.Code, elseRepr)
	case *Block:
		return fmt.Sprintf("Block[code: %s]", reprStmts(n.Code))
	case *For:
		return fmt.Sprintf("For[expr: %s code: %s]", n.Expr, reprStmts(n.Code))
	case *While:
		return fmt.Sprintf("While[expr: %s code: %s]", n.Expr, reprStmts(n.Code))
	case *Return:
		return fmt.Sprintf("Return[value: %s]", n.Value)
	case *Let:
		return fmt.Sprintf("Let[name: %s value: %s]", n.Name, n.Value)
	case *FunctionDef:
		return fmt.Sprintf("FunctionDef[name: %s params: %s body: %s]",
			n.Name, strings.Join(n.Params, ", "), n.Body)
	case *ExpressionStmt:
		return fmt.Sprintf("ExpressionStmt[%s]", n.Expr)
	}
	return fmt.Sprintf("Unknown[%v]", s)
}

func reprExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Repr(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func reprStmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = ReprStmt(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
