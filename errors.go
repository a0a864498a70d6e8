// errors.go: syntax-error diagnostics.
//
// A Diagnostic is a position-annotated syntax error value. The parser
// collects every diagnostic it emits and returns the first one as its error
// result, so failure is observable programmatically; rendering is left to
// the caller (cmd/bauble prints to stderr). The Error text is the fixed
// four-line block:
//
//	Syntax Error
//	= [main.bl:1:8]
//	| )
//	       ^^-Expected to find closing parenthesis `)`
//
// with the caret aligned under the offending token's column, and the token
// line left empty when the offending token is itself an ERROR token (its
// value is the lexer's message, which the diagnostic text already carries).
package bauble

import (
	"fmt"
	"strings"
)

// Diagnostic is a single syntax error at a token.
type Diagnostic struct {
	Filename string
	Token    Token
	Message  string
}

func (d *Diagnostic) Error() string {
	text := d.Token.Value
	if d.Token.Kind == ERROR {
		text = ""
	}

	pad := d.Token.Position.Column - 1
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.WriteString("Syntax Error \n")
	fmt.Fprintf(&b, "= [%s:%d:%d]\n", d.Filename, d.Token.Position.Line, d.Token.Position.Column)
	fmt.Fprintf(&b, "| %s\n", text)
	fmt.Fprintf(&b, "%s^^-%s", strings.Repeat(" ", pad), d.Message)
	return b.String()
}
