package bauble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticFormat(t *testing.T) {
	_, err := ParseExpr(")", "main.bl")
	require.Error(t, err)

	want := strings.Join([]string{
		"Syntax Error ",
		"= [main.bl:1:1]",
		"| )",
		"^^-Invalid Syntax: Expected expression, found )",
	}, "\n")
	require.Equal(t, want, err.Error())
}

func TestDiagnosticCaretAlignment(t *testing.T) {
	// The offending token here is EOF at 1:7; the caret sits under its
	// column.
	_, err := ParseExpr("(1 + 2", "main.bl")
	require.Error(t, err)

	want := strings.Join([]string{
		"Syntax Error ",
		"= [main.bl:1:7]",
		"| End of File",
		"      ^^-Expected to find closing parenthesis `)`",
	}, "\n")
	require.Equal(t, want, err.Error())
}

func TestDiagnosticErrorTokenLineIsEmpty(t *testing.T) {
	// When the offending token is itself an ERROR token, the token line is
	// left empty; its message already appears in the diagnostic text.
	_, err := ParseExpr(`"unclosed`, "main.bl")
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "Syntax Error ", lines[0])
	require.Equal(t, "= [main.bl:1:1]", lines[1])
	require.Equal(t, "| ", lines[2])
	require.Equal(t,
		"^^-Invalid Syntax: Expected expression, found Unterminated string literal, "+
			"expected to find closing quote, instead found EOF (End of File)",
		lines[3])
}

func TestDiagnosticMultiline(t *testing.T) {
	_, err := ParseExpr("(1 +\n  2", "main.bl")
	require.Error(t, err)

	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	require.Equal(t, 2, diag.Token.Position.Line)
	require.Contains(t, err.Error(), "= [main.bl:2:4]")
}
