// errors.go: diagnostic values and caret-snippet rendering.
//
// The parser records diagnostics as plain values instead of returning
// errors; nothing in the front end is fatal. This file holds the Diagnostic
// type and a renderer that turns one into a readable snippet with a caret
// pointing at the offending column:
//
//	PARSE ERROR at 2:7: expected next token to be =, got INT instead
//
//	   1 | let x = 5;
//	   2 | let y 10;
//	     |       ^
//	   3 | let z = 15;
//
// The snippet shows up to one line of context before and after, numbers the
// lines, and places the caret under the 1-based column. Output is plain text
// with no ANSI escapes; callers that want color apply it themselves.
package monkey

import (
	"fmt"
	"strings"
)

// Diagnostic is a recorded, non-fatal parse problem. Line is 1-based and
// Col is 0-based, as stamped on tokens by the lexer.
type Diagnostic struct {
	Msg  string
	Line int
	Col  int
}

func (d Diagnostic) String() string { return d.Msg }

// PrettyDiagnostic renders d against the source it was produced from.
// Out-of-range coordinates are clamped so rendering cannot fail on short or
// empty input.
func PrettyDiagnostic(src string, d Diagnostic) string {
	return prettySnippet(src, "PARSE ERROR", d.Line, d.Col+1, d.Msg)
}

// prettySnippet builds the header plus caret block. Coordinates are treated
// as 1-based and clamped to the source bounds.
func prettySnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
