// errors_test.go
package monkey

import (
	"strings"
	"testing"
)

func TestPrettyDiagnostic(t *testing.T) {
	src := "let x = 5;\nlet y 10;\nlet z = 15;"
	d := Diagnostic{
		Msg:  "expected next token to be =, got INT instead",
		Line: 2,
		Col:  6,
	}

	out := PrettyDiagnostic(src, d)

	if !strings.HasPrefix(out, "PARSE ERROR at 2:7: expected next token to be =, got INT instead\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	for _, want := range []string{
		"   1 | let x = 5;\n",
		"   2 | let y 10;\n",
		"     |       ^\n",
		"   3 | let z = 15;\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrettyDiagnosticEndToEnd(t *testing.T) {
	src := "let y 10;"
	p := NewParser(NewLexer(src))
	p.ParseProgram()

	diags := p.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %v", diags)
	}
	out := PrettyDiagnostic(src, diags[0])
	if !strings.Contains(out, "   1 | let y 10;\n") {
		t.Fatalf("missing source line in:\n%s", out)
	}
	if !strings.Contains(out, "     |       ^\n") {
		t.Fatalf("caret misplaced in:\n%s", out)
	}
}

func TestPrettyDiagnosticClampsOutOfRange(t *testing.T) {
	out := PrettyDiagnostic("", Diagnostic{Msg: "boom", Line: 99, Col: 99})
	if !strings.Contains(out, "boom") {
		t.Fatalf("message lost:\n%s", out)
	}

	out = PrettyDiagnostic("x", Diagnostic{Msg: "boom", Line: 0, Col: -5})
	if !strings.HasPrefix(out, "PARSE ERROR at 1:1: boom") {
		t.Fatalf("coordinates not clamped:\n%s", out)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Msg: "no prefix parse function for fn", Line: 1, Col: 0}
	if d.String() != d.Msg {
		t.Fatalf("Diagnostic.String should be the bare message, got %q", d.String())
	}
}
