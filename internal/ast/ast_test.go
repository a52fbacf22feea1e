package ast_test

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/token"
)

// TestPrintParsedPrograms checks that printing a parsed program produces
// non-empty output, with no panics, for programs covering the statement and
// expression kinds of the grammar. The printed form is not re-parsed.
func TestPrintParsedPrograms(t *testing.T) {
	sources := []string{
		`print 1 + 2 * 3;`,
		`var x = 1; x = x + 1;`,
		`if (true) print "yes"; else print "no";`,
		`for (var i = 0; i < 3; i = i + 1) print i;`,
		`fun add(a, b) { return a + b; }`,
		`class C { init() { this.x = 1; } m() { return this.x; } }`,
		`print (1 + 2) * 3;`,
	}

	for _, source := range sources {
		report := diagnostics.NewReport()
		tokens := lexer.New(source, report).ScanTokens()
		statements := parser.New(tokens, report).Parse()
		if report.HadError() {
			t.Fatalf("unexpected parse error(s) for %q: %v", source, report.All())
		}

		got := ast.Print(statements)
		if got == "" {
			t.Errorf("Print(%q) produced empty output", source)
		}
	}
}

func TestClassStmtHasNoSuperclassField(t *testing.T) {
	// Compile-time assertion that this dialect's ClassStmt is
	// superclass-free, matching the grammar in spec.md §4.2. The unkeyed
	// literal lists every field, so it stops compiling if a field is added.
	s := ast.ClassStmt{token.Token{}, nil}
	_ = s.Name
	_ = s.Methods
}
