package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *diagnostics.Report) {
	t.Helper()
	report := diagnostics.NewReport()
	tokens := lexer.New(source, report).ScanTokens()
	statements := New(tokens, report).Parse()
	return statements, report
}

func TestParseExpressionPrecedence(t *testing.T) {
	statements, report := parse(t, "1 + 2 * 3;")
	if report.HadError() {
		t.Fatalf("unexpected parse error(s): %v", report.All())
	}
	if len(statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(statements))
	}

	got := statements[0].String()
	want := "(+ 1 (* 2 3));"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	statements, report := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if report.HadError() {
		t.Fatalf("unexpected parse error(s): %v", report.All())
	}

	block, ok := statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt (desugared for)", statements[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2 (init, while)", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement is %T, want *ast.VarStmt", block.Statements[0])
	}
	while, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.WhileStmt", block.Statements[1])
	}
	body, ok := while.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("while body is %T, want *ast.BlockStmt (body + increment)", while.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("got %d statements in while body, want 2 (body, increment)", len(body.Statements))
	}
}

func TestParseAssignmentTarget(t *testing.T) {
	statements, report := parse(t, "x = 1;")
	if report.HadError() {
		t.Fatalf("unexpected parse error(s): %v", report.All())
	}
	exprStmt := statements[0].(*ast.ExpressionStmt)
	if _, ok := exprStmt.Expression.(*ast.AssignExpr); !ok {
		t.Errorf("got %T, want *ast.AssignExpr", exprStmt.Expression)
	}
}

func TestParseInvalidAssignmentTargetReportsButRecovers(t *testing.T) {
	statements, report := parse(t, "1 + 2 = 3; print 1;")
	if !report.HadError() {
		t.Fatal("expected an invalid-assignment-target error")
	}
	if len(statements) != 2 {
		t.Fatalf("got %d statements, want 2 (parsing continues after the error)", len(statements))
	}
}

func TestParseClassWithMethods(t *testing.T) {
	statements, report := parse(t, `class Greeter {
  init(name) { this.name = name; }
  greet() { print this.name; }
}`)
	if report.HadError() {
		t.Fatalf("unexpected parse error(s): %v", report.All())
	}

	class, ok := statements[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", statements[0])
	}
	if class.Name.Lexeme != "Greeter" {
		t.Errorf("got class name %q, want Greeter", class.Name.Lexeme)
	}
	if len(class.Methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(class.Methods))
	}
}

func TestParseMissingSemicolonReportsError(t *testing.T) {
	_, report := parse(t, "var x = 1")
	if !report.HadError() {
		t.Fatal("expected a missing-semicolon error")
	}
	msg := report.All()[0].String()
	if !strings.Contains(msg, "Expect ';'") {
		t.Errorf("got %q, want it to mention the missing semicolon", msg)
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	_, report := parse(t, "var; var y = 2;")
	if !report.HadError() {
		t.Fatal("expected at least one error")
	}
	// Exactly one diagnostic: the parser recovers at the next statement
	// boundary instead of cascading further errors from `var y = 2;`.
	errCount := 0
	for _, d := range report.All() {
		if d.Kind == diagnostics.KindError {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("got %d errors, want 1 (synchronize should suppress cascades): %v", errCount, report.All())
	}
}
