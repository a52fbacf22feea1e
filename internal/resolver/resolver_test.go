package resolver

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

func resolve(t *testing.T, source string) (*diagnostics.Report, map[ast.Expr]int) {
	t.Helper()
	report := diagnostics.NewReport()
	tokens := lexer.New(source, report).ScanTokens()
	statements := parser.New(tokens, report).Parse()
	if report.HadError() {
		t.Fatalf("unexpected parse error(s): %v", report.All())
	}

	r := New(report)
	r.Resolve(statements)
	return report, r.Locals()
}

func TestResolveReadBeforeDefineIsAnError(t *testing.T) {
	report, _ := resolve(t, "var a = 1; { var a = a; }")
	if !report.HadError() {
		t.Fatal("expected a read-in-own-initializer error")
	}
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	report, _ := resolve(t, "return 1;")
	if !report.HadError() {
		t.Fatal("expected a top-level-return error")
	}
}

func TestResolveReturnValueFromInitializerIsAnError(t *testing.T) {
	report, _ := resolve(t, `class C { init() { return 1; } }`)
	if !report.HadError() {
		t.Fatal("expected an initializer-return-value error")
	}
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	report, _ := resolve(t, "print this;")
	if !report.HadError() {
		t.Fatal("expected a this-outside-class error")
	}
}

func TestResolveLocalVariableDistance(t *testing.T) {
	_, locals := resolve(t, `
{
  var a = 1;
  {
    print a;
  }
}`)
	if len(locals) != 1 {
		t.Fatalf("got %d resolved locals, want 1", len(locals))
	}
	for _, distance := range locals {
		if distance != 1 {
			t.Errorf("got distance %d, want 1 (one enclosing block between use and declaration)", distance)
		}
	}
}

func TestResolveUnusedLocalIsAWarningNotAnError(t *testing.T) {
	report, _ := resolve(t, "{ var unused = 1; }")
	if report.HadError() {
		t.Fatal("unused variable must not be a hard error")
	}
	found := false
	for _, d := range report.All() {
		if d.Kind == diagnostics.KindWarning {
			found = true
		}
	}
	if !found {
		t.Error("expected an unused-variable warning")
	}
}

func TestResolveGlobalIsNotRecordedAsLocal(t *testing.T) {
	_, locals := resolve(t, "var a = 1; print a;")
	if len(locals) != 0 {
		t.Errorf("got %d locals, want 0 (globals resolve at call time)", len(locals))
	}
}
