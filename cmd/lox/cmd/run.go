package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	trace   bool
	dumpAST bool
)

func runScript(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stdout, "Usage: lox [script]")
		exitStatus = exitUsageError
		return nil
	}

	if len(args) == 0 {
		runRepl()
		return nil
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: can't read file %s: %v\n", path, err)
		exitStatus = exitUsageError
		return nil
	}

	exitStatus = runSource(string(source), interp.New(os.Stdout))
	return nil
}

// runSource lexes, parses, resolves, and (if nothing failed statically)
// evaluates source against in, returning the process exit code spec.md §6
// assigns to the outcome.
func runSource(source string, in *interp.Interpreter) int {
	report := diagnostics.NewReport()

	l := lexer.New(source, report)
	tokens := l.ScanTokens()

	p := parser.New(tokens, report)
	statements := p.Parse()

	if report.HadError() {
		printDiagnostics(report)
		return exitDataError
	}

	res := resolver.New(report)
	res.Resolve(statements)

	if report.HadError() {
		printDiagnostics(report)
		return exitDataError
	}
	printDiagnostics(report) // any remaining diagnostics here are warnings

	if dumpAST {
		fmt.Fprint(os.Stdout, ast.Print(statements))
		return exitOK
	}

	if trace {
		fmt.Fprintln(os.Stderr, "[trace] starting evaluation")
	}

	in.Resolve(res.Locals())
	if err := in.Interpret(statements); err != nil {
		reportRuntimeError(err)
		return exitSoftwareErr
	}

	return exitOK
}

func printDiagnostics(report *diagnostics.Report) {
	for _, d := range report.All() {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

func reportRuntimeError(err error) {
	if rerr, ok := err.(*interp.RuntimeError); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n[line %d]\n", rerr.Token.Lexeme, rerr.Message, rerr.Token.Line)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
