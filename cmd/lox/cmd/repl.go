package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/mattn/go-isatty"
)

// runRepl implements spec.md §6's interactive mode: read one line, an empty
// line exits, everything else is scanned/parsed/resolved/evaluated against
// state that persists across lines (one Interpreter, one global
// Environment), with static-error flags reset between lines and runtime
// errors reported without ending the session.
func runRepl() {
	cfg := loadReplConfig()
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	if interactive {
		fmt.Printf("lox %s -- type an empty line to exit\n", Version)
	}

	in := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var history []string

	for {
		if interactive {
			fmt.Print(cfg.Prompt)
		}
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			return
		}

		history = appendHistory(history, line, cfg.HistoryLimit)
		runReplLine(line, in, cfg.EchoExpressions)
	}
}

// appendHistory records line and trims the front of history once it grows
// past limit, keeping only the most recent `limit` lines (`.loxrc`'s
// historyLimit). limit <= 0 means no retention at all.
func appendHistory(history []string, line string, limit int) []string {
	if limit <= 0 {
		return history
	}
	history = append(history, line)
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history
}

func runReplLine(line string, in *interp.Interpreter, echoExpressions bool) {
	report := diagnostics.NewReport()

	l := lexer.New(line, report)
	tokens := l.ScanTokens()

	p := parser.New(tokens, report)
	statements := p.Parse()

	if report.HadError() {
		printDiagnostics(report)
		return
	}

	res := resolver.New(report)
	res.Resolve(statements)
	printDiagnostics(report)
	if report.HadError() {
		return
	}

	in.Resolve(res.Locals())
	if err := in.InterpretRepl(statements, echoExpressions); err != nil {
		reportRuntimeError(err)
	}
}
