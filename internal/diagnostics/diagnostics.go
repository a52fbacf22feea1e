// Package diagnostics collects the static diagnostics produced while
// scanning, parsing, and resolving a program.
//
// The teacher's analyzer keeps error state in free-standing package
// variables; SPEC_FULL.md §2 ("Diagnostics") calls that out as a
// re-architecture target. Report is the explicit object the scanner,
// parser, and resolver are threaded through instead, so the host
// (cmd/lox) owns the final disposition rather than a global flag.
package diagnostics

import "fmt"

// Kind classifies a Diagnostic. Warnings never set HadError.
type Kind int

const (
	KindError Kind = iota
	KindWarning
)

// Diagnostic is one reported scan, parse, or resolve problem.
type Diagnostic struct {
	Kind Kind
	Line int
	// Where is the offending lexeme, or "" when the diagnostic is not
	// anchored to a specific token (e.g. "at the end").
	Where   string
	AtEnd   bool
	Message string
}

// String renders a Diagnostic using the format fixed by spec.md §6:
//
//	[line L] Error at 'TOKEN': MESSAGE
//	[line L] Error at the end: MESSAGE
func (d Diagnostic) String() string {
	label := "Error"
	if d.Kind == KindWarning {
		label = "Warning"
	}
	if d.AtEnd {
		return fmt.Sprintf("[line %d] %s at the end: %s", d.Line, label, d.Message)
	}
	if d.Where != "" {
		return fmt.Sprintf("[line %d] %s at '%s': %s", d.Line, label, d.Where, d.Message)
	}
	return fmt.Sprintf("[line %d] %s: %s", d.Line, label, d.Message)
}

// Report accumulates diagnostics across the scan/parse/resolve pipeline.
type Report struct {
	diagnostics []Diagnostic
	hadError    bool
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add records a diagnostic. Errors set HadError; warnings do not.
func (r *Report) Add(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	if d.Kind == KindError {
		r.hadError = true
	}
}

// Errorf records an error-kind diagnostic anchored to a line and lexeme.
func (r *Report) Errorf(line int, where string, format string, args ...any) {
	r.Add(Diagnostic{Kind: KindError, Line: line, Where: where, Message: fmt.Sprintf(format, args...)})
}

// ErrorAtEnd records an error-kind diagnostic anchored to end-of-input.
func (r *Report) ErrorAtEnd(line int, format string, args ...any) {
	r.Add(Diagnostic{Kind: KindError, Line: line, AtEnd: true, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-kind diagnostic.
func (r *Report) Warnf(line int, where string, format string, args ...any) {
	r.Add(Diagnostic{Kind: KindWarning, Line: line, Where: where, Message: fmt.Sprintf(format, args...)})
}

// HadError reports whether any error-kind diagnostic has been recorded.
func (r *Report) HadError() bool {
	return r.hadError
}

// All returns every diagnostic recorded so far, in report order.
func (r *Report) All() []Diagnostic {
	return r.diagnostics
}

// Reset clears the report so it can be reused. The REPL does not call it:
// it creates a fresh Report for each line instead.
func (r *Report) Reset() {
	r.diagnostics = nil
	r.hadError = false
}
