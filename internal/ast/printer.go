package ast

import "strings"

// Print renders a parsed program as a parenthesized, Lisp-like tree, in the
// spirit of the original implementation's AstPrinter. It is used by the
// root command's `--dump-ast` flag and by ast_test.go's printer test.
func Print(statements []Stmt) string {
	var b strings.Builder
	for _, s := range statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}
