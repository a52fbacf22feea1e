// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the resolver and evaluator.
package ast

// Node is the base interface implemented by every AST node. It mirrors the
// teacher's ast.Node contract (TokenLiteral/String) so the printer and test
// helpers can treat expressions and statements uniformly.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expr is any node that produces a value. The resolver's locals side-table
// (see internal/resolver) is keyed on the Expr interface value itself: two
// distinct *VariableExpr (or *AssignExpr, *ThisExpr) nodes are never equal
// even if structurally identical, because Go compares interface values
// holding pointers by pointer identity. That gives the identity-keyed table
// the spec's Design Notes §9 calls for without a separate counter field.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}
