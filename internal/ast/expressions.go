package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/internal/token"
)

// BinaryExpr is a binary operation, e.g. `a + b`, `x < y`.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *BinaryExpr) exprNode()             {}
func (e *BinaryExpr) TokenLiteral() string  { return e.Operator.Lexeme }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left.String(), e.Right.String())
}

// LogicalExpr is a short-circuiting `and`/`or` expression.
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *LogicalExpr) exprNode()            {}
func (e *LogicalExpr) TokenLiteral() string { return e.Operator.Lexeme }
func (e *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left.String(), e.Right.String())
}

// UnaryExpr is a prefix operation, e.g. `!x`, `-n`.
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func (e *UnaryExpr) exprNode()            {}
func (e *UnaryExpr) TokenLiteral() string { return e.Operator.Lexeme }
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Operator.Lexeme, e.Right.String())
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) exprNode()            {}
func (e *GroupingExpr) TokenLiteral() string { return "(" }
func (e *GroupingExpr) String() string       { return fmt.Sprintf("(group %s)", e.Inner.String()) }

// LiteralExpr is a constant value baked into the source: a number, string,
// boolean, or nil.
type LiteralExpr struct {
	// Token is the literal's originating token, kept so the printer and
	// diagnostics can report the exact source lexeme.
	Token token.Token
	Value any // nil, bool, float64, or string
}

func (e *LiteralExpr) exprNode()            {}
func (e *LiteralExpr) TokenLiteral() string { return e.Token.Lexeme }
func (e *LiteralExpr) String() string {
	if e.Value == nil {
		return "nil"
	}
	if s, ok := e.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", e.Value)
}

// VariableExpr reads a variable by name.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) exprNode()            {}
func (e *VariableExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *VariableExpr) String() string       { return e.Name.Lexeme }

// AssignExpr assigns a new value to an existing variable.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) exprNode()            {}
func (e *AssignExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *AssignExpr) String() string {
	return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, e.Value.String())
}

// CallExpr invokes a callee with a list of arguments.
type CallExpr struct {
	Callee Expr
	// Paren is the closing ')' token, used to anchor call-site runtime errors.
	Paren     token.Token
	Arguments []Expr
}

func (e *CallExpr) exprNode()            {}
func (e *CallExpr) TokenLiteral() string { return e.Paren.Lexeme }
func (e *CallExpr) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("(call %s %s)", e.Callee.String(), strings.Join(args, " "))
}

// GetExpr reads a property or method off an instance.
type GetExpr struct {
	Object Expr
	Name   token.Token
}

func (e *GetExpr) exprNode()            {}
func (e *GetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *GetExpr) String() string       { return fmt.Sprintf("(. %s %s)", e.Object.String(), e.Name.Lexeme) }

// SetExpr writes a property on an instance.
type SetExpr struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *SetExpr) exprNode()            {}
func (e *SetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *SetExpr) String() string {
	return fmt.Sprintf("(set %s %s %s)", e.Object.String(), e.Name.Lexeme, e.Value.String())
}

// ThisExpr is a `this` reference inside a method body.
type ThisExpr struct {
	Keyword token.Token
}

func (e *ThisExpr) exprNode()            {}
func (e *ThisExpr) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *ThisExpr) String() string       { return "this" }

// FunctionExpr is a function literal: `fun (params) { body }`. Name is nil
// for an anonymous (expression-position) lambda, and set to the declaring
// token when this node is wrapped by a FunctionStmt or method declaration
// (spec.md §3 invariant b).
type FunctionExpr struct {
	Keyword token.Token
	Name    *token.Token
	Params  []token.Token
	Body    []Stmt
}

func (e *FunctionExpr) exprNode()            {}
func (e *FunctionExpr) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *FunctionExpr) String() string {
	var out bytes.Buffer
	out.WriteString("fun")
	if e.Name != nil {
		out.WriteString(" " + e.Name.Lexeme)
	}
	out.WriteString("(")
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.Lexeme
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") <block>")
	return out.String()
}

// IsAnonymous reports whether this function literal appears in expression
// position (no declared name).
func (e *FunctionExpr) IsAnonymous() bool { return e.Name == nil }
