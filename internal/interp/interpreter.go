// Package interp implements the tree-walking evaluator described in
// spec.md §4.4: it executes a resolved AST directly against a chain of
// Environments, with no intermediate bytecode.
package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/token"
	"golang.org/x/text/unicode/norm"
)

// Interpreter walks a resolved program. Globals is the root environment;
// Environment is the scope currently in effect; Locals is the
// scope-distance side-table the resolver produced.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int

	stdout io.Writer
}

// New creates an Interpreter writing `print` output to stdout, with its
// globals seeded per spec.md §4.4 ("Globals are seeded with the native
// function clock").
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{Globals: globals, environment: globals, stdout: stdout}
}

// Resolve merges a resolver pass's locals side-table into the
// interpreter's own. It merges rather than replaces because the REPL runs
// one resolver pass per line: a function closure created on an earlier
// line must keep resolving its body's variable references after a later
// line's pass installs its own (disjoint) side-table.
func (in *Interpreter) Resolve(locals map[ast.Expr]int) {
	if in.locals == nil {
		in.locals = make(map[ast.Expr]int, len(locals))
	}
	for expr, distance := range locals {
		in.locals[expr] = distance
	}
}

// Interpret executes a resolved program's top-level statements in order,
// stopping at the first RuntimeError (spec.md §7: runtime errors unwind to
// the top-level run() call).
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InterpretRepl runs one REPL line. A line that parses to exactly one
// expression-statement evaluates it and, when echoExpressions is set (the
// `.loxrc` default, per SPEC_FULL.md §2), prints its value; anything else is
// executed as an ordinary statement sequence.
func (in *Interpreter) InterpretRepl(statements []ast.Stmt, echoExpressions bool) error {
	if len(statements) == 1 {
		if exprStmt, ok := statements[0].(*ast.ExpressionStmt); ok {
			value, err := in.evaluate(exprStmt.Expression)
			if err != nil {
				return err
			}
			if echoExpressions {
				fmt.Fprintln(in.stdout, Stringify(value))
			}
			return nil
		}
	}
	return in.Interpret(statements)
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnclosed(in.environment))
	case *ast.ClassStmt:
		return in.executeClass(s)
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err
	case *ast.FunctionStmt:
		fn := NewFunction(s.Declaration, in.environment, false)
		in.environment.Define(s.Name().Lexeme, fn)
		return nil
	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return in.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil
	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, Stringify(value))
		return nil
	case *ast.ReturnStmt:
		var value any
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}
	case *ast.VarStmt:
		var value any
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// executeClass binds name to nil first so method bodies may reference the
// class by name (self-reference), builds each method closing over the
// current environment, then rebinds the name to the finished Class value
// (spec.md §4.4).
func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	in.environment.Define(s.Name.Lexeme, nil)

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		isInitializer := method.Name != nil && method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = NewFunction(method, in.environment, isInitializer)
	}

	class := NewClass(s.Name.Lexeme, methods)
	return in.environment.Assign(s.Name, class)
}

// executeBlock runs statements in env, restoring the interpreter's previous
// environment on the way out (including on an unwinding return or error).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil
	case *ast.GroupingExpr:
		return in.evaluate(e.Inner)
	case *ast.UnaryExpr:
		return in.evaluateUnary(e)
	case *ast.BinaryExpr:
		return in.evaluateBinary(e)
	case *ast.LogicalExpr:
		return in.evaluateLogical(e)
	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)
	case *ast.AssignExpr:
		return in.evaluateAssign(e)
	case *ast.CallExpr:
		return in.evaluateCall(e)
	case *ast.GetExpr:
		return in.evaluateGet(e)
	case *ast.SetExpr:
		return in.evaluateSet(e)
	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.FunctionExpr:
		fn := NewFunction(e, in.environment, false)
		if e.Name != nil {
			in.environment.Define(e.Name.Lexeme, fn)
		}
		return fn, nil
	default:
		return nil, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (any, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) evaluateAssign(e *ast.AssignExpr) (any, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := in.locals[e]; ok {
		in.environment.AssignAt(distance, e.Name, value)
		return value, nil
	}
	if err := in.Globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evaluateLogical(e *ast.LogicalExpr) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else if !IsTruthy(left) {
		return left, nil
	}

	return in.evaluate(e.Right)
}

func (in *Interpreter) evaluateUnary(e *ast.UnaryExpr) (any, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG:
		return !IsTruthy(right), nil
	case token.MINUS:
		n, err := requireNumber(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	default:
		return nil, fmt.Errorf("interp: unhandled unary operator %s", e.Operator.Type)
	}
}

func (in *Interpreter) evaluateBinary(e *ast.BinaryExpr) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil
	case token.PLUS:
		return evaluateAdd(e.Operator, left, right)
	case token.MINUS:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.SLASH:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, &RuntimeError{Token: e.Operator, Message: "Division by zero."}
		}
		return l / r, nil
	case token.STAR:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.GREATER:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.LESS:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, err := requireNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	default:
		return nil, fmt.Errorf("interp: unhandled binary operator %s", e.Operator.Type)
	}
}

// evaluateAdd implements `+`'s two overloads: numeric addition and string
// concatenation, the latter NFC-normalized so visually-identical literals
// written with different Unicode compositions concatenate identically.
func evaluateAdd(operator token.Token, left, right any) (any, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return norm.NFC.String(l + r), nil
		}
	}
	return nil, &RuntimeError{Token: operator, Message: "Operands must be two numbers or two strings."}
}

func requireNumber(operator token.Token, operand any) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, &RuntimeError{Token: operator, Message: "Operand must be a number."}
}

func requireNumbers(operator token.Token, left, right any) (float64, float64, error) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	if !ok1 || !ok2 {
		return 0, 0, &RuntimeError{Token: operator, Message: "Operands must be numbers."}
	}
	return l, r, nil
}

func (in *Interpreter) evaluateCall(e *ast.CallExpr) (any, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]any, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		arguments[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}

	if len(arguments) != callable.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(arguments)),
		}
	}

	return callable.Call(in, arguments)
}

func (in *Interpreter) evaluateGet(e *ast.GetExpr) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Message: "Only instances have properties."}
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) evaluateSet(e *ast.SetExpr) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: e.Name, Message: "Only instances have fields."}
	}

	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(e.Name, value)
	return value, nil
}
