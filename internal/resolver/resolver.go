// Package resolver implements the static resolution pass described in
// spec.md §4.3. It walks the parsed AST once, between parsing and
// evaluation, and records how many enclosing scopes separate each variable
// reference from the scope that declares it. The evaluator consumes that
// side-table instead of walking the environment chain by name at runtime.
package resolver

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/token"
)

// functionKind tracks what kind of function body is currently being
// resolved, so `return` and `this` can be validated contextually.
type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
	kindMethod
	kindInitializer
)

// classKind tracks whether a class body is currently being resolved, so
// `this` can be validated contextually.
type classKind int

const (
	classNone classKind = iota
	classClass
)

// binding records whether a declared local has been read, so an unused
// variable can be flagged once its enclosing scope closes.
type binding struct {
	token token.Token
	ready bool // declared and defined
	used  bool
}

// Resolver performs the static pass. Locals maps an expression node
// (identified by its own interface value, which in Go compares by pointer
// identity when the dynamic type is a pointer) to the number of scopes
// between its use and its declaring scope. This avoids threading a separate
// node-ID allocator through the parser purely to support the side-table.
type Resolver struct {
	report *diagnostics.Report
	locals map[ast.Expr]int

	scopes          []map[string]*binding
	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver that reports static errors into report.
func New(report *diagnostics.Report) *Resolver {
	return &Resolver{
		report: report,
		locals: make(map[ast.Expr]int),
	}
}

// Locals returns the scope-distance side-table built by Resolve.
func (r *Resolver) Locals() map[ast.Expr]int { return r.locals }

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.FunctionStmt:
		r.declare(s.Name())
		r.define(s.Name())
		r.resolveFunction(s.Declaration, kindFunction)
	case *ast.ClassStmt:
		r.resolveClass(s)
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.ReturnStmt:
		if r.currentFunction == kindNone {
			r.report.Errorf(s.Keyword.Line, s.Keyword.Lexeme, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == kindInitializer {
				r.report.Errorf(s.Keyword.Line, s.Keyword.Lexeme, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = &binding{ready: true, used: true}

	for _, method := range s.Methods {
		kind := kindMethod
		if method.Name != nil && method.Name.Lexeme == "init" {
			kind = kindInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
}

func (r *Resolver) resolveFunction(fn *ast.FunctionExpr, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if b, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !b.ready {
				r.report.Errorf(e.Name.Line, e.Name.Lexeme, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)
	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)
	case *ast.LiteralExpr:
		// nothing to resolve
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Object)
	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.report.Errorf(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.FunctionExpr:
		r.resolveFunction(e, kindFunction)
	default:
		panic("resolver: unhandled expression type")
	}
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name.Lexeme]; ok {
			b.used = true
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: treated as global, resolved at call time.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*binding))
}

func (r *Resolver) endScope() {
	scope := r.scopes[len(r.scopes)-1]
	for name, b := range scope {
		if name != "this" && !b.used {
			r.report.Warnf(b.token.Line, b.token.Lexeme, "Local variable '%s' is never used.", name)
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report.Errorf(name.Line, name.Lexeme, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = &binding{token: name, ready: false}
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme].ready = true
}
