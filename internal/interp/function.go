package interp

import "github.com/cwbudde/go-lox/internal/ast"

// Function is a user-defined Lox function or method: a declaration closed
// over the environment active at the point it was created. Any number of
// Function values may share the same closure (spec.md §4.4 "Ownership
// semantics").
type Function struct {
	declaration   *ast.FunctionExpr
	closure       *Environment
	isInitializer bool
}

// NewFunction creates a Function value closing over closure. isInitializer
// marks a class's `init` method, which always returns `this` regardless of
// its own `return` statements (spec.md §4.4).
func NewFunction(declaration *ast.FunctionExpr, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call implements the invocation protocol from spec.md §4.4: a fresh
// environment enclosing the closure, one binding per parameter, execute the
// body, and unwind on `return` (or fall off the end, yielding Nil) — except
// an initializer always yields `this` instead.
func (f *Function) Call(interp *Interpreter, arguments []any) (any, error) {
	env := NewEnclosed(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if ret, ok := asReturn(err); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a new Function whose closure is a fresh environment (parent
// = this function's closure) defining `this = instance`. This is the extra
// scope the resolver accounts for when resolving method bodies
// (spec.md §4.4 "Method binding").
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosed(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) String() string {
	if f.declaration.Name == nil {
		return "<anonymous fn>"
	}
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
