package interp

import "github.com/cwbudde/go-lox/internal/token"

// Environment is a lexically nested scope, grounded on the teacher's
// Environment struct shape (an outer pointer plus a flat value map). One is
// created on block entry, function call, and method binding, and discarded
// on scope exit unless captured by a Function closure.
type Environment struct {
	values map[string]any
	outer  *Environment
}

// NewEnvironment creates a top-level (global) environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]any)}
}

// NewEnclosed creates a child scope of outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{values: make(map[string]any), outer: outer}
}

// Define binds name to value in this scope, shadowing any outer binding.
// Re-declaring an existing name in the same scope silently overwrites it.
// The resolver rejects a duplicate declaration inside a block, so this only
// happens for globals (`var x = 1; var x = 2;` at top level).
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get reads name, walking outward through enclosing scopes.
func (e *Environment) Get(name token.Token) (any, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign writes to an existing binding of name, walking outward through
// enclosing scopes. Assigning to an undeclared name is a runtime error.
func (e *Environment) Assign(name token.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// ancestor walks up distance enclosing scopes, per the resolver's
// scope-distance side-table.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads name from the scope exactly distance levels out, bypassing
// the undefined-variable walk used by Get.
func (e *Environment) GetAt(distance int, name string) any {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name in the scope exactly distance levels out.
func (e *Environment) AssignAt(distance int, name token.Token, value any) {
	e.ancestor(distance).values[name.Lexeme] = value
}
