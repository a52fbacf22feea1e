package interp

import "github.com/cwbudde/go-lox/internal/token"

// Class is a Lox class value: a name and its own methods, callable as a
// constructor. This dialect has no inheritance (see internal/ast.ClassStmt),
// so method lookup never walks a superclass chain.
type Class struct {
	Name    string
	Methods map[string]*Function
}

// NewClass creates a Class from its method table.
func NewClass(name string, methods map[string]*Function) *Class {
	return &Class{Name: name, Methods: methods}
}

// FindMethod looks up a method by name, or returns nil if this class
// declares no such method.
func (c *Class) FindMethod(name string) *Function {
	return c.Methods[name]
}

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class declares an `init`
// method, runs it bound to the new instance.
func (c *Class) Call(interp *Interpreter, arguments []any) (any, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string { return c.Name }

// Instance is a runtime object created from a Class: a mutable field map
// plus a back-pointer to its class for method lookup. Fields are created on
// first assignment via a `Set` expression.
type Instance struct {
	class  *Class
	fields map[string]any
}

// NewInstance creates a field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]any)}
}

// Get reads a field if present, else looks up and binds a method, else
// reports "Undefined property" (spec.md §4.4's `Get` rule).
func (i *Instance) Get(name token.Token) (any, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := i.class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."}
}

// Set assigns a field, creating it if this is the first write.
func (i *Instance) Set(name token.Token, value any) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string { return i.class.Name + " instance" }
