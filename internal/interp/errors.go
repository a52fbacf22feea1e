package interp

import "github.com/cwbudde/go-lox/internal/token"

// RuntimeError is a Lox-level runtime fault: a type mismatch, an undefined
// variable, a non-callable callee, and so on. It unwinds the evaluator up
// to the top-level Interpret (or InterpretRepl) call, where the host reports it and moves on
// (spec.md §7: runtime errors don't terminate a REPL session).
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// returnSignal carries a `return` statement's value back up to the
// enclosing Function.Call. It is not an error: spec.md §4.4 and §7 are
// explicit that this is a non-exceptional control-flow unwind, so it
// implements the error interface only so it can travel the same Go `error`
// return channel as a RuntimeError without being confused for one.
type returnSignal struct {
	Value any
}

func (r *returnSignal) Error() string { return "return" }

// asReturn reports whether err is a returnSignal, unwrapping it for the
// caller.
func asReturn(err error) (*returnSignal, bool) {
	r, ok := err.(*returnSignal)
	return r, ok
}
