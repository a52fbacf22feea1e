package interp

import "time"

// defineGlobals seeds env with the native functions spec.md §5.3 requires.
func defineGlobals(env *Environment) {
	env.Define("clock", &native{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []any) (any, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})
}
