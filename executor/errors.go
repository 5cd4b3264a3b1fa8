package executor

import "fmt"

// EvalError is a runtime failure: undefined variable or function, a string
// where a number is required, a zero divisor, or an arity mismatch.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "eval error: " + e.Msg
}

func evalErrorf(format string, args ...any) *EvalError {
	return &EvalError{Msg: fmt.Sprintf(format, args...)}
}

// ImportError wraps any failure while loading a module: unreadable target,
// lex/parse/eval failure inside it, or an import cycle.
type ImportError struct {
	Module string
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %q: %s", e.Module, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }
