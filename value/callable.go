package value

import "fmt"

// Callable is anything golox can invoke with a call expression: a native
// builtin or a user-defined function. It intentionally does not take an
// *Interpreter parameter — package value sits below package interp in the
// import graph, so a Callable that needs to execute a function body (a
// user-defined Function) lives in interp and closes over the one
// Interpreter for the run at the point it's created instead of receiving
// one per call.
type Callable interface {
	Arity() int
	Call(args []Value) (Value, error)
	String() string
}

// Native wraps a Go function as a golox builtin. Grounded on teacher's
// objects/builtins.go registration-table shape (name, arity, callback),
// adapted to the Callable interface above.
type Native struct {
	Name    string
	NumArgs int
	Fn      func(args []Value) (Value, error)
}

func (n *Native) Arity() int { return n.NumArgs }

func (n *Native) Call(args []Value) (Value, error) {
	return n.Fn(args)
}

// String renders every native builtin as "<native fn>", matching spec.md
// §4.4 point 5 — native functions are not individually named in their
// stringified form, only user-defined ones are.
func (n *Native) String() string {
	return "<native fn>"
}

var _ fmt.Stringer = (*Native)(nil)
