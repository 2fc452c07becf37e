package interp

import (
	"fmt"

	"github.com/goloxlang/golox/ast"
	"github.com/goloxlang/golox/environment"
	"github.com/goloxlang/golox/value"
)

// Function is a user-defined golox callable. It lives in interp rather
// than value because calling it requires walking the AST — it closes over
// the single *Interpreter for this run at the point the `fun` declaration
// executes, rather than receiving one per call (see value.Callable's doc
// comment for why the interface itself carries no Interpreter parameter).
//
// Grounded on teacher's function/function.go (Name/Params/Body fields), but
// there is deliberately no captured defining environment here: per
// spec.md's non-goals, a golox function call creates a new environment
// enclosing globals, not the scope where the function was declared. Two
// functions of the same name declared in different blocks still see
// whichever is currently bound when called — there are no closures.
type Function struct {
	declaration *ast.FunctionStmt
	interpreter *Interpreter
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call binds args positionally into a new environment enclosing globals,
// executes the body, and returns whatever value a Return statement
// panicked with — or nil if the body fell through without one.
func (f *Function) Call(args []value.Value) (result value.Value, err error) {
	callEnv := environment.NewChild(f.interpreter.Globals)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				result = ret.value
				err = nil
				return
			}
			panic(r)
		}
	}()

	if execErr := f.interpreter.executeBlock(f.declaration.Body, callEnv); execErr != nil {
		return nil, execErr
	}
	return nil, nil
}

// String renders as "<fn NAME>", per spec.md §4.4's stringification rule.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

var _ value.Callable = (*Function)(nil)
