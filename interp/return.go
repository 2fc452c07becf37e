package interp

import (
	"github.com/goloxlang/golox/ast"
	"github.com/goloxlang/golox/value"
)

// returnSignal is panicked by a Return statement and recovered by the
// nearest enclosing Function.Call (or by Interpreter.Run for a return at
// the top level of the script). spec.md §5 calls this out directly: a
// return must unwind past whatever block/if/while frames are active
// between it and the call, while still letting each of those frames
// restore its environment on the way out (executeBlock's deferred restore
// handles that regardless of whether the stack is unwinding normally or
// via panic) — so a dedicated signal distinct from a RuntimeError is the
// natural fit, rather than threading a "did we return" bool through every
// Exec case.
type returnSignal struct {
	value value.Value
}

func (it *Interpreter) execReturnStmt(s *ast.ReturnStmt) error {
	var v value.Value
	if s.Value != nil {
		var err error
		v, err = it.Eval(s.Value)
		if err != nil {
			return err
		}
	}
	panic(returnSignal{value: v})
}
