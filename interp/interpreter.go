// Package interp implements the tree-walking evaluator: given an AST
// produced by package parser, it executes it against a chain of
// environment.Environment frames and produces the side effects spec.md
// §4.4 describes (stdout prints, a RuntimeError on the first failure).
//
// Grounded on teacher's eval/evaluator.go (Evaluator struct shape — Par/
// Scp/Builtins/Writer fields become Interpreter's Globals/env/Out; the
// CallFunction/RegisterFunction/CreateError method shapes carry over) and
// the teacher's eval_conditionals.go/eval_loops.go/eval_controls.go split,
// generalized to spec.md's smaller construct set: there is no struct,
// enum, switch, or collection-literal evaluation here, only the statements
// and expressions spec.md §4.2 names.
package interp

import (
	"fmt"
	"io"

	"github.com/goloxlang/golox/ast"
	"github.com/goloxlang/golox/environment"
	"github.com/goloxlang/golox/lexer"
	"github.com/goloxlang/golox/loxerror"
	"github.com/goloxlang/golox/value"
)

// Interpreter walks an AST against a single chain of environments. There
// is exactly one Interpreter per program run — Function (in callable.go)
// relies on this to capture its creator safely.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
}

// New creates an Interpreter writing `print` output to out, with the
// native builtins from builtins.go already registered in its globals.
func New(out io.Writer) *Interpreter {
	globals := environment.New()
	it := &Interpreter{Globals: globals, env: globals, Out: out}
	registerBuiltins(it)
	return it
}

// Run executes a full program (the `run` CLI mode). It stops at the first
// RuntimeError, matching spec.md §7's "unwinds to top" recovery rule —
// there is no per-statement error recovery at this layer. A `return`
// reached outside any function call unwinds all the way here: spec.md §4.4
// permits treating that as "exit the top-level script with no value", so
// Run recovers the signal and reports success rather than propagating the
// panic to the caller.
func (it *Interpreter) Run(stmts []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(returnSignal); ok {
				err = nil
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range stmts {
		if execErr := it.Exec(stmt); execErr != nil {
			return execErr
		}
	}
	return nil
}

// Eval evaluates a single expression (the `evaluate` CLI mode and the
// REPL's bare-expression echo).
func (it *Interpreter) Eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return it.Eval(e.Inner)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Logical:
		return it.evalLogical(e)
	case *ast.Variable:
		return it.evalVariable(e)
	case *ast.Assign:
		return it.evalAssign(e)
	case *ast.Call:
		return it.evalCall(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression node %T", expr))
	}
}

// Exec executes a single statement.
func (it *Interpreter) Exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.Eval(s.Expr)
		return err
	case *ast.PrintStmt:
		v, err := it.Eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Out, value.Stringify(v))
		return nil
	case *ast.VarStmt:
		return it.execVarStmt(s)
	case *ast.BlockStmt:
		return it.executeBlock(s.Statements, environment.NewChild(it.env))
	case *ast.IfStmt:
		return it.execIfStmt(s)
	case *ast.WhileStmt:
		return it.execWhileStmt(s)
	case *ast.FunctionStmt:
		fn := &Function{declaration: s, interpreter: it}
		it.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ReturnStmt:
		return it.execReturnStmt(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement node %T", stmt))
	}
}

func (it *Interpreter) execVarStmt(s *ast.VarStmt) error {
	var v value.Value
	if s.Initializer != nil {
		var err error
		v, err = it.Eval(s.Initializer)
		if err != nil {
			return err
		}
	}
	it.env.Define(s.Name.Lexeme, v)
	return nil
}

func (it *Interpreter) execIfStmt(s *ast.IfStmt) error {
	cond, err := it.Eval(s.Condition)
	if err != nil {
		return err
	}
	if value.IsTruthy(cond) {
		return it.Exec(s.Then)
	}
	if s.Else != nil {
		return it.Exec(s.Else)
	}
	return nil
}

func (it *Interpreter) execWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := it.Eval(s.Condition)
		if err != nil {
			return err
		}
		if !value.IsTruthy(cond) {
			return nil
		}
		if err := it.Exec(s.Body); err != nil {
			return err
		}
	}
}

// executeBlock runs stmts against env, restoring the interpreter's
// previous environment on every exit path — normal completion, a
// RuntimeError, or a return unwinding via panic (the deferred restore
// still runs during a panic's unwind). Grounded on spec.md §4.4's Block
// rule and §5's frame-cleanup-on-every-exit-path requirement.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := it.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case lexer.BANG:
		return !value.IsTruthy(right), nil
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, loxerror.NewRuntimeError(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %s", e.Op.Kind))
	}
}

func (it *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := it.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.PLUS:
		return evalAdd(left, right, e.Op.Line)
	case lexer.MINUS:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a - b })
	case lexer.STAR:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a * b })
	case lexer.SLASH:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a / b })
	case lexer.GREATER:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a > b })
	case lexer.GREATER_EQUAL:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a >= b })
	case lexer.LESS:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a < b })
	case lexer.LESS_EQUAL:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) value.Value { return a <= b })
	case lexer.EQUAL_EQUAL:
		return value.IsEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !value.IsEqual(left, right), nil
	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %s", e.Op.Kind))
	}
}

// evalAdd implements spec.md §4.4's `+` overload: numeric addition for two
// numbers, concatenation for two strings, a runtime error otherwise.
func evalAdd(left, right value.Value, line int) (value.Value, error) {
	if ln, ok := left.(float64); ok {
		if rn, ok := right.(float64); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
	}
	return nil, loxerror.NewRuntimeError(line, "Operands must be two numbers or two strings.")
}

// numericBinary requires both operands to be numbers, per spec.md §4.4's
// numeric operator rule, and applies fn if so.
func numericBinary(left, right value.Value, line int, fn func(a, b float64) value.Value) (value.Value, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, loxerror.NewRuntimeError(line, "Operands must be numbers.")
	}
	return fn(ln, rn), nil
}

func (it *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := it.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case lexer.OR:
		if value.IsTruthy(left) {
			return left, nil
		}
	case lexer.AND:
		if !value.IsTruthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("interp: unhandled logical operator %s", e.Op.Kind))
	}
	return it.Eval(e.Right)
}

func (it *Interpreter) evalVariable(e *ast.Variable) (value.Value, error) {
	v, ok := it.env.Get(e.Name.Lexeme)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) evalAssign(e *ast.Assign) (value.Value, error) {
	v, err := it.Eval(e.Value)
	if err != nil {
		return nil, err
	}
	if !it.env.Assign(e.Name.Lexeme, v) {
		return nil, loxerror.NewRuntimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := it.Eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := it.Eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, loxerror.NewRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(args)
}
