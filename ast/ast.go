// Package ast defines the golox abstract syntax tree: a closed set of
// expression and statement node types.
//
// The teacher's parser/node.go models the AST with an open NodeVisitor
// interface — one VisitXxxNode method per concrete node, implemented by
// every walker. spec.md's REDESIGN FLAGS call that out directly: a
// systems-language rewrite should prefer tagged sum types and exhaustive
// pattern matching, since exhaustiveness catches missing-case bugs at
// compile time. Here Expr and Stmt are marker interfaces with unexported
// methods, so only the node types declared in this file can implement them,
// and every consumer (interp, astprinter) dispatches with a type switch
// instead of a visitor method set.
package ast

import "github.com/goloxlang/golox/lexer"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Literal is a constant value appearing directly in source: nil, a bool, a
// number, or a string.
type Literal struct {
	Value any
}

// Grouping is a parenthesized expression: "(" expression ")".
type Grouping struct {
	Inner Expr
}

// Unary is a prefix operator applied to a single operand: "!" or "-".
type Unary struct {
	Op    lexer.Token
	Right Expr
}

// Binary is an infix arithmetic/comparison/equality operator.
type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Logical is "and"/"or". It is a distinct node from Binary because these
// operators short-circuit: the right operand is only evaluated when the
// left operand's truthiness doesn't already decide the result.
type Logical struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

// Assign stores a new value into an existing binding and evaluates to that
// value.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Call invokes a callable with zero or more evaluated arguments. Paren is
// the closing ")" token, kept for error reporting (spec.md §3).
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}

// ExpressionStmt evaluates an expression for its side effects, discarding
// the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its stringified form
// followed by a newline.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a new binding, optionally initialized. A nil Initializer
// means the declaration had no "= expression" clause.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt groups statements under a new child environment.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then when Condition is truthy, otherwise Else (which may
// be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt repeatedly executes Body while Condition is truthy. `for` loops
// are desugared into this plus a wrapping block at parse time — there is no
// dedicated For node (spec.md §4.2).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named, user-defined callable.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt unwinds out of the nearest enclosing function call, carrying
// Value (nil if the return had no expression).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
