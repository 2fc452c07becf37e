// Package astprinter renders a golox expression as a Lisp-like
// parenthesized dump, the format spec.md §6 mandates for the `parse` CLI
// mode: compound nodes render as "(op child1 child2…)", atoms render as
// their literal/lexeme form.
//
// Grounded on teacher's print_visitor.go / main/print_visitor.go
// (PrintingVisitor), restructured around the type-switch dispatch ast.go
// establishes instead of the teacher's Visitor method set.
package astprinter

import (
	"fmt"
	"strings"

	"github.com/goloxlang/golox/ast"
	"github.com/goloxlang/golox/value"
)

// Print renders expr per spec.md §6's AST dump format.
func Print(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return printLiteral(e.Value)
	case *ast.Grouping:
		return parenthesize("group", e.Inner)
	case *ast.Unary:
		return parenthesize(e.Op.Lexeme, e.Right)
	case *ast.Binary:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *ast.Logical:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return parenthesize(e.Name.Lexeme, e.Value)
	case *ast.Call:
		return parenthesizeCall(e)
	default:
		panic(fmt.Sprintf("astprinter: unhandled expression node %T", expr))
	}
}

// printLiteral renders a literal atom: numbers and strings use the same
// stringification rule as runtime values, true/false/nil render literally.
func printLiteral(v any) string {
	if v == nil {
		return "nil"
	}
	return value.Stringify(v)
}

func parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

// parenthesizeCall renders a call as "(call callee arg1 arg2…)" — call
// expressions have no single operator lexeme, so "call" stands in for op.
func parenthesizeCall(e *ast.Call) string {
	var b strings.Builder
	b.WriteString("(call ")
	b.WriteString(Print(e.Callee))
	for _, arg := range e.Arguments {
		b.WriteByte(' ')
		b.WriteString(Print(arg))
	}
	b.WriteByte(')')
	return b.String()
}
