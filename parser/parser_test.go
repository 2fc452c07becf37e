package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goloxlang/golox/ast"
	"github.com/goloxlang/golox/lexer"
)

func scan(t *testing.T, src string) []lexer.Token {
	t.Helper()
	s := lexer.NewScanner(src)
	tokens := s.ScanTokens()
	assert.False(t, s.HasErrors(), "unexpected scan errors: %v", s.Errors)
	return tokens
}

func TestParseExpression_Literal(t *testing.T) {
	p := New(scan(t, "42"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)
	lit, isLit := expr.(*ast.Literal)
	assert.True(t, isLit)
	assert.Equal(t, 42.0, lit.Value)
}

func TestParseExpression_Precedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	p := New(scan(t, "1 + 2 * 3"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)

	top, isBinary := expr.(*ast.Binary)
	assert.True(t, isBinary)
	assert.Equal(t, lexer.PLUS, top.Op.Kind)

	left, isLeftLit := top.Left.(*ast.Literal)
	assert.True(t, isLeftLit)
	assert.Equal(t, 1.0, left.Value)

	right, isRightBinary := top.Right.(*ast.Binary)
	assert.True(t, isRightBinary)
	assert.Equal(t, lexer.STAR, right.Op.Kind)
}

func TestParseExpression_GroupingOverridesPrecedence(t *testing.T) {
	p := New(scan(t, "(1 + 2) * 3"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)

	top, isBinary := expr.(*ast.Binary)
	assert.True(t, isBinary)
	assert.Equal(t, lexer.STAR, top.Op.Kind)

	_, isGrouping := top.Left.(*ast.Grouping)
	assert.True(t, isGrouping)
}

func TestParseExpression_UnaryAndLogical(t *testing.T) {
	p := New(scan(t, "!true and -1 or nil"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)

	orExpr, isLogical := expr.(*ast.Logical)
	assert.True(t, isLogical)
	assert.Equal(t, lexer.OR, orExpr.Op.Kind)

	andExpr, isAnd := orExpr.Left.(*ast.Logical)
	assert.True(t, isAnd)
	assert.Equal(t, lexer.AND, andExpr.Op.Kind)

	_, isUnary := andExpr.Left.(*ast.Unary)
	assert.True(t, isUnary)
}

func TestParseExpression_Assignment(t *testing.T) {
	p := New(scan(t, "a = b = 3"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)

	outer, isAssign := expr.(*ast.Assign)
	assert.True(t, isAssign)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, isInnerAssign := outer.Value.(*ast.Assign)
	assert.True(t, isInnerAssign)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseExpression_InvalidAssignmentTargetReportsError(t *testing.T) {
	p := New(scan(t, "1 = 2"))
	_, ok := p.ParseExpression()
	assert.True(t, ok) // parsing still produces a value (the left side)
	assert.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0], "Invalid assignment target.")
}

func TestParseExpression_Call(t *testing.T) {
	p := New(scan(t, "foo(1, 2, 3)"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)

	call, isCall := expr.(*ast.Call)
	assert.True(t, isCall)
	assert.Len(t, call.Arguments, 3)

	callee, isVar := call.Callee.(*ast.Variable)
	assert.True(t, isVar)
	assert.Equal(t, "foo", callee.Name.Lexeme)
}

func TestParseExpression_ChainedCalls(t *testing.T) {
	p := New(scan(t, "makeAdder(1)(2)"))
	expr, ok := p.ParseExpression()
	assert.True(t, ok)

	outer, isCall := expr.(*ast.Call)
	assert.True(t, isCall)
	_, innerIsCall := outer.Callee.(*ast.Call)
	assert.True(t, innerIsCall)
}

func TestParseExpression_MissingClosingParenReportsError(t *testing.T) {
	p := New(scan(t, "(1 + 2"))
	_, ok := p.ParseExpression()
	assert.False(t, ok)
	assert.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0], "Expect ')' after expression.")
}

func TestParseProgram_VarDeclAndPrint(t *testing.T) {
	p := New(scan(t, `var x = 1; print x;`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 2)

	varStmt, isVar := stmts[0].(*ast.VarStmt)
	assert.True(t, isVar)
	assert.Equal(t, "x", varStmt.Name.Lexeme)

	_, isPrint := stmts[1].(*ast.PrintStmt)
	assert.True(t, isPrint)
}

func TestParseProgram_Block(t *testing.T) {
	p := New(scan(t, `{ var x = 1; x; }`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)

	block, isBlock := stmts[0].(*ast.BlockStmt)
	assert.True(t, isBlock)
	assert.Len(t, block.Statements, 2)
}

func TestParseProgram_IfElse(t *testing.T) {
	p := New(scan(t, `if (true) print 1; else print 2;`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())

	ifStmt, isIf := stmts[0].(*ast.IfStmt)
	assert.True(t, isIf)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseProgram_While(t *testing.T) {
	p := New(scan(t, `while (x < 10) x = x + 1;`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())

	_, isWhile := stmts[0].(*ast.WhileStmt)
	assert.True(t, isWhile)
}

func TestParseProgram_ForDesugarsToWhile(t *testing.T) {
	p := New(scan(t, `for (var i = 0; i < 10; i = i + 1) print i;`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)

	outerBlock, isBlock := stmts[0].(*ast.BlockStmt)
	assert.True(t, isBlock)
	assert.Len(t, outerBlock.Statements, 2)

	_, isVarInit := outerBlock.Statements[0].(*ast.VarStmt)
	assert.True(t, isVarInit)

	whileStmt, isWhile := outerBlock.Statements[1].(*ast.WhileStmt)
	assert.True(t, isWhile)

	innerBlock, isInnerBlock := whileStmt.Body.(*ast.BlockStmt)
	assert.True(t, isInnerBlock)
	assert.Len(t, innerBlock.Statements, 2) // original body + increment
}

func TestParseProgram_ForWithOmittedClauses(t *testing.T) {
	p := New(scan(t, `for (;;) print "loop";`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())

	// no initializer -> no wrapping block, just the while statement
	whileStmt, isWhile := stmts[0].(*ast.WhileStmt)
	assert.True(t, isWhile)
	lit, isLit := whileStmt.Condition.(*ast.Literal)
	assert.True(t, isLit)
	assert.Equal(t, true, lit.Value)
}

func TestParseProgram_FunctionDeclaration(t *testing.T) {
	p := New(scan(t, `fun add(a, b) { return a + b; }`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())

	fn, isFn := stmts[0].(*ast.FunctionStmt)
	assert.True(t, isFn)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)

	ret, isReturn := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, isReturn)
	assert.NotNil(t, ret.Value)
}

func TestParseProgram_ReturnWithoutValue(t *testing.T) {
	p := New(scan(t, `fun noop() { return; }`))
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())

	fn := stmts[0].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParseProgram_MissingSemicolonReportsErrorAndContinues(t *testing.T) {
	p := New(scan(t, "var x = 1\nprint x;\nvar y = 2;"))
	stmts := p.ParseProgram()
	assert.True(t, p.HasErrors())
	// synchronize() should skip to the next statement boundary and keep
	// collecting further declarations rather than stopping at the first error.
	assert.GreaterOrEqual(t, len(stmts), 1)
}

func TestParseProgram_TooManyArgumentsReportsError(t *testing.T) {
	src := "foo("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	p := New(scan(t, src))
	p.ParseProgram()
	assert.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0], "Can't have more than 255 arguments.")
}
