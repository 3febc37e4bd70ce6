package parser

import (
	"testing"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	sc := scanner.New(src)
	p := New(sc.ScanTokens())
	stmts := p.Parse()
	require.Empty(t, p.Errors())
	return stmts
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts := parseSource(t, `1 + 2 * 3;`)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Print(exprStmt.Expression))
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	stmts := parseSource(t, `(1 + 2) * 3;`)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assert.Equal(t, "(* (group (+ 1 2)) 3)", ast.Print(exprStmt.Expression))
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parseSource(t, `var x = 1 + 1;`)
	require.Len(t, stmts, 1)

	varStmt := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	assert.Equal(t, "(+ 1 1)", ast.Print(varStmt.Initializer))
}

func TestParseIfElse(t *testing.T) {
	stmts := parseSource(t, `if (true) print 1; else print 2;`)
	require.Len(t, stmts, 1)

	ifStmt := stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)

	block := stmts[0].(*ast.BlockStmt)
	require.Len(t, block.Statements, 2)
	assert.IsType(t, &ast.VarStmt{}, block.Statements[0])
	assert.IsType(t, &ast.WhileStmt{}, block.Statements[1])
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parseSource(t, `fun add(a, b) { return a + b; }`)
	require.Len(t, stmts, 1)

	fn := stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
	assert.IsType(t, &ast.ReturnStmt{}, fn.Body[0])
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := parseSource(t, `class B {} class A < B { init() {} method() {} }`)
	require.Len(t, stmts, 2)

	classStmt := stmts[1].(*ast.ClassStmt)
	require.NotNil(t, classStmt.Superclass)
	assert.Equal(t, "B", classStmt.Superclass.Name.Lexeme)
	assert.Len(t, classStmt.Methods, 2)
}

func TestParseCallAndGetChain(t *testing.T) {
	stmts := parseSource(t, `a.b(1, 2).c;`)
	exprStmt := stmts[0].(*ast.ExpressionStmt)

	get := exprStmt.Expression.(*ast.GetExpr)
	assert.Equal(t, "c", get.Name.Lexeme)

	call := get.Object.(*ast.CallExpr)
	assert.Len(t, call.Arguments, 2)
}

func TestParseAssignmentToInvalidTargetIsAnError(t *testing.T) {
	sc := scanner.New(`1 + 2 = 3;`)
	p := New(sc.ScanTokens())
	p.Parse()
	assert.NotEmpty(t, p.Errors())
}

func TestParseInvalidExpressionRecordsErrorAndSynchronizes(t *testing.T) {
	sc := scanner.New(`1 + ; print 2;`)
	p := New(sc.ScanTokens())
	stmts := p.Parse()

	assert.NotEmpty(t, p.Errors())
	// synchronize should land exactly on the stray ";" and let the
	// parser recover the next statement instead of aborting the parse.
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.PrintStmt{}, stmts[0])
}
