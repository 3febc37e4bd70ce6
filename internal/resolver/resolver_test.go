package resolver

import (
	"testing"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, src string) (*Resolver, []ast.Stmt) {
	t.Helper()
	sc := scanner.New(src)
	p := parser.New(sc.ScanTokens())
	stmts := p.Parse()
	require.Empty(t, p.Errors())

	r := New()
	r.Resolve(stmts)
	return r, stmts
}

func TestResolveLocalVariableDistance(t *testing.T) {
	r, stmts := resolveSource(t, `{ var a = 1; { var b = a; } }`)
	require.Empty(t, r.Errors())

	outerBlock := stmts[0].(*ast.BlockStmt)
	innerBlock := outerBlock.Statements[1].(*ast.BlockStmt)
	innerVar := innerBlock.Statements[0].(*ast.VarStmt)

	varExpr := innerVar.Initializer.(*ast.VariableExpr)
	assert.Equal(t, 1, r.Locals[varExpr.ID()])
}

func TestResolveGlobalIsLeftUnresolved(t *testing.T) {
	r, stmts := resolveSource(t, `var a = 1; print a;`)
	require.Empty(t, r.Errors())

	printStmt := stmts[1].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VariableExpr)

	_, ok := r.Locals[varExpr.ID()]
	assert.False(t, ok)
}

func TestResolveOwnInitializerIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `{ var a = a; }`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveDuplicateDeclarationInSameScopeIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `{ var a = 1; var a = 2; }`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `return 1;`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveReturnValueFromInitializerIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `class A { init() { return 1; } }`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `print this;`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveSuperWithoutSuperclassIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `class A { method() { super.method(); } }`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveClassInheritingFromItselfIsAnError(t *testing.T) {
	r, _ := resolveSource(t, `class A < A {}`)
	assert.NotEmpty(t, r.Errors())
}

func TestResolveValidClassWithSuperclassHasNoErrors(t *testing.T) {
	r, _ := resolveSource(t, `
		class Base { greet() { return "hi"; } }
		class Derived < Base { greet() { return super.greet(); } }
	`)
	assert.Empty(t, r.Errors())
}
