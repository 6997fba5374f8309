package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilang/ast"
	"minilang/diag"
	"minilang/types"
)

var ignorePosition = cmpopts.IgnoreFields(ast.IntLit{}, "Position")

func parseOne(t *testing.T, src string) ast.Stmt {
	t.Helper()
	p, err := New(src)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prog.Items, 1)
	return prog.Items[0]
}

func TestParseArithmeticExpressionShape(t *testing.T) {
	stmt := parseOne(t, "int x = 1 + 2 * 3;")
	decl, ok := stmt.(*ast.Decl)
	require.True(t, ok)
	assert.Equal(t, types.Int, decl.VarType)
	assert.Equal(t, "x", decl.Name)

	arith, ok := decl.Init.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Add, arith.Op)

	left, ok := arith.Left.(*ast.IntLit)
	require.True(t, ok)
	if diff := cmp.Diff(&ast.IntLit{Value: 1}, left, ignorePosition); diff != "" {
		t.Errorf("left operand mismatch (-want +got):\n%s", diff)
	}

	right, ok := arith.Right.(*ast.Arith)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, right.Op)
}

func TestParseLogicalPrecedenceBindsLooserThanEquality(t *testing.T) {
	stmt := parseOne(t, "boolean b = 1 == 1 && 2 == 2;")
	decl := stmt.(*ast.Decl)
	and, ok := decl.Init.(*ast.LogAnd)
	require.True(t, ok)
	_, ok = and.Left.(*ast.Eq)
	assert.True(t, ok)
	_, ok = and.Right.(*ast.Eq)
	assert.True(t, ok)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	p, err := New("int x; int y; x = y = 3;")
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prog.Items, 3)

	exprStmt := prog.Items[2].(*ast.ExprStmt)
	outer, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Target)

	inner, ok := outer.RHS.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "y", inner.Target)
}

func TestRedeclarationInSameScopeIsSymbolError(t *testing.T) {
	p, err := New("int x; int x;")
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.SymbolError, de.Category)
}

func TestShadowingInNestedBlockIsAllowed(t *testing.T) {
	p, err := New("int x; { int x; }")
	require.NoError(t, err)
	_, err = p.Parse()
	assert.NoError(t, err)
}

func TestUndefinedVariableIsSymbolError(t *testing.T) {
	p, err := New("int x = y;")
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.SymbolError, de.Category)
}

func TestMismatchedDeclInitializerIsTypeError(t *testing.T) {
	p, err := New("boolean b = 1;")
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.TypeError, de.Category)
}

func TestIfConditionMustBeBoolean(t *testing.T) {
	p, err := New("if (1) { }")
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.TypeError, de.Category)
}

func TestFunctionMustReturnOnEveryPath(t *testing.T) {
	p, err := New(`
function f(): int {
  if (true) {
    return 1;
  }
}`)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.SyntaxError, de.Category)
}

func TestFunctionCallArityChecked(t *testing.T) {
	p, err := New(`
function f(int a): int {
  return a;
}
int x = f(1, 2);
`)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.TypeError, de.Category)
}

func TestFeedPreservesStaticState(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)

	require.NoError(t, p.Feed("int x = 1;\n"))
	_, err = p.ParseItems()
	require.NoError(t, err)

	require.NoError(t, p.Feed("int x = 2;\n"))
	_, err = p.ParseItems()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.SymbolError, de.Category)
}
