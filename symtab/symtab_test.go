package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilang/ast"
	"minilang/types"
)

func TestStaticScopesRedeclarationInSameScopeForbidden(t *testing.T) {
	s := NewStaticScopes()
	require.True(t, s.Insert("x", types.Int))
	assert.False(t, s.Insert("x", types.Float))
}

func TestStaticScopesShadowingPermitted(t *testing.T) {
	s := NewStaticScopes()
	require.True(t, s.Insert("x", types.Int))
	s.Push()
	assert.True(t, s.Insert("x", types.Float))

	vt, ok := s.Find("x")
	require.True(t, ok)
	assert.Equal(t, types.Float, vt)

	s.Pop()
	vt, ok = s.Find("x")
	require.True(t, ok)
	assert.Equal(t, types.Int, vt)
}

func TestStaticScopesFindMissing(t *testing.T) {
	s := NewStaticScopes()
	_, ok := s.Find("missing")
	assert.False(t, ok)
}

func TestFunctionsAddRejectsDuplicate(t *testing.T) {
	f := NewFunctions()
	decl := &ast.FuncDecl{Name: "f", ReturnType: types.Int}
	require.True(t, f.Add("f", decl))
	assert.False(t, f.Add("f", &ast.FuncDecl{Name: "f", ReturnType: types.Float}))
}

func TestFunctionsFindAndContains(t *testing.T) {
	f := NewFunctions()
	decl := &ast.FuncDecl{Name: "f", ReturnType: types.Bool}
	f.Add("f", decl)

	assert.True(t, f.Contains("f"))
	assert.False(t, f.Contains("g"))

	got, ok := f.Find("f")
	require.True(t, ok)
	assert.Same(t, decl, got)

	_, ok = f.Find("g")
	assert.False(t, ok)
}
