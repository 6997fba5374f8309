package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticPromotion(t *testing.T) {
	assert.Equal(t, Int, Arithmetic(Int, Int))
	assert.Equal(t, Float, Arithmetic(Int, Float))
	assert.Equal(t, Float, Arithmetic(Float, Int))
	assert.Equal(t, Float, Arithmetic(Float, Float))
	assert.Equal(t, Error, Arithmetic(Bool, Int))
	assert.Equal(t, Error, Arithmetic(Int, Bool))
}

func TestRelationalRequiresNumeric(t *testing.T) {
	assert.Equal(t, Bool, Relational(Int, Float))
	assert.Equal(t, Bool, Relational(Int, Int))
	assert.Equal(t, Error, Relational(Bool, Bool))
	assert.Equal(t, Error, Relational(Int, Bool))
}

func TestEqualityAllowsNumericOrBool(t *testing.T) {
	assert.Equal(t, Bool, Equality(Int, Int))
	assert.Equal(t, Bool, Equality(Int, Float))
	assert.Equal(t, Bool, Equality(Bool, Bool))
	assert.Equal(t, Error, Equality(Bool, Int))
}

func TestLogicalRequiresBothBool(t *testing.T) {
	assert.Equal(t, Bool, Logical(Bool, Bool))
	assert.Equal(t, Error, Logical(Bool, Int))
	assert.Equal(t, Error, Logical(Int, Int))
}

func TestModulusRequiresBothInt(t *testing.T) {
	assert.Equal(t, Int, Modulus(Int, Int))
	assert.Equal(t, Error, Modulus(Int, Float))
	assert.Equal(t, Error, Modulus(Float, Float))
}

func TestNegation(t *testing.T) {
	assert.Equal(t, Int, Negation(Int))
	assert.Equal(t, Float, Negation(Float))
	assert.Equal(t, Error, Negation(Bool))
}

func TestAssignable(t *testing.T) {
	assert.True(t, Assignable(Int, Int))
	assert.True(t, Assignable(Int, Float))
	assert.True(t, Assignable(Float, Int))
	assert.True(t, Assignable(Float, Float))
	assert.True(t, Assignable(Bool, Bool))
	assert.False(t, Assignable(Bool, Int))
	assert.False(t, Assignable(Int, Bool))
}

func TestVTString(t *testing.T) {
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "boolean", Bool.String())
	assert.Equal(t, "<error>", Error.String())
}
