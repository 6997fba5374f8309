package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minilang/types"
)

func TestZero(t *testing.T) {
	assert.Equal(t, int32(0), Zero(types.Int).AsInt())
	assert.Equal(t, float32(0), Zero(types.Float).AsFloat())
	assert.Equal(t, false, Zero(types.Bool).AsBool())
}

func TestConvertToTruncatesFloatToInt(t *testing.T) {
	v := Float(1.9).ConvertTo(types.Int)
	assert.Equal(t, types.Int, v.Type())
	assert.Equal(t, int32(1), v.AsInt())

	v = Float(-1.9).ConvertTo(types.Int)
	assert.Equal(t, int32(-1), v.AsInt())
}

func TestConvertToWidensIntToFloat(t *testing.T) {
	v := Int(3).ConvertTo(types.Float)
	assert.Equal(t, types.Float, v.Type())
	assert.Equal(t, float32(3), v.AsFloat())
}

func TestConvertToIsIdentityForMatchingTypes(t *testing.T) {
	assert.Equal(t, int32(5), Int(5).ConvertTo(types.Int).AsInt())
	assert.Equal(t, float32(5.5), Float(5.5).ConvertTo(types.Float).AsFloat())
	assert.Equal(t, true, Bool(true).ConvertTo(types.Bool).AsBool())
}

func TestConvertToBoolPanicsOnNonBool(t *testing.T) {
	assert.Panics(t, func() { Int(1).ConvertTo(types.Bool) })
}

func TestToFloatWidensInt(t *testing.T) {
	assert.Equal(t, float32(7), Int(7).ToFloat())
	assert.Equal(t, float32(7.5), Float(7.5).ToFloat())
}

func TestStringFormatting(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "3.5", Float(3.5).String())
}

func TestStringFormatsIEEESpecials(t *testing.T) {
	zero := float32(0)
	posInf := Value{vt: types.Float, f: float32(1) / zero}
	assert.Equal(t, "+Inf", posInf.String())
}

func TestAccessorsPanicOnWrongType(t *testing.T) {
	assert.Panics(t, func() { Float(1).AsInt() })
	assert.Panics(t, func() { Bool(true).AsFloat() })
	assert.Panics(t, func() { Int(1).AsBool() })
}
