// Package value implements runtime-typed values (spec §3's "Variable...
// cell holds a typed value"). An int is a wrapping 32-bit integer and a
// float is IEEE single precision, matching the original implementation's
// int32_t/float storage (original_source/include/script/detail/value_t.h).
package value

import (
	"fmt"

	"minilang/types"
)

type Value struct {
	vt    types.VT
	i     int32
	f     float32
	b     bool
}

func Int(v int32) Value     { return Value{vt: types.Int, i: v} }
func Float(v float32) Value { return Value{vt: types.Float, f: v} }
func Bool(v bool) Value     { return Value{vt: types.Bool, b: v} }

// Zero returns the type-appropriate zero value for a declaration with no
// initializer (spec §4.3): 0, 0.0, or false.
func Zero(vt types.VT) Value {
	switch vt {
	case types.Int:
		return Int(0)
	case types.Float:
		return Float(0)
	case types.Bool:
		return Bool(false)
	default:
		panic("value.Zero: not a primitive VT")
	}
}

func (v Value) Type() types.VT { return v.vt }

func (v Value) AsInt() int32 {
	if v.vt != types.Int {
		panic("value: AsInt on non-int value")
	}
	return v.i
}

func (v Value) AsFloat() float32 {
	if v.vt != types.Float {
		panic("value: AsFloat on non-float value")
	}
	return v.f
}

func (v Value) AsBool() bool {
	if v.vt != types.Bool {
		panic("value: AsBool on non-bool value")
	}
	return v.b
}

// ToFloat widens an Int value to Float; used for mixed-type arithmetic.
func (v Value) ToFloat() float32 {
	switch v.vt {
	case types.Int:
		return float32(v.i)
	case types.Float:
		return v.f
	default:
		panic("value: ToFloat on non-numeric value")
	}
}

// ConvertTo implements assignability (spec §4.3): Int truncates toward
// zero from Float, Float widens from Int, Bool only accepts Bool. The
// caller is expected to have already checked types.Assignable.
func (v Value) ConvertTo(target types.VT) Value {
	switch target {
	case types.Int:
		switch v.vt {
		case types.Int:
			return v
		case types.Float:
			return Int(int32(v.f))
		}
	case types.Float:
		switch v.vt {
		case types.Int:
			return Float(float32(v.i))
		case types.Float:
			return v
		}
	case types.Bool:
		if v.vt == types.Bool {
			return v
		}
	}
	panic(fmt.Sprintf("value: cannot convert %s to %s", v.vt, target))
}

// String renders a value the way println does.
func (v Value) String() string {
	switch v.vt {
	case types.Int:
		return fmt.Sprintf("%d", v.i)
	case types.Float:
		return formatFloat(v.f)
	case types.Bool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return "<error>"
	}
}

func formatFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	return s
}
