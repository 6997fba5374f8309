// Package types implements the value-type lattice (spec §3–§4.3): the
// three primitive VTs, the internal Error sentinel used only by
// inference helpers, and the promotion/assignability tables the parser
// consults while building AST nodes.
package types

// VT is a resolved value type. Every AST expression node carries one that
// is never Error; construction fails instead of producing an Error node.
type VT int

const (
	Error VT = iota
	Int
	Float
	Bool
)

func (t VT) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "boolean"
	default:
		return "<error>"
	}
}

// IsNumeric reports whether t is Int or Float.
func (t VT) IsNumeric() bool {
	return t == Int || t == Float
}

// Arithmetic is the promotion table for +, -, *, / (spec §4.3): Int op
// Int yields Int, any mix with Float yields Float. Returns Error if
// either operand isn't numeric.
func Arithmetic(lhs, rhs VT) VT {
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return Error
	}
	if lhs == Int && rhs == Int {
		return Int
	}
	return Float
}

// Relational returns Bool when both operands are numeric (any mix of Int
// and Float), else Error. Used for <, >.
func Relational(lhs, rhs VT) VT {
	if lhs.IsNumeric() && rhs.IsNumeric() {
		return Bool
	}
	return Error
}

// Equality returns Bool when both operands are numeric, or both are Bool.
// Used for ==, !=.
func Equality(lhs, rhs VT) VT {
	if lhs.IsNumeric() && rhs.IsNumeric() {
		return Bool
	}
	if lhs == Bool && rhs == Bool {
		return Bool
	}
	return Error
}

// Logical returns Bool only when both operands are Bool. Used for &&, ||.
func Logical(lhs, rhs VT) VT {
	if lhs == Bool && rhs == Bool {
		return Bool
	}
	return Error
}

// Modulus returns Int only when both operands are Int.
func Modulus(lhs, rhs VT) VT {
	if lhs == Int && rhs == Int {
		return Int
	}
	return Error
}

// Negation returns the operand's VT for Int/Float, Error for Bool (or
// anything non-numeric).
func Negation(operand VT) VT {
	if operand.IsNumeric() {
		return operand
	}
	return Error
}

// Assignable reports whether a value of VT `from` may be stored into a
// target of VT `to`, per spec §4.3: Int accepts Int or Float
// (truncating), Float accepts Int or Float (widening), Bool accepts only
// Bool.
func Assignable(to, from VT) bool {
	switch to {
	case Int, Float:
		return from.IsNumeric()
	case Bool:
		return from == Bool
	default:
		return false
	}
}
