// Package diag implements the four error categories of spec §7: syntax,
// symbol, type, and runtime errors, each carrying a message and (where
// known) a source position. A diag.Error is an ordinary Go error; nothing
// in the parser or evaluator recovers from one internally, matching
// spec §7's "no retry, no partial execution" propagation rule.
package diag

import (
	"fmt"

	"minilang/token"
)

type Category int

const (
	SyntaxError Category = iota
	SymbolError
	TypeError
	RuntimeError
)

func (c Category) String() string {
	switch c {
	case SyntaxError:
		return "syntax error"
	case SymbolError:
		return "symbol error"
	case TypeError:
		return "type error"
	case RuntimeError:
		return "runtime error"
	default:
		return "error"
	}
}

// Error is the single diagnostic type raised by every pipeline stage.
type Error struct {
	Category Category
	Message  string
	Position token.Position
	HasPos   bool
}

func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s: %s (%s)", e.Category, e.Message, e.Position)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func at(category Category, pos token.Position, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...), Position: pos, HasPos: true}
}

func Syntax(pos token.Position, format string, args ...any) *Error {
	return at(SyntaxError, pos, format, args...)
}

func Symbol(pos token.Position, format string, args ...any) *Error {
	return at(SymbolError, pos, format, args...)
}

func Type(pos token.Position, format string, args ...any) *Error {
	return at(TypeError, pos, format, args...)
}

// Runtime errors do not always have a useful source position (e.g. an
// error surfacing deep inside a recursive call); RuntimeAt supplies one
// when available, Runtime omits it.
func Runtime(format string, args ...any) *Error {
	return &Error{Category: RuntimeError, Message: fmt.Sprintf(format, args...)}
}

func RuntimeAt(pos token.Position, format string, args ...any) *Error {
	return at(RuntimeError, pos, format, args...)
}
