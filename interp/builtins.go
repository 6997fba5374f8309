package interp

import (
	"fmt"
	"strconv"
	"unicode"

	"minilang/ast"
	"minilang/diag"
	"minilang/types"
	"minilang/value"
)

// println writes v's value followed by a newline to the interpreter's
// stdout, per spec §4.5's builtin table.
func (in *Interp) println(v value.Value) {
	fmt.Fprintln(in.stdout, v.String())
}

// evalInput implements the `input(T)` builtin: read one whitespace
// delimited token from stdin and parse it as T. A malformed token is a
// runtime error (spec §4.5, §7).
func (in *Interp) evalInput(n *ast.Input) (value.Value, error) {
	tok, err := in.readToken()
	if err != nil {
		return value.Value{}, diag.RuntimeAt(n.Position, "input: %s", err)
	}

	switch n.RequestedType {
	case types.Int:
		i, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return value.Value{}, diag.RuntimeAt(n.Position, "input: %q is not a valid int", tok)
		}
		return value.Int(int32(i)), nil
	case types.Float:
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return value.Value{}, diag.RuntimeAt(n.Position, "input: %q is not a valid float", tok)
		}
		return value.Float(float32(f)), nil
	case types.Bool:
		switch tok {
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		default:
			return value.Value{}, diag.RuntimeAt(n.Position, "input: %q is not 'true' or 'false'", tok)
		}
	default:
		panic("interp: input with non-primitive requested type")
	}
}

// readToken skips leading whitespace then reads runes up to the next
// whitespace rune or EOF, matching spec §4.5's "one whitespace-delimited
// token" rule.
func (in *Interp) readToken() (string, error) {
	var r rune
	var err error
	for {
		r, _, err = in.stdin.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			break
		}
	}

	var sb []rune
	sb = append(sb, r)
	for {
		r, _, err = in.stdin.ReadRune()
		if err != nil {
			break
		}
		if unicode.IsSpace(r) {
			break
		}
		sb = append(sb, r)
	}
	return string(sb), nil
}
