// Package interp implements the tree-walking evaluator of spec §4.4–§4.5:
// evaluate on expressions, execute on statements, threading a single
// runtime scope chain and the shared function table built by the parser.
// Break/continue/return propagate as ordinary verdict values, never as
// panics — panics in this package mean an internal invariant was
// violated, not a user-facing error.
package interp

import (
	"bufio"
	"io"

	"minilang/ast"
	"minilang/diag"
	"minilang/scope"
	"minilang/symtab"
	"minilang/value"
)

// State is the control-flow verdict execute returns alongside an optional
// Value, per spec §4.5/§9's GLOSSARY entry for "Verdict".
type State int

const (
	Normal State = iota
	Broken
	Continued
	Returned
)

// Interp owns the four pieces of per-run mutable state spec §9's design
// notes call for bundling into a single object rather than leaving as
// process-wide globals: the runtime scope chain, the shared function
// table, and the stdin/stdout streams the two builtins use.
type Interp struct {
	scopes *scope.Chain
	funcs  *symtab.Functions
	stdin  *bufio.Reader
	stdout io.Writer
}

// New builds an Interp ready to run prog.Items against funcs. stdin/stdout
// are the builtins' only I/O surface (spec §5's "blocking points").
func New(funcs *symtab.Functions, stdin io.Reader, stdout io.Writer) *Interp {
	return &Interp{
		scopes: scope.New(),
		funcs:  funcs,
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
	}
}

// Run executes a top-level item sequence. A Returned verdict reaching the
// top level is a bare `return` used outside any function; the driver
// treats that the same as falling off the end of the program.
func (in *Interp) Run(items []ast.Stmt) error {
	for _, item := range items {
		st, _, err := in.execBlockLevel(item)
		if err != nil {
			return err
		}
		if st == Returned {
			return nil
		}
	}
	return nil
}

// execBlockLevel executes one top-level item, converting a caught-too-late
// break/continue into a runtime error the parser's static check should
// normally have already rejected (see spec §4.5: "if not, evaluator
// raises").
func (in *Interp) execBlockLevel(s ast.Stmt) (State, value.Value, error) {
	st, v, err := in.execute(s)
	if err == nil && (st == Broken || st == Continued) {
		return Normal, value.Value{}, diag.RuntimeAt(s.Pos(), "'break' or 'continue' outside of a loop")
	}
	return st, v, err
}
