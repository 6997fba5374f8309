package interp

import (
	"minilang/ast"
	"minilang/value"
)

// execute implements spec §4.5. Block pushes and pops a runtime scope
// frame around its children, mirroring the static scope the parser pushed
// for the same block (spec §3: "the static and runtime scope chains have
// the same nesting structure during evaluation") — required so that a
// block-local declaration which shadows an outer name doesn't overwrite
// the outer binding instead of merely hiding it.
func (in *Interp) execute(s ast.Stmt) (State, value.Value, error) {
	switch n := s.(type) {
	case *ast.Block:
		in.scopes.Push()
		defer in.scopes.Pop()
		return in.execStmts(n.Stmts)

	case *ast.Decl:
		v := value.Zero(n.VarType)
		if n.Init != nil {
			rv, err := in.evaluate(n.Init)
			if err != nil {
				return Normal, value.Value{}, err
			}
			v = rv.ConvertTo(n.VarType)
		}
		in.scopes.Insert(n.Name, v)
		return Normal, value.Value{}, nil

	case *ast.ExprStmt:
		if n.Expr == nil {
			return Normal, value.Value{}, nil
		}
		_, err := in.evaluate(n.Expr)
		return Normal, value.Value{}, err

	case *ast.If:
		cond, err := in.evaluate(n.Cond)
		if err != nil {
			return Normal, value.Value{}, err
		}
		if cond.AsBool() {
			return in.execute(n.Then)
		}
		if n.Else != nil {
			return in.execute(n.Else)
		}
		return Normal, value.Value{}, nil

	case *ast.While:
		return in.execWhile(n)

	case *ast.For:
		return in.execFor(n)

	case *ast.Break:
		return Broken, value.Value{}, nil

	case *ast.Continue:
		return Continued, value.Value{}, nil

	case *ast.Return:
		if n.Expr == nil {
			return Returned, value.Value{}, nil
		}
		v, err := in.evaluate(n.Expr)
		if err != nil {
			return Normal, value.Value{}, err
		}
		return Returned, v, nil

	case *ast.FuncDecl:
		// Registration already happened statically; re-adding here would
		// be a harmless no-op, so nothing to do.
		return Normal, value.Value{}, nil

	default:
		panic("interp: unhandled statement node")
	}
}

// execStmts runs a statement sequence in the current innermost scope
// without pushing a frame of its own; Block pushes one before calling
// this, and Call reuses its parameter frame as the function body's frame
// by calling this directly instead of going through execute on the body's
// *ast.Block (the parser gives parameters and the body one shared static
// scope, so the runtime frame stays one-to-one with it).
func (in *Interp) execStmts(stmts []ast.Stmt) (State, value.Value, error) {
	for _, s := range stmts {
		st, v, err := in.execute(s)
		if err != nil {
			return Normal, value.Value{}, err
		}
		if st != Normal {
			return st, v, nil
		}
	}
	return Normal, value.Value{}, nil
}

func (in *Interp) execWhile(n *ast.While) (State, value.Value, error) {
	for {
		cond, err := in.evaluate(n.Cond)
		if err != nil {
			return Normal, value.Value{}, err
		}
		if !cond.AsBool() {
			return Normal, value.Value{}, nil
		}
		st, v, err := in.execute(n.Body)
		if err != nil {
			return Normal, value.Value{}, err
		}
		switch st {
		case Broken:
			return Normal, value.Value{}, nil
		case Returned:
			return Returned, v, nil
		case Continued, Normal:
			// fall through to re-test cond
		}
	}
}

// execFor implements spec §4.5's For semantics: init runs once; both
// natural fall-through and Continued run update before the next test;
// Broken exits without running update.
func (in *Interp) execFor(n *ast.For) (State, value.Value, error) {
	if _, _, err := in.execute(n.Init); err != nil {
		return Normal, value.Value{}, err
	}
	for {
		if n.Cond != nil {
			cond, err := in.evaluate(n.Cond)
			if err != nil {
				return Normal, value.Value{}, err
			}
			if !cond.AsBool() {
				return Normal, value.Value{}, nil
			}
		}
		st, v, err := in.execute(n.Body)
		if err != nil {
			return Normal, value.Value{}, err
		}
		switch st {
		case Broken:
			return Normal, value.Value{}, nil
		case Returned:
			return Returned, v, nil
		case Continued, Normal:
			if n.Update != nil {
				if _, err := in.evaluate(n.Update); err != nil {
					return Normal, value.Value{}, err
				}
			}
		}
	}
}
