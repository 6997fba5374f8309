package interp

import (
	"minilang/ast"
	"minilang/diag"
	"minilang/types"
	"minilang/value"
)

// evaluate implements spec §4.4. It returns a *diag.Error wrapped as an
// ordinary error for the two runtime-error sites (division/modulo by
// zero, bad `input` parse); any other failure indicates the parser let an
// ill-typed tree through and is a programmer error, reported via panic.
func (in *Interp) evaluate(e ast.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return value.Int(n.Value), nil
	case *ast.FloatLit:
		return value.Float(n.Value), nil
	case *ast.BoolLit:
		return value.Bool(n.Value), nil
	case *ast.Var:
		v, ok := in.scopes.Find(n.Name)
		if !ok {
			panic("interp: Var " + n.Name + " resolved at parse time but missing at runtime")
		}
		return v, nil
	case *ast.Neg:
		return in.evalNeg(n)
	case *ast.Arith:
		return in.evalArith(n)
	case *ast.Mod:
		return in.evalMod(n)
	case *ast.Rel:
		return in.evalRel(n)
	case *ast.Eq:
		return in.evalEq(n)
	case *ast.LogAnd:
		return in.evalLogAnd(n)
	case *ast.LogOr:
		return in.evalLogOr(n)
	case *ast.Assign:
		return in.evalAssign(n)
	case *ast.Input:
		return in.evalInput(n)
	case *ast.Call:
		return in.evalCall(n)
	default:
		panic("interp: unhandled expression node")
	}
}

func (in *Interp) evalNeg(n *ast.Neg) (value.Value, error) {
	v, err := in.evaluate(n.Operand)
	if err != nil {
		return value.Value{}, err
	}
	if n.VT == types.Int {
		return value.Int(-v.AsInt()), nil
	}
	return value.Float(-v.AsFloat()), nil
}

// evalArith implements the +,-,*,/ promotion rule (spec §4.3/§4.4): Int
// op Int stays Int with 32-bit wraparound; any Float operand widens both
// sides to Float first. Int division/by-zero is a runtime error; Float
// division by zero follows IEEE semantics silently.
func (in *Interp) evalArith(n *ast.Arith) (value.Value, error) {
	l, err := in.evaluate(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	r, err := in.evaluate(n.Right)
	if err != nil {
		return value.Value{}, err
	}

	if n.VT == types.Int {
		li, ri := l.AsInt(), r.AsInt()
		switch n.Op {
		case ast.Add:
			return value.Int(li + ri), nil
		case ast.Sub:
			return value.Int(li - ri), nil
		case ast.Mul:
			return value.Int(li * ri), nil
		case ast.Div:
			if ri == 0 {
				return value.Value{}, diag.RuntimeAt(n.Position, "integer division by zero")
			}
			return value.Int(li / ri), nil
		}
	}

	lf, rf := l.ToFloat(), r.ToFloat()
	switch n.Op {
	case ast.Add:
		return value.Float(lf + rf), nil
	case ast.Sub:
		return value.Float(lf - rf), nil
	case ast.Mul:
		return value.Float(lf * rf), nil
	case ast.Div:
		return value.Float(lf / rf), nil
	}
	panic("interp: unhandled ArithOp")
}

func (in *Interp) evalMod(n *ast.Mod) (value.Value, error) {
	l, err := in.evaluate(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	r, err := in.evaluate(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	ri := r.AsInt()
	if ri == 0 {
		return value.Value{}, diag.RuntimeAt(n.Position, "modulo by zero")
	}
	return value.Int(l.AsInt() % ri), nil
}

// evalRel compares two numeric operands, keeping Int/Int comparisons in
// integer precision and only widening to Float when the operands' types
// differ (spec §4.4: "numeric comparisons use IEEE semantics after
// promotion").
func (in *Interp) evalRel(n *ast.Rel) (value.Value, error) {
	l, err := in.evaluate(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	r, err := in.evaluate(n.Right)
	if err != nil {
		return value.Value{}, err
	}

	var less bool
	if l.Type() == types.Int && r.Type() == types.Int {
		less = l.AsInt() < r.AsInt()
		if n.Op == ast.Greater {
			return value.Bool(l.AsInt() > r.AsInt()), nil
		}
		return value.Bool(less), nil
	}
	lf, rf := l.ToFloat(), r.ToFloat()
	if n.Op == ast.Greater {
		return value.Bool(lf > rf), nil
	}
	return value.Bool(lf < rf), nil
}

func (in *Interp) evalEq(n *ast.Eq) (value.Value, error) {
	l, err := in.evaluate(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	r, err := in.evaluate(n.Right)
	if err != nil {
		return value.Value{}, err
	}

	var eq bool
	if l.Type() == types.Bool {
		eq = l.AsBool() == r.AsBool()
	} else if l.Type() == types.Int && r.Type() == types.Int {
		eq = l.AsInt() == r.AsInt()
	} else {
		eq = l.ToFloat() == r.ToFloat()
	}
	if n.Op == ast.NotEqual {
		eq = !eq
	}
	return value.Bool(eq), nil
}

// evalLogAnd/evalLogOr implement spec §4.4's short-circuit rule: the right
// operand is never evaluated once the left side decides the result.
func (in *Interp) evalLogAnd(n *ast.LogAnd) (value.Value, error) {
	l, err := in.evaluate(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	if !l.AsBool() {
		return value.Bool(false), nil
	}
	r, err := in.evaluate(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(r.AsBool()), nil
}

func (in *Interp) evalLogOr(n *ast.LogOr) (value.Value, error) {
	l, err := in.evaluate(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	if l.AsBool() {
		return value.Bool(true), nil
	}
	r, err := in.evaluate(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(r.AsBool()), nil
}

func (in *Interp) evalAssign(n *ast.Assign) (value.Value, error) {
	rhs, err := in.evaluate(n.RHS)
	if err != nil {
		return value.Value{}, err
	}
	converted := rhs.ConvertTo(n.VT)
	if !in.scopes.Set(n.Target, converted) {
		panic("interp: Assign target " + n.Target + " resolved at parse time but missing at runtime")
	}
	return converted, nil
}

func (in *Interp) evalCall(n *ast.Call) (value.Value, error) {
	if n.Name == "println" {
		arg, err := in.evaluate(n.Args[0])
		if err != nil {
			return value.Value{}, err
		}
		in.println(arg)
		return value.Int(0), nil
	}

	decl, ok := in.funcs.Find(n.Name)
	if !ok {
		panic("interp: Call to undefined function " + n.Name + " resolved at parse time")
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v.ConvertTo(decl.Params[i].Type)
	}

	in.scopes.Push()
	defer in.scopes.Pop()
	for i, p := range decl.Params {
		in.scopes.Insert(p.Name, args[i])
	}

	st, v, err := in.execStmts(decl.Body.Stmts)
	if err != nil {
		return value.Value{}, err
	}
	if st == Returned {
		return v, nil
	}
	return value.Zero(decl.ReturnType), nil
}
