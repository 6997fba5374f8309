// Package ast defines the two tagged-variant node families of spec §3:
// Expr (always carries a resolved types.VT fixed at construction) and
// Stmt (executes and returns a control-flow verdict, modeled in package
// interp). Every node owns its children outright; there is no shared
// ownership and no downcasting — callers type-switch on the concrete
// struct types. Neither the compiler nor `go vet` checks those switches
// for exhaustiveness; the evaluator's switches panic on an unhandled node.
package ast

import (
	"minilang/token"
	"minilang/types"
)

// Expr is implemented by every expression node. Type returns the VT
// resolved for this node at parse time; it is never types.Error.
type Expr interface {
	Type() types.VT
	Pos() token.Position
	exprNode()
}

type IntLit struct {
	Value    int32
	Position token.Position
}

func (n *IntLit) Type() types.VT        { return types.Int }
func (n *IntLit) Pos() token.Position   { return n.Position }
func (*IntLit) exprNode()               {}

type FloatLit struct {
	Value    float32
	Position token.Position
}

func (n *FloatLit) Type() types.VT      { return types.Float }
func (n *FloatLit) Pos() token.Position { return n.Position }
func (*FloatLit) exprNode()             {}

type BoolLit struct {
	Value    bool
	Position token.Position
}

func (n *BoolLit) Type() types.VT      { return types.Bool }
func (n *BoolLit) Pos() token.Position { return n.Position }
func (*BoolLit) exprNode()             {}

// Var references a variable previously resolved in the static symbol
// table; VT is the type found there.
type Var struct {
	Name     string
	VT       types.VT
	Position token.Position
}

func (n *Var) Type() types.VT      { return n.VT }
func (n *Var) Pos() token.Position { return n.Position }
func (*Var) exprNode()             {}

// Neg is unary minus; unary plus is elided by the parser (it just
// returns the operand, per spec §4.3).
type Neg struct {
	Operand  Expr
	VT       types.VT
	Position token.Position
}

func (n *Neg) Type() types.VT      { return n.VT }
func (n *Neg) Pos() token.Position { return n.Position }
func (*Neg) exprNode()             {}

// ArithOp distinguishes +, -, *, / (Arith) from the other binary kinds
// which carry their own node types below.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

type Arith struct {
	Op       ArithOp
	Left     Expr
	Right    Expr
	VT       types.VT
	Position token.Position
}

func (n *Arith) Type() types.VT      { return n.VT }
func (n *Arith) Pos() token.Position { return n.Position }
func (*Arith) exprNode()             {}

// Mod is `%`; both operands are Int, result is Int.
type Mod struct {
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *Mod) Type() types.VT      { return types.Int }
func (n *Mod) Pos() token.Position { return n.Position }
func (*Mod) exprNode()             {}

type RelOp int

const (
	Less RelOp = iota
	Greater
)

// Rel is <, >; result is always Bool.
type Rel struct {
	Op       RelOp
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *Rel) Type() types.VT      { return types.Bool }
func (n *Rel) Pos() token.Position { return n.Position }
func (*Rel) exprNode()             {}

type EqOp int

const (
	Equal EqOp = iota
	NotEqual
)

// Eq is ==, !=; result is always Bool.
type Eq struct {
	Op       EqOp
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *Eq) Type() types.VT      { return types.Bool }
func (n *Eq) Pos() token.Position { return n.Position }
func (*Eq) exprNode()             {}

// LogAnd/LogOr are short-circuit logical operators; result is Bool.
type LogAnd struct {
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *LogAnd) Type() types.VT      { return types.Bool }
func (n *LogAnd) Pos() token.Position { return n.Position }
func (*LogAnd) exprNode()             {}

type LogOr struct {
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *LogOr) Type() types.VT      { return types.Bool }
func (n *LogOr) Pos() token.Position { return n.Position }
func (*LogOr) exprNode()             {}

// Assign is `target = rhs`; VT is the target's declared type (the result
// of the assignment expression is the converted, stored value).
type Assign struct {
	Target   string
	RHS      Expr
	VT       types.VT
	Position token.Position
}

func (n *Assign) Type() types.VT      { return n.VT }
func (n *Assign) Pos() token.Position { return n.Position }
func (*Assign) exprNode()             {}

// Input is the `input(T)` builtin. Its sole operand is a bare type
// keyword rather than an expression, so it gets its own node instead of
// folding into Call.
type Input struct {
	RequestedType types.VT
	Position      token.Position
}

func (n *Input) Type() types.VT      { return n.RequestedType }
func (n *Input) Pos() token.Position { return n.Position }
func (*Input) exprNode()             {}

// Call is a user-defined or builtin function invocation; VT is the
// callee's declared return type.
type Call struct {
	Name     string
	Args     []Expr
	VT       types.VT
	Position token.Position
}

func (n *Call) Type() types.VT      { return n.VT }
func (n *Call) Pos() token.Position { return n.Position }
func (*Call) exprNode()             {}
