package parser

import (
	"strconv"

	"minilang/ast"
	"minilang/diag"
	"minilang/token"
	"minilang/types"
)

// parseExpr is the entry point for the precedence chain in spec §4.2:
// assignment (right-associative) down through logical-or, logical-and,
// equality, relational, additive, multiplicative, unary, primary.
// Assignment is only attempted when the left side is a bare identifier
// immediately followed by '=' — exactly the lookahead-2 the ring buffer
// supplies (current = IDENT, peek = '=').
func (p *Parser) parseExpr() ast.Expr {
	if p.cur().Kind == token.Ident && p.peek().Kind == token.Assign {
		nameTok := p.advance()
		p.advance() // '='
		rhs := p.parseExpr()

		vt, ok := p.statics.Find(nameTok.Lexeme)
		if !ok {
			panic(diag.Symbol(nameTok.Position, "undefined variable %q", nameTok.Lexeme))
		}
		if !types.Assignable(vt, rhs.Type()) {
			panic(diag.Type(nameTok.Position, "cannot assign a %s value to %s variable %q", rhs.Type(), vt, nameTok.Lexeme))
		}
		return &ast.Assign{Target: nameTok.Lexeme, RHS: rhs, VT: vt, Position: nameTok.Position}
	}
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.match(token.OrOr) {
		tok := p.advance()
		right := p.parseLogicalAnd()
		if types.Logical(left.Type(), right.Type()) == types.Error {
			panic(diag.Type(tok.Position, "'||' requires boolean operands, found %s and %s", left.Type(), right.Type()))
		}
		left = &ast.LogOr{Left: left, Right: right, Position: tok.Position}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.match(token.AndAnd) {
		tok := p.advance()
		right := p.parseEquality()
		if types.Logical(left.Type(), right.Type()) == types.Error {
			panic(diag.Type(tok.Position, "'&&' requires boolean operands, found %s and %s", left.Type(), right.Type()))
		}
		left = &ast.LogAnd{Left: left, Right: right, Position: tok.Position}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.match(token.EqEq) || p.match(token.NotEq) {
		tok := p.advance()
		right := p.parseRelational()
		if types.Equality(left.Type(), right.Type()) == types.Error {
			panic(diag.Type(tok.Position, "cannot compare %s and %s for equality", left.Type(), right.Type()))
		}
		op := ast.Equal
		if tok.Kind == token.NotEq {
			op = ast.NotEqual
		}
		left = &ast.Eq{Op: op, Left: left, Right: right, Position: tok.Position}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for p.match(token.Lt) || p.match(token.Gt) {
		tok := p.advance()
		right := p.parseAdditive()
		if types.Relational(left.Type(), right.Type()) == types.Error {
			panic(diag.Type(tok.Position, "relational operators require numeric operands, found %s and %s", left.Type(), right.Type()))
		}
		op := ast.Less
		if tok.Kind == token.Gt {
			op = ast.Greater
		}
		left = &ast.Rel{Op: op, Left: left, Right: right, Position: tok.Position}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.match(token.Plus) || p.match(token.Minus) {
		tok := p.advance()
		right := p.parseMultiplicative()
		vt := types.Arithmetic(left.Type(), right.Type())
		if vt == types.Error {
			panic(diag.Type(tok.Position, "'%s' requires numeric operands, found %s and %s", tok.Lexeme, left.Type(), right.Type()))
		}
		op := ast.Add
		if tok.Kind == token.Minus {
			op = ast.Sub
		}
		left = &ast.Arith{Op: op, Left: left, Right: right, VT: vt, Position: tok.Position}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.match(token.Star) || p.match(token.Slash) || p.match(token.Percent) {
		tok := p.advance()
		right := p.parseUnary()
		if tok.Kind == token.Percent {
			if types.Modulus(left.Type(), right.Type()) == types.Error {
				panic(diag.Type(tok.Position, "'%%' requires int operands, found %s and %s", left.Type(), right.Type()))
			}
			left = &ast.Mod{Left: left, Right: right, Position: tok.Position}
			continue
		}
		vt := types.Arithmetic(left.Type(), right.Type())
		if vt == types.Error {
			panic(diag.Type(tok.Position, "'%s' requires numeric operands, found %s and %s", tok.Lexeme, left.Type(), right.Type()))
		}
		op := ast.Mul
		if tok.Kind == token.Slash {
			op = ast.Div
		}
		left = &ast.Arith{Op: op, Left: left, Right: right, VT: vt, Position: tok.Position}
	}
	return left
}

// parseUnary handles unary +/-. Unary + is elided per spec §4.3: it
// returns the operand unchanged rather than wrapping it in a node.
func (p *Parser) parseUnary() ast.Expr {
	if p.match(token.Plus) {
		p.advance()
		return p.parseUnary()
	}
	if p.match(token.Minus) {
		tok := p.advance()
		operand := p.parseUnary()
		vt := types.Negation(operand.Type())
		if vt == types.Error {
			panic(diag.Type(tok.Position, "unary '-' requires a numeric operand, found %s", operand.Type()))
		}
		return &ast.Neg{Operand: operand, VT: vt, Position: tok.Position}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.LitInt:
		p.advance()
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			panic(diag.Syntax(tok.Position, "malformed integer literal %q", tok.Lexeme))
		}
		return &ast.IntLit{Value: int32(n), Position: tok.Position}
	case token.LitFloat:
		p.advance()
		f, err := strconv.ParseFloat(tok.Lexeme, 32)
		if err != nil {
			panic(diag.Syntax(tok.Position, "malformed float literal %q", tok.Lexeme))
		}
		return &ast.FloatLit{Value: float32(f), Position: tok.Position}
	case token.KwTrue:
		p.advance()
		return &ast.BoolLit{Value: true, Position: tok.Position}
	case token.KwFalse:
		p.advance()
		return &ast.BoolLit{Value: false, Position: tok.Position}
	case token.LParen:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RParen, "')' to close the parenthesized expression")
		return e
	case token.Ident:
		return p.parseIdentOrCall()
	default:
		panic(diag.Syntax(tok.Position, "unexpected token %s", tok))
	}
}

func (p *Parser) parseIdentOrCall() ast.Expr {
	nameTok := p.advance()
	if !p.match(token.LParen) {
		vt, ok := p.statics.Find(nameTok.Lexeme)
		if !ok {
			panic(diag.Symbol(nameTok.Position, "undefined variable %q", nameTok.Lexeme))
		}
		return &ast.Var{Name: nameTok.Lexeme, VT: vt, Position: nameTok.Position}
	}
	return p.parseCall(nameTok)
}

// parseCall implements the three call forms: the `input(T)` builtin
// (whose sole "argument" is a bare type keyword, not an expression), the
// one-argument `println(x)` builtin, and a user-defined function call.
// Both builtins are resolved by name ahead of the static function table,
// matching the runtime lookup order in spec §4.5.
func (p *Parser) parseCall(nameTok token.Token) ast.Expr {
	switch nameTok.Lexeme {
	case "input":
		return p.parseInputCall(nameTok)
	case "println":
		return p.parsePrintlnCall(nameTok)
	default:
		return p.parseUserCall(nameTok)
	}
}

func (p *Parser) parseInputCall(nameTok token.Token) ast.Expr {
	p.expect(token.LParen, "'(' after 'input'")
	vt, _ := p.expectType()
	p.expect(token.RParen, "')' after input's type argument")
	return &ast.Input{RequestedType: vt, Position: nameTok.Position}
}

func (p *Parser) parsePrintlnCall(nameTok token.Token) ast.Expr {
	p.expect(token.LParen, "'(' after 'println'")
	arg := p.parseExpr()
	p.expect(token.RParen, "')' after println's argument")
	return &ast.Call{Name: "println", Args: []ast.Expr{arg}, VT: types.Int, Position: nameTok.Position}
}

func (p *Parser) parseUserCall(nameTok token.Token) ast.Expr {
	p.expect(token.LParen, "'(' after function name")
	var args []ast.Expr
	if !p.match(token.RParen) {
		args = append(args, p.parseExpr())
		for p.match(token.Comma) {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	p.expect(token.RParen, "')' after argument list")

	decl, ok := p.funcs.Find(nameTok.Lexeme)
	if !ok {
		panic(diag.Symbol(nameTok.Position, "call to undefined function %q", nameTok.Lexeme))
	}
	if len(args) != len(decl.Params) {
		panic(diag.Type(nameTok.Position, "function %q expects %d argument(s), got %d",
			nameTok.Lexeme, len(decl.Params), len(args)))
	}
	for i, arg := range args {
		if !types.Assignable(decl.Params[i].Type, arg.Type()) {
			panic(diag.Type(arg.Pos(), "argument %d to %q must be %s, found %s",
				i+1, nameTok.Lexeme, decl.Params[i].Type, arg.Type()))
		}
	}
	return &ast.Call{Name: nameTok.Lexeme, Args: args, VT: decl.ReturnType, Position: nameTok.Position}
}
