// Package parser implements the recursive-descent front end of spec §4.2:
// it builds a typed ast.Expr/ast.Stmt tree directly from the token
// stream, consulting the static symbol table and static function table to
// type-check every node as it is constructed. A successfully parsed tree
// is always well-typed; a malformed program raises a *diag.Error instead.
package parser

import (
	"minilang/ast"
	"minilang/diag"
	"minilang/lexer"
	"minilang/symtab"
	"minilang/token"
	"minilang/types"
)

// Parser holds the lookahead stream plus the two compile-time tables the
// grammar consults while it builds nodes.
type Parser struct {
	stream    *lexer.Stream
	statics   *symtab.StaticScopes
	funcs     *symtab.Functions
	loopDepth int
	// currentReturn is the enclosing function's declared return type, or
	// nil at top level.
	currentReturn *types.VT
}

// New primes a Parser over src. A lexical error in the first two tokens
// surfaces here as a *diag.Error; one further on surfaces from Parse.
func New(src string) (*Parser, error) {
	stream, err := lexer.NewStream(src)
	if err != nil {
		return nil, wrapLexErr(err)
	}
	return &Parser{
		stream:  stream,
		statics: symtab.NewStaticScopes(),
		funcs:   symtab.NewFunctions(),
	}, nil
}

func wrapLexErr(err error) error {
	if le, ok := err.(*lexer.Error); ok {
		return diag.Syntax(le.Position, "%s", le.Message)
	}
	return err
}

// Program is the parsed result: the top-level statement sequence plus the
// function table every Call in the tree was resolved against.
type Program struct {
	Items []ast.Stmt
	Funcs *symtab.Functions
}

// Parse consumes the entire token stream and returns the typed tree, or
// the first *diag.Error encountered. Parsing never partially succeeds:
// on error the returned Program is nil.
func (p *Parser) Parse() (prog *Program, err error) {
	items, err := p.ParseItems()
	if err != nil {
		return nil, err
	}
	return &Program{Items: items, Funcs: p.funcs}, nil
}

// ParseItems consumes the current token stream up to EOF and returns the
// parsed items, reusing whatever static scope/function-table state this
// Parser already holds. Combined with Feed, this lets a long-lived Parser
// serve an interactive session: each new chunk of source is parsed
// against the tables built up by every earlier chunk.
func (p *Parser) ParseItems() (items []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*diag.Error); ok {
				err = de
				return
			}
			panic(r)
		}
	}()

	for p.cur().Kind != token.EOF {
		items = append(items, p.parseItem())
	}
	return items, nil
}

// Feed replaces the token stream with one over src, leaving the static
// scope and function table untouched. Used by the REPL to parse each new
// line against state accumulated from earlier lines.
func (p *Parser) Feed(src string) error {
	stream, err := lexer.NewStream(src)
	if err != nil {
		return wrapLexErr(err)
	}
	p.stream = stream
	return nil
}

// Funcs exposes the static function table so a caller can share it with
// an interp.Interp across multiple ParseItems calls.
func (p *Parser) Funcs() *symtab.Functions { return p.funcs }

func (p *Parser) cur() token.Token  { return p.stream.Current() }
func (p *Parser) peek() token.Token { return p.stream.Peek() }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if err := p.stream.Advance(); err != nil {
		panic(wrapLexErr(err))
	}
	return t
}

func (p *Parser) match(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) expect(kind token.Kind, what string) token.Token {
	if p.cur().Kind != kind {
		panic(diag.Syntax(p.cur().Position, "expected %s, found %s", what, p.cur()))
	}
	return p.advance()
}

func isTypeKeyword(k token.Kind) bool {
	return k == token.KwInt || k == token.KwFloat || k == token.KwBoolean
}

func vtFromKeyword(k token.Kind) types.VT {
	switch k {
	case token.KwInt:
		return types.Int
	case token.KwFloat:
		return types.Float
	case token.KwBoolean:
		return types.Bool
	default:
		panic("parser: vtFromKeyword called on a non-type token")
	}
}

func (p *Parser) expectType() (types.VT, token.Token) {
	tok := p.cur()
	if !isTypeKeyword(tok.Kind) {
		panic(diag.Syntax(tok.Position, "expected a type (int, float, or boolean), found %s", tok))
	}
	p.advance()
	return vtFromKeyword(tok.Kind), tok
}

// parseItem implements `item ::= declaration | statement` (spec §6),
// including the declaration alternative `funcDecl` and the plain variable
// declaration form.
func (p *Parser) parseItem() ast.Stmt {
	switch {
	case p.match(token.KwFunction):
		return p.parseFuncDecl()
	case isTypeKeyword(p.cur().Kind):
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseVarDecl() ast.Stmt {
	vt, typeTok := p.expectType()
	nameTok := p.expect(token.Ident, "a variable name")

	var init ast.Expr
	if p.match(token.Assign) {
		p.advance()
		init = p.parseExpr()
		if !types.Assignable(vt, init.Type()) {
			panic(diag.Type(nameTok.Position,
				"cannot initialize %s variable %q with a %s value", vt, nameTok.Lexeme, init.Type()))
		}
	}
	p.expect(token.Semicolon, "';' after variable declaration")

	if !p.statics.Insert(nameTok.Lexeme, vt) {
		panic(diag.Symbol(nameTok.Position, "%q is already declared in this scope", nameTok.Lexeme))
	}
	return &ast.Decl{VarType: vt, Name: nameTok.Lexeme, Init: init, Position: typeTok.Position}
}

// parseFuncDecl implements `funcDecl ::= 'function' IDENT '(' paramList
// ')' ':' type block`. The declaration is registered in the static
// function table before its body is parsed so that a recursive call
// inside the body type-checks.
func (p *Parser) parseFuncDecl() ast.Stmt {
	funcTok := p.expect(token.KwFunction, "'function'")
	nameTok := p.expect(token.Ident, "a function name")

	p.expect(token.LParen, "'(' after function name")
	var params []ast.Param
	if !p.match(token.RParen) {
		params = append(params, p.parseParam())
		for p.match(token.Comma) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RParen, "')' after parameter list")
	p.expect(token.Colon, "':' before the return type")
	retVT, _ := p.expectType()

	decl := &ast.FuncDecl{Name: nameTok.Lexeme, ReturnType: retVT, Params: params, Position: funcTok.Position}
	if !p.funcs.Add(nameTok.Lexeme, decl) {
		panic(diag.Symbol(nameTok.Position, "function %q is already declared", nameTok.Lexeme))
	}

	p.statics.Push()
	for _, param := range params {
		if !p.statics.Insert(param.Name, param.Type) {
			p.statics.Pop()
			panic(diag.Symbol(funcTok.Position, "duplicate parameter name %q in function %q", param.Name, nameTok.Lexeme))
		}
	}

	outerReturn := p.currentReturn
	rt := retVT
	p.currentReturn = &rt
	bodyOpen := p.expect(token.LBrace, "'{' to open the function body")
	stmts := p.parseItemsUntil(token.RBrace)
	p.expect(token.RBrace, "'}' to close the function body")
	p.currentReturn = outerReturn
	p.statics.Pop()

	body := &ast.Block{Stmts: stmts, Position: bodyOpen.Position}
	decl.Body = body

	if !allPathsReturn(body.Stmts...) {
		panic(diag.Syntax(decl.Position, "function %q does not return a value on every path", decl.Name))
	}
	return decl
}

func (p *Parser) parseParam() ast.Param {
	vt, _ := p.expectType()
	nameTok := p.expect(token.Ident, "a parameter name")
	return ast.Param{Name: nameTok.Lexeme, Type: vt}
}
