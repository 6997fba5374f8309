// Package token defines the lexical boundary between the source text and
// the parser: token kinds, the Token value itself, and the keyword table
// overlay used by the lexer's identifier scan.
package token

import "fmt"

//go:generate stringer -type=Kind
type Kind int

const (
	EOF Kind = iota
	Ident

	LitInt
	LitFloat

	// keywords
	KwInt
	KwFloat
	KwBoolean
	KwFunction
	KwIf
	KwElse
	KwFor
	KwWhile
	KwReturn
	KwBreak
	KwContinue
	KwTrue
	KwFalse

	// punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Colon

	// operators
	Plus
	Minus
	Star
	Slash
	Percent
	AndAnd
	OrOr
	EqEq
	NotEq
	Lt
	Gt
	Assign
)

// Keywords maps a scanned identifier's lexeme to its keyword Kind. Any
// identifier not present here is an ordinary Ident.
var Keywords = map[string]Kind{
	"int":      KwInt,
	"float":    KwFloat,
	"boolean":  KwBoolean,
	"function": KwFunction,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"true":     KwTrue,
	"false":    KwFalse,
}

// Position is a 1-based line and column attached to every token.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is the boundary type the lexer yields and the parser consumes.
type Token struct {
	Kind     Kind
	Lexeme   string
	Position Position
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}
