package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilang/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	toks := lexAll(t, "(){};,:+-*/%&&||==!=<>=")
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Semicolon, token.Comma, token.Colon,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.AndAnd, token.OrOr, token.EqEq, token.NotEq,
		token.Lt, token.Gt, token.Assign, token.EOF,
	}, kinds)
}

func TestLexerKeywordsVsIdentifiers(t *testing.T) {
	toks := lexAll(t, "int result true falsey")
	require.Len(t, toks, 5)
	assert.Equal(t, token.KwInt, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, token.KwTrue, toks[2].Kind)
	assert.Equal(t, token.Ident, toks[3].Kind)
	assert.Equal(t, "falsey", toks[3].Lexeme)
}

func TestLexerNumericLiterals(t *testing.T) {
	toks := lexAll(t, "0 42 3.14 1e10 2.5e-3")
	require.Len(t, toks, 6)
	assert.Equal(t, token.LitInt, toks[0].Kind)
	assert.Equal(t, token.LitInt, toks[1].Kind)
	assert.Equal(t, token.LitFloat, toks[2].Kind)
	assert.Equal(t, token.LitFloat, toks[3].Kind)
	assert.Equal(t, token.LitFloat, toks[4].Kind)
}

func TestLexerRejectsLeadingZero(t *testing.T) {
	l := New("007")
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexerRejectsTrailingAlphaOnNumber(t *testing.T) {
	l := New("1.5a")
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexerPositionsTrackLinesAndColumns(t *testing.T) {
	toks := lexAll(t, "int x\n= 1;")
	require.True(t, len(toks) >= 4)
	assert.Equal(t, 1, toks[0].Position.Line)
	assert.Equal(t, 5, toks[1].Position.Column)
	assign := toks[2]
	assert.Equal(t, token.Assign, assign.Kind)
	assert.Equal(t, 2, assign.Position.Line)
	assert.Equal(t, 1, assign.Position.Column)
}
