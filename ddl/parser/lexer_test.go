package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerTokens(t *testing.T) {
	input := "CREATE TABLE t (x numeric(4,2));\n-- note\n\"quoted name\" 'x'"

	expected := []Token{
		{Type: TokenIdent, Literal: "CREATE", Line: 1, Column: 1},
		{Type: TokenIdent, Literal: "TABLE", Line: 1, Column: 8},
		{Type: TokenIdent, Literal: "t", Line: 1, Column: 14},
		{Type: TokenLParen, Literal: "(", Line: 1, Column: 16},
		{Type: TokenIdent, Literal: "x", Line: 1, Column: 17},
		{Type: TokenIdent, Literal: "numeric", Line: 1, Column: 19},
		{Type: TokenLParen, Literal: "(", Line: 1, Column: 26},
		{Type: TokenInt, Literal: "4", Line: 1, Column: 27},
		{Type: TokenComma, Literal: ",", Line: 1, Column: 28},
		{Type: TokenInt, Literal: "2", Line: 1, Column: 29},
		{Type: TokenRParen, Literal: ")", Line: 1, Column: 30},
		{Type: TokenRParen, Literal: ")", Line: 1, Column: 31},
		{Type: TokenSemicolon, Literal: ";", Line: 1, Column: 32},
		{Type: TokenString, Literal: "quoted name", Line: 3, Column: 1},
		{Type: TokenString, Literal: "x", Line: 3, Column: 15},
		{Type: TokenEOF, Literal: "", Line: 3, Column: 18},
	}

	assert.Equal(t, expected, Tokenize(input))
}

func TestLexerIdentifiers(t *testing.T) {
	tokens := Tokenize("w_id _private c2")
	assert.Equal(t, []string{"w_id", "_private", "c2", ""}, literals(tokens))
	for _, tok := range tokens[:3] {
		assert.Equal(t, TokenIdent, tok.Type)
	}
}

func TestLexerIllegalInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{"unterminated string", "'abc", "abc"},
		{"unknown character", "@", "@"},
		{"single dash", "-", "-"},
		{"dot", ".", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			assert.Equal(t, TokenIllegal, tok.Type)
			assert.Equal(t, tt.literal, tok.Literal)
		})
	}
}

func TestLexerDecodesUTF8(t *testing.T) {
	expected := []Token{
		{Type: TokenIdent, Literal: "caf", Line: 1, Column: 1},
		{Type: TokenIllegal, Literal: "é", Line: 1, Column: 4},
		{Type: TokenString, Literal: "größe", Line: 1, Column: 6},
		{Type: TokenIdent, Literal: "x", Line: 1, Column: 14},
		{Type: TokenEOF, Literal: "", Line: 1, Column: 15},
	}

	assert.Equal(t, expected, Tokenize("café 'größe' x"))
}

func TestLexerStaysAtEOF(t *testing.T) {
	l := NewLexer("x")
	assert.Equal(t, TokenIdent, l.NextToken().Type)
	assert.Equal(t, TokenEOF, l.NextToken().Type)
	assert.Equal(t, TokenEOF, l.NextToken().Type)
}

func TestSliceSourceAppendsEOF(t *testing.T) {
	src := NewSliceSource([]Token{{Type: TokenIdent, Literal: "abc", Line: 2, Column: 4}})
	assert.Equal(t, "abc", src.NextToken().Literal)

	eof := src.NextToken()
	assert.Equal(t, TokenEOF, eof.Type)
	assert.Equal(t, 2, eof.Line)
	assert.Equal(t, 7, eof.Column)
	assert.Equal(t, TokenEOF, src.NextToken().Type)

	src = NewSliceSource([]Token{{Type: TokenIdent, Literal: "größe", Line: 1, Column: 1}})
	src.NextToken()
	assert.Equal(t, 6, src.NextToken().Column)
}

func literals(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Literal
	}
	return out
}
