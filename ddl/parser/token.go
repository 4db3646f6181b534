// File: parser/token.go
package parser

import "unicode/utf8"

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	TokenIllegal TokenType = iota
	TokenEOF

	// Identifiers and literals
	TokenIdent
	TokenString
	TokenInt

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenComma     // ,
	TokenSemicolon // ;
)

func (t TokenType) String() string {
	switch t {
	case TokenIllegal:
		return "Illegal"
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "Ident"
	case TokenString:
		return "String"
	case TokenInt:
		return "Int"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenComma:
		return "Comma"
	case TokenSemicolon:
		return "Semicolon"
	default:
		return "Unknown"
	}
}

// Text returns the literal text used when reporting the token
func (t Token) Text() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return t.Literal
}

// TokenSource produces tokens one at a time. After the end of input it keeps
// returning a TokenEOF token.
type TokenSource interface {
	NextToken() Token
}

// SliceSource replays an already tokenized stream
type SliceSource struct {
	tokens []Token
	pos    int
}

// NewSliceSource creates a source over tokens. The stream ends at the first
// TokenEOF or at the end of the slice.
func NewSliceSource(tokens []Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// NextToken returns the next token of the slice
func (s *SliceSource) NextToken() Token {
	if s.pos >= len(s.tokens) {
		var line, column int
		if n := len(s.tokens); n > 0 {
			line = s.tokens[n-1].Line
			column = s.tokens[n-1].Column + utf8.RuneCountInString(s.tokens[n-1].Literal)
		}
		return Token{Type: TokenEOF, Line: line, Column: column}
	}
	tok := s.tokens[s.pos]
	if tok.Type != TokenEOF {
		s.pos++
	}
	return tok
}
