// File: parser/lexer.go
package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes DDL source text. Columns count runes, not bytes.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	width := 1
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch, width = utf8.DecodeRuneInString(l.input[l.readPosition:])
	}
	l.position = l.readPosition
	l.readPosition += width
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0 // EOF
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return ch
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	switch l.ch {
	case '(':
		tok = Token{Type: TokenLParen, Literal: string(l.ch)}
	case ')':
		tok = Token{Type: TokenRParen, Literal: string(l.ch)}
	case ',':
		tok = Token{Type: TokenComma, Literal: string(l.ch)}
	case ';':
		tok = Token{Type: TokenSemicolon, Literal: string(l.ch)}
	case 0:
		if l.position >= len(l.input) {
			return Token{Type: TokenEOF, Literal: "", Line: line, Column: column}
		}
		tok = Token{Type: TokenIllegal, Literal: string(l.ch)}
	case '\'', '"':
		str, ok := l.readString(l.ch)
		if !ok {
			return Token{Type: TokenIllegal, Literal: str, Line: line, Column: column}
		}
		return Token{Type: TokenString, Literal: str, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			return Token{Type: TokenIdent, Literal: l.readIdentifier(), Line: line, Column: column}
		} else if isDigit(l.ch) {
			return Token{Type: TokenInt, Literal: l.readNumber(), Line: line, Column: column}
		}
		tok = Token{Type: TokenIllegal, Literal: string(l.ch)}
	}

	tok.Line = line
	tok.Column = column
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case unicode.IsSpace(l.ch):
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-', l.ch == '/' && l.peekChar() == '/':
			l.skipComment()
		default:
			return
		}
	}
}

// skipComment skips over a comment line
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readIdentifier reads an identifier
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads an unsigned integer literal
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString reads a quoted literal and returns its contents without the
// quotes. ok is false when the input ends before the closing quote.
func (l *Lexer) readString(quote rune) (string, bool) {
	l.readChar() // skip opening quote
	position := l.position
	for l.ch != quote {
		if l.ch == 0 && l.position >= len(l.input) {
			return l.input[position:], false
		}
		l.readChar()
	}
	str := l.input[position:l.position]
	l.readChar() // skip closing quote
	return str, true
}

// isLetter returns true if the character may start an identifier
func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize runs the lexer over input and returns all tokens including the
// trailing TokenEOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)

	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}
