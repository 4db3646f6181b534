package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError through errors.Is
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports the token the parser could not accept, the state it
// was in and the token's position in the source.
type SyntaxError struct {
	State  string
	Token  string
	Line   int
	Column int
}

func newSyntaxError(state State, tok Token) *SyntaxError {
	return &SyntaxError{
		State:  state.Kind.String(),
		Token:  tok.Text(),
		Line:   tok.Line,
		Column: tok.Column,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unexpected token `%s` at state `%s` (line %d, column %d)", e.Token, e.State, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
