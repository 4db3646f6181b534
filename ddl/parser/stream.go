package parser

// TokenStream holds one token of lookahead over a TokenSource
type TokenStream struct {
	src TokenSource
	cur Token
}

// NewTokenStream creates a stream positioned at the first token of src
func NewTokenStream(src TokenSource) *TokenStream {
	ts := &TokenStream{src: src}
	ts.Next()
	return ts
}

// Current returns the lookahead token
func (ts *TokenStream) Current() Token {
	return ts.cur
}

// Next consumes the lookahead and returns it
func (ts *TokenStream) Next() Token {
	tok := ts.cur
	ts.cur = ts.src.NextToken()
	return tok
}

// Is reports whether the lookahead has the given type
func (ts *TokenStream) Is(t TokenType) bool {
	return ts.cur.Type == t
}

// Eat consumes the lookahead if it has the given type
func (ts *TokenStream) Eat(t TokenType) bool {
	if ts.Is(t) {
		ts.Next()
		return true
	}
	return false
}

// AtEOF reports whether the stream is exhausted
func (ts *TokenStream) AtEOF() bool {
	return ts.cur.Type == TokenEOF
}
