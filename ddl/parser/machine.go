// File: parser/machine.go
package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dangerclosesec/schemagen/ddl/model"
)

// Step advances the state machine by one transition. It inspects the
// lookahead of ts, consumes the tokens the transition accepts and records
// relations and columns on schema. A lookahead the state cannot accept yields
// StateErr carrying that lookahead. The only transition that can consume a
// token and still fail is a type argument: the integer is taken before the
// ',' or ')' after it is checked.
func Step(ts *TokenStream, state State, schema *model.Schema) State {
	switch state.Kind {
	case StateInit, StateSemicolon:
		if ts.EatKeyword(KeywordCreate) {
			return at(StateCreate)
		}

	case StateCreate:
		if ts.EatKeyword(KeywordTable) {
			return at(StateTable)
		}
		if ts.EatKeyword(KeywordIndex) {
			return at(StateIndex)
		}

	case StateTable:
		if isName(ts.Current()) {
			name := ts.Next().Literal
			schema.AddRelation(model.NewRelation(upperFirst(name)))
			return at(StateTableName)
		}

	case StateTableName:
		ts.Eat(TokenLParen)
		return at(StateCreateTableBegin)

	case StateCreateTableBegin, StateSeparator:
		if ts.Eat(TokenRParen) {
			return at(StateCreateTableEnd)
		}
		if ts.EatKeyword(KeywordPrimary) {
			return at(StatePrimary)
		}
		if isName(ts.Current()) {
			schema.LastRelation().AddColumn(ts.Next().Literal)
			return at(StateAttributeName)
		}

	case StateAttributeName:
		if ty, ok := ts.EatTypeKeyword(); ok {
			return State{Kind: StateAttributeType, Type: ty}
		}

	case StateAttributeType, StateAttributeTypeArgsEnd:
		if state.Kind == StateAttributeType && state.Type.Kind.HasArgs() {
			if ts.Eat(TokenLParen) {
				return State{Kind: StateAttributeTypeArgs, Type: state.Type}
			}
			break
		}
		if ts.Eat(TokenComma) {
			return at(StateSeparator)
		}
		if ts.EatKeyword(KeywordNot) {
			return at(StateNot)
		}
		if ts.Eat(TokenRParen) {
			return at(StateCreateTableEnd)
		}

	case StateAttributeTypeArgs:
		return stepTypeArg(ts, state)

	case StateNot:
		if ts.EatKeyword(KeywordNull) {
			return at(StateNull)
		}

	case StateNull, StateKeyListEnd:
		if ts.Eat(TokenComma) {
			return at(StateSeparator)
		}
		if ts.Eat(TokenRParen) {
			return at(StateCreateTableEnd)
		}

	case StateCreateTableEnd:
		if ts.Eat(TokenSemicolon) {
			return at(StateSemicolon)
		}

	case StatePrimary:
		if ts.EatKeyword(KeywordKey) {
			return at(StateKey)
		}

	case StateKey:
		if ts.Eat(TokenLParen) {
			return at(StateKeyListBegin)
		}

	case StateKeyListBegin:
		// Key columns are checked for shape only and not kept on the relation.
		if ts.Eat(TokenIdent) {
			return at(StateKeyName)
		}

	case StateKeyName:
		if ts.Eat(TokenComma) {
			return at(StateKeyListBegin)
		}
		if ts.Eat(TokenRParen) {
			return at(StateKeyListEnd)
		}
	}

	return fail(ts, state)
}

// stepTypeArg accepts one integer type argument followed by ',' or ')'.
// The argument is stored on the state payload by position. A bad separator
// fails after the integer has been consumed.
func stepTypeArg(ts *TokenStream, state State) State {
	tok := ts.Current()
	if tok.Type != TokenInt {
		return fail(ts, state)
	}
	value, err := strconv.ParseUint(tok.Literal, 10, 64)
	if err != nil {
		return fail(ts, state)
	}
	ts.Next()

	ty := state.Type
	ty.SetArg(state.Arg, value)

	if ts.Eat(TokenRParen) {
		return State{Kind: StateAttributeTypeArgsEnd, Type: ty}
	}
	if ts.Eat(TokenComma) {
		return State{Kind: StateAttributeTypeArgs, Type: ty, Arg: state.Arg + 1}
	}
	return fail(ts, state)
}

func fail(ts *TokenStream, state State) State {
	return State{Kind: StateErr, Err: newSyntaxError(state, ts.Current())}
}

// isName reports whether tok can name a relation or column
func isName(tok Token) bool {
	return tok.Type == TokenIdent || tok.Type == TokenString
}

// upperFirst upper-cases the first character of name
func upperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
