// File: parser/keyword.go
package parser

import (
	"strings"

	"github.com/dangerclosesec/schemagen/ddl/model"
)

// KeywordTag identifies a reserved word of the DDL grammar
type KeywordTag int

const (
	KeywordPrimary KeywordTag = iota
	KeywordKey
	KeywordCreate
	KeywordTable
	KeywordIndex
	KeywordOn
	KeywordNot
	KeywordNull
	KeywordType
)

func (k KeywordTag) String() string {
	switch k {
	case KeywordPrimary:
		return "PRIMARY"
	case KeywordKey:
		return "KEY"
	case KeywordCreate:
		return "CREATE"
	case KeywordTable:
		return "TABLE"
	case KeywordIndex:
		return "INDEX"
	case KeywordOn:
		return "ON"
	case KeywordNot:
		return "NOT"
	case KeywordNull:
		return "NULL"
	case KeywordType:
		return "TYPE"
	default:
		return "UNKNOWN"
	}
}

// Keyword is a classified keyword. Type is only meaningful when Tag is
// KeywordType.
type Keyword struct {
	Tag  KeywordTag
	Type model.TypeKind
}

// Keywords maps lower-cased keyword strings to keywords
var Keywords = map[string]Keyword{
	"primary":   {Tag: KeywordPrimary},
	"key":       {Tag: KeywordKey},
	"create":    {Tag: KeywordCreate},
	"table":     {Tag: KeywordTable},
	"index":     {Tag: KeywordIndex},
	"on":        {Tag: KeywordOn},
	"not":       {Tag: KeywordNot},
	"null":      {Tag: KeywordNull},
	"integer":   {Tag: KeywordType, Type: model.Integer},
	"timestamp": {Tag: KeywordType, Type: model.Timestamp},
	"numeric":   {Tag: KeywordType, Type: model.Numeric},
	"char":      {Tag: KeywordType, Type: model.Char},
	"varchar":   {Tag: KeywordType, Type: model.Varchar},
}

// LookupKeyword classifies an identifier token. Tokens of any other type,
// string literals included, never match.
func LookupKeyword(tok Token) (Keyword, bool) {
	if tok.Type != TokenIdent {
		return Keyword{}, false
	}
	kw, ok := Keywords[strings.ToLower(tok.Literal)]
	return kw, ok
}

// IsKeyword reports whether tok is the keyword identified by tag
func IsKeyword(tok Token, tag KeywordTag) bool {
	kw, ok := LookupKeyword(tok)
	return ok && kw.Tag == tag
}

// IsKeyword reports whether the lookahead is the given keyword without
// consuming it
func (ts *TokenStream) IsKeyword(tag KeywordTag) bool {
	return IsKeyword(ts.cur, tag)
}

// EatKeyword consumes the lookahead if it is the given keyword
func (ts *TokenStream) EatKeyword(tag KeywordTag) bool {
	if ts.IsKeyword(tag) {
		ts.Next()
		return true
	}
	return false
}

// EatTypeKeyword consumes the lookahead if it names a column type and returns
// that type with zeroed arguments
func (ts *TokenStream) EatTypeKeyword() (model.ColumnType, bool) {
	kw, ok := LookupKeyword(ts.cur)
	if !ok || kw.Tag != KeywordType {
		return model.ColumnType{}, false
	}
	ts.Next()
	return model.ColumnType{Kind: kw.Type}, true
}
