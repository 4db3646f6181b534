// File: parser/state.go
package parser

import (
	"github.com/dangerclosesec/schemagen/ddl/model"
)

// StateKind enumerates the positions of the DDL grammar
type StateKind int

const (
	StateInit StateKind = iota
	StateCreate
	StateTable
	StateCreateTableBegin
	StateCreateTableEnd
	StateTableName
	StatePrimary
	StateIndex
	StateIndexName
	StateIndexTableName
	StateIndexColumns
	StateIndexColumnBegin
	StateIndexColumnName
	StateIndexEnd
	StateKey
	StateKeyListBegin
	StateKeyName
	StateKeyListEnd
	StateAttributeName
	StateAttributeType
	StateAttributeTypeArgs
	StateAttributeTypeArgsEnd
	StateNot
	StateNull
	StateSeparator
	StateSemicolon
	StateErr
)

var stateNames = [...]string{
	StateInit:                 "Init",
	StateCreate:               "Create",
	StateTable:                "Table",
	StateCreateTableBegin:     "CreateTableBegin",
	StateCreateTableEnd:       "CreateTableEnd",
	StateTableName:            "TableName",
	StatePrimary:              "Primary",
	StateIndex:                "Index",
	StateIndexName:            "IndexName",
	StateIndexTableName:       "IndexTableName",
	StateIndexColumns:         "IndexColumns",
	StateIndexColumnBegin:     "IndexColumnBegin",
	StateIndexColumnName:      "IndexColumnName",
	StateIndexEnd:             "IndexEnd",
	StateKey:                  "Key",
	StateKeyListBegin:         "KeyListBegin",
	StateKeyName:              "KeyName",
	StateKeyListEnd:           "KeyListEnd",
	StateAttributeName:        "AttributeName",
	StateAttributeType:        "AttributeType",
	StateAttributeTypeArgs:    "AttributeTypeArgs",
	StateAttributeTypeArgsEnd: "AttributeTypeArgsEnd",
	StateNot:                  "Not",
	StateNull:                 "Null",
	StateSeparator:            "Separator",
	StateSemicolon:            "Semicolon",
	StateErr:                  "Err",
}

func (k StateKind) String() string {
	if k < 0 || int(k) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[k]
}

// State is the parser's position in the grammar. Type carries the column type
// being refined in StateAttributeType and StateAttributeTypeArgs, Arg the
// index of the next type argument, and Err the failure in StateErr.
type State struct {
	Kind StateKind
	Type model.ColumnType
	Arg  int
	Err  *SyntaxError
}

// IsErr reports whether the state is the terminal error state
func (s State) IsErr() bool {
	return s.Kind == StateErr
}

// Accepting reports whether input may end in this state
func (s State) Accepting() bool {
	return s.Kind == StateInit || s.Kind == StateSemicolon
}

func (s State) String() string {
	switch s.Kind {
	case StateAttributeType, StateAttributeTypeArgs:
		return s.Kind.String() + "(" + s.Type.String() + ")"
	case StateErr:
		if s.Err != nil {
			return "Err(" + s.Err.Error() + ")"
		}
	}
	return s.Kind.String()
}

func at(kind StateKind) State {
	return State{Kind: kind}
}
