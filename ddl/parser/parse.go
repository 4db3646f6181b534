// File: parser/parse.go
package parser

import (
	"fmt"
	"os"

	"github.com/dangerclosesec/schemagen/ddl/model"
)

// ParseString parses DDL source text into a schema
func ParseString(src string) (*model.Schema, error) {
	return NewParser(NewLexer(src)).Parse()
}

// ParseFile parses a .sql file
func ParseFile(filePath string) (*model.Schema, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	schema, err := ParseString(string(content))
	if err != nil {
		return nil, err
	}

	schema.Source = filePath
	return schema, nil
}
