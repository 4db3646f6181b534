// File: parser/parser.go
package parser

import (
	"log/slog"

	"github.com/dangerclosesec/schemagen/ddl/model"
)

// Parser drives the DDL state machine over a token stream
type Parser struct {
	ts     *TokenStream
	logger *slog.Logger
}

// NewParser creates a new Parser reading tokens from src
func NewParser(src TokenSource) *Parser {
	return &Parser{
		ts:     NewTokenStream(src),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for step tracing
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	p.logger = logger
	return p
}

// Parse runs the state machine until the stream is exhausted or a token is
// rejected. It returns the complete schema, or a *SyntaxError and no schema.
func (p *Parser) Parse() (*model.Schema, error) {
	schema := model.NewSchema()
	state := at(StateInit)

	for {
		if state.IsErr() {
			return nil, state.Err
		}

		if p.ts.AtEOF() {
			if !state.Accepting() {
				return nil, newSyntaxError(state, p.ts.Current())
			}
			break
		}

		p.logger.Debug("parser step", "state", state.String(), "token", p.ts.Current().Text())
		state = Step(p.ts, state, schema)
	}

	p.logger.Debug("schema parsed", "relations", len(schema.Relations))
	return schema, nil
}
