// internal/service/schema.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	ddl "github.com/dangerclosesec/schemagen/ddl/model"
	"github.com/dangerclosesec/schemagen/ddl/parser"
	"github.com/dangerclosesec/schemagen/internal/domain"
	"github.com/dangerclosesec/schemagen/internal/model"
	"github.com/dangerclosesec/schemagen/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultCacheSize    = 128
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

type SchemaService struct {
	repo     repository.ParseRecordRepositoryIface
	cache    *SchemaCache
	logger   *slog.Logger
	validate *validator.Validate
}

// NewSchemaService wires the parse service. repo may be nil, in which case
// parses are not recorded.
func NewSchemaService(
	repo repository.ParseRecordRepositoryIface,
	cache *SchemaCache,
	logger *slog.Logger,
) *SchemaService {
	if cache == nil {
		cache = MustSchemaCache(defaultCacheSize)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaService{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		validate: validator.New(),
	}
}

type ParseInput struct {
	Name   string `json:"name" validate:"max=255"`
	Source string `json:"source" validate:"required"`
}

type ParseOutput struct {
	RecordID uuid.UUID   `json:"record_id"`
	Schema   *ddl.Schema `json:"schema"`
	Cached   bool        `json:"cached"`
}

// Parse validates the input and parses its DDL source. Syntax errors are
// returned wrapped in domain.ErrParseFailed; the *parser.SyntaxError stays
// reachable through errors.As.
func (s *SchemaService) Parse(ctx context.Context, input ParseInput) (*ParseOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	key := SourceKey(input.Source)
	out := &ParseOutput{}

	if schema, ok := s.cache.Get(key); ok {
		out.Schema = schema
		out.Cached = true
	} else {
		schema, err := parser.NewParser(parser.NewLexer(input.Source)).
			WithLogger(s.logger).
			Parse()
		if err != nil {
			record := s.record(ctx, input.Name, key, nil, err)
			s.logger.Info("schema parse failed",
				"name", input.Name,
				"record_id", record,
				"error", err,
			)
			return nil, fmt.Errorf("%w: %w", domain.ErrParseFailed, err)
		}
		s.cache.Set(key, schema)
		out.Schema = schema
	}

	out.RecordID = s.record(ctx, input.Name, key, out.Schema, nil)
	s.logger.Debug("schema parsed",
		"name", input.Name,
		"relations", len(out.Schema.Relations),
		"cached", out.Cached,
	)
	return out, nil
}

// record stores the outcome of a parse. Failures are logged and otherwise
// ignored; the returned ID is uuid.Nil when nothing was stored.
func (s *SchemaService) record(ctx context.Context, name, key string, schema *ddl.Schema, parseErr error) uuid.UUID {
	if s.repo == nil {
		return uuid.Nil
	}

	rec := &model.ParseRecord{
		ID:         uuid.New(),
		Name:       name,
		SourceHash: key,
		Success:    parseErr == nil,
	}
	if schema != nil {
		rec.RelationCount = len(schema.Relations)
		rec.Schema = model.SchemaJSON{Schema: schema}
	}

	var syntaxErr *parser.SyntaxError
	if errors.As(parseErr, &syntaxErr) {
		rec.ErrorState = syntaxErr.State
		rec.ErrorToken = syntaxErr.Token
		rec.ErrorLine = syntaxErr.Line
		rec.ErrorColumn = syntaxErr.Column
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Warn("failed to record parse", "error", err)
		return uuid.Nil
	}
	return rec.ID
}

// History lists the most recent parse records, newest first.
func (s *SchemaService) History(ctx context.Context, limit int) ([]*model.ParseRecord, error) {
	if s.repo == nil {
		return []*model.ParseRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing parse history: %w", err)
	}
	return records, nil
}

// Record fetches a single parse record.
func (s *SchemaService) Record(ctx context.Context, id uuid.UUID) (*model.ParseRecord, error) {
	if s.repo == nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// PruneHistory deletes all but the newest keep records.
func (s *SchemaService) PruneHistory(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("%w: keep must not be negative", domain.ErrInvalidInput)
	}
	if s.repo == nil {
		return 0, nil
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, keep)
	if err != nil {
		return 0, err
	}
	s.logger.Info("pruned parse history", "deleted", deleted, "kept", keep)
	return deleted, nil
}
