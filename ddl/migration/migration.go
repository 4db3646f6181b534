// File: migration/migration.go
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/schemagen/ddl/model"
	"github.com/lib/pq"
)

// NoChanges is returned by ApplyMigration when the stored catalog already
// matches the schema.
const NoChanges = "No changes detected. Migration skipped."

// ErrNotInitialized is returned when the catalog tables do not exist yet
var ErrNotInitialized = errors.New("schema catalog not initialized")

// undefinedTable is the PostgreSQL error code for a missing relation
const undefinedTable = "42P01"

// Migrator records parsed schemas in a PostgreSQL catalog
type Migrator struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db, logger: slog.Default()}
}

// Open connects to PostgreSQL through lib/pq and returns a migrator
func Open(dsn string) (*Migrator, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return NewMigrator(db), nil
}

// Close closes the underlying database handle
func (m *Migrator) Close() error {
	return m.DB.Close()
}

// InitializeSchema creates the catalog tables if they don't exist
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_relations (
		id SERIAL PRIMARY KEY,
		position INT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS schema_columns (
		id SERIAL PRIMARY KEY,
		relation_position INT NOT NULL REFERENCES schema_relations(position) ON DELETE CASCADE,
		position INT NOT NULL,
		name TEXT NOT NULL,
		UNIQUE(relation_position, position)
	);

	CREATE TABLE IF NOT EXISTS schema_versions (
		id SERIAL PRIMARY KEY,
		version INT NOT NULL,
		description TEXT,
		source_file TEXT,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS migration_history (
		id SERIAL PRIMARY KEY,
		version INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		success BOOLEAN NOT NULL,
		errors TEXT,
		diff TEXT
	);
	`)

	return err
}

// GetCurrentVersion gets the current schema version
func (m *Migrator) GetCurrentVersion(ctx context.Context) (int, error) {
	var version int
	err := m.DB.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(version), 0) FROM schema_versions
	`).Scan(&version)
	if err != nil {
		return 0, classify(err)
	}
	return version, nil
}

// Version is one entry of the version history
type Version struct {
	Version     int
	Description string
	SourceFile  string
	AppliedAt   sql.NullTime
}

// History lists applied versions, newest first
func (m *Migrator) History(ctx context.Context) ([]Version, error) {
	rows, err := m.DB.QueryContext(ctx, `
		SELECT version, COALESCE(description, ''), COALESCE(source_file, ''), applied_at
		FROM schema_versions
		ORDER BY version DESC
	`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var versions []Version
	for rows.Next() {
		var v Version
		if err := rows.Scan(&v.Version, &v.Description, &v.SourceFile, &v.AppliedAt); err != nil {
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// ApplyMigration records schema as the new catalog contents. It returns the
// textual diff that was applied, or NoChanges.
func (m *Migrator) ApplyMigration(ctx context.Context, schema *model.Schema, description string) (string, error) {
	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current version: %w", err)
	}

	currentSchema, err := m.LoadCurrentSchema(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load current schema: %w", err)
	}

	diff := GenerateDiff(currentSchema, schema)
	if diff.IsEmpty() {
		return NoChanges, nil
	}
	diffText := diff.String()

	newVersion := currentVersion + 1

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := m.applySchemaInTransaction(ctx, tx, schema); err != nil {
		tx.Rollback()
		m.recordMigrationHistory(ctx, newVersion, false, err.Error(), diffText)
		return "", fmt.Errorf("failed to apply schema: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO schema_versions (version, description, source_file)
		VALUES ($1, $2, $3)
	`, newVersion, description, schema.Source)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.recordMigrationHistory(ctx, newVersion, true, "", diffText)
	m.logger.Info("schema migration applied", "version", newVersion, "relations", len(schema.Relations))

	return diffText, nil
}

// LoadCurrentSchema loads the schema stored in the catalog
func (m *Migrator) LoadCurrentSchema(ctx context.Context) (*model.Schema, error) {
	schema := model.NewSchema()

	rows, err := m.DB.QueryContext(ctx, `
		SELECT r.position, r.name, c.name
		FROM schema_relations r
		LEFT JOIN schema_columns c ON c.relation_position = r.position
		ORDER BY r.position, c.position
	`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	lastPosition := -1
	for rows.Next() {
		var position int
		var relationName string
		var columnName sql.NullString
		if err := rows.Scan(&position, &relationName, &columnName); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}

		if position != lastPosition {
			schema.AddRelation(model.NewRelation(relationName))
			lastPosition = position
		}
		if columnName.Valid {
			schema.LastRelation().AddColumn(columnName.String)
		}
	}

	return schema, rows.Err()
}

// applySchemaInTransaction replaces the catalog contents within a transaction
func (m *Migrator) applySchemaInTransaction(ctx context.Context, tx *sql.Tx, schema *model.Schema) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_relations`); err != nil {
		return fmt.Errorf("failed to clear relations: %w", err)
	}

	for i, relation := range schema.Relations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schema_relations (position, name) VALUES ($1, $2)
		`, i, relation.Name)
		if err != nil {
			return fmt.Errorf("failed to insert relation %s: %w", relation.Name, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO schema_columns (relation_position, position, name)
			SELECT $1, t.ord - 1, t.name
			FROM unnest($2::text[]) WITH ORDINALITY AS t(name, ord)
		`, i, pq.Array(relation.ColumnNames()))
		if err != nil {
			return fmt.Errorf("failed to insert columns of %s: %w", relation.Name, err)
		}
	}

	return nil
}

// recordMigrationHistory records migration history
func (m *Migrator) recordMigrationHistory(ctx context.Context, version int, success bool, errorMsg string, diff string) {
	_, err := m.DB.ExecContext(ctx, `
		INSERT INTO migration_history (version, success, errors, diff)
		VALUES ($1, $2, $3, $4)
	`, version, success, errorMsg, diff)
	if err != nil {
		m.logger.Warn("failed to record migration history", "version", version, "error", err)
	}
}

// classify maps a missing catalog table to ErrNotInitialized
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("%w: %s", ErrNotInitialized, pqErr.Message)
	}
	return err
}
