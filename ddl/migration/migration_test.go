package migration

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dangerclosesec/schemagen/ddl/parser"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	versionQuery  = `SELECT COALESCE\(MAX\(version\), 0\) FROM schema_versions`
	catalogQuery  = `SELECT r.position, r.name, c.name\s+FROM schema_relations r`
	historyInsert = `INSERT INTO migration_history`
)

func newMockMigrator(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewMigrator(db), mock
}

func catalogRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows([]string{"position", "name", "name"})
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}

func TestApplyMigration(t *testing.T) {
	migrator, mock := newMockMigrator(t)
	schema, err := parser.ParseString("CREATE TABLE a (x integer, y integer); CREATE TABLE b (z char(1));")
	require.NoError(t, err)

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectQuery(catalogQuery).WillReturnRows(catalogRows(
		[]driver.Value{0, "A", "x"},
	))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM schema_relations`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO schema_relations`).WithArgs(0, "A").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO schema_columns`).WithArgs(0, "{\"x\",\"y\"}").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO schema_relations`).WithArgs(1, "B").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(`INSERT INTO schema_columns`).WithArgs(1, "{\"z\"}").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO schema_versions`).WithArgs(3, "second", "").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()
	mock.ExpectExec(historyInsert).WithArgs(3, true, "", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))

	diff, err := migrator.ApplyMigration(context.Background(), schema, "second")
	require.NoError(t, err)
	assert.Contains(t, diff, "  + B\n")
	assert.Contains(t, diff, "      + y\n")
}

func TestApplyMigrationNoChanges(t *testing.T) {
	migrator, mock := newMockMigrator(t)
	schema, err := parser.ParseString("CREATE TABLE a (x integer);")
	require.NoError(t, err)

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectQuery(catalogQuery).WillReturnRows(catalogRows([]driver.Value{0, "A", "x"}))

	diff, err := migrator.ApplyMigration(context.Background(), schema, "again")
	require.NoError(t, err)
	assert.Equal(t, NoChanges, diff)
}

func TestApplyMigrationRollsBack(t *testing.T) {
	migrator, mock := newMockMigrator(t)
	schema, err := parser.ParseString("CREATE TABLE a (x integer);")
	require.NoError(t, err)

	mock.ExpectQuery(versionQuery).WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
	mock.ExpectQuery(catalogQuery).WillReturnRows(catalogRows())
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM schema_relations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_relations`).WithArgs(0, "A").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO schema_columns`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()
	mock.ExpectExec(historyInsert).
		WithArgs(1, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err = migrator.ApplyMigration(context.Background(), schema, "first")
	assert.ErrorContains(t, err, "failed to insert columns of A: disk full")
}

func TestLoadCurrentSchemaKeepsPositions(t *testing.T) {
	migrator, mock := newMockMigrator(t)

	mock.ExpectQuery(catalogQuery).WillReturnRows(catalogRows(
		[]driver.Value{0, "A", "x"},
		[]driver.Value{0, "A", "y"},
		[]driver.Value{1, "Empty", nil},
		[]driver.Value{2, "A", "z"},
	))

	schema, err := migrator.LoadCurrentSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A(x, y)\nEmpty()\nA(z)\n", schema.String())
}

func TestCatalogNotInitialized(t *testing.T) {
	migrator, mock := newMockMigrator(t)

	mock.ExpectQuery(versionQuery).WillReturnError(&pq.Error{Code: "42P01", Message: `relation "schema_versions" does not exist`})

	_, err := migrator.GetCurrentVersion(context.Background())
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestHistory(t *testing.T) {
	migrator, mock := newMockMigrator(t)
	applied := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM schema_versions\s+ORDER BY version DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"version", "description", "source_file", "applied_at"}).
			AddRow(2, "second", "tpcc.sql", applied).
			AddRow(1, "first", "", applied))

	versions, err := migrator.History(context.Background())
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
	assert.Equal(t, "tpcc.sql", versions[0].SourceFile)
	assert.Equal(t, sql.NullTime{Time: applied, Valid: true}, versions[1].AppliedAt)
}

// TestCatalogRoundTrip runs against a real PostgreSQL when SCHEMAGEN_TEST_DSN is set.
func TestCatalogRoundTrip(t *testing.T) {
	dsn := os.Getenv("SCHEMAGEN_TEST_DSN")
	if dsn == "" {
		t.Skip("SCHEMAGEN_TEST_DSN not set")
	}

	migrator, err := Open(dsn)
	require.NoError(t, err)
	defer migrator.Close()

	ctx := context.Background()
	for _, table := range []string{"schema_columns", "schema_relations", "schema_versions", "migration_history"} {
		_, err := migrator.DB.ExecContext(ctx, "DROP TABLE IF EXISTS "+table)
		require.NoError(t, err)
	}
	require.NoError(t, migrator.InitializeSchema(ctx))

	first, err := parser.ParseString("CREATE TABLE a (x integer, y integer); CREATE TABLE b (z integer);")
	require.NoError(t, err)
	_, err = migrator.ApplyMigration(ctx, first, "first")
	require.NoError(t, err)

	loaded, err := migrator.LoadCurrentSchema(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.String(), loaded.String())

	diff, err := migrator.ApplyMigration(ctx, first, "again")
	require.NoError(t, err)
	assert.Equal(t, NoChanges, diff)

	swapped, err := parser.ParseString("CREATE TABLE b (z integer); CREATE TABLE a (x integer, y integer);")
	require.NoError(t, err)
	_, err = migrator.ApplyMigration(ctx, swapped, "swapped")
	require.NoError(t, err)

	loaded, err = migrator.LoadCurrentSchema(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B(z)\nA(x, y)\n", loaded.String())

	version, err := migrator.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}
