package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "SCHEMA_CACHE_SIZE", "LOG_LEVEL", "SERVER_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "schemagen", cfg.Database.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 128, cfg.Schema.CacheSize)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_USER", "loader")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tpcc")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("DB_SCHEMA", "catalog")
	t.Setenv("SCHEMA_CACHE_SIZE", "16")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.Equal(t, 16, cfg.Schema.CacheSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t,
		"host='db.internal' port='6432' user='loader' password='secret' dbname='tpcc' sslmode='require' search_path='catalog'",
		cfg.DSN())
}

func TestDSNParses(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"empty password", ""},
		{"password with spaces", "two words"},
		{"password with quote and backslash", `it's\here`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			cfg.Database.Host = "localhost"
			cfg.Database.Port = "5432"
			cfg.Database.User = "postgres"
			cfg.Database.Password = tt.password
			cfg.Database.Name = "schemagen"
			cfg.Database.SSLMode = "disable"
			cfg.Database.SearchPath = "public"

			parsed, err := pgconn.ParseConfig(cfg.DSN())
			require.NoError(t, err)
			assert.Equal(t, "schemagen", parsed.Database)
			assert.Equal(t, tt.password, parsed.Password)
			assert.Equal(t, "postgres", parsed.User)
			assert.Equal(t, uint16(5432), parsed.Port)
			assert.Equal(t, "public", parsed.RuntimeParams["search_path"])
		})
	}
}

func TestGetEnvIntRejectsInvalid(t *testing.T) {
	t.Setenv("SCHEMA_CACHE_SIZE", "lots")
	assert.Equal(t, 128, getEnvInt("SCHEMA_CACHE_SIZE", 128))

	t.Setenv("SCHEMA_CACHE_SIZE", "-3")
	assert.Equal(t, 128, getEnvInt("SCHEMA_CACHE_SIZE", 128))
}
