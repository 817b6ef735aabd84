package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "PGHOST", "PGPORT", "PGDATABASE", "PGUSER", "PGPASSWORD", "PGSSLMODE",
		"DB_MAX_CONNS", "DB_STATEMENT_TIMEOUT", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Zero(t, cfg.StatementTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, "host='localhost' port='5432' user='postgres' password='' dbname='likeme' sslmode='disable'", cfg.DSN())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PGHOST", "db")
	t.Setenv("PGDATABASE", "posts")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_STATEMENT_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://likeme.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.Addr())
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, 3*time.Second, cfg.StatementTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://likeme.example"}, cfg.AllowOrigins)
	assert.Contains(t, cfg.DSN(), "host='db'")
	assert.Contains(t, cfg.DSN(), "dbname='posts'")
}

func TestDSNQuotesValues(t *testing.T) {
	cfg := &Config{DBHost: "h", DBPort: "1", DBUser: "u", DBPassword: `it's\x`, DBName: "n", DBSSLMode: "disable"}

	assert.Equal(t, `host='h' port='1' user='u' password='it\'s\\x' dbname='n' sslmode='disable'`, cfg.DSN())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non numeric pool size", "DB_MAX_CONNS", "many"},
		{"zero pool size", "DB_MAX_CONNS", "0"},
		{"bad timeout", "DB_STATEMENT_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_CONNS", "")
			t.Setenv("DB_STATEMENT_TIMEOUT", "")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
