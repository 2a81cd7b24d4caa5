package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxFileSize)
	assert.False(t, cfg.Cleanup.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  shutdown_timeout: 3s
database:
  driver: sqlite
  path: /tmp/board.db
cleanup:
  enabled: true
  min_age: 2h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/board.db", cfg.Database.GetDSN())
	assert.True(t, cfg.Cleanup.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Cleanup.MinAge)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
`)
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("MAX_UPLOAD_SIZE", "2048")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "ftp" }, true},
		{"s3 without bucket", func(c *Config) { c.Storage.Backend = "s3" }, true},
		{"s3 complete", func(c *Config) {
			c.Storage.Backend = "s3"
			c.S3.Bucket = "attachments"
			c.S3.Region = "us-east-1"
		}, false},
		{"zero max size", func(c *Config) { c.Storage.MaxFileSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	d := Default().Database
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=taskboard sslmode=disable TimeZone=UTC", d.GetDSN())

	d.URL = "postgres://u:p@db:5432/board"
	assert.Equal(t, "postgres://u:p@db:5432/board", d.GetDSN())
}
