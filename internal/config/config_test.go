package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromYAML(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  host: 127.0.0.1
  port: 8081
  env: development
database:
  url: postgres://localhost/app_test
jwt:
  secret: yaml-secret
`)
	require.NoError(t, os.WriteFile(path, content, 0644))
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/app_test", cfg.Database.DSN)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)

	// Defaults fill in what the file omits.
	assert.Equal(t, 24, cfg.JWT.TTL)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSize)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/env_test")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, "postgres://localhost/env_test", cfg.Database.DSN)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
}
