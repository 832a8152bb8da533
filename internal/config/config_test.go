package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.Equal(t, defaultRedisURL, cfg.RedisURL)
	assert.Equal(t, defaultTokenTTL, cfg.TokenTTLHours)
	assert.True(t, cfg.IsDev())
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
port: 9000
env: production
jwt_secret: s3cret
database:
  host: db.internal
  port: 3307
  user: app
  password: pw
  name: urls
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Contains(t, cfg.Database.DSNValue(), "app:pw@tcp(db.internal:3307)/urls")
	assert.Contains(t, cfg.Database.DSNValue(), "parseTime=True")
}

func TestDSNValue_ExplicitDSNWins(t *testing.T) {
	db := DatabaseRuntimeConfig{
		DSN:  "root:x@tcp(1.2.3.4:3306)/other",
		Host: "ignored",
	}
	assert.Equal(t, "root:x@tcp(1.2.3.4:3306)/other", db.DSNValue())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [broken"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
