package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
database:
  path: `+dir+`/data/carshare.db
cache:
  refresh_seconds: 30
redis:
  address: localhost:6379
  ttl_seconds: 120
backup:
  enabled: true
  interval_hours: 6
  retention_days: 14
auth:
  bcrypt_cost: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir+"/data/carshare.db", cfg.Database.Path)
	assert.Equal(t, 30*time.Second, cfg.CacheRefreshInterval())
	assert.Equal(t, 2*time.Minute, cfg.RedisTTL())
	assert.Equal(t, 6*time.Hour, cfg.BackupInterval())
	assert.Equal(t, 14, cfg.Backup.RetentionDays)
	assert.Equal(t, 10, cfg.BcryptCost())

	// the database directory is created on load
	_, err = os.Stat(filepath.Dir(cfg.Database.Path))
	assert.NoError(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `redis: {}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/carshare.db", cfg.Database.Path)
	assert.Equal(t, 60*time.Second, cfg.CacheRefreshInterval())
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL())
	assert.Equal(t, 24*time.Hour, cfg.BackupInterval())
	assert.Equal(t, 12, cfg.BcryptCost())
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_REDIS_PASSWORD", "s3cret")
	dir := t.TempDir()
	path := writeConfig(t, `
database:
  path: `+dir+`/carshare.db
redis:
  password: ${TEST_REDIS_PASSWORD}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Redis.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
