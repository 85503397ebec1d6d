package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arvhem/foyer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foyer.yaml")
	doc := `
addr: ":9090"
app_name: StudyDesk
content_dir: ./content
log_level: debug
metrics: false
cache:
  backend: redis
  ttl: 5m
  redis_addr: redis:6379
  redis_db: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "StudyDesk", cfg.AppName)
	assert.Equal(t, "./content", cfg.ContentDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 2, cfg.Cache.RedisDB)

	ttl, err := cfg.Cache.TTLDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, ttl)
}

func TestLoad_InvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foyer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  backend: memcached\n"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache backend")
}

func TestLoad_InvalidTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foyer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  ttl: soon\n"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cache ttl")
}
