package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MENU_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.Nil(t, cfg.Brokers())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MENU_CONFIG", "")
	t.Setenv("MENU_ADDR", ":9090")
	t.Setenv("MENU_STORE_BACKEND", "redis")
	t.Setenv("MENU_REDIS_ADDR", "cache:6379")
	t.Setenv("MENU_KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("MENU_CORS_ORIGINS", "http://localhost:3000,https://menu.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Brokers())
	assert.Equal(t, []string{"http://localhost:3000", "https://menu.example.com"}, cfg.AllowedOrigins())
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\nstore_backend: postgres\ndb_host: db\nlog_level: debug\n"), 0600))

	t.Setenv("MENU_CONFIG", path)
	t.Setenv("MENU_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("MENU_CONFIG", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MENU_PUBLIC_BASE_URL=https://menu.example.com\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("MENU_PUBLIC_BASE_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://menu.example.com", cfg.PublicBaseURL)
}

func TestLoad_InvalidBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MENU_CONFIG", "")
	t.Setenv("MENU_STORE_BACKEND", "firebase")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MENU_CONFIG", "/does/not/exist.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Default()
	cfg.DBPassword = "secret"

	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=menu sslmode=disable", cfg.PostgresDSN())
}

func TestNewKafkaWriter(t *testing.T) {
	cfg := Default()
	assert.Nil(t, NewKafkaWriter(cfg))

	cfg.KafkaBrokers = "localhost:9092"
	writer := NewKafkaWriter(cfg)
	require.NotNil(t, writer)
	assert.Equal(t, "menu-events", writer.Topic)
}

// chdir mirrors testing.T.Chdir (Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
