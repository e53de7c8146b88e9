package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emma-alert/emma-broker/pkg/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, ":2080", cfg.Monitor.HostPort)
	assert.True(t, cfg.Ingest.LimiterEnabled())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	content := `
redis:
  addr: redis.emma.internal:6380
  db: 3
monitor:
  host_port: ":9090"
ingest:
  rate: 20
  burst: 40
`
	path := filepath.Join(t.TempDir(), "emma.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "redis.emma.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, ":9090", cfg.Monitor.HostPort)
	assert.Equal(t, float64(20), cfg.Ingest.Rate)
	assert.Equal(t, 40, cfg.Ingest.Burst)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	content := `
redis:
  addr: redis.emma.internal:6380
`
	path := filepath.Join(t.TempDir(), "emma.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "redis.emma.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, ":2080", cfg.Monitor.HostPort)
	assert.Equal(t, float64(5), cfg.Ingest.Rate)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	content := `
redis:
  addr: from-file:6379
ingest:
  burst: 7
`
	path := filepath.Join(t.TempDir(), "emma.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv(common.EnvKeyRedisAddr, "from-env:6379")
	t.Setenv(common.EnvKeyRedisDB, "2")
	t.Setenv(common.EnvKeyIngestBurst, "11")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 11, cfg.Ingest.Burst)
}

func TestLimiterDisabledByZeroRate(t *testing.T) {
	t.Setenv(common.EnvKeyIngestRate, "0")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.False(t, cfg.Ingest.LimiterEnabled())
}

func TestLoad_EdgeCases(t *testing.T) {
	{
		// pointing at a file that does not exist is an error
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.Nil(t, cfg)
	}

	{
		path := filepath.Join(t.TempDir(), "emma.yaml")
		require.NoError(t, os.WriteFile(path, []byte("redis: [not a map"), 0o644))

		cfg, err := Load(path)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	}

	{
		// negative burst fails validation
		path := filepath.Join(t.TempDir(), "emma.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ingest:\n  burst: -1\n"), 0o644))

		cfg, err := Load(path)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	}

	{
		// unparsable numeric env values are ignored, not fatal
		t.Setenv(common.EnvKeyRedisDB, "not-a-number")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Redis.DB)
	}
}
