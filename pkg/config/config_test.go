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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:replyflock.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)

	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)

	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.OpenAIModel)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.GeminiModel)
	assert.InEpsilon(t, 0.7, cfg.AI.Temperature, 0.001)
	assert.Equal(t, 100, cfg.AI.MaxTokens)
	assert.Equal(t, 100, cfg.AI.ReplyLimit)

	assert.Equal(t, 2*time.Second, cfg.Engine.MinDelay)
	assert.Equal(t, 6*time.Second, cfg.Engine.MaxDelay)
	assert.Equal(t, 5*time.Second, cfg.Engine.ShutdownTimeout)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":8888"
  timeout: 15s
cache:
  backend: redis
  ttl: 10m
  max_entries: 500
  redis:
    addr: "redis:6379"
    db: 2
ai:
  openai_model: gpt-4o-mini
  gemini_model: gemini-2.0-flash
  temperature: 0.5
  max_tokens: 200
  timeout: 20s
  reply_limit: 140
engine:
  min_delay: 1s
  max_delay: 3s
  shutdown_timeout: 10s
surface:
  feed_url: "https://nitter.example.com/{user}/rss"
  dry_run: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAIModel)
	assert.Equal(t, 140, cfg.AI.ReplyLimit)
	assert.Equal(t, time.Second, cfg.Engine.MinDelay)
	assert.Equal(t, "https://nitter.example.com/{user}/rss", cfg.Surface.FeedURL)
	assert.True(t, cfg.Surface.DryRun)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_PASSWORD", "s3cret")
	path := writeConfig(t, `
cache:
  backend: redis
  redis:
    password: "${TEST_REDIS_PASSWORD}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Cache.Redis.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad cache backend",
			yaml: "cache:\n  backend: memcached\n",
			want: "cache.backend",
		},
		{
			name: "temperature out of range",
			yaml: "ai:\n  temperature: 3.0\n",
			want: "ai.temperature",
		},
		{
			name: "delay bounds inverted",
			yaml: "engine:\n  min_delay: 10s\n  max_delay: 2s\n",
			want: "max_delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
