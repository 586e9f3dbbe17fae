package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieudt/replyflock/pkg/cache"
	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: tmpFile.Name(),
	}

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "replyflock-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	err = os.Setenv("DB_PATH", tmpDir)
	require.NoError(t, err)
	defer os.Unsetenv("DB_PATH")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)

	wd, err := os.Getwd()
	require.NoError(t, err)

	opts := Opts{
		Config: wd + "/testdata/test_config.yml",
	}

	go func() {
		if err := run(ctx, opts); err != nil && ctx.Err() == nil {
			serverErr <- err
		}
		close(serverErr)
	}()

	// wait for server to start
	time.Sleep(2 * time.Second)

	select {
	case err := <-serverErr:
		t.Fatalf("server failed to start: %v", err)
	default:
	}

	resp, err := http.Get("http://127.0.0.1:18766/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-serverErr:
		if err != nil {
			t.Logf("server stopped with error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestMakeCache(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		c, err := makeCache(config.CacheConfig{Backend: "memory", TTL: time.Minute, MaxEntries: 10})
		require.NoError(t, err)
		require.NotNil(t, c)

		c.Put(context.Background(), "fp", "cached reply")
		got, ok := c.Get(context.Background(), "fp")
		assert.True(t, ok)
		assert.Equal(t, "cached reply", got)
	})

	t.Run("redis backend unreachable", func(t *testing.T) {
		cfg := config.CacheConfig{Backend: "redis", TTL: time.Minute}
		cfg.Redis.Addr = "127.0.0.1:1" // nothing listens there
		_, err := makeCache(cfg)
		require.Error(t, err)
	})
}

func TestEngineFactory_NoAPIKeys(t *testing.T) {
	factory := &engineFactory{
		respCache: cache.NewMemory(time.Minute, 10),
		aiCfg:     config.AIConfig{OpenAIModel: "gpt-3.5-turbo", Timeout: time.Second},
	}

	_, err := factory.Engine(context.Background(), domain.Account{ID: "a1", Username: "keyless"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyless")
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "secret2")
	})
}
