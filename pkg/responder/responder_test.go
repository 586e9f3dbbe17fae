package responder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieudt/replyflock/pkg/cache"
	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
	"github.com/hieudt/replyflock/pkg/responder/mocks"
)

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		OpenAIModel: "gpt-3.5-turbo",
		GeminiModel: "gemini-1.5-pro",
		Temperature: 0.7,
		MaxTokens:   100,
		Timeout:     5 * time.Second,
		ReplyLimit:  100,
	}
}

func TestResponder_Generate(t *testing.T) {
	t.Run("provider output post-processed and cached", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return `"That sounds wonderful!"`, nil
			},
		}
		respCache := cache.NewMemory(time.Minute, 10)
		r := NewWithProvider(provider, respCache, testAIConfig())

		reply, err := r.Generate(context.Background(), "just got a new puppy")
		require.NoError(t, err)
		assert.Equal(t, "That sounds wonderful!", reply, "wrapping quotes stripped")
		assert.Equal(t, 1, len(provider.CompleteCalls()))

		cached, ok := respCache.Get(context.Background(), cache.Fingerprint("just got a new puppy"))
		assert.True(t, ok)
		assert.Equal(t, "That sounds wonderful!", cached)
	})

	t.Run("cache hit skips provider", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "fresh reply", nil
			},
		}
		respCache := cache.NewMemory(time.Minute, 10)
		respCache.Put(context.Background(), cache.Fingerprint("hello there"), "canned reply")
		r := NewWithProvider(provider, respCache, testAIConfig())

		reply, err := r.Generate(context.Background(), "hello there")
		require.NoError(t, err)
		assert.Equal(t, "canned reply", reply)
		assert.Equal(t, 0, len(provider.CompleteCalls()), "provider must not be called on cache hit")
	})

	t.Run("normalized variants share a cache entry", func(t *testing.T) {
		calls := 0
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				calls++
				return "reply", nil
			},
		}
		respCache := cache.NewMemory(time.Minute, 10)
		r := NewWithProvider(provider, respCache, testAIConfig())

		_, err := r.Generate(context.Background(), "Good   Morning Everyone")
		require.NoError(t, err)
		_, err = r.Generate(context.Background(), "good morning everyone")
		require.NoError(t, err)
		assert.Equal(t, 1, calls, "case and whitespace variants hit the same entry")
	})

	t.Run("provider failure yields empty reply without error", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("rate limited")
			},
		}
		respCache := cache.NewMemory(time.Minute, 10)
		r := NewWithProvider(provider, respCache, testAIConfig())

		reply, err := r.Generate(context.Background(), "some post")
		require.NoError(t, err)
		assert.Empty(t, reply)

		_, ok := respCache.Get(context.Background(), cache.Fingerprint("some post"))
		assert.False(t, ok, "failures are not cached")
	})

	t.Run("empty provider output not cached", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "   ", nil
			},
		}
		respCache := cache.NewMemory(time.Minute, 10)
		r := NewWithProvider(provider, respCache, testAIConfig())

		reply, err := r.Generate(context.Background(), "some post")
		require.NoError(t, err)
		assert.Empty(t, reply)

		_, ok := respCache.Get(context.Background(), cache.Fingerprint("some post"))
		assert.False(t, ok)
	})

	t.Run("blank input short-circuits", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "reply", nil
			},
		}
		r := NewWithProvider(provider, cache.NewMemory(time.Minute, 10), testAIConfig())

		reply, err := r.Generate(context.Background(), "  \n ")
		require.NoError(t, err)
		assert.Empty(t, reply)
		assert.Equal(t, 0, len(provider.CompleteCalls()))
	})

	t.Run("nil provider returns error", func(t *testing.T) {
		r := NewWithProvider(nil, cache.NewMemory(time.Minute, 10), testAIConfig())
		_, err := r.Generate(context.Background(), "some post")
		assert.ErrorIs(t, err, ErrNoProviderConfigured)
	})

	t.Run("long reply truncated with ellipsis", func(t *testing.T) {
		provider := &mocks.ProviderMock{
			NameFunc: func() string { return "test" },
			CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
				return strings.Repeat("a", 250), nil
			},
		}
		r := NewWithProvider(provider, cache.NewMemory(time.Minute, 10), testAIConfig())

		reply, err := r.Generate(context.Background(), "some post")
		require.NoError(t, err)
		assert.Len(t, []rune(reply), 100)
		assert.True(t, strings.HasSuffix(reply, "..."))
	})
}

func TestResponder_postProcess(t *testing.T) {
	r := NewWithProvider(nil, cache.NewMemory(time.Minute, 10), testAIConfig())

	tbl := []struct {
		name string
		in   string
		out  string
	}{
		{"plain", "hello world", "hello world"},
		{"wrapping quotes", `"hello world"`, "hello world"},
		{"inner quotes kept", `say "hi" now`, `say "hi" now`},
		{"whitespace collapsed", "a \n  b\tc", "a b c"},
		{"quotes then spaces", `" padded "`, "padded"},
		{"lone quote", `"`, `"`},
		{"empty", "", ""},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, r.postProcess(tt.in))
		})
	}
}

func TestResponder_buildPrompt(t *testing.T) {
	r := NewWithProvider(nil, cache.NewMemory(time.Minute, 10), testAIConfig())

	prompt := r.buildPrompt("check this <script>alert(1)</script> out")
	assert.Contains(t, prompt, "check this")
	assert.Contains(t, prompt, "out")
	assert.NotContains(t, prompt, "<script>")
	assert.Contains(t, prompt, "Under 100 characters")
}

func TestSelectProvider(t *testing.T) {
	cfg := testAIConfig()
	ctx := context.Background()

	t.Run("no keys", func(t *testing.T) {
		_, err := New(ctx, domain.Account{}, cache.NewMemory(time.Minute, 10), cfg)
		assert.ErrorIs(t, err, ErrNoProviderConfigured)
	})

	t.Run("openai only", func(t *testing.T) {
		r, err := New(ctx, domain.Account{OpenAIKey: "sk-test"}, cache.NewMemory(time.Minute, 10), cfg)
		require.NoError(t, err)
		assert.Equal(t, "openai", r.provider.Name())
	})

	t.Run("prefers openai when gemini not requested", func(t *testing.T) {
		acc := domain.Account{OpenAIKey: "sk-test", GeminiKey: "g-test", UseGemini: false}
		r, err := New(ctx, acc, cache.NewMemory(time.Minute, 10), cfg)
		require.NoError(t, err)
		assert.Equal(t, "openai", r.provider.Name())
	})
}
