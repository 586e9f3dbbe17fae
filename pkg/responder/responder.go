// Package responder generates replies for candidate posts through a
// configurable AI provider, consulting the shared response cache first so that
// identical inputs never trigger duplicate provider calls.
package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/hieudt/replyflock/pkg/cache"
	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider

// ErrNoProviderConfigured is returned when the account carries no usable API key
var ErrNoProviderConfigured = errors.New("no AI provider configured")

// Provider is a single text-completion backend
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Responder produces replies for input text, cache first
type Responder struct {
	provider   Provider
	cache      cache.ResponseCache
	timeout    time.Duration
	replyLimit int
	sanitizer  *bluemonday.Policy
}

// New builds a responder for the account, selecting the account's preferred
// provider when its key is set and falling back to the other one otherwise
func New(ctx context.Context, acc domain.Account, respCache cache.ResponseCache, cfg config.AIConfig) (*Responder, error) {
	provider, err := selectProvider(ctx, acc, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithProvider(provider, respCache, cfg), nil
}

// NewWithProvider builds a responder around an explicit provider
func NewWithProvider(provider Provider, respCache cache.ResponseCache, cfg config.AIConfig) *Responder {
	return &Responder{
		provider:   provider,
		cache:      respCache,
		timeout:    cfg.Timeout,
		replyLimit: cfg.ReplyLimit,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func selectProvider(ctx context.Context, acc domain.Account, cfg config.AIConfig) (Provider, error) {
	ordered := []func() (Provider, error){
		func() (Provider, error) {
			if acc.GeminiKey == "" {
				return nil, nil
			}
			return NewGemini(ctx, acc.GeminiKey, cfg)
		},
		func() (Provider, error) {
			if acc.OpenAIKey == "" {
				return nil, nil
			}
			return NewOpenAI(acc.OpenAIKey, cfg), nil
		},
	}
	if !acc.UseGemini {
		ordered[0], ordered[1] = ordered[1], ordered[0]
	}

	for _, build := range ordered {
		p, err := build()
		if err != nil {
			return nil, fmt.Errorf("build provider: %w", err)
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, ErrNoProviderConfigured
}

// Generate returns a reply for the input text. A cache hit returns
// immediately without a provider call. A provider failure is logged and
// yields an empty reply, never an error - the caller decides whether to skip.
func (r *Responder) Generate(ctx context.Context, text string) (string, error) {
	if r.provider == nil {
		return "", ErrNoProviderConfigured
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	fp := cache.Fingerprint(text)
	if reply, ok := r.cache.Get(ctx, fp); ok {
		lgr.Printf("[DEBUG] response cache hit for %s", fp)
		return reply, nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.provider.Complete(reqCtx, r.buildPrompt(text))
	if err != nil {
		lgr.Printf("[WARN] provider %s failed: %v", r.provider.Name(), err)
		return "", nil
	}

	reply := r.postProcess(raw)
	if reply != "" {
		r.cache.Put(ctx, fp, reply)
	}
	return reply, nil
}

// buildPrompt wraps the sanitized post text in reply instructions
func (r *Responder) buildPrompt(text string) string {
	clean := strings.Join(strings.Fields(r.sanitizer.Sanitize(text)), " ")

	var sb strings.Builder
	sb.WriteString("Create a short response in the same language as the post:\n")
	sb.WriteString(fmt.Sprintf("Post: %q\n", clean))
	sb.WriteString("Requirements:\n")
	sb.WriteString(fmt.Sprintf("- Under %d characters\n", r.replyLimit))
	sb.WriteString("- Show empathy and friendliness\n")
	sb.WriteString("- No hashtags or emojis\n")
	sb.WriteString("- Simple, clear language matching the post's language\n")
	return sb.String()
}

// postProcess trims, collapses whitespace, strips a single pair of wrapping
// quotes and enforces the reply length limit
func (r *Responder) postProcess(raw string) string {
	reply := strings.Join(strings.Fields(raw), " ")
	if len(reply) >= 2 && reply[0] == '"' && reply[len(reply)-1] == '"' {
		reply = reply[1 : len(reply)-1]
		reply = strings.TrimSpace(reply)
	}

	runes := []rune(reply)
	if len(runes) > r.replyLimit {
		cut := r.replyLimit - 3
		if cut < 0 {
			cut = 0
		}
		reply = string(runes[:cut]) + "..."
	}
	return reply
}
