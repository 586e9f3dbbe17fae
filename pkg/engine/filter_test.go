package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hieudt/replyflock/pkg/domain"
)

func TestShouldSkip(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	acc := domain.Account{ID: "acc1", Username: "MyBot"}

	base := domain.Candidate{ID: "p1", Author: "alice", Text: "lovely weather today", Timestamp: now.Add(-time.Hour)}

	settings := domain.DefaultSettings()

	tbl := []struct {
		name     string
		candidate func() domain.Candidate
		settings func() domain.BotSettings
		skip     bool
	}{
		{
			name:      "fresh post from a stranger passes",
			candidate: func() domain.Candidate { return base },
			settings:  func() domain.BotSettings { return settings },
			skip:      false,
		},
		{
			name: "own post skipped case-insensitively",
			candidate: func() domain.Candidate {
				c := base
				c.Author = "mybot"
				return c
			},
			settings: func() domain.BotSettings { return settings },
			skip:     true,
		},
		{
			name: "older than time limit",
			candidate: func() domain.Candidate {
				c := base
				c.Timestamp = now.Add(-25 * time.Hour)
				return c
			},
			settings: func() domain.BotSettings { return settings },
			skip:     true,
		},
		{
			name: "zero timestamp bypasses the age check",
			candidate: func() domain.Candidate {
				c := base
				c.Timestamp = time.Time{}
				return c
			},
			settings: func() domain.BotSettings { return settings },
			skip:     false,
		},
		{
			name: "zero time limit disables the age check",
			candidate: func() domain.Candidate {
				c := base
				c.Timestamp = now.Add(-100 * 24 * time.Hour)
				return c
			},
			settings: func() domain.BotSettings {
				s := settings
				s.TimeLimitHours, s.TimeLimitMinutes = 0, 0
				return s
			},
			skip: false,
		},
		{
			name: "reply skipped when configured",
			candidate: func() domain.Candidate {
				c := base
				c.IsReply = true
				return c
			},
			settings: func() domain.BotSettings { return settings },
			skip:     true,
		},
		{
			name: "reply kept when skip-replies off",
			candidate: func() domain.Candidate {
				c := base
				c.IsReply = true
				return c
			},
			settings: func() domain.BotSettings {
				s := settings
				s.SkipReplies = false
				return s
			},
			skip: false,
		},
		{
			name: "repost skipped when configured",
			candidate: func() domain.Candidate {
				c := base
				c.IsRetweet = true
				return c
			},
			settings: func() domain.BotSettings { return settings },
			skip:     true,
		},
		{
			name: "below minimum views",
			candidate: func() domain.Candidate {
				c := base
				c.Views = 5
				return c
			},
			settings: func() domain.BotSettings {
				s := settings
				s.MinViews = 100
				return s
			},
			skip: true,
		},
		{
			name: "unknown view count ignores the minimum",
			candidate: func() domain.Candidate {
				c := base
				c.Views = 0
				return c
			},
			settings: func() domain.BotSettings {
				s := settings
				s.MinViews = 100
				return s
			},
			skip: false,
		},
		{
			name: "keyword match is case-insensitive substring",
			candidate: func() domain.Candidate {
				c := base
				c.Text = "get your CRYPTO gains now"
				return c
			},
			settings: func() domain.BotSettings {
				s := settings
				s.FilterKeywords = []string{"crypto", "nft"}
				return s
			},
			skip: true,
		},
		{
			name:      "no keyword match passes",
			candidate: func() domain.Candidate { return base },
			settings: func() domain.BotSettings {
				s := settings
				s.FilterKeywords = []string{"crypto"}
				return s
			},
			skip: false,
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			reason, skip := ShouldSkip(tt.candidate(), acc, tt.settings(), now)
			assert.Equal(t, tt.skip, skip, "reason: %s", reason)
			if skip {
				assert.NotEmpty(t, reason)
			}
		})
	}
}
