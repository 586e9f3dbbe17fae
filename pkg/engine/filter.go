package engine

import (
	"strings"
	"time"

	"github.com/hieudt/replyflock/pkg/domain"
)

// ShouldSkip reports whether the candidate must be dropped before responding,
// with a short human-readable reason. The own-post check runs first, it is the
// cheapest and the most common hit.
func ShouldSkip(c domain.Candidate, acc domain.Account, settings domain.BotSettings, now time.Time) (string, bool) {
	if strings.EqualFold(c.Author, acc.Username) {
		return "own post", true
	}

	if limit := settings.TimeLimit(); limit > 0 && !c.Timestamp.IsZero() {
		if now.Sub(c.Timestamp) > limit {
			return "older than time limit", true
		}
	}

	if settings.SkipReplies && c.IsReply {
		return "is a reply", true
	}
	if settings.SkipRetweets && c.IsRetweet {
		return "is a repost", true
	}

	// view counts are only trusted when the source reports them
	if settings.MinViews > 0 && c.Views > 0 && c.Views < settings.MinViews {
		return "below minimum views", true
	}

	text := strings.ToLower(c.Text)
	for _, kw := range settings.FilterKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			return "matches filter keyword " + kw, true
		}
	}

	return "", false
}
