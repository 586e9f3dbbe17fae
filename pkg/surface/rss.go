// Package surface implements the built-in action surface backed by RSS/Atom
// feeds. It is read-only: candidates come from configurable feed URL templates
// and write actions either succeed as dry-run no-ops or are refused. Browser
// driven surfaces implement the same engine contract externally.
package surface

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
)

// ErrWriteUnsupported is returned for write actions when dry-run is off
var ErrWriteUnsupported = errors.New("write actions not supported by rss surface")

// RSS fetches candidates from RSS/Atom feeds and simulates write actions
type RSS struct {
	parser *gofeed.Parser
	cfg    config.SurfaceConfig

	mu       sync.Mutex
	sessions map[string]struct{} // account IDs with an active session
}

// NewRSS creates an RSS surface from its config
func NewRSS(cfg config.SurfaceConfig) *RSS {
	return &RSS{
		parser:   gofeed.NewParser(),
		cfg:      cfg,
		sessions: make(map[string]struct{}),
	}
}

// Login establishes a session for the account. The account must carry a
// credential reference, there is nothing to authenticate against otherwise.
func (s *RSS) Login(ctx context.Context, acc domain.Account) error {
	if acc.CredentialRef == "" {
		return fmt.Errorf("account %s has no credentials", acc.ID)
	}
	s.mu.Lock()
	s.sessions[acc.ID] = struct{}{}
	s.mu.Unlock()
	lgr.Printf("[INFO] session established for account %s (%s)", acc.ID, acc.Username)
	return nil
}

// CheckSession reports whether the account has an active session
func (s *RSS) CheckSession(ctx context.Context, acc domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[acc.ID]; !ok {
		return fmt.Errorf("no active session for account %s", acc.ID)
	}
	return nil
}

// FetchCandidates retrieves up to limit candidates for the account using the
// feed URLs matching the settings' mode
func (s *RSS) FetchCandidates(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error) {
	urls, err := s.feedURLs(acc, settings)
	if err != nil {
		return nil, err
	}

	var candidates []domain.Candidate
	for _, feedURL := range urls {
		items, err := s.fetch(ctx, feedURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
		}
		candidates = append(candidates, items...)
		if len(candidates) >= limit {
			break
		}
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// Reply posts a reply to the candidate, or records it in dry-run mode
func (s *RSS) Reply(ctx context.Context, acc domain.Account, c domain.Candidate, text string) error {
	return s.write(acc, "reply", c)
}

// Like marks the candidate as liked, or records it in dry-run mode
func (s *RSS) Like(ctx context.Context, acc domain.Account, c domain.Candidate) error {
	return s.write(acc, "like", c)
}

// Follow follows the candidate's author, or records it in dry-run mode
func (s *RSS) Follow(ctx context.Context, acc domain.Account, c domain.Candidate) error {
	return s.write(acc, "follow", c)
}

// Retweet reposts the candidate, or records it in dry-run mode
func (s *RSS) Retweet(ctx context.Context, acc domain.Account, c domain.Candidate) error {
	return s.write(acc, "retweet", c)
}

func (s *RSS) write(acc domain.Account, action string, c domain.Candidate) error {
	if !s.cfg.DryRun {
		return ErrWriteUnsupported
	}
	lgr.Printf("[INFO] dry-run %s by %s on %s (%s)", action, acc.Username, c.ID, c.Author)
	return nil
}

// feedURLs expands the mode's URL templates for the account
func (s *RSS) feedURLs(acc domain.Account, settings domain.BotSettings) ([]string, error) {
	expand := func(tmpl, key, val string) (string, error) {
		if tmpl == "" {
			return "", fmt.Errorf("no feed url configured for mode %s", settings.Mode)
		}
		return strings.ReplaceAll(tmpl, key, val), nil
	}

	switch settings.Mode {
	case domain.ModeFeed:
		u, err := expand(s.cfg.FeedURL, "{user}", acc.Username)
		if err != nil {
			return nil, err
		}
		return []string{u}, nil
	case domain.ModeComments:
		// comments on the account's own posts live on its user feed
		u, err := expand(s.cfg.UserURL, "{user}", acc.Username)
		if err != nil {
			return nil, err
		}
		return []string{u}, nil
	case domain.ModeUser:
		if len(settings.TargetUsers) == 0 {
			return nil, errors.New("user mode requires at least one target user")
		}
		urls := make([]string, 0, len(settings.TargetUsers))
		for _, target := range settings.TargetUsers {
			u, err := expand(s.cfg.UserURL, "{user}", target)
			if err != nil {
				return nil, err
			}
			urls = append(urls, u)
		}
		return urls, nil
	case domain.ModeTrending:
		// targets are search terms here; with none the template is used as-is
		// for a generic trending endpoint
		if len(settings.TargetUsers) == 0 {
			u, err := expand(s.cfg.SearchURL, "{query}", "")
			if err != nil {
				return nil, err
			}
			return []string{u}, nil
		}
		urls := make([]string, 0, len(settings.TargetUsers))
		for _, query := range settings.TargetUsers {
			u, err := expand(s.cfg.SearchURL, "{query}", query)
			if err != nil {
				return nil, err
			}
			urls = append(urls, u)
		}
		return urls, nil
	}
	return nil, fmt.Errorf("unknown mode %q", settings.Mode)
}

// fetch retrieves and converts a single feed
func (s *RSS) fetch(ctx context.Context, feedURL string) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		c := domain.Candidate{
			ID:     itemID(item),
			Author: itemAuthor(item),
			Text:   itemText(item),
			URL:    item.Link,
		}

		if item.PublishedParsed != nil {
			c.Timestamp = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			c.Timestamp = *item.UpdatedParsed
		}

		// nitter-style feeds prefix reposts and replies in the title
		if strings.HasPrefix(item.Title, "RT by ") {
			c.IsRetweet = true
		}
		if strings.HasPrefix(item.Title, "R to ") {
			c.IsReply = true
		}
		if len(item.Enclosures) > 0 {
			c.HasMedia = true
		}

		candidates = append(candidates, c)
	}
	return candidates, nil
}

func itemID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	return item.Link
}

func itemAuthor(item *gofeed.Item) string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return strings.TrimPrefix(item.DublinCoreExt.Creator[0], "@")
	}
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	return ""
}

func itemText(item *gofeed.Item) string {
	// strip the nitter repost/reply prefix so the text is the post itself
	title := item.Title
	for _, prefix := range []string{"RT by ", "R to "} {
		if strings.HasPrefix(title, prefix) {
			if idx := strings.Index(title, ": "); idx >= 0 {
				title = title[idx+2:]
			}
			break
		}
	}
	return title
}
