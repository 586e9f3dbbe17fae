package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects the candidate source strategy for an engine
type Mode string

// candidate source strategies
const (
	ModeFeed     Mode = "feed"
	ModeUser     Mode = "user"
	ModeComments Mode = "comments"
	ModeTrending Mode = "trending"
)

// ParseMode converts a string to a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFeed:
		return ModeFeed, nil
	case ModeUser:
		return ModeUser, nil
	case ModeComments:
		return ModeComments, nil
	case ModeTrending:
		return ModeTrending, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Schedule defines the allowed days and time-of-day window for cycles
type Schedule struct {
	Enabled bool
	Start   string // "09:00"
	End     string // "17:00", may be before Start to wrap midnight
	Days    []time.Weekday
}

// HasDay reports whether the given weekday is in the active set
func (s Schedule) HasDay(d time.Weekday) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}

// DaysString serializes the weekday set as a comma separated list
func (s Schedule) DaysString() string {
	parts := make([]string, 0, len(s.Days))
	for _, d := range s.Days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

// ParseDays parses a comma separated weekday list, ignoring blanks
func ParseDays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}

// BotSettings holds per-account tunables, live-reloadable while an engine runs
type BotSettings struct {
	MaxReplies       int           // candidates fetched per cycle
	MinViews         int           // skip candidates below this view count when views are known
	Interval         time.Duration // scan interval between cycles
	ReplySpacing     time.Duration // minimum spacing between replies within a cycle
	SkipReplies      bool
	SkipRetweets     bool
	AutoLike         bool
	AutoFollow       bool
	AutoRetweet      bool
	TimeLimitHours   int // candidate age cutoff, hours part
	TimeLimitMinutes int // candidate age cutoff, minutes part
	Schedule         Schedule
	Mode             Mode
	TargetUsers      []string // user mode usernames, trending mode search terms
	FilterKeywords   []string // case-insensitive substring filters
	MinimizeWindow   bool
}

// TimeLimit returns the candidate age cutoff as a duration
func (s BotSettings) TimeLimit() time.Duration {
	return time.Duration(s.TimeLimitHours)*time.Hour + time.Duration(s.TimeLimitMinutes)*time.Minute
}

// DefaultSettings returns the out-of-the-box tunables for a new account
func DefaultSettings() BotSettings {
	return BotSettings{
		MaxReplies:     50,
		MinViews:       0,
		Interval:       30 * time.Second,
		ReplySpacing:   0,
		SkipReplies:    true,
		SkipRetweets:   true,
		AutoLike:       true,
		TimeLimitHours: 24,
		Schedule: Schedule{
			Enabled: false,
			Start:   "09:00",
			End:     "17:00",
			Days: []time.Weekday{
				time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			},
		},
		Mode: ModeFeed,
	}
}
