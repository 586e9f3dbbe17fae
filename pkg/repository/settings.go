package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hieudt/replyflock/pkg/domain"
)

// SettingsRepository handles per-account bot settings
type SettingsRepository struct {
	db *sqlx.DB
}

// settingsSQL represents bot settings for SQL operations
type settingsSQL struct {
	AccountID        string `db:"account_id"`
	MaxReplies       int    `db:"max_replies"`
	MinViews         int    `db:"min_views"`
	IntervalSeconds  int    `db:"interval_seconds"`
	ReplySpacingSecs int    `db:"reply_spacing_seconds"`
	SkipReplies      bool   `db:"skip_replies"`
	SkipRetweets     bool   `db:"skip_retweets"`
	AutoLike         bool   `db:"auto_like"`
	AutoFollow       bool   `db:"auto_follow"`
	AutoRetweet      bool   `db:"auto_retweet"`
	TimeLimitHours   int    `db:"time_limit_hours"`
	TimeLimitMinutes int    `db:"time_limit_minutes"`
	ScheduleEnabled  bool   `db:"schedule_enabled"`
	ScheduleStart    string `db:"schedule_start"`
	ScheduleEnd      string `db:"schedule_end"`
	ScheduleDays     string `db:"schedule_days"`
	Mode             string `db:"mode"`
	TargetUsers      string `db:"target_users"`
	FilterKeywords   string `db:"filter_keywords"`
	MinimizeWindow   bool   `db:"minimize_window"`
	UpdatedAt        string `db:"updated_at"`
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves settings for an account, falling back to defaults when the
// account has never been configured
func (r *SettingsRepository) Get(ctx context.Context, accountID string) (domain.BotSettings, error) {
	var row settingsSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM bot_settings WHERE account_id = ?", accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.BotSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return toDomainSettings(&row)
}

// Save upserts settings for an account
func (r *SettingsRepository) Save(ctx context.Context, accountID string, s domain.BotSettings) error {
	row := &settingsSQL{
		AccountID:        accountID,
		MaxReplies:       s.MaxReplies,
		MinViews:         s.MinViews,
		IntervalSeconds:  int(s.Interval / time.Second),
		ReplySpacingSecs: int(s.ReplySpacing / time.Second),
		SkipReplies:      s.SkipReplies,
		SkipRetweets:     s.SkipRetweets,
		AutoLike:         s.AutoLike,
		AutoFollow:       s.AutoFollow,
		AutoRetweet:      s.AutoRetweet,
		TimeLimitHours:   s.TimeLimitHours,
		TimeLimitMinutes: s.TimeLimitMinutes,
		ScheduleEnabled:  s.Schedule.Enabled,
		ScheduleStart:    s.Schedule.Start,
		ScheduleEnd:      s.Schedule.End,
		ScheduleDays:     s.Schedule.DaysString(),
		Mode:             string(s.Mode),
		TargetUsers:      strings.Join(s.TargetUsers, ","),
		FilterKeywords:   strings.Join(s.FilterKeywords, ","),
		MinimizeWindow:   s.MinimizeWindow,
	}

	query := `
		INSERT INTO bot_settings (
			account_id, max_replies, min_views, interval_seconds, reply_spacing_seconds,
			skip_replies, skip_retweets, auto_like, auto_follow, auto_retweet,
			time_limit_hours, time_limit_minutes, schedule_enabled, schedule_start,
			schedule_end, schedule_days, mode, target_users, filter_keywords, minimize_window
		) VALUES (
			:account_id, :max_replies, :min_views, :interval_seconds, :reply_spacing_seconds,
			:skip_replies, :skip_retweets, :auto_like, :auto_follow, :auto_retweet,
			:time_limit_hours, :time_limit_minutes, :schedule_enabled, :schedule_start,
			:schedule_end, :schedule_days, :mode, :target_users, :filter_keywords, :minimize_window
		)
		ON CONFLICT (account_id) DO UPDATE SET
			max_replies = excluded.max_replies,
			min_views = excluded.min_views,
			interval_seconds = excluded.interval_seconds,
			reply_spacing_seconds = excluded.reply_spacing_seconds,
			skip_replies = excluded.skip_replies,
			skip_retweets = excluded.skip_retweets,
			auto_like = excluded.auto_like,
			auto_follow = excluded.auto_follow,
			auto_retweet = excluded.auto_retweet,
			time_limit_hours = excluded.time_limit_hours,
			time_limit_minutes = excluded.time_limit_minutes,
			schedule_enabled = excluded.schedule_enabled,
			schedule_start = excluded.schedule_start,
			schedule_end = excluded.schedule_end,
			schedule_days = excluded.schedule_days,
			mode = excluded.mode,
			target_users = excluded.target_users,
			filter_keywords = excluded.filter_keywords,
			minimize_window = excluded.minimize_window,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func toDomainSettings(row *settingsSQL) (domain.BotSettings, error) {
	mode, err := domain.ParseMode(row.Mode)
	if err != nil {
		return domain.BotSettings{}, fmt.Errorf("stored settings: %w", err)
	}
	days, err := domain.ParseDays(row.ScheduleDays)
	if err != nil {
		return domain.BotSettings{}, fmt.Errorf("stored settings: %w", err)
	}

	return domain.BotSettings{
		MaxReplies:       row.MaxReplies,
		MinViews:         row.MinViews,
		Interval:         time.Duration(row.IntervalSeconds) * time.Second,
		ReplySpacing:     time.Duration(row.ReplySpacingSecs) * time.Second,
		SkipReplies:      row.SkipReplies,
		SkipRetweets:     row.SkipRetweets,
		AutoLike:         row.AutoLike,
		AutoFollow:       row.AutoFollow,
		AutoRetweet:      row.AutoRetweet,
		TimeLimitHours:   row.TimeLimitHours,
		TimeLimitMinutes: row.TimeLimitMinutes,
		Schedule: domain.Schedule{
			Enabled: row.ScheduleEnabled,
			Start:   row.ScheduleStart,
			End:     row.ScheduleEnd,
			Days:    days,
		},
		Mode:           mode,
		TargetUsers:    splitList(row.TargetUsers),
		FilterKeywords: splitList(row.FilterKeywords),
		MinimizeWindow: row.MinimizeWindow,
	}, nil
}

// splitList splits a comma separated list, dropping empty elements
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
