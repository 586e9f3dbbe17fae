package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/hieudt/replyflock/pkg/domain"
)

// StatsRepository handles aggregate per-account counters
type StatsRepository struct {
	db *sqlx.DB
}

// statsSQL represents account stats for SQL operations
type statsSQL struct {
	AccountID    string     `db:"account_id"`
	RepliesSent  int        `db:"replies_sent"`
	LikesGiven   int        `db:"likes_given"`
	FollowsMade  int        `db:"follows_made"`
	RetweetsMade int        `db:"retweets_made"`
	SuccessRate  float64    `db:"success_rate"`
	LastActivity *time.Time `db:"last_activity"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get retrieves stats for an account; a never-active account yields zero counters
func (r *StatsRepository) Get(ctx context.Context, accountID string) (domain.BotStats, error) {
	var row statsSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM account_stats WHERE account_id = ?", accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BotStats{AccountID: accountID}, nil
	}
	if err != nil {
		return domain.BotStats{}, fmt.Errorf("get stats: %w", err)
	}
	return domain.BotStats{
		AccountID:    row.AccountID,
		RepliesSent:  row.RepliesSent,
		LikesGiven:   row.LikesGiven,
		FollowsMade:  row.FollowsMade,
		RetweetsMade: row.RetweetsMade,
		SuccessRate:  row.SuccessRate,
		LastActivity: row.LastActivity,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// Apply re-derives the account's counters and success rate from the processed
// table and upserts them. Derived rather than folded in: re-processing a post
// overwrites its row, so adding deltas would double-count it.
func (r *StatsRepository) Apply(ctx context.Context, rec *domain.ProcessedRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO account_stats (
				account_id, replies_sent, likes_given, follows_made, retweets_made,
				success_rate, last_activity
			)
			SELECT account_id,
			       SUM(status = ?),
			       SUM(liked),
			       SUM(followed),
			       SUM(retweeted),
			       AVG(status = ?),
			       CURRENT_TIMESTAMP
			FROM processed
			WHERE account_id = ?
			GROUP BY account_id
			ON CONFLICT (account_id) DO UPDATE SET
				replies_sent = excluded.replies_sent,
				likes_given = excluded.likes_given,
				follows_made = excluded.follows_made,
				retweets_made = excluded.retweets_made,
				success_rate = excluded.success_rate,
				last_activity = CURRENT_TIMESTAMP,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.ExecContext(ctx, query, domain.RecordSuccess, domain.RecordSuccess, rec.AccountID)
		if err != nil && !isLockError(err) {
			return &criticalError{err: fmt.Errorf("apply stats: %w", err)}
		}
		return err
	})
}
