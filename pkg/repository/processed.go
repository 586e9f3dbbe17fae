package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/hieudt/replyflock/pkg/domain"
)

// ProcessedRepository handles durable processed-candidate records
type ProcessedRepository struct {
	db *sqlx.DB
}

// processedSQL represents a processed record for SQL operations
type processedSQL struct {
	ID        int64     `db:"id"`
	AccountID string    `db:"account_id"`
	PostID    string    `db:"post_id"`
	Author    string    `db:"author"`
	URL       string    `db:"url"`
	ReplyText string    `db:"reply_text"`
	Liked     bool      `db:"liked"`
	Followed  bool      `db:"followed"`
	Retweeted bool      `db:"retweeted"`
	Status    string    `db:"status"`
	LatencyMs int64     `db:"latency_ms"`
	CharCount int       `db:"char_count"`
	CreatedAt time.Time `db:"created_at"`
}

// NewProcessedRepository creates a new processed-record repository
func NewProcessedRepository(db *sqlx.DB) *ProcessedRepository {
	return &ProcessedRepository{db: db}
}

// Upsert stores the outcome of one candidate. Re-processing the same
// (account, post) pair overwrites the existing row instead of creating a
// duplicate, which makes retries safe.
func (r *ProcessedRepository) Upsert(ctx context.Context, rec *domain.ProcessedRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO processed (
				account_id, post_id, author, url, reply_text,
				liked, followed, retweeted, status, latency_ms, char_count
			) VALUES (
				:account_id, :post_id, :author, :url, :reply_text,
				:liked, :followed, :retweeted, :status, :latency_ms, :char_count
			)
			ON CONFLICT (account_id, post_id) DO UPDATE SET
				author = excluded.author,
				url = excluded.url,
				reply_text = excluded.reply_text,
				liked = excluded.liked,
				followed = excluded.followed,
				retweeted = excluded.retweeted,
				status = excluded.status,
				latency_ms = excluded.latency_ms,
				char_count = excluded.char_count,
				created_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.NamedExecContext(ctx, query, &processedSQL{
			AccountID: rec.AccountID,
			PostID:    rec.PostID,
			Author:    rec.Author,
			URL:       rec.URL,
			ReplyText: rec.ReplyText,
			Liked:     rec.Liked,
			Followed:  rec.Followed,
			Retweeted: rec.Retweeted,
			Status:    rec.Status,
			LatencyMs: rec.LatencyMs,
			CharCount: rec.CharCount,
		})
		if err != nil && !isLockError(err) {
			return &criticalError{err: fmt.Errorf("upsert processed: %w", err)}
		}
		return err
	})
}

// Exists reports whether the account has already acted on the post
func (r *ProcessedRepository) Exists(ctx context.Context, accountID, postID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM processed WHERE account_id = ? AND post_id = ?", accountID, postID)
	if err != nil {
		return false, fmt.Errorf("check processed: %w", err)
	}
	return count > 0, nil
}

// List retrieves the most recent records for an account; an empty account id
// returns records across all accounts
func (r *ProcessedRepository) List(ctx context.Context, accountID string, limit int) ([]domain.ProcessedRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	query := "SELECT * FROM processed"
	args := []interface{}{}
	if accountID != "" {
		query += " WHERE account_id = ?"
		args = append(args, accountID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	var rows []processedSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list processed: %w", err)
	}

	records := make([]domain.ProcessedRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.ProcessedRecord{
			ID:        row.ID,
			AccountID: row.AccountID,
			PostID:    row.PostID,
			Author:    row.Author,
			URL:       row.URL,
			ReplyText: row.ReplyText,
			Liked:     row.Liked,
			Followed:  row.Followed,
			Retweeted: row.Retweeted,
			Status:    row.Status,
			LatencyMs: row.LatencyMs,
			CharCount: row.CharCount,
			CreatedAt: row.CreatedAt,
		}
	}
	return records, nil
}
