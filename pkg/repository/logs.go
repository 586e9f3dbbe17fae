package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hieudt/replyflock/pkg/domain"
)

// LogRepository handles the append-only audit trail
type LogRepository struct {
	db *sqlx.DB
}

// logSQL represents a log entry for SQL operations
type logSQL struct {
	ID        int64     `db:"id"`
	Ts        time.Time `db:"ts"`
	Level     string    `db:"level"`
	Category  string    `db:"category"`
	AccountID string    `db:"account_id"`
	Message   string    `db:"message"`
}

// LogFilter narrows a log query; zero values are ignored
type LogFilter struct {
	Level     string
	Category  string
	AccountID string
	Since     time.Time
	Limit     int
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sqlx.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Append stores one log entry
func (r *LogRepository) Append(ctx context.Context, e *domain.LogEntry) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO logs (ts, level, category, account_id, message) VALUES (?, ?, ?, ?, ?)",
		e.Time, e.Level, e.Category, e.AccountID, e.Message)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// List retrieves log entries matching the filter, most recent first
func (r *LogRepository) List(ctx context.Context, f LogFilter) ([]domain.LogEntry, error) {
	if f.Limit <= 0 {
		f.Limit = 1000
	}

	query := "SELECT * FROM logs WHERE 1=1"
	args := []interface{}{}
	if f.Level != "" {
		query += " AND level = ?"
		args = append(args, f.Level)
	}
	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if f.AccountID != "" {
		query += " AND account_id = ?"
		args = append(args, f.AccountID)
	}
	if !f.Since.IsZero() {
		query += " AND ts >= ?"
		args = append(args, f.Since)
	}
	query += " ORDER BY ts DESC LIMIT ?"
	args = append(args, f.Limit)

	var rows []logSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	entries := make([]domain.LogEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.LogEntry{
			Time:      row.Ts,
			Level:     row.Level,
			Category:  row.Category,
			AccountID: row.AccountID,
			Message:   row.Message,
		}
	}
	return entries, nil
}

// Clear removes all log entries
func (r *LogRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM logs"); err != nil {
		return fmt.Errorf("clear logs: %w", err)
	}
	return nil
}
