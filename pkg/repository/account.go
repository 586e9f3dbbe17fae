package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hieudt/replyflock/pkg/domain"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// AccountRepository handles account-related database operations
type AccountRepository struct {
	db *sqlx.DB
}

// accountSQL represents an account for SQL operations
type accountSQL struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Username      string    `db:"username"`
	CredentialRef string    `db:"credential_ref"`
	UseGemini     bool      `db:"use_gemini"`
	GeminiKey     string    `db:"gemini_key"`
	OpenAIKey     string    `db:"openai_key"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account, generating an id when none is supplied
func (r *AccountRepository) Create(ctx context.Context, acc *domain.Account) error {
	if acc.ID == "" {
		id, err := newAccountID()
		if err != nil {
			return fmt.Errorf("generate account id: %w", err)
		}
		acc.ID = id
	}

	query := `
		INSERT INTO accounts (id, name, username, credential_ref, use_gemini, gemini_key, openai_key)
		VALUES (:id, :name, :username, :credential_ref, :use_gemini, :gemini_key, :openai_key)
	`
	_, err := r.db.NamedExecContext(ctx, query, &accountSQL{
		ID:            acc.ID,
		Name:          acc.Name,
		Username:      acc.Username,
		CredentialRef: acc.CredentialRef,
		UseGemini:     acc.UseGemini,
		GeminiKey:     acc.GeminiKey,
		OpenAIKey:     acc.OpenAIKey,
	})
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Update modifies an existing account
func (r *AccountRepository) Update(ctx context.Context, acc *domain.Account) error {
	query := `
		UPDATE accounts
		SET name = :name, username = :username, credential_ref = :credential_ref,
		    use_gemini = :use_gemini, gemini_key = :gemini_key, openai_key = :openai_key,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, &accountSQL{
		ID:            acc.ID,
		Name:          acc.Name,
		Username:      acc.Username,
		CredentialRef: acc.CredentialRef,
		UseGemini:     acc.UseGemini,
		GeminiKey:     acc.GeminiKey,
		OpenAIKey:     acc.OpenAIKey,
	})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an account; settings, records and stats cascade
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Get retrieves an account by id
func (r *AccountRepository) Get(ctx context.Context, id string) (*domain.Account, error) {
	var row accountSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM accounts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return toDomainAccount(&row), nil
}

// List retrieves all accounts ordered by name
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	var rows []accountSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM accounts ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	accounts := make([]*domain.Account, len(rows))
	for i, row := range rows {
		accounts[i] = toDomainAccount(&row)
	}
	return accounts, nil
}

func toDomainAccount(row *accountSQL) *domain.Account {
	return &domain.Account{
		ID:            row.ID,
		Name:          row.Name,
		Username:      row.Username,
		CredentialRef: row.CredentialRef,
		UseGemini:     row.UseGemini,
		GeminiKey:     row.GeminiKey,
		OpenAIKey:     row.OpenAIKey,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// newAccountID generates an opaque 16-char hex identifier
func newAccountID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
