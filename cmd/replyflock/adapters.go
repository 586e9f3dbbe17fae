package main

import (
	"context"
	"fmt"

	"github.com/hieudt/replyflock/pkg/cache"
	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
	"github.com/hieudt/replyflock/pkg/engine"
	"github.com/hieudt/replyflock/pkg/fleet"
	"github.com/hieudt/replyflock/pkg/repository"
	"github.com/hieudt/replyflock/pkg/responder"
)

// engineFactory builds one engine per started account, each with its own
// responder bound to the account's API keys
type engineFactory struct {
	surface   engine.Surface
	store     engine.Store
	respCache cache.ResponseCache
	aiCfg     config.AIConfig
	engCfg    config.EngineConfig
}

// Engine implements the fleet.EngineFactory interface
func (f *engineFactory) Engine(ctx context.Context, acc domain.Account) (fleet.Engine, error) {
	resp, err := responder.New(ctx, acc, f.respCache, f.aiCfg)
	if err != nil {
		return nil, fmt.Errorf("build responder for %s: %w", acc.Username, err)
	}
	return engine.New(acc, f.surface, resp, f.store, f.respCache, f.engCfg), nil
}

// engineStore adapts the repositories to the slice of persistence an engine
// needs during its cycles
type engineStore struct {
	repos *repository.Repositories
}

func (s *engineStore) Settings(ctx context.Context, accountID string) (domain.BotSettings, error) {
	return s.repos.Settings.Get(ctx, accountID)
}

func (s *engineStore) Exists(ctx context.Context, accountID, postID string) (bool, error) {
	return s.repos.Processed.Exists(ctx, accountID, postID)
}

func (s *engineStore) Upsert(ctx context.Context, rec *domain.ProcessedRecord) error {
	return s.repos.Processed.Upsert(ctx, rec)
}

func (s *engineStore) ApplyStats(ctx context.Context, rec *domain.ProcessedRecord) error {
	return s.repos.Stats.Apply(ctx, rec)
}

func (s *engineStore) AppendLog(ctx context.Context, e *domain.LogEntry) error {
	return s.repos.Logs.Append(ctx, e)
}

// dataStore adapts the repositories to the server's persistence interface
type dataStore struct {
	repos *repository.Repositories
}

func (s *dataStore) CreateAccount(ctx context.Context, acc *domain.Account) error {
	return s.repos.Account.Create(ctx, acc)
}

func (s *dataStore) UpdateAccount(ctx context.Context, acc *domain.Account) error {
	return s.repos.Account.Update(ctx, acc)
}

func (s *dataStore) DeleteAccount(ctx context.Context, id string) error {
	return s.repos.Account.Delete(ctx, id)
}

func (s *dataStore) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.repos.Account.Get(ctx, id)
}

func (s *dataStore) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repos.Account.List(ctx)
}

func (s *dataStore) GetSettings(ctx context.Context, accountID string) (domain.BotSettings, error) {
	return s.repos.Settings.Get(ctx, accountID)
}

func (s *dataStore) SaveSettings(ctx context.Context, accountID string, settings domain.BotSettings) error {
	return s.repos.Settings.Save(ctx, accountID, settings)
}

func (s *dataStore) GetStats(ctx context.Context, accountID string) (domain.BotStats, error) {
	return s.repos.Stats.Get(ctx, accountID)
}

func (s *dataStore) ListProcessed(ctx context.Context, accountID string, limit int) ([]domain.ProcessedRecord, error) {
	return s.repos.Processed.List(ctx, accountID, limit)
}

func (s *dataStore) ListLogs(ctx context.Context, f repository.LogFilter) ([]domain.LogEntry, error) {
	return s.repos.Logs.List(ctx, f)
}
