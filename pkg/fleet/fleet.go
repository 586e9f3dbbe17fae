// Package fleet orchestrates engines across accounts: one engine per started
// account, commands addressed by account id, and a single fanned-in event
// stream for all of them.
package fleet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/hieudt/replyflock/pkg/domain"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/factory.go -pkg mocks -skip-ensure -fmt goimports . EngineFactory
//go:generate moq -out mocks/accounts.go -pkg mocks -skip-ensure -fmt goimports . Accounts

// orchestration errors surfaced to callers
var (
	ErrNotFound       = errors.New("account not found")
	ErrAlreadyRunning = errors.New("account already running")
)

// Engine is one account's lifecycle driver
type Engine interface {
	Start(ctx context.Context) error
	Stop()
	Pause()
	Resume()
	UpdateSettings(s domain.BotSettings)
	Status() domain.Status
	Events() <-chan domain.Event
}

// EngineFactory builds an engine bound to an account's surface, responder
// and settings
type EngineFactory interface {
	Engine(ctx context.Context, acc domain.Account) (Engine, error)
}

// Accounts is the account lookup the fleet depends on
type Accounts interface {
	Get(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

type entry struct {
	eng  Engine
	stop chan struct{} // terminates the event forwarder after a final drain
}

// Fleet manages the set of live engines. Safe for concurrent use.
type Fleet struct {
	accounts Accounts
	factory  EngineFactory

	mu      sync.RWMutex
	engines map[string]*entry

	events chan domain.Event
	wg     sync.WaitGroup
}

// New creates an empty fleet
func New(accounts Accounts, factory EngineFactory, eventBuffer int) *Fleet {
	if eventBuffer <= 0 {
		eventBuffer = 256
	}
	return &Fleet{
		accounts: accounts,
		factory:  factory,
		engines:  make(map[string]*entry),
		events:   make(chan domain.Event, eventBuffer),
	}
}

// Events returns the combined event stream of all engines. Each event carries
// the originating account id. Oldest events are dropped when the consumer
// falls behind.
func (f *Fleet) Events() <-chan domain.Event { return f.events }

// Start builds and starts an engine for the account. ErrNotFound for an
// unknown account, ErrAlreadyRunning when an engine is already registered.
func (f *Fleet) Start(ctx context.Context, id string) error {
	acc, err := f.accounts.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %s (%v)", ErrNotFound, id, err)
	}

	f.mu.Lock()
	if _, ok := f.engines[id]; ok {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyRunning, id)
	}
	// reserve the slot before the blocking start so concurrent starts collide here
	f.engines[id] = nil
	f.mu.Unlock()

	release := func() {
		f.mu.Lock()
		delete(f.engines, id)
		f.mu.Unlock()
	}

	eng, err := f.factory.Engine(ctx, *acc)
	if err != nil {
		release()
		return fmt.Errorf("build engine for %s: %w", id, err)
	}
	if err := eng.Start(ctx); err != nil {
		release()
		return fmt.Errorf("start engine for %s: %w", id, err)
	}

	e := &entry{eng: eng, stop: make(chan struct{})}
	f.mu.Lock()
	f.engines[id] = e
	f.mu.Unlock()

	f.wg.Add(1)
	go f.forward(e)

	lgr.Printf("[INFO] fleet started account %s", id)
	return nil
}

// Stop tears down the account's engine and removes it. The engine waits for
// in-flight work up to its own shutdown timeout.
func (f *Fleet) Stop(id string) error {
	f.mu.Lock()
	e, ok := f.engines[id]
	if !ok || e == nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(f.engines, id)
	f.mu.Unlock()

	e.eng.Stop()
	close(e.stop)
	lgr.Printf("[INFO] fleet stopped account %s", id)
	return nil
}

// Pause passes through to the account's engine
func (f *Fleet) Pause(id string) error {
	e, err := f.lookup(id)
	if err != nil {
		return err
	}
	e.Pause()
	return nil
}

// Resume passes through to the account's engine
func (f *Fleet) Resume(id string) error {
	e, err := f.lookup(id)
	if err != nil {
		return err
	}
	e.Resume()
	return nil
}

// UpdateSettings applies new settings to the account's live engine. A stopped
// account is not an error, the settings take effect on the next start.
func (f *Fleet) UpdateSettings(id string, s domain.BotSettings) {
	e, err := f.lookup(id)
	if err != nil {
		return
	}
	e.UpdateSettings(s)
}

// Status reports the account's lifecycle state; accounts without a live
// engine are stopped
func (f *Fleet) Status(id string) domain.Status {
	e, err := f.lookup(id)
	if err != nil {
		return domain.StatusStopped
	}
	return e.Status()
}

// StartAll starts every known account, tolerating individual failures. The
// returned error aggregates the failures, the batch always completes.
func (f *Fleet) StartAll(ctx context.Context) error {
	accounts, err := f.accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	var mu sync.Mutex
	var errs []error
	var g errgroup.Group
	for _, acc := range accounts {
		g.Go(func() error {
			if err := f.Start(ctx, acc.ID); err != nil && !errors.Is(err, ErrAlreadyRunning) {
				lgr.Printf("[WARN] start %s failed: %v", acc.ID, err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors, failures are collected above
	return errors.Join(errs...)
}

// StopAll stops every live engine and waits for all of them
func (f *Fleet) StopAll() {
	f.mu.RLock()
	ids := make([]string, 0, len(f.engines))
	for id, e := range f.engines {
		if e != nil {
			ids = append(ids, id)
		}
	}
	f.mu.RUnlock()

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			if err := f.Stop(id); err != nil && !errors.Is(err, ErrNotFound) {
				lgr.Printf("[WARN] stop %s failed: %v", id, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Close stops all engines and shuts the combined event stream
func (f *Fleet) Close() {
	f.StopAll()
	f.wg.Wait()
	close(f.events)
}

func (f *Fleet) lookup(id string) (Engine, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	e, ok := f.engines[id]
	if !ok || e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.eng, nil
}

// forward relays one engine's events onto the combined stream until the
// engine is removed, then drains what is left buffered
func (f *Fleet) forward(e *entry) {
	defer f.wg.Done()
	for {
		select {
		case ev := <-e.eng.Events():
			f.publish(ev)
		case <-e.stop:
			for {
				select {
				case ev := <-e.eng.Events():
					f.publish(ev)
				default:
					return
				}
			}
		}
	}
}

// publish pushes onto the combined stream, dropping the oldest event when full
func (f *Fleet) publish(ev domain.Event) {
	for {
		select {
		case f.events <- ev:
			return
		default:
		}
		select {
		case <-f.events:
		default:
		}
	}
}
