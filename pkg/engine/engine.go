// Package engine implements the per-account bot lifecycle: a state machine
// over stopped/running/paused, an interval scheduler gated by the account's
// schedule window, and the discover, filter, respond, record work cycle.
// One engine runs per active account, isolated on its own goroutine.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
)

//go:generate moq -out mocks/surface.go -pkg mocks -skip-ensure -fmt goimports . Surface
//go:generate moq -out mocks/responder.go -pkg mocks -skip-ensure -fmt goimports . Responder
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// engine errors surfaced to callers
var (
	ErrAlreadyRunning = errors.New("engine already running")
	ErrLoginFailed    = errors.New("login failed")
)

// Surface is the action surface the engine acts through. All calls may block
// and may fail; failures never crash the engine.
type Surface interface {
	Login(ctx context.Context, acc domain.Account) error
	CheckSession(ctx context.Context, acc domain.Account) error
	FetchCandidates(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error)
	Reply(ctx context.Context, acc domain.Account, c domain.Candidate, text string) error
	Like(ctx context.Context, acc domain.Account, c domain.Candidate) error
	Follow(ctx context.Context, acc domain.Account, c domain.Candidate) error
	Retweet(ctx context.Context, acc domain.Account, c domain.Candidate) error
}

// Responder generates a reply for a candidate's text
type Responder interface {
	Generate(ctx context.Context, text string) (string, error)
}

// Store is the persistence contract the engine depends on
type Store interface {
	Settings(ctx context.Context, accountID string) (domain.BotSettings, error)
	Exists(ctx context.Context, accountID, postID string) (bool, error)
	Upsert(ctx context.Context, rec *domain.ProcessedRecord) error
	ApplyStats(ctx context.Context, rec *domain.ProcessedRecord) error
	AppendLog(ctx context.Context, e *domain.LogEntry) error
}

// Cache is the slice of the response cache the engine itself touches
type Cache interface {
	Clear(ctx context.Context)
}

// Engine drives one account. All public methods are safe for concurrent use.
type Engine struct {
	account   domain.Account
	surface   Surface
	responder Responder
	store     Store
	cache     Cache
	cfg       config.EngineConfig

	mu       sync.Mutex
	status   domain.Status
	settings domain.BotSettings
	queue    []domain.Candidate
	seen     map[string]struct{} // post IDs handled or known-processed this run

	events chan domain.Event
	ctrl   chan struct{} // wakes the worker to re-sync its timer with state
	cancel context.CancelFunc
	done   chan struct{}

	now func() time.Time // test hook
}

// New creates a stopped engine for the account
func New(acc domain.Account, surface Surface, responder Responder, store Store, respCache Cache, cfg config.EngineConfig) *Engine {
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 128
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	return &Engine{
		account:   acc,
		surface:   surface,
		responder: responder,
		store:     store,
		cache:     respCache,
		cfg:       cfg,
		status:    domain.StatusStopped,
		settings:  domain.DefaultSettings(),
		seen:      make(map[string]struct{}),
		events:    make(chan domain.Event, cfg.EventBuffer),
		ctrl:      make(chan struct{}, 1),
		now:       time.Now,
	}
}

// Events returns the engine's event stream. Events are dropped oldest-first
// when the consumer falls behind, the stream never blocks a cycle.
func (e *Engine) Events() <-chan domain.Event { return e.events }

// Status returns the current lifecycle state
func (e *Engine) Status() domain.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Start transitions the engine from stopped to running. It reloads settings,
// verifies the session with a single re-login attempt, clears cycle state and
// arms the scheduler. The context covers the startup steps only, the worker
// outlives it. Returns ErrAlreadyRunning unless currently stopped.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != domain.StatusStopped {
		return ErrAlreadyRunning
	}

	settings, err := e.store.Settings(ctx, e.account.ID)
	if err != nil {
		return fmt.Errorf("load settings for %s: %w", e.account.ID, err)
	}
	e.settings = settings

	// stale responses from a previous run must not leak into this one
	e.cache.Clear(ctx)

	if err := e.surface.CheckSession(ctx, e.account); err != nil {
		lgr.Printf("[INFO] no live session for %s, attempting login: %v", e.account.ID, err)
		if err := e.surface.Login(ctx, e.account); err != nil {
			lgr.Printf("[WARN] login failed for %s: %v", e.account.ID, err)
			e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusLoginFailed})
			return fmt.Errorf("account %s: %w", e.account.ID, ErrLoginFailed)
		}
	}

	e.queue = nil
	e.seen = make(map[string]struct{})

	// ctx is only good for the synchronous part of start: callers hand in
	// request-scoped contexts that die when their request ends, the worker
	// must keep running until Stop cancels it
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.done = make(chan struct{})
	go e.run(runCtx)

	e.status = domain.StatusRunning
	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusRunning})
	lgr.Printf("[INFO] engine started for %s (%s), mode %s, interval %v",
		e.account.ID, e.account.Username, settings.Mode, settings.Interval)
	return nil
}

// Stop halts the engine and discards the pending queue. Idempotent and safe
// from any state; waits for the in-flight cycle up to the shutdown timeout.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.status == domain.StatusStopped {
		e.mu.Unlock()
		return
	}
	cancel, done := e.cancel, e.done
	e.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-time.After(e.cfg.ShutdownTimeout):
		lgr.Printf("[WARN] engine for %s did not stop within %v, abandoning worker", e.account.ID, e.cfg.ShutdownTimeout)
	}

	e.mu.Lock()
	e.status = domain.StatusStopped
	e.queue = nil
	e.mu.Unlock()

	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusStopped})
	lgr.Printf("[INFO] engine stopped for %s", e.account.ID)
}

// Pause halts the scheduler but keeps the queue. No-op unless running.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != domain.StatusRunning {
		lgr.Printf("[WARN] pause ignored for %s, engine is %s", e.account.ID, e.status)
		return
	}
	e.status = domain.StatusPaused
	e.poke()
	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusPaused})
	lgr.Printf("[INFO] engine paused for %s", e.account.ID)
}

// Resume re-arms the scheduler from current settings. No-op unless paused.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != domain.StatusPaused {
		lgr.Printf("[WARN] resume ignored for %s, engine is %s", e.account.ID, e.status)
		return
	}
	e.status = domain.StatusRunning
	e.poke()
	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusRunning})
	lgr.Printf("[INFO] engine resumed for %s", e.account.ID)
}

// UpdateSettings replaces the live settings. Always legal; when running, the
// interval timer is re-armed with the new period without a double fire.
func (e *Engine) UpdateSettings(s domain.BotSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s
	if e.status == domain.StatusRunning {
		e.poke()
	}
	lgr.Printf("[INFO] settings updated for %s, interval %v, mode %s", e.account.ID, s.Interval, s.Mode)
}

// poke wakes the worker without blocking; a pending wakeup already covers any
// number of coalesced state changes
func (e *Engine) poke() {
	select {
	case e.ctrl <- struct{}{}:
	default:
	}
}

// run owns the interval timer. Timer lifecycle commands arrive on the ctrl
// channel so the timer is never touched from two goroutines.
func (e *Engine) run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.currentSettings().Interval)
	defer ticker.Stop()

	// first cycle runs immediately on start
	e.cycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.ctrl:
			// re-sync the timer with state: a pause halts it, a resume or a
			// settings change re-arms it on the current interval
			if e.Status() == domain.StatusPaused {
				ticker.Stop()
				continue
			}
			ticker.Reset(e.currentSettings().Interval)
		case <-ticker.C:
			e.cycle(ctx)
		}
	}
}

// cycle runs one discover-filter-respond pass. Skipped when not running or
// outside the schedule window. A fetch failure skips the whole cycle, it is
// retried at the next tick.
func (e *Engine) cycle(ctx context.Context) {
	settings := e.currentSettings()
	if e.Status() != domain.StatusRunning {
		return
	}
	if !IsActive(settings.Schedule, e.now()) {
		lgr.Printf("[DEBUG] outside schedule window for %s, cycle skipped", e.account.ID)
		return
	}

	if e.queueLen() == 0 {
		candidates, err := e.surface.FetchCandidates(ctx, e.account, settings, settings.MaxReplies)
		if err != nil {
			e.audit(ctx, "WARN", "fetch", fmt.Sprintf("fetch candidates failed: %v", err))
			return
		}
		enqueued := 0
		for _, c := range candidates {
			if e.isSeen(c.ID) {
				continue
			}
			exists, err := e.store.Exists(ctx, e.account.ID, c.ID)
			if err != nil {
				lgr.Printf("[WARN] dedup lookup failed for %s/%s: %v", e.account.ID, c.ID, err)
				continue
			}
			if exists {
				e.markSeen(c.ID)
				continue
			}
			if reason, skip := ShouldSkip(c, e.account, settings, e.now()); skip {
				lgr.Printf("[DEBUG] skipping %s for %s: %s", c.ID, e.account.ID, reason)
				continue
			}
			e.enqueue(c)
			enqueued++
		}
		lgr.Printf("[DEBUG] cycle for %s: %d fetched, %d enqueued", e.account.ID, len(candidates), enqueued)
	}

	e.drain(ctx, settings)
}

// drain processes the queue until empty or the engine leaves running state.
// A pause keeps the remainder for the next cycle; a stop discards it.
func (e *Engine) drain(ctx context.Context, settings domain.BotSettings) {
	for {
		if ctx.Err() != nil || e.Status() != domain.StatusRunning {
			return
		}
		c, ok := e.dequeue()
		if !ok {
			return
		}
		e.process(ctx, c, settings)

		if e.queueLen() == 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(e.interItemDelay(settings)):
		}
	}
}

// process runs the response-and-act pipeline for one candidate. Failures are
// contained: a provider or surface error never aborts the cycle.
func (e *Engine) process(ctx context.Context, c domain.Candidate, settings domain.BotSettings) {
	started := e.now()

	reply, err := e.responder.Generate(ctx, c.Text)
	if err != nil {
		e.audit(ctx, "ERROR", "respond", fmt.Sprintf("generate for %s failed: %v", c.ID, err))
		return
	}
	if reply == "" {
		// no dedup mark, the candidate may succeed on a later cycle
		lgr.Printf("[DEBUG] empty reply for %s, candidate %s left for retry", e.account.ID, c.ID)
		return
	}

	rec := &domain.ProcessedRecord{
		AccountID: e.account.ID,
		PostID:    c.ID,
		Author:    c.Author,
		URL:       c.URL,
		ReplyText: reply,
		Status:    domain.RecordSuccess,
		LatencyMs: e.now().Sub(started).Milliseconds(),
		CharCount: len([]rune(reply)),
	}

	if err := e.surface.Reply(ctx, e.account, c, reply); err != nil {
		lgr.Printf("[WARN] reply to %s failed for %s: %v", c.ID, e.account.ID, err)
		rec.Status = domain.RecordFailed
	} else {
		if settings.AutoLike {
			if err := e.surface.Like(ctx, e.account, c); err != nil {
				lgr.Printf("[WARN] like %s failed for %s: %v", c.ID, e.account.ID, err)
			} else {
				rec.Liked = true
			}
		}
		if settings.AutoFollow {
			if err := e.surface.Follow(ctx, e.account, c); err != nil {
				lgr.Printf("[WARN] follow %s failed for %s: %v", c.Author, e.account.ID, err)
			} else {
				rec.Followed = true
			}
		}
		if settings.AutoRetweet {
			if err := e.surface.Retweet(ctx, e.account, c); err != nil {
				lgr.Printf("[WARN] retweet %s failed for %s: %v", c.ID, e.account.ID, err)
			} else {
				rec.Retweeted = true
			}
		}
	}

	e.markSeen(c.ID)

	// persistence failures are logged, never abort the cycle
	if err := e.store.Upsert(ctx, rec); err != nil {
		lgr.Printf("[WARN] persist record for %s/%s failed: %v", e.account.ID, c.ID, err)
	}
	if err := e.store.ApplyStats(ctx, rec); err != nil {
		lgr.Printf("[WARN] update stats for %s failed: %v", e.account.ID, err)
	}
	e.audit(ctx, "INFO", "respond", fmt.Sprintf("%s %s by %s (%d chars, %dms)",
		rec.Status, c.ID, c.Author, rec.CharCount, rec.LatencyMs))
	e.emit(domain.Event{Type: domain.EventProcessed, Record: rec})
}

// interItemDelay returns a randomized delay within the configured bounds plus
// the account's reply spacing
func (e *Engine) interItemDelay(settings domain.BotSettings) time.Duration {
	d := e.cfg.MinDelay
	if spread := e.cfg.MaxDelay - e.cfg.MinDelay; spread > 0 {
		d += time.Duration(rand.Int63n(int64(spread))) //nolint:gosec // jitter, not crypto
	}
	return d + settings.ReplySpacing
}

// audit writes one line to the persistent log sink and the event stream
func (e *Engine) audit(ctx context.Context, level, category, msg string) {
	lgr.Printf("[%s] %s %s: %s", level, e.account.ID, category, msg)
	entry := &domain.LogEntry{
		Time:      e.now(),
		Level:     level,
		Category:  category,
		AccountID: e.account.ID,
		Message:   msg,
	}
	if err := e.store.AppendLog(ctx, entry); err != nil {
		lgr.Printf("[WARN] append log for %s failed: %v", e.account.ID, err)
	}
	e.emit(domain.Event{Type: domain.EventLog, Log: entry})
}

// emit publishes an event, dropping the oldest one when the buffer is full
func (e *Engine) emit(ev domain.Event) {
	ev.AccountID = e.account.ID
	if ev.Time.IsZero() {
		ev.Time = e.now()
	}
	for {
		select {
		case e.events <- ev:
			return
		default:
		}
		select {
		case <-e.events:
		default:
		}
	}
}

func (e *Engine) currentSettings() domain.BotSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

func (e *Engine) queueLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

func (e *Engine) enqueue(c domain.Candidate) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue = append(e.queue, c)
}

func (e *Engine) dequeue() (domain.Candidate, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return domain.Candidate{}, false
	}
	c := e.queue[0]
	e.queue = e.queue[1:]
	return c, true
}

func (e *Engine) isSeen(postID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.seen[postID]
	return ok
}

func (e *Engine) markSeen(postID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen[postID] = struct{}{}
}
