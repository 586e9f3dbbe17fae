package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieudt/replyflock/pkg/config"
	"github.com/hieudt/replyflock/pkg/domain"
	"github.com/hieudt/replyflock/pkg/engine/mocks"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		MinDelay:        time.Millisecond,
		MaxDelay:        2 * time.Millisecond,
		ShutdownTimeout: time.Second,
		EventBuffer:     64,
	}
}

func testAccount() domain.Account {
	return domain.Account{ID: "acc1", Name: "Test", Username: "testuser", CredentialRef: "vault://acc1"}
}

// quietSettings keeps the interval long enough that only the immediate
// first cycle runs during a test
func quietSettings() domain.BotSettings {
	s := domain.DefaultSettings()
	s.Interval = time.Hour
	return s
}

// busySettings ticks fast enough for timing assertions on the scheduler
func busySettings(interval time.Duration) domain.BotSettings {
	s := domain.DefaultSettings()
	s.Interval = interval
	return s
}

func okSurface() *mocks.SurfaceMock {
	return &mocks.SurfaceMock{
		CheckSessionFunc: func(ctx context.Context, acc domain.Account) error { return nil },
		LoginFunc:        func(ctx context.Context, acc domain.Account) error { return nil },
		FetchCandidatesFunc: func(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error) {
			return nil, nil
		},
		ReplyFunc:   func(ctx context.Context, acc domain.Account, c domain.Candidate, text string) error { return nil },
		LikeFunc:    func(ctx context.Context, acc domain.Account, c domain.Candidate) error { return nil },
		FollowFunc:  func(ctx context.Context, acc domain.Account, c domain.Candidate) error { return nil },
		RetweetFunc: func(ctx context.Context, acc domain.Account, c domain.Candidate) error { return nil },
	}
}

func okStore(settings domain.BotSettings) *mocks.StoreMock {
	return &mocks.StoreMock{
		SettingsFunc:   func(ctx context.Context, accountID string) (domain.BotSettings, error) { return settings, nil },
		ExistsFunc:     func(ctx context.Context, accountID, postID string) (bool, error) { return false, nil },
		UpsertFunc:     func(ctx context.Context, rec *domain.ProcessedRecord) error { return nil },
		ApplyStatsFunc: func(ctx context.Context, rec *domain.ProcessedRecord) error { return nil },
		AppendLogFunc:  func(ctx context.Context, e *domain.LogEntry) error { return nil },
	}
}

func okResponder(reply string) *mocks.ResponderMock {
	return &mocks.ResponderMock{
		GenerateFunc: func(ctx context.Context, text string) (string, error) { return reply, nil },
	}
}

func okCache() *mocks.CacheMock {
	return &mocks.CacheMock{ClearFunc: func(ctx context.Context) {}}
}

// drainEvents collects everything currently buffered on the event stream
func drainEvents(e *Engine) []domain.Event {
	var events []domain.Event
	for {
		select {
		case ev := <-e.Events():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func statusEvents(events []domain.Event) []domain.Status {
	var out []domain.Status
	for _, ev := range events {
		if ev.Type == domain.EventStatus {
			out = append(out, ev.Status)
		}
	}
	return out
}

func TestEngine_StartStop(t *testing.T) {
	surface := okSurface()
	store := okStore(quietSettings())
	respCache := okCache()
	e := New(testAccount(), surface, okResponder("hi"), store, respCache, testEngineConfig())

	require.NoError(t, e.Start(context.Background()))
	assert.Equal(t, domain.StatusRunning, e.Status())
	assert.Equal(t, 1, len(respCache.ClearCalls()), "cache cleared on start")

	// second start is rejected
	assert.ErrorIs(t, e.Start(context.Background()), ErrAlreadyRunning)

	e.Stop()
	assert.Equal(t, domain.StatusStopped, e.Status())

	// second stop is a no-op, never panics
	e.Stop()
	assert.Equal(t, domain.StatusStopped, e.Status())

	statuses := statusEvents(drainEvents(e))
	assert.Equal(t, []domain.Status{domain.StatusRunning, domain.StatusStopped}, statuses)
}

func TestEngine_StartLoginFailed(t *testing.T) {
	surface := okSurface()
	surface.CheckSessionFunc = func(ctx context.Context, acc domain.Account) error { return errors.New("expired") }
	surface.LoginFunc = func(ctx context.Context, acc domain.Account) error { return errors.New("bad credentials") }

	e := New(testAccount(), surface, okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())

	err := e.Start(context.Background())
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.Equal(t, domain.StatusStopped, e.Status(), "failed login lands back in stopped")
	assert.Equal(t, 1, len(surface.LoginCalls()), "exactly one re-auth attempt")

	statuses := statusEvents(drainEvents(e))
	assert.Equal(t, []domain.Status{domain.StatusLoginFailed}, statuses)
}

func TestEngine_StartReauthenticates(t *testing.T) {
	surface := okSurface()
	surface.CheckSessionFunc = func(ctx context.Context, acc domain.Account) error { return errors.New("expired") }

	e := New(testAccount(), surface, okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())
	defer e.Stop()

	require.NoError(t, e.Start(context.Background()))
	assert.Equal(t, domain.StatusRunning, e.Status())
	assert.Equal(t, 1, len(surface.LoginCalls()))
}

func TestEngine_StartSettingsError(t *testing.T) {
	store := okStore(quietSettings())
	store.SettingsFunc = func(ctx context.Context, accountID string) (domain.BotSettings, error) {
		return domain.BotSettings{}, errors.New("db gone")
	}

	e := New(testAccount(), okSurface(), okResponder("hi"), store, okCache(), testEngineConfig())
	assert.Error(t, e.Start(context.Background()))
	assert.Equal(t, domain.StatusStopped, e.Status())
}

func TestEngine_StartSurvivesCallerContextCancel(t *testing.T) {
	surface := okSurface()
	e := New(testAccount(), surface, okResponder("hi"), okStore(busySettings(20*time.Millisecond)), okCache(), testEngineConfig())
	defer e.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, e.Start(ctx))
	cancel() // an HTTP caller's request context dies right after start returns

	assert.Eventually(t, func() bool {
		return len(surface.FetchCandidatesCalls()) >= 3
	}, 2*time.Second, 5*time.Millisecond, "cycles keep firing after the start context is gone")
	assert.Equal(t, domain.StatusRunning, e.Status())
}

func TestEngine_PauseResume(t *testing.T) {
	e := New(testAccount(), okSurface(), okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())
	defer e.Stop()

	// invalid from stopped
	e.Pause()
	assert.Equal(t, domain.StatusStopped, e.Status())
	e.Resume()
	assert.Equal(t, domain.StatusStopped, e.Status())

	require.NoError(t, e.Start(context.Background()))

	e.Pause()
	assert.Equal(t, domain.StatusPaused, e.Status())
	e.Pause() // no-op from paused
	assert.Equal(t, domain.StatusPaused, e.Status())

	e.Resume()
	assert.Equal(t, domain.StatusRunning, e.Status())
	e.Resume() // no-op from running
	assert.Equal(t, domain.StatusRunning, e.Status())

	// stop is legal from paused too
	e.Pause()
	e.Stop()
	assert.Equal(t, domain.StatusStopped, e.Status())
}

func TestEngine_PauseStopsCycleFiring(t *testing.T) {
	surface := okSurface()
	e := New(testAccount(), surface, okResponder("hi"), okStore(busySettings(20*time.Millisecond)), okCache(), testEngineConfig())
	defer e.Stop()

	require.NoError(t, e.Start(context.Background()))
	assert.Eventually(t, func() bool {
		return len(surface.FetchCandidatesCalls()) >= 2
	}, 2*time.Second, 5*time.Millisecond)

	e.Pause()
	// a tick already in flight when the pause lands may still add one fetch
	time.Sleep(50 * time.Millisecond)
	atPause := len(surface.FetchCandidatesCalls())

	time.Sleep(200 * time.Millisecond) // ten intervals
	assert.Equal(t, atPause, len(surface.FetchCandidatesCalls()), "no cycle fires while paused")

	e.Resume()
	assert.Eventually(t, func() bool {
		return len(surface.FetchCandidatesCalls()) > atPause
	}, 2*time.Second, 5*time.Millisecond, "cycles fire again after resume")
}

func TestEngine_UpdateSettings(t *testing.T) {
	e := New(testAccount(), okSurface(), okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())
	defer e.Stop()

	// legal while stopped
	s := quietSettings()
	s.MaxReplies = 7
	e.UpdateSettings(s)
	assert.Equal(t, 7, e.currentSettings().MaxReplies)

	require.NoError(t, e.Start(context.Background()))

	// start reloads from the store, the stopped-time update is replaced
	assert.Equal(t, 50, e.currentSettings().MaxReplies)

	s.MaxReplies = 9
	e.UpdateSettings(s)
	assert.Equal(t, 9, e.currentSettings().MaxReplies)
	assert.Equal(t, domain.StatusRunning, e.Status(), "update never changes state")
}

func TestEngine_UpdateSettingsReArmsTicker(t *testing.T) {
	surface := okSurface()
	e := New(testAccount(), surface, okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())
	defer e.Stop()

	require.NoError(t, e.Start(context.Background()))
	// an hour-long interval allows only the immediate first cycle
	assert.Eventually(t, func() bool {
		return len(surface.FetchCandidatesCalls()) == 1
	}, time.Second, 5*time.Millisecond)

	e.UpdateSettings(busySettings(20 * time.Millisecond))
	assert.Eventually(t, func() bool {
		return len(surface.FetchCandidatesCalls()) >= 3
	}, 2*time.Second, 5*time.Millisecond, "shorter interval takes effect without waiting out the old period")

	// back to a long interval: the fast ticker must stop without a double fire
	e.UpdateSettings(quietSettings())
	time.Sleep(50 * time.Millisecond) // let a tick already in flight land
	rearmed := len(surface.FetchCandidatesCalls())
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, rearmed, len(surface.FetchCandidatesCalls()), "no further fires on the replaced period")
}

func TestEngine_CycleProcessesCandidates(t *testing.T) {
	now := time.Now()
	candidates := []domain.Candidate{
		{ID: "p1", Author: "alice", Text: "nice day", Timestamp: now},
		{ID: "p2", Author: "testuser", Text: "own post", Timestamp: now}, // filtered, own identity
		{ID: "p3", Author: "bob", Text: "already done", Timestamp: now},  // in dedup store
		{ID: "p4", Author: "carol", Text: "also nice", Timestamp: now},
	}

	surface := okSurface()
	surface.FetchCandidatesFunc = func(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error) {
		return candidates, nil
	}

	store := okStore(quietSettings())
	store.ExistsFunc = func(ctx context.Context, accountID, postID string) (bool, error) {
		return postID == "p3", nil
	}
	var mu sync.Mutex
	var recorded []*domain.ProcessedRecord
	store.UpsertFunc = func(ctx context.Context, rec *domain.ProcessedRecord) error {
		mu.Lock()
		defer mu.Unlock()
		recorded = append(recorded, rec)
		return nil
	}

	e := New(testAccount(), surface, okResponder("hello!"), store, okCache(), testEngineConfig())
	e.settings = quietSettings()
	e.status = domain.StatusRunning

	e.cycle(context.Background())

	assert.Equal(t, 2, len(surface.ReplyCalls()), "p1 and p4 replied")
	require.Len(t, recorded, 2)
	assert.Equal(t, "p1", recorded[0].PostID)
	assert.Equal(t, domain.RecordSuccess, recorded[0].Status)
	assert.Equal(t, "hello!", recorded[0].ReplyText)
	assert.Equal(t, 6, recorded[0].CharCount)
	assert.True(t, recorded[0].Liked, "auto-like on by default")
	assert.False(t, recorded[0].Followed)

	// repeated cycle with the same feed content replies to nothing new
	e.cycle(context.Background())
	assert.Equal(t, 2, len(surface.ReplyCalls()), "no candidate processed twice")

	events := drainEvents(e)
	processed := 0
	for _, ev := range events {
		if ev.Type == domain.EventProcessed {
			processed++
			assert.Equal(t, "acc1", ev.AccountID)
		}
	}
	assert.Equal(t, 2, processed)
}

func TestEngine_CycleFetchFailureSkipsCycle(t *testing.T) {
	surface := okSurface()
	surface.FetchCandidatesFunc = func(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error) {
		return nil, errors.New("surface unreachable")
	}

	store := okStore(quietSettings())
	e := New(testAccount(), surface, okResponder("hi"), store, okCache(), testEngineConfig())
	e.settings = quietSettings()
	e.status = domain.StatusRunning

	e.cycle(context.Background())

	assert.Empty(t, surface.ReplyCalls())
	require.NotEmpty(t, store.AppendLogCalls(), "fetch failure lands in the audit log")
	assert.Contains(t, store.AppendLogCalls()[0].E.Message, "fetch candidates failed")
}

func TestEngine_CycleRespectsScheduleGate(t *testing.T) {
	surface := okSurface()
	settings := quietSettings()
	settings.Schedule = domain.Schedule{Enabled: true, Start: "00:00", End: "00:01"} // no active days

	e := New(testAccount(), surface, okResponder("hi"), okStore(settings), okCache(), testEngineConfig())
	e.settings = settings
	e.status = domain.StatusRunning

	e.cycle(context.Background())
	assert.Empty(t, surface.FetchCandidatesCalls(), "gated cycle never touches the surface")
}

func TestEngine_ProcessReplyFailureRecordedAsFailed(t *testing.T) {
	surface := okSurface()
	surface.ReplyFunc = func(ctx context.Context, acc domain.Account, c domain.Candidate, text string) error {
		return errors.New("surface refused")
	}

	store := okStore(quietSettings())
	var rec *domain.ProcessedRecord
	store.UpsertFunc = func(ctx context.Context, r *domain.ProcessedRecord) error { rec = r; return nil }

	e := New(testAccount(), surface, okResponder("hi"), store, okCache(), testEngineConfig())
	e.settings = quietSettings()
	e.status = domain.StatusRunning

	e.process(context.Background(), domain.Candidate{ID: "p1", Author: "alice", Text: "hey", Timestamp: time.Now()}, e.settings)

	require.NotNil(t, rec)
	assert.Equal(t, domain.RecordFailed, rec.Status)
	assert.Empty(t, surface.LikeCalls(), "no follow-up actions after a failed reply")
}

func TestEngine_EmptyReplyLeftForRetry(t *testing.T) {
	c := domain.Candidate{ID: "p1", Author: "alice", Text: "hey", Timestamp: time.Now()}

	surface := okSurface()
	surface.FetchCandidatesFunc = func(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error) {
		return []domain.Candidate{c}, nil
	}

	replies := []string{"", "now it works"}
	responder := &mocks.ResponderMock{
		GenerateFunc: func(ctx context.Context, text string) (string, error) {
			r := replies[0]
			if len(replies) > 1 {
				replies = replies[1:]
			}
			return r, nil
		},
	}

	store := okStore(quietSettings())
	e := New(testAccount(), surface, responder, store, okCache(), testEngineConfig())
	e.settings = quietSettings()
	e.status = domain.StatusRunning

	e.cycle(context.Background())
	assert.Empty(t, surface.ReplyCalls(), "empty reply skips without replying")
	assert.Empty(t, store.UpsertCalls(), "empty reply never marks dedup")

	e.cycle(context.Background())
	assert.Equal(t, 1, len(surface.ReplyCalls()), "candidate retried on the next cycle")
}

func TestEngine_PerCandidateErrorIsolation(t *testing.T) {
	now := time.Now()
	surface := okSurface()
	surface.FetchCandidatesFunc = func(ctx context.Context, acc domain.Account, settings domain.BotSettings, limit int) ([]domain.Candidate, error) {
		return []domain.Candidate{
			{ID: "p1", Author: "alice", Text: "first", Timestamp: now},
			{ID: "p2", Author: "bob", Text: "second", Timestamp: now},
		}, nil
	}
	surface.ReplyFunc = func(ctx context.Context, acc domain.Account, c domain.Candidate, text string) error {
		if c.ID == "p1" {
			return errors.New("transient")
		}
		return nil
	}

	e := New(testAccount(), surface, okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())
	e.settings = quietSettings()
	e.status = domain.StatusRunning

	e.cycle(context.Background())
	assert.Equal(t, 2, len(surface.ReplyCalls()), "one failure never aborts the cycle")
}

func TestEngine_StopDiscardsQueue(t *testing.T) {
	e := New(testAccount(), okSurface(), okResponder("hi"), okStore(quietSettings()), okCache(), testEngineConfig())
	require.NoError(t, e.Start(context.Background()))

	e.enqueue(domain.Candidate{ID: "p1"})
	e.Stop()
	assert.Equal(t, 0, e.queueLen())
}

func TestEngine_EventOverflowDropsOldest(t *testing.T) {
	cfg := testEngineConfig()
	cfg.EventBuffer = 2
	e := New(testAccount(), okSurface(), okResponder("hi"), okStore(quietSettings()), okCache(), cfg)

	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusRunning})
	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusPaused})
	e.emit(domain.Event{Type: domain.EventStatus, Status: domain.StatusStopped})

	statuses := statusEvents(drainEvents(e))
	assert.Equal(t, []domain.Status{domain.StatusPaused, domain.StatusStopped}, statuses)
}
