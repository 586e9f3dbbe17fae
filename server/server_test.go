package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieudt/replyflock/pkg/domain"
	"github.com/hieudt/replyflock/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func emptyStore() *mocks.DataStoreMock {
	return &mocks.DataStoreMock{
		ListAccountsFunc: func(ctx context.Context) ([]*domain.Account, error) {
			return []*domain.Account{}, nil
		},
	}
}

func idleFleet() *mocks.FleetControllerMock {
	events := make(chan domain.Event, 16)
	return &mocks.FleetControllerMock{
		StatusFunc: func(id string) domain.Status { return domain.StatusStopped },
		EventsFunc: func() <-chan domain.Event { return events },
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), emptyStore(), idleFleet(), "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := New(cfg, emptyStore(), idleFleet(), "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", strings.TrimSpace(string(body)))
}

func TestServer_StatusHandler(t *testing.T) {
	store := emptyStore()
	store.ListAccountsFunc = func(ctx context.Context) ([]*domain.Account, error) {
		return []*domain.Account{{ID: "a1"}, {ID: "a2"}}, nil
	}
	fl := idleFleet()
	fl.StatusFunc = func(id string) domain.Status {
		if id == "a1" {
			return domain.StatusRunning
		}
		return domain.StatusStopped
	}

	srv := New(testConfig(), store, fl, "1.0.0", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"a1":"running"`)
	assert.Contains(t, w.Body.String(), `"a2":"stopped"`)
	assert.Contains(t, w.Body.String(), `"version":"1.0.0"`)
}

func TestServer_EventsSSE(t *testing.T) {
	events := make(chan domain.Event, 16)
	fl := idleFleet()
	fl.EventsFunc = func() <-chan domain.Event { return events }

	srv := New(testConfig(), emptyStore(), fl, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.broadcast(ctx)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	reqCtx, reqCancel := context.WithCancel(context.Background())
	defer reqCancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, ts.URL+"/api/v1/events", http.NoBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// give the handler a moment to subscribe before publishing
	time.Sleep(50 * time.Millisecond)
	events <- domain.Event{Type: domain.EventStatus, AccountID: "a1", Status: domain.StatusRunning, Time: time.Now()}

	reader := bufio.NewReader(resp.Body)
	deadline := time.After(2 * time.Second)
	lines := make(chan string, 8)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			lines <- line
		}
	}()

	var data string
	for data == "" {
		select {
		case line := <-lines:
			if strings.HasPrefix(line, "data: ") {
				data = line
			}
		case <-deadline:
			t.Fatal("timed out waiting for SSE event")
		}
	}
	assert.Contains(t, data, `"account_id":"a1"`)
	assert.Contains(t, data, `"status":"running"`)
}

func TestServer_BroadcastSkipsSlowSubscribers(t *testing.T) {
	events := make(chan domain.Event, 64)
	fl := idleFleet()
	fl.EventsFunc = func() <-chan domain.Event { return events }

	srv := New(testConfig(), emptyStore(), fl, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.broadcast(ctx)

	fast := srv.subscribe()
	defer srv.unsubscribe(fast)
	slow := srv.subscribe() // never read, its buffer fills up
	defer srv.unsubscribe(slow)

	for i := 0; i < 100; i++ {
		events <- domain.Event{Type: domain.EventLog, AccountID: "a1"}
		select {
		case <-fast:
		case <-time.After(time.Second):
			t.Fatal("fast subscriber starved by the slow one")
		}
	}
}
