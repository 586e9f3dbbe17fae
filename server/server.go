// Package server exposes the command surface over HTTP: account management,
// per-account lifecycle commands, settings, processed history, logs and a
// server-sent event stream of everything the fleet emits.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/hieudt/replyflock/pkg/domain"
	"github.com/hieudt/replyflock/pkg/repository"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/datastore.go -pkg mocks -skip-ensure -fmt goimports . DataStore
//go:generate moq -out mocks/fleet.go -pkg mocks -skip-ensure -fmt goimports . FleetController

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	store   DataStore
	fleet   FleetController
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle

	subMu sync.Mutex
	subs  map[chan domain.Event]struct{}
}

// DataStore is the persistence the API reads and writes
type DataStore interface {
	CreateAccount(ctx context.Context, acc *domain.Account) error
	UpdateAccount(ctx context.Context, acc *domain.Account) error
	DeleteAccount(ctx context.Context, id string) error
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)

	GetSettings(ctx context.Context, accountID string) (domain.BotSettings, error)
	SaveSettings(ctx context.Context, accountID string, s domain.BotSettings) error

	GetStats(ctx context.Context, accountID string) (domain.BotStats, error)
	ListProcessed(ctx context.Context, accountID string, limit int) ([]domain.ProcessedRecord, error)
	ListLogs(ctx context.Context, f repository.LogFilter) ([]domain.LogEntry, error)
}

// FleetController is the orchestrator slice the API drives
type FleetController interface {
	Start(ctx context.Context, id string) error
	Stop(id string) error
	Pause(id string) error
	Resume(id string) error
	UpdateSettings(id string, s domain.BotSettings)
	Status(id string) domain.Status
	StartAll(ctx context.Context) error
	StopAll()
	Events() <-chan domain.Event
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store DataStore, fleet FleetController, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		store:   store,
		fleet:   fleet,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
		subs:    make(map[chan domain.Event]struct{}),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and the event fan-out, and handles graceful
// shutdown when the context is cancelled
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	go s.broadcast(ctx)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: 0, // SSE connections are long-lived
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("replyflock", "hieudt", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /accounts", s.listAccountsHandler)
		r.HandleFunc("POST /accounts", s.createAccountHandler)
		r.HandleFunc("GET /accounts/{id}", s.getAccountHandler)
		r.HandleFunc("PUT /accounts/{id}", s.updateAccountHandler)
		r.HandleFunc("DELETE /accounts/{id}", s.deleteAccountHandler)

		r.HandleFunc("GET /accounts/{id}/settings", s.getSettingsHandler)
		r.HandleFunc("PUT /accounts/{id}/settings", s.updateSettingsHandler)

		r.HandleFunc("POST /accounts/{id}/start", s.startHandler)
		r.HandleFunc("POST /accounts/{id}/stop", s.stopHandler)
		r.HandleFunc("POST /accounts/{id}/pause", s.pauseHandler)
		r.HandleFunc("POST /accounts/{id}/resume", s.resumeHandler)

		r.HandleFunc("GET /accounts/{id}/stats", s.statsHandler)
		r.HandleFunc("GET /accounts/{id}/processed", s.processedHandler)

		r.HandleFunc("POST /fleet/start-all", s.startAllHandler)
		r.HandleFunc("POST /fleet/stop-all", s.stopAllHandler)

		r.HandleFunc("GET /logs", s.logsHandler)
		r.HandleFunc("GET /events", s.eventsHandler)
	})
}

// statusHandler returns server status with per-account engine states
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	states := make(map[string]domain.Status, len(accounts))
	for _, acc := range accounts {
		states[acc.ID] = s.fleet.Status(acc.ID)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"accounts": states,
	})
}

// broadcast distributes fleet events to all SSE subscribers, dropping events
// for subscribers that fall behind
func (s *Server) broadcast(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.fleet.Events():
			if !ok {
				return
			}
			s.subMu.Lock()
			for sub := range s.subs {
				select {
				case sub <- ev:
				default:
				}
			}
			s.subMu.Unlock()
		}
	}
}

func (s *Server) subscribe() chan domain.Event {
	ch := make(chan domain.Event, 32)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan domain.Event) {
	s.subMu.Lock()
	delete(s.subs, ch)
	s.subMu.Unlock()
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
