package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hieudt/replyflock/pkg/domain"
	"github.com/hieudt/replyflock/pkg/fleet"
	"github.com/hieudt/replyflock/pkg/repository"
)

// accountInfo is an account with its live engine state attached
type accountInfo struct {
	domain.Account
	Status domain.Status `json:"status"`
}

// settingsJSON is the wire form of bot settings, durations in whole seconds
type settingsJSON struct {
	MaxReplies          int      `json:"max_replies"`
	MinViews            int      `json:"min_views"`
	IntervalSeconds     int      `json:"interval_seconds"`
	ReplySpacingSeconds int      `json:"reply_spacing_seconds"`
	SkipReplies         bool     `json:"skip_replies"`
	SkipRetweets        bool     `json:"skip_retweets"`
	AutoLike            bool     `json:"auto_like"`
	AutoFollow          bool     `json:"auto_follow"`
	AutoRetweet         bool     `json:"auto_retweet"`
	TimeLimitHours      int      `json:"time_limit_hours"`
	TimeLimitMinutes    int      `json:"time_limit_minutes"`
	ScheduleEnabled     bool     `json:"schedule_enabled"`
	ScheduleStart       string   `json:"schedule_start"`
	ScheduleEnd         string   `json:"schedule_end"`
	ScheduleDays        string   `json:"schedule_days"`
	Mode                string   `json:"mode"`
	TargetUsers         []string `json:"target_users"`
	FilterKeywords      []string `json:"filter_keywords"`
	MinimizeWindow      bool     `json:"minimize_window"`
}

func settingsToJSON(s domain.BotSettings) settingsJSON {
	return settingsJSON{
		MaxReplies:          s.MaxReplies,
		MinViews:            s.MinViews,
		IntervalSeconds:     int(s.Interval.Seconds()),
		ReplySpacingSeconds: int(s.ReplySpacing.Seconds()),
		SkipReplies:         s.SkipReplies,
		SkipRetweets:        s.SkipRetweets,
		AutoLike:            s.AutoLike,
		AutoFollow:          s.AutoFollow,
		AutoRetweet:         s.AutoRetweet,
		TimeLimitHours:      s.TimeLimitHours,
		TimeLimitMinutes:    s.TimeLimitMinutes,
		ScheduleEnabled:     s.Schedule.Enabled,
		ScheduleStart:       s.Schedule.Start,
		ScheduleEnd:         s.Schedule.End,
		ScheduleDays:        s.Schedule.DaysString(),
		Mode:                string(s.Mode),
		TargetUsers:         s.TargetUsers,
		FilterKeywords:      s.FilterKeywords,
		MinimizeWindow:      s.MinimizeWindow,
	}
}

func (j settingsJSON) toDomain() (domain.BotSettings, error) {
	mode, err := domain.ParseMode(j.Mode)
	if err != nil {
		return domain.BotSettings{}, err
	}
	days, err := domain.ParseDays(j.ScheduleDays)
	if err != nil {
		return domain.BotSettings{}, err
	}
	if j.IntervalSeconds <= 0 {
		return domain.BotSettings{}, fmt.Errorf("interval must be positive, got %d", j.IntervalSeconds)
	}
	if j.MaxReplies <= 0 {
		return domain.BotSettings{}, fmt.Errorf("max replies must be positive, got %d", j.MaxReplies)
	}

	return domain.BotSettings{
		MaxReplies:       j.MaxReplies,
		MinViews:         j.MinViews,
		Interval:         time.Duration(j.IntervalSeconds) * time.Second,
		ReplySpacing:     time.Duration(j.ReplySpacingSeconds) * time.Second,
		SkipReplies:      j.SkipReplies,
		SkipRetweets:     j.SkipRetweets,
		AutoLike:         j.AutoLike,
		AutoFollow:       j.AutoFollow,
		AutoRetweet:      j.AutoRetweet,
		TimeLimitHours:   j.TimeLimitHours,
		TimeLimitMinutes: j.TimeLimitMinutes,
		Schedule: domain.Schedule{
			Enabled: j.ScheduleEnabled,
			Start:   j.ScheduleStart,
			End:     j.ScheduleEnd,
			Days:    days,
		},
		Mode:           mode,
		TargetUsers:    j.TargetUsers,
		FilterKeywords: j.FilterKeywords,
		MinimizeWindow: j.MinimizeWindow,
	}, nil
}

// listAccountsHandler returns all accounts with their engine states
func (s *Server) listAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]accountInfo, 0, len(accounts))
	for _, acc := range accounts {
		infos = append(infos, accountInfo{Account: *acc, Status: s.fleet.Status(acc.ID)})
	}
	renderJSON(w, r, http.StatusOK, infos)
}

// createAccountHandler registers a new account
func (s *Server) createAccountHandler(w http.ResponseWriter, r *http.Request) {
	var acc domain.Account
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if acc.Name == "" || acc.Username == "" {
		renderError(w, r, fmt.Errorf("name and username are required"), http.StatusBadRequest)
		return
	}

	if err := s.store.CreateAccount(r.Context(), &acc); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, accountInfo{Account: acc, Status: domain.StatusStopped})
}

// getAccountHandler returns one account with its engine state
func (s *Server) getAccountHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	acc, err := s.store.GetAccount(r.Context(), id)
	if err != nil {
		renderError(w, r, err, storeErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, accountInfo{Account: *acc, Status: s.fleet.Status(id)})
}

// updateAccountHandler modifies account fields
func (s *Server) updateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var acc domain.Account
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	acc.ID = r.PathValue("id")

	if err := s.store.UpdateAccount(r.Context(), &acc); err != nil {
		renderError(w, r, err, storeErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, accountInfo{Account: acc, Status: s.fleet.Status(acc.ID)})
}

// deleteAccountHandler stops the account's engine if live and removes the
// account with all its dependent rows
func (s *Server) deleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.fleet.Stop(id); err != nil && !errors.Is(err, fleet.ErrNotFound) {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.store.DeleteAccount(r.Context(), id); err != nil {
		renderError(w, r, err, storeErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"deleted": id})
}

// getSettingsHandler returns the account's settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.store.GetAccount(r.Context(), id); err != nil {
		renderError(w, r, err, storeErrorCode(err))
		return
	}

	settings, err := s.store.GetSettings(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, settingsToJSON(settings))
}

// updateSettingsHandler persists new settings and applies them to the live
// engine when one is running
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.store.GetAccount(r.Context(), id); err != nil {
		renderError(w, r, err, storeErrorCode(err))
		return
	}

	var j settingsJSON
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	settings, err := j.toDomain()
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.SaveSettings(r.Context(), id, settings); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.fleet.UpdateSettings(id, settings)

	renderJSON(w, r, http.StatusOK, settingsToJSON(settings))
}

// startHandler starts the account's engine
func (s *Server) startHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.fleet.Start(r.Context(), id); err != nil {
		renderError(w, r, err, fleetErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]domain.Status{"status": s.fleet.Status(id)})
}

// stopHandler stops the account's engine
func (s *Server) stopHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.fleet.Stop(id); err != nil {
		renderError(w, r, err, fleetErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]domain.Status{"status": domain.StatusStopped})
}

// pauseHandler pauses the account's engine
func (s *Server) pauseHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.fleet.Pause(id); err != nil {
		renderError(w, r, err, fleetErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]domain.Status{"status": s.fleet.Status(id)})
}

// resumeHandler resumes the account's engine
func (s *Server) resumeHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.fleet.Resume(id); err != nil {
		renderError(w, r, err, fleetErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]domain.Status{"status": s.fleet.Status(id)})
}

// statsHandler returns the account's aggregate counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.store.GetAccount(r.Context(), id); err != nil {
		renderError(w, r, err, storeErrorCode(err))
		return
	}

	stats, err := s.store.GetStats(r.Context(), id)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// processedHandler returns the account's recent processed records
func (s *Server) processedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	limit := queryInt(r, "limit", 50)

	records, err := s.store.ListProcessed(r.Context(), id, limit)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, records)
}

// startAllHandler starts every account, reporting partial failures
func (s *Server) startAllHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"result": "ok"}
	if err := s.fleet.StartAll(r.Context()); err != nil {
		resp["result"] = "partial"
		resp["errors"] = err.Error()
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// stopAllHandler stops every live engine
func (s *Server) stopAllHandler(w http.ResponseWriter, r *http.Request) {
	s.fleet.StopAll()
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "ok"})
}

// logsHandler returns audit log lines matching the query filters
func (s *Server) logsHandler(w http.ResponseWriter, r *http.Request) {
	f := repository.LogFilter{
		Level:     r.URL.Query().Get("level"),
		Category:  r.URL.Query().Get("category"),
		AccountID: r.URL.Query().Get("account"),
		Limit:     queryInt(r, "limit", 100),
	}
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid since value: %w", err), http.StatusBadRequest)
			return
		}
		f.Since = since
	}

	logs, err := s.store.ListLogs(r.Context(), f)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, logs)
}

// eventsHandler streams fleet events as server-sent events
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		renderError(w, r, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	sub := s.subscribe()
	defer s.unsubscribe(sub)

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		case ev := <-sub:
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
			flusher.Flush()
		}
	}
}

// fleetErrorCode maps orchestration errors to HTTP status codes
func fleetErrorCode(err error) int {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fleet.ErrAlreadyRunning):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// storeErrorCode maps persistence errors to HTTP status codes
func storeErrorCode(err error) int {
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// queryInt reads an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
