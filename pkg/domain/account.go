package domain

import "time"

// Account represents one automated identity managed by the fleet
type Account struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	CredentialRef string    `json:"credential_ref"` // opaque reference to externally stored credentials
	UseGemini     bool      `json:"use_gemini"`
	GeminiKey     string    `json:"gemini_key,omitempty"`
	OpenAIKey     string    `json:"openai_key,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Status represents the lifecycle state of an account's engine
type Status string

// engine lifecycle states
const (
	StatusStopped     Status = "stopped"
	StatusRunning     Status = "running"
	StatusPaused      Status = "paused"
	StatusLoginFailed Status = "login_failed"
)

// BotStats holds aggregate per-account counters
type BotStats struct {
	AccountID    string     `json:"account_id"`
	RepliesSent  int        `json:"replies_sent"`
	LikesGiven   int        `json:"likes_given"`
	FollowsMade  int        `json:"follows_made"`
	RetweetsMade int        `json:"retweets_made"`
	SuccessRate  float64    `json:"success_rate"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
