package domain

import "time"

// Candidate is a discovered post eligible for processing. Transient: it lives
// in the engine queue until acted on or discarded.
type Candidate struct {
	ID        string
	Author    string
	Text      string
	URL       string
	Timestamp time.Time
	IsReply   bool
	IsRetweet bool
	Verified  bool
	HasMedia  bool
	Views     int // zero when the source reports no view counts
}

// ProcessedRecord is the durable outcome of one candidate. The
// (AccountID, PostID) pair is unique per account - this is the dedup invariant.
type ProcessedRecord struct {
	ID        int64     `json:"id"`
	AccountID string    `json:"account_id"`
	PostID    string    `json:"post_id"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	ReplyText string    `json:"reply_text"`
	Liked     bool      `json:"liked"`
	Followed  bool      `json:"followed"`
	Retweeted bool      `json:"retweeted"`
	Status    string    `json:"status"` // "success" or "failed"
	LatencyMs int64     `json:"latency_ms"`
	CharCount int       `json:"char_count"`
	CreatedAt time.Time `json:"created_at"`
}

// record status values
const (
	RecordSuccess = "success"
	RecordFailed  = "failed"
)
