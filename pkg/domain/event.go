package domain

import "time"

// EventType distinguishes the kinds of events an engine publishes
type EventType string

// event types published by engines
const (
	EventStatus    EventType = "status"
	EventLog       EventType = "log"
	EventProcessed EventType = "processed"
)

// Event is a single typed notification from an engine. The orchestrator tags
// each event with the originating account id before fanning it out.
type Event struct {
	Type      EventType        `json:"type"`
	AccountID string           `json:"account_id"`
	Time      time.Time        `json:"time"`
	Status    Status           `json:"status,omitempty"`
	Log       *LogEntry        `json:"log,omitempty"`
	Record    *ProcessedRecord `json:"record,omitempty"`
}

// LogEntry is one line of the append-only audit trail
type LogEntry struct {
	Time      time.Time `json:"time"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
}
