package events

import "time"

const TimeLogEventsTopic = "timelog.events"

const (
	TimeLogClockedIn  = "timelog_clocked_in"
	TimeLogClockedOut = "timelog_clocked_out"
)

// TimeLogClockedEvent is published through the outbox for both clock
// directions; EventType tells them apart.
type TimeLogClockedEvent struct {
	EventType  string     `json:"event_type"`
	RequestID  string     `json:"request_id,omitempty"`
	TimeLogID  string     `json:"time_log_id"`
	UserID     string     `json:"user_id"`
	TimeIn     time.Time  `json:"time_in"`
	TimeOut    *time.Time `json:"time_out,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
