package domain

import "time"

const (
	HearingStatusScheduled = "scheduled"
	HearingStatusCompleted = "completed"
	HearingStatusPostponed = "postponed"
	HearingStatusCancelled = "cancelled"
)

// Hearing is a scheduled court appearance for a case.
type Hearing struct {
	ID          int64     `json:"id"`
	CaseID      *int64    `json:"case_id,omitempty"`
	Title       string    `json:"title"`
	Court       *string   `json:"court,omitempty"`
	Room        *string   `json:"room,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	// Duration is in minutes.
	Duration  *int      `json:"duration,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
