package domain

import "time"

const (
	CaseStatusActive    = "active"
	CaseStatusPending   = "pending"
	CaseStatusCompleted = "completed"
	CaseStatusOnHold    = "on-hold"
)

// Case is a legal matter tracked by the practice.
type Case struct {
	ID             int64      `json:"id"`
	CaseNumber     string     `json:"case_number"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	CaseType       string     `json:"case_type"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	ClientID       *int64     `json:"client_id,omitempty"`
	AssignedToID   *int64     `json:"assigned_to_id,omitempty"`
	CreatedByID    *int64     `json:"created_by_id,omitempty"`
	NextHearing    *time.Time `json:"next_hearing,omitempty"`
	EstimatedValue *float64   `json:"estimated_value,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
