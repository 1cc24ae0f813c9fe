package domain

import "time"

// Client types and statuses are free-text columns in the store with a
// conventional vocabulary; handlers validate the closed sets on input.
const (
	ClientTypeIndividual = "individual"
	ClientTypeCorporate  = "corporate"
	ClientTypeGovernment = "government"
)

// Client is a person or organisation the practice represents. Distinct from
// a User with the client role: a Client record needs no login.
type Client struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Address    *string   `json:"address,omitempty"`
	ClientType string    `json:"client_type"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
