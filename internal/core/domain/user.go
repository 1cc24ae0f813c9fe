package domain

import "time"

// Role is the closed set of roles that drive authorization decisions.
// Anything outside this set in the store is a data-integrity problem,
// not a new role to honour.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAdvocate Role = "advocate"
	RoleStaff    Role = "staff"
	RoleClient   Role = "client"
)

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAdvocate, RoleStaff, RoleClient:
		return true
	}
	return false
}

// User models an account in the practice. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped view of an authenticated user. It carries
// only public fields and is rebuilt from the store on every request, so a
// role change applies without waiting for token expiry.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Identity returns the public identity view of the user.
func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
