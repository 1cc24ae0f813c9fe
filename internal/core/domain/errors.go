package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidRole  = errors.New("invalid role")

	// Token verification failures. Externally they all collapse to 401;
	// the distinction exists for logging and metrics only.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")

	ErrForbidden = errors.New("forbidden")

	ErrCaseNotFound    = errors.New("case not found")
	ErrCaseExists      = errors.New("case number already exists")
	ErrClientNotFound  = errors.New("client not found")
	ErrClientExists    = errors.New("client already exists")
	ErrHearingNotFound = errors.New("hearing not found")
)
