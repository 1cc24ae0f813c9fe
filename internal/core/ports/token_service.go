package ports

// TokenService mints and verifies signed session tokens. The token carries
// the user id as its sole claim; role and email are re-fetched per request.
type TokenService interface {
	Issue(userID int64) (string, error)
	// Verify returns the embedded user id, or one of ErrTokenMalformed,
	// ErrTokenSignatureInvalid, ErrTokenExpired.
	Verify(token string) (int64, error)
}
