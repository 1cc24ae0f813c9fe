package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexcase/practice-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims embeds the user id as the sole application claim. Role and
// email are deliberately absent: they are re-fetched from the store on
// every request so permission changes do not wait for token expiry.
type tokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for userID expiring after the configured TTL.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string, returning the embedded user id.
// Failures map to exactly one of ErrTokenExpired, ErrTokenSignatureInvalid,
// or ErrTokenMalformed.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, domain.ErrTokenSignatureInvalid
		default:
			return 0, domain.ErrTokenMalformed
		}
	}
	if !token.Valid || claims.UserID <= 0 {
		return 0, domain.ErrTokenMalformed
	}
	return claims.UserID, nil
}
