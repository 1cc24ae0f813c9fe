package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lexcase/practice-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"malformed token", domain.ErrTokenMalformed, http.StatusUnauthorized, "invalid token"},
		{"bad signature", domain.ErrTokenSignatureInvalid, http.StatusUnauthorized, "invalid token"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "insufficient permissions"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"duplicate case", domain.ErrCaseExists, http.StatusConflict, "case number already exists"},
		{"missing case", domain.ErrCaseNotFound, http.StatusNotFound, "case not found"},
		{"missing client", domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := runErrorHandler(t, tt.err)
			if code != tt.wantCode || msg != tt.wantMsg {
				t.Fatalf("got %d %q, want %d %q", code, msg, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestErrorHandler_TokenErrorsNeverDistinguishable(t *testing.T) {
	// All token failure classes must render identically to the client.
	var msgs []string
	for _, err := range []error{domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid, domain.ErrTokenExpired} {
		code, msg := runErrorHandler(t, err)
		if code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", code)
		}
		msgs = append(msgs, msg)
	}
	if msgs[0] != msgs[1] || msgs[1] != msgs[2] {
		t.Fatalf("token errors leak their class: %v", msgs)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot || msg != "short and stout" {
		t.Fatalf("got %d %q, want 418 short and stout", code, msg)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := runErrorHandler(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("message = %q leaks internals", msg)
	}
}
