package authhandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"workforce/internal/apperror"
)

type stubIssuer struct {
	issue func(ctx context.Context, username, password string) (string, error)
}

func (s stubIssuer) IssueToken(ctx context.Context, username, password string) (string, error) {
	return s.issue(ctx, username, password)
}

func TestHandleToken(t *testing.T) {
	issuer := stubIssuer{issue: func(_ context.Context, username, password string) (string, error) {
		if username == "admin" && password == "secret" {
			return "signed-token", nil
		}
		return "", apperror.Unauthorized("invalid credentials")
	}}

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{
			name:   "valid credentials",
			body:   `{"username":"admin","password":"secret"}`,
			status: http.StatusOK,
			want:   `{"is_v1":true,"data":{"token":"signed-token"}}`,
		},
		{
			name:   "wrong password",
			body:   `{"username":"admin","password":"nope"}`,
			status: http.StatusUnauthorized,
			want:   `{"is_v1":true,"data":{"error":"invalid credentials"}}`,
		},
		{
			name:   "malformed body",
			body:   `{"username":`,
			status: http.StatusBadRequest,
			want:   `{"is_v1":true,"data":{"error":"malformed JSON request body"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := chi.NewRouter()
			NewHandler(issuer, 0, time.Minute).RegisterRoutes(router)

			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if strings.TrimSpace(rec.Body.String()) != tc.want {
				t.Fatalf("unexpected body %s", rec.Body.String())
			}
		})
	}
}
