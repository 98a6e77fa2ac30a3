package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"workforce/internal/apperror"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if err := CheckPassword(hash, "super-secret"); err != nil {
		t.Fatalf("expected password to match, got %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"
	claims := Claims{UserID: "u1", Username: "admin"}

	token, err := GenerateToken(secret, claims, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.UserID != claims.UserID || parsed.Username != claims.Username {
		t.Fatalf("claims mismatch: %+v", parsed)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("s", Claims{UserID: "u1"}, -time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("s", token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

type stubUserStore struct {
	user      User
	err       error
	lastLogin string
}

func (s *stubUserStore) FindUserByUsername(ctx context.Context, username string) (User, error) {
	if s.err != nil {
		return User{}, s.err
	}
	return s.user, nil
}

func (s *stubUserStore) UpdateLastLogin(ctx context.Context, userID string) error {
	s.lastLogin = userID
	return nil
}

func TestIssueToken(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	tests := []struct {
		name     string
		store    *stubUserStore
		username string
		password string
		wantCode apperror.Code
	}{
		{name: "valid", store: &stubUserStore{user: User{ID: "u1", Username: "admin", PasswordHash: hash, IsActive: true}}, username: "admin", password: "admin123"},
		{name: "missing fields", store: &stubUserStore{}, username: " ", password: "", wantCode: apperror.CodeValidation},
		{name: "unknown user", store: &stubUserStore{err: pgx.ErrNoRows}, username: "ghost", password: "x", wantCode: apperror.CodeUnauthorized},
		{name: "wrong password", store: &stubUserStore{user: User{ID: "u1", PasswordHash: hash, IsActive: true}}, username: "admin", password: "nope", wantCode: apperror.CodeUnauthorized},
		{name: "inactive", store: &stubUserStore{user: User{ID: "u1", PasswordHash: hash}}, username: "admin", password: "admin123", wantCode: apperror.CodeUnauthorized},
		{name: "store failure", store: &stubUserStore{err: errors.New("db down")}, username: "admin", password: "admin123", wantCode: apperror.CodeInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(tc.store, "secret", time.Hour)
			token, err := svc.IssueToken(context.Background(), tc.username, tc.password)
			if tc.wantCode != "" {
				if got := apperror.GetCode(err); got != tc.wantCode {
					t.Fatalf("expected code %q, got %q (%v)", tc.wantCode, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			claims, err := ParseToken("secret", token)
			if err != nil || claims.UserID != "u1" {
				t.Fatalf("unexpected token claims %+v, err %v", claims, err)
			}
			if tc.store.lastLogin != "u1" {
				t.Fatal("expected last login to be recorded")
			}
		})
	}
}

func TestFingerprintStable(t *testing.T) {
	if Fingerprint("abc") != Fingerprint("abc") || Fingerprint("abc") == Fingerprint("abd") {
		t.Fatal("expected deterministic, distinct fingerprints")
	}
	if len(Fingerprint("abc")) != 16 {
		t.Fatalf("unexpected fingerprint length %d", len(Fingerprint("abc")))
	}
}
