package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"workforce/internal/apperror"
)

type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

type Service struct {
	Store  UserStore
	Secret string
	TTL    time.Duration
}

func NewService(store UserStore, secret string, ttl time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TTL: ttl}
}

// IssueToken exchanges a username/password pair for a signed bearer token.
func (s *Service) IssueToken(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apperror.Validation("username and password are required",
			apperror.FieldIssue{Field: "username", Reason: "required"},
			apperror.FieldIssue{Field: "password", Reason: "required"},
		)
	}

	user, err := s.Store.FindUserByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperror.Unauthorized("invalid credentials")
	}
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", apperror.Unauthorized("invalid credentials")
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return "", apperror.Unauthorized("invalid credentials")
	}

	token, err := GenerateToken(s.Secret, Claims{UserID: user.ID, Username: user.Username}, s.TTL)
	if err != nil {
		return "", err
	}

	if err := s.Store.UpdateLastLogin(ctx, user.ID); err != nil {
		slog.Warn("update last_login failed", "userId", user.ID, "err", err)
	}
	return token, nil
}
