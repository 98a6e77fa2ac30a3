package auth

import (
	"context"

	"workforce/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsActive     bool
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (User, error) {
	var out User
	err := s.DB.QueryRow(ctx, `
    SELECT id::text, username, password_hash, is_active
    FROM users
    WHERE username = $1
  `, username).Scan(&out.ID, &out.Username, &out.PasswordHash, &out.IsActive)
	return out, err
}

func (s *Store) UserExists(ctx context.Context, username string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE username = $1", username).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id::text
  `, username, passwordHash).Scan(&id)
	return id, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}
