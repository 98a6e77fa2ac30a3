package db

import (
	"context"
	"log/slog"
	"strings"

	"workforce/internal/domain/auth"
	"workforce/internal/platform/config"
)

// Seed creates the configured admin account when it does not exist yet.
func Seed(ctx context.Context, store *auth.Store, cfg config.Config) error {
	username := strings.TrimSpace(cfg.SeedAdminUsername)
	if username == "" || strings.TrimSpace(cfg.SeedAdminPassword) == "" {
		return nil
	}

	exists, err := store.UserExists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	id, err := store.CreateUser(ctx, username, hash)
	if err != nil {
		return err
	}
	slog.Info("seeded admin user", "userId", id, "username", username)
	return nil
}
