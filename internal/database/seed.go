package database

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/config"
	"github.com/zaqqye/linkbio/internal/logger"
	"github.com/zaqqye/linkbio/internal/models"
	"github.com/zaqqye/linkbio/internal/store"
	"github.com/zaqqye/linkbio/internal/utils"
)

// Seed populates a fresh store with the admin, default content and default
// links. Defaults are written when the admin is new or the store holds no
// content at all; otherwise links the admin deleted stay deleted across
// restarts.
func Seed(ctx context.Context, s store.Store, cfg *config.Config) error {
	created, err := SeedAdmin(ctx, s, cfg)
	if err != nil {
		return err
	}
	if !created {
		snap, err := s.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("inspect store: %w", err)
		}
		if len(snap.Content) > 0 {
			return nil
		}
		logger.Warn("store has an admin but no content, restoring defaults")
	}
	return SeedContent(ctx, s)
}

// SeedAdmin creates the configured admin if missing and reports whether it
// did so.
func SeedAdmin(ctx context.Context, s store.Store, cfg *config.Config) (bool, error) {
	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	_, err := s.FindAdmin(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if err := s.EnsureAdmin(ctx, models.Admin{Username: username, PasswordHash: hashed}); err != nil {
		return false, err
	}
	logger.Info("seeded admin", zap.String("username", username))
	return true, nil
}

// SeedContent restores any missing default content and links without
// touching existing records.
func SeedContent(ctx context.Context, s store.Store) error {
	for _, c := range models.DefaultContent() {
		if err := s.EnsureContent(ctx, c.Key, c.Value); err != nil {
			return err
		}
	}
	for _, l := range models.DefaultLinks() {
		if err := s.EnsureLink(ctx, l); err != nil {
			return err
		}
	}
	logger.Debug("default content ensured")
	return nil
}
