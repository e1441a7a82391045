package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/auth"
	"github.com/spec-kit/inquiry-console/internal/config"
	"github.com/spec-kit/inquiry-console/internal/persistence"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// AdminSubject is the single console principal.
const AdminSubject = "admin"

// AuthService gates the console behind one admin session. The issued token
// is mirrored under the auth_token storage key; its presence is the gate,
// not a real credential system.
type AuthService struct {
	cfg       config.AuthConfig
	store     persistence.BlobStore
	tokens    *auth.TokenManager
	logger    *zap.Logger
	adminHash string
}

// NewAuthService constructs the service. When no password hash is configured
// the default password is hashed at startup.
func NewAuthService(cfg config.AuthConfig, store persistence.BlobStore, logger *zap.Logger) (*AuthService, error) {
	adminHash := cfg.AdminPasswordHash
	if adminHash == "" {
		hashed, err := auth.HashPassword(cfg.AdminDefaultPassword, cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		adminHash = hashed
	}
	return &AuthService{
		cfg:       cfg,
		store:     store,
		tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTLMinutes),
		logger:    logger,
		adminHash: adminHash,
	}, nil
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies the admin password and issues a session token.
func (s *AuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if err := auth.ComparePassword(s.adminHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, expiresAt, err := s.tokens.GenerateToken(AdminSubject)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}
	if err := s.store.Save(ctx, repository.KeyAuthToken, []byte(token)); err != nil {
		s.logger.Warn("storage write failed", zap.String("key", repository.KeyAuthToken), zap.Error(err))
	}
	return token, expiresAt, nil
}

// Logout clears the mirrored session token.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, repository.KeyAuthToken); err != nil {
		s.logger.Warn("storage delete failed", zap.String("key", repository.KeyAuthToken), zap.Error(err))
	}
}
