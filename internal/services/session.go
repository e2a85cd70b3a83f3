package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pump-inventory/internal/repositories"
)

// SessionServiceInterface is the server-side session lifecycle:
// Anonymous -> Authenticated (Create on verified login) -> Anonymous
// (Destroy on logout, or TTL expiry in the store).
type SessionServiceInterface interface {
	Create(ctx context.Context, userID uint64) (string, error)
	Resolve(ctx context.Context, token string) (uint64, error)
	Destroy(ctx context.Context, token string) error
	TTL() time.Duration
}

type SessionService struct {
	sessions repositories.SessionRepositoryInterface
	ttl      time.Duration
	logger   *zap.Logger
}

func NewSessionService(
	sessions repositories.SessionRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) SessionServiceInterface {
	return &SessionService{
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *SessionService) Create(ctx context.Context, userID uint64) (string, error) {
	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, userID, s.ttl); err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *SessionService) Resolve(ctx context.Context, token string) (uint64, error) {
	return s.sessions.Find(ctx, token)
}

func (s *SessionService) Destroy(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}
