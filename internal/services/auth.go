package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/repositories"
	"pump-inventory/pkg/config"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	sessions  SessionServiceInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	sessions SessionServiceInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		sessions:  sessions,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
	}
}

// Login verifies the credentials and opens a session. The plaintext password
// and the stored hash are never logged. Unknown username and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (string, error) {
	logger := s.logger.With(zap.String("username", payload.Username))

	if err := s.checkLockout(ctx, payload.Username); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		logger.Warn("login attempt for unknown user")
		s.registerFailedAttempt(ctx, payload.Username)
		return "", apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		logger.Warn("login attempt with wrong password")
		s.registerFailedAttempt(ctx, payload.Username)
		return "", apperrors.ErrInvalidCredentials
	}

	s.clearFailedAttempts(ctx, payload.Username)

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	logger.Info("user logged in", zap.Uint64("userID", user.ID))
	return token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

func lockoutKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

func (s *AuthService) checkLockout(ctx context.Context, username string) error {
	attemptsStr, err := s.cacheRepo.Get(ctx, lockoutKey(username))
	if err != nil {
		return nil
	}

	var attempts int
	fmt.Sscanf(attemptsStr, "%d", &attempts)
	if attempts >= s.cfg.MaxLoginAttempts {
		s.logger.Warn("login locked out", zap.String("username", username))
		return apperrors.NewTooManyRequestsError(
			fmt.Sprintf("Too many failed attempts. Try again in %.0f minutes.", s.cfg.LockoutDuration.Minutes()),
		)
	}
	return nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, username string) {
	key := lockoutKey(username)
	attempts, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Error("failed to record login attempt", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration); err != nil {
			s.logger.Error("failed to set lockout window", zap.Error(err))
		}
	}
}

func (s *AuthService) clearFailedAttempts(ctx context.Context, username string) {
	if err := s.cacheRepo.Del(ctx, lockoutKey(username)); err != nil {
		s.logger.Error("failed to clear login attempts", zap.Error(err))
	}
}
