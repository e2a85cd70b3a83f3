package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "pump-inventory/pkg/errors"
)

const sessionKeyPrefix = "session:"

// SessionRepositoryInterface maps opaque session tokens to user ids. Lifetime
// is bounded by the TTL supplied on Save; expiry is handled by the backing
// cache, not by this layer.
type SessionRepositoryInterface interface {
	Save(ctx context.Context, token string, userID uint64, ttl time.Duration) error
	Find(ctx context.Context, token string) (uint64, error)
	Delete(ctx context.Context, token string) error
}

type SessionRepository struct {
	cache CacheRepositoryInterface
}

func NewSessionRepository(cache CacheRepositoryInterface) SessionRepositoryInterface {
	return &SessionRepository{cache: cache}
}

func (r *SessionRepository) Save(ctx context.Context, token string, userID uint64, ttl time.Duration) error {
	return r.cache.Set(ctx, sessionKeyPrefix+token, userID, ttl)
}

func (r *SessionRepository) Find(ctx context.Context, token string) (uint64, error) {
	val, err := r.cache.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(err, ErrCacheMiss) {
		return 0, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.cache.Del(ctx, sessionKeyPrefix+token)
}
