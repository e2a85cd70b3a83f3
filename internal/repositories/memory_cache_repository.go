package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryCacheEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCacheRepository is a map-backed CacheRepositoryInterface. It exists so
// session handling can be exercised in tests without a Redis instance.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{entries: make(map[string]memoryCacheEntry)}
}

func (r *MemoryCacheRepository) get(key string) (memoryCacheEntry, bool) {
	entry, ok := r.entries[key]
	if !ok {
		return memoryCacheEntry{}, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(r.entries, key)
		return memoryCacheEntry{}, false
	}
	return entry, true
}

func (r *MemoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.get(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memoryCacheEntry{value: fmt.Sprintf("%v", value)}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	r.entries[key] = entry
	return nil
}

func (r *MemoryCacheRepository) Del(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range keys {
		delete(r.entries, key)
	}
	return nil
}

func (r *MemoryCacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	if entry, ok := r.get(key); ok {
		fmt.Sscanf(entry.value, "%d", &n)
	}
	n++
	expiresAt := time.Time{}
	if entry, ok := r.entries[key]; ok {
		expiresAt = entry.expiresAt
	}
	r.entries[key] = memoryCacheEntry{value: fmt.Sprintf("%d", n), expiresAt: expiresAt}
	return n, nil
}

func (r *MemoryCacheRepository) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.get(key)
	if !ok {
		return false, nil
	}
	entry.expiresAt = time.Now().Add(expiration)
	r.entries[key] = entry
	return true, nil
}
