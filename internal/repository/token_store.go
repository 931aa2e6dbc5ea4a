package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore persists refresh-token hashes. With a Redis client it
// keys entries under "refresh:<hash>" with the token TTL, so expiry
// needs no sweeper. Without one it falls back to an in-memory map
// guarded by a mutex; sessions then live only as long as the process,
// same as the rest of the stores.
type TokenStore struct {
	rdb *redis.Client

	mu  sync.Mutex
	mem map[string]memToken
}

type memToken struct {
	username string
	exp      time.Time
}

// NewTokenStore builds a token store. rdb may be nil.
func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb, mem: make(map[string]memToken)}
}

func refreshKey(hash string) string { return "refresh:" + hash }

// StoreRefresh saves a refresh-token hash for a username until exp.
func (t *TokenStore) StoreRefresh(ctx context.Context, username, hash string, exp time.Time) error {
	if t.rdb != nil {
		ttl := time.Until(exp)
		if ttl <= 0 {
			return fmt.Errorf("refresh token already expired")
		}
		return t.rdb.Set(ctx, refreshKey(hash), username, ttl).Err()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mem[hash] = memToken{username: username, exp: exp}
	return nil
}

// ValidateRefresh returns the username bound to a live token hash, or
// ErrNotFound when the hash is unknown, revoked or expired.
func (t *TokenStore) ValidateRefresh(ctx context.Context, hash string) (string, error) {
	if t.rdb != nil {
		username, err := t.rdb.Get(ctx, refreshKey(hash)).Result()
		if err == redis.Nil {
			return "", fmt.Errorf("refresh token: %w", ErrNotFound)
		}
		if err != nil {
			return "", err
		}
		return username, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	tok, ok := t.mem[hash]
	if !ok || time.Now().UTC().After(tok.exp) {
		delete(t.mem, hash)
		return "", fmt.Errorf("refresh token: %w", ErrNotFound)
	}
	return tok.username, nil
}

// RevokeRefresh drops a token hash. Revoking an unknown hash is not
// an error; logout must always succeed.
func (t *TokenStore) RevokeRefresh(ctx context.Context, hash string) error {
	if t.rdb != nil {
		return t.rdb.Del(ctx, refreshKey(hash)).Err()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.mem, hash)
	return nil
}
