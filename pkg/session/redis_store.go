package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPrefix      = "session:"
	defaultRedisExpiryGrace = time.Hour
)

// RedisStore persists sessions as JSON documents in Redis.
// Keys outlive their session by a grace period so Get can tell a timed-out
// session (ErrExpired) from an unknown one (ErrNotFound).
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	grace  time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix sets the key prefix. Default: "session:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisExpiryGrace sets how long a key is kept after its session
// expires. Within that window Get reports ErrExpired; afterwards the key is
// gone and Get reports ErrNotFound. Default: 1h. Zero drops keys on expiry.
func WithRedisExpiryGrace(d time.Duration) RedisOption {
	return func(s *RedisStore) {
		if d >= 0 {
			s.grace = d
		}
	}
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: defaultRedisPrefix, grace: defaultRedisExpiryGrace}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create implements Store.
func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	return s.save(ctx, sess, false)
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}

	if sess.IsExpired() {
		_ = s.client.Del(ctx, s.key(token)).Err()
		return nil, ErrExpired
	}

	return &sess, nil
}

// Update implements Store.
func (s *RedisStore) Update(ctx context.Context, sess *Session) error {
	return s.save(ctx, sess, true)
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session: redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) save(ctx context.Context, sess *Session, mustExist bool) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	ttl := s.keyTTL(sess)
	if ttl <= 0 {
		return ErrExpired
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	if mustExist {
		ok, err := s.client.SetXX(ctx, s.key(sess.Token), data, ttl).Result()
		if err != nil {
			return fmt.Errorf("session: redis update: %w", err)
		}
		if !ok {
			return ErrNotFound
		}
		return nil
	}

	if err := s.client.Set(ctx, s.key(sess.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("session: redis create: %w", err)
	}
	return nil
}

// keyTTL is the Redis expiry for a session key, or <= 0 when the session
// has already expired.
func (s *RedisStore) keyTTL(sess *Session) time.Duration {
	remaining := time.Until(sess.ExpiresAt)
	if remaining <= 0 {
		return remaining
	}
	return remaining + s.grace
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}
