package langpref

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/tlocale"
)

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix sets the key prefix. Keys are stored as "{prefix}:{subject}".
// Default: "lang".
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithRedisTTL sets how long a stored choice lives. Zero or negative keeps it forever.
// Default: no expiration.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = max(ttl, 0)
	}
}

// RedisStore is a Store backed by Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed Store. The client lifecycle stays
// with the caller.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: tlocale.LangKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Get(ctx context.Context, subject string) (string, error) {
	lang, err := s.client.Get(ctx, s.key(subject)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return lang, nil
}

func (s *RedisStore) Set(ctx context.Context, subject, lang string) error {
	return s.client.Set(ctx, s.key(subject), lang, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, subject string) error {
	return s.client.Del(ctx, s.key(subject)).Err()
}

func (s *RedisStore) key(subject string) string {
	if s.prefix == "" {
		return subject
	}
	return s.prefix + ":" + subject
}

var _ Store = (*RedisStore)(nil)
