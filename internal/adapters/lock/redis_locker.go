package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
)

const (
	keyPrefix    = "trust-ledger:lock:"
	retryBackoff = 50 * time.Millisecond
)

// RedisLocker is an AccountLocker backed by redislock.
type RedisLocker struct {
	client *redis.Client
	locker *redislock.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ portsrepo.AccountLocker = (*RedisLocker)(nil)

// NewRedisLocker connects to addr and verifies the connection.
func NewRedisLocker(ctx context.Context, addr string, ttl time.Duration, logger *slog.Logger) (*RedisLocker, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		PoolSize: 20,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return newRedisLocker(client, ttl, logger), nil
}

func newRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLocker{
		client: client,
		locker: redislock.New(client),
		ttl:    ttl,
		logger: logger,
	}
}

// Lock retries until the key is obtained or ctx is done. Without a deadline on
// ctx the wait is bounded by the lock TTL. Failing to obtain the key in time is
// reported as apperrors.ErrConflict.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(context.Context), error) {
	held, err := l.locker.Obtain(ctx, keyPrefix+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(retryBackoff),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, fmt.Errorf("%w: %s is locked by another writer", apperrors.ErrConflict, key)
		}
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	return func(releaseCtx context.Context) {
		if err := held.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn("Failed to release account lock", slog.String("key", key), slog.String("error", err.Error()))
		}
	}, nil
}

// Close closes the underlying Redis client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
