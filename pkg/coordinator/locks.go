package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// Locker serializes CheckPlanConflicts per location: for a given
// location there is at most one in-flight evaluation at any instant.
// Different locations proceed in parallel.
type Locker interface {
	// Lock acquires the lock for location, blocking until acquired or
	// ctx is done. The returned func releases it.
	Lock(ctx context.Context, location string) (func(), error)
}

// MutexLocker is the in-process Locker used by single-replica
// deployments: one mutex per location, created on first use.
type MutexLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ Locker = (*MutexLocker)(nil)

// NewMutexLocker creates an empty MutexLocker.
func NewMutexLocker() *MutexLocker {
	return &MutexLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock implements Locker.
func (l *MutexLocker) Lock(_ context.Context, location string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[location]
	if !ok {
		m = &sync.Mutex{}
		l.locks[location] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

// RedisLocker is the distributed Locker for multi-replica Coordinator
// deployments: SET NX with a TTL, polled with exponential backoff.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Locker = (*RedisLocker)(nil)

// NewRedisLocker creates a RedisLocker. ttl bounds how long a crashed
// replica can hold a location hostage.
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisLocker{client: client, ttl: ttl}
}

// Lock implements Locker.
func (l *RedisLocker) Lock(ctx context.Context, location string) (func(), error) {
	key := "cityagent:coordination-lock:" + location

	acquire := func() error {
		ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("acquiring location lock: %w", err))
		}
		if !ok {
			return fmt.Errorf("location %s locked", location)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(acquire, policy); err != nil {
		return nil, err
	}

	return func() {
		// Best-effort release; the TTL reclaims the lock if this fails.
		_ = l.client.Del(context.Background(), key).Err()
	}, nil
}
