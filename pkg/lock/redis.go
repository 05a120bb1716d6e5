package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	appErrors "battery-shipment-monitor/pkg/errors"
)

const (
	redisLockTTL     = 30 * time.Second
	redisRetryDelay  = 50 * time.Millisecond
	redisLockPrefix  = "admission"
	redisRefreshSlip = 10 * time.Second
)

// RedisLocker serializes admission per contract across service replicas,
// where the in-process KeyMutex is not enough.
type RedisLocker struct {
	client *redislock.Client
}

func NewRedisLocker(redisClient *redis.Client) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(redisClient),
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := fmt.Sprintf("%s:%s", redisLockPrefix, key)

	redisLock, err := l.client.Obtain(ctx, lockKey, redisLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(redisRetryDelay), 100),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, appErrors.NewConflictError("could not obtain contract lock", err)
	}
	if err != nil {
		return nil, fmt.Errorf("obtaining contract lock: %w", err)
	}

	// Keep the lock alive while the holder is still working. The refresh
	// loop stops on release.
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(redisLockTTL - redisRefreshSlip)
		defer ticker.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				if err := redisLock.Refresh(refreshCtx, redisLockTTL, nil); err != nil {
					return
				}
			}
		}
	}()

	release := func() {
		stopRefresh()
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = redisLock.Release(releaseCtx)
	}

	return release, nil
}
