package queue

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisLockManager struct {
	client    rueidis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisLockManager(client rueidis.Client, keyPrefix string, ttl time.Duration) *RedisLockManager {
	return &RedisLockManager{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// AcquireUserLock takes the per-user lock with SET NX and a TTL so a crashed
// holder cannot wedge the user forever.
func (r *RedisLockManager) AcquireUserLock(ctx context.Context, userID string) (bool, error) {
	cmd := r.client.B().Set().
		Key(r.key(userID)).
		Value("1").
		Nx().
		Px(r.ttl).
		Build()

	result := r.client.Do(ctx, cmd)
	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *RedisLockManager) ReleaseUserLock(ctx context.Context, userID string) error {
	cmd := r.client.B().Del().Key(r.key(userID)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisLockManager) key(userID string) string {
	return r.keyPrefix + ":" + userID
}
