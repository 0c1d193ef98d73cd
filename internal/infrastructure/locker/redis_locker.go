package locker

import (
	"context"
	"time"

	"inspection_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix         = "inspection-ledger-lock:"
	defaultWait       = 2 * time.Second
	retryInterval     = 50 * time.Millisecond
	releaseLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then return redis.call("DEL", KEYS[1]) end return 0`
)

// lockClient is the subset of *redis.Client the locker uses.
type lockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisLedgerLocker serializes ledger writers of one inspection with a
// SET NX PX lock whose value identifies the owner.
type RedisLedgerLocker struct {
	rdb  lockClient
	ttl  time.Duration
	wait time.Duration
	log  *zap.Logger
}

var _ interfaces.ILedgerLocker = (*RedisLedgerLocker)(nil)

func NewRedisLedgerLocker(rdb lockClient, ttl time.Duration, log *zap.Logger) *RedisLedgerLocker {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisLedgerLocker{rdb: rdb, ttl: ttl, wait: defaultWait, log: log}
}

// Lock retries until the lock is taken, the wait budget runs out or ctx is done.
func (l *RedisLedgerLocker) Lock(ctx context.Context, inspectionID string) (func(context.Context), error) {
	key := keyPrefix + inspectionID
	value := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		acquired, err := l.rdb.SetNX(ctx, key, value, l.ttl).Result()
		if err != nil {
			l.log.Error("[locker] setnx failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		if acquired {
			l.log.Debug("[locker] acquired", zap.String("key", key))
			return func(ctx context.Context) { l.release(ctx, key, value) }, nil
		}
		if time.Now().After(deadline) {
			l.log.Info("[locker] not acquired", zap.String("key", key))
			return nil, interfaces.ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func (l *RedisLedgerLocker) release(ctx context.Context, key, value string) {
	n, err := l.rdb.Eval(ctx, releaseLockScript, []string{key}, value).Int64()
	if err != nil {
		l.log.Error("[locker] release failed", zap.String("key", key), zap.Error(err))
		return
	}
	if n == 0 {
		// The lock expired and may now belong to another writer.
		l.log.Warn("[locker] lock not owned at release", zap.String("key", key))
	}
}
