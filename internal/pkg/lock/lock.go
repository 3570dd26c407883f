package lock

import (
	"context"
	"sync"
	"time"

	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

// Locker is the keyed exclusive-claim service used to serialize checkout
// and settlement against the same inventory. At most one holder per key;
// Release is idempotent and must be called on every exit path.
type Locker interface {
	Acquire(ctx context.Context, key string) error
	Release(ctx context.Context, key string) error
}

type redsyncLocker struct {
	rs     *redsync.Redsync
	log    log.Logger
	expiry time.Duration

	mu   sync.Mutex
	held map[string]*redsync.Mutex
}

// New builds a Locker backed by redis. The expiry is a crash backstop
// only; hold reclamation is driven by the expiry sweeper, not the TTL.
func New(client *goredislib.Client, logger log.Logger, expiry time.Duration) Locker {
	pool := goredis.NewPool(client)
	return &redsyncLocker{
		rs:     redsync.New(pool),
		log:    logger,
		expiry: expiry,
		held:   make(map[string]*redsync.Mutex),
	}
}

func (l *redsyncLocker) Acquire(ctx context.Context, key string) error {
	mutex := l.rs.NewMutex(key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(1),
	)

	if err := mutex.LockContext(ctx); err != nil {
		l.log.Warn(ctx, "lock contention", "key", key, "error", err)
		return errors.ErrAlreadyLocked
	}

	l.mu.Lock()
	l.held[key] = mutex
	l.mu.Unlock()

	return nil
}

func (l *redsyncLocker) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	mutex, ok := l.held[key]
	if ok {
		delete(l.held, key)
	}
	l.mu.Unlock()

	if !ok {
		// not held by this process; releasing is a no-op
		return nil
	}

	if _, err := mutex.UnlockContext(ctx); err != nil {
		// the TTL backstop already let it lapse; the claim is gone either way
		l.log.Warn(ctx, "error release lock", "key", key, "error", err)
	}

	return nil
}
