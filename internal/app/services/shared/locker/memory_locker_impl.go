package locker

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type memoryLock struct {
	value     string
	expiresAt time.Time
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]memoryLock
	now   func() time.Time
	Log   *zap.Logger
}

// NewMemoryLocker keeps locks in process memory; enough for a single console instance.
func NewMemoryLocker(logger *zap.Logger) contracts.LockerService {
	return &memoryLocker{
		locks: make(map[string]memoryLock),
		now:   time.Now,
		Log:   logger,
	}
}

func (l *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if current, ok := l.locks[key]; ok && now.Before(current.expiresAt) {
		return false, "", nil
	}

	lockValue := utils.GenerateLockValue()
	l.locks[key] = memoryLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (l *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.locks[key]
	if !ok || !l.now().Before(current.expiresAt) {
		delete(l.locks, key)
		return nil
	}
	if current.value != lockValue {
		l.Log.Warn("memoryLocker.Unlock lock ownership mismatch", zap.String(constvars.LoggingLockKey, key))
		return exceptions.ErrLockNotOwned(nil)
	}
	delete(l.locks, key)
	return nil
}
