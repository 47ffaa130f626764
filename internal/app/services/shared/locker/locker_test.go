package locker

import (
	"context"
	"errors"
	"konsulin-admin-console/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) DeleteIfValue(ctx context.Context, key, value string) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Lock On Same Key Is Rejected", func(t *testing.T) {
		locker := NewMemoryLocker(zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, "specialization:mutation:1", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		acquired, _, err = locker.TryLock(ctx, "specialization:mutation:1", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired, "a key already held must not be granted twice")

		acquired, _, err = locker.TryLock(ctx, "specialization:mutation:2", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired, "other keys are independent")
	})

	t.Run("Unlock Releases The Key", func(t *testing.T) {
		locker := NewMemoryLocker(zap.NewNop())

		_, value, _ := locker.TryLock(ctx, "k", time.Minute)
		require.NoError(t, locker.Unlock(ctx, "k", value))

		acquired, _, err := locker.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Unlock With Foreign Value Fails", func(t *testing.T) {
		locker := NewMemoryLocker(zap.NewNop())

		_, _, _ = locker.TryLock(ctx, "k", time.Minute)
		err := locker.Unlock(ctx, "k", "someone-else")
		require.Error(t, err)

		acquired, _, _ := locker.TryLock(ctx, "k", time.Minute)
		assert.False(t, acquired, "the lock must still be held")
	})

	t.Run("Expired Lock Can Be Taken Again", func(t *testing.T) {
		locker := NewMemoryLocker(zap.NewNop()).(*memoryLocker)
		now := time.Now()
		locker.now = func() time.Time { return now }

		acquired, _, _ := locker.TryLock(ctx, "k", time.Second)
		require.True(t, acquired)

		now = now.Add(2 * time.Second)
		acquired, _, _ = locker.TryLock(ctx, "k", time.Second)
		assert.True(t, acquired)
	})

	t.Run("Concurrent Lockers Get One Winner", func(t *testing.T) {
		locker := NewMemoryLocker(zap.NewNop())

		var wg sync.WaitGroup
		var mu sync.Mutex
		winners := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				acquired, _, _ := locker.TryLock(ctx, "k", time.Minute)
				if acquired {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, winners)
	})
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("TryLock Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "k", mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, value, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
		repo.AssertExpectations(t)
	})

	t.Run("TryLock Not Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "k", mock.Anything, time.Minute).Return(false, nil)

		acquired, value, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("TryLock Redis Failure", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "k", mock.Anything, time.Minute).Return(false, errors.New("connection refused"))

		_, _, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "k", time.Minute)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindInternal, exceptions.KindOf(err))
	})

	t.Run("Unlock Owned", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("DeleteIfValue", ctx, "k", "v1").Return(true, nil)

		require.NoError(t, NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "v1"))
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Unlock Already Expired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("DeleteIfValue", ctx, "k", "v1").Return(false, nil)
		repo.On("Get", ctx, "k").Return("", nil)

		require.NoError(t, NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "v1"))
	})

	t.Run("Unlock Not Owned", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("DeleteIfValue", ctx, "k", "v1").Return(false, nil)
		repo.On("Get", ctx, "k").Return("v2", nil)

		require.Error(t, NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "v1"))
	})
}
