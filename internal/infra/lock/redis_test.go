package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingService/pkg/logger"
)

// fakeRedis держит ключи в памяти и исполняет только скрипт снятия блокировки
type fakeRedis struct {
	mu      sync.Mutex
	values  map[string]string
	setErr  error
	evalErr error
	setNX   int
	deleted []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setNX++
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) unlock(keys []string, args []interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.evalErr != nil {
		return redis.NewCmdResult(nil, f.evalErr)
	}
	if f.values[keys[0]] != args[0] {
		return redis.NewCmdResult(int64(0), nil)
	}
	delete(f.values, keys[0])
	f.deleted = append(f.deleted, keys[0])
	return redis.NewCmdResult(int64(1), nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.unlock(keys, args)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.unlock(keys, args)
}

func (f *fakeRedis) EvalRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.unlock(keys, args)
}

func (f *fakeRedis) EvalShaRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.unlock(keys, args)
}

func (f *fakeRedis) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeRedis) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestRedisLocker_AcquiresAndReleases(t *testing.T) {
	rdb := newFakeRedis()
	locker := NewRedisLocker(rdb, time.Second, 100*time.Millisecond, logger.NewNop())

	var sawKey bool
	err := locker.WithLock(context.Background(), CalendarKey("primary"), func(ctx context.Context) error {
		_, sawKey = rdb.values["lock:calendar:primary"]
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, sawKey)
	assert.Empty(t, rdb.values)
	assert.Equal(t, []string{"lock:calendar:primary"}, rdb.deleted)
}

func TestRedisLocker_BusyKeyTimesOut(t *testing.T) {
	rdb := newFakeRedis()
	rdb.values["lock:calendar:primary"] = "someone-else"
	locker := NewRedisLocker(rdb, time.Second, 120*time.Millisecond, logger.NewNop())

	err := locker.WithLock(context.Background(), CalendarKey("primary"), func(ctx context.Context) error {
		t.Fatal("must not run without the lock")
		return nil
	})

	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.Greater(t, rdb.setNX, 1, "acquire is retried until the wait elapses")
	assert.Equal(t, "someone-else", rdb.values["lock:calendar:primary"], "foreign lock is never removed")
}

func TestRedisLocker_RedisError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.setErr = errors.New("connection refused")
	locker := NewRedisLocker(rdb, time.Second, time.Second, logger.NewNop())

	err := locker.WithLock(context.Background(), "k", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, rdb.setErr)
	assert.NotErrorIs(t, err, ErrLockNotAcquired)
}

type recordingLogger struct {
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (r *recordingLogger) Info(string, ...interface{}) {}

func (r *recordingLogger) Warn(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Error(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, v...))
}

func TestRedisLocker_ReleaseFailureIsLogged(t *testing.T) {
	rdb := newFakeRedis()
	rdb.evalErr = errors.New("READONLY You can't write against a read only replica")
	log := &recordingLogger{}
	locker := NewRedisLocker(rdb, time.Second, 100*time.Millisecond, log)

	err := locker.WithLock(context.Background(), CalendarKey("primary"), func(ctx context.Context) error { return nil })
	require.NoError(t, err, "booking result does not depend on the unlock")

	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "lock:calendar:primary")
	assert.Contains(t, log.errors[0], "READONLY")
	assert.Contains(t, rdb.values, "lock:calendar:primary", "key is left for the ttl to expire")
}

func TestRedisLocker_ExpiredLockIsLogged(t *testing.T) {
	rdb := newFakeRedis()
	log := &recordingLogger{}
	locker := NewRedisLocker(rdb, time.Second, 100*time.Millisecond, log)

	err := locker.WithLock(context.Background(), CalendarKey("primary"), func(ctx context.Context) error {
		// ключ истек и был занят другим процессом
		rdb.mu.Lock()
		rdb.values["lock:calendar:primary"] = "other-token"
		rdb.mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	assert.Empty(t, log.errors)
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "expired before release")
	assert.Equal(t, "other-token", rdb.values["lock:calendar:primary"])
}
