package lock

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	sem  chan struct{}
	refs int
}

// MemoryLocker блокировка в пределах одного процесса
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*memoryEntry
	wait  time.Duration
}

// NewMemoryLocker создает локер. wait <= 0 означает ожидание до отмены контекста.
func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]*memoryEntry),
		wait:  wait,
	}
}

func (l *MemoryLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	entry := l.acquireEntry(key)
	defer l.releaseEntry(key)

	var timeout <-chan time.Time
	if l.wait > 0 {
		timer := time.NewTimer(l.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-timeout:
		return ErrLockNotAcquired
	}
	defer func() { <-entry.sem }()

	return fn(ctx)
}

func (l *MemoryLocker) acquireEntry(key string) *memoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[key]
	if !ok {
		entry = &memoryEntry{sem: make(chan struct{}, 1)}
		l.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (l *MemoryLocker) releaseEntry(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, key)
	}
}
