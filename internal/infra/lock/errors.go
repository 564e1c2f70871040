package lock

import "errors"

var (
	// ErrLockNotAcquired возвращается, если блокировку не удалось взять за отведенное время
	ErrLockNotAcquired = errors.New("lock not acquired")
)
