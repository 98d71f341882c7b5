package concurrency

import (
	"context"
	"sync"
)

// Locker grants exclusive access to a key. The returned func releases the lock
// and must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// keyLock is a single-slot semaphore plus the number of callers holding or
// waiting on it. The entry is dropped when that count reaches zero.
type keyLock struct {
	sem  chan struct{}
	refs int
}

// LockManager handles named locks within one process. Only keys that are
// held or awaited occupy memory.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// acquireRef returns the semaphore for key and registers the caller on it
func (lm *LockManager) acquireRef(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		lm.locks[key] = kl
	}
	kl.refs++
	return kl
}

func (lm *LockManager) releaseRef(key string, kl *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(lm.locks, key)
	}
}

func (lm *LockManager) unlocker(key string, kl *keyLock) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.sem
			lm.releaseRef(key, kl)
		})
	}
}

// Lock blocks until the key is free or ctx is done
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	kl := lm.acquireRef(key)
	select {
	case kl.sem <- struct{}{}:
		return lm.unlocker(key, kl), nil
	case <-ctx.Done():
		lm.releaseRef(key, kl)
		return nil, ctx.Err()
	}
}

// TryLock acquires the key without waiting. ok is false if it is held.
func (lm *LockManager) TryLock(key string) (unlock func(), ok bool) {
	kl := lm.acquireRef(key)
	select {
	case kl.sem <- struct{}{}:
		return lm.unlocker(key, kl), true
	default:
		lm.releaseRef(key, kl)
		return nil, false
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
